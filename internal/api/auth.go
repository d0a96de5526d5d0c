package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

const authBase = "/api/auth"

// LoginResponse is the login endpoint's payload. A missing token with a
// message means the backend refused the credentials without a 4xx status.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// Login exchanges credentials for a bearer token. Intentionally
// unauthenticated; the transport attaches no header while logged out.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, authBase+"/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account and returns the backend's message. The
// account stays inactive until an admin approves it.
func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodPost, authBase+"/signup", req, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// ChangePassword updates the caller's own password.
func (c *Client) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, authBase+"/changePassword", req, nil)
}

// ForgotPassword triggers a password reset mail for the address.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, authBase+"/forgotPassword", domain.ForgotPasswordRequest{Email: email}, nil)
}

// GetAllUsers lists every account. Requires an admin token.
func (c *Client) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, authBase+"/get", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// statusUpdate matches the backend's wire shape: the id travels as a string.
type statusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateUserStatus flips an account's active flag ("true"/"false").
func (c *Client) UpdateUserStatus(ctx context.Context, userID int, status string) error {
	return c.do(ctx, http.MethodPost, authBase+"/update", statusUpdate{
		ID:     strconv.Itoa(userID),
		Status: status,
	}, nil)
}

type roleUpdate struct {
	ID   string      `json:"id"`
	Role domain.Role `json:"role"`
}

// UpdateUserRole assigns a new role to an account. The server re-checks the
// role-change rules; callers should consult auth.CanChangeRole first to
// avoid a round trip that is doomed to fail.
func (c *Client) UpdateUserRole(ctx context.Context, userID int, role domain.Role) error {
	return c.do(ctx, http.MethodPost, authBase+"/update/role", roleUpdate{
		ID:   strconv.Itoa(userID),
		Role: role,
	}, nil)
}

// CreateSuperAdmin provisions a super-admin account. Super-admin only.
func (c *Client) CreateSuperAdmin(ctx context.Context, req domain.SignupRequest) error {
	return c.do(ctx, http.MethodPost, authBase+"/create/super/admin", req, nil)
}
