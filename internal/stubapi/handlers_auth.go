package stubapi

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
	apperrors "github.com/shahidulislam-dev/warehouse-console/pkg/util"
)

// handleSignup registers a new staff account, inactive until approved.
func (s *Server) handleSignup(c *fiber.Ctx) error {
	var req domain.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("fullName, email and password are required")
	}

	hash, err := hashPassword(req.Password, s.cost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if s.data.userByEmail(req.Email) != nil {
		return apperrors.NewConflict("email already registered")
	}
	id := s.data.allocID()
	s.data.users[id] = &account{
		user: domain.User{
			ID:            id,
			FullName:      req.FullName,
			Email:         req.Email,
			ContactNumber: req.ContactNumber,
			Role:          domain.RoleStaff,
			Status:        domain.UserStatusInactive,
		},
		passwordHash: hash,
	}

	return c.Status(http.StatusCreated).SendString("Signup successful, awaiting approval")
}

// handleLogin checks credentials and answers with a bearer token.
func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	s.data.mu.Lock()
	acc := s.data.userByEmail(req.Email)
	s.data.mu.Unlock()

	if acc == nil || comparePassword(acc.passwordHash, req.Password) != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	if !acc.user.Active() {
		return apperrors.NewUnauthorized("account awaiting approval")
	}

	token, _, err := s.tokens.generate(acc.user.Email, acc.user.Role)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// handleForgotPassword accepts the request and does nothing; the stub has no
// mail.
func (s *Server) handleForgotPassword(c *fiber.Ctx) error {
	var req domain.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	return c.JSON(fiber.Map{"message": "If the account exists, a reset mail was sent"})
}

func (s *Server) handleChangePassword(c *fiber.Ctx) error {
	p, _ := principalFromContext(c)
	var req domain.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.NewPassword == "" {
		return apperrors.NewValidationError("newPassword is required")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	acc := s.data.users[p.userID]
	if acc == nil {
		return apperrors.NewNotFound("user")
	}
	if comparePassword(acc.passwordHash, req.OldPassword) != nil {
		return apperrors.NewUnauthorized("old password does not match")
	}
	hash, err := hashPassword(req.NewPassword, s.cost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	acc.passwordHash = hash
	return c.JSON(fiber.Map{"message": "Password changed"})
}

func (s *Server) handleGetUsers(c *fiber.Ctx) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	users := make([]domain.User, 0, len(s.data.users))
	for _, acc := range s.data.users {
		users = append(users, acc.user)
	}
	return c.JSON(users)
}

type statusUpdateRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (s *Server) handleUpdateStatus(c *fiber.Ctx) error {
	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	id, err := strconv.Atoi(req.ID)
	if err != nil {
		return apperrors.NewValidationError("invalid user id")
	}
	if req.Status != domain.UserStatusActive && req.Status != domain.UserStatusInactive {
		return apperrors.NewValidationError("status must be \"true\" or \"false\"")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	acc := s.data.users[id]
	if acc == nil {
		return apperrors.NewNotFound("user")
	}
	acc.user.Status = req.Status
	return c.SendString("User status updated")
}

type roleUpdateRequest struct {
	ID   string      `json:"id"`
	Role domain.Role `json:"role"`
}

// handleUpdateRole enforces the same role-change rules the console checks
// client-side: never your own role, super-admin may change anyone, admin may
// change staff only.
func (s *Server) handleUpdateRole(c *fiber.Ctx) error {
	p, _ := principalFromContext(c)
	var req roleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	id, err := strconv.Atoi(req.ID)
	if err != nil {
		return apperrors.NewValidationError("invalid user id")
	}
	if !req.Role.Valid() {
		return apperrors.NewValidationError("unknown role")
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	acc := s.data.users[id]
	if acc == nil {
		return apperrors.NewNotFound("user")
	}
	if !auth.CanChangeRole(p.role, p.email, acc.user) {
		return apperrors.NewForbidden("not allowed to change this user's role")
	}
	acc.user.Role = req.Role
	return c.SendString("User role updated")
}

func (s *Server) handleCreateSuperAdmin(c *fiber.Ctx) error {
	var req domain.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("fullName, email and password are required")
	}

	hash, err := hashPassword(req.Password, s.cost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if s.data.userByEmail(req.Email) != nil {
		return apperrors.NewConflict("email already registered")
	}
	id := s.data.allocID()
	s.data.users[id] = &account{
		user: domain.User{
			ID:            id,
			FullName:      req.FullName,
			Email:         req.Email,
			ContactNumber: req.ContactNumber,
			Role:          domain.RoleSuperAdmin,
			Status:        domain.UserStatusActive,
		},
		passwordHash: hash,
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Super admin created"})
}
