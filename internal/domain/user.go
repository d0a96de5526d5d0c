package domain

// User status values as the backend encodes them: the active flag travels as
// a string, not a boolean.
const (
	UserStatusActive   = "true"
	UserStatusInactive = "false"
)

// User is a console account as returned by the user listing endpoint.
type User struct {
	ID            int    `json:"id"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Role          Role   `json:"role"`
	Status        string `json:"status"`
}

// Active reports whether the account may log in.
func (u User) Active() bool {
	return u.Status == UserStatusActive
}

// SignupRequest registers a new account; new accounts start inactive until
// an admin approves them.
type SignupRequest struct {
	FullName      string `json:"fullName"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

// LoginRequest carries credentials to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest updates the caller's own password.
type ChangePasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ForgotPasswordRequest triggers a password reset mail.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}
