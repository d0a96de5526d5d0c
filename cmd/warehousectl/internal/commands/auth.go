package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

// LoginCmd exchanges credentials for a token and stores it in the session.
type LoginCmd struct {
	Email    string `help:"Account email" required:""`
	Password string `help:"Account password" required:""`
}

func (l *LoginCmd) Run(ctx context.Context, app *App) error {
	resp, err := app.Client.Login(ctx, domain.LoginRequest{Email: l.Email, Password: l.Password})
	if err != nil {
		return err
	}
	if resp.Token == "" {
		if resp.Message != "" {
			return fmt.Errorf("login failed: %s", resp.Message)
		}
		return fmt.Errorf("login failed")
	}

	if err := app.Session.SetToken(resp.Token); err != nil {
		return fmt.Errorf("server returned an unusable token: %w", err)
	}

	role := app.Session.CurrentRole()
	fmt.Fprintf(app.Out, "Logged in as %s (%s)\n", l.Email, role.DisplayName())
	fmt.Fprintf(app.Out, "Dashboard: %s\n", auth.DashboardRoute(role))
	return nil
}

// SignupCmd registers a new account; it stays inactive until approved.
type SignupCmd struct {
	FullName      string `help:"Full name" required:""`
	Email         string `help:"Account email" required:""`
	ContactNumber string `help:"Contact number"`
	Password      string `help:"Account password" required:""`
}

func (s *SignupCmd) Run(ctx context.Context, app *App) error {
	msg, err := app.Client.Signup(ctx, domain.SignupRequest{
		FullName:      s.FullName,
		ContactNumber: s.ContactNumber,
		Email:         s.Email,
		Password:      s.Password,
	})
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "Signup successful, awaiting approval"
	}
	fmt.Fprintln(app.Out, msg)
	return nil
}

// LogoutCmd ends the session.
type LogoutCmd struct{}

func (l *LogoutCmd) Run(app *App) error {
	if err := app.Session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(app.Out, "Logged out")
	return nil
}

// ChangePasswordCmd updates the caller's own password.
type ChangePasswordCmd struct {
	Old string `help:"Current password" required:""`
	New string `help:"New password" required:""`
}

func (c *ChangePasswordCmd) Run(ctx context.Context, app *App) error {
	ident := app.Session.CurrentIdentity()
	if ident == nil {
		return fmt.Errorf("not logged in")
	}
	err := app.Client.ChangePassword(ctx, domain.ChangePasswordRequest{
		Email:       ident.Email,
		OldPassword: c.Old,
		NewPassword: c.New,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, "Password changed")
	return nil
}

// ForgotPasswordCmd triggers a password reset mail.
type ForgotPasswordCmd struct {
	Email string `arg:"" help:"Account email"`
}

func (f *ForgotPasswordCmd) Run(ctx context.Context, app *App) error {
	if err := app.Client.ForgotPassword(ctx, f.Email); err != nil {
		return err
	}
	fmt.Fprintln(app.Out, "If the account exists, a reset mail was sent")
	return nil
}

// WhoamiCmd prints the current identity, its dashboard route and the token's
// remaining lifetime.
type WhoamiCmd struct{}

func (w *WhoamiCmd) Run(app *App) error {
	now := time.Now()
	ident := app.Session.CurrentIdentity()
	if ident == nil || !app.Session.IsAuthenticated(now) {
		fmt.Fprintln(app.Out, "Not logged in")
		return nil
	}

	fmt.Fprintf(app.Out, "Email:     %s\n", ident.Email)
	fmt.Fprintf(app.Out, "Role:      %s\n", ident.Role.DisplayName())
	fmt.Fprintf(app.Out, "Dashboard: %s\n", auth.DashboardRoute(ident.Role))
	if app.Session.ExpiresSoon(now, app.Config.Session.ExpiryWarnWindow()) {
		fmt.Fprintln(app.Out, "Note: session expires soon")
	}
	return nil
}

// OpenCmd runs the route guard against a console path, showing whether
// navigation would be admitted and where a rejection would land.
type OpenCmd struct {
	Path string `arg:"" help:"Console path, e.g. /admin or /user/dashboard"`
}

func (o *OpenCmd) Run(app *App) error {
	decision := app.Guard.CheckPath(o.Path, time.Now())
	if decision.Allowed {
		fmt.Fprintf(app.Out, "Admitted to %s\n", o.Path)
		return nil
	}
	fmt.Fprintf(app.Out, "Rejected; redirecting to %s\n", decision.RedirectTo)
	return nil
}
