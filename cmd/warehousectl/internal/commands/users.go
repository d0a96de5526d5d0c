package commands

import (
	"context"
	"fmt"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

// UsersCmd groups account management, gated on the user_management feature.
type UsersCmd struct {
	List             UsersListCmd        `cmd:"" help:"List all accounts"`
	SetStatus        UsersSetStatusCmd   `cmd:"" name:"set-status" help:"Activate or deactivate an account"`
	SetRole          UsersSetRoleCmd     `cmd:"" name:"set-role" help:"Change an account's role"`
	CreateSuperAdmin CreateSuperAdminCmd `cmd:"" name:"create-super-admin" help:"Provision a super-admin account"`
}

type UsersListCmd struct{}

func (u *UsersListCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureUserManagement); err != nil {
		return err
	}

	users, err := app.Client.GetAllUsers(ctx)
	if err != nil {
		return err
	}

	role := app.Session.CurrentRole()
	for _, user := range users {
		if !auth.CanViewUser(role, user.Role) {
			continue
		}
		state := "inactive"
		if user.Active() {
			state = "active"
		}
		fmt.Fprintf(app.Out, "%4d  %-30s %-12s %-8s %s\n", user.ID, user.Email, user.Role, state, user.FullName)
	}
	return nil
}

type UsersSetStatusCmd struct {
	ID     int  `arg:"" help:"Account id"`
	Active bool `help:"Desired state: --active or --active=false" default:"true"`
}

func (u *UsersSetStatusCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureUserManagement); err != nil {
		return err
	}

	status := domain.UserStatusInactive
	verb := "deactivated"
	if u.Active {
		status = domain.UserStatusActive
		verb = "activated"
	}
	if err := app.Client.UpdateUserStatus(ctx, u.ID, status); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "User %d %s\n", u.ID, verb)
	return nil
}

type UsersSetRoleCmd struct {
	ID   int    `arg:"" help:"Account id"`
	Role string `arg:"" help:"New role: staff, admin or super-admin"`
}

func (u *UsersSetRoleCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureUserManagement); err != nil {
		return err
	}
	newRole := domain.Role(u.Role)
	if !newRole.Valid() {
		return fmt.Errorf("unknown role %q", u.Role)
	}

	// Look the target up first so the self-change and admin-vs-admin rules
	// can run locally before any mutating call goes out.
	users, err := app.Client.GetAllUsers(ctx)
	if err != nil {
		return err
	}
	var target *domain.User
	for i := range users {
		if users[i].ID == u.ID {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no user with id %d", u.ID)
	}

	ident := app.Session.CurrentIdentity()
	if ident == nil {
		return fmt.Errorf("not logged in")
	}
	if !auth.CanChangeRole(ident.Role, ident.Email, *target) {
		if target.Email == ident.Email {
			return fmt.Errorf("you cannot change your own role")
		}
		return fmt.Errorf("your role cannot change %s's role", target.Email)
	}

	if err := app.Client.UpdateUserRole(ctx, u.ID, newRole); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "User %d is now %s\n", u.ID, newRole)
	return nil
}

type CreateSuperAdminCmd struct {
	FullName      string `help:"Full name" required:""`
	Email         string `help:"Account email" required:""`
	ContactNumber string `help:"Contact number"`
	Password      string `help:"Account password" required:""`
}

func (c *CreateSuperAdminCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureSuperAdminManagement); err != nil {
		return err
	}

	err := app.Client.CreateSuperAdmin(ctx, domain.SignupRequest{
		FullName:      c.FullName,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		Password:      c.Password,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Super admin %s created\n", c.Email)
	return nil
}
