package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/shahidulislam-dev/warehouse-console/cmd/warehousectl/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Login          commands.LoginCmd          `cmd:"" help:"Log in and store the session token"`
		Signup         commands.SignupCmd         `cmd:"" help:"Register a new account"`
		Logout         commands.LogoutCmd         `cmd:"" help:"End the session and discard the token"`
		ChangePassword commands.ChangePasswordCmd `cmd:"" name:"change-password" help:"Change your own password"`
		ForgotPassword commands.ForgotPasswordCmd `cmd:"" name:"forgot-password" help:"Request a password reset mail"`
		Whoami         commands.WhoamiCmd         `cmd:"" help:"Show the current identity and its dashboard"`
		Open           commands.OpenCmd           `cmd:"" help:"Check whether navigation to a console path would be admitted"`
		Users          commands.UsersCmd          `cmd:"" help:"Manage accounts (admin and up)"`
		Warehouse      commands.WarehouseCmd      `cmd:"" help:"Manage warehouses"`
		Floor          commands.FloorCmd          `cmd:"" help:"Manage floors"`
		Room           commands.RoomCmd           `cmd:"" help:"Manage rooms"`
		Goods          commands.GoodsCmd          `cmd:"" help:"Manage stocked goods"`
		Category       commands.CategoryCmd       `cmd:"" help:"Manage goods categories"`
		Debug          bool                       `help:"Enable debug logging."`
		Version        kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{"version": version},
		kong.BindTo(ctx, (*context.Context)(nil)))

	app, err := commands.NewApp(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
	defer app.Close()

	cmd.FatalIfErrorf(cmd.Run(app))
}
