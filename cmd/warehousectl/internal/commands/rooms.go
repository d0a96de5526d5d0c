package commands

import (
	"context"
	"fmt"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

// RoomCmd groups room CRUD.
type RoomCmd struct {
	List   RoomListCmd   `cmd:"" help:"List rooms, optionally per warehouse or floor"`
	Create RoomCreateCmd `cmd:"" help:"Create a room on a floor"`
	Update RoomUpdateCmd `cmd:"" help:"Update a room"`
	Delete RoomDeleteCmd `cmd:"" help:"Delete a room (admin and up)"`
}

type RoomListCmd struct {
	Warehouse int `help:"Only rooms of this warehouse id"`
	Floor     int `help:"Only rooms of this floor id (requires --warehouse)"`
}

func (r *RoomListCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureRoomManagement); err != nil {
		return err
	}

	var (
		rooms []domain.Room
		err   error
	)
	switch {
	case r.Floor > 0 && r.Warehouse > 0:
		rooms, err = app.Client.GetRoomsByFloor(ctx, r.Floor, r.Warehouse)
	case r.Floor > 0:
		return fmt.Errorf("--floor requires --warehouse")
	case r.Warehouse > 0:
		rooms, err = app.Client.GetRoomsByWarehouse(ctx, r.Warehouse)
	default:
		rooms, err = app.Client.GetAllRooms(ctx)
	}
	if err != nil {
		return err
	}
	for _, room := range rooms {
		fmt.Fprintf(app.Out, "%4d  %-20s %-20s %s\n", room.ID, room.Name, room.FloorName, room.WarehouseName)
	}
	return nil
}

type RoomCreateCmd struct {
	Name  string `arg:"" help:"Room name"`
	Floor int    `help:"Parent floor id" required:""`
}

func (r *RoomCreateCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureRoomManagement); err != nil {
		return err
	}
	msg, err := app.Client.CreateRoom(ctx, domain.RoomRequest{Name: r.Name, FloorID: r.Floor})
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, msg)
	return nil
}

type RoomUpdateCmd struct {
	ID    int    `arg:"" help:"Room id"`
	Name  string `arg:"" help:"New name"`
	Floor int    `help:"Parent floor id" required:""`
}

func (r *RoomUpdateCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureRoomManagement); err != nil {
		return err
	}
	if err := app.Client.UpdateRoom(ctx, r.ID, domain.RoomRequest{Name: r.Name, FloorID: r.Floor}); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Room %d updated\n", r.ID)
	return nil
}

type RoomDeleteCmd struct {
	ID int `arg:"" help:"Room id"`
}

func (r *RoomDeleteCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireDelete(); err != nil {
		return err
	}
	if err := app.Client.DeleteRoom(ctx, r.ID); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Room %d deleted\n", r.ID)
	return nil
}
