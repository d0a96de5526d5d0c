package commands

import (
	"context"
	"fmt"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

// FloorCmd groups floor CRUD.
type FloorCmd struct {
	List   FloorListCmd   `cmd:"" help:"List floors, optionally per warehouse"`
	Create FloorCreateCmd `cmd:"" help:"Create a floor in a warehouse"`
	Update FloorUpdateCmd `cmd:"" help:"Update a floor"`
	Delete FloorDeleteCmd `cmd:"" help:"Delete a floor (admin and up)"`
}

type FloorListCmd struct {
	Warehouse int `help:"Only floors of this warehouse id"`
}

func (f *FloorListCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureFloorManagement); err != nil {
		return err
	}

	var (
		floors []domain.Floor
		err    error
	)
	if f.Warehouse > 0 {
		floors, err = app.Client.GetFloorsByWarehouse(ctx, f.Warehouse)
	} else {
		floors, err = app.Client.GetAllFloors(ctx)
	}
	if err != nil {
		return err
	}
	for _, floor := range floors {
		fmt.Fprintf(app.Out, "%4d  %-20s %s\n", floor.ID, floor.Name, floor.WarehouseName)
	}
	return nil
}

type FloorCreateCmd struct {
	Name      string `arg:"" help:"Floor name"`
	Warehouse int    `help:"Parent warehouse id" required:""`
}

func (f *FloorCreateCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureFloorManagement); err != nil {
		return err
	}
	msg, err := app.Client.CreateFloor(ctx, domain.FloorRequest{Name: f.Name, WarehouseID: f.Warehouse})
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, msg)
	return nil
}

type FloorUpdateCmd struct {
	ID        int    `arg:"" help:"Floor id"`
	Name      string `arg:"" help:"New name"`
	Warehouse int    `help:"Parent warehouse id" required:""`
}

func (f *FloorUpdateCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureFloorManagement); err != nil {
		return err
	}
	if err := app.Client.UpdateFloor(ctx, f.ID, domain.FloorRequest{Name: f.Name, WarehouseID: f.Warehouse}); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Floor %d updated\n", f.ID)
	return nil
}

type FloorDeleteCmd struct {
	ID int `arg:"" help:"Floor id"`
}

func (f *FloorDeleteCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireDelete(); err != nil {
		return err
	}
	if err := app.Client.DeleteFloor(ctx, f.ID); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Floor %d deleted\n", f.ID)
	return nil
}
