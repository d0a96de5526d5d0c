package commands

import (
	"context"
	"fmt"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

// WarehouseCmd groups warehouse CRUD.
type WarehouseCmd struct {
	List   WarehouseListCmd   `cmd:"" help:"List warehouses"`
	Create WarehouseCreateCmd `cmd:"" help:"Create a warehouse"`
	Update WarehouseUpdateCmd `cmd:"" help:"Rename a warehouse"`
	Delete WarehouseDeleteCmd `cmd:"" help:"Delete a warehouse (admin and up)"`
}

type WarehouseListCmd struct{}

func (w *WarehouseListCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureWarehouseManagement); err != nil {
		return err
	}
	warehouses, err := app.Client.GetAllWarehouses(ctx)
	if err != nil {
		return err
	}
	for _, warehouse := range warehouses {
		fmt.Fprintf(app.Out, "%4d  %s\n", warehouse.ID, warehouse.Name)
	}
	return nil
}

type WarehouseCreateCmd struct {
	Name string `arg:"" help:"Warehouse name"`
}

func (w *WarehouseCreateCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureWarehouseManagement); err != nil {
		return err
	}
	msg, err := app.Client.CreateWarehouse(ctx, domain.WarehouseRequest{Name: w.Name})
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, msg)
	return nil
}

type WarehouseUpdateCmd struct {
	ID   int    `arg:"" help:"Warehouse id"`
	Name string `arg:"" help:"New name"`
}

func (w *WarehouseUpdateCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureWarehouseManagement); err != nil {
		return err
	}
	if err := app.Client.UpdateWarehouse(ctx, w.ID, domain.WarehouseRequest{Name: w.Name}); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Warehouse %d updated\n", w.ID)
	return nil
}

type WarehouseDeleteCmd struct {
	ID int `arg:"" help:"Warehouse id"`
}

func (w *WarehouseDeleteCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireDelete(); err != nil {
		return err
	}
	if err := app.Client.DeleteWarehouse(ctx, w.ID); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Warehouse %d deleted\n", w.ID)
	return nil
}
