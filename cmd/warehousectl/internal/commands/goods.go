package commands

import (
	"context"
	"fmt"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

// GoodsCmd groups goods CRUD.
type GoodsCmd struct {
	List   GoodsListCmd   `cmd:"" help:"List stocked goods, optionally per warehouse"`
	Create GoodsCreateCmd `cmd:"" help:"Stock a new item"`
	Update GoodsUpdateCmd `cmd:"" help:"Update a stocked item"`
	Delete GoodsDeleteCmd `cmd:"" help:"Delete a stocked item (admin and up)"`
}

type GoodsListCmd struct {
	Warehouse int `help:"Only goods of this warehouse id"`
}

func (g *GoodsListCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureGoodsManagement); err != nil {
		return err
	}

	var (
		items []domain.Goods
		err   error
	)
	if g.Warehouse > 0 {
		items, err = app.Client.GetGoodsByWarehouse(ctx, g.Warehouse)
	} else {
		items, err = app.Client.GetAllGoods(ctx)
	}
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Fprintf(app.Out, "%4d  %-20s %5d %-6s %-15s %s/%s/%s\n",
			item.ID, item.Name, item.Quantity, item.Unit, item.CategoryName,
			item.WarehouseName, item.FloorName, item.RoomName)
	}
	return nil
}

type GoodsCreateCmd struct {
	Name      string `arg:"" help:"Item name"`
	Quantity  int    `help:"Quantity" required:""`
	Unit      string `help:"Unit, e.g. pcs or kg" required:""`
	Category  int    `help:"Category id" required:""`
	Room      int    `help:"Room id" required:""`
	Floor     int    `help:"Floor id" required:""`
	Warehouse int    `help:"Warehouse id" required:""`
}

func (g *GoodsCreateCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureGoodsManagement); err != nil {
		return err
	}
	msg, err := app.Client.CreateGoods(ctx, domain.GoodsRequest{
		Name:        g.Name,
		Quantity:    g.Quantity,
		Unit:        g.Unit,
		CategoryID:  g.Category,
		RoomID:      g.Room,
		FloorID:     g.Floor,
		WarehouseID: g.Warehouse,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, msg)
	return nil
}

type GoodsUpdateCmd struct {
	ID        int    `arg:"" help:"Item id"`
	Name      string `arg:"" help:"New name"`
	Quantity  int    `help:"Quantity" required:""`
	Unit      string `help:"Unit" required:""`
	Category  int    `help:"Category id" required:""`
	Room      int    `help:"Room id" required:""`
	Floor     int    `help:"Floor id" required:""`
	Warehouse int    `help:"Warehouse id" required:""`
}

func (g *GoodsUpdateCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureGoodsManagement); err != nil {
		return err
	}
	err := app.Client.UpdateGoods(ctx, g.ID, domain.GoodsRequest{
		Name:        g.Name,
		Quantity:    g.Quantity,
		Unit:        g.Unit,
		CategoryID:  g.Category,
		RoomID:      g.Room,
		FloorID:     g.Floor,
		WarehouseID: g.Warehouse,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Goods %d updated\n", g.ID)
	return nil
}

type GoodsDeleteCmd struct {
	ID int `arg:"" help:"Item id"`
}

func (g *GoodsDeleteCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireDelete(); err != nil {
		return err
	}
	if err := app.Client.DeleteGoods(ctx, g.ID); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Goods %d deleted\n", g.ID)
	return nil
}
