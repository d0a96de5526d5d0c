package commands

import (
	"context"
	"fmt"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
)

// CategoryCmd groups category CRUD.
type CategoryCmd struct {
	List   CategoryListCmd   `cmd:"" help:"List categories"`
	Create CategoryCreateCmd `cmd:"" help:"Create a category"`
	Update CategoryUpdateCmd `cmd:"" help:"Rename a category"`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a category (admin and up)"`
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureCategoryManagement); err != nil {
		return err
	}
	categories, err := app.Client.GetAllCategories(ctx)
	if err != nil {
		return err
	}
	for _, category := range categories {
		fmt.Fprintf(app.Out, "%4d  %s\n", category.ID, category.Name)
	}
	return nil
}

type CategoryCreateCmd struct {
	Name string `arg:"" help:"Category name"`
}

func (c *CategoryCreateCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureCategoryManagement); err != nil {
		return err
	}
	msg, err := app.Client.CreateCategory(ctx, c.Name)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, msg)
	return nil
}

type CategoryUpdateCmd struct {
	ID   int    `arg:"" help:"Category id"`
	Name string `arg:"" help:"New name"`
}

func (c *CategoryUpdateCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireFeature(auth.FeatureCategoryManagement); err != nil {
		return err
	}
	if err := app.Client.UpdateCategory(ctx, c.ID, c.Name); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Category %d updated\n", c.ID)
	return nil
}

type CategoryDeleteCmd struct {
	ID int `arg:"" help:"Category id"`
}

func (c *CategoryDeleteCmd) Run(ctx context.Context, app *App) error {
	if err := app.requireDelete(); err != nil {
		return err
	}
	if err := app.Client.DeleteCategory(ctx, c.ID); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Category %d deleted\n", c.ID)
	return nil
}
