package view

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"

	"github.com/jorge-ld8/budget-tracking-sub001/client"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

// NewCategoriesModel builds the categories list screen.
func NewCategoriesModel(api *client.Client) ResourceModel[client.Category] {
	return NewResourceModel(Resource[client.Category]{
		Name:  "category",
		Title: "Categories",
		Columns: []table.Column{
			{Title: "Name", Width: 24},
			{Title: "Type", Width: 10},
			{Title: "Icon", Width: 8},
			{Title: "Color", Width: 10},
		},
		Row: func(c client.Category) table.Row {
			return table.Row{c.Name, c.Type, c.Icon, c.Color}
		},
		List: func(ctx context.Context, deletedOnly bool, page, limit int) ([]client.Category, pagination.Meta, error) {
			return api.Categories.List(ctx, client.CategoryFilter{OnlyDeleted: deletedOnly}, page, limit)
		},
		Delete: func(ctx context.Context, c client.Category) error {
			return api.Categories.Delete(ctx, c.ID)
		},
		Restore: func(ctx context.Context, c client.Category) error {
			_, err := api.Categories.Restore(ctx, c.ID)
			return err
		},
		CreateForm: func() (*ItemForm, error) { return categoryForm(api, nil) },
		EditForm: func(c client.Category) (*ItemForm, error) {
			return categoryForm(api, &c)
		},
		EmptyLive:    "No categories yet. Press n to create one.",
		EmptyDeleted: "No deleted categories.",
	})
}

func categoryForm(api *client.Client, existing *client.Category) (*ItemForm, error) {
	var (
		name    string
		catType string
		icon    string
		color   string
	)

	if existing != nil {
		name = existing.Name
		catType = existing.Type
		icon = existing.Icon
		color = existing.Color
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}

					return nil
				}),
			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("expense", "expense"),
					huh.NewOption("income", "income"),
				).
				Value(&catType),
			huh.NewInput().
				Key("icon").
				Title("Icon").
				Value(&icon),
			huh.NewInput().
				Key("color").
				Title("Color").
				Placeholder("#aabbcc").
				Value(&color),
		),
	).WithWidth(45).WithShowHelp(false)

	submit := func(ctx context.Context) error {
		if existing == nil {
			_, err := api.Categories.Create(ctx, client.CreateCategoryParams{
				Name:  name,
				Type:  catType,
				Icon:  icon,
				Color: color,
			})

			return err
		}

		_, err := api.Categories.Update(ctx, existing.ID, client.UpdateCategoryParams{
			Name:  &name,
			Type:  &catType,
			Icon:  &icon,
			Color: &color,
		})

		return err
	}

	return &ItemForm{Form: form, Submit: submit}, nil
}
