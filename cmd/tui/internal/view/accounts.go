package view

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/client"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

var accountTypes = []string{"checking", "savings", "credit", "investment", "cash", "other"}

// NewAccountsModel builds the accounts list screen.
func NewAccountsModel(api *client.Client) ResourceModel[client.Account] {
	return NewResourceModel(Resource[client.Account]{
		Name:  "account",
		Title: "Accounts",
		Columns: []table.Column{
			{Title: "Name", Width: 24},
			{Title: "Type", Width: 12},
			{Title: "Balance", Width: 12},
			{Title: "Description", Width: 32},
		},
		Row: func(a client.Account) table.Row {
			return table.Row{a.Name, a.Type, FormatAmount(a.Balance), a.Description}
		},
		List: func(ctx context.Context, deletedOnly bool, page, limit int) ([]client.Account, pagination.Meta, error) {
			return api.Accounts.List(ctx, client.AccountFilter{OnlyDeleted: deletedOnly}, page, limit)
		},
		Delete: func(ctx context.Context, a client.Account) error {
			return api.Accounts.Delete(ctx, a.ID)
		},
		Restore: func(ctx context.Context, a client.Account) error {
			_, err := api.Accounts.Restore(ctx, a.ID)
			return err
		},
		Detail: func(ctx context.Context, a client.Account) (string, error) {
			full, err := api.Accounts.Get(ctx, a.ID)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("Account %s\n\nName: %s\nType: %s\nBalance: %s\nDescription: %s\nCreated: %s",
				full.ID, full.Name, full.Type, FormatAmount(full.Balance), full.Description, FormatDate(full.CreatedAt)), nil
		},
		CreateForm: func() (*ItemForm, error) { return accountForm(api, nil) },
		EditForm: func(a client.Account) (*ItemForm, error) {
			return accountForm(api, &a)
		},
		EmptyLive:    "No accounts yet. Press n to create one.",
		EmptyDeleted: "No deleted accounts.",
	})
}

func accountForm(api *client.Client, existing *client.Account) (*ItemForm, error) {
	var (
		name        string
		accType     string
		balance     string
		description string
	)

	if existing != nil {
		name = existing.Name
		accType = existing.Type
		balance = FormatAmount(existing.Balance)
		description = existing.Description
	}

	typeOptions := make([]huh.Option[string], len(accountTypes))
	for i, t := range accountTypes {
		typeOptions[i] = huh.NewOption(t, t)
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
				Options(typeOptions...).
				Value(&accType),
			huh.NewInput().
				Key("balance").
				Title("Balance").
				Value(&balance).
				Validate(validDecimal),
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&description),
		),
	).WithWidth(45).WithShowHelp(false)

	submit := func(ctx context.Context) error {
		var balPtr *decimal.Decimal

		if s := strings.TrimSpace(balance); s != "" {
			bal, err := decimal.NewFromString(s)
			if err != nil {
				return fmt.Errorf("invalid balance: %w", err)
			}

			balPtr = &bal
		}

		if existing == nil {
			_, err := api.Accounts.Create(ctx, client.CreateAccountParams{
				Name:        name,
				Type:        accType,
				Balance:     balPtr,
				Description: description,
			})

			return err
		}

		_, err := api.Accounts.Update(ctx, existing.ID, client.UpdateAccountParams{
			Name:        &name,
			Type:        &accType,
			Balance:     balPtr,
			Description: &description,
		})

		return err
	}

	return &ItemForm{Form: form, Submit: submit}, nil
}

func validDecimal(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return errors.New("must be a number")
	}

	return nil
}
