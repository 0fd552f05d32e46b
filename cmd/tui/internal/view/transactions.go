package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/jorge-ld8/budget-tracking-sub001/client"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

// NewTransactionsModel builds the transactions list screen.
func NewTransactionsModel(api *client.Client) ResourceModel[client.Transaction] {
	return NewResourceModel(Resource[client.Transaction]{
		Name:  "transaction",
		Title: "Transactions",
		Columns: []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Type", Width: 9},
			{Title: "Amount", Width: 12},
			{Title: "Description", Width: 40},
		},
		Row: func(tx client.Transaction) table.Row {
			return table.Row{FormatDate(tx.Date), tx.Type, FormatAmount(tx.Amount), tx.Description}
		},
		List: func(ctx context.Context, deletedOnly bool, page, limit int) ([]client.Transaction, pagination.Meta, error) {
			return api.Transactions.List(ctx, client.TransactionFilter{OnlyDeleted: deletedOnly}, page, limit)
		},
		Delete: func(ctx context.Context, tx client.Transaction) error {
			return api.Transactions.Delete(ctx, tx.ID)
		},
		Restore: func(ctx context.Context, tx client.Transaction) error {
			_, err := api.Transactions.Restore(ctx, tx.ID)
			return err
		},
		Detail: func(ctx context.Context, tx client.Transaction) (string, error) {
			full, err := api.Transactions.Get(ctx, tx.ID)
			if err != nil {
				return "", err
			}

			category, err := api.Categories.Get(ctx, full.CategoryID)
			if err != nil {
				return "", err
			}

			account, err := api.Accounts.Get(ctx, full.AccountID)
			if err != nil {
				return "", err
			}

			receipt := full.ReceiptURL
			if receipt == "" {
				receipt = "-"
			}

			return fmt.Sprintf("Transaction %s\n\nDate: %s\nType: %s\nAmount: %s\nDescription: %s\nCategory: %s\nAccount: %s\nReceipt: %s",
				full.ID, FormatDate(full.Date), full.Type, FormatAmount(full.Amount),
				full.Description, category.Name, account.Name, receipt), nil
		},
		CreateForm: func() (*ItemForm, error) { return transactionForm(api, nil) },
		EditForm: func(tx client.Transaction) (*ItemForm, error) {
			return transactionForm(api, &tx)
		},
		EmptyLive:    "No transactions yet. Press n to create one.",
		EmptyDeleted: "No deleted transactions.",
	})
}

func transactionForm(api *client.Client, existing *client.Transaction) (*ItemForm, error) {
	categoryOptions, accountOptions, err := transactionFormOptions(api)
	if err != nil {
		return nil, err
	}

	if len(categoryOptions) == 0 {
		return nil, errors.New("create a category first")
	}

	if len(accountOptions) == 0 {
		return nil, errors.New("create an account first")
	}

	var (
		amount      string
		txType      string
		description string
		date        string
		categoryID  string
		accountID   string
		receiptURL  string
	)

	if existing != nil {
		amount = FormatAmount(existing.Amount)
		txType = existing.Type
		description = existing.Description
		date = FormatDate(existing.Date)
		categoryID = existing.CategoryID.String()
		accountID = existing.AccountID.String()
		receiptURL = existing.ReceiptURL
	} else {
		date = FormatDate(time.Now())
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&amount).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil || !d.IsPositive() {
						return errors.New("must be a positive number")
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
				Value(&txType),
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("description cannot be empty")
					}

					return nil
				}),
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&date).
				Validate(validDate),
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categoryOptions...).
				Value(&categoryID),
			huh.NewSelect[string]().
				Key("account").
				Title("Account").
				Options(accountOptions...).
				Value(&accountID),
			huh.NewInput().
				Key("receiptUrl").
				Title("Receipt URL").
				Placeholder("https://...").
				Value(&receiptURL),
		),
	).WithWidth(45).WithShowHelp(false)

	submit := func(ctx context.Context) error {
		amt, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}

		day, err := time.Parse(time.DateOnly, strings.TrimSpace(date))
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}

		catID, err := parseUUID(categoryID)
		if err != nil {
			return fmt.Errorf("invalid category: %w", err)
		}

		acctID, err := parseUUID(accountID)
		if err != nil {
			return fmt.Errorf("invalid account: %w", err)
		}

		if existing == nil {
			_, err = api.Transactions.Create(ctx, client.CreateTransactionParams{
				Amount:      amt,
				Type:        txType,
				Description: description,
				Date:        &day,
				CategoryID:  catID,
				AccountID:   acctID,
				ReceiptURL:  receiptURL,
			})

			return err
		}

		_, err = api.Transactions.Update(ctx, existing.ID, client.UpdateTransactionParams{
			Amount:      &amt,
			Type:        &txType,
			Description: &description,
			Date:        &day,
			CategoryID:  &catID,
			AccountID:   &acctID,
			ReceiptURL:  &receiptURL,
		})

		return err
	}

	return &ItemForm{Form: form, Submit: submit}, nil
}

func transactionFormOptions(api *client.Client) ([]huh.Option[string], []huh.Option[string], error) {
	ctx, cancel := APICtx()
	defer cancel()

	categories, _, err := api.Categories.List(ctx, client.CategoryFilter{}, 1, 100)
	if err != nil {
		return nil, nil, err
	}

	accounts, _, err := api.Accounts.List(ctx, client.AccountFilter{}, 1, 100)
	if err != nil {
		return nil, nil, err
	}

	categoryOptions := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		categoryOptions[i] = huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.Type), c.ID.String())
	}

	accountOptions := make([]huh.Option[string], len(accounts))
	for i, a := range accounts {
		accountOptions[i] = huh.NewOption(a.Name, a.ID.String())
	}

	return categoryOptions, accountOptions, nil
}
