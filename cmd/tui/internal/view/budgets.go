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

var budgetPeriods = []string{"daily", "weekly", "monthly", "yearly"}

// NewBudgetsModel builds the budgets list screen.
func NewBudgetsModel(api *client.Client) ResourceModel[client.Budget] {
	return NewResourceModel(Resource[client.Budget]{
		Name:  "budget",
		Title: "Budgets",
		Columns: []table.Column{
			{Title: "Amount", Width: 12},
			{Title: "Period", Width: 10},
			{Title: "Start", Width: 12},
			{Title: "End", Width: 12},
			{Title: "Recurring", Width: 10},
		},
		Row: func(b client.Budget) table.Row {
			recurring := "no"
			if b.IsRecurring {
				recurring = "yes"
			}

			return table.Row{FormatAmount(b.Amount), b.Period, b.StartDate, b.EndDate, recurring}
		},
		List: func(ctx context.Context, deletedOnly bool, page, limit int) ([]client.Budget, pagination.Meta, error) {
			return api.Budgets.List(ctx, client.BudgetFilter{OnlyDeleted: deletedOnly}, page, limit)
		},
		Delete: func(ctx context.Context, b client.Budget) error {
			return api.Budgets.Delete(ctx, b.ID)
		},
		Restore: func(ctx context.Context, b client.Budget) error {
			_, err := api.Budgets.Restore(ctx, b.ID)
			return err
		},
		Detail: func(ctx context.Context, b client.Budget) (string, error) {
			full, err := api.Budgets.Get(ctx, b.ID)
			if err != nil {
				return "", err
			}

			category, err := api.Categories.Get(ctx, full.CategoryID)
			if err != nil {
				return "", err
			}

			end := full.EndDate
			if end == "" {
				end = "-"
			}

			return fmt.Sprintf("Budget %s\n\nAmount: %s\nPeriod: %s\nCategory: %s\nStart: %s\nEnd: %s\nRecurring: %t",
				full.ID, FormatAmount(full.Amount), full.Period, category.Name, full.StartDate, end, full.IsRecurring), nil
		},
		CreateForm: func() (*ItemForm, error) { return budgetForm(api, nil) },
		EditForm: func(b client.Budget) (*ItemForm, error) {
			return budgetForm(api, &b)
		},
		EmptyLive:    "No budgets yet. Press n to create one.",
		EmptyDeleted: "No deleted budgets.",
	})
}

// budgetForm offers only expense categories; budgeting income makes no
// sense in the UI even though the API accepts it.
func budgetForm(api *client.Client, existing *client.Budget) (*ItemForm, error) {
	categoryOptions, err := expenseCategoryOptions(api)
	if err != nil {
		return nil, err
	}

	if len(categoryOptions) == 0 {
		return nil, errors.New("create an expense category first")
	}

	var (
		amount     string
		period     string
		categoryID string
		startDate  string
		endDate    string
		recurring  = true
	)

	if existing != nil {
		amount = FormatAmount(existing.Amount)
		period = existing.Period
		categoryID = existing.CategoryID.String()
		startDate = existing.StartDate
		endDate = existing.EndDate
		recurring = existing.IsRecurring
	} else {
		startDate = FormatDate(time.Now())
	}

	periodOptions := make([]huh.Option[string], len(budgetPeriods))
	for i, p := range budgetPeriods {
		periodOptions[i] = huh.NewOption(p, p)
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
				Key("period").
				Title("Period").
				Options(periodOptions...).
				Value(&period),
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categoryOptions...).
				Value(&categoryID),
			huh.NewInput().
				Key("startDate").
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(&startDate).
				Validate(validDate),
			huh.NewInput().
				Key("endDate").
				Title("End date (optional)").
				Placeholder("YYYY-MM-DD").
				Value(&endDate).
				Validate(validOptionalDate),
			huh.NewConfirm().
				Key("recurring").
				Title("Recurring?").
				Value(&recurring),
		),
	).WithWidth(45).WithShowHelp(false)

	submit := func(ctx context.Context) error {
		amt, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}

		catID, err := parseUUID(categoryID)
		if err != nil {
			return fmt.Errorf("invalid category: %w", err)
		}

		if existing == nil {
			_, err = api.Budgets.Create(ctx, client.CreateBudgetParams{
				Amount:      amt,
				Period:      period,
				CategoryID:  catID,
				StartDate:   startDate,
				EndDate:     endDate,
				IsRecurring: &recurring,
			})

			return err
		}

		_, err = api.Budgets.Update(ctx, existing.ID, client.UpdateBudgetParams{
			Amount:      &amt,
			Period:      &period,
			CategoryID:  &catID,
			StartDate:   &startDate,
			EndDate:     &endDate,
			IsRecurring: &recurring,
		})

		return err
	}

	return &ItemForm{Form: form, Submit: submit}, nil
}

func expenseCategoryOptions(api *client.Client) ([]huh.Option[string], error) {
	ctx, cancel := APICtx()
	defer cancel()

	categories, _, err := api.Categories.List(ctx, client.CategoryFilter{}, 1, 100)
	if err != nil {
		return nil, err
	}

	var options []huh.Option[string]

	for _, c := range categories {
		if c.Type != "expense" {
			continue
		}

		options = append(options, huh.NewOption(c.Name, c.ID.String()))
	}

	return options, nil
}

func validDate(s string) error {
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
		return errors.New("expected YYYY-MM-DD")
	}

	return nil
}

func validOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return validDate(s)
}
