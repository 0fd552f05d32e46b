package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jorge-ld8/budget-tracking-sub001/client"
	"github.com/jorge-ld8/budget-tracking-sub001/cmd/tui/internal/view"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/config"
)

type model struct {
	api *client.Client

	currentView View
	username    string

	loginView        view.LoginModel
	accountsView     view.ResourceModel[client.Account]
	categoriesView   view.ResourceModel[client.Category]
	budgetsView      view.ResourceModel[client.Budget]
	transactionsView view.ResourceModel[client.Transaction]
	profileView      view.ProfileModel
}

type View int

const (
	ViewLogin View = iota
	ViewMenu
	ViewAccounts
	ViewCategories
	ViewBudgets
	ViewTransactions
	ViewProfile
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	api := client.New(cfg.Client.APIURL)

	return model{
		api:         api,
		currentView: ViewLogin,
		loginView:   view.NewLoginModel(api),
	}
}

func (m model) Init() tea.Cmd {
	return m.loginView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case view.LoggedInMsg:
		m.currentView = ViewMenu
		m.username = msg.User.Username

		return m, nil

	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAccounts
				m.accountsView = view.NewAccountsModel(m.api)

				return m, m.accountsView.Init()
			case "2":
				m.currentView = ViewCategories
				m.categoriesView = view.NewCategoriesModel(m.api)

				return m, m.categoriesView.Init()
			case "3":
				m.currentView = ViewBudgets
				m.budgetsView = view.NewBudgetsModel(m.api)

				return m, m.budgetsView.Init()
			case "4":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.api)

				return m, m.transactionsView.Init()
			case "5":
				m.currentView = ViewProfile
				m.profileView = view.NewProfileModel(m.api)

				return m, m.profileView.Init()
			}

			return m, nil
		}
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewAccounts:
		var newModel tea.Model
		newModel, cmd = m.accountsView.Update(msg)
		m.accountsView = newModel.(view.ResourceModel[client.Account])
	case ViewCategories:
		var newModel tea.Model
		newModel, cmd = m.categoriesView.Update(msg)
		m.categoriesView = newModel.(view.ResourceModel[client.Category])
	case ViewBudgets:
		var newModel tea.Model
		newModel, cmd = m.budgetsView.Update(msg)
		m.budgetsView = newModel.(view.ResourceModel[client.Budget])
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.ResourceModel[client.Transaction])
	case ViewProfile:
		var newModel tea.Model
		newModel, cmd = m.profileView.Update(msg)
		m.profileView = newModel.(view.ProfileModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Budget Tracker - " + m.username + "\n\n" +
				"1. Accounts\n" +
				"2. Categories\n" +
				"3. Budgets\n" +
				"4. Transactions\n" +
				"5. Profile\n\n" +
				"q. Quit",
		)
	case ViewAccounts:
		return m.accountsView.View()
	case ViewCategories:
		return m.categoriesView.View()
	case ViewBudgets:
		return m.budgetsView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewProfile:
		return m.profileView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
