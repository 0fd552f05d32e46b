package view

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jorge-ld8/budget-tracking-sub001/client"
)

var currencies = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "INR"}

type profileState int

const (
	profileStateShow profileState = iota
	profileStateEdit
)

// ProfileModel shows the logged-in user and lets them edit their profile.
type ProfileModel struct {
	CommonModel
	api *client.Client

	state profileState
	user  client.User
	form  *huh.Form

	firstName string
	lastName  string
	email     string
	currency  string
	password  string

	loading bool
	err     error
	status  string
}

func NewProfileModel(api *client.Client) ProfileModel {
	return ProfileModel{api: api, loading: true}
}

func (m ProfileModel) Title() string { return "Profile" }

func (m ProfileModel) ShortHelp() string {
	if m.state == profileStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | e: edit"
}

type profileLoadMsg struct {
	user client.User
	err  error
}

type profileSaveMsg struct {
	user client.User
	err  error
}

func (m ProfileModel) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		u, err := m.api.Users.Me(ctx)

		return profileLoadMsg{user: u, err: err}
	}
}

func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadMsg:
		m.loading = false
		m.err = msg.err
		m.user = msg.user

		return m, nil

	case profileSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.user = msg.user
			m.status = "profile updated"
		}

		m.state = profileStateShow
		m.form = nil

		return m, nil

	case tea.KeyMsg:
		if m.state == profileStateShow {
			switch msg.String() {
			case "esc":
				return m, Back
			case "e":
				return m.enterEdit()
			}

			return m, nil
		}

		if msg.Type == tea.KeyEsc {
			m.state = profileStateShow
			m.form = nil

			return m, nil
		}
	}

	if m.state == profileStateEdit && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		return m, m.saveCmd()
	}

	return m, nil
}

func (m ProfileModel) enterEdit() (tea.Model, tea.Cmd) {
	m.firstName = m.user.FirstName
	m.lastName = m.user.LastName
	m.email = m.user.Email
	m.currency = m.user.Currency
	m.password = ""
	m.status = ""

	currencyOptions := make([]huh.Option[string], len(currencies))
	for i, c := range currencies {
		currencyOptions[i] = huh.NewOption(c, c)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&m.email),
			huh.NewInput().
				Key("firstName").
				Title("First name").
				Value(&m.firstName),
			huh.NewInput().
				Key("lastName").
				Title("Last name").
				Value(&m.lastName),
			huh.NewSelect[string]().
				Key("currency").
				Title("Currency").
				Options(currencyOptions...).
				Value(&m.currency),
			huh.NewInput().
				Key("password").
				Title("New password (leave blank to keep)").
				EchoMode(huh.EchoModePassword).
				Value(&m.password).
				Validate(func(s string) error {
					if s != "" && len(s) < 8 {
						return errors.New("password must be at least 8 characters")
					}

					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = profileStateEdit

	return m, m.form.Init()
}

func (m ProfileModel) saveCmd() tea.Cmd {
	params := client.UpdateProfileParams{
		Email:     &m.email,
		FirstName: &m.firstName,
		LastName:  &m.lastName,
		Currency:  &m.currency,
	}

	if m.password != "" {
		params.Password = &m.password
	}

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		u, err := m.api.Users.UpdateMe(ctx, params)

		return profileSaveMsg{user: u, err: err}
	}
}

func (m ProfileModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading profile...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	admin := ""
	if m.user.IsAdmin {
		admin = " (admin)"
	}

	content := lipgloss.NewStyle().Bold(true).PaddingBottom(1).Render("Profile"+admin) + "\n" +
		fmt.Sprintf("Username: %s\nEmail: %s\nName: %s %s\nCurrency: %s\nMember since: %s",
			m.user.Username, m.user.Email, m.user.FirstName, m.user.LastName,
			m.user.Currency, FormatDate(m.user.CreatedAt))

	if m.state == profileStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content += "\n\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	content += "\n\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
