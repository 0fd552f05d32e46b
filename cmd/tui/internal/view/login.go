package view

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jorge-ld8/budget-tracking-sub001/client"
)

// LoggedInMsg is emitted once the API has accepted the credentials and the
// client holds a token.
type LoggedInMsg struct {
	User client.User
}

type loginResultMsg struct {
	user client.User
	err  error
}

type loginMode int

const (
	modeLogin loginMode = iota
	modeRegister
)

// LoginModel authenticates against the API before the menu is shown.
type LoginModel struct {
	CommonModel
	api *client.Client

	mode loginMode
	form *huh.Form

	username string
	password string
	email    string

	submitting bool
	errMsg     string
}

func NewLoginModel(api *client.Client) LoginModel {
	m := LoginModel{api: api}
	m.form = m.buildForm()

	return m
}

func (m LoginModel) Title() string     { return "Sign In" }
func (m LoginModel) ShortHelp() string { return "tab: switch login/register | Ctrl+C: quit" }

func (m *LoginModel) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("username").
			Title("Username").
			Value(&m.username).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("username cannot be empty")
				}

				return nil
			}),
	}

	if m.mode == modeRegister {
		fields = append(fields,
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&m.email).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return errors.New("invalid email")
					}

					return nil
				}),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&m.password).
			Validate(func(s string) error {
				if len(s) < 8 {
					return errors.New("password must be at least 8 characters")
				}

				return nil
			}),
	)

	return huh.NewForm(huh.NewGroup(fields...)).WithWidth(45).WithShowHelp(false)
}

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false

		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.password = ""
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg { return LoggedInMsg{User: msg.user} }

	case tea.KeyMsg:
		if msg.Type == tea.KeyTab && !m.submitting {
			if m.mode == modeLogin {
				m.mode = modeRegister
			} else {
				m.mode = modeLogin
			}

			m.errMsg = ""
			m.form = m.buildForm()

			return m, m.form.Init()
		}
	}

	if m.submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.submitting = true
	m.errMsg = ""

	return m, m.submitCmd()
}

func (m LoginModel) submitCmd() tea.Cmd {
	mode := m.mode
	username := m.username
	password := m.password
	email := m.email

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		if mode == modeRegister {
			if _, err := m.api.Users.Register(ctx, client.RegisterParams{
				Username: username,
				Email:    email,
				Password: password,
			}); err != nil {
				return loginResultMsg{err: err}
			}
		}

		u, err := m.api.Users.Login(ctx, username, password)

		return loginResultMsg{user: u, err: err}
	}
}

func (m LoginModel) View() string {
	title := "Sign In"
	if m.mode == modeRegister {
		title = "Create Account"
	}

	content := lipgloss.NewStyle().Bold(true).PaddingBottom(1).Render(title)

	if m.submitting {
		content += "\n" + "Signing in..."
	} else {
		content += "\n" + m.form.View()
	}

	if m.errMsg != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.errMsg)
	}

	content += "\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
