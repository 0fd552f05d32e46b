package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

const pageSize = 10

// ItemForm pairs a huh form with the API call to run once it completes.
type ItemForm struct {
	Form   *huh.Form
	Submit func(ctx context.Context) error
}

// Resource describes one entity well enough for ResourceModel to browse,
// create, edit, soft-delete and restore it. Restore and Detail are optional;
// a nil Restore hides the restore key, a nil Detail renders the row in place.
// List must return live rows when deletedOnly is false and exclusively
// deleted rows when it is true; the two views never mix.
type Resource[T any] struct {
	Name         string
	Title        string
	Columns      []table.Column
	Row          func(T) table.Row
	List         func(ctx context.Context, deletedOnly bool, page, limit int) ([]T, pagination.Meta, error)
	Delete       func(ctx context.Context, item T) error
	Restore      func(ctx context.Context, item T) error
	Detail       func(ctx context.Context, item T) (string, error)
	CreateForm   func() (*ItemForm, error)
	EditForm     func(item T) (*ItemForm, error)
	EmptyLive    string
	EmptyDeleted string
}

type resourceState int

const (
	resourceStateBrowse resourceState = iota
	resourceStateForm
	resourceStateDetail
)

// ResourceModel is the list screen shared by every entity.
type ResourceModel[T any] struct {
	CommonModel
	cfg Resource[T]

	state resourceState
	table table.Model
	items []T
	meta  pagination.Meta
	page  int

	showDeleted bool
	form        *ItemForm
	detail      string

	loading bool
	err     error
	status  string
}

func NewResourceModel[T any](cfg Resource[T]) ResourceModel[T] {
	t := table.New(
		table.WithColumns(cfg.Columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ResourceModel[T]{cfg: cfg, table: t, page: 1}
}

func (m ResourceModel[T]) Title() string { return m.cfg.Title }

func (m ResourceModel[T]) ShortHelp() string {
	switch m.state {
	case resourceStateForm:
		return "Navigate form | Esc: cancel"
	case resourceStateDetail:
		return "Esc: close"
	default:
		help := "Esc: back | enter: detail | n: new | [/]: page | x: deleted"
		if m.showDeleted {
			if m.cfg.Restore != nil {
				help += " | r: restore"
			}
		} else {
			help += " | e: edit | d: delete"
		}

		return help
	}
}

func (m ResourceModel[T]) Init() tea.Cmd {
	return m.loadCmd()
}

type resourceLoadMsg[T any] struct {
	items []T
	meta  pagination.Meta
	err   error
}

type resourceOpMsg struct {
	status string
	err    error
}

type resourceDetailMsg struct {
	body string
	err  error
}

func (m ResourceModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resourceLoadMsg[T]:
		m.loading = false

		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.items = msg.items
		m.meta = msg.meta
		m.refreshTable()

		return m, nil

	case resourceOpMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = msg.status
		m.state = resourceStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case resourceDetailMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.detail = msg.body
		m.state = resourceStateDetail

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.table.SetHeight(msg.Height - 10)

		return m, nil
	}

	switch m.state {
	case resourceStateBrowse:
		return m.updateBrowse(msg)
	case resourceStateForm:
		return m.updateForm(msg)
	case resourceStateDetail:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			m.state = resourceStateBrowse
			m.detail = ""
		}

		return m, nil
	}

	return m, nil
}

func (m ResourceModel[T]) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "x":
			m.showDeleted = !m.showDeleted
			m.page = 1
			m.loading = true
			m.status = ""

			return m, m.loadCmd()
		case "[":
			if m.page > 1 {
				m.page--
				m.loading = true

				return m, m.loadCmd()
			}

			return m, nil
		case "]":
			if m.page < m.meta.TotalPages {
				m.page++
				m.loading = true

				return m, m.loadCmd()
			}

			return m, nil
		case "n":
			if m.cfg.CreateForm != nil {
				return m.openForm(m.cfg.CreateForm)
			}

			return m, nil
		case "e":
			if !m.showDeleted {
				item, ok := m.selected()
				if !ok {
					return m, nil
				}

				return m.openForm(func() (*ItemForm, error) { return m.cfg.EditForm(item) })
			}

			return m, nil
		case "d":
			if !m.showDeleted {
				return m, m.deleteCmd()
			}

			return m, nil
		case "r":
			if m.showDeleted && m.cfg.Restore != nil {
				return m, m.restoreCmd()
			}

			return m, nil
		case "enter":
			return m, m.detailCmd()
		}
	}

	var cmd tea.Cmd

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ResourceModel[T]) openForm(build func() (*ItemForm, error)) (tea.Model, tea.Cmd) {
	form, err := build()
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	m.form = form
	m.state = resourceStateForm
	m.status = ""
	m.table.Blur()

	return m, m.form.Form.Init()
}

func (m ResourceModel[T]) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = resourceStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form.Form = f
	}

	if m.form.Form.State != huh.StateCompleted {
		return m, cmd
	}

	submit := m.form.Submit
	name := m.cfg.Name

	return m, func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		if err := submit(ctx); err != nil {
			return resourceOpMsg{err: err}
		}

		return resourceOpMsg{status: name + " saved"}
	}
}

func (m ResourceModel[T]) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading " + m.cfg.Title + "...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := m.cfg.Title
	if m.showDeleted {
		header += " " + lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("(deleted)")
	}

	header += fmt.Sprintf("  page %d/%d (%d total)", m.meta.Page, max(m.meta.TotalPages, 1), m.meta.Count)

	var body string

	if len(m.items) == 0 {
		empty := m.cfg.EmptyLive
		if m.showDeleted {
			empty = m.cfg.EmptyDeleted
		}

		body = lipgloss.NewStyle().Faint(true).Padding(1, 0).Render(empty)
	} else {
		body = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		body,
	)

	switch m.state {
	case resourceStateForm:
		if m.form != nil {
			panel := lipgloss.NewStyle().
				Padding(1, 2).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Width(48).
				Render(m.form.Form.View())

			content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
		}
	case resourceStateDetail:
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(m.detail)

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	content += "\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ResourceModel[T]) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))
	for _, item := range m.items {
		rows = append(rows, m.cfg.Row(item))
	}

	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m ResourceModel[T]) selected() (T, bool) {
	var zero T

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return zero, false
	}

	return m.items[idx], true
}

func (m ResourceModel[T]) loadCmd() tea.Cmd {
	showDeleted := m.showDeleted
	page := m.page

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		items, meta, err := m.cfg.List(ctx, showDeleted, page, pageSize)

		return resourceLoadMsg[T]{items: items, meta: meta, err: err}
	}
}

func (m ResourceModel[T]) deleteCmd() tea.Cmd {
	item, ok := m.selected()
	if !ok {
		return nil
	}

	name := m.cfg.Name

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		if err := m.cfg.Delete(ctx, item); err != nil {
			return resourceOpMsg{err: err}
		}

		return resourceOpMsg{status: name + " deleted"}
	}
}

func (m ResourceModel[T]) restoreCmd() tea.Cmd {
	item, ok := m.selected()
	if !ok {
		return nil
	}

	name := m.cfg.Name

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		if err := m.cfg.Restore(ctx, item); err != nil {
			return resourceOpMsg{err: err}
		}

		return resourceOpMsg{status: name + " restored"}
	}
}

func (m ResourceModel[T]) detailCmd() tea.Cmd {
	item, ok := m.selected()
	if !ok {
		return nil
	}

	if m.cfg.Detail == nil {
		row := m.cfg.Row(item)

		lines := make([]string, len(m.cfg.Columns))
		for i, col := range m.cfg.Columns {
			lines[i] = fmt.Sprintf("%s: %s", col.Title, row[i])
		}

		body := strings.Join(lines, "\n")

		return func() tea.Msg { return resourceDetailMsg{body: body} }
	}

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		body, err := m.cfg.Detail(ctx, item)

		return resourceDetailMsg{body: body, err: err}
	}
}
