// Package tui is the terminal presentation layer. It renders whatever
// the event service returns and translates keystrokes into service
// calls; all listing, filtering and edit-session state lives in the
// service, never here.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/AryanAbsalan/CityMeet/internal/domain"
	"github.com/AryanAbsalan/CityMeet/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const displayDateLayout = "02.01.2006 15:04"

// focusRegion identifies where keyboard input is routed.
type focusRegion int

const (
	// focusList means navigation keys move the event list cursor.
	focusList focusRegion = iota
	// focusSearch means keystrokes go to the title search input.
	focusSearch
	// focusCity means keystrokes go to the city filter input.
	focusCity
	// focusForm means the create/edit form is open and owns all input.
	focusForm
	// focusConfirm means the delete confirmation prompt is active.
	focusConfirm
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Search  key.Binding
	City    key.Binding
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Decline key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search title")),
		City:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "filter city")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new event")),
		Edit:    key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		Decline: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the bubbletea root model for the event listing screen.
type Model struct {
	svc *service.EventService
	ctx context.Context

	search textinput.Model
	city   textinput.Model
	form   formView

	visible []domain.Event
	cursor  int
	focus   focusRegion

	// pendingDelete holds the confirmation target; the delete itself
	// only happens after the user answers yes.
	pendingDelete *domain.Event

	status string
	keys   keyMap
	styles styles
	width  int
}

func New(svc *service.EventService) *Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search by title"
	search.Width = 30

	city := textinput.New()
	city.Prompt = "city: "
	city.Placeholder = "all cities"
	city.Width = 20

	m := &Model{
		svc:    svc,
		ctx:    context.Background(),
		search: search,
		city:   city,
		keys:   defaultKeyMap(),
		styles: defaultStyles(),
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// refresh pulls a fresh visible list from the service and keeps the
// cursor on a valid row.
func (m *Model) refresh() {
	visible, err := m.svc.ListVisible(m.ctx)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.visible = visible
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() *domain.Event {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return &m.visible[m.cursor]
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.focus {
		case focusForm:
			return m.updateForm(msg)
		case focusConfirm:
			return m.updateConfirm(msg)
		case focusSearch, focusCity:
			return m.updateFilterInput(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.City):
		m.focus = focusCity
		return m, m.city.Focus()
	case key.Matches(msg, m.keys.New):
		m.openForm(func() error {
			m.svc.RequestCreate()
			return nil
		})
	case key.Matches(msg, m.keys.Edit):
		if e := m.selected(); e != nil {
			id := e.ID
			m.openForm(func() error {
				return m.svc.RequestEdit(m.ctx, id)
			})
		}
	case key.Matches(msg, m.keys.Delete):
		if e := m.selected(); e != nil {
			target := *e
			m.pendingDelete = &target
			m.focus = focusConfirm
		}
	}
	return m, nil
}

// openForm runs the session transition and, when it succeeds, loads
// the prefilled form data from the service.
func (m *Model) openForm(transition func() error) {
	if err := transition(); err != nil {
		m.status = err.Error()
		return
	}
	data, err := m.svc.CurrentForm(m.ctx)
	if err != nil {
		m.svc.CancelEdit()
		m.status = err.Error()
		return
	}
	m.form = newFormView(data, m.svc.EditMode())
	m.focus = focusForm
	m.status = ""
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.svc.CancelEdit()
		m.focus = focusList
		m.status = ""
		return m, nil
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	case "enter":
		event, err := m.svc.SubmitEdit(m.ctx, m.form.data())
		if err != nil {
			m.form.errLine = err.Error()
			return m, nil
		}
		m.focus = focusList
		m.status = fmt.Sprintf("saved %q (id %d)", event.Title, event.ID)
		m.refresh()
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.pendingDelete != nil {
			if err := m.svc.RequestDelete(m.ctx, m.pendingDelete.ID); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("deleted event %d", m.pendingDelete.ID)
			}
		}
		m.pendingDelete = nil
		m.focus = focusList
		m.refresh()
	case key.Matches(msg, m.keys.Decline), key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.pendingDelete = nil
		m.focus = focusList
	}
	return m, nil
}

func (m *Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.search.Blur()
		m.city.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusSearch {
		m.search, cmd = m.search.Update(msg)
		m.svc.SetSearchText(m.search.Value())
	} else {
		m.city, cmd = m.city.Update(msg)
		m.svc.SetCityFilter(m.city.Value())
	}
	m.refresh()
	return m, cmd
}

func (m *Model) View() string {
	if m.focus == focusForm {
		return m.form.view(m.styles)
	}

	var b strings.Builder
	b.WriteString(m.styles.header.Render("City Meetings: Events"))
	b.WriteString("\n")
	b.WriteString(m.styles.subheader.Render("Your guide to local events."))
	b.WriteString("\n\n")

	b.WriteString(m.search.View())
	b.WriteString("   ")
	b.WriteString(m.city.View())
	b.WriteString("\n\n")

	if m.focus == focusConfirm && m.pendingDelete != nil {
		prompt := fmt.Sprintf("Delete %q? (y/n)", m.pendingDelete.Title)
		b.WriteString(m.styles.modal.Render(prompt))
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(m.styles.dim.Render("No events match the current filters."))
		b.WriteString("\n")
	}
	for i, e := range m.visible {
		line := m.eventLine(e)
		if i == m.cursor && m.focus != focusConfirm {
			b.WriteString(m.styles.selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.normal.Render("  " + line))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.dim.Render("    " + e.Description))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(
		"↑/↓ move · / search · c city · n new · enter edit · d delete · q quit",
	))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) eventLine(e domain.Event) string {
	line := fmt.Sprintf("%s — %s, %s", e.Title, e.City, e.DateTime.Format(displayDateLayout))
	if e.Category != nil {
		line += " " + m.styles.category.Render("["+*e.Category+"]")
	}
	return line
}
