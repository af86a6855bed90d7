package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/reselect/internal/editor"
	"github.com/ruminaider/reselect/internal/reselect"
	"github.com/ruminaider/reselect/internal/sectionlist"
)

// Model is the root bubbletea model: a list view, a detail pane and a status
// bar around one editor.
type Model struct {
	editor *editor.Editor
	view   *ListView
	detail DetailPane
	status StatusBar
	prompt Prompt
	logger *slog.Logger

	width, height int
	quitting      bool
}

// NewModel creates the root model over list and restores the selection of
// its detailed entry, if any.
func NewModel(list *sectionlist.List[editor.Entry], logger *slog.Logger) Model {
	view := NewListView(list)
	opts := []editor.Option{}
	if logger != nil {
		opts = append(opts, editor.WithLogger(logger))
	}
	m := Model{
		editor: editor.New(list, view, opts...),
		view:   view,
		logger: logger,
	}
	m.editor.Restore()
	m.syncStatus()
	return m
}

// Editor returns the model's editor.
func (m Model) Editor() *editor.Editor {
	return m.editor
}

// ListView returns the list view.
func (m Model) ListView() *ListView {
	return m.view
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case PromptCloseMsg:
		if msg.Confirmed {
			m.insertBelowCursor(msg.Value)
		}
		m.syncStatus()
		return m, nil

	case tea.KeyMsg:
		if m.prompt.Active() {
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status.SetMessage("", false)

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(+1)
	case "enter", " ":
		if pos, ok := m.view.Cursor(); ok {
			m.editor.Select(pos)
		}
	case "e":
		if m.editor.Editing() {
			m.editor.EndEditing()
		} else {
			m.editor.BeginEditing()
		}
	case "d", "x":
		if pos, ok := m.view.Cursor(); ok {
			m.report(m.editor.Delete(pos))
		}
	case "K":
		m.moveRow(-1)
	case "J":
		m.moveRow(+1)
	case "o":
		if m.view.SectionCount() == 0 {
			m.status.SetMessage("no section to insert into", true)
			break
		}
		m.prompt = NewPrompt("New row", "title")
	}
	m.syncStatus()
	return m, nil
}

// moveCursor moves the cursor; outside edit mode the row under it is
// selected as well.
func (m *Model) moveCursor(dir int) {
	m.view.MoveCursor(dir)
	if m.editor.Editing() {
		return
	}
	if pos, ok := m.view.Cursor(); ok {
		m.editor.Select(pos)
	}
}

// moveRow moves the cursor row one step, crossing into the neighbouring
// section at either end.
func (m *Model) moveRow(dir int) {
	from, ok := m.view.Cursor()
	if !ok {
		return
	}
	to, ok := m.neighbour(from, dir)
	if !ok {
		return
	}
	if err := m.editor.Move(from, to); err != nil {
		m.report(err)
		return
	}
	m.view.SetCursor(to)
}

// neighbour returns where a row at from lands after one step in dir.
func (m *Model) neighbour(from reselect.Position, dir int) (reselect.Position, bool) {
	if dir < 0 {
		if from.Row > 0 {
			return reselect.At(from.Section, from.Row-1), true
		}
		if from.Section > 0 {
			prev := from.Section - 1
			return reselect.At(prev, m.view.RowCount(prev)), true
		}
		return reselect.Position{}, false
	}
	if from.Row+1 < m.view.RowCount(from.Section) {
		return reselect.At(from.Section, from.Row+1), true
	}
	if from.Section+1 < m.view.SectionCount() {
		return reselect.At(from.Section+1, 0), true
	}
	return reselect.Position{}, false
}

func (m *Model) insertBelowCursor(title string) {
	at := reselect.At(0, 0)
	if pos, ok := m.view.Cursor(); ok {
		at = reselect.At(pos.Section, pos.Row+1)
	}
	if _, err := m.editor.Insert(at, title); err != nil {
		m.report(err)
		return
	}
	m.view.SetCursor(at)
	m.status.SetMessage(fmt.Sprintf("inserted %q", title), false)
}

func (m *Model) report(err error) {
	if err == nil {
		return
	}
	if m.logger != nil {
		m.logger.Warn("edit failed", "err", err)
	}
	m.status.SetMessage(err.Error(), true)
}

func (m *Model) syncStatus() {
	mode := ModeBrowse
	if m.editor.Editing() {
		mode = ModeEdit
	}
	pending := ""
	if pos, ok := m.editor.PendingPosition(); ok {
		entry, _ := m.editor.Pending()
		pending = fmt.Sprintf("%s %s", pos, entry.Title)
	}
	m.status.Update(mode, pending)
}

func (m *Model) layout() {
	listWidth := m.width - DetailWidth - 1
	if listWidth < 10 {
		listWidth = 10
	}
	bodyHeight := m.height - 1 // status bar
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.view.SetWidth(listWidth)
	m.view.SetHeight(bodyHeight)
	m.detail.SetHeight(bodyHeight)
	m.status.SetWidth(m.width)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	entry, ok := m.editor.Detailed()
	var pos reselect.Position
	found := false
	if ok {
		pos, found = m.editor.List().PositionOf(entry)
	}

	list := m.view.View()
	if m.width > 0 {
		list = lipgloss.NewStyle().Width(m.width - DetailWidth - 1).Render(list)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, m.detail.View(entry, ok, pos, found))

	bottom := m.status.View()
	if m.prompt.Active() {
		bottom = m.prompt.View()
	}
	return body + "\n" + bottom
}
