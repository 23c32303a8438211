package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"todoboard/internal/board"
	"todoboard/internal/config"
	"todoboard/internal/logging"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeComposer
	modeEdit
)

const defaultWidth = 80

// Model renders one board. The board is the only state that matters for
// what is shown; cursor, focus and width are view bookkeeping.
type Model struct {
	board board.Board
	keys  keyMap
	help  help.Model
	log   *log.Logger

	cursor    int
	searching bool
	width     int

	search   textinput.Model
	composer textinput.Model
	editor   textinput.Model
}

func New(cfg config.Config, logger *log.Logger, opts ...board.Option) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	opts = append([]board.Option{board.WithFilterMode(cfg.Filter())}, opts...)

	search := textinput.New()
	search.Placeholder = "Search Notes..."
	search.Prompt = ""

	composer := textinput.New()
	composer.Placeholder = "Add a new todo"

	editor := textinput.New()
	editor.Prompt = ""

	m := Model{
		board:    board.New(opts...),
		keys:     newKeyMap(cfg.Keys),
		help:     help.New(),
		log:      logger,
		search:   search,
		composer: composer,
		editor:   editor,
	}
	m.resize(defaultWidth)
	return m
}

func Run(cfg config.Config, logger *log.Logger) error {
	m := New(cfg, logger)
	m.log.Info("board started", "filter", m.board.FilterMode())

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	if fm, ok := final.(Model); ok {
		s := fm.board.Stats()
		fm.log.Info("board closed", "items", s.Total, "completed", s.Completed)
	}
	return nil
}

// Board returns the current board state.
func (m Model) Board() board.Board {
	return m.board
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) focus() mode {
	switch {
	case m.board.ComposerOpen():
		return modeComposer
	case m.editing():
		return modeEdit
	case m.searching:
		return modeSearch
	default:
		return modeList
	}
}

func (m Model) editing() bool {
	_, ok := m.board.Editing()
	return ok
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus() {
		case modeComposer:
			return m.updateComposer(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeSearch:
			return m.updateSearch(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m.updateInput(msg)
}

func (m *Model) resize(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	m.width = width
	m.help.Width = width
	inputWidth := max(width-30, 10)
	m.search.Width = inputWidth
	m.composer.Width = inputWidth
	m.editor.Width = inputWidth
}

// updateInput forwards non-key messages (cursor blink) to the focused input.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus() {
	case modeComposer:
		m.composer, cmd = m.composer.Update(msg)
	case modeEdit:
		m.editor, cmd = m.editor.Update(msg)
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.board.Visible()
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.down):
		m.cursor = clampCursor(m.cursor+1, len(visible))
	case key.Matches(msg, m.keys.up):
		m.cursor = clampCursor(m.cursor-1, len(visible))
	case key.Matches(msg, m.keys.add):
		m.board = m.board.OpenComposer()
		m.composer.Reset()
		m.log.Debug("composer opened")
		return m, m.composer.Focus()
	case key.Matches(msg, m.keys.search):
		m.searching = true
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.filter):
		m.board = m.board.SetFilterMode(m.board.FilterMode().Next())
		m.log.Debug("filter changed", "filter", m.board.FilterMode())
		m.clamp()
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.toggle):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.board = m.board.ToggleCompleted(it.ID)
		m.log.Debug("item toggled", "id", it.ID, "completed", !it.Completed)
		m.clamp()
	case key.Matches(msg, m.keys.remove):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.board = m.board.RemoveItem(it.ID)
		m.log.Debug("item removed", "id", it.ID)
		m.clamp()
	case key.Matches(msg, m.keys.edit):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.board = m.board.BeginEdit(it.ID)
		m.editor.SetValue(m.board.EditDraft())
		m.editor.CursorEnd()
		return m, m.editor.Focus()
	}
	return m, nil
}

func (m Model) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel):
		m.board = m.board.CancelComposer()
		m.composer.Reset()
		m.composer.Blur()
		m.log.Debug("composer cancelled")
		return m, nil
	case key.Matches(msg, m.keys.confirm):
		before := m.board.Len()
		m.board = m.board.AddItem(m.board.Draft())
		if m.board.Len() == before {
			return m, nil
		}
		items := m.board.Items()
		added := items[len(items)-1]
		m.composer.Reset()
		m.composer.Blur()
		m.moveTo(added.ID)
		m.log.Debug("item added", "id", added.ID)
		return m, nil
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	m.board = m.board.SetDraft(m.composer.Value())
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel):
		m.board = m.board.CancelEdit()
		m.editor.Blur()
		return m, nil
	case key.Matches(msg, m.keys.confirm):
		id, _ := m.board.Editing()
		before, _ := m.board.Item(id)
		m.board = m.board.CommitEdit()
		m.editor.Blur()
		if after, ok := m.board.Item(id); ok && after.Text != before.Text {
			m.log.Debug("item edited", "id", id)
		}
		m.clamp()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.board = m.board.SetEditDraft(m.editor.Value())
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.confirm):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.cancel):
		m.searching = false
		m.search.Reset()
		m.search.Blur()
		m.board = m.board.SetSearchTerm("")
		m.clamp()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if term := m.search.Value(); term != m.board.SearchTerm() {
		m.board = m.board.SetSearchTerm(term)
		m.clamp()
	}
	return m, cmd
}

func (m Model) selected() (board.Item, bool) {
	visible := m.board.Visible()
	if len(visible) == 0 {
		return board.Item{}, false
	}
	return visible[clampCursor(m.cursor, len(visible))], true
}

func (m *Model) clamp() {
	m.cursor = clampCursor(m.cursor, len(m.board.Visible()))
}

// moveTo puts the cursor on id when it is visible.
func (m *Model) moveTo(id board.ID) {
	for i, it := range m.board.Visible() {
		if it.ID == id {
			m.cursor = i
			return
		}
	}
	m.clamp()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderToolbar())
	b.WriteString("\n\n")

	if m.board.ComposerOpen() {
		b.WriteString(m.renderComposer())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, addButtonStyle.Render("+")))
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	s := m.board.Stats()
	counts := fmt.Sprintf("%s %d active  %s %d done  %d total",
		pendingStyle.Render("•"), s.Active,
		successStyle.Render("✔"), s.Completed,
		s.Total,
	)
	return titleStyle.Render("Todo List") + "   " + mutedStyle.Render(counts)
}

func (m Model) renderToolbar() string {
	modes := board.FilterModes()
	labels := make([]string, 0, len(modes))
	for _, f := range modes {
		if f == m.board.FilterMode() {
			labels = append(labels, filterActiveStyle.Render(f.String()))
		} else {
			labels = append(labels, filterStyle.Render(f.String()))
		}
	}
	return "Search: " + m.search.View() + "   Filter:" + strings.Join(labels, "")
}

func (m Model) renderComposer() string {
	controls := fmt.Sprintf("%s Cancel      %s Add Todo",
		buttonStyle.Render(m.keys.cancel.Help().Key),
		buttonStyle.Render(m.keys.confirm.Help().Key),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		dialogTitleStyle.Render("NEW NOTE"),
		"",
		m.composer.View(),
		"",
		controls,
	)
	return dialogStyle.Render(body)
}

func (m Model) renderList() string {
	visible := m.board.Visible()
	if len(visible) == 0 {
		if m.board.Len() == 0 {
			return mutedStyle.Render(fmt.Sprintf("No todos yet. Press '%s' to add one.", m.keys.add.Help().Key))
		}
		return mutedStyle.Render("No todos match.")
	}

	cursor := clampCursor(m.cursor, len(visible))
	var b strings.Builder
	for i, it := range visible {
		b.WriteString(m.renderRow(it, i == cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRow(it board.Item, current bool) string {
	prefix := "  "
	if current && m.focus() != modeComposer {
		prefix = selectedStyle.Render("> ")
	}

	box := mutedStyle.Render(boxUnchecked)
	if it.Completed {
		box = successStyle.Render(boxChecked)
	}

	text := textStyle(it.Completed).Render(it.Text)
	if m.board.IsEditing(it.ID) {
		text = m.editor.View()
	}

	affordances := mutedStyle.Render(editGlyph + " " + deleteGlyph)
	return fmt.Sprintf("%s%s %s  %s", prefix, box, text, affordances)
}

func (m Model) renderHelp() string {
	switch m.focus() {
	case modeComposer:
		return m.help.ShortHelpView(m.keys.dialogHelp("add todo", "cancel"))
	case modeEdit:
		return m.help.ShortHelpView(m.keys.dialogHelp("save", "discard"))
	case modeSearch:
		return m.help.ShortHelpView(m.keys.dialogHelp("done", "clear search"))
	default:
		return m.help.View(m.keys)
	}
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
