package ui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoboard/internal/board"
	"todoboard/internal/config"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(config.Default(), nil, board.WithIDFunc(board.Sequence()))
	return applyMsg(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	out, ok := updated.(Model)
	require.True(t, ok, "expected Model, got %T", updated)
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m = applyMsg(t, m, k)
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func addTodo(t *testing.T, m Model, text string) Model {
	t.Helper()
	return press(t, m, keyRunes("a"), keyRunes(text), enter)
}

func visibleTexts(m Model) []string {
	var out []string
	for _, it := range m.Board().Visible() {
		out = append(out, it.Text)
	}
	return out
}

func TestComposerAddsTrimmedItem(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyRunes("a"))
	require.True(t, m.Board().ComposerOpen())
	assert.Contains(t, m.View(), "NEW NOTE")

	m = press(t, m, keyRunes("  Buy milk  "))
	assert.Equal(t, "  Buy milk  ", m.Board().Draft())

	m = press(t, m, enter)
	assert.False(t, m.Board().ComposerOpen())
	assert.Equal(t, "", m.Board().Draft())
	assert.NotContains(t, m.View(), "NEW NOTE")

	items := m.Board().Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].Text)
	assert.False(t, items[0].Completed)
}

func TestComposerBlankSubmitStaysOpen(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyRunes("a"), keyRunes("   "), enter)
	assert.True(t, m.Board().ComposerOpen())
	assert.Equal(t, 0, m.Board().Len())

	m = press(t, m, esc)
	assert.False(t, m.Board().ComposerOpen())
	assert.Equal(t, "", m.Board().Draft())
	assert.Equal(t, 0, m.Board().Len())
}

func TestPlusOpensComposer(t *testing.T) {
	m := press(t, newTestModel(t), keyRunes("+"))
	assert.True(t, m.Board().ComposerOpen())
}

func TestComposerCapturesListKeys(t *testing.T) {
	m := press(t, newTestModel(t), keyRunes("a"), keyRunes("q"), keyRunes("d"))
	assert.True(t, m.Board().ComposerOpen())
	assert.Equal(t, "qd", m.Board().Draft())
}

func TestToggleAndFilterScenario(t *testing.T) {
	m := newTestModel(t)
	m = addTodo(t, m, "a")
	m = addTodo(t, m, "b")

	// cursor follows the last added item; move back to "a"
	m = press(t, m, keyRunes("k"), space)
	it, ok := m.Board().Item("1")
	require.True(t, ok)
	require.True(t, it.Completed)

	m = press(t, m, keyRunes("f"))
	assert.Equal(t, board.FilterActive, m.Board().FilterMode())
	assert.Equal(t, []string{"b"}, visibleTexts(m))

	m = press(t, m, keyRunes("f"))
	assert.Equal(t, board.FilterCompleted, m.Board().FilterMode())
	assert.Equal(t, []string{"a"}, visibleTexts(m))

	m = press(t, m, keyRunes("f"))
	assert.Equal(t, board.FilterAll, m.Board().FilterMode())
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	m := addTodo(t, newTestModel(t), "Milk")

	m = press(t, m, keyRunes("/"), keyRunes("mil"))
	assert.Equal(t, "mil", m.Board().SearchTerm())
	assert.Equal(t, []string{"Milk"}, visibleTexts(m))

	m = press(t, m, enter)
	assert.Equal(t, "mil", m.Board().SearchTerm(), "enter keeps the term")

	m = press(t, m, keyRunes("/"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, keyRunes("eggs"))
	assert.Equal(t, "eggs", m.Board().SearchTerm())
	assert.Empty(t, visibleTexts(m))
	assert.Contains(t, m.View(), "No todos match.")

	m = press(t, m, esc)
	assert.Equal(t, "", m.Board().SearchTerm(), "esc clears the term")
	assert.Equal(t, []string{"Milk"}, visibleTexts(m))
}

func TestInPlaceEdit(t *testing.T) {
	m := addTodo(t, newTestModel(t), "draft")

	m = press(t, m, keyRunes("e"))
	id, ok := m.Board().Editing()
	require.True(t, ok)
	assert.Equal(t, board.ID("1"), id)
	assert.Equal(t, "draft", m.Board().EditDraft())

	m = press(t, m, keyRunes(" v2"), esc)
	it, _ := m.Board().Item("1")
	assert.Equal(t, "draft", it.Text, "cancelled edit is a no-op")

	m = press(t, m, keyRunes("e"), keyRunes(" v2"), enter)
	it, _ = m.Board().Item("1")
	assert.Equal(t, "draft v2", it.Text)
	_, ok = m.Board().Editing()
	assert.False(t, ok)
}

func TestInputsKeepLongText(t *testing.T) {
	long := strings.Repeat("ü", 300)

	m := addTodo(t, newTestModel(t), long)
	items := m.Board().Items()
	require.Len(t, items, 1)
	assert.Equal(t, 300, utf8.RuneCountInString(items[0].Text))

	m = press(t, m, keyRunes("e"), keyRunes(long), enter)
	it, _ := m.Board().Item("1")
	assert.Equal(t, long+long, it.Text)

	m = press(t, m, keyRunes("/"), keyRunes(long))
	assert.Equal(t, long, m.Board().SearchTerm())
}

func TestEditLogsOnlyChanges(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	m := New(config.Default(), logger, board.WithIDFunc(board.Sequence()))
	m = applyMsg(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = addTodo(t, m, "ab")

	backspace := tea.KeyMsg{Type: tea.KeyBackspace}
	m = press(t, m, keyRunes("e"), backspace, backspace, keyRunes("  "), enter)
	it, _ := m.Board().Item("1")
	assert.Equal(t, "ab", it.Text)
	assert.NotContains(t, buf.String(), "item edited", "blank draft is discarded")

	m = press(t, m, keyRunes("e"), enter)
	assert.NotContains(t, buf.String(), "item edited", "unchanged text")

	m = press(t, m, keyRunes("e"), keyRunes("c"), enter)
	it, _ = m.Board().Item("1")
	assert.Equal(t, "abc", it.Text)
	assert.Contains(t, buf.String(), "item edited")
}

func TestDeleteSelected(t *testing.T) {
	m := newTestModel(t)
	m = addTodo(t, m, "a")
	m = addTodo(t, m, "b")
	m = addTodo(t, m, "c")

	m = press(t, m, keyRunes("k"), keyRunes("d"))
	assert.Equal(t, []string{"a", "c"}, visibleTexts(m))
	assert.Equal(t, 1, m.cursor)

	m = press(t, m, down, keyRunes("d"))
	assert.Equal(t, []string{"a"}, visibleTexts(m))
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, keyRunes("d"), keyRunes("d"))
	assert.Equal(t, 0, m.Board().Len())
	assert.Contains(t, m.View(), "No todos yet.")
}

func TestActionsOnEmptyBoardAreNoops(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, space, keyRunes("d"), keyRunes("e"), down, keyRunes("k"))
	assert.Equal(t, 0, m.Board().Len())
	_, ok := m.Board().Editing()
	assert.False(t, ok)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = press(t, m, keyRunes("a"))
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewRendersRows(t *testing.T) {
	m := newTestModel(t)
	m = addTodo(t, m, "walk dog")
	m = addTodo(t, m, "feed cat")
	m = press(t, m, space)

	view := m.View()
	assert.Contains(t, view, "Todo List")
	assert.Contains(t, view, "Search:")
	for _, f := range board.FilterModes() {
		assert.Contains(t, view, f.String())
	}
	assert.Contains(t, view, boxUnchecked+" walk dog")
	assert.Contains(t, view, boxChecked+" feed cat")
	assert.Contains(t, view, editGlyph)
	assert.Contains(t, view, deleteGlyph)
	assert.Contains(t, view, "+")
	assert.Equal(t, 1, strings.Count(view, "> "), "exactly one row carries the cursor")
}

func TestCompletedTextIsStruckThrough(t *testing.T) {
	assert.True(t, textStyle(true).GetStrikethrough())
	assert.False(t, textStyle(false).GetStrikethrough())
}

func TestDefaultFilterFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultFilter = "completed"
	m := New(cfg, nil)
	assert.Equal(t, board.FilterCompleted, m.Board().FilterMode())
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(3, 0))
	assert.Equal(t, 0, clampCursor(-1, 4))
	assert.Equal(t, 3, clampCursor(9, 4))
	assert.Equal(t, 2, clampCursor(2, 4))
}
