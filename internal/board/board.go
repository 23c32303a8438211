// Package board holds the todo board state and the actions that change it.
//
// A Board is a value. Every action returns the next board and leaves the
// receiver untouched, so callers can keep or compare earlier states freely.
// Rejected input (blank text, unknown id, invalid filter) returns the board
// unchanged.
package board

import (
	"slices"
	"strings"
)

// Board is the whole state of one todo board.
type Board struct {
	items        []Item
	searchTerm   string
	filterMode   FilterMode
	composerOpen bool
	draftText    string

	editing   ID
	editDraft string

	newID IDFunc
}

// Option configures a Board built by New.
type Option func(*Board)

// WithIDFunc replaces the UUID generator.
func WithIDFunc(fn IDFunc) Option {
	return func(b *Board) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// WithFilterMode sets the initial filter. Invalid modes are ignored.
func WithFilterMode(m FilterMode) Option {
	return func(b *Board) {
		if m.Valid() {
			b.filterMode = m
		}
	}
}

// New returns an empty board with the all filter and UUID ids.
func New(opts ...Option) Board {
	b := Board{filterMode: FilterAll, newID: UUID}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Items returns a copy of every item in insertion order.
func (b Board) Items() []Item {
	return slices.Clone(b.items)
}

func (b Board) Len() int {
	return len(b.items)
}

func (b Board) SearchTerm() string {
	return b.searchTerm
}

func (b Board) FilterMode() FilterMode {
	return b.filterMode
}

func (b Board) ComposerOpen() bool {
	return b.composerOpen
}

// Draft is the composer text; empty while the composer is closed.
func (b Board) Draft() string {
	return b.draftText
}

func (b Board) EditDraft() string {
	return b.editDraft
}

// Editing returns the id of the item under in-place edit, if any.
func (b Board) Editing() (ID, bool) {
	return b.editing, b.editing != ""
}

func (b Board) IsEditing(id ID) bool {
	return id != "" && b.editing == id
}

// Item looks up one item by id.
func (b Board) Item(id ID) (Item, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return Item{}, false
	}
	return b.items[i], true
}

// AddItem appends a new active item with the trimmed text and closes the composer.
func (b Board) AddItem(raw string) Board {
	text := strings.TrimSpace(raw)
	if text == "" {
		return b
	}
	gen := b.newID
	if gen == nil {
		gen = UUID
	}
	id := gen()
	if id == "" || b.indexOf(id) >= 0 {
		return b
	}
	b.items = append(slices.Clip(b.items), Item{ID: id, Text: text})
	b.draftText = ""
	b.composerOpen = false
	return b
}

// RemoveItem drops the item with id and ends an edit in progress on it.
func (b Board) RemoveItem(id ID) Board {
	i := b.indexOf(id)
	if i < 0 {
		return b
	}
	b.items = slices.Delete(slices.Clone(b.items), i, i+1)
	if b.editing == id {
		b.editing, b.editDraft = "", ""
	}
	return b
}

// EditItem replaces the text of one item with newText as given.
// Blank text is rejected.
func (b Board) EditItem(id ID, newText string) Board {
	if strings.TrimSpace(newText) == "" {
		return b
	}
	i := b.indexOf(id)
	if i < 0 {
		return b
	}
	b.items = slices.Clone(b.items)
	b.items[i].Text = newText
	return b
}

// ToggleCompleted flips the completion flag of one item.
func (b Board) ToggleCompleted(id ID) Board {
	i := b.indexOf(id)
	if i < 0 {
		return b
	}
	b.items = slices.Clone(b.items)
	b.items[i].Completed = !b.items[i].Completed
	return b
}

// SetSearchTerm stores s verbatim.
func (b Board) SetSearchTerm(s string) Board {
	b.searchTerm = s
	return b
}

// SetFilterMode ignores modes outside all, active and completed.
func (b Board) SetFilterMode(m FilterMode) Board {
	if !m.Valid() {
		return b
	}
	b.filterMode = m
	return b
}

func (b Board) OpenComposer() Board {
	b.composerOpen = true
	return b
}

func (b Board) CancelComposer() Board {
	b.composerOpen = false
	b.draftText = ""
	return b
}

// SetDraft only takes effect while the composer is open.
func (b Board) SetDraft(s string) Board {
	if !b.composerOpen {
		return b
	}
	b.draftText = s
	return b
}

// BeginEdit starts an in-place edit pre-filled with the item's text.
func (b Board) BeginEdit(id ID) Board {
	it, ok := b.Item(id)
	if !ok {
		return b
	}
	b = b.CancelComposer()
	b.editing = id
	b.editDraft = it.Text
	return b
}

func (b Board) SetEditDraft(s string) Board {
	if b.editing == "" {
		return b
	}
	b.editDraft = s
	return b
}

// CommitEdit applies the edit draft and ends the edit. A blank draft ends
// the edit without changing the item.
func (b Board) CommitEdit() Board {
	if b.editing == "" {
		return b
	}
	b = b.EditItem(b.editing, b.editDraft)
	b.editing, b.editDraft = "", ""
	return b
}

func (b Board) CancelEdit() Board {
	b.editing, b.editDraft = "", ""
	return b
}

// Matches reports whether it belongs to the visible sequence.
func (b Board) Matches(it Item) bool {
	if !b.filterMode.Accepts(it.Completed) {
		return false
	}
	if b.searchTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Text), strings.ToLower(b.searchTerm))
}

// Visible returns the items passing both search and filter, in insertion order.
func (b Board) Visible() []Item {
	out := make([]Item, 0, len(b.items))
	for _, it := range b.items {
		if b.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}

// Stats counts the items on a board.
type Stats struct {
	Total     int
	Active    int
	Completed int
}

// Stats counts all items, ignoring search and filter.
func (b Board) Stats() Stats {
	s := Stats{Total: len(b.items)}
	for _, it := range b.items {
		if it.Completed {
			s.Completed++
		} else {
			s.Active++
		}
	}
	return s
}

func (b Board) indexOf(id ID) int {
	if id == "" {
		return -1
	}
	for i, it := range b.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
