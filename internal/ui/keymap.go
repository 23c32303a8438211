package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"

	"todoboard/internal/config"
)

type keyMap struct {
	quit    key.Binding
	add     key.Binding
	up      key.Binding
	down    key.Binding
	toggle  key.Binding
	remove  key.Binding
	edit    key.Binding
	search  key.Binding
	filter  key.Binding
	confirm key.Binding
	cancel  key.Binding
	help    key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	d := config.Default().Keys
	return keyMap{
		quit:    newBinding(k.Quit, d.Quit, "quit", "ctrl+c"),
		add:     newBinding(k.Add, d.Add, "new todo", "+"),
		up:      newBinding(k.Up, d.Up, "up", "up"),
		down:    newBinding(k.Down, d.Down, "down", "down"),
		toggle:  newBinding(k.Toggle, d.Toggle, "toggle done"),
		remove:  newBinding(k.Delete, d.Delete, "delete"),
		edit:    newBinding(k.Edit, d.Edit, "edit"),
		search:  newBinding(k.Search, d.Search, "search"),
		filter:  newBinding(k.Filter, d.Filter, "cycle filter"),
		confirm: newBinding(k.Confirm, d.Confirm, "confirm"),
		cancel:  newBinding(k.Cancel, d.Cancel, "cancel"),
		help:    newBinding(k.Help, d.Help, "more help"),
	}
}

func newBinding(configured, fallback, desc string, extra ...string) key.Binding {
	keys, help := parseBindingKeys(configured, fallback)
	return key.NewBinding(key.WithKeys(append(keys, extra...)...), key.WithHelp(help, desc))
}

// parseBindingKeys turns a configured key name into key.Binding matchers.
// Blank input uses fallback.
func parseBindingKeys(raw, fallback string) ([]string, string) {
	if raw == " " {
		raw = "space"
	}
	v := strings.TrimSpace(raw)
	if v == "" {
		v = fallback
	}
	if v == " " || strings.EqualFold(v, "space") {
		return []string{" ", "space"}, "space"
	}
	if utf8.RuneCountInString(v) == 1 {
		return []string{v}, v
	}
	return []string{strings.ToLower(v)}, v
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.add, k.toggle, k.edit, k.remove, k.search, k.filter, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down},
		{k.add, k.toggle, k.edit, k.remove},
		{k.search, k.filter, k.help, k.quit},
	}
}

// dialogHelp lists the two controls of an open input, labelled for it.
func (k keyMap) dialogHelp(confirmDesc, cancelDesc string) []key.Binding {
	confirm, cancel := k.confirm, k.cancel
	confirm.SetHelp(confirm.Help().Key, confirmDesc)
	cancel.SetHelp(cancel.Help().Key, cancelDesc)
	return []key.Binding{confirm, cancel}
}
