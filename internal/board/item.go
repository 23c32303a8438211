package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ID identifies an item for the lifetime of a board.
type ID string

// IDFunc produces a fresh item id on every call.
type IDFunc func() ID

// Item is a single todo entry.
type Item struct {
	ID        ID
	Text      string
	Completed bool
}

// UUID is the default id generator.
func UUID() ID {
	return ID(uuid.NewString())
}

// Sequence returns a generator yielding "1", "2", "3", ...
func Sequence() IDFunc {
	next := 0
	return func() ID {
		next++
		return ID(strconv.Itoa(next))
	}
}

// FilterMode selects items by completion state.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterActive
	FilterCompleted
)

var filterNames = [...]string{
	FilterAll:       "all",
	FilterActive:    "active",
	FilterCompleted: "completed",
}

// FilterModes lists the modes in selector order.
func FilterModes() []FilterMode {
	return []FilterMode{FilterAll, FilterActive, FilterCompleted}
}

func (m FilterMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("FilterMode(%d)", int(m))
	}
	return filterNames[m]
}

// Valid reports whether m is one of the three modes.
func (m FilterMode) Valid() bool {
	return m >= FilterAll && m <= FilterCompleted
}

// Next cycles all -> active -> completed -> all.
func (m FilterMode) Next() FilterMode {
	if !m.Valid() {
		return FilterAll
	}
	return (m + 1) % FilterMode(len(filterNames))
}

// Accepts reports whether an item with the given completion state passes the filter.
func (m FilterMode) Accepts(completed bool) bool {
	switch m {
	case FilterAll:
		return true
	case FilterActive:
		return !completed
	case FilterCompleted:
		return completed
	default:
		return false
	}
}

// ParseFilterMode accepts "all", "active" or "completed", ignoring case and spaces.
func ParseFilterMode(s string) (FilterMode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range filterNames {
		if name == v {
			return FilterMode(i), nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter mode %q", s)
}
