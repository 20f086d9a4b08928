// Package tui is an interactive browser for the posting queue preview.
// It renders the dry-run action list; nothing here posts or mutates
// the store.
package tui

import (
	"councilbot/types"
)

// Model holds the queue being browsed and the cursor position
type Model struct {
	Actions []types.Action
	Cursor  int

	Width  int
	Height int
}

// NewModel builds a browser over a dry-run action list
func NewModel(actions []types.Action) Model {
	return Model{Actions: actions}
}

func (m Model) selected() (types.Action, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Actions) {
		return types.Action{}, false
	}
	return m.Actions[m.Cursor], true
}
