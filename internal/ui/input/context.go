package input

import (
	"scrollsync/internal/domain"
	"scrollsync/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// FocusedID returns the focused element id
func (c *ModelContext) FocusedID() string {
	return c.State.FocusedID
}

// ContentLength counts along the scroll axis: lines when vertical, columns
// when horizontal
func (c *ModelContext) ContentLength() int {
	if c.Vertical() {
		return c.State.Lines
	}
	return c.State.Columns
}

// Vertical reports whether the scroll control runs top to bottom
func (c *ModelContext) Vertical() bool {
	return c.State.Axis == domain.Vertical
}
