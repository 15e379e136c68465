package handlers

import (
	"scrollsync/internal/ui/state"
)

// ScrollEvent is raised each time the scroll control applies a ratio
type ScrollEvent struct {
	Ratio float64
}

// DragStartedEvent is raised when a thumb drag begins
type DragStartedEvent struct{}

// DragEndedEvent is raised when a thumb drag ends
type DragEndedEvent struct{}

// FocusChangedEvent is raised when the focused element changes
type FocusChangedEvent struct {
	ID string
}

// FileReloadedEvent is raised after the viewed file was read again
type FileReloadedEvent struct {
	Lines   int
	Columns int
}

// ConfigReloadedEvent is raised after the config file was applied again
type ConfigReloadedEvent struct {
	Axis string
}

// ErrorEvent carries a failure worth showing to the user
type ErrorEvent struct {
	Err error
}

// EventHandler handles notifications and updates state
type EventHandler struct {
	state *state.AppState
	logf  func(format string, args ...interface{})
}

// NewEventHandler creates a new event handler. logf may be nil.
func NewEventHandler(appState *state.AppState, logf func(format string, args ...interface{})) *EventHandler {
	return &EventHandler{state: appState, logf: logf}
}

// HandleEvent folds one notification into the state
func (h *EventHandler) HandleEvent(event interface{}) {
	switch e := event.(type) {
	case ScrollEvent:
		h.state.Ratio = e.Ratio

	case DragStartedEvent:
		h.state.Dragging = true
		h.state.DragCount++

	case DragEndedEvent:
		h.state.Dragging = false
		h.state.SetStatus("Moved to %d%%", h.state.Percent())

	case FocusChangedEvent:
		h.state.FocusedID = e.ID

	case FileReloadedEvent:
		h.state.Lines = e.Lines
		h.state.Columns = e.Columns
		h.state.Reloads++
		h.state.SetStatus("Reloaded %s (%d lines)", h.state.FileName, e.Lines)

	case ConfigReloadedEvent:
		h.state.SetStatus("Config reloaded (%s)", e.Axis)

	case ErrorEvent:
		h.state.SetError(e.Err)
		if h.logf != nil {
			h.logf("error: %v", e.Err)
		}
	}
}

// OnScroll adapts HandleEvent to the scroll control's observer
func (h *EventHandler) OnScroll(ratio float64) {
	h.HandleEvent(ScrollEvent{Ratio: ratio})
}

// OnDragStart adapts HandleEvent to the scroll control's observer
func (h *EventHandler) OnDragStart() {
	h.HandleEvent(DragStartedEvent{})
}

// OnDragEnd adapts HandleEvent to the scroll control's observer
func (h *EventHandler) OnDragEnd() {
	h.HandleEvent(DragEndedEvent{})
}
