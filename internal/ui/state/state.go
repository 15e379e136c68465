package state

import (
	"fmt"
	"math"

	"scrollsync/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Viewed file
	FilePath string
	FileName string
	Lines    int
	Columns  int
	Reloads  int // times the file was reloaded after a change on disk

	// Scroll control, mirrored from its notifications
	Axis      domain.Axis
	Ratio     float64
	Dragging  bool
	DragCount int

	// UI state
	FocusedID     string
	StatusMessage string // status bar message
	StatusIsError bool
	PromptText    string // text typed into the goto prompt
}

// NewAppState creates a new application state
func NewAppState(axis domain.Axis) *AppState {
	return &AppState{Axis: axis}
}

// SetFile records the metrics of the viewed file
func (s *AppState) SetFile(path, name string, lines, columns int) {
	s.FilePath = path
	s.FileName = name
	s.Lines = lines
	s.Columns = columns
}

// Percent is the scroll position as the control announces it
func (s *AppState) Percent() int {
	return int(math.Round(s.Ratio * 100))
}

// SetStatus shows an informational message
func (s *AppState) SetStatus(format string, args ...interface{}) {
	s.StatusMessage = fmt.Sprintf(format, args...)
	s.StatusIsError = false
}

// SetError shows err in the status bar
func (s *AppState) SetError(err error) {
	if err == nil {
		return
	}
	s.StatusMessage = fmt.Sprintf("Error: %v", err)
	s.StatusIsError = true
}

// ClearStatus removes the status message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
