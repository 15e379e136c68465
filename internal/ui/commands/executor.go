package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"scrollsync/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, target ScrollTarget) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:  state,
			Target: target,
		},
	}
}

// SetTarget points the executor at a rebuilt scroll control
func (e *Executor) SetTarget(target ScrollTarget) {
	e.ctx.Target = target
}

// ExecuteGotoOffset creates and executes a goto line/column command
func (e *Executor) ExecuteGotoOffset(text string, max int) tea.Cmd {
	cmd := NewGotoOffsetCommand(e.ctx, text, max)
	return cmd.Execute()
}

// ExecuteGotoPercent creates and executes a goto percent command
func (e *Executor) ExecuteGotoPercent(text string) tea.Cmd {
	cmd := NewGotoPercentCommand(e.ctx, text)
	return cmd.Execute()
}

// ExecuteJump creates and executes a jump command
func (e *Executor) ExecuteJump(ratio float64) tea.Cmd {
	cmd := NewJumpCommand(e.ctx, ratio)
	return cmd.Execute()
}

// ExecuteRemeasure creates and executes a remeasure command
func (e *Executor) ExecuteRemeasure() tea.Cmd {
	cmd := NewRemeasureCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteFocusThumb creates and executes a focus command
func (e *Executor) ExecuteFocusThumb() tea.Cmd {
	cmd := NewFocusThumbCommand(e.ctx)
	return cmd.Execute()
}
