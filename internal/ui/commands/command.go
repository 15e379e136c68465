package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"scrollsync/internal/ui/state"
)

var (
	// ErrInvalidNumber is returned for prompt text that is not a number
	ErrInvalidNumber = errors.New("not a number")
	// ErrOutOfRange is returned for numbers outside the content
	ErrOutOfRange = errors.New("out of range")
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// ScrollTarget is the programmatic surface of the scroll control
type ScrollTarget interface {
	ScrollTo(ratio float64)
	ScrollToOffset(px float64)
	Update()
	Focus()
	Ratio() float64
}

// CommandContext provides context for command execution
type CommandContext struct {
	State  *state.AppState
	Target ScrollTarget
}

// GotoOffsetCommand centres a 1-based line or column in the viewport
type GotoOffsetCommand struct {
	ctx  *CommandContext
	text string
	max  int
}

// NewGotoOffsetCommand creates a goto command bounded by max
func NewGotoOffsetCommand(ctx *CommandContext, text string, max int) *GotoOffsetCommand {
	return &GotoOffsetCommand{ctx: ctx, text: text, max: max}
}

// Execute scrolls so the middle of the requested cell sits at the viewport centre
func (c *GotoOffsetCommand) Execute() tea.Cmd {
	n, err := strconv.Atoi(strings.TrimSpace(c.text))
	if err != nil {
		c.ctx.State.SetError(fmt.Errorf("%w: %q", ErrInvalidNumber, c.text))
		return nil
	}
	if n < 1 || n > c.max {
		c.ctx.State.SetError(fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, n, c.max))
		return nil
	}
	c.ctx.Target.ScrollToOffset(float64(n) - 0.5)
	c.ctx.State.SetStatus("Went to %d", n)
	return nil
}

// GotoPercentCommand scrolls to a percentage of the range
type GotoPercentCommand struct {
	ctx  *CommandContext
	text string
}

// NewGotoPercentCommand creates a percent command
func NewGotoPercentCommand(ctx *CommandContext, text string) *GotoPercentCommand {
	return &GotoPercentCommand{ctx: ctx, text: text}
}

// Execute scrolls to the percentage; values past either end clamp
func (c *GotoPercentCommand) Execute() tea.Cmd {
	s := strings.TrimSuffix(strings.TrimSpace(c.text), "%")
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.ctx.State.SetError(fmt.Errorf("%w: %q", ErrInvalidNumber, c.text))
		return nil
	}
	c.ctx.Target.ScrollTo(p / 100)
	return nil
}

// JumpCommand scrolls to a fixed ratio
type JumpCommand struct {
	ctx   *CommandContext
	ratio float64
}

// NewJumpCommand creates a jump command
func NewJumpCommand(ctx *CommandContext, ratio float64) *JumpCommand {
	return &JumpCommand{ctx: ctx, ratio: ratio}
}

// Execute performs the jump
func (c *JumpCommand) Execute() tea.Cmd {
	c.ctx.Target.ScrollTo(c.ratio)
	return nil
}

// RemeasureCommand re-reads the layout geometry
type RemeasureCommand struct {
	ctx *CommandContext
}

// NewRemeasureCommand creates a remeasure command
func NewRemeasureCommand(ctx *CommandContext) *RemeasureCommand {
	return &RemeasureCommand{ctx: ctx}
}

// Execute re-measures and reapplies the current ratio
func (c *RemeasureCommand) Execute() tea.Cmd {
	c.ctx.Target.Update()
	c.ctx.State.SetStatus("Re-measured at %d%%", c.ctx.State.Percent())
	return nil
}

// FocusThumbCommand gives the thumb keyboard focus
type FocusThumbCommand struct {
	ctx *CommandContext
}

// NewFocusThumbCommand creates a focus command
func NewFocusThumbCommand(ctx *CommandContext) *FocusThumbCommand {
	return &FocusThumbCommand{ctx: ctx}
}

// Execute moves focus
func (c *FocusThumbCommand) Execute() tea.Cmd {
	c.ctx.Target.Focus()
	return nil
}
