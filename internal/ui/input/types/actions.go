package types

// Focus actions
type FocusNextAction struct{}

func (a FocusNextAction) Type() string { return "focus_next" }

type FocusThumbAction struct{}

func (a FocusThumbAction) Type() string { return "focus_thumb" }

// Scroll actions
type JumpAction struct {
	Ratio float64 // 0 for the start, 1 for the end
}

func (a JumpAction) Type() string { return "jump" }

type RemeasureAction struct{}

func (a RemeasureAction) Type() string { return "remeasure" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
