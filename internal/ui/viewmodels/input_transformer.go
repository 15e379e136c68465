package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"scrollsync/internal/ui/input/types"
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      types.Mode
	vertical  bool
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(vertical bool) *InputTransformer {
	return &InputTransformer{
		mode:     types.ModeNormal,
		vertical: vertical,
	}
}

// SetMode sets the current input mode and the text input it edits
func (it *InputTransformer) SetMode(mode types.Mode, textInput *textinput.Model) {
	it.mode = mode
	it.textInput = textInput
}

// SetVertical picks line or column wording
func (it *InputTransformer) SetVertical(vertical bool) {
	it.vertical = vertical
}

// GetPrompt returns the prompt label and the rendered input. ok is false in
// normal mode.
func (it *InputTransformer) GetPrompt() (label, input string, ok bool) {
	if it.textInput != nil {
		input = it.textInput.View()
	}

	switch it.mode {
	case types.ModeGotoOffset:
		if it.vertical {
			return "Go to line:", input, true
		}
		return "Go to column:", input, true
	case types.ModeGotoPercent:
		return "Go to %:", input, true
	default:
		return "", "", false
	}
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	if it.mode == types.ModeNormal {
		return ""
	}
	return it.mode.String()
}
