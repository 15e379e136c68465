package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"scrollsync/internal/ui/input/types"
)

// NewGotoOffsetMode prompts for a 1-based line or column number
func NewGotoOffsetMode(ti *textinput.Model) TextInputMode {
	return NewTextInputMode(types.ModeGotoOffset, "goto", ti, isDigit)
}

// NewGotoPercentMode prompts for a percentage of the scroll range
func NewGotoPercentMode(ti *textinput.Model) TextInputMode {
	return NewTextInputMode(types.ModeGotoPercent, "percent", ti, func(r rune) bool {
		return isDigit(r) || r == '.' || r == '%'
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
