package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scrollsync/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.FocusNext):
		return []types.Action{types.FocusNextAction{}}, true

	case key.Matches(msg, m.keys.FocusThumb):
		return []types.Action{types.FocusThumbAction{}}, true

	case key.Matches(msg, m.keys.GotoOffset):
		if ctx.ContentLength() == 0 {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGotoOffset}}, true

	case key.Matches(msg, m.keys.GotoPercent):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGotoPercent}}, true

	case key.Matches(msg, m.keys.Top):
		return []types.Action{types.JumpAction{Ratio: 0}}, true

	case key.Matches(msg, m.keys.Bottom):
		return []types.Action{types.JumpAction{Ratio: 1}}, true

	case key.Matches(msg, m.keys.Remeasure):
		return []types.Action{types.RemeasureAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
