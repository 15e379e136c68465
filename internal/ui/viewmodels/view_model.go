package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"scrollsync/internal/domain"
	"scrollsync/internal/source"
	"scrollsync/internal/ui/input/types"
	"scrollsync/internal/ui/layout"
	"scrollsync/internal/ui/state"
	"scrollsync/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	width            int
	height           int
	help             help.Model
	marker           string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model. A non-empty marker prefixes the
// footer.
func NewViewModel(appState *state.AppState, marker string) *ViewModel {
	return &ViewModel{
		state:            appState,
		help:             help.New(),
		marker:           marker,
		inputTransformer: NewInputTransformer(appState.Axis == domain.Vertical),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode, textInput *textinput.Model) {
	vm.inputTransformer.SetVertical(vm.state.Axis == domain.Vertical)
	vm.inputTransformer.SetMode(mode, textInput)
}

// InputMode names the active prompt, empty in normal mode
func (vm *ViewModel) InputMode() string {
	return vm.inputTransformer.GetInputModeString()
}

// Footer renders the prompt while one is open, the short help otherwise
func (vm *ViewModel) Footer(keys help.KeyMap, renderer *views.Renderer) string {
	var footer string
	if label, input, ok := vm.inputTransformer.GetPrompt(); ok {
		footer = renderer.RenderPrompt(label, input)
	} else {
		footer = vm.help.View(keys)
	}
	if vm.marker != "" {
		footer = vm.marker + " " + footer
	}
	return footer
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(viewer *layout.Viewer, file *source.File, keys help.KeyMap, renderer *views.Renderer) views.ViewState {
	return views.ViewState{
		Viewer:        viewer,
		File:          file,
		FocusedID:     vm.state.FocusedID,
		Dragging:      vm.state.Dragging,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		Footer:        vm.Footer(keys, renderer),
	}
}
