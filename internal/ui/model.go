package ui

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"scrollsync/internal/config"
	"scrollsync/internal/domain"
	"scrollsync/internal/eventbus"
	"scrollsync/internal/source"
	"scrollsync/internal/ui/commands"
	"scrollsync/internal/ui/coordinator"
	"scrollsync/internal/ui/handlers"
	"scrollsync/internal/ui/input"
	inputtypes "scrollsync/internal/ui/input/types"
	"scrollsync/internal/ui/layout"
	"scrollsync/internal/ui/schedule"
	"scrollsync/internal/ui/state"
	"scrollsync/internal/ui/viewmodels"
	"scrollsync/internal/ui/views"
)

// ReadyMarker is shown in the footer when Options.ReadyMarker is set
const ReadyMarker = "__READY__"

// Options configures NewModel
type Options struct {
	File   *source.File
	Config *config.Config

	// ConfigSvc reloads the config when the watcher reports a write; may be nil
	ConfigSvc config.ConfigService
	// Override is applied to every loaded config, e.g. command line flags
	Override func(*config.Config)
	// Watcher reports writes to the viewed file and the config file; may be nil
	Watcher *config.Watcher

	Logf        func(format string, args ...interface{})
	ReadyMarker bool
}

// Model represents the UI state
type Model struct {
	opts Options
	cfg  *config.Config
	file *source.File

	bus    eventbus.EventBus
	viewer *layout.Viewer
	sched  *schedule.Scheduler
	scroll *coordinator.Coordinator

	state  *state.AppState // centralized state
	width  int
	height int
	ready  bool

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler

	ctx    context.Context
	cancel context.CancelFunc

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Override != nil {
		opts.Override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	axis, _ := cfg.Scrollbar.Axis()

	m := &Model{
		opts:         opts,
		cfg:          cfg,
		file:         opts.File,
		bus:          eventbus.New(),
		sched:        schedule.New(),
		state:        state.NewAppState(axis),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.eventHandler = handlers.NewEventHandler(m.state, opts.Logf)
	marker := ""
	if opts.ReadyMarker {
		marker = ReadyMarker
	}
	m.viewModel = viewmodels.NewViewModel(m.state, marker)
	if m.file != nil {
		m.state.SetFile(m.file.Path, m.file.Name(), m.file.LineCount(), m.file.Width())
	}

	if err := m.buildScroll(axis); err != nil {
		return nil, err
	}
	m.cmdExecutor = commands.NewExecutor(m.state, m.scroll)
	return m, nil
}

// buildScroll creates the element tree for axis and attaches a scroll
// control to it
func (m *Model) buildScroll(axis domain.Axis) error {
	m.viewer = layout.NewViewer(m.bus, axis)
	m.arrange()

	opts := coordinator.DefaultOptions()
	opts.TrackID = layout.IDTrack
	opts.ThumbID = layout.IDThumb
	opts.ViewportID = layout.IDViewport
	opts.ContentIDs = m.viewer.ContentIDs()
	opts.Axis = axis
	opts.KeyboardSteps = m.cfg.Scrollbar.KeyboardSteps
	opts.TrackClick = m.cfg.Scrollbar.TrackClick
	opts.AutoResize = m.cfg.Scrollbar.AutoResize
	opts.ResizeDelay = m.cfg.Scrollbar.ResizeDelay()
	opts.OnScroll = m.eventHandler.OnScroll
	opts.OnDragStart = m.eventHandler.OnDragStart
	opts.OnDragEnd = m.eventHandler.OnDragEnd
	opts.Logf = m.opts.Logf

	scroll, err := coordinator.New(m.viewer.Doc, m.bus, m.sched, opts)
	if err != nil {
		return fmt.Errorf("failed to create scroll control: %w", err)
	}
	m.scroll = scroll
	m.state.Axis = axis
	m.inputHandler = input.New(inputtypes.DefaultKeyMap(axis == domain.Vertical))
	return nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init starts watching for file changes
func (m *Model) Init() tea.Cmd {
	if m.opts.Watcher == nil {
		return nil
	}
	return waitForFileChange(m.ctx, m.opts.Watcher)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := !m.ready
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.arrange()
		m.viewer.Doc.HandleResize(msg)
		if first || !m.cfg.Scrollbar.AutoResize {
			// Initial layout, or a control that leaves resizes to its host
			m.scroll.Update()
		}
		return m, m.sched.Flush()

	case tea.MouseMsg:
		m.viewer.Doc.HandleMouse(msg)
		m.syncFocus()
		return m, m.sched.Flush()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case schedule.FireMsg:
		m.sched.Update(msg)
		return m, m.sched.Flush()

	case fileChangedMsg:
		switch {
		case m.file != nil && samePath(msg.path, m.file.Path):
			m.reloadFile()
		case m.opts.ConfigSvc != nil && samePath(msg.path, m.opts.ConfigSvc.Path()):
			m.reloadConfig()
		}
		return m, tea.Batch(waitForFileChange(m.ctx, m.opts.Watcher), m.sched.Flush())

	case helpPagerMsg:
		if msg.err != nil {
			m.eventHandler.HandleEvent(handlers.ErrorEvent{Err: fmt.Errorf("help: %w", msg.err)})
		}
		return m, nil

	default:
		// Cursor blink for the prompt
		return m, m.inputHandler.Update(msg)
	}
}

// handleKey offers the key to the focused element first. Only keys it leaves
// alone reach the app keymap.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.inputHandler.CurrentMode() == inputtypes.ModeNormal && m.viewer.Doc.HandleKey(msg) {
		m.syncFocus()
		return m.sched.Flush()
	}

	ctx := &input.ModelContext{State: m.state}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action, ctx))
	}
	m.syncFocus()
	cmds = append(cmds, m.sched.Flush())
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action, ctx *input.ModelContext) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return m.quit()

	case inputtypes.FocusNextAction:
		m.viewer.Doc.FocusNext()

	case inputtypes.FocusThumbAction:
		return m.cmdExecutor.ExecuteFocusThumb()

	case inputtypes.JumpAction:
		return m.cmdExecutor.ExecuteJump(a.Ratio)

	case inputtypes.RemeasureAction:
		return m.cmdExecutor.ExecuteRemeasure()

	case inputtypes.ToggleHelpAction:
		return m.showHelp()

	case inputtypes.ChangeModeAction:
		m.state.PromptText = ""

	case inputtypes.UpdateTextAction:
		m.state.PromptText = a.Text

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeGotoOffset:
			return m.cmdExecutor.ExecuteGotoOffset(a.Text, ctx.ContentLength())
		case inputtypes.ModeGotoPercent:
			return m.cmdExecutor.ExecuteGotoPercent(a.Text)
		}

	case inputtypes.CancelTextAction:
		m.state.ClearStatus()
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.TextInput())
	return m.renderer.Render(m.viewModel.BuildViewState(m.viewer, m.file, m.inputHandler.Keys(), m.renderer))
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Scroll exposes the scroll control
func (m *Model) Scroll() *coordinator.Coordinator {
	return m.scroll
}

// Config returns the settings in effect
func (m *Model) Config() *config.Config {
	return m.cfg
}

// Viewer exposes the element tree
func (m *Model) Viewer() *layout.Viewer {
	return m.viewer
}

func (m *Model) metrics() layout.Metrics {
	mt := layout.Metrics{Ruler: m.cfg.UI.ShowRuler}
	if m.file != nil {
		mt.Lines = m.file.LineCount()
		mt.Columns = m.file.Width()
		if m.cfg.UI.ShowLineNumbers {
			mt.GutterWidth = m.file.GutterWidth()
		}
	}
	return mt
}

func (m *Model) arrange() {
	m.viewer.Arrange(m.width, m.height, m.metrics())
}

func (m *Model) syncFocus() {
	if id := m.viewer.Doc.FocusedID(); id != m.state.FocusedID {
		m.eventHandler.HandleEvent(handlers.FocusChangedEvent{ID: id})
	}
}

// reloadFile reads the viewed file again and re-measures the scroll control
// against the new content
func (m *Model) reloadFile() {
	f, err := source.Load(m.file.Path)
	if err != nil {
		m.eventHandler.HandleEvent(handlers.ErrorEvent{Err: err})
		return
	}
	m.file = f
	m.arrange()
	m.scroll.Update()
	m.eventHandler.HandleEvent(handlers.FileReloadedEvent{Lines: f.LineCount(), Columns: f.Width()})
}

// reloadConfig applies the config file again. The scroll control is rebuilt
// because the axis is fixed for its lifetime; the position carries over.
func (m *Model) reloadConfig() {
	cfg, err := m.opts.ConfigSvc.Load()
	if err != nil {
		m.eventHandler.HandleEvent(handlers.ErrorEvent{Err: err})
		return
	}
	if m.opts.Override != nil {
		m.opts.Override(cfg)
	}
	axis, err := cfg.Scrollbar.Axis()
	if err != nil {
		m.eventHandler.HandleEvent(handlers.ErrorEvent{Err: err})
		return
	}

	ratio := m.scroll.Ratio()
	m.destroyScroll()
	m.cfg = cfg
	if err := m.buildScroll(axis); err != nil {
		m.eventHandler.HandleEvent(handlers.ErrorEvent{Err: err})
		return
	}
	m.scroll.ScrollTo(ratio)
	m.cmdExecutor.SetTarget(m.scroll)
	m.syncFocus()
	m.eventHandler.HandleEvent(handlers.ConfigReloadedEvent{Axis: axis.String()})
}

func (m *Model) showHelp() tea.Cmd {
	content := m.helpRenderer.RenderHelpContentPlain(m.inputHandler.Keys(), m.scroll.KeyBindings())
	ops := NewHelpOps(m.program)
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

// destroyScroll tears the control down. Destroy ends a drag without
// notifying, so the app state is settled here.
func (m *Model) destroyScroll() {
	dragging := m.scroll.IsDragging()
	m.scroll.Destroy()
	if dragging {
		m.eventHandler.HandleEvent(handlers.DragEndedEvent{})
	}
}

func (m *Model) quit() tea.Cmd {
	m.destroyScroll()
	m.cancel()
	if m.opts.Watcher != nil {
		if err := m.opts.Watcher.Close(); err != nil && m.opts.Logf != nil {
			m.opts.Logf("failed to close watcher: %v", err)
		}
	}
	return tea.Quit
}

// waitForFileChange returns a command that waits for the next watched write
func waitForFileChange(ctx context.Context, w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		path, err := w.Next(ctx)
		if err != nil {
			return nil
		}
		return fileChangedMsg{path: path}
	}
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
