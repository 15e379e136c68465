package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollsync/internal/config"
	"scrollsync/internal/domain"
	"scrollsync/internal/source"
	"scrollsync/internal/ui/layout"
	"scrollsync/internal/ui/schedule"
)

// wideText is 100 lines, each 120 cells wide
func wideText() string {
	var b strings.Builder
	for i := 1; i <= 100; i++ {
		fmt.Fprintf(&b, "%03d %s\n", i, strings.Repeat("x", 116))
	}
	return b.String()
}

// newTestModel lays out a 40x12 horizontal viewer: the track is 40 cells,
// the thumb 40*40/120 cells, so travel is 80/3 and overflow 80.
func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	if opts.File == nil {
		opts.File = source.FromString("wide.txt", wideText())
	}
	m, err := NewModel(opts)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

// collect runs cmd and every command batched inside it
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func thumbBounds(m *Model) domain.Rect {
	b, _ := m.Viewer().Doc.Box(layout.IDThumb)
	return b.Bounds()
}

func TestInitialLayout(t *testing.T) {
	m := newTestModel(t, Options{})

	assert.Equal(t, domain.Horizontal, m.State().Axis)
	assert.Equal(t, 0.0, m.State().Ratio)
	assert.InDelta(t, 40.0/3, thumbBounds(m).W, 1e-9)
	assert.Equal(t, 9.0, thumbBounds(m).Y, "track sits under the text")

	view := m.View()
	assert.Contains(t, view, "slider 0/100")
	assert.Contains(t, view, "wide.txt")
	assert.NotContains(t, view, ReadyMarker)
}

func TestLoadingBeforeFirstSize(t *testing.T) {
	m, err := NewModel(Options{File: source.FromString("a", "a\n")})
	require.NoError(t, err)
	assert.Equal(t, "Loading...", m.View())
}

func TestInvalidOverrideFails(t *testing.T) {
	_, err := NewModel(Options{Override: func(c *config.Config) { c.Scrollbar.Direction = "sideways" }})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestTabFocusThenArrowKeysStep(t *testing.T) {
	m := newTestModel(t, Options{})

	typeKeys(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, layout.IDViewport, m.State().FocusedID)

	// Arrow keys mean nothing while the text has focus
	typeKeys(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0.0, m.State().Ratio)

	typeKeys(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, layout.IDThumb, m.State().FocusedID)

	typeKeys(m, tea.KeyMsg{Type: tea.KeyRight})
	step := (40.0 / 50) / (80.0 / 3)
	assert.InDelta(t, step, m.State().Ratio, 1e-9)

	typeKeys(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 1.0, m.State().Ratio)
	assert.Contains(t, m.View(), "slider 100/100")
}

func TestFocusThumbKey(t *testing.T) {
	m := newTestModel(t, Options{})
	typeKeys(m, runes("f"))
	assert.Equal(t, layout.IDThumb, m.State().FocusedID)
}

func TestJumpKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	typeKeys(m, runes("G"))
	assert.Equal(t, 1.0, m.State().Ratio)
	typeKeys(m, runes("g"))
	assert.Equal(t, 0.0, m.State().Ratio)
}

func TestMouseDrag(t *testing.T) {
	m := newTestModel(t, Options{})

	m.Update(tea.MouseMsg{X: 5, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.State().Dragging)
	assert.Equal(t, "", m.State().FocusedID, "the drag keeps focus where it was")

	m.Update(tea.MouseMsg{X: 15, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.InDelta(t, 10/(80.0/3), m.State().Ratio, 1e-9)
	assert.Contains(t, m.View(), "dragging")

	m.Update(tea.MouseMsg{X: 15, Y: 3, Action: tea.MouseActionRelease})
	assert.False(t, m.State().Dragging)
	assert.Equal(t, 1, m.State().DragCount)
	assert.InDelta(t, 10/(80.0/3), m.Scroll().Ratio(), 1e-9)
}

func TestTrackClick(t *testing.T) {
	m := newTestModel(t, Options{})

	m.Update(tea.MouseMsg{X: 39, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 39, Y: 9, Action: tea.MouseActionRelease})

	assert.InDelta(t, 39.5/40, m.State().Ratio, 1e-9)
	assert.Equal(t, 0, m.State().DragCount)
}

func TestGotoPercent(t *testing.T) {
	m := newTestModel(t, Options{})

	typeKeys(m, runes("%"), runes("5"), runes("x"), runes("0"))
	assert.Contains(t, m.View(), "Go to %:")
	assert.Equal(t, "50", m.State().PromptText)

	typeKeys(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0.5, m.State().Ratio)
	assert.NotContains(t, m.View(), "Go to %:")
}

func TestGotoColumn(t *testing.T) {
	m := newTestModel(t, Options{})

	typeKeys(m, runes(":"), runes("6"), runes("1"), tea.KeyMsg{Type: tea.KeyEnter})
	// column 61 is content cell 60.5; the viewport centre is 20 cells in
	assert.InDelta(t, (60.5-20)/80, m.State().Ratio, 1e-9)

	typeKeys(m, runes(":"), runes("9"), runes("9"), runes("9"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.State().StatusIsError)
	assert.InDelta(t, (60.5-20)/80, m.State().Ratio, 1e-9, "a rejected goto does not move")
}

func TestPromptCancel(t *testing.T) {
	m := newTestModel(t, Options{})
	typeKeys(m, runes("%"), runes("9"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 0.0, m.State().Ratio)

	// back in normal mode, so q quits
	_, cmd := m.Update(runes("q"))
	assert.Contains(t, collect(cmd), tea.Msg(tea.QuitMsg{}))
}

func TestResizeIsDebounced(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Scroll().ScrollTo(0.5)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	assert.NotNil(t, cmd, "debounce tick scheduled")
	assert.InDelta(t, 40.0/3, thumbBounds(m).W, 1e-9, "not re-measured yet")

	pending := m.sched.Pending()
	require.Len(t, pending, 1)
	m.Update(schedule.FireMsg{ID: pending[0]})

	assert.InDelta(t, 80*80.0/120, thumbBounds(m).W, 1e-9)
	assert.Equal(t, 0.5, m.State().Ratio)
}

func TestResizeWithoutAutoResize(t *testing.T) {
	m := newTestModel(t, Options{Override: func(c *config.Config) { c.Scrollbar.AutoResize = false }})

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	assert.Empty(t, m.sched.Pending())
	assert.InDelta(t, 80*80.0/120, thumbBounds(m).W, 1e-9)
}

func TestVerticalViewer(t *testing.T) {
	m := newTestModel(t, Options{Override: func(c *config.Config) { c.Scrollbar.Direction = "vertical" }})

	// 100 lines in a 9 row body
	assert.InDelta(t, 9*9.0/100, thumbBounds(m).H, 1e-9)

	typeKeys(m, runes(":"), runes("5"), runes("0"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.InDelta(t, (49.5-4.5)/91, m.State().Ratio, 1e-9)
	assert.Contains(t, ansi.Strip(m.View()), " 50 050 xxx")
}

func TestFileReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grow.txt")
	require.NoError(t, os.WriteFile(path, []byte("short\n"), 0o644))
	file, err := source.Load(path)
	require.NoError(t, err)

	m := newTestModel(t, Options{File: file})
	assert.Equal(t, 40.0, thumbBounds(m).W, "content fits")

	require.NoError(t, os.WriteFile(path, []byte(wideText()), 0o644))
	m.Update(fileChangedMsg{path: path})

	assert.Equal(t, 100, m.State().Lines)
	assert.Equal(t, 1, m.State().Reloads)
	assert.InDelta(t, 40.0/3, thumbBounds(m).W, 1e-9)
}

func TestConfigReloadRebuildsControl(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := config.NewConfigServiceAt(path)
	m := newTestModel(t, Options{ConfigSvc: svc})
	m.Scroll().ScrollTo(0.5)
	old := m.Scroll()

	cfg := config.DefaultConfig()
	cfg.Scrollbar.Direction = "vertical"
	require.NoError(t, svc.Save(cfg))
	m.Update(fileChangedMsg{path: path})

	assert.NotSame(t, old, m.Scroll())
	assert.Equal(t, domain.Vertical, m.State().Axis)
	assert.Equal(t, domain.Vertical, m.Scroll().Axis())
	assert.Equal(t, 0.5, m.Scroll().Ratio())
	assert.Contains(t, m.State().StatusMessage, "Config reloaded")

	// the old control no longer reacts
	old.ScrollTo(1)
	assert.Equal(t, 0.5, m.State().Ratio)
}

func TestConfigReloadDuringDragClearsDragging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := config.NewConfigServiceAt(path)
	m := newTestModel(t, Options{ConfigSvc: svc})

	m.Update(tea.MouseMsg{X: 5, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.State().Dragging)

	cfg := config.DefaultConfig()
	cfg.Scrollbar.Direction = "vertical"
	require.NoError(t, svc.Save(cfg))
	m.Update(fileChangedMsg{path: path})

	assert.False(t, m.State().Dragging)
	assert.False(t, m.Scroll().IsDragging())
	assert.NotContains(t, ansi.Strip(m.View()), "dragging")

	m.Update(tea.MouseMsg{X: 15, Y: 3, Action: tea.MouseActionRelease})
	assert.False(t, m.State().Dragging)
}

func TestQuitDuringDragClearsDragging(t *testing.T) {
	m := newTestModel(t, Options{})

	m.Update(tea.MouseMsg{X: 5, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.State().Dragging)

	m.Update(runes("q"))
	assert.False(t, m.State().Dragging)
}

func TestHelpNeedsProgram(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := m.Update(runes("?"))

	var got *helpPagerMsg
	for _, msg := range collect(cmd) {
		if hm, ok := msg.(helpPagerMsg); ok {
			got = &hm
		}
	}
	require.NotNil(t, got)
	m.Update(*got)
	assert.True(t, m.State().StatusIsError)
}

func TestHelpContentListsAxisKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	content := m.helpRenderer.RenderHelpContentPlain(m.inputHandler.Keys(), m.Scroll().KeyBindings())
	assert.Contains(t, content, "step right")
	assert.Contains(t, content, "goto column")
}

func TestReadyMarker(t *testing.T) {
	m := newTestModel(t, Options{ReadyMarker: true})
	assert.Contains(t, m.View(), ReadyMarker)
}
