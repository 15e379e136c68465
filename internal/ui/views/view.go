package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"scrollsync/internal/domain"
	"scrollsync/internal/source"
	"scrollsync/internal/ui/layout"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Viewer *layout.Viewer
	File   *source.File

	FocusedID     string
	Dragging      bool
	StatusMessage string
	StatusIsError bool
	Footer        string // rendered help or prompt line
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the styles so the footer can match them
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view. Every row is exactly as wide as the
// terminal so nothing wraps.
func (r *Renderer) Render(state ViewState) string {
	width, height := state.Viewer.Doc.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	rows := []string{r.renderTitle(state, width)}
	if state.Viewer.Axis == domain.Vertical {
		rows = append(rows, r.renderVerticalBody(state)...)
	} else {
		rows = append(rows, r.renderHorizontalBody(state, width)...)
	}
	rows = append(rows, r.renderStatus(state, width), state.Footer)

	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	name := "(no file)"
	if state.File != nil {
		name = state.File.Name()
	}
	title := fmt.Sprintf(" scrollsync  %s  [%s]", name, state.Viewer.Axis)
	return r.styles.Title.Render(fit(title, width))
}

func (r *Renderer) renderVerticalBody(state ViewState) []string {
	vp := mustBox(state.Viewer, layout.IDViewport)
	body := cells(vp.Bounds().H)
	if body == 0 {
		return nil
	}

	var panes []string
	gutterPort := mustBox(state.Viewer, layout.IDGutterPort)
	if gw := cells(gutterPort.Bounds().W); gw > 0 && state.File != nil {
		gutter := mustBox(state.Viewer, layout.IDGutter)
		nums := state.File.LineNumbers()
		panes = append(panes, r.styles.Gutter.Render(pane(nums, gw, body, offset(gutter.Local().Y))))
	}

	text := mustBox(state.Viewer, layout.IDText)
	textW := cells(vp.Bounds().W)
	var lines []string
	if state.File != nil {
		lines = make([]string, len(state.File.Lines))
		for i, l := range state.File.Lines {
			lines[i] = source.Slice(l, 0, textW)
		}
	}
	panes = append(panes, pane(lines, textW, body, offset(text.Local().Y)))
	panes = append(panes, strings.Join(r.renderTrack(state, VerticalTrackGlyph), "\n"))

	return strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, panes...), "\n")
}

func (r *Renderer) renderHorizontalBody(state ViewState, width int) []string {
	var rows []string
	text := mustBox(state.Viewer, layout.IDText)
	xoff := offset(text.Local().X)

	rulerPort := mustBox(state.Viewer, layout.IDRulerPort)
	if cells(rulerPort.Bounds().H) > 0 && state.File != nil {
		ruler := mustBox(state.Viewer, layout.IDRuler)
		rulerLine := source.Ruler(state.File.Width())
		rows = append(rows, r.styles.Ruler.Render(source.Slice(rulerLine, offset(ruler.Local().X), width)))
	}

	vp := mustBox(state.Viewer, layout.IDViewport)
	body := cells(vp.Bounds().H)
	if body > 0 {
		var lines []string
		if state.File != nil {
			lines = make([]string, len(state.File.Lines))
			for i, l := range state.File.Lines {
				lines[i] = source.Slice(l, xoff, width)
			}
		}
		rows = append(rows, strings.Split(pane(lines, width, body, 0), "\n")...)
	}

	rows = append(rows, strings.Join(r.renderTrack(state, HorizontalTrackGlyph), ""))
	return rows
}

// renderTrack returns one glyph per track cell. A cell belongs to the thumb
// when its centre lies inside the thumb; a thumb narrower than a cell still
// gets one.
func (r *Renderer) renderTrack(state ViewState, trackGlyph string) []string {
	axis := state.Viewer.Axis
	track := mustBox(state.Viewer, layout.IDTrack)
	thumb := mustBox(state.Viewer, layout.IDThumb)

	n := cells(track.Bounds().Extent(axis))
	local := thumb.Local()
	start, extent := local.Start(axis), local.Extent(axis)

	thumbStyle := r.styles.Thumb
	switch {
	case state.Dragging:
		thumbStyle = r.styles.ThumbDragging
	case state.FocusedID == layout.IDThumb:
		thumbStyle = r.styles.ThumbFocused
	}

	out := make([]string, n)
	drawn := false
	for i := range out {
		centre := float64(i) + 0.5
		if centre >= start && centre < start+extent {
			out[i] = thumbStyle.Render(ThumbGlyph)
			drawn = true
		} else {
			out[i] = r.styles.Track.Render(trackGlyph)
		}
	}
	if !drawn && n > 0 && extent > 0 {
		i := min(max(int(start), 0), n-1)
		out[i] = thumbStyle.Render(ThumbGlyph)
	}
	return out
}

func (r *Renderer) renderStatus(state ViewState, width int) string {
	thumb := mustBox(state.Viewer, layout.IDThumb)
	now, _ := thumb.Attr(domain.AttrValueNow)
	maxV, _ := thumb.Attr(domain.AttrValueMax)
	role, _ := thumb.Attr(domain.AttrRole)

	parts := []string{fmt.Sprintf(" %s %s/%s", role, now, maxV)}
	if state.FocusedID != "" {
		parts = append(parts, "focus:"+state.FocusedID)
	}
	if state.Dragging {
		parts = append(parts, "dragging")
	}
	if state.StatusMessage != "" {
		parts = append(parts, state.StatusMessage)
	}

	line := fit(strings.Join(parts, "  "), width)
	if state.StatusIsError {
		return r.styles.StatusError.Render(line)
	}
	return r.styles.Status.Render(line)
}

// RenderPrompt renders the goto prompt for the footer
func (r *Renderer) RenderPrompt(label, input string) string {
	return r.styles.Prompt.Render(label) + " " + input
}

// pane clips lines to a width x height window starting at line yoff
func pane(lines []string, width, height, yoff int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	vp := viewport.New(width, height)
	vp.SetContent(strings.Join(lines, "\n"))
	vp.SetYOffset(yoff)
	return vp.View()
}

// offset converts a content style offset (zero or negative) to a cell index
func offset(pos float64) int {
	return max(int(math.Round(-pos)), 0)
}

func cells(f float64) int {
	return max(int(math.Round(f)), 0)
}

// fit truncates or pads s to exactly width cells
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func mustBox(v *layout.Viewer, id string) *layout.Box {
	b, ok := v.Doc.Box(id)
	if !ok {
		panic("views: missing element " + id)
	}
	return b
}
