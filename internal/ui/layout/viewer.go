package layout

import (
	"scrollsync/internal/domain"
	"scrollsync/internal/eventbus"
)

// Element ids of the viewer screen
const (
	IDTitle      = "title"
	IDGutterPort = "gutterport"
	IDGutter     = "gutter"
	IDRulerPort  = "rulerport"
	IDRuler      = "ruler"
	IDViewport   = "viewport"
	IDText       = "text"
	IDTrack      = "track"
	IDThumb      = "thumb"
	IDStatus     = "status"
	IDFooter     = "footer"
)

// Metrics describes the content being viewed
type Metrics struct {
	Lines       int
	Columns     int
	GutterWidth int  // line-number column width; 0 hides it
	Ruler       bool // show the column ruler above the text
}

// Viewer is the screen of the file viewer: a text pane with a companion pane
// (line numbers or column ruler) that scrolls with it, and a scroll track.
type Viewer struct {
	Doc  *Document
	Axis domain.Axis
}

// NewViewer builds the element tree for axis
func NewViewer(bus eventbus.EventBus, axis domain.Axis) *Viewer {
	doc := NewDocument(bus)
	root := eventbus.DocumentTarget
	mustAppend(doc, root, IDTitle)
	if axis == domain.Vertical {
		mustAppend(doc, root, IDGutterPort)
		mustAppend(doc, IDGutterPort, IDGutter)
	} else {
		mustAppend(doc, root, IDRulerPort)
		mustAppend(doc, IDRulerPort, IDRuler)
	}
	vp := mustAppend(doc, root, IDViewport)
	vp.SetAttr(domain.AttrTabIndex, "0")
	mustAppend(doc, IDViewport, IDText)
	mustAppend(doc, root, IDTrack)
	mustAppend(doc, IDTrack, IDThumb)
	mustAppend(doc, root, IDStatus)
	mustAppend(doc, root, IDFooter)
	return &Viewer{Doc: doc, Axis: axis}
}

func mustAppend(doc *Document, parent, id string) *Box {
	b, err := doc.Append(parent, id)
	if err != nil {
		panic(err) // static tree, ids are constants
	}
	return b
}

// ContentIDs lists the elements that scroll together, reference first
func (v *Viewer) ContentIDs() []string {
	if v.Axis == domain.Vertical {
		return []string{IDText, IDGutter}
	}
	return []string{IDText, IDRuler}
}

// Arrange runs the layout pass for a width x height terminal. Style values
// written by the scroll control survive it.
func (v *Viewer) Arrange(width, height int, m Metrics) {
	v.Doc.SetSize(width, height)
	w, h := float64(width), float64(height)
	lines, cols := float64(m.Lines), float64(m.Columns)

	v.frame(IDTitle, domain.Rect{W: w, H: 1})
	v.frame(IDStatus, domain.Rect{Y: h - 2, W: w, H: 1})
	v.frame(IDFooter, domain.Rect{Y: h - 1, W: w, H: 1})

	if v.Axis == domain.Vertical {
		gw := float64(m.GutterWidth)
		body := nonNeg(h - 3)
		v.frame(IDGutterPort, domain.Rect{Y: 1, W: gw, H: body})
		v.frame(IDGutter, domain.Rect{W: gw, H: lines})
		v.frame(IDViewport, domain.Rect{X: gw, Y: 1, W: nonNeg(w - gw - 1), H: body})
		v.frame(IDText, domain.Rect{W: cols, H: lines})
		v.frame(IDTrack, domain.Rect{X: nonNeg(w - 1), Y: 1, W: 1, H: body})
		v.frame(IDThumb, domain.Rect{W: 1, H: body})
		return
	}

	rulerRows := 0.0
	if m.Ruler {
		rulerRows = 1
	}
	body := nonNeg(h - 4 - rulerRows)
	v.frame(IDRulerPort, domain.Rect{Y: 1, W: w, H: rulerRows})
	v.frame(IDRuler, domain.Rect{W: cols, H: rulerRows})
	v.frame(IDViewport, domain.Rect{Y: 1 + rulerRows, W: w, H: body})
	v.frame(IDText, domain.Rect{W: cols, H: lines})
	v.frame(IDTrack, domain.Rect{Y: 1 + rulerRows + body, W: w, H: 1})
	v.frame(IDThumb, domain.Rect{W: w, H: 1})
}

func (v *Viewer) frame(id string, r domain.Rect) {
	if b, ok := v.Doc.Box(id); ok {
		b.SetFrame(r)
	}
}

func nonNeg(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
