package layout

import "scrollsync/internal/domain"

// Box is a rectangular element of the document. Its frame is assigned by
// the layout pass; style values override the frame the way inline CSS
// overrides a stylesheet, with left/top relative to the parent's origin.
type Box struct {
	id       string
	parent   *Box
	children []*Box
	frame    domain.Rect
	style    map[domain.StyleProp]float64
	attrs    map[string]string
}

func newBox(id string, parent *Box) *Box {
	b := &Box{
		id:     id,
		parent: parent,
		style:  make(map[domain.StyleProp]float64),
		attrs:  make(map[string]string),
	}
	if parent != nil {
		parent.children = append(parent.children, b)
	}
	return b
}

func (b *Box) ID() string { return b.id }

// Parent returns nil for the document root
func (b *Box) Parent() domain.Element {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

// Local is the box rectangle relative to its parent, styles applied
func (b *Box) Local() domain.Rect {
	r := b.frame
	if v, ok := b.style[domain.StyleLeft]; ok {
		r.X = v
	}
	if v, ok := b.style[domain.StyleTop]; ok {
		r.Y = v
	}
	if v, ok := b.style[domain.StyleWidth]; ok {
		r.W = v
	}
	if v, ok := b.style[domain.StyleHeight]; ok {
		r.H = v
	}
	return r
}

// Bounds is the absolute rectangle in terminal cells
func (b *Box) Bounds() domain.Rect {
	r := b.Local()
	if b.parent != nil {
		p := b.parent.Bounds()
		r.X += p.X
		r.Y += p.Y
	}
	return r
}

func (b *Box) Style(prop domain.StyleProp) (float64, bool) {
	v, ok := b.style[prop]
	return v, ok
}

func (b *Box) SetStyle(prop domain.StyleProp, value float64) {
	b.style[prop] = value
}

func (b *Box) Attr(name string) (string, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

func (b *Box) SetAttr(name, value string) {
	b.attrs[name] = value
}

// Focusable reports whether the box carries a non-negative tabindex
func (b *Box) Focusable() bool {
	v, ok := b.attrs[domain.AttrTabIndex]
	return ok && v != "" && v[0] != '-'
}

// SetFrame assigns the layout rectangle, relative to the parent
func (b *Box) SetFrame(r domain.Rect) {
	b.frame = r
}

// Children returns the child boxes in paint order
func (b *Box) Children() []*Box {
	return b.children
}

// path returns the ids from b up to the root
func (b *Box) path() []string {
	var ids []string
	for cur := b; cur != nil; cur = cur.parent {
		ids = append(ids, cur.id)
	}
	return ids
}
