package domain

// Accessibility attributes written on a slider element
const (
	AttrRole        = "role"
	AttrTabIndex    = "tabindex"
	AttrValueMin    = "aria-valuemin"
	AttrValueMax    = "aria-valuemax"
	AttrValueNow    = "aria-valuenow"
	AttrOrientation = "aria-orientation"
)

// Element is a laid-out region of the host document. Geometry reads reflect
// style writes immediately.
type Element interface {
	ID() string
	Parent() Element

	// Bounds is the absolute measured rectangle
	Bounds() Rect

	Style(prop StyleProp) (float64, bool)
	SetStyle(prop StyleProp, value float64)

	Attr(name string) (string, bool)
	SetAttr(name, value string)
}

// IsWithin reports whether el is ancestor or one of its descendants
func IsWithin(el, ancestor Element) bool {
	if el == nil || ancestor == nil {
		return false
	}
	for cur := el; cur != nil; cur = cur.Parent() {
		if cur.ID() == ancestor.ID() {
			return true
		}
	}
	return false
}
