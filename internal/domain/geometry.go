package domain

import (
	"fmt"
	"strings"
)

// Axis selects which dimension a scroll control reads and writes
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis accepts "horizontal" or "vertical" (case-insensitive)
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown axis %q", s)
	}
}

// OffsetProp is the positional style property for the axis (left or top)
func (a Axis) OffsetProp() StyleProp {
	if a == Vertical {
		return StyleTop
	}
	return StyleLeft
}

// ExtentProp is the size style property for the axis (width or height)
func (a Axis) ExtentProp() StyleProp {
	if a == Vertical {
		return StyleHeight
	}
	return StyleWidth
}

// StyleProp names a positional style property of an element
type StyleProp string

const (
	StyleLeft   StyleProp = "left"
	StyleTop    StyleProp = "top"
	StyleWidth  StyleProp = "width"
	StyleHeight StyleProp = "height"
)

// Rect is a region of the terminal grid. Values are in cells but kept as
// float64 so fractional offsets survive until rendering.
type Rect struct {
	X, Y float64
	W, H float64
}

// Extent returns the size along the axis
func (r Rect) Extent(a Axis) float64 {
	if a == Vertical {
		return r.H
	}
	return r.W
}

// Start returns the origin along the axis
func (r Rect) Start(a Axis) float64 {
	if a == Vertical {
		return r.Y
	}
	return r.X
}

// Contains reports whether the cell at (x, y) lies inside r
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
