// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package search

// Point is a pointer position in cells.
type Point struct {
	X, Y int
}

// Bounds is a rectangular region in cells. Zero-sized bounds contain nothing.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.Width &&
		p.Y >= b.Y && p.Y < b.Y+b.Height
}

// Empty reports whether b covers no cells.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// PointerObserver receives every pointer-down event of the screen and calls
// onOutside for those landing outside the watched region. It knows nothing
// about the event source.
type PointerObserver struct {
	bounds    Bounds
	onOutside func(Point)
}

// NewPointerObserver creates an observer calling onOutside for presses
// outside the watched region.
func NewPointerObserver(onOutside func(Point)) *PointerObserver {
	return &PointerObserver{onOutside: onOutside}
}

// Watch sets the region presses are tested against, typically after each render.
func (o *PointerObserver) Watch(bounds Bounds) {
	o.bounds = bounds
}

// Bounds returns the watched region.
func (o *PointerObserver) Bounds() Bounds {
	return o.bounds
}

// PointerDown reports a press at p and returns true if it was outside the
// watched region. Before a region is set nothing counts as outside.
func (o *PointerObserver) PointerDown(p Point) bool {
	if o.bounds.Empty() || o.bounds.Contains(p) {
		return false
	}

	if o.onOutside != nil {
		o.onOutside(p)
	}

	return true
}
