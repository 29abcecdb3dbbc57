// Package viewport maps client (pointer) coordinates to sprite pixel
// coordinates and keeps that mapping up to date through pan, zoom and
// multi-pointer gestures.
package viewport

import (
	"maps"
	"slices"

	"github.com/davidisaaclee/pickle"
)

// MinGesturePointers is the number of simultaneous pointers at which moves
// stop being strokes and start transforming the viewport.
const MinGesturePointers = 2

// Viewport holds the client-to-pixel transform and the pointers currently
// down on the artboard.
type Viewport struct {
	transform pickle.Matrix
	pointers  map[int]pickle.Point
}

// New returns a viewport that shows a sprite of spriteSize pixels stretched
// over a clientWidth x clientHeight artboard whose top-left corner is the
// client origin.
func New(spriteSize pickle.Loc, clientWidth, clientHeight float64) *Viewport {
	m := pickle.Identity()
	if clientWidth > 0 && clientHeight > 0 {
		m = pickle.Scale(float64(spriteSize.X)/clientWidth, float64(spriteSize.Y)/clientHeight)
	}
	return FromMatrix(m)
}

// FromMatrix returns a viewport with client-to-pixel transform m.
func FromMatrix(m pickle.Matrix) *Viewport {
	return &Viewport{
		transform: m,
		pointers:  make(map[int]pickle.Point),
	}
}

// Matrix returns the client-to-pixel transform.
func (v *Viewport) Matrix() pickle.Matrix {
	return v.transform
}

// Inverse returns the pixel-to-client transform used for drawing. ok is
// false when the client-to-pixel transform is singular, in which case the
// identity is returned.
func (v *Viewport) Inverse() (inv pickle.Matrix, ok bool) {
	return v.transform.Invert()
}

// ClientToPixel maps a client position into continuous pixel space.
func (v *Viewport) ClientToPixel(p pickle.Point) pickle.Point {
	return v.transform.TransformPoint(p)
}

// PixelAt returns the pixel under the client position p.
func (v *Viewport) PixelAt(p pickle.Point) pickle.Loc {
	return v.ClientToPixel(p).Floor()
}

// PixelToClient maps a pixel-space position back to client space. ok is
// false when the transform is singular and no client position exists.
func (v *Viewport) PixelToClient(p pickle.Point) (pickle.Point, bool) {
	inv, ok := v.Inverse()
	if !ok {
		return pickle.Point{}, false
	}
	return inv.TransformPoint(p), true
}

// Apply composes a client-space motion g onto the viewport: content that was
// under client point p is afterwards under g(p). Singular motions are
// ignored and reported as false.
func (v *Viewport) Apply(g pickle.Matrix) bool {
	inv, ok := g.Invert()
	if !ok {
		return false
	}
	v.transform = v.transform.Multiply(inv)
	return true
}

// Pan moves the content by delta client units.
func (v *Viewport) Pan(delta pickle.Point) {
	v.Apply(pickle.Translate(delta.X, delta.Y))
}

// Zoom scales the content by factor about the client point center.
func (v *Viewport) Zoom(factor float64, center pickle.Point) bool {
	g := pickle.Translate(center.X, center.Y).
		Multiply(pickle.Scale(factor, factor)).
		Multiply(pickle.Translate(-center.X, -center.Y))
	return v.Apply(g)
}

// PointerDown starts tracking pointer id at client position p.
func (v *Viewport) PointerDown(id int, p pickle.Point) {
	v.pointers[id] = p
}

// PointerUp stops tracking pointer id.
func (v *Viewport) PointerUp(id int) {
	delete(v.pointers, id)
}

// Pointers returns the number of pointers currently down.
func (v *Viewport) Pointers() int {
	return len(v.pointers)
}

// Gesturing reports whether enough pointers are down for moves to
// transform the viewport.
func (v *Viewport) Gesturing() bool {
	return len(v.pointers) >= MinGesturePointers
}

// PointerMove records that pointer id moved to p. While Gesturing, the
// similarity that best explains the motion of all tracked pointers is
// composed onto the viewport and PointerMove returns true. Moves of
// untracked pointers are ignored.
func (v *Viewport) PointerMove(id int, p pickle.Point) bool {
	before, ok := v.pointers[id]
	if !ok {
		return false
	}
	if !v.Gesturing() {
		v.pointers[id] = p
		return false
	}

	pairs := make([]pickle.PointPair, 0, len(v.pointers))
	for _, pid := range slices.Sorted(maps.Keys(v.pointers)) {
		pos := v.pointers[pid]
		pp := pickle.PointPair{Before: pos, After: pos}
		if pid == id {
			pp = pickle.PointPair{Before: before, After: p}
		}
		pairs = append(pairs, pp)
	}
	v.pointers[id] = p

	g, err := pickle.EstimateFromPointPairs(pairs)
	if err != nil {
		return false
	}
	applied := v.Apply(g)
	pickle.Logger().Debug("viewport gesture",
		"pointers", len(pairs), "applied", applied, "scale", v.transform.Determinant())
	return applied
}
