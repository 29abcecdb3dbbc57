package pickle

import (
	"fmt"
	"math"
)

// Loc is an integer pixel location. (0,0) is the top-left pixel.
type Loc struct {
	X, Y int
}

// L is a convenience function to create a Loc.
func L(x, y int) Loc {
	return Loc{X: x, Y: y}
}

// Add returns the component-wise sum of l and o.
func (l Loc) Add(o Loc) Loc {
	return Loc{X: l.X + o.X, Y: l.Y + o.Y}
}

func (l Loc) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Point is a position in continuous client or pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Floor returns the pixel containing p.
func (p Point) Floor() Loc {
	return Loc{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}
