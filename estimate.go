package pickle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PointPair is one pointer's position before and after a move.
type PointPair struct {
	Before, After Point
}

// EstimateFromPointPairs returns the similarity transform (uniform scale,
// rotation and translation) that best maps each Before point onto its After
// point in the least-squares sense.
//
// A single pair yields a pure translation. When every Before point
// coincides, rotation and scale are undetermined and the translation between
// the two centroids is returned instead.
func EstimateFromPointPairs(pairs []PointPair) (Matrix, error) {
	if len(pairs) == 0 {
		return Identity(), ErrNoPointPairs
	}
	if len(pairs) == 1 {
		d := pairs[0].After.Sub(pairs[0].Before)
		return Translate(d.X, d.Y), nil
	}

	// Solve in coordinates centered on each centroid and scaled by the RMS
	// spread of the Before points.
	cb, ca := centroids(pairs)
	var spread, extent float64
	for _, pp := range pairs {
		d := pp.Before.Sub(cb)
		spread += d.X*d.X + d.Y*d.Y
		extent = max(extent, math.Abs(pp.Before.X), math.Abs(pp.Before.Y))
	}
	// Below this the centered coordinates are rounding noise.
	noise := float64(len(pairs)) * math.Pow(max(extent, 1)*1e-12, 2)
	if spread <= noise {
		return Translate(ca.X-cb.X, ca.Y-cb.Y), nil
	}
	scale := math.Sqrt(spread / float64(len(pairs)))

	// Unknowns p = (a, b, tx, ty) with
	//   x' = a*x - b*y + tx
	//   y' = b*x + a*y + ty
	// Each pair adds two rows to the overdetermined system; accumulate the
	// normal equations N p = r.
	var n mgl64.Mat4
	var r mgl64.Vec4
	accumulate := func(row mgl64.Vec4, target float64) {
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				n[j*4+i] += row[i] * row[j]
			}
			r[i] += row[i] * target
		}
	}
	for _, pp := range pairs {
		b := pp.Before.Sub(cb).Mul(1 / scale)
		a := pp.After.Sub(ca).Mul(1 / scale)
		accumulate(mgl64.Vec4{b.X, -b.Y, 1, 0}, a.X)
		accumulate(mgl64.Vec4{b.Y, b.X, 0, 1}, a.Y)
	}

	if math.Abs(n.Det()) < 1e-9 {
		return Translate(ca.X-cb.X, ca.Y-cb.Y), nil
	}

	// Undo the normalization: After = ca + R*(Before - cb) + scale*t.
	p := n.Inv().Mul4x1(r)
	m := Matrix{A: p[0], B: p[1], C: -p[1], D: p[0]}
	rc := m.TransformVector(cb)
	m.TX = ca.X - rc.X + scale*p[2]
	m.TY = ca.Y - rc.Y + scale*p[3]
	return m, nil
}

func centroids(pairs []PointPair) (before, after Point) {
	for _, pp := range pairs {
		before = before.Add(pp.Before)
		after = after.Add(pp.After)
	}
	inv := 1 / float64(len(pairs))
	return before.Mul(inv), after.Mul(inv)
}
