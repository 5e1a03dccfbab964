package spline

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Evaluator walks one Catmull-Rom segment from p1 to p2. Each Evaluate advances the
// parameter by dt and clamps it at 1, so a traversal takes one second of accumulated time.
// The zero value is an evaluator that has been reset.
type Evaluator struct {
	t float32
}

// Reset rewinds the parameter to 0. Call before starting a new traversal; without it the
// parameter continues from its last (possibly clamped) value.
func (e *Evaluator) Reset() {
	e.t = 0
}

// T returns the current curve parameter in [0, 1].
func (e *Evaluator) T() float32 {
	return e.t
}

// Done reports whether the parameter has reached the end of the segment.
func (e *Evaluator) Done() bool {
	return e.t >= 1
}

// Evaluate advances the parameter by dt and returns the point on the segment [p1, p2],
// with p0 and p3 shaping the tangents. The control points are never modified.
func (e *Evaluator) Evaluate(dt float32, p0, p1, p2, p3 mgl32.Vec3) mgl32.Vec3 {
	e.t += dt
	if e.t > 1 {
		e.t = 1
	}
	return CatmullRom(e.t, p0, p1, p2, p3)
}

// CatmullRom evaluates the uniform Catmull-Rom basis at t. The curve passes through p1 at
// t=0 and p2 at t=1 and is C1 (not C2) across segments sharing control points. Points may
// leave the p1..p2 hull.
//
// The endpoints are returned exactly: summing the basis in float32 would otherwise miss p2
// by a few ULPs at t=1. Non-finite control points still propagate.
func CatmullRom(t float32, p0, p1, p2, p3 mgl32.Vec3) mgl32.Vec3 {
	if (t == 0 || t == 1) && finite(p0, p1, p2, p3) {
		if t == 0 {
			return p1
		}
		return p2
	}
	t2 := t * t
	t3 := t2 * t

	a := p1.Mul(2)
	b := p2.Sub(p0).Mul(t)
	c := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3).Mul(t2)
	d := p1.Mul(3).Sub(p0).Sub(p2.Mul(3)).Add(p3).Mul(t3)

	return a.Add(b).Add(c).Add(d).Mul(0.5)
}

func finite(vs ...mgl32.Vec3) bool {
	for _, v := range vs {
		for _, c := range v {
			if math32.IsNaN(c) || math32.IsInf(c, 0) {
				return false
			}
		}
	}
	return true
}
