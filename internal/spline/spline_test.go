package spline

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func randVec(r *rand.Rand) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(r.Intn(200) - 100),
		float32(r.Intn(200) - 100),
		float32(r.Intn(200) - 100),
	}
}

func randFracVec(r *rand.Rand) mgl32.Vec3 {
	return mgl32.Vec3{
		r.Float32()*200 - 100,
		r.Float32()*200 - 100,
		r.Float32()*200 - 100,
	}
}

func TestEvaluate_ExactEndpointsFractional(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 10000; i++ {
		p0, p1, p2, p3 := randFracVec(r), randFracVec(r), randFracVec(r), randFracVec(r)
		var e Evaluator
		e.Reset()
		if !assert.Equal(t, p1, e.Evaluate(0, p0, p1, p2, p3)) {
			return
		}
		if !assert.Equal(t, p2, e.Evaluate(2, p0, p1, p2, p3)) {
			return
		}
	}
}

func TestCatmullRom_NonFiniteAtEndpoint(t *testing.T) {
	inf := mgl32.Vec3{0, math32.Inf(1), 0}
	got := CatmullRom(1, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}, inf)
	assert.True(t, math32.IsNaN(got.Y()) || math32.IsInf(got.Y(), 0))
}

func TestEvaluate_ZeroStepReturnsP1(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		p0, p1, p2, p3 := randVec(r), randVec(r), randVec(r), randVec(r)
		var e Evaluator
		e.Reset()
		assert.Equal(t, p1, e.Evaluate(0, p0, p1, p2, p3))
	}
}

func TestEvaluate_ClampsAtP2(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		p0, p1, p2, p3 := randVec(r), randVec(r), randVec(r), randVec(r)
		var e Evaluator
		e.Reset()
		var got mgl32.Vec3
		for step := 0; step < 7; step++ {
			got = e.Evaluate(0.2, p0, p1, p2, p3)
		}
		assert.Equal(t, p2, got)
		assert.True(t, e.Done())

		again := e.Evaluate(0.5, p0, p1, p2, p3)
		assert.Equal(t, got, again)
		assert.Equal(t, float32(1), e.T())
	}
}

func TestEvaluate_ParameterMonotone(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	var e Evaluator
	e.Reset()
	prev := e.T()
	p := mgl32.Vec3{}
	for i := 0; i < 500; i++ {
		e.Evaluate(r.Float32()*0.01, p, p, p, p)
		assert.GreaterOrEqual(t, e.T(), prev)
		assert.LessOrEqual(t, e.T(), float32(1))
		prev = e.T()
	}
}

func TestEvaluate_ConcreteScenario(t *testing.T) {
	var e Evaluator
	e.Reset()
	got := e.Evaluate(1.0,
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 0, 1},
		mgl32.Vec3{0, 0, 2},
		mgl32.Vec3{0, 0, 3},
	)
	assert.Equal(t, mgl32.Vec3{0, 0, 2}, got)
}

func TestEvaluate_ContinuesWithoutReset(t *testing.T) {
	var e Evaluator
	p := mgl32.Vec3{}
	e.Evaluate(0.4, p, p, p, p)
	e.Evaluate(0.4, p, p, p, p)
	assert.InDelta(t, 0.8, e.T(), 1e-6)

	e.Reset()
	assert.Equal(t, float32(0), e.T())
	assert.False(t, e.Done())
}

func TestCatmullRom_Midpoint(t *testing.T) {
	// Evenly spaced collinear points give linear motion.
	got := CatmullRom(0.5,
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{2, 0, 0},
		mgl32.Vec3{3, 0, 0},
	)
	assert.InDelta(t, 1.5, got.X(), 1e-6)
	assert.InDelta(t, 0, got.Y(), 1e-6)
}

func TestCatmullRom_TangentContinuity(t *testing.T) {
	pts := []mgl32.Vec3{{0, 0, 0}, {1, 2, 0}, {3, 3, 1}, {4, 1, 2}, {6, 0, 0}}
	const h = 1e-3

	// Derivative at the end of segment [p1,p2] and at the start of segment [p2,p3].
	endA := CatmullRom(1, pts[0], pts[1], pts[2], pts[3])
	beforeA := CatmullRom(1-h, pts[0], pts[1], pts[2], pts[3])
	startB := CatmullRom(0, pts[1], pts[2], pts[3], pts[4])
	afterB := CatmullRom(h, pts[1], pts[2], pts[3], pts[4])

	tanA := endA.Sub(beforeA).Mul(1 / h)
	tanB := afterB.Sub(startB).Mul(1 / h)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, tanA[i], tanB[i], 0.05)
	}
}

func TestEvaluate_NonFinitePropagates(t *testing.T) {
	var e Evaluator
	nan := mgl32.Vec3{math32.NaN(), 0, 0}
	got := e.Evaluate(0.5, nan, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{})
	assert.True(t, math32.IsNaN(got.X()))
}
