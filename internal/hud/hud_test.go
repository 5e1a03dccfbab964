package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-demo/internal/lighting"
	"scene-demo/internal/sim"
)

func newState() *sim.State {
	mesh := &sim.Mesh{Name: "cube", Kind: sim.MeshCube}
	mat := &sim.Material{Name: "bricks"}
	return sim.NewState([]*sim.Entity{
		sim.NewEntity(mesh, mat, sim.NewTransform(1, 2, 3)),
	})
}

func TestLines_Intro(t *testing.T) {
	s := newState()
	lines := Lines(s, []string{"a", "b"}, 0)
	assert.Equal(t, []string{StartPrompt}, lines)
}

func TestLines_Playing(t *testing.T) {
	s := newState()
	s.Stage = sim.StagePlaying
	s.Lighting = lighting.BlinnPhongMultiLight
	s.ShowPointLights = false

	lines := Lines(s, nil, 5)
	require.Len(t, lines, 3)
	assert.Equal(t, "Lighting: Blinn-Phong multi", lines[0])
	assert.Equal(t, "Point lights: off", lines[1])
	assert.Equal(t, "Active: #0 cube/bricks (1.0, 2.0, 3.0)", lines[2])
}

func TestLines_Spline(t *testing.T) {
	s := newState()
	s.Stage = sim.StagePlaying
	s.SplineActive = true
	lines := Lines(s, nil, 0)
	assert.Equal(t, "Spline: t=0.00", lines[len(lines)-1])
}

func TestLines_LogTail(t *testing.T) {
	s := newState()
	lines := Lines(s, []string{"one", "two", "three"}, 2)
	assert.Equal(t, []string{StartPrompt, "two", "three"}, lines)

	lines = Lines(s, []string{"one"}, 4)
	assert.Equal(t, []string{StartPrompt, "one"}, lines)
}
