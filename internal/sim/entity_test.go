package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTransform_WorldMatrix(t *testing.T) {
	tr := NewTransform(1, 2, 3)
	tr.Rotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})

	p := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, -1}, tr.WorldMatrix())
	assertVec(t, mgl32.Vec3{0, 2, 3}, p)
}

func TestMesh_Offset(t *testing.T) {
	cyl := &Mesh{Kind: MeshCylinder, Radius: 0.5, Height: 1}
	assertVec(t, mgl32.Vec3{0, -0.5, 0}, mgl32.TransformCoordinate(mgl32.Vec3{}, cyl.Offset()))

	quad := &Mesh{Kind: MeshQuad, Width: 2, Height: 2}
	n := mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, quad.Offset())
	assertVec(t, mgl32.Vec3{0, 0, 1}, n)

	cube := &Mesh{Kind: MeshCube}
	assert.Equal(t, mgl32.Ident4(), cube.Offset())
}

func TestMesh_Tiling(t *testing.T) {
	assert.Equal(t, mgl32.Vec2{1, 1}, (&Mesh{}).Tiling())
	assert.Equal(t, mgl32.Vec2{35, 13}, (&Mesh{TileU: 35, TileV: 13}).Tiling())
}

func TestState_ActiveEntity(t *testing.T) {
	s := NewState(nil)
	assert.Nil(t, s.ActiveEntity())

	s = NewState(newEntities(0, 1))
	s.Active = 1
	assert.Same(t, s.Entities[1], s.ActiveEntity())
	assert.Equal(t, "intro", s.Stage.String())
}
