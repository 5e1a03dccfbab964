package sim

import "github.com/go-gl/mathgl/mgl32"

// MeshKind is the primitive a mesh is generated from.
type MeshKind uint8

const (
	MeshCube     MeshKind = iota // Width x Height x Depth box
	MeshCylinder                 // Radius, Height and Slices around Y
	MeshQuad                     // Width x Height plane facing +Z after Offset
)

// Mesh describes a generated primitive. Meshes are shared by entities; the GPU side builds
// one buffer per Name.
type Mesh struct {
	Name string
	Kind MeshKind

	// Cube edge lengths, or quad width (X) and height (Y).
	Width, Height, Depth float32
	// Cylinder radius and side count; Height is the cylinder height.
	Radius float32
	Slices int
	// Texture repeats across the surface; 0 means 1.
	TileU, TileV float32
}

// Offset returns the model-space correction applied before the entity transform so that
// every mesh is centred on its origin. Cylinders are generated standing on Y=0; quads are
// generated in XZ facing +Y and turned to XY facing +Z.
func (m *Mesh) Offset() mgl32.Mat4 {
	switch m.Kind {
	case MeshCylinder:
		return mgl32.Translate3D(0, -m.Height/2, 0)
	case MeshQuad:
		return mgl32.HomogRotate3DX(mgl32.DegToRad(90))
	default:
		return mgl32.Ident4()
	}
}

// Tiling returns the texture repeat counts with zero replaced by 1.
func (m *Mesh) Tiling() mgl32.Vec2 {
	u, v := m.TileU, m.TileV
	if u == 0 {
		u = 1
	}
	if v == 0 {
		v = 1
	}
	return mgl32.Vec2{u, v}
}

// Material holds the surface parameters for an entity. Emissive, Specular and Shininess
// are only read by the Blinn-Phong models.
type Material struct {
	Name      string
	Texture   string
	Tint      mgl32.Vec4
	Emissive  mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// Transform is a position plus orientation. The zero Orientation is not a valid rotation;
// use NewTransform.
type Transform struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// NewTransform returns a transform at (x, y, z) with identity orientation.
func NewTransform(x, y, z float32) Transform {
	return Transform{Position: mgl32.Vec3{x, y, z}, Orientation: mgl32.QuatIdent()}
}

// Translate moves the transform by d in world space.
func (t *Transform) Translate(d mgl32.Vec3) {
	t.Position = t.Position.Add(d)
}

// TranslateLocal moves the transform by d expressed in its own axes.
func (t *Transform) TranslateLocal(d mgl32.Vec3) {
	t.Position = t.Position.Add(t.Orientation.Rotate(d))
}

// Rotate turns the transform by angle radians about a world-space axis.
func (t *Transform) Rotate(angle float32, axis mgl32.Vec3) {
	t.Orientation = mgl32.QuatRotate(angle, axis).Mul(t.Orientation).Normalize()
}

// RotateLocal turns the transform by angle radians about one of its own axes.
func (t *Transform) RotateLocal(angle float32, axis mgl32.Vec3) {
	t.Orientation = t.Orientation.Mul(mgl32.QuatRotate(angle, axis)).Normalize()
}

// ResetOrientation restores the identity rotation.
func (t *Transform) ResetOrientation() {
	t.Orientation = mgl32.QuatIdent()
}

// WorldMatrix returns translation * rotation.
func (t *Transform) WorldMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(t.Orientation.Mat4())
}

// Entity is one drawable object in the scene.
type Entity struct {
	Mesh     *Mesh
	Material *Material
	Transform
}

// NewEntity returns an entity using mesh and material, placed by tr.
func NewEntity(mesh *Mesh, mat *Material, tr Transform) *Entity {
	return &Entity{Mesh: mesh, Material: mat, Transform: tr}
}
