package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"scene-demo/internal/primitives"
	"scene-demo/internal/render"
)

// markerRadius is the size of the sphere drawn at each point light.
const markerRadius = 0.25

// Renderer draws a render.Frame with raylib. The frame's view and projection drive both the
// shader programs and raylib's own matrix stack, so lines and markers depth-test against
// the meshes.
type Renderer struct {
	reg         *primitives.Registry
	GridVisible bool
}

// New returns a renderer drawing through reg.
func New(reg *primitives.Registry) *Renderer {
	return &Renderer{reg: reg}
}

// Draw clears the screen and draws f. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(f *render.Frame) {
	rl.ClearBackground(primitives.Color(f.ClearColor))

	rl.BeginMode3D(cameraFromView(f.View))
	rl.SetMatrixProjection(primitives.Matrix(f.Projection))

	if r.GridVisible {
		drawEditorGrid()
	}
	if len(f.Items) > 0 {
		if p := r.reg.Program(f.Model); p != nil {
			p.SetFrame(f)
			for i := range f.Items {
				r.reg.Draw(p, &f.Items[i])
			}
		}
	}
	for _, s := range f.Axes {
		rl.DrawLine3D(primitives.Vector3(s.From), primitives.Vector3(s.To), primitives.Color(s.Color))
	}
	for _, m := range f.Markers {
		rl.DrawSphere(primitives.Vector3(m.Position), markerRadius, primitives.Color(m.Color))
	}
	rl.EndMode3D()
}

// cameraFromView recovers a raylib camera from a view matrix. Fovy is irrelevant because
// the projection is replaced after BeginMode3D.
func cameraFromView(view mgl32.Mat4) rl.Camera3D {
	inv := view.Inv()
	eye := inv.Col(3).Vec3()
	fwd := inv.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	up := inv.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	return rl.Camera3D{
		Position:   primitives.Vector3(eye),
		Target:     primitives.Vector3(eye.Add(fwd)),
		Up:         primitives.Vector3(up),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
