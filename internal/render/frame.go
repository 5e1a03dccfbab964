package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"scene-demo/internal/lighting"
	"scene-demo/internal/sim"
)

const (
	fovyDegrees = 50
	nearPlane   = 0.1
	farPlane    = 1000
	axisLength  = 2
)

// Environment is the scene lighting that does not change per frame.
type Environment struct {
	ClearColor mgl32.Vec3
	// LightDir points towards the directional light, in world space.
	LightDir    mgl32.Vec3
	LightColor  mgl32.Vec3
	PointLights []lighting.PointLight
}

// DefaultEnvironment is a white light from (1, 3, 2) over a grey background.
func DefaultEnvironment() Environment {
	return Environment{
		ClearColor: mgl32.Vec3{0.3, 0.3, 0.3},
		LightDir:   mgl32.Vec3{1, 3, 2},
		LightColor: mgl32.Vec3{1, 1, 1},
	}
}

// MaterialParams are the Blinn-Phong inputs.
type MaterialParams struct {
	Emissive  mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// Item is one entity ready to draw.
type Item struct {
	Mesh    *sim.Mesh
	Texture string
	Tint    mgl32.Vec4
	Tiling  mgl32.Vec2
	// Material is nil when the active model does not read material parameters.
	Material  *MaterialParams
	ModelView mgl32.Mat4
	Normal    mgl32.Mat3
}

// EyeLight is a point light moved into eye space.
type EyeLight struct {
	Position    mgl32.Vec3
	Color       mgl32.Vec3
	Attenuation mgl32.Vec3
}

// Segment is a coloured world-space line.
type Segment struct {
	From, To mgl32.Vec3
	Color    mgl32.Vec3
}

// Marker is a small world-space sphere drawn to show a point light.
type Marker struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Frame is everything the renderer needs for one frame. Lights are in eye space.
type Frame struct {
	ClearColor mgl32.Vec3
	Model      lighting.Model
	Projection mgl32.Mat4
	View       mgl32.Mat4

	LightDir    mgl32.Vec3
	LightColor  mgl32.Vec3
	PointLights []EyeLight

	Items   []Item
	Axes    []Segment
	Markers []Marker
}

// Projection returns the perspective projection for a w×h viewport.
func Projection(w, h int) mgl32.Mat4 {
	if h <= 0 {
		h = 1
	}
	if w <= 0 {
		w = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(fovyDegrees), float32(w)/float32(h), nearPlane, farPlane)
}

// Builder turns State into Frames, reusing its slices between frames.
type Builder struct {
	env   Environment
	frame Frame
}

// NewBuilder returns a builder for the given lighting environment.
func NewBuilder(env Environment) *Builder {
	return &Builder{env: env}
}

// SetEnvironment replaces the lighting environment, e.g. after a scene reload.
func (b *Builder) SetEnvironment(env Environment) {
	b.env = env
}

// Build fills the frame for s seen through view and proj. The returned frame is valid until
// the next call.
func (b *Builder) Build(s *sim.State, view, proj mgl32.Mat4) *Frame {
	f := &b.frame
	f.ClearColor = b.env.ClearColor
	f.Model = s.Lighting
	f.Projection = proj
	f.View = view
	f.LightColor = b.env.LightColor
	f.LightDir = eyeDirection(view, b.env.LightDir)
	f.PointLights = f.PointLights[:0]
	f.Items = f.Items[:0]
	f.Axes = f.Axes[:0]
	f.Markers = f.Markers[:0]

	if s.Lighting.Requires(lighting.ParamPointLights) {
		for i, pl := range b.env.PointLights {
			if i == lighting.MaxPointLights {
				break
			}
			f.PointLights = append(f.PointLights, EyeLight{
				Position:    mgl32.TransformCoordinate(pl.Position, view),
				Color:       pl.Color,
				Attenuation: pl.Attenuation,
			})
			if s.ShowPointLights && s.Stage == sim.StagePlaying {
				f.Markers = append(f.Markers, Marker{Position: pl.Position, Color: pl.Color})
			}
		}
	}

	if s.Stage != sim.StagePlaying {
		return f
	}

	withMaterial := s.Lighting.Requires(lighting.ParamMaterial)
	for _, e := range s.Entities {
		mv := view.Mul4(e.WorldMatrix()).Mul4(e.Mesh.Offset())
		it := Item{
			Mesh:      e.Mesh,
			Texture:   e.Material.Texture,
			Tint:      e.Material.Tint,
			Tiling:    e.Mesh.Tiling(),
			ModelView: mv,
			Normal:    mv.Mat3().Inv().Transpose(),
		}
		if withMaterial {
			it.Material = &MaterialParams{
				Emissive:  e.Material.Emissive,
				Specular:  e.Material.Specular,
				Shininess: e.Material.Shininess,
			}
		}
		f.Items = append(f.Items, it)
	}

	if a := s.ActiveEntity(); a != nil {
		f.Axes = appendAxes(f.Axes, &a.Transform)
	}
	return f
}

// eyeDirection normalises dir and rotates it into eye space.
func eyeDirection(view mgl32.Mat4, dir mgl32.Vec3) mgl32.Vec3 {
	if dir.Len() == 0 {
		return dir
	}
	return view.Mul4x1(dir.Normalize().Vec4(0)).Vec3().Normalize()
}

var axisColors = [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// appendAxes adds the local X (red), Y (green) and Z (blue) axes of tr.
func appendAxes(dst []Segment, tr *sim.Transform) []Segment {
	for i, c := range axisColors {
		var dir mgl32.Vec3
		dir[i] = axisLength
		dst = append(dst, Segment{
			From:  tr.Position,
			To:    tr.Position.Add(tr.Orientation.Rotate(dir)),
			Color: c,
		})
	}
	return dst
}
