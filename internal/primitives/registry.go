package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"scene-demo/internal/lighting"
	"scene-demo/internal/render"
	"scene-demo/internal/sim"
	"scene-demo/internal/texture"
)

// planeResolution is the subdivision count of generated quads along each axis.
const planeResolution = 1

// Registry owns the GPU side of the scene: one mesh per sim.Mesh name, one texture per
// file name and one shader program per lighting model. Everything is created on first use
// so that GPU resources are allocated after the window and GL context exist.
type Registry struct {
	meshes   map[string]rl.Mesh
	textures map[string]rl.Texture2D
	programs [lighting.NumModels]*Program
	log      zerolog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		meshes:   make(map[string]rl.Mesh),
		textures: make(map[string]rl.Texture2D),
		log:      log,
	}
}

// Mesh returns the GPU mesh for m, generating it on first use. Cylinders are generated
// standing on Y=0 and quads in XZ; sim.Mesh.Offset accounts for both.
func (r *Registry) Mesh(m *sim.Mesh) rl.Mesh {
	if mesh, ok := r.meshes[m.Name]; ok {
		return mesh
	}
	var mesh rl.Mesh
	switch m.Kind {
	case sim.MeshCylinder:
		mesh = rl.GenMeshCylinder(m.Radius, m.Height, m.Slices)
	case sim.MeshQuad:
		mesh = rl.GenMeshPlane(m.Width, m.Height, planeResolution, planeResolution)
	default:
		mesh = rl.GenMeshCube(m.Width, m.Height, m.Depth)
	}
	r.meshes[m.Name] = mesh
	r.log.Debug().Str("mesh", m.Name).Int32("vertices", mesh.VertexCount).Msg("mesh generated")
	return mesh
}

// Texture returns the texture for the named file, loading it on first use. A file that
// cannot be found or decoded is replaced by grey noise, which the shader tints like any
// other texture.
func (r *Registry) Texture(name string) rl.Texture2D {
	if tex, ok := r.textures[name]; ok {
		return tex
	}
	img, err := texture.LoadOrPlaceholder(name)
	if err != nil {
		r.log.Warn().Err(err).Str("texture", name).Msg("using placeholder texture")
	}
	cimg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(cimg)
	rl.UnloadImage(cimg)
	if rl.IsTextureValid(tex) {
		rl.GenTextureMipmaps(&tex)
		rl.SetTextureFilter(tex, rl.FilterTrilinear)
		rl.SetTextureWrap(tex, rl.WrapRepeat)
	}
	r.textures[name] = tex
	return tex
}

// Program returns the shader program for model, compiling it on first use. It returns nil
// for an unknown model or a program that failed to compile.
func (r *Registry) Program(model lighting.Model) *Program {
	if !model.Valid() {
		return nil
	}
	if p := r.programs[model]; p != nil {
		return p
	}
	src := programSources[model]
	p := newProgram(model, rl.LoadShaderFromMemory(src[0], src[1]))
	if p == nil {
		r.log.Error().Stringer("model", model).Msg("shader program failed to compile")
		return nil
	}
	r.programs[model] = p
	return p
}

// Draw draws one item with p, which must already have its frame uniforms set. Call between
// BeginMode3D and EndMode3D.
func (r *Registry) Draw(p *Program, it *render.Item) {
	p.setItem(it)
	rl.SetMaterialTexture(&p.material, rl.MapAlbedo, r.Texture(it.Texture))
	rl.DrawMesh(r.Mesh(it.Mesh), p.material, rl.MatrixIdentity())
}

// Unload frees every GPU resource the registry created.
func (r *Registry) Unload() {
	for name, mesh := range r.meshes {
		rl.UnloadMesh(&mesh)
		delete(r.meshes, name)
	}
	for name, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, name)
	}
	for i, p := range r.programs {
		if p != nil {
			rl.UnloadShader(p.shader)
			r.programs[i] = nil
		}
	}
}
