package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"scene-demo/internal/lighting"
	"scene-demo/internal/render"
)

// Program is a compiled shader for one lighting model plus its uniform locations.
type Program struct {
	model    lighting.Model
	shader   rl.Shader
	material rl.Material

	projection, modelview, normal int32
	texScale, tint                int32
	lightDir, lightColor          int32
	emissive, specular, shininess int32
	numPointLights                int32
	plPosition, plColor, plAtten  int32
}

func newProgram(model lighting.Model, shader rl.Shader) *Program {
	if !rl.IsShaderValid(shader) {
		return nil
	}
	loc := func(name string) int32 { return rl.GetShaderLocation(shader, name) }
	p := &Program{
		model:          model,
		shader:         shader,
		material:       rl.LoadMaterialDefault(),
		projection:     loc("u_ProjectionMatrix"),
		modelview:      loc("u_ModelviewMatrix"),
		normal:         loc("u_NormalMatrix"),
		texScale:       loc("u_TexScale"),
		tint:           loc("u_Tint"),
		lightDir:       loc("u_LightDir"),
		lightColor:     loc("u_LightColor"),
		emissive:       loc("u_MatEmissiveColor"),
		specular:       loc("u_MatSpecularColor"),
		shininess:      loc("u_MatShininess"),
		numPointLights: loc("u_NumPointLights"),
		plPosition:     loc("u_PointLightPosition"),
		plColor:        loc("u_PointLightColor"),
		plAtten:        loc("u_PointLightAttenuation"),
	}
	p.material.Shader = shader
	return p
}

// Model returns the lighting model the program implements.
func (p *Program) Model() lighting.Model { return p.model }

// SetFrame sends the per-frame uniforms: projection, light and point lights. Only what the
// model reads is sent.
func (p *Program) SetFrame(f *render.Frame) {
	rl.SetShaderValueMatrix(p.shader, p.projection, Matrix(f.Projection))
	if p.model.Requires(lighting.ParamDirLight) {
		p.setVec3(p.lightDir, f.LightDir)
		p.setVec3(p.lightColor, f.LightColor)
	}
	if p.model.Requires(lighting.ParamPointLights) {
		n := min(len(f.PointLights), lighting.MaxPointLights)
		var pos, col, att [lighting.MaxPointLights * 3]float32
		for i := 0; i < n; i++ {
			pl := f.PointLights[i]
			copy(pos[i*3:], pl.Position[:])
			copy(col[i*3:], pl.Color[:])
			copy(att[i*3:], pl.Attenuation[:])
		}
		p.setFloat(p.numPointLights, float32(n))
		if n > 0 {
			rl.SetShaderValueV(p.shader, p.plPosition, pos[:], rl.ShaderUniformVec3, int32(n))
			rl.SetShaderValueV(p.shader, p.plColor, col[:], rl.ShaderUniformVec3, int32(n))
			rl.SetShaderValueV(p.shader, p.plAtten, att[:], rl.ShaderUniformVec3, int32(n))
		}
	}
}

// setItem sends the per-item uniforms.
func (p *Program) setItem(it *render.Item) {
	rl.SetShaderValueMatrix(p.shader, p.modelview, Matrix(it.ModelView))
	rl.SetShaderValueMatrix(p.shader, p.normal, Matrix(it.Normal.Mat4()))
	p.setVec(p.tint, it.Tint[:], rl.ShaderUniformVec4)
	p.setVec(p.texScale, it.Tiling[:], rl.ShaderUniformVec2)
	if it.Material != nil {
		p.setVec3(p.emissive, it.Material.Emissive)
		p.setVec3(p.specular, it.Material.Specular)
		p.setFloat(p.shininess, it.Material.Shininess)
	}
}

func (p *Program) setVec3(loc int32, v mgl32.Vec3) {
	p.setVec(loc, v[:], rl.ShaderUniformVec3)
}

func (p *Program) setFloat(loc int32, v float32) {
	p.setVec(loc, []float32{v}, rl.ShaderUniformFloat)
}

func (p *Program) setVec(loc int32, v []float32, typ rl.ShaderUniformDataType) {
	if loc < 0 {
		return
	}
	rl.SetShaderValue(p.shader, loc, v, typ)
}
