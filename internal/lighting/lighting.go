package lighting

import "github.com/go-gl/mathgl/mgl32"

// Model selects one of the fixed shading programs. The set is closed; every value has an
// entry in the models table.
type Model uint8

const (
	PerVertexDirLight Model = iota
	BlinnPhongDirLight
	BlinnPhongPointLight
	BlinnPhongMultiLight

	NumModels
)

// Params is the set of inputs a lighting model needs from the renderer.
type Params uint8

const (
	// ParamTint: texture tint colour. Every model uses it.
	ParamTint Params = 1 << iota
	// ParamMaterial: emissive, specular colour and shininess.
	ParamMaterial
	// ParamDirLight: eye-space direction and colour of the directional light.
	ParamDirLight
	// ParamPointLights: eye-space positions, colours and attenuation of the point lights.
	ParamPointLights
)

// MaxPointLights is the size of the point light arrays in the shaders.
const MaxPointLights = 4

type modelInfo struct {
	name   string
	params Params
}

var models = [NumModels]modelInfo{
	PerVertexDirLight:    {"per-vertex directional", ParamTint | ParamDirLight},
	BlinnPhongDirLight:   {"Blinn-Phong directional", ParamTint | ParamMaterial | ParamDirLight},
	BlinnPhongPointLight: {"Blinn-Phong point", ParamTint | ParamMaterial | ParamPointLights},
	BlinnPhongMultiLight: {"Blinn-Phong multi", ParamTint | ParamMaterial | ParamDirLight | ParamPointLights},
}

// Models returns every lighting model in selector order.
func Models() []Model {
	out := make([]Model, NumModels)
	for i := range out {
		out[i] = Model(i)
	}
	return out
}

// Valid reports whether m is one of the known models.
func (m Model) Valid() bool {
	return m < NumModels
}

// Params returns the inputs the model's program reads. Unknown models need nothing.
func (m Model) Params() Params {
	if !m.Valid() {
		return 0
	}
	return models[m].params
}

// Requires reports whether the model needs every parameter in p.
func (m Model) Requires(p Params) bool {
	return m.Params()&p == p
}

func (m Model) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return models[m].name
}

// PointLight is a positional light in world space. Attenuation holds the constant, linear
// and quadratic terms.
type PointLight struct {
	Position    mgl32.Vec3
	Color       mgl32.Vec3
	Attenuation mgl32.Vec3
}
