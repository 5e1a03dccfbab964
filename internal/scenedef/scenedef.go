package scenedef

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

//go:embed basic.yaml
var defaultScene []byte

// Validation errors, wrapped with the offending name.
var (
	ErrUnknownMesh     = errors.New("unknown mesh")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrTooFewEntities  = errors.New("too few entities")
)

// MinEntities is the smallest scene the controller can run: four spline control points and
// the entity they drive.
const MinEntities = 5

// Scene is the YAML definition of the demo scene (see basic.yaml).
type Scene struct {
	ClearColor       [3]float32         `yaml:"clear_color"`
	Camera           CameraDef          `yaml:"camera"`
	Light            LightDef           `yaml:"light"`
	PointLights      []PointLightDef    `yaml:"point_lights,omitempty"`
	Meshes           map[string]MeshDef `yaml:"meshes"`
	MaterialDefaults MaterialDef        `yaml:"material_defaults"`
	Materials        []MaterialDef      `yaml:"materials"`
	Rows             RowsDef            `yaml:"rows"`
	Room             RoomDef            `yaml:"room"`
}

// CameraDef places the camera. Fovy is in degrees.
type CameraDef struct {
	Position [3]float32 `yaml:"position"`
	LookAt   [3]float32 `yaml:"look_at"`
	Speed    float32    `yaml:"speed"`
	Fovy     float32    `yaml:"fovy,omitempty"`
}

// LightDef is the directional light. Direction points towards the light.
type LightDef struct {
	Direction [3]float32 `yaml:"direction"`
	Color     [3]float32 `yaml:"color"`
}

// PointLightDef is a point light. Attenuation is (constant, linear, quadratic); all zero
// means constant 1.
type PointLightDef struct {
	Position    [3]float32 `yaml:"position"`
	Color       [3]float32 `yaml:"color"`
	Attenuation [3]float32 `yaml:"attenuation"`
}

// MeshDef is a primitive: type "cube" (Size) or "cylinder" (Radius, Height, Slices).
type MeshDef struct {
	Type   string     `yaml:"type"`
	Size   [3]float32 `yaml:"size,omitempty"`
	Radius float32    `yaml:"radius,omitempty"`
	Height float32    `yaml:"height,omitempty"`
	Slices int        `yaml:"slices,omitempty"`
}

// MaterialDef is a named surface. Zero fields take their value from material_defaults.
type MaterialDef struct {
	Name      string     `yaml:"name"`
	Texture   string     `yaml:"texture,omitempty"`
	Tint      [4]float32 `yaml:"tint,omitempty"`
	Emissive  [3]float32 `yaml:"emissive,omitempty"`
	Specular  [3]float32 `yaml:"specular,omitempty"`
	Shininess float32    `yaml:"shininess,omitempty"`
}

// RowsDef lays out one row per material from FirstMaterial on. Each row has one entity per
// mesh, at the matching X offset.
type RowsDef struct {
	Meshes        []string  `yaml:"meshes"`
	X             []float32 `yaml:"x"`
	Y             float32   `yaml:"y,omitempty"`
	Spacing       float32   `yaml:"spacing"`
	FirstMaterial int       `yaml:"first_material"`
}

// RoomDef is the floor and ceiling (and, if Walls is set, the four walls). A zero Width
// means no room.
type RoomDef struct {
	Width        float32 `yaml:"width"`
	Height       float32 `yaml:"height"`
	Depth        float32 `yaml:"depth"`
	TilesPerUnit float32 `yaml:"tiles_per_unit"`
	Material     string  `yaml:"material"`
	Walls        bool    `yaml:"walls,omitempty"`
}

// Default returns a fresh copy of the built-in scene.
func Default() *Scene {
	s, err := Parse(defaultScene)
	if err != nil {
		panic(fmt.Sprintf("scenedef: built-in scene: %v", err))
	}
	return s
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenedef: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenedef: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every reference in the scene resolves.
func (s *Scene) Validate() error {
	if len(s.Materials) == 0 {
		return fmt.Errorf("no materials")
	}
	for name, m := range s.Meshes {
		switch m.Type {
		case "cube", "cylinder":
		default:
			return fmt.Errorf("mesh %q: type %q: %w", name, m.Type, ErrUnknownMesh)
		}
	}
	for _, name := range s.Rows.Meshes {
		if _, ok := s.Meshes[name]; !ok {
			return fmt.Errorf("rows: mesh %q: %w", name, ErrUnknownMesh)
		}
	}
	if len(s.Rows.X) != len(s.Rows.Meshes) {
		return fmt.Errorf("rows: %d x offsets for %d meshes", len(s.Rows.X), len(s.Rows.Meshes))
	}
	if s.Rows.FirstMaterial < 0 || s.Rows.FirstMaterial >= len(s.Materials) {
		return fmt.Errorf("rows: first_material %d out of range", s.Rows.FirstMaterial)
	}
	if s.Room.Width > 0 && s.MaterialIndex(s.Room.Material) < 0 {
		return fmt.Errorf("room: material %q: %w", s.Room.Material, ErrUnknownMaterial)
	}
	if n := s.EntityCount(); n < MinEntities {
		return fmt.Errorf("%w: scene lays out %d, need %d", ErrTooFewEntities, n, MinEntities)
	}
	return nil
}

// EntityCount is the number of entities the scene lays out: one per row mesh per material
// from rows.first_material on, then the room quads.
func (s *Scene) EntityCount() int {
	n := 0
	if rows := len(s.Materials) - s.Rows.FirstMaterial; rows > 0 {
		n = rows * len(s.Rows.Meshes)
	}
	if s.Room.Width > 0 {
		n += 2
		if s.Room.Walls {
			n += 4
		}
	}
	return n
}

// MaterialIndex returns the index of the named material, or -1.
func (s *Scene) MaterialIndex(name string) int {
	for i, m := range s.Materials {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// ResolvedMaterials returns the materials with material_defaults filled into zero fields.
func (s *Scene) ResolvedMaterials() ([]MaterialDef, error) {
	out := make([]MaterialDef, len(s.Materials))
	for i := range s.Materials {
		r := s.MaterialDefaults
		if err := copier.CopyWithOption(&r, &s.Materials[i], copier.Option{IgnoreEmpty: true}); err != nil {
			return nil, fmt.Errorf("material %q: %w", s.Materials[i].Name, err)
		}
		out[i] = r
	}
	return out, nil
}
