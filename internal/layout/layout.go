package layout

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"scene-demo/internal/lighting"
	"scene-demo/internal/render"
	"scene-demo/internal/scenedef"
	"scene-demo/internal/sim"
)

// Room mesh names. Row meshes use the names from the scene file.
const (
	MeshRoomFloor     = "room_floor"
	MeshRoomFrontBack = "room_front_back"
	MeshRoomLeftRight = "room_left_right"
)

// World is a scene definition turned into simulation objects.
type World struct {
	Meshes      map[string]*sim.Mesh
	Materials   []*sim.Material
	Entities    []*sim.Entity
	Environment render.Environment
}

// MeshList returns the meshes sorted by name.
func (w *World) MeshList() []*sim.Mesh {
	out := make([]*sim.Mesh, 0, len(w.Meshes))
	for _, m := range w.Meshes {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Build lays out def: one row of primitives for every material from rows.first_material on,
// starting at z = spacing*len(materials)/2 and stepping towards -z, followed by the room.
// Entity order is row by row, mesh by mesh, then floor, ceiling and walls.
func Build(def *scenedef.Scene) (*World, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	resolved, err := def.ResolvedMaterials()
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	w := &World{
		Meshes:      make(map[string]*sim.Mesh, len(def.Meshes)+3),
		Environment: Environment(def),
	}
	for name, md := range def.Meshes {
		w.Meshes[name] = meshFromDef(name, md)
	}
	for _, md := range resolved {
		w.Materials = append(w.Materials, materialFromDef(md))
	}

	rows := def.Rows
	z := 0.5 * rows.Spacing * float32(len(w.Materials))
	for i := rows.FirstMaterial; i < len(w.Materials); i++ {
		for j, name := range rows.Meshes {
			w.Entities = append(w.Entities, sim.NewEntity(w.Meshes[name], w.Materials[i], sim.NewTransform(rows.X[j], rows.Y, z)))
		}
		z -= rows.Spacing
	}

	if def.Room.Width > 0 {
		w.addRoom(def.Room, w.Materials[def.MaterialIndex(def.Room.Material)])
	}
	return w, nil
}

func (w *World) addRoom(r scenedef.RoomDef, mat *sim.Material) {
	quad := func(name string, width, height float32) *sim.Mesh {
		m := &sim.Mesh{
			Name:   name,
			Kind:   sim.MeshQuad,
			Width:  width,
			Height: height,
			TileU:  width * r.TilesPerUnit,
			TileV:  height * r.TilesPerUnit,
		}
		w.Meshes[name] = m
		return m
	}
	place := func(mesh *sim.Mesh, pos mgl32.Vec3, angle float32, axis mgl32.Vec3) {
		tr := sim.NewTransform(pos.X(), pos.Y(), pos.Z())
		if angle != 0 {
			tr.Rotate(mgl32.DegToRad(angle), axis)
		}
		w.Entities = append(w.Entities, sim.NewEntity(mesh, mat, tr))
	}
	xAxis := mgl32.Vec3{1, 0, 0}
	yAxis := mgl32.Vec3{0, 1, 0}

	cf := quad(MeshRoomFloor, r.Width, r.Depth)
	place(cf, mgl32.Vec3{0, -0.5 * r.Height, 0}, -90, xAxis)
	place(cf, mgl32.Vec3{0, 0.5 * r.Height, 0}, 90, xAxis)

	if !r.Walls {
		return
	}
	fb := quad(MeshRoomFrontBack, r.Width, r.Height)
	lr := quad(MeshRoomLeftRight, r.Depth, r.Height)
	place(fb, mgl32.Vec3{0, 0, -0.5 * r.Depth}, 0, yAxis)
	place(fb, mgl32.Vec3{0, 0, 0.5 * r.Depth}, 180, yAxis)
	place(lr, mgl32.Vec3{-0.5 * r.Width, 0, 0}, 90, yAxis)
	place(lr, mgl32.Vec3{0.5 * r.Width, 0, 0}, -90, yAxis)
}

func meshFromDef(name string, md scenedef.MeshDef) *sim.Mesh {
	switch md.Type {
	case "cylinder":
		return &sim.Mesh{Name: name, Kind: sim.MeshCylinder, Radius: md.Radius, Height: md.Height, Slices: max(md.Slices, 3)}
	default:
		size := md.Size
		if size == ([3]float32{}) {
			size = [3]float32{1, 1, 1}
		}
		return &sim.Mesh{Name: name, Kind: sim.MeshCube, Width: size[0], Height: size[1], Depth: size[2]}
	}
}

func materialFromDef(md scenedef.MaterialDef) *sim.Material {
	return &sim.Material{
		Name:      md.Name,
		Texture:   md.Texture,
		Tint:      md.Tint,
		Emissive:  md.Emissive,
		Specular:  md.Specular,
		Shininess: md.Shininess,
	}
}

// Environment returns the lighting described by def. Point lights with no attenuation get
// constant attenuation 1.
func Environment(def *scenedef.Scene) render.Environment {
	env := render.Environment{
		ClearColor: def.ClearColor,
		LightDir:   def.Light.Direction,
		LightColor: def.Light.Color,
	}
	for _, pl := range def.PointLights {
		att := mgl32.Vec3(pl.Attenuation)
		if att == (mgl32.Vec3{}) {
			att = mgl32.Vec3{1, 0, 0}
		}
		env.PointLights = append(env.PointLights, lighting.PointLight{
			Position:    pl.Position,
			Color:       pl.Color,
			Attenuation: att,
		})
	}
	return env
}

// ApplyMaterials copies surface parameters from def onto the materials with the same name.
// Textures are not reloaded. It returns how many materials changed.
func ApplyMaterials(mats []*sim.Material, def *scenedef.Scene) (int, error) {
	resolved, err := def.ResolvedMaterials()
	if err != nil {
		return 0, fmt.Errorf("layout: %w", err)
	}
	byName := make(map[string]scenedef.MaterialDef, len(resolved))
	for _, md := range resolved {
		byName[md.Name] = md
	}
	n := 0
	for _, m := range mats {
		md, ok := byName[m.Name]
		if !ok {
			continue
		}
		next := materialFromDef(md)
		next.Texture = m.Texture
		if *next != *m {
			*m = *next
			n++
		}
	}
	return n, nil
}
