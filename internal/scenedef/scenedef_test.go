package scenedef

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, [3]float32{0.3, 0.3, 0.3}, s.ClearColor)
	assert.Equal(t, [3]float32{66, -10, 2}, s.Camera.Position)
	assert.Equal(t, [3]float32{0, 0, 7}, s.Camera.LookAt)
	assert.Equal(t, float32(2), s.Camera.Speed)
	assert.Len(t, s.Materials, 8)
	assert.Len(t, s.Meshes, 3)
	assert.Equal(t, 8, s.Meshes["chunky_cylinder"].Slices)
	assert.Equal(t, 15, s.Meshes["smooth_cylinder"].Slices)
	assert.Equal(t, 2, s.Rows.FirstMaterial)
	assert.Equal(t, float32(140), s.Room.Width)
	assert.False(t, s.Room.Walls)
}

func TestDefault_IsFreshCopy(t *testing.T) {
	a := Default()
	a.Materials[0].Name = "changed"
	assert.Equal(t, "sandstone", Default().Materials[0].Name)
}

func TestResolvedMaterials(t *testing.T) {
	mats, err := Default().ResolvedMaterials()
	require.NoError(t, err)
	require.Len(t, mats, 8)

	// Defaults fill the unset fields.
	assert.Equal(t, "sandstone", mats[0].Name)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, mats[0].Tint)
	assert.Equal(t, [3]float32{0, 0, 0}, mats[0].Specular)
	assert.Equal(t, float32(16), mats[0].Shininess)

	// Explicit values win.
	water := mats[3]
	assert.Equal(t, "water_drops", water.Name)
	assert.Equal(t, [3]float32{1, 1, 1}, water.Specular)
	assert.Equal(t, float32(128), water.Shininess)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, water.Tint)

	black := mats[7]
	assert.Equal(t, [3]float32{1, 0.5, 0}, black.Specular)
	assert.Equal(t, "black.png", black.Texture)
}

func TestParse_Errors(t *testing.T) {
	base, err := os.ReadFile("basic.yaml")
	require.NoError(t, err)

	tests := []struct {
		name    string
		edit    func(string) string
		wantErr error
		msg     string
	}{
		{
			name:    "unknown mesh type",
			edit:    func(s string) string { return strings.Replace(s, "type: cube", "type: torus", 1) },
			wantErr: ErrUnknownMesh,
		},
		{
			name:    "unknown row mesh",
			edit:    func(s string) string { return strings.Replace(s, "[cube, chunky_cylinder", "[sphere, chunky_cylinder", 1) },
			wantErr: ErrUnknownMesh,
		},
		{
			name:    "unknown room material",
			edit:    func(s string) string { return strings.Replace(s, "material: sandstone", "material: marble", 1) },
			wantErr: ErrUnknownMaterial,
		},
		{
			name: "offset count mismatch",
			edit: func(s string) string { return strings.Replace(s, "x: [-4, 0, 4]", "x: [-4, 0]", 1) },
			msg:  "x offsets",
		},
		{
			name: "first material out of range",
			edit: func(s string) string { return strings.Replace(s, "first_material: 2", "first_material: 8", 1) },
			msg:  "out of range",
		},
		{
			name: "bad yaml",
			edit: func(string) string { return "materials: [" },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.edit(string(base))))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestParse_NoMaterials(t *testing.T) {
	_, err := Parse([]byte("clear_color: [0, 0, 0]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no materials")
}

func TestParse_NoRoom(t *testing.T) {
	s, err := Parse([]byte(`
materials:
  - name: plain
meshes:
  box: {type: cube}
rows:
  meshes: [box, box, box, box, box]
  x: [0, 1, 2, 3, 4]
`))
	require.NoError(t, err)
	assert.Equal(t, float32(0), s.Room.Width)
	assert.Equal(t, 5, s.EntityCount())
}

func TestParse_TooFewEntities(t *testing.T) {
	_, err := Parse([]byte(`
materials:
  - name: plain
meshes:
  box: {type: cube}
rows:
  meshes: [box, box]
  x: [0, 1]
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooFewEntities)
	assert.Contains(t, err.Error(), "lays out 2, need 5")
}

func TestEntityCount(t *testing.T) {
	s := Default()
	assert.Equal(t, 20, s.EntityCount())

	s.Room.Walls = true
	assert.Equal(t, 24, s.EntityCount())

	s.Room = RoomDef{}
	assert.Equal(t, 18, s.EntityCount())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, defaultScene, 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Materials, 8)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatch_DeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, defaultScene, 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, path, zerolog.Nop())
	require.NoError(t, err)

	// A broken write is skipped; the following good one arrives.
	require.NoError(t, os.WriteFile(path, []byte("materials: ["), 0644))
	edited := strings.Replace(string(defaultScene), "shininess: 128", "shininess: 100", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-ch:
			require.NotNil(t, s)
			if s.Materials[3].Shininess == 100 {
				cancel()
				for range ch {
				}
				return
			}
		case <-deadline:
			t.Fatal("no reload received")
		}
	}
}

func TestWatch_MissingDir(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "scene.yaml"), zerolog.Nop())
	require.Error(t, err)
}
