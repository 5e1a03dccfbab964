// Package texture finds, decodes and prepares material images on the CPU side. Uploading
// to the GPU is left to the primitives package.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/noise"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/mathgl/mgl32"

	// Formats beyond the stdlib PNG/JPEG/GIF decoders.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxSize is the largest edge, in pixels, of a loaded texture. Larger images are scaled
// down keeping their aspect ratio.
const MaxSize = 1024

// PlaceholderSize is the edge length of the image returned by Placeholder.
const PlaceholderSize = 64

// SearchDirs are tried in order by Resolve. The second entry covers running from cmd/scene.
var SearchDirs = []string{
	filepath.Join("assets", "textures"),
	filepath.Join("..", "..", "assets", "textures"),
}

// ErrNotFound is returned by Resolve when no search directory holds the file.
var ErrNotFound = errors.New("texture not found")

// Resolve returns the path of the first file called name in dirs, or in SearchDirs when
// dirs is empty. Absolute names are returned as they are if they exist.
func Resolve(name string, dirs ...string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("texture: empty name: %w", ErrNotFound)
	}
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("texture: %s: %w", name, ErrNotFound)
		}
		return name, nil
	}
	if len(dirs) == 0 {
		dirs = SearchDirs
	}
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("texture: %s: %w", name, ErrNotFound)
}

// Load decodes the image at path and returns it as RGBA, no larger than MaxSize.
func Load(path string) (*image.RGBA, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("texture: %s: empty image", path)
	}
	if w, h, ok := fit(b.Dx(), b.Dy(), MaxSize); ok {
		return transform.Resize(img, w, h, transform.Linear), nil
	}
	return clone.AsRGBA(img), nil
}

// fit scales w×h down so that neither edge exceeds limit. ok is false when no scaling is
// needed.
func fit(w, h, limit int) (int, int, bool) {
	if w <= limit && h <= limit {
		return w, h, false
	}
	if w >= h {
		return limit, max(1, h*limit/w), true
	}
	return max(1, w*limit/h), limit, true
}

// Placeholder returns grey noise multiplied by tint. It stands in for a texture file that
// cannot be found so that the material stays recognisable.
func Placeholder(tint mgl32.Vec4) *image.RGBA {
	n := noise.Generate(PlaceholderSize, PlaceholderSize, &noise.Options{NoiseFn: noise.Uniform, Monochrome: true})
	fill := image.NewRGBA(n.Bounds())
	draw.Draw(fill, fill.Bounds(), image.NewUniform(toColor(tint)), image.Point{}, draw.Src)
	return blend.Multiply(fill, n)
}

// neutral leaves the noise grey; the material tint is applied when shading.
var neutral = mgl32.Vec4{1, 1, 1, 1}

// LoadOrPlaceholder resolves and loads name, falling back to an untinted Placeholder. The
// error reports why the fallback was used.
func LoadOrPlaceholder(name string) (*image.RGBA, error) {
	path, err := Resolve(name)
	if err != nil {
		return Placeholder(neutral), err
	}
	img, err := Load(path)
	if err != nil {
		return Placeholder(neutral), err
	}
	return img, nil
}
