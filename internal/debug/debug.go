package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: FPS/Mem text is only rebuilt every N frames to limit allocations.
	updateInterval = 30
)

var hudColor = rl.NewColor(240, 240, 240, 255)

// Debug draws the 2D overlays: FPS and heap size at the top right, and the status HUD at
// the top left. Call after the 3D scene, between BeginDrawing and EndDrawing.
type Debug struct {
	ShowFPS bool
	ShowMem bool
	ShowHUD bool

	frameCount  uint32
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

// New returns a Debug with the given overlays enabled.
func New(showFPS, showMem, showHUD bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowMem: showMem, ShowHUD: showHUD}
}

// Draw renders the enabled overlays. hud is drawn one line per entry.
func (d *Debug) Draw(hud []string) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 ||
		d.ShowFPS && d.lastFpsText == "" ||
		d.ShowMem && d.lastMemText == ""

	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, y)
		y += lineHeight
	}
	if d.ShowMem {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, y)
	}

	if d.ShowHUD {
		y = padding
		for _, line := range hud {
			rl.DrawText(line, padding, y, fontSize, hudColor)
			y += lineHeight
		}
	}
}

func drawRight(text string, y int32) {
	if text == "" {
		return
	}
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
