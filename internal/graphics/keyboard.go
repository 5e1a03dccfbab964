package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/input"
)

// Bindings maps each logical key to the raylib keys that trigger it.
var Bindings = [input.NumKeys][]int32{
	input.KeyQuit:              {rl.KeyEscape},
	input.KeyStart:             {rl.KeyEnter, rl.KeyKpEnter},
	input.KeyResetOrientation:  {rl.KeyR},
	input.KeyLighting1:         {rl.KeyOne},
	input.KeyLighting2:         {rl.KeyTwo},
	input.KeyLighting3:         {rl.KeyThree},
	input.KeyLighting4:         {rl.KeyFour},
	input.KeyTogglePointLights: {rl.KeyTab},
	input.KeySplineTrigger:     {rl.KeyS},
	input.KeyRotateLeft:        {rl.KeyLeft},
	input.KeyRotateRight:       {rl.KeyRight},
	input.KeyRotateUp:          {rl.KeyUp},
	input.KeyRotateDown:        {rl.KeyDown},
	input.KeyWorldForward:      {rl.KeyI},
	input.KeyWorldBack:         {rl.KeyK},
	input.KeyWorldLeft:         {rl.KeyJ},
	input.KeyWorldRight:        {rl.KeyL},
	input.KeyLocalForward:      {rl.KeyT},
	input.KeyLocalBack:         {rl.KeyG},
	input.KeyLocalLeft:         {rl.KeyF},
	input.KeyLocalRight:        {rl.KeyH},
	input.KeyNextEntity:        {rl.KeyX},
	input.KeyPrevEntity:        {rl.KeyZ},
	input.KeyCameraForward:     {rl.KeyW},
	input.KeyCameraBack:        {rl.KeyS},
	input.KeyCameraLeft:        {rl.KeyA},
	input.KeyCameraRight:       {rl.KeyD},
}

// Keyboard reads the live raylib keyboard and mouse through Bindings.
type Keyboard struct{}

var _ input.Input = Keyboard{}

// Pressed reports whether any key bound to k went down this frame.
func (Keyboard) Pressed(k input.Key) bool {
	if k >= input.NumKeys {
		return false
	}
	for _, rk := range Bindings[k] {
		if rl.IsKeyPressed(rk) {
			return true
		}
	}
	return false
}

// Down reports whether any key bound to k is held.
func (Keyboard) Down(k input.Key) bool {
	if k >= input.NumKeys {
		return false
	}
	for _, rk := range Bindings[k] {
		if rl.IsKeyDown(rk) {
			return true
		}
	}
	return false
}

// MouseDelta returns the mouse movement since the last frame, in pixels.
func (Keyboard) MouseDelta() (float32, float32) {
	d := rl.GetMouseDelta()
	return d.X, d.Y
}
