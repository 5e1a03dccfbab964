package input

// Key is a logical key. The physical binding lives with the Input implementation.
type Key uint8

const (
	KeyNone Key = iota
	KeyQuit
	KeyStart
	KeyResetOrientation
	KeyLighting1
	KeyLighting2
	KeyLighting3
	KeyLighting4
	KeyTogglePointLights
	KeySplineTrigger

	// Rotate the active entity.
	KeyRotateLeft
	KeyRotateRight
	KeyRotateUp
	KeyRotateDown

	// Translate the active entity in world space (IJKL).
	KeyWorldForward
	KeyWorldBack
	KeyWorldLeft
	KeyWorldRight

	// Translate the active entity in local space (TFGH).
	KeyLocalForward
	KeyLocalBack
	KeyLocalLeft
	KeyLocalRight

	KeyNextEntity
	KeyPrevEntity

	// Camera movement (WASD). Read as held state by the camera only.
	KeyCameraForward
	KeyCameraBack
	KeyCameraLeft
	KeyCameraRight

	NumKeys
)

// Input answers per-frame keyboard and mouse queries.
// Pressed is edge-triggered: true only on the frame the key went down.
type Input interface {
	Pressed(k Key) bool
	Down(k Key) bool
	MouseDelta() (dx, dy float32)
}

// Snapshot is a fixed Input value for one frame. Useful for scripted frames and tests.
type Snapshot struct {
	pressed [NumKeys]bool
	down    [NumKeys]bool
	dx, dy  float32
}

// Press returns a snapshot in which the given keys were pressed (and are held) this frame.
func Press(keys ...Key) *Snapshot {
	s := &Snapshot{}
	for _, k := range keys {
		s.SetPressed(k)
	}
	return s
}

// SetPressed marks k as pressed and held.
func (s *Snapshot) SetPressed(k Key) {
	if k >= NumKeys {
		return
	}
	s.pressed[k] = true
	s.down[k] = true
}

// SetDown marks k as held without a press edge.
func (s *Snapshot) SetDown(k Key) {
	if k >= NumKeys {
		return
	}
	s.down[k] = true
}

// SetMouseDelta sets the mouse movement reported for the frame.
func (s *Snapshot) SetMouseDelta(dx, dy float32) {
	s.dx, s.dy = dx, dy
}

// Pressed reports whether k was set with SetPressed or Press.
func (s *Snapshot) Pressed(k Key) bool {
	return k < NumKeys && s.pressed[k]
}

// Down reports whether k was set with SetDown.
func (s *Snapshot) Down(k Key) bool {
	return k < NumKeys && s.down[k]
}

// MouseDelta returns the delta set with SetMouseDelta, zero by default.
func (s *Snapshot) MouseDelta() (float32, float32) {
	return s.dx, s.dy
}

var keyNames = [NumKeys]string{
	KeyNone:              "none",
	KeyQuit:              "quit",
	KeyStart:             "start",
	KeyResetOrientation:  "reset-orientation",
	KeyLighting1:         "lighting-1",
	KeyLighting2:         "lighting-2",
	KeyLighting3:         "lighting-3",
	KeyLighting4:         "lighting-4",
	KeyTogglePointLights: "toggle-point-lights",
	KeySplineTrigger:     "spline",
	KeyRotateLeft:        "rotate-left",
	KeyRotateRight:       "rotate-right",
	KeyRotateUp:          "rotate-up",
	KeyRotateDown:        "rotate-down",
	KeyWorldForward:      "world-forward",
	KeyWorldBack:         "world-back",
	KeyWorldLeft:         "world-left",
	KeyWorldRight:        "world-right",
	KeyLocalForward:      "local-forward",
	KeyLocalBack:         "local-back",
	KeyLocalLeft:         "local-left",
	KeyLocalRight:        "local-right",
	KeyNextEntity:        "next-entity",
	KeyPrevEntity:        "prev-entity",
	KeyCameraForward:     "camera-forward",
	KeyCameraBack:        "camera-back",
	KeyCameraLeft:        "camera-left",
	KeyCameraRight:       "camera-right",
}

func (k Key) String() string {
	if k >= NumKeys {
		return "unknown"
	}
	return keyNames[k]
}
