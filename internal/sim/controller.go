package sim

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"scene-demo/internal/input"
	"scene-demo/internal/lighting"
)

// ErrTooFewEntities is returned when the scene cannot supply the spline control points and
// the entity they drive.
var ErrTooFewEntities = errors.New("too few entities for spline")

// Camera is advanced once per frame, whatever the stage.
type Camera interface {
	Update(dt float32, in input.Input)
}

// Config holds the controller tunables.
type Config struct {
	// Speed is the z oscillation speed in units per second.
	Speed float32
	// Boundary is the |z| at which the shared direction flips.
	Boundary float32
	// RotateStep is the rotation per key press, in degrees.
	RotateStep float32
	// MoveStep is the translation per key press.
	MoveStep float32

	// SplineControls are the entities whose positions define the curve; SplineTarget is
	// the entity placed on it.
	SplineControls [4]int
	SplineTarget   int
}

// DefaultConfig returns the stock tunables: entities 0-3 drive entity 4.
func DefaultConfig() Config {
	return Config{
		Speed:          15,
		Boundary:       25,
		RotateStep:     15,
		MoveStep:       1,
		SplineControls: [4]int{0, 1, 2, 3},
		SplineTarget:   4,
	}
}

var lightingKeys = [lighting.NumModels]input.Key{
	lighting.PerVertexDirLight:    input.KeyLighting1,
	lighting.BlinnPhongDirLight:   input.KeyLighting2,
	lighting.BlinnPhongPointLight: input.KeyLighting3,
	lighting.BlinnPhongMultiLight: input.KeyLighting4,
}

// Controller advances State by one frame.
type Controller struct {
	state *State
	cam   Camera
	cfg   Config
	log   zerolog.Logger
}

// NewController checks that state can satisfy cfg's spline indices. cam may be nil.
func NewController(state *State, cam Camera, cfg Config, log zerolog.Logger) (*Controller, error) {
	need := cfg.SplineTarget
	for _, i := range cfg.SplineControls {
		need = max(need, i)
	}
	if need >= len(state.Entities) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrTooFewEntities, need+1, len(state.Entities))
	}
	if state.Direction != -1 {
		state.Direction = 1
	}
	if state.ActiveEntity() == nil {
		state.Active = 0
	}
	return &Controller{state: state, cam: cam, cfg: cfg, log: log}, nil
}

// State returns the state the controller mutates.
func (c *Controller) State() *State {
	return c.state
}

// Update advances the scene by dt seconds using the key presses in in. It returns false
// when quit was requested; nothing is changed in that case.
func (c *Controller) Update(dt float32, in input.Input) bool {
	if in.Pressed(input.KeyQuit) {
		c.log.Info().Msg("quit requested")
		return false
	}
	if math32.IsNaN(dt) || math32.IsInf(dt, 0) || dt < 0 {
		c.log.Debug().Float32("dt", dt).Msg("ignoring invalid frame time")
		dt = 0
	}

	switch c.state.Stage {
	case StageIntro:
		if in.Pressed(input.KeyStart) {
			c.state.Stage = StagePlaying
			c.log.Info().Stringer("stage", c.state.Stage).Msg("stage changed")
		}
	case StagePlaying:
		c.play(dt, in)
	}

	if c.cam != nil {
		c.cam.Update(dt, in)
	}
	return true
}

func (c *Controller) play(dt float32, in input.Input) {
	s := c.state

	c.oscillate(dt)

	for m, k := range lightingKeys {
		if in.Pressed(k) {
			s.Lighting = lighting.Model(m)
			c.log.Info().Stringer("model", s.Lighting).Msg("lighting model")
		}
	}

	if in.Pressed(input.KeyTogglePointLights) {
		s.ShowPointLights = !s.ShowPointLights
	}

	c.manipulate(in)

	if in.Pressed(input.KeySplineTrigger) {
		s.Spline.Reset()
		if !s.SplineActive {
			c.log.Info().Msg("spline started")
		}
		s.SplineActive = true
	}
	if s.SplineActive {
		ctl := c.cfg.SplineControls
		pos := s.Spline.Evaluate(dt,
			s.Entities[ctl[0]].Position,
			s.Entities[ctl[1]].Position,
			s.Entities[ctl[2]].Position,
			s.Entities[ctl[3]].Position,
		)
		s.Entities[c.cfg.SplineTarget].Position = pos
	}
}

// oscillate moves every entity along z and flips the shared direction once if any of them
// has reached the boundary it was moving towards. The flip applies from the next frame.
func (c *Controller) oscillate(dt float32) {
	s := c.state
	disp := c.cfg.Speed * dt * float32(s.Direction)
	hit := false
	for _, e := range s.Entities {
		e.Position[2] += disp
		if c.atBoundary(e.Position.Z()) {
			hit = true
		}
	}
	if hit {
		s.Direction = -s.Direction
		c.log.Debug().Int("direction", s.Direction).Msg("direction flipped")
	}
}

func (c *Controller) atBoundary(z float32) bool {
	r := math32.Round(z)
	if c.state.Direction > 0 {
		return r >= c.cfg.Boundary
	}
	return r <= -c.cfg.Boundary
}

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

type keyStep struct {
	key input.Key
	dir mgl32.Vec3
}

// IJKL move in world space, TFGH along the entity's own axes. Forward is -z.
var (
	worldSteps = [...]keyStep{
		{input.KeyWorldForward, mgl32.Vec3{0, 0, -1}},
		{input.KeyWorldBack, mgl32.Vec3{0, 0, 1}},
		{input.KeyWorldLeft, mgl32.Vec3{-1, 0, 0}},
		{input.KeyWorldRight, mgl32.Vec3{1, 0, 0}},
	}
	localSteps = [...]keyStep{
		{input.KeyLocalForward, mgl32.Vec3{0, 0, -1}},
		{input.KeyLocalBack, mgl32.Vec3{0, 0, 1}},
		{input.KeyLocalLeft, mgl32.Vec3{-1, 0, 0}},
		{input.KeyLocalRight, mgl32.Vec3{1, 0, 0}},
	}
)

// manipulate applies the active-entity keys. Each press is one fixed step.
func (c *Controller) manipulate(in input.Input) {
	s := c.state
	n := len(s.Entities)
	if n == 0 {
		return
	}
	if in.Pressed(input.KeyNextEntity) {
		s.Active = (s.Active + 1) % n
	}
	if in.Pressed(input.KeyPrevEntity) {
		s.Active = (s.Active - 1 + n) % n
	}
	e := s.ActiveEntity()
	if e == nil {
		return
	}

	rot := mgl32.DegToRad(c.cfg.RotateStep)
	if in.Pressed(input.KeyRotateLeft) {
		e.Rotate(rot, axisY)
	}
	if in.Pressed(input.KeyRotateRight) {
		e.Rotate(-rot, axisY)
	}
	if in.Pressed(input.KeyRotateUp) {
		e.RotateLocal(rot, axisX)
	}
	if in.Pressed(input.KeyRotateDown) {
		e.RotateLocal(-rot, axisX)
	}
	if in.Pressed(input.KeyResetOrientation) {
		e.ResetOrientation()
	}

	m := c.cfg.MoveStep
	for _, ks := range worldSteps {
		if in.Pressed(ks.key) {
			e.Translate(ks.dir.Mul(m))
		}
	}
	for _, ks := range localSteps {
		if in.Pressed(ks.key) {
			e.TranslateLocal(ks.dir.Mul(m))
		}
	}
}
