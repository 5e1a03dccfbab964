package sim

import (
	"scene-demo/internal/lighting"
	"scene-demo/internal/spline"
)

// Stage is the top-level mode of the demo. The only transition is Intro -> Playing.
type Stage uint8

const (
	// StageIntro waits for the start key. Only the camera moves.
	StageIntro Stage = iota
	// StagePlaying runs entity animation, the spline and the lighting keys.
	StagePlaying
)

func (s Stage) String() string {
	switch s {
	case StageIntro:
		return "intro"
	case StagePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// State is everything that changes from frame to frame. It is owned by the frame loop and
// passed to the controller and the renderer; it is not safe for concurrent use.
type State struct {
	Entities []*Entity

	Stage Stage
	// Direction is +1 or -1 and is shared by every entity.
	Direction int

	Lighting        lighting.Model
	ShowPointLights bool

	// Active is the index of the entity manipulated by the arrow/IJKL/TFGH keys.
	Active int

	// SplineActive latches on at the first spline trigger and stays on.
	SplineActive bool
	Spline       spline.Evaluator
}

// NewState returns the state for a fresh session over entities.
func NewState(entities []*Entity) *State {
	return &State{
		Entities:        entities,
		Stage:           StageIntro,
		Direction:       1,
		Lighting:        lighting.PerVertexDirLight,
		ShowPointLights: true,
	}
}

// ActiveEntity returns the entity under manipulation, or nil if there are none.
func (s *State) ActiveEntity() *Entity {
	if s.Active < 0 || s.Active >= len(s.Entities) {
		return nil
	}
	return s.Entities[s.Active]
}
