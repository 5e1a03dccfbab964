// Package hud builds the text of the on-screen status overlay from the scene state.
package hud

import (
	"fmt"

	"scene-demo/internal/sim"
)

// StartPrompt is shown until the start key is pressed.
const StartPrompt = "Press Enter to start"

// Lines returns the overlay text for s, then up to logLines lines of log history.
func Lines(s *sim.State, log []string, logLines int) []string {
	var out []string
	if s.Stage == sim.StageIntro {
		out = append(out, StartPrompt)
	} else {
		out = append(out, fmt.Sprintf("Lighting: %s", s.Lighting))
		out = append(out, fmt.Sprintf("Point lights: %s", onOff(s.ShowPointLights)))
		if e := s.ActiveEntity(); e != nil {
			out = append(out, fmt.Sprintf("Active: #%d %s/%s (%.1f, %.1f, %.1f)",
				s.Active, e.Mesh.Name, e.Material.Name, e.Position.X(), e.Position.Y(), e.Position.Z()))
		}
		if s.SplineActive {
			out = append(out, fmt.Sprintf("Spline: t=%.2f", s.Spline.T()))
		}
	}
	if logLines <= 0 {
		return out
	}
	if len(log) > logLines {
		log = log[len(log)-logLines:]
	}
	return append(out, log...)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
