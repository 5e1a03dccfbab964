package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Options configures the window.
type Options struct {
	Width, Height int
	Title         string
	Fullscreen    bool
	TargetFPS     int
	// OnClose runs after the last frame, while the GL context still exists.
	OnClose func()
}

// Run opens the window and runs the frame loop. Each frame it calls update with the frame
// time in seconds, then draw with the current screen size between BeginDrawing and
// EndDrawing. The loop ends when update returns false or the window is closed.
// Esc is not an exit key here; quitting is left to update.
func Run(opts Options, log zerolog.Logger, update func(dt float32) bool, draw func(w, h int)) {
	rl.SetTraceLogCallback(func(level int, msg string) {
		log.WithLevel(traceLevel(rl.TraceLogLevel(level))).Str("src", "raylib").Msg(msg)
	})
	rl.SetTraceLogLevel(rl.LogWarning)

	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)

	w, h := opts.Width, opts.Height
	if opts.Fullscreen {
		w, h = rl.GetMonitorWidth(rl.GetCurrentMonitor()), rl.GetMonitorHeight(rl.GetCurrentMonitor())
	}
	rl.InitWindow(int32(w), int32(h), opts.Title)
	defer rl.CloseWindow()
	if opts.OnClose != nil {
		defer opts.OnClose()
	}

	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	rl.DisableCursor()
	log.Info().Int("width", rl.GetScreenWidth()).Int("height", rl.GetScreenHeight()).Msg("window open")

	for !rl.WindowShouldClose() {
		if !update(rl.GetFrameTime()) {
			break
		}
		rl.BeginDrawing()
		draw(rl.GetScreenWidth(), rl.GetScreenHeight())
		rl.EndDrawing()
	}
}

func traceLevel(l rl.TraceLogLevel) zerolog.Level {
	switch l {
	case rl.LogTrace:
		return zerolog.TraceLevel
	case rl.LogDebug:
		return zerolog.DebugLevel
	case rl.LogInfo:
		return zerolog.InfoLevel
	case rl.LogWarning:
		return zerolog.WarnLevel
	case rl.LogError:
		return zerolog.ErrorLevel
	case rl.LogFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}
