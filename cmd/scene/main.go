package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"scene-demo/internal/camera"
	"scene-demo/internal/debug"
	"scene-demo/internal/engineconfig"
	"scene-demo/internal/env"
	"scene-demo/internal/graphics"
	"scene-demo/internal/hud"
	"scene-demo/internal/layout"
	"scene-demo/internal/logger"
	"scene-demo/internal/primitives"
	"scene-demo/internal/render"
	"scene-demo/internal/scene"
	"scene-demo/internal/scenedef"
	"scene-demo/internal/sim"
)

const usage = `Controls:
  Enter        start
  Esc          quit
  W A S D      move camera, mouse to look
  1 2 3 4      lighting: per-vertex / Blinn-Phong directional / point / multi
  Tab          show or hide point lights
  S            start (or restart) the spline
  X / Z        next / previous entity
  Arrows       rotate the active entity
  R            reset its orientation
  I J K L      move it in world space
  T F G H      move it in its own space`

func main() {
	configDir := flag.String("config", "config", "directory holding engine.json")
	sceneFile := flag.String("scene", "", "scene file; overrides scene.file")
	flag.Parse()

	dotenv, err := env.Load(env.DefaultPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	prefs, err := engineconfig.Load(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logger.New(prefs.LogFile, prefs.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Close()
	if len(dotenv) > 0 {
		log.Debug().Strs("vars", dotenv).Msg("loaded " + env.DefaultPath)
	}

	if *sceneFile != "" {
		prefs.Scene.File = *sceneFile
	}
	def, path := loadScene(prefs.Scene.File, log.Logger)

	world, err := layout.Build(def)
	if err != nil {
		log.Fatal().Err(err).Msg("building scene")
	}
	state := sim.NewState(world.Entities)

	cam := camera.New(mgl32.Vec3(def.Camera.Position), def.Camera.Speed)
	cam.SetFovy(def.Camera.Fovy)
	cam.SetSensitivity(prefs.Camera.Sensitivity)
	cam.LookAt(mgl32.Vec3(def.Camera.LookAt))

	ctrl, err := sim.NewController(state, cam, prefs.SimConfig(), log.With().Str("component", "controller").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("creating controller")
	}
	log.Info().Int("entities", len(world.Entities)).Int("materials", len(world.Materials)).Msg("scene ready")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var reloads <-chan *scenedef.Scene
	if prefs.Scene.Watch && path != "" {
		reloads, err = scenedef.Watch(ctx, path, log.With().Str("component", "watch").Logger())
		if err != nil {
			log.Warn().Err(err).Msg("scene hot reload disabled")
		}
	}

	builder := render.NewBuilder(world.Environment)
	reg := primitives.NewRegistry(log.With().Str("component", "gpu").Logger())
	renderer := scene.New(reg)
	renderer.GridVisible = prefs.Debug.ShowGrid
	overlay := debug.New(prefs.Debug.ShowFPS, prefs.Debug.ShowMem, prefs.Debug.ShowHUD)

	log.Info().Msg(usage)

	kb := graphics.Keyboard{}
	update := func(dt float32) bool {
		select {
		case s, ok := <-reloads:
			if ok {
				applyReload(s, world, builder, log.Logger)
			}
		default:
		}
		return ctrl.Update(dt, kb)
	}
	draw := func(w, h int) {
		f := builder.Build(state, cam.ViewMatrix(), render.Projection(w, h))
		renderer.Draw(f)
		overlay.Draw(hud.Lines(state, log.Tail(prefs.Debug.HUDLogLines), prefs.Debug.HUDLogLines))
	}

	graphics.Run(graphics.Options{
		Width:      prefs.Window.Width,
		Height:     prefs.Window.Height,
		Title:      prefs.Window.Title,
		Fullscreen: prefs.Window.Fullscreen,
		TargetFPS:  prefs.Window.TargetFPS,
		OnClose:    reg.Unload,
	}, log.Logger, update, draw)
	log.Info().Msg("bye")
}

// loadScene reads the scene file at path, falling back to the built-in scene when the file
// does not exist. The returned path is empty when the built-in scene is used.
func loadScene(path string, log zerolog.Logger) (*scenedef.Scene, string) {
	if path == "" {
		return scenedef.Default(), ""
	}
	def, err := scenedef.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("scene file not found, using built-in scene")
		return scenedef.Default(), ""
	}
	if err != nil {
		log.Fatal().Err(err).Msg("loading scene")
	}
	log.Info().Str("path", path).Msg("scene loaded")
	return def, path
}

// applyReload pushes material and lighting edits from a reloaded scene file into the
// running scene. Layout changes need a restart.
func applyReload(def *scenedef.Scene, world *layout.World, builder *render.Builder, log zerolog.Logger) {
	n, err := layout.ApplyMaterials(world.Materials, def)
	if err != nil {
		log.Warn().Err(err).Msg("scene reload not applied")
		return
	}
	world.Environment = layout.Environment(def)
	builder.SetEnvironment(world.Environment)
	log.Info().Int("materials", n).Msg("scene reload applied")
}
