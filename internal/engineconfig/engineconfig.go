package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"scene-demo/internal/sim"
)

// FileName is the preferences file looked up in the config directory.
const FileName = "engine.json"

// EnvPrefix prefixes environment overrides, e.g. SCENE_WINDOW_WIDTH=1920.
const EnvPrefix = "SCENE"

// Prefs holds the engine preferences. In-scene content lives in the scene file instead.
type Prefs struct {
	Window   WindowPrefs `json:"window" mapstructure:"window"`
	LogLevel string      `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string      `json:"logFile" mapstructure:"logFile"`
	Scene    ScenePrefs  `json:"scene" mapstructure:"scene"`
	Sim      SimPrefs    `json:"sim" mapstructure:"sim"`
	Camera   CameraPrefs `json:"camera" mapstructure:"camera"`
	Debug    DebugPrefs  `json:"debug" mapstructure:"debug"`
}

// WindowPrefs sizes the window. Fullscreen uses the monitor size instead of Width/Height.
type WindowPrefs struct {
	Width      int    `json:"width" mapstructure:"width"`
	Height     int    `json:"height" mapstructure:"height"`
	Fullscreen bool   `json:"fullscreen" mapstructure:"fullscreen"`
	Title      string `json:"title" mapstructure:"title"`
	TargetFPS  int    `json:"targetFps" mapstructure:"targetFps"`
}

// ScenePrefs selects the scene file. An empty File uses the built-in scene.
type ScenePrefs struct {
	File  string `json:"file" mapstructure:"file"`
	Watch bool   `json:"watch" mapstructure:"watch"`
}

// SimPrefs overrides the controller tunables; see sim.Config. RotateStep is in degrees.
type SimPrefs struct {
	Speed      float32 `json:"speed" mapstructure:"speed"`
	Boundary   float32 `json:"boundary" mapstructure:"boundary"`
	RotateStep float32 `json:"rotateStep" mapstructure:"rotateStep"`
	MoveStep   float32 `json:"moveStep" mapstructure:"moveStep"`
}

// CameraPrefs tunes the free-fly camera. Sensitivity is radians per pixel of mouse motion.
type CameraPrefs struct {
	Sensitivity float32 `json:"sensitivity" mapstructure:"sensitivity"`
}

// DebugPrefs toggles the on-screen overlays. HUDLogLines is how many recent log lines the
// HUD shows.
type DebugPrefs struct {
	ShowFPS     bool `json:"showFps" mapstructure:"showFps"`
	ShowMem     bool `json:"showMem" mapstructure:"showMem"`
	ShowHUD     bool `json:"showHud" mapstructure:"showHud"`
	ShowGrid    bool `json:"showGrid" mapstructure:"showGrid"`
	HUDLogLines int  `json:"hudLogLines" mapstructure:"hudLogLines"`
}

func setDefaults() {
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.fullscreen", false)
	viper.SetDefault("window.title", "Scene Demo")
	viper.SetDefault("window.targetFps", 60)

	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "logs/scene.log")

	viper.SetDefault("scene.file", "assets/scenes/basic.yaml")
	viper.SetDefault("scene.watch", true)

	viper.SetDefault("sim.speed", 15)
	viper.SetDefault("sim.boundary", 25)
	viper.SetDefault("sim.rotateStep", 15)
	viper.SetDefault("sim.moveStep", 1)

	viper.SetDefault("camera.sensitivity", 0.003)

	viper.SetDefault("debug.showFps", false)
	viper.SetDefault("debug.showMem", false)
	viper.SetDefault("debug.showHud", true)
	viper.SetDefault("debug.showGrid", false)
	viper.SetDefault("debug.hudLogLines", 4)
}

// Load sets the defaults, reads dir/engine.json if it exists and applies SCENE_*
// environment overrides. A missing file is not an error; a malformed one is.
func Load(dir string) (Prefs, error) {
	setDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		viper.SetConfigFile(path)
		viper.SetConfigType("json")
		if err := viper.ReadInConfig(); err != nil {
			return Prefs{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Prefs{}, fmt.Errorf("error reading config file: %w", err)
	}
	return Current()
}

// Current decodes the preferences viper holds now.
func Current() (Prefs, error) {
	var p Prefs
	if err := viper.Unmarshal(&p); err != nil {
		return Prefs{}, fmt.Errorf("error decoding config: %w", err)
	}
	return p, nil
}

// Save writes p to dir/engine.json, creating dir if needed.
func Save(dir string, p Prefs) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, FileName), data, 0644)
}

// SimConfig returns the controller tunables, keeping the stock value for anything not
// positive.
func (p Prefs) SimConfig() sim.Config {
	cfg := sim.DefaultConfig()
	if p.Sim.Speed > 0 {
		cfg.Speed = p.Sim.Speed
	}
	if p.Sim.Boundary > 0 {
		cfg.Boundary = p.Sim.Boundary
	}
	if p.Sim.RotateStep > 0 {
		cfg.RotateStep = p.Sim.RotateStep
	}
	if p.Sim.MoveStep > 0 {
		cfg.MoveStep = p.Sim.MoveStep
	}
	return cfg
}
