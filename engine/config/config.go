// Package config loads the free camera's YAML configuration: controller speeds and bindings,
// the input axis table, window and engine options, and the initial camera pose.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Carmen-Shannon/oxy-freecam/common"
	"github.com/Carmen-Shannon/oxy-freecam/engine/camera"
	"github.com/Carmen-Shannon/oxy-freecam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Controller ControllerConfig      `yaml:"controller"`
	Axes       map[string]AxisConfig `yaml:"axes"`
	Window     WindowConfig          `yaml:"window"`
	Engine     EngineConfig          `yaml:"engine"`
	Camera     CameraConfig          `yaml:"camera"`
}

// ControllerConfig mirrors camera.Settings and camera.Bindings.
type ControllerConfig struct {
	Speed            float32        `yaml:"speed"`
	FastSpeed        float32        `yaml:"fastSpeed"`
	RollSpeed        float32        `yaml:"rollSpeed"`
	FastRollSpeed    float32        `yaml:"fastRollSpeed"`
	MouseSensitivity [2]float32     `yaml:"mouseSensitivity,flow"`
	Bindings         BindingsConfig `yaml:"bindings"`
}

// BindingsConfig names the axes and keys for each control. Keys use common.ParseKey names.
type BindingsConfig struct {
	MoveRightAxis   string `yaml:"moveRightAxis"`
	MoveForwardAxis string `yaml:"moveForwardAxis"`
	MoveUpKey       Key    `yaml:"moveUpKey"`
	MoveDownKey     Key    `yaml:"moveDownKey"`
	LookRightAxis   string `yaml:"lookRightAxis"`
	LookUpAxis      string `yaml:"lookUpAxis"`
	RollLeftKey     Key    `yaml:"rollLeftKey"`
	RollRightKey    Key    `yaml:"rollRightKey"`
	FastKey         Key    `yaml:"fastKey"`
	FastLockKey     Key    `yaml:"fastLockKey"`
	HaltKey         Key    `yaml:"haltKey"`
}

// AxisConfig mirrors input.Axis. Mouse is "x", "y" or empty.
type AxisConfig struct {
	Positive []Key   `yaml:"positive,omitempty,flow"`
	Negative []Key   `yaml:"negative,omitempty,flow"`
	Mouse    string  `yaml:"mouse,omitempty"`
	Scale    float32 `yaml:"scale,omitempty"`
}

// WindowConfig holds the platform window options.
type WindowConfig struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	CaptureCursor bool   `yaml:"captureCursor"`
}

// EngineConfig holds the tick loop options.
type EngineConfig struct {
	TickRate  float64 `yaml:"tickRate"`
	Profiling bool    `yaml:"profiling"`
}

// CameraConfig holds the initial pose and projection. Fov is in degrees.
type CameraConfig struct {
	Position [3]float32  `yaml:"position,flow"`
	LookAt   *[3]float32 `yaml:"lookAt,omitempty,flow"`
	Fov      float32     `yaml:"fov"`
	Near     float32     `yaml:"near"`
	Far      float32     `yaml:"far"`
}

// Key is a key code that encodes to and from its name in YAML.
type Key uint32

// UnmarshalYAML decodes a key name such as "LeftShift".
func (k *Key) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	code, err := common.ParseKey(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = Key(code)
	return nil
}

// MarshalYAML encodes the key as its canonical name.
func (k Key) MarshalYAML() (any, error) {
	return common.KeyName(uint32(k)), nil
}

// Default returns the built-in configuration.
//
// Returns:
//   - *Config: a fresh configuration holding every default
func Default() *Config {
	s := camera.DefaultSettings()
	b := camera.DefaultBindings()

	axes := make(map[string]AxisConfig)
	for name, a := range input.DefaultAxes() {
		axes[name] = fromAxis(a)
	}

	return &Config{
		Controller: ControllerConfig{
			Speed:            s.Speed,
			FastSpeed:        s.FastSpeed,
			RollSpeed:        s.RollSpeed,
			FastRollSpeed:    s.FastRollSpeed,
			MouseSensitivity: s.MouseSensitivity,
			Bindings: BindingsConfig{
				MoveRightAxis:   b.MoveRightAxis,
				MoveForwardAxis: b.MoveForwardAxis,
				MoveUpKey:       Key(b.MoveUpKey),
				MoveDownKey:     Key(b.MoveDownKey),
				LookRightAxis:   b.LookRightAxis,
				LookUpAxis:      b.LookUpAxis,
				RollLeftKey:     Key(b.RollLeftKey),
				RollRightKey:    Key(b.RollRightKey),
				FastKey:         Key(b.FastKey),
				FastLockKey:     Key(b.FastLockKey),
				HaltKey:         Key(b.HaltKey),
			},
		},
		Axes: axes,
		Window: WindowConfig{
			Title:         "Oxy Engine - Free Camera",
			Width:         1280,
			Height:        720,
			CaptureCursor: true,
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
		Camera: CameraConfig{
			Position: [3]float32{0, 2, 10},
			Fov:      45,
			Near:     0.1,
			Far:      1000,
		},
	}
}

// Parse decodes a YAML document on top of the defaults. Fields absent from data keep their
// default values; axes merge by name. Zero window, engine and projection values are treated
// as unset.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - *Config: the effective configuration
//   - error: error if the document is malformed or names an unknown key or mouse source
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.fillUnset(Default())
	for name, a := range cfg.Axes {
		if _, err := parseMouse(a.Mouse); err != nil {
			return nil, fmt.Errorf("axis %q: %w", name, err)
		}
	}
	return cfg, nil
}

// Load reads and parses a YAML configuration file.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Config: the effective configuration
//   - error: error if the file cannot be read or parsed
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
//
// Returns:
//   - []byte: the YAML document
//   - error: error if encoding fails
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ControllerSettings converts the controller section to camera.Settings.
//
// Returns:
//   - camera.Settings: the speed settings
func (c *Config) ControllerSettings() camera.Settings {
	cc := c.Controller
	return camera.Settings{
		Speed:            cc.Speed,
		FastSpeed:        cc.FastSpeed,
		RollSpeed:        cc.RollSpeed,
		FastRollSpeed:    cc.FastRollSpeed,
		MouseSensitivity: mgl32.Vec2(cc.MouseSensitivity),
	}
}

// ControllerBindings converts the bindings section to camera.Bindings.
//
// Returns:
//   - camera.Bindings: the control bindings
func (c *Config) ControllerBindings() camera.Bindings {
	b := c.Controller.Bindings
	return camera.Bindings{
		MoveRightAxis:   b.MoveRightAxis,
		MoveForwardAxis: b.MoveForwardAxis,
		MoveUpKey:       uint32(b.MoveUpKey),
		MoveDownKey:     uint32(b.MoveDownKey),
		LookRightAxis:   b.LookRightAxis,
		LookUpAxis:      b.LookUpAxis,
		RollLeftKey:     uint32(b.RollLeftKey),
		RollRightKey:    uint32(b.RollRightKey),
		FastKey:         uint32(b.FastKey),
		FastLockKey:     uint32(b.FastLockKey),
		HaltKey:         uint32(b.HaltKey),
	}
}

// InputAxes converts the axes section to an input axis table.
// Axes with an unrecognized mouse source are dropped; Parse rejects them up front.
//
// Returns:
//   - map[string]input.Axis: axis definitions keyed by name
func (c *Config) InputAxes() map[string]input.Axis {
	axes := make(map[string]input.Axis, len(c.Axes))
	for name, a := range c.Axes {
		mouse, err := parseMouse(a.Mouse)
		if err != nil {
			continue
		}
		axes[name] = input.Axis{
			Positive: keyCodes(a.Positive),
			Negative: keyCodes(a.Negative),
			Mouse:    mouse,
			Scale:    a.Scale,
		}
	}
	return axes
}

// AxisNames returns the configured axis names in sorted order.
//
// Returns:
//   - []string: the axis names
func (c *Config) AxisNames() []string {
	names := make([]string, 0, len(c.Axes))
	for name := range c.Axes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) fillUnset(def *Config) {
	c.Window.Title = common.Coalesce(c.Window.Title, def.Window.Title)
	c.Window.Width = common.Coalesce(c.Window.Width, def.Window.Width)
	c.Window.Height = common.Coalesce(c.Window.Height, def.Window.Height)
	c.Engine.TickRate = common.Coalesce(c.Engine.TickRate, def.Engine.TickRate)
	c.Camera.Fov = common.Coalesce(c.Camera.Fov, def.Camera.Fov)
	c.Camera.Near = common.Coalesce(c.Camera.Near, def.Camera.Near)
	c.Camera.Far = common.Coalesce(c.Camera.Far, def.Camera.Far)
}

func fromAxis(a input.Axis) AxisConfig {
	ac := AxisConfig{Scale: a.Scale}
	for _, k := range a.Positive {
		ac.Positive = append(ac.Positive, Key(k))
	}
	for _, k := range a.Negative {
		ac.Negative = append(ac.Negative, Key(k))
	}
	switch a.Mouse {
	case input.MouseX:
		ac.Mouse = "x"
	case input.MouseY:
		ac.Mouse = "y"
	}
	return ac
}

func parseMouse(s string) (input.MouseSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return input.MouseNone, nil
	case "x":
		return input.MouseX, nil
	case "y":
		return input.MouseY, nil
	default:
		return input.MouseNone, fmt.Errorf("unknown mouse source %q (want x or y)", s)
	}
}

func keyCodes(keys []Key) []uint32 {
	if len(keys) == 0 {
		return nil
	}
	codes := make([]uint32, len(keys))
	for i, k := range keys {
		codes[i] = uint32(k)
	}
	return codes
}
