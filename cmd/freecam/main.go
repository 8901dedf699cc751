package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-freecam/common"
	"github.com/Carmen-Shannon/oxy-freecam/engine"
	"github.com/Carmen-Shannon/oxy-freecam/engine/camera"
	"github.com/Carmen-Shannon/oxy-freecam/engine/config"
	"github.com/Carmen-Shannon/oxy-freecam/engine/input"
	"github.com/Carmen-Shannon/oxy-freecam/engine/transform"
	"github.com/Carmen-Shannon/oxy-freecam/engine/window"

	"github.com/alecthomas/kong"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// poseLogInterval throttles the debug pose output.
const poseLogInterval = time.Second

var CLI struct {
	Config     string `help:"YAML configuration file." short:"c" type:"path"`
	Watch      bool   `help:"Reload the configuration file when it changes." short:"w"`
	Debug      bool   `help:"Whether to enable debug logging."`
	DumpConfig bool   `help:"Write the effective configuration to standard output and exit."`
	ResumeKey  string `help:"Key that resumes the camera after a debug halt." default:"Enter"`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("freecam"),
		kong.Description("a free-flying debug camera"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	cfg := config.Default()
	if CLI.Config != "" {
		loaded, err := config.Load(CLI.Config)
		if err != nil {
			writeError(err)
		}
		cfg = loaded
	}

	if CLI.DumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			writeError(err)
		}
		os.Stdout.Write(data)
		return
	}

	resumeKey, err := common.ParseKey(CLI.ResumeKey)
	if err != nil {
		writeError(fmt.Errorf("--resume-key: %w", err))
	}

	if err := run(cfg, resumeKey); err != nil {
		writeError(err)
	}
}

func run(cfg *config.Config, resumeKey uint32) error {
	var watcher *config.Watcher
	if CLI.Watch {
		if CLI.Config == "" {
			return fmt.Errorf("--watch requires --config")
		}
		w, err := config.NewWatcher(CLI.Config)
		if err != nil {
			return err
		}
		defer w.Close()
		watcher = w
		log.Info().Str("path", w.Path()).Msg("watching configuration")
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithCursorCaptured(cfg.Window.CaptureCursor),
	)

	in := input.NewInput(input.WithAxes(cfg.InputAxes()))
	log.Debug().Strs("axes", cfg.AxisNames()).Msg("input axes")

	pose := []transform.TransformBuilderOption{
		transform.WithPosition(cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2]),
	}
	if at := cfg.Camera.LookAt; at != nil {
		pose = append(pose, transform.WithLookAt(at[0], at[1], at[2]))
	}
	tr := transform.NewTransform(pose...)

	cam := camera.NewCamera(
		camera.WithFov(mgl32.DegToRad(cfg.Camera.Fov)),
		camera.WithAspect(aspect(win.Width(), win.Height())),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
		camera.WithCameraTransform(tr),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithLogger(log.Logger.With().Str("component", "engine").Logger()),
	)

	ctrl := camera.NewFreeCameraController(in,
		camera.WithSettings(cfg.ControllerSettings()),
		camera.WithBindings(cfg.ControllerBindings()),
		camera.WithTransform(tr),
		camera.WithHaltHandler(eng.Pause),
		camera.WithLogger(log.Logger.With().Str("component", "freecam").Logger()),
	)

	keyDown := pauseGate(eng, in, resumeKey)
	win.SetKeyDownCallback(keyDown)
	win.SetKeyUpCallback(in.HandleKeyUp)
	win.SetMouseDownCallback(keyDown)
	win.SetMouseUpCallback(in.HandleKeyUp)
	win.SetScrollCallback(func(delta float32) {
		cam.SetFov(zoomFov(cam.Fov(), delta))
	})
	win.SetMouseMoveCallback(in.HandleMouseMove)
	win.SetResizeCallback(func(width, height int) {
		cam.SetAspect(aspect(width, height))
	})

	var sinceLog time.Duration
	eng.SetTickCallback(func(dt float32) {
		if watcher != nil {
			applyReload(watcher, ctrl, in)
		}

		in.Poll()
		ctrl.Update(dt)
		cam.Update()

		sinceLog += time.Duration(float64(dt) * float64(time.Second))
		if sinceLog >= poseLogInterval {
			sinceLog = 0
			p := tr.Position()
			f := tr.Forward()
			log.Debug().
				Floats32("position", p[:]).
				Floats32("forward", f[:]).
				Bool("fast", ctrl.Fast()).
				Bool("fastLock", ctrl.FastLock()).
				Float32("speed", ctrl.CurrentMoveSpeed()).
				Msg("camera pose")
		}
	})

	log.Info().
		Str("resumeKey", common.KeyName(resumeKey)).
		Str("haltKey", common.KeyName(ctrl.Bindings().HaltKey)).
		Msg("free camera ready")
	eng.Run()
	return nil
}

// applyReload applies at most one pending configuration without blocking the tick.
func applyReload(w *config.Watcher, ctrl camera.FreeCameraController, in input.Input) {
	select {
	case cfg := <-w.Updates:
		ctrl.SetSettings(cfg.ControllerSettings())
		ctrl.SetBindings(cfg.ControllerBindings())
		in.SetAxes(cfg.InputAxes())
		log.Info().Msg("configuration reloaded")
	case err := <-w.Errors:
		log.Warn().Err(err).Msg("configuration reload failed")
	default:
	}
}

func aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
