// mazeview - terminal 3D scene viewer
// Orbit a camera around flat-shaded triangle scenes, rendered as colored
// terminal cells.
//
// Controls:
//
//	A/D         - Orbit left/right
//	W/S         - Pitch up/down
//	+/-         - Zoom in/out
//	Space       - Toggle auto-orbit
//	R           - Reset view
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gliderman/3D-Maze-Game/pkg/math3d"
	"github.com/gliderman/3D-Maze-Game/pkg/models"
	"github.com/gliderman/3D-Maze-Game/pkg/render"
	"github.com/gliderman/3D-Maze-Game/pkg/term"
)

var (
	targetFPS = flag.Int("fps", 30, "Target FPS")
	ansiMode  = flag.Bool("ansi", false, "Stream raw ANSI frames to stdout instead of running interactively")
	fbWidth   = flag.Int("width", 80, "Framebuffer width in cells (ANSI mode)")
	fbHeight  = flag.Int("height", 24, "Framebuffer height in cells (ANSI mode)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mazeview - terminal 3D scene viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mazeview [options] [model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a built-in pyramid scene unless a glTF model is given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  A/D    - Orbit left/right\n")
		fmt.Fprintf(os.Stderr, "  W/S    - Pitch up/down\n")
		fmt.Fprintf(os.Stderr, "  +/-    - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  Space  - Toggle auto-orbit\n")
		fmt.Fprintf(os.Stderr, "  R      - Reset view\n")
		fmt.Fprintf(os.Stderr, "  Esc    - Quit\n")
	}
	flag.Parse()

	world, err := loadWorld(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *ansiMode {
		err = runANSI(world)
	} else {
		err = runInteractive(world)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadWorld(path string) (*render.World, error) {
	if path == "" {
		return pyramidWorld(), nil
	}
	world, err := models.LoadWorld(path, render.DefaultPalette(), render.Black)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return world, nil
}

// pyramidWorld builds the default scene: a four-sided pyramid with a
// different color per face, on a blue sky.
func pyramidWorld() *render.World {
	top := math3d.V3(0, 0, 3)
	return &render.World{
		Background: render.Blue,
		Triangles: []render.Triangle{
			{P1: top, P2: math3d.V3(-1, -1, 0), P3: math3d.V3(-1, 1, 0), Color: render.Red},
			{P1: top, P2: math3d.V3(-1, -1, 0), P3: math3d.V3(1, -1, 0), Color: render.Magenta},
			{P1: top, P2: math3d.V3(-1, 1, 0), P3: math3d.V3(1, 1, 0), Color: render.Cyan},
			{P1: top, P2: math3d.V3(1, 1, 0), P3: math3d.V3(1, -1, 0), Color: render.Green},
		},
	}
}

// orbit tracks the camera's position on a circle around the scene origin.
// Yaw, pitch and radius each animate toward their targets with a critically
// damped spring so input feels weighted rather than instant.
type orbit struct {
	yaw, pitch, radius          float64
	yawVel, pitchVel, radiusVel float64

	yawTarget, pitchTarget, radiusTarget float64

	spring harmonica.Spring
	auto   bool
}

func newOrbit(fps int) *orbit {
	o := &orbit{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
		auto:   true,
	}
	o.reset()
	return o
}

func (o *orbit) reset() {
	o.yaw, o.yawVel, o.yawTarget = 180, 0, 180
	o.pitch, o.pitchVel, o.pitchTarget = -50, 0, -50
	o.radius, o.radiusVel, o.radiusTarget = 3, 0, 3
}

func (o *orbit) update() {
	if o.auto {
		o.yawTarget--
	}
	o.yaw, o.yawVel = o.spring.Update(o.yaw, o.yawVel, o.yawTarget)
	o.pitch, o.pitchVel = o.spring.Update(o.pitch, o.pitchVel, o.pitchTarget)
	o.radius, o.radiusVel = o.spring.Update(o.radius, o.radiusVel, o.radiusTarget)
}

// camera places the viewpoint on the orbit circle, at height 5, looking
// back toward the scene origin.
func (o *orbit) camera() *render.Camera {
	rad := o.yaw * (math.Pi / 180)
	return &render.Camera{
		Location: math3d.V3(o.radius*-math.Cos(rad), o.radius*math.Sin(-rad), 5),
		Rotation: math3d.V3(0, o.pitch, o.yaw),

		FOVHorizontal: 100,
		FOVVertical:   75,
	}
}

// runANSI streams frames to stdout as raw ANSI escape sequences, the same
// byte protocol a serial display target would receive. The camera circles
// the scene once, then the loop repeats.
func runANSI(world *render.World) error {
	port := term.NewWriterPort(os.Stdout)
	t := term.NewTerminal(port)

	t.HideCursor()
	t.SetColor(render.Black)
	t.ClearScreen()
	defer t.ShowCursor()

	fb := render.NewFramebuffer(*fbWidth, *fbHeight)
	renderer := render.NewRenderer()
	o := newOrbit(*targetFPS)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ticker := time.NewTicker(time.Second / time.Duration(*targetFPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		o.update()
		renderer.RenderFrame(world, o.camera(), fb)
		t.DisplayFrame(fb)
	}
}

// runInteractive renders into the terminal's cell screen under keyboard
// control.
func runInteractive(world *render.World) error {
	terminal := uv.DefaultTerminal()

	width, height, err := terminal.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := terminal.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	terminal.EnterAltScreen()
	terminal.HideCursor()
	terminal.Resize(width, height)

	cleanup := func() {
		terminal.ExitAltScreen()
		terminal.ShowCursor()
		terminal.Shutdown(context.Background())
	}

	fb := render.NewFramebuffer(width, height)
	renderer := render.NewRenderer()
	palette := render.DefaultPalette()
	o := newOrbit(*targetFPS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	go func() {
		for ev := range terminal.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				terminal.Erase()
				terminal.Resize(width, height)
				fb = render.NewFramebuffer(width, height)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("a", "left"):
					o.yawTarget += 10
				case ev.MatchString("d", "right"):
					o.yawTarget -= 10
				case ev.MatchString("w", "up"):
					o.pitchTarget = math.Min(o.pitchTarget+5, 85)
				case ev.MatchString("s", "down"):
					o.pitchTarget = math.Max(o.pitchTarget-5, -85)
				case ev.MatchString("+", "="):
					o.radiusTarget = math.Max(o.radiusTarget-0.5, 1)
				case ev.MatchString("-", "_"):
					o.radiusTarget = math.Min(o.radiusTarget+0.5, 20)
				case ev.MatchString("space"):
					o.auto = !o.auto
				case ev.MatchString("r"):
					o.reset()
				}
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(*targetFPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		case <-ticker.C:
		}

		o.update()
		renderer.RenderFrame(world, o.camera(), fb)
		fb.Draw(terminal, palette)
		if err := terminal.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}
	}
}
