// Package app runs the interactive terrain viewer.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/camera"
	"github.com/Faultbox/midgard-terrain/internal/engine/input"
	"github.com/Faultbox/midgard-terrain/internal/engine/renderer"
	"github.com/Faultbox/midgard-terrain/internal/engine/screenshot"
	"github.com/Faultbox/midgard-terrain/internal/engine/window"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// lightMarkerScale is the edge length of the cube drawn at the light.
const lightMarkerScale = 5

// App owns the window, GPU resources and the frame loop.
type App struct {
	cfg *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.FlyCamera
	scene    *scene
	capture  *screenshot.Capture

	running     bool
	wantCapture bool
}

// New opens the window and builds the scene described by cfg.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:     cfg,
		input:   input.New(),
		capture: screenshot.New(cfg.Render.ScreenshotDir, "terrain"),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.Size()
	a.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if cfg.Render.Wireframe {
		a.renderer.SetPolygonMode(renderer.Line)
	}

	a.scene, err = newScene(cfg)
	if err != nil {
		a.window.Close()
		return nil, err
	}

	cc := cfg.Camera
	a.camera = camera.NewFlyCamera(mgl32.Vec3(cc.Position), cc.Yaw, cc.Pitch, cc.InvertY)
	a.camera.Speed = cc.Speed
	a.camera.Sensitivity = cc.Sensitivity
	a.camera.Zoom = cc.FOV

	a.window.CaptureMouse(true)
	return a, nil
}

// Run drives the frame loop until the window closes or Esc is pressed.
func (a *App) Run() error {
	a.running = true
	last := time.Now()
	frames := 0
	fpsTimer := last

	logger.Info("starting render loop")
	for a.running {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if a.input.Update() {
			break
		}
		a.handleEvents()
		a.update(dt)

		if err := a.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if a.wantCapture {
			a.wantCapture = false
			a.saveScreenshot()
		}
		a.window.SwapBuffers()

		frames++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			logger.Debug("frame stats",
				zap.Int("fps", frames),
				zap.Duration("last_frame", time.Duration(float64(dt)*float64(time.Second))),
				zap.Float32s("camera", a.camera.Position[:]),
			)
			frames = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (a *App) handleEvents() {
	for _, e := range a.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			a.renderer.Resize(e.Width, e.Height)
		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_Q:
				a.renderer.SetPolygonMode(renderer.Fill)
			case sdl.SCANCODE_E:
				a.renderer.SetPolygonMode(renderer.Line)
			case sdl.SCANCODE_F12:
				if !e.Repeat {
					a.wantCapture = true
				}
			}
		}
	}
}

var movementKeys = []struct {
	key sdl.Scancode
	dir camera.Movement
}{
	{sdl.SCANCODE_W, camera.Forward},
	{sdl.SCANCODE_S, camera.Backward},
	{sdl.SCANCODE_A, camera.Left},
	{sdl.SCANCODE_D, camera.Right},
}

func (a *App) update(dt float32) {
	for _, mk := range movementKeys {
		if a.input.IsKeyHeld(mk.key) {
			a.camera.Move(mk.dir, dt)
		}
	}
	if dx, dy := a.input.MouseDelta(); dx != 0 || dy != 0 {
		a.camera.Look(float32(dx), float32(dy))
	}
	if w := a.input.Wheel(); w != 0 {
		a.camera.ZoomBy(float32(w))
	}
}

func (a *App) render() error {
	rc := a.cfg.Render
	a.renderer.Clear(rc.ClearColor)

	view := a.camera.ViewMatrix()
	projection := a.camera.ProjectionMatrix(a.renderer.Aspect(), a.cfg.Camera.Near, a.cfg.Camera.Far)
	a.scene.draw(view, projection)

	return a.renderer.CheckError()
}

// saveScreenshot reads the back buffer before it is swapped.
func (a *App) saveScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.capture.Save(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", name))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	logger.Info("closing viewer")
	if a.scene != nil {
		a.scene.delete()
	}
	if a.window != nil {
		a.window.CaptureMouse(false)
		a.window.Close()
	}
}
