package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/phasependulum/internal/input"
	"github.com/san-kum/phasependulum/internal/sim"
	"github.com/san-kum/phasependulum/internal/trace"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	TargetFPS    = 60
	Title        = "Phase Space: Pendulum"

	telemetryCapacity = 200
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColAxis    = rl.NewColor(100, 100, 100, 255)
	ColMarker  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
)

// App is the window surface. It owns one pendulum and drives it from the frame
// loop.
type App struct {
	Pend      *sim.Pendulum
	Substeps  int
	Telemetry []float64
	Status    string
	quit      bool
}

// NewApp wraps p and recenters it on the current window.
func NewApp(p *sim.Pendulum) *App {
	a := &App{
		Pend:      p,
		Substeps:  sim.DefaultSubsteps,
		Telemetry: make([]float64, 0, telemetryCapacity),
	}
	a.apply(input.Resize{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())})
	return a
}

func initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(WindowWidth, WindowHeight, Title)
	rl.SetTargetFPS(TargetFPS)
	rl.SetExitKey(rl.KeyEscape)
}

// Run opens the window and blocks until it is closed.
func Run(p *sim.Pendulum) {
	initWindow()
	defer rl.CloseWindow()

	fmt.Print(input.Controls)
	app := NewApp(p)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

// apply runs cmd and echoes its message to the console.
func (a *App) apply(cmd input.Command) {
	if msg := input.Apply(a.Pend, cmd); msg != "" {
		fmt.Println(msg)
		a.Status = msg
	}
	if _, ok := cmd.(input.Resize); !ok {
		a.Telemetry = a.Telemetry[:0]
	}
}

// Update drains this frame's input, then advances the pendulum.
func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}

	for _, cmd := range pollCommands() {
		a.apply(cmd)
	}

	a.Pend.Advance(float64(rl.GetFrameTime()), a.Substeps)

	if len(a.Telemetry) >= telemetryCapacity {
		a.Telemetry = a.Telemetry[1:]
	}
	a.Telemetry = append(a.Telemetry, a.Pend.Energy())
}

// pollCommands translates raylib input events into commands, in the order
// keys, mouse, window.
func pollCommands() []input.Command {
	var cmds []input.Command

	keys := []struct {
		key  int32
		name string
	}{
		{rl.KeyOne, "1"},
		{rl.KeyTwo, "2"},
		{rl.KeyUp, "up"},
		{rl.KeyDown, "down"},
		{rl.KeySpace, "space"},
	}
	for _, k := range keys {
		if !rl.IsKeyPressed(k.key) {
			continue
		}
		if cmd, ok := input.FromKey(k.name); ok {
			cmds = append(cmds, cmd)
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		cmds = append(cmds, input.Place{Pos: trace.Vec{X: m.X, Y: m.Y}})
	}

	if rl.IsWindowResized() {
		cmds = append(cmds, input.Resize{
			Width:  float32(rl.GetScreenWidth()),
			Height: float32(rl.GetScreenHeight()),
		})
	}
	return cmds
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawAxes()
	a.drawTrace()
	a.drawMarker()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	s, p := a.Pend.State(), a.Pend.Params()
	a.drawText("phase space", 20, 20, 20, ColMarker)
	a.drawText(fmt.Sprintf("θ %.3f  ω %.3f  E %.3f", s.Theta, s.Omega, a.Pend.Energy()), 20, 46, 14, ColText)
	a.drawText(fmt.Sprintf("g %.2f  k %.2f  trace %d", p.Gravity, p.Damping, a.Pend.TraceLen()), 20, 64, 14, ColText)
	if a.Status != "" {
		a.drawText(a.Status, 20, 82, 14, ColAccent)
	}

	a.DrawTelemetry()

	h := int(rl.GetScreenHeight())
	a.drawText("[1] FREE  [2] DAMPED  [UP/DOWN] GRAVITY  [SPACE] RESET  [CLICK] PLACE", 20, h-24, 12, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), int(rl.GetScreenWidth())-70, 20, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), color)
}
