package gui

import (
	"fmt"

	"github.com/appengine-ltd/finger-duel/internal/config"
	"github.com/appengine-ltd/finger-duel/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Settings  config.Settings
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

type boundKey struct {
	name string
	code int32
}

// Run opens the window and plays matches until the window closes or the
// player quits with Esc or Q.
func (a *App) Run() error {
	st := a.cfg.Settings
	if err := st.Normalize(); err != nil {
		return err
	}
	sess, err := newSession(st.MatchConfig(), st.RestartDelay(), nil)
	if err != nil {
		return err
	}
	bound, err := bindKeys(st.MatchConfig())
	if err != nil {
		return err
	}
	held := func(name string) bool {
		code, ok := bound[name]
		return ok && rl.IsKeyDown(code)
	}

	width, height := int32(st.Window.Width), int32(st.Window.Height)
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, "finger-duel")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(st.TargetFPS))
	rl.TraceLog(rl.LogInfo, "finger-duel %s (%s) match %s", a.cfg.Version, a.cfg.Commit, sess.match.ID())

	surf := newSurface(width, height)
	for !rl.WindowShouldClose() {
		if a.quitPressed(bound) {
			break
		}
		if a.restartPressed(bound) {
			if err := sess.restart(); err != nil {
				return err
			}
			rl.TraceLog(rl.LogInfo, "match %s started", sess.match.ID())
		}

		restarts := sess.restarts
		wasRunning := sess.match.State() == game.Running
		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		if err := sess.step(held, surf); err != nil {
			rl.TraceLog(rl.LogWarning, "match %s: %v", sess.match.ID(), err)
		}
		drawHelp(surf)
		rl.EndDrawing()

		if sess.restarts != restarts {
			rl.TraceLog(rl.LogInfo, "match %s started", sess.match.ID())
		}
		if wasRunning && sess.match.State() == game.Concluded {
			rl.TraceLog(rl.LogInfo, "match %s concluded after %d ticks, winner %q",
				sess.match.ID(), sess.match.Ticks(), sess.match.Winner())
		}
	}
	return nil
}

func bindKeys(cfg game.MatchConfig) (map[string]int32, error) {
	bound := make(map[string]int32)
	for _, h := range cfg.Hands {
		for _, k := range h.Keys {
			code, ok := KeyCode(k)
			if !ok {
				return nil, fmt.Errorf("hand %q: key %q has no window binding", h.ID, k)
			}
			bound[k] = code
		}
	}
	return bound, nil
}

// Q and R act as hotkeys only when no hand plays with them.
func (a *App) quitPressed(bound map[string]int32) bool {
	if rl.IsKeyPressed(rl.KeyEscape) {
		return true
	}
	_, taken := bound["q"]
	return !taken && rl.IsKeyPressed(rl.KeyQ)
}

func (a *App) restartPressed(bound map[string]int32) bool {
	_, taken := bound["r"]
	return !taken && rl.IsKeyPressed(rl.KeyR)
}

func drawHelp(s *rlSurface) {
	rl.DrawText("R restart   Esc quit", 8, s.height-18, 12, colorDim)
}
