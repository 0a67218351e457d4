package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/appengine-ltd/finger-duel/internal/canvas"
	"github.com/appengine-ltd/finger-duel/internal/config"
	"github.com/appengine-ltd/finger-duel/internal/game"
	"github.com/appengine-ltd/finger-duel/internal/replay"
)

func main() {
	var scriptPath string
	var configPath string
	var pngPath string
	var maxTicks int

	flag.StringVar(&scriptPath, "script", "", "key script to play")
	flag.StringVar(&configPath, "config", "", "settings file (defaults are used when empty)")
	flag.StringVar(&pngPath, "png", "", "write the final frame to this PNG file")
	flag.IntVar(&maxTicks, "max-ticks", 10000, "stop after this many ticks")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("duelsim: ")

	if strings.TrimSpace(scriptPath) == "" {
		die("--script is required")
	}
	if err := config.LoadEnv(); err != nil {
		die(err.Error())
	}
	settings := config.Default()
	if configPath != "" {
		s, err := config.Load(configPath)
		if err != nil {
			die(err.Error())
		}
		settings = s
	}
	script, err := replay.ParseFile(scriptPath)
	if err != nil {
		die(err.Error())
	}
	log.Printf("loaded %d events from %s", len(script.Events), scriptPath)

	var surface game.Surface
	var cv *canvas.Canvas
	if pngPath != "" {
		cv = canvas.New(settings.Window.Width, settings.Window.Height)
		surface = cv
	}

	out, err := replay.Run(settings.MatchConfig(), script, maxTicks, surface)
	switch {
	case errors.Is(err, replay.ErrTickLimit):
		log.Printf("stopped after %d ticks without a result", out.Ticks)
	case err != nil && out.MatchID == "":
		die(err.Error())
	case err != nil:
		log.Printf("match faulted: %v", err)
	}

	if cv != nil {
		if err := cv.SavePNG(pngPath); err != nil {
			die(fmt.Sprintf("write png: %v", err))
		}
		log.Printf("wrote %s", pngPath)
	}

	winner := string(out.Winner)
	if !out.Concluded {
		winner = "-"
	} else if winner == "" {
		winner = "draw"
	}
	fmt.Printf("match=%s ticks=%d winner=%s\n", out.MatchID, out.Ticks, winner)
	for _, h := range out.Hands {
		fmt.Printf("hand=%s name=%s health=%.2f commits=%d fumbles=%d rounds_lost=%d damage=%.2f\n",
			h.ID, h.Name, h.Health, h.Stats.Commits, h.Stats.Fumbles, h.Stats.RoundsLost, h.Stats.Damage)
	}
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
