package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/finger-duel/internal/config"
	"github.com/appengine-ltd/finger-duel/internal/replay"
	"github.com/appengine-ltd/finger-duel/internal/ui"
)

// version, commit, date are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	configPath  string
	replayPath  string
	initConfig  bool
}

func parseFlags() options {
	var o options
	flag.BoolVar(&o.showVersion, "version", false, "print version and exit")
	flag.StringVar(&o.configPath, "config", "", "settings file (default: user config dir, or $"+config.EnvConfigPath+")")
	flag.StringVar(&o.replayPath, "replay", "", "play a key script in the terminal instead of opening a window")
	flag.BoolVar(&o.initConfig, "init-config", false, "write the effective settings to the settings file and exit")
	flag.Parse()
	return o
}

func printVersion() {
	fmt.Printf("Finger Duel %s (%s) %s\n", version, commit, date)
}

func loadSettings(o options) (config.Settings, string, error) {
	if err := config.LoadEnv(); err != nil {
		return config.Settings{}, "", err
	}
	path := o.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return config.Settings{}, "", err
		}
		path = p
	}
	s, err := config.Load(path)
	return s, path, err
}

func writeSettings(path string, s config.Settings) {
	if err := config.Save(path, s); err != nil {
		die(fmt.Sprintf("write settings: %v", err))
	}
	fmt.Printf("wrote %s\n", path)
}

func runReplay(path string, s config.Settings) error {
	script, err := replay.ParseFile(path)
	if err != nil {
		return err
	}
	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Settings:  s,
		Script:    script,
	})
	return app.Run()
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
