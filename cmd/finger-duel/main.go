//go:build cgo

package main

import (
	"github.com/appengine-ltd/finger-duel/internal/gui"
)

func main() {
	o := parseFlags()
	if o.showVersion {
		printVersion()
		return
	}

	settings, path, err := loadSettings(o)
	if err != nil {
		die(err.Error())
	}
	if o.initConfig {
		writeSettings(path, settings)
		return
	}

	if o.replayPath != "" {
		if err := runReplay(o.replayPath, settings); err != nil {
			die(err.Error())
		}
		return
	}

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Settings:  settings,
	})
	if err := app.Run(); err != nil {
		die(err.Error())
	}
}
