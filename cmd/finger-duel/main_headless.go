//go:build !cgo

package main

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

	if o.replayPath == "" {
		die("Finger Duel needs the windowed build (cgo/raylib enabled); use -replay to watch a script in the terminal.")
	}
	if err := runReplay(o.replayPath, settings); err != nil {
		die(err.Error())
	}
}
