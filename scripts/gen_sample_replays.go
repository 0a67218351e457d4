//go:build ignore

// gen_sample_replays.go - run with:
//
//	go run scripts/gen_sample_replays.go
//
// Writes replays/*.duel sample key scripts for the default key layout and
// plays each one headless to print its result.
package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/finger-duel/internal/game"
	"github.com/appengine-ltd/finger-duel/internal/replay"
)

type sample struct {
	name string
	body string
}

var samples = []sample{
	{"rock-vs-scissors", `# Left rests on rock, Right holds two keys for scissors.
1 down j k
`},
	{"paper-vs-rock", `# Left grips paper, Right rests on rock.
1 down a s d
`},
	{"fumble", `# Left holds a single key and bleeds 0.25 a tick until Right outlasts it.
1 down a
`},
	{"switching", `# Right changes gesture every 40 ticks, resetting its charge each time.
1 down a s d
40 down j k
80 down l
80 up j
120 up k l
160 down j k l
`},
}

func main() {
	dir := "replays"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, s := range samples {
		path := filepath.Join(dir, s.name+".duel")
		if err := os.WriteFile(path, []byte(s.body), 0o644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		script, err := replay.Parse(strings.NewReader(s.body))
		if err != nil {
			log.Fatalf("parse %s: %v", path, err)
		}
		out, err := replay.Run(game.DefaultMatchConfig(), script, 5000, nil)
		if err != nil {
			log.Printf("  %s: %v after %d ticks", path, err, out.Ticks)
			continue
		}
		winner := string(out.Winner)
		if winner == "" {
			winner = "draw"
		}
		log.Printf("  wrote %s (winner=%s ticks=%d)", path, winner, out.Ticks)
	}
}
