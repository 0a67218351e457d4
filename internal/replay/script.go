package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/appengine-ltd/finger-duel/internal/game"
	"github.com/appengine-ltd/finger-duel/internal/keys"
)

// Event sets the state of one key before tick Tick runs.
type Event struct {
	Tick int
	Key  string
	Held bool
}

// Script is a tick-ordered key timeline.
type Script struct {
	Events []Event
}

// ParseError reports a malformed script line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads directives of the form "<tick> down|up <key>...". Blank lines
// and text after '#' are ignored. Ticks start at 1.
func Parse(r io.Reader) (Script, error) {
	var s Script
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return Script{}, &ParseError{Line: line, Msg: "want <tick> down|up <key>..."}
		}
		tick, err := strconv.Atoi(fields[0])
		if err != nil || tick < 1 {
			return Script{}, &ParseError{Line: line, Msg: fmt.Sprintf("bad tick %q", fields[0])}
		}
		var held bool
		switch strings.ToLower(fields[1]) {
		case "down", "press":
			held = true
		case "up", "release":
			held = false
		default:
			return Script{}, &ParseError{Line: line, Msg: fmt.Sprintf("bad action %q", fields[1])}
		}
		names, err := resolveKeys(fields[2:])
		if err != nil {
			return Script{}, &ParseError{Line: line, Msg: err.Error()}
		}
		for _, key := range names {
			s.Events = append(s.Events, Event{Tick: tick, Key: key, Held: held})
		}
	}
	if err := sc.Err(); err != nil {
		return Script{}, err
	}
	sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].Tick < s.Events[j].Tick })
	return s, nil
}

// maxKeyWords is the longest key name in words, as in "right control".
const maxKeyWords = 2

// resolveKeys consumes the longest run of words that names a key at each
// position, so "left shift" binds one key rather than "left" and "shift".
func resolveKeys(words []string) ([]string, error) {
	var out []string
	for i := 0; i < len(words); {
		n := min(maxKeyWords, len(words)-i)
		var firstErr error
		for ; n > 0; n-- {
			key, err := keys.Resolve(strings.Join(words[i:i+n], " "))
			if err == nil {
				out = append(out, key)
				break
			}
			if n == 1 {
				firstErr = err
			}
		}
		if n == 0 {
			return nil, firstErr
		}
		i += n
	}
	return out, nil
}

func ParseFile(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, err
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Apply feeds every event scheduled for tick into bus.
func (s Script) Apply(tick int, bus *game.InputBus) {
	i := sort.Search(len(s.Events), func(i int) bool { return s.Events[i].Tick >= tick })
	for ; i < len(s.Events) && s.Events[i].Tick == tick; i++ {
		bus.SetKeyState(s.Events[i].Key, s.Events[i].Held)
	}
}

// LastTick is the tick of the final event, or 0 for an empty script.
func (s Script) LastTick() int {
	if len(s.Events) == 0 {
		return 0
	}
	return s.Events[len(s.Events)-1].Tick
}
