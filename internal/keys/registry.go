package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type KeyDef struct {
	Canonical string
	Aliases   []string
}

type Registry struct {
	keys    map[string]KeyDef
	aliases map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		keys:    make(map[string]KeyDef),
		aliases: make(map[string]string),
	}
}

func (r *Registry) Register(k KeyDef) {
	k.Canonical = normaliseName(k.Canonical)
	if k.Canonical == "" {
		return
	}
	r.keys[k.Canonical] = k
	r.aliases[k.Canonical] = k.Canonical
	for _, a := range k.Aliases {
		n := normaliseName(a)
		if n == "" {
			continue
		}
		r.aliases[n] = k.Canonical
	}
}

// UnknownKeyError is returned for names that match no key or alias.
type UnknownKeyError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownKeyError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown key %q", e.Name)
	}
	return fmt.Sprintf("unknown key %q, did you mean %s?", e.Name, strings.Join(e.Suggestions, " or "))
}

// Resolve maps a user-supplied key name to its canonical identifier.
func (r *Registry) Resolve(name string) (string, error) {
	n := normaliseName(name)
	if n == "" {
		return "", &UnknownKeyError{Name: name}
	}
	if canonical, ok := r.aliases[n]; ok {
		return canonical, nil
	}
	return "", &UnknownKeyError{Name: name, Suggestions: r.suggest(n, 3)}
}

func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.keys))
	for name := range r.keys {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

type suggestion struct {
	canonical string
	dist      int
}

func (r *Registry) suggest(n string, limit int) []string {
	// Letters and digits are too short for edit distance to mean anything.
	if len(n) < 3 {
		return nil
	}
	best := make(map[string]int)
	for alias, canonical := range r.aliases {
		if len(alias) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(n, alias)
		if dist > levenshteinLimit(len(alias)) {
			continue
		}
		if d, ok := best[canonical]; !ok || dist < d {
			best[canonical] = dist
		}
	}
	cands := make([]suggestion, 0, len(best))
	for canonical, dist := range best {
		cands = append(cands, suggestion{canonical: canonical, dist: dist})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].canonical < cands[j].canonical
		}
		return cands[i].dist < cands[j].dist
	})
	out := make([]string, 0, limit)
	for _, c := range cands {
		out = append(out, c.canonical)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	for c := 'a'; c <= 'z'; c++ {
		r.Register(KeyDef{Canonical: string(c)})
	}
	for c := '0'; c <= '9'; c++ {
		r.Register(KeyDef{Canonical: string(c)})
	}
	defs := []KeyDef{
		{Canonical: "space", Aliases: []string{"spacebar", "space bar"}},
		{Canonical: "enter", Aliases: []string{"return"}},
		{Canonical: "tab"},
		{Canonical: "backspace"},
		{Canonical: "comma", Aliases: []string{","}},
		{Canonical: "period", Aliases: []string{".", "dot", "full stop"}},
		{Canonical: "slash", Aliases: []string{"/", "forward slash"}},
		{Canonical: "semicolon", Aliases: []string{";"}},
		{Canonical: "apostrophe", Aliases: []string{"'", "quote"}},
		{Canonical: "minus", Aliases: []string{"-", "dash", "hyphen"}},
		{Canonical: "equal", Aliases: []string{"=", "equals"}},
		{Canonical: "left bracket", Aliases: []string{"["}},
		{Canonical: "right bracket", Aliases: []string{"]"}},
		{Canonical: "backslash", Aliases: []string{"\\"}},
		{Canonical: "grave", Aliases: []string{"`", "backtick"}},
		{Canonical: "up", Aliases: []string{"arrow up", "up arrow"}},
		{Canonical: "down", Aliases: []string{"arrow down", "down arrow"}},
		{Canonical: "left", Aliases: []string{"arrow left", "left arrow"}},
		{Canonical: "right", Aliases: []string{"arrow right", "right arrow"}},
		{Canonical: "left shift", Aliases: []string{"lshift", "shift"}},
		{Canonical: "right shift", Aliases: []string{"rshift"}},
		{Canonical: "left control", Aliases: []string{"lctrl", "ctrl", "left ctrl", "control"}},
		{Canonical: "right control", Aliases: []string{"rctrl", "right ctrl"}},
		{Canonical: "left alt", Aliases: []string{"lalt", "alt", "option"}},
		{Canonical: "right alt", Aliases: []string{"ralt", "altgr"}},
	}
	for _, d := range defs {
		r.Register(d)
	}
	return r
}

var defaultRegistry = DefaultRegistry()

// Resolve looks name up in the default registry.
func Resolve(name string) (string, error) {
	return defaultRegistry.Resolve(name)
}

// Names lists the canonical names of the default registry.
func Names() []string {
	return defaultRegistry.Names()
}
