package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCodes = buildKeyCodes()

func buildKeyCodes() map[string]int32 {
	m := map[string]int32{
		"space":         rl.KeySpace,
		"enter":         rl.KeyEnter,
		"tab":           rl.KeyTab,
		"backspace":     rl.KeyBackspace,
		"up":            rl.KeyUp,
		"down":          rl.KeyDown,
		"left":          rl.KeyLeft,
		"right":         rl.KeyRight,
		"left bracket":  rl.KeyLeftBracket,
		"right bracket": rl.KeyRightBracket,
		"left shift":    rl.KeyLeftShift,
		"right shift":   rl.KeyRightShift,
		"left control":  rl.KeyLeftControl,
		"right control": rl.KeyRightControl,
		"left alt":      rl.KeyLeftAlt,
		"right alt":     rl.KeyRightAlt,
	}
	// Printable keys use their ASCII code.
	for name, r := range map[string]rune{
		"comma":      ',',
		"period":     '.',
		"slash":      '/',
		"semicolon":  ';',
		"apostrophe": '\'',
		"minus":      '-',
		"equal":      '=',
		"backslash":  '\\',
		"grave":      '`',
	} {
		m[name] = int32(r)
	}
	for c := 'a'; c <= 'z'; c++ {
		m[string(c)] = rl.KeyA + int32(c-'a')
	}
	for c := '0'; c <= '9'; c++ {
		m[string(c)] = int32(c)
	}
	return m
}

// KeyCode maps a canonical key name to its raylib key code.
func KeyCode(name string) (int32, bool) {
	code, ok := keyCodes[name]
	return code, ok
}
