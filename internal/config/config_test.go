package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/finger-duel/internal/keys"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Hands) != 2 || s.Hands[0].Keys != [3]string{"a", "s", "d"} {
		t.Fatalf("unexpected default hands: %+v", s.Hands)
	}
	if s.InitialHealth != 200 {
		t.Fatalf("initial health = %.1f, want 200", s.InitialHealth)
	}
}

func TestSaveLoadRoundTripCanonicalisesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	s := Default()
	s.Hands[1].Keys = [3]string{"Left", "Down", "Right Arrow"}
	if err := Save(path, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("settings file mode = %v, want 0600", info.Mode().Perm())
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Hands[1].Keys != [3]string{"left", "down", "right"} {
		t.Fatalf("keys not canonicalised: %+v", got.Hands[1].Keys)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"target_fps": 30}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.TargetFPS != 30 {
		t.Fatalf("target fps = %d, want 30", s.TargetFPS)
	}
	if len(s.Hands) != 2 || s.RestartDelayMS != 3000 {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestLoadRejectsUnknownKeyWithSuggestion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{"hands":[{"id":"a","keys":["a","s","d"]},{"id":"b","keys":["j","k","semicolom"]}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	var unknown *keys.UnknownKeyError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownKeyError, got %v", err)
	}
	if !strings.Contains(err.Error(), "semicolon") {
		t.Fatalf("expected suggestion in error, got %q", err)
	}
}

func TestLoadRejectsSharedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{"hands":[{"id":"a","keys":["a","s","d"]},{"id":"b","keys":["d","k","l"]}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "already bound") {
		t.Fatalf("expected shared key error, got %v", err)
	}
}

func TestPathHonoursEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.json")
	t.Setenv(EnvConfigPath, want)
	got, err := Path()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
}

func TestLoadEnvFileOverridesFPS(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envFile, []byte(EnvTargetFPS+"=144\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvTargetFPS, "")
	os.Unsetenv(EnvTargetFPS)

	if err := LoadEnv(envFile, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("load env: %v", err)
	}
	s, err := Load(filepath.Join(dir, "settings.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.TargetFPS != 144 {
		t.Fatalf("target fps = %d, want 144", s.TargetFPS)
	}
}

func TestMatchConfigFromSettings(t *testing.T) {
	mc := Default().MatchConfig()
	if err := mc.Validate(); err != nil {
		t.Fatalf("default match config invalid: %v", err)
	}
	if mc.Hands[1].Keys[2] != "l" {
		t.Fatalf("unexpected binding: %+v", mc.Hands[1].Keys)
	}
	if Default().RestartDelay().Seconds() != 3 {
		t.Fatalf("unexpected restart delay %v", Default().RestartDelay())
	}
}
