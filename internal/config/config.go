package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/appengine-ltd/finger-duel/internal/game"
	"github.com/appengine-ltd/finger-duel/internal/keys"
)

const (
	EnvConfigPath = "FINGER_DUEL_CONFIG"
	EnvTargetFPS  = "FINGER_DUEL_FPS"
)

type HandSettings struct {
	ID   string    `json:"id"`
	Name string    `json:"name,omitempty"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	Keys [3]string `json:"keys"`
}

type WindowSettings struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Settings struct {
	Hands          []HandSettings `json:"hands"`
	InitialHealth  float64        `json:"initial_health"`
	Window         WindowSettings `json:"window"`
	TargetFPS      int            `json:"target_fps"`
	RestartDelayMS int            `json:"restart_delay_ms"`
}

func Default() Settings {
	mc := game.DefaultMatchConfig()
	s := Settings{
		InitialHealth:  mc.InitialHealth,
		Window:         WindowSettings{Width: int(mc.Width), Height: int(mc.Height)},
		TargetFPS:      60,
		RestartDelayMS: 3000,
	}
	for _, h := range mc.Hands {
		s.Hands = append(s.Hands, HandSettings{
			ID:   string(h.ID),
			Name: h.Name,
			X:    h.X,
			Y:    h.Y,
			Keys: h.Keys,
		})
	}
	return s
}

func appSupportDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("config directory not found")
	}
	return filepath.Join(dir, "FingerDuel"), nil
}

// Path returns the settings file location, honouring FINGER_DUEL_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := appSupportDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load reads settings from path. A missing file yields defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s := Default()
		applyEnv(&s)
		return s, nil
	}
	if err != nil {
		return Settings{}, err
	}
	s := Default()
	s.Hands = nil
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if len(s.Hands) == 0 {
		s.Hands = Default().Hands
	}
	applyEnv(&s)
	if err := s.Normalize(); err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

func Save(path string, s Settings) error {
	if err := s.Normalize(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "settings-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}

// Normalize resolves every key binding to its canonical name and fills
// missing values with defaults, then validates the resulting match config.
func (s *Settings) Normalize() error {
	def := Default()
	if s.InitialHealth == 0 {
		s.InitialHealth = def.InitialHealth
	}
	if s.Window.Width <= 0 {
		s.Window.Width = def.Window.Width
	}
	if s.Window.Height <= 0 {
		s.Window.Height = def.Window.Height
	}
	if s.TargetFPS <= 0 {
		s.TargetFPS = def.TargetFPS
	}
	if s.RestartDelayMS < 0 {
		return fmt.Errorf("restart delay must not be negative, got %d", s.RestartDelayMS)
	}
	for i := range s.Hands {
		for f, name := range s.Hands[i].Keys {
			canonical, err := keys.Resolve(name)
			if err != nil {
				return fmt.Errorf("hand %q finger %d: %w", s.Hands[i].ID, f+1, err)
			}
			s.Hands[i].Keys[f] = canonical
		}
	}
	return s.MatchConfig().Validate()
}

func (s Settings) MatchConfig() game.MatchConfig {
	mc := game.MatchConfig{
		Width:         float64(s.Window.Width),
		Height:        float64(s.Window.Height),
		InitialHealth: s.InitialHealth,
	}
	for _, h := range s.Hands {
		mc.Hands = append(mc.Hands, game.HandConfig{
			ID:   game.HandID(h.ID),
			Name: h.Name,
			X:    h.X,
			Y:    h.Y,
			Keys: h.Keys,
		})
	}
	return mc
}

func (s Settings) RestartDelay() time.Duration {
	return time.Duration(s.RestartDelayMS) * time.Millisecond
}
