package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv reads KEY=value pairs from the given .env files (default ".env")
// into the process environment. Missing files are skipped; variables that are
// already set win over file values.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv(EnvTargetFPS); v != "" {
		if fps, err := strconv.Atoi(v); err == nil && fps > 0 {
			s.TargetFPS = fps
		}
	}
}
