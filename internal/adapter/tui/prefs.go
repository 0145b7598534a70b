package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// prefs holds the user preferences persisted between sessions.
type prefs struct {
	Theme string `toml:"theme"`
}

// loadPrefs reads preferences from path. Missing or unreadable files yield
// zero prefs without an error: preferences never block startup.
func loadPrefs(path string) (prefs, error) {
	var p prefs
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return p, nil
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return prefs{}, nil
	}
	return p, nil
}

// savePrefs writes preferences to path, creating directories as needed.
func savePrefs(path string, p prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
