package model

import (
	"encoding/json"
	"os"
	"strings"
)

// AutoSaveSettings names the directories auto-saved reports are written to.
// The primary directory typically points at removable or network storage,
// so both paths are re-validated on every resolution.
type AutoSaveSettings struct {
	PrimaryPath   string `json:"primary_path,omitempty"`
	SecondaryPath string `json:"secondary_path,omitempty"`
}

// LoadAutoSaveSettings reads settings from path. A missing or unreadable
// settings file yields zero-value settings, never an error.
func LoadAutoSaveSettings(path string) *AutoSaveSettings {
	data, err := os.ReadFile(path)
	if err != nil {
		return &AutoSaveSettings{}
	}
	s := &AutoSaveSettings{}
	if err := json.Unmarshal(data, s); err != nil {
		return &AutoSaveSettings{}
	}
	return s
}

func (s *AutoSaveSettings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// EffectivePath resolves where auto-saved reports go: primary if reachable,
// then secondary, then fallbackDir (created on demand).
func (s *AutoSaveSettings) EffectivePath(fallbackDir string) string {
	if isDirValid(s.PrimaryPath) {
		return s.PrimaryPath
	}
	if isDirValid(s.SecondaryPath) {
		return s.SecondaryPath
	}
	_ = os.MkdirAll(fallbackDir, 0o755)
	return fallbackDir
}

func isDirValid(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
