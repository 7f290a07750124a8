package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fuzzyfolders/internal/constants"
)

func GetSettingsPath(dataDir string) string {
	return filepath.Join(
		dataDir,
		constants.SettingsFile+"."+constants.SettingsFileType,
	)
}

// EnsureSettingsExist creates the data directory and an empty settings
// document on first run, then verifies the document loads.
func EnsureSettingsExist(dataDir string) error {
	path := GetSettingsPath(dataDir)

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check settings file existence: %w", err)
	}

	if _, err := Load(dataDir); err != nil {
		return &SettingsInitError{
			msg: fmt.Sprintf("failed to load settings: %v", err),
		}
	}
	return nil
}
