package util

import (
	"os"
	"path/filepath"
	"strings"
)

func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

func ConfigDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	if base, err := os.UserConfigDir(); err == nil && base != "" {
		return filepath.Join(base, app)
	}
	return filepath.Join(".", app)
}

// ReportsDir is where history --pdf writes when no output path is given:
// $XDG_DOCUMENTS_DIR/<APP>, falling back to ~/Documents/<APP>.
func ReportsDir(app string) string {
	name := strings.ToUpper(app)
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return filepath.Join(base, name)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", name)
	}
	return filepath.Join(home, "Documents", name)
}
