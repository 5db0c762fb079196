package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path is the default preferences file, relative to the process working directory.
const Path = "config/frameui.json"

// Backend names accepted in Prefs.Backend.
const (
	BackendRaylib = "raylib"
	BackendEbiten = "ebiten"
)

// Prefs holds the window and UI preferences of the demo. Persisted across runs.
type Prefs struct {
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Title          string `json:"title"`
	TargetFPS      int    `json:"target_fps"`
	Backend        string `json:"backend"`
	ThemePath      string `json:"theme,omitempty"`
	Font           string `json:"font,omitempty"`
	ShowFPS        bool   `json:"show_fps"`
	ShowMemAlloc   bool   `json:"show_memalloc"`
	ExclusiveFocus bool   `json:"exclusive_focus"`
	LogPath        string `json:"log_path"`
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		Width:          1024,
		Height:         768,
		Title:          "frameui",
		TargetFPS:      60,
		Backend:        BackendRaylib,
		ExclusiveFocus: true,
		LogPath:        "logs/frameui.txt",
	}
}

// Load reads preferences from path. Fields missing from the file keep their
// defaults. A missing file is not an error; an unreadable or invalid one
// returns Default() together with the error.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return p, nil
}

// Save writes p to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields a backend cannot start without.
func (p Prefs) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("window size %dx%d", p.Width, p.Height)
	}
	if p.TargetFPS < 0 {
		return fmt.Errorf("target fps %d", p.TargetFPS)
	}
	switch p.Backend {
	case BackendRaylib, BackendEbiten:
	default:
		return fmt.Errorf("unknown backend %q", p.Backend)
	}
	return nil
}

// Environment variables read by ApplyEnv.
const (
	EnvBackend = "FRAMEUI_BACKEND"
	EnvTheme   = "FRAMEUI_THEME"
	EnvFont    = "FRAMEUI_FONT"
)

// ApplyEnv overrides p with any FRAMEUI_* variables that are set.
func ApplyEnv(p Prefs) Prefs {
	if v := strings.TrimSpace(os.Getenv(EnvBackend)); v != "" {
		p.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		p.ThemePath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFont)); v != "" {
		p.Font = v
	}
	return p
}
