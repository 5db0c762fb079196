package main

import (
	"flag"
	"fmt"
	"os"

	"frameui/internal/config"
	"frameui/internal/ebitenbackend"
	"frameui/internal/fonts"
	"frameui/internal/logger"
	"frameui/internal/rlbackend"
	"frameui/internal/ui"
)

func main() {
	configPath := flag.String("config", config.Path, "preferences file")
	envPath := flag.String("env", ".env", "optional KEY=VALUE file for FRAMEUI_* overrides")
	script := flag.String("script", "", "replay a YAML input script headlessly instead of opening a window")
	flag.Parse()

	if err := run(*configPath, *envPath, *script); err != nil {
		fmt.Fprintln(os.Stderr, "frameui:", err)
		os.Exit(1)
	}
}

func run(configPath, envPath, script string) error {
	envErr := config.LoadEnvFile(envPath)
	prefs, cfgErr := config.Load(configPath)
	prefs = config.ApplyEnv(prefs)

	log := logger.New(prefs.LogPath)
	if envErr != nil {
		log.Logf("env file: %v", envErr)
	}
	if cfgErr != nil {
		log.Logf("%v; using defaults", cfgErr)
	}
	if err := prefs.Validate(); err != nil {
		return err
	}

	th := ui.DefaultTheme()
	if prefs.ThemePath != "" {
		t, err := ui.LoadTheme(prefs.ThemePath)
		if err != nil {
			log.Logf("%v; using the default theme", err)
		}
		th = t
	}
	if prefs.Font != "" {
		th.Font = prefs.Font
	}

	screen := ui.Vec2{X: float32(prefs.Width), Y: float32(prefs.Height)}
	app := newDemo(th, screen, prefs.ExclusiveFocus, log)
	app.overlay.ShowFPS = prefs.ShowFPS
	app.overlay.ShowMemAlloc = prefs.ShowMemAlloc

	if script != "" {
		return replay(app, script, log)
	}

	fontFiles := map[string]string{}
	if th.Font != "" {
		path, err := fonts.Find(th.Font)
		if err != nil {
			log.Logf("font: %v; using the default font", err)
		} else {
			fontFiles[th.Font] = path
		}
	}
	onErr := func(err error) { log.Logf("%v", err) }

	log.Logf("start backend=%s size=%dx%d", prefs.Backend, prefs.Width, prefs.Height)
	switch prefs.Backend {
	case config.BackendEbiten:
		return ebitenbackend.Run(prefs, fontFiles, app, onErr)
	default:
		rlbackend.Run(prefs, fontFiles, app, onErr)
		return nil
	}
}
