// Command crawler-sandbox walks the centipede in a terminal, one cell per grid unit
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/centipede/audio"
	"github.com/lixenwraith/centipede/config"
	"github.com/lixenwraith/centipede/creature"
	"github.com/lixenwraith/centipede/diag"
	"github.com/lixenwraith/centipede/status"
)

var (
	configPath = flag.String("config", "", "YAML settings file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to the log directory")
	muteFlag   = flag.Bool("mute", false, "Disable footfall audio")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			diag.HandleCrash(r)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "crawler-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level := cfg.Debug.LogLevel
	if *debugFlag {
		level = "debug"
	}
	logger, logFile, err := diag.SetupLogging(cfg.Debug.Log || *debugFlag, cfg.Debug.LogDir, level)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	// Restore the terminal before a crash report is printed
	diag.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	reg := status.NewRegistry()
	c := creature.New(cfg.Creature.StartX, cfg.Creature.StartY, cfg.Creature.Length,
		creature.WithLogger(logger.WithPrefix("creature")),
		creature.WithStatus(reg),
	)

	player := audio.NewPlayer(cfg.Audio.Volume, reg)
	if cfg.Audio.Enabled && !*muteFlag {
		if err := player.Initialize(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
	}
	defer player.Cleanup()

	s := newSandbox(screen, c, player, reg, logger)
	// Gait, IK and easing constants assume the window rate
	s.loop(frameInterval(cfg.Window))
	return nil
}
