// Command centipede opens the isometric window and walks a steerable centipede
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/centipede/audio"
	"github.com/lixenwraith/centipede/config"
	"github.com/lixenwraith/centipede/creature"
	"github.com/lixenwraith/centipede/diag"
	"github.com/lixenwraith/centipede/parameter"
	"github.com/lixenwraith/centipede/status"
	"github.com/lixenwraith/centipede/vmath"
)

var version = "dev"

var (
	configPath = flag.String("config", "", "YAML settings file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to the log directory")
	statsFlag  = flag.Bool("statsview", false, "Serve the runtime dashboard on "+diag.ProfilerAddr)
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
		fmt.Fprintf(os.Stderr, "centipede: %v\n", err)
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

	reporting, err := diag.InitSentry(os.Getenv("SENTRY_DSN"), version)
	if err != nil {
		logger.Warn("crash reporting disabled", "err", err)
	}
	if reporting {
		defer sentry.Flush(2 * time.Second)
	}

	if diag.ProfilerEnabled(*statsFlag || cfg.Debug.StatsView) {
		stop := diag.StartProfiler()
		defer stop()
		logger.Info("runtime dashboard", "addr", diag.ProfilerAddr)
	}

	reg := status.NewRegistry()
	viewport := windowViewport(cfg.Window)
	c := creature.New(cfg.Creature.StartX, cfg.Creature.StartY, cfg.Creature.Length,
		creature.WithLogger(logger.WithPrefix("creature")),
		creature.WithStatus(reg),
		creature.WithViewport(viewport),
	)

	player := audio.NewPlayer(cfg.Audio.Volume, reg)
	if cfg.Audio.Enabled && !*muteFlag {
		if err := player.Initialize(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
	}
	defer player.Cleanup()

	g := newGame(c, player, reg, viewport, logger)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Centipede")
	ebiten.SetTPS(cfg.Window.TPS)

	logger.Info("starting", "version", version, "segments", c.Len())
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// windowViewport builds the fixed projection the head is kept within
func windowViewport(w config.Window) vmath.Viewport {
	return vmath.Viewport{
		Projection: vmath.Projection{
			Tile:        w.Tile,
			Origin:      mgl32.Vec2{float32(w.Width) * 0.5, parameter.ViewportOriginY},
			HeightScale: parameter.ViewportHeightScale,
		},
		Width:  float32(w.Width),
		Height: float32(w.Height),
		Margin: parameter.ViewportMargin,
	}
}
