package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/grayramp/grayramp/internal/config"
	"github.com/grayramp/grayramp/internal/ebitenapp"
	"github.com/grayramp/grayramp/internal/engine"
	"github.com/grayramp/grayramp/internal/typeid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	log := slog.Default().With("session", typeid.NewSessionID())

	points, err := cfg.Points()
	if err != nil {
		log.Error("seed points", "error", err)
		os.Exit(1)
	}
	style, err := cfg.Style()
	if err != nil {
		log.Error("overlay style", "error", err)
		os.Exit(1)
	}

	game, err := ebitenapp.NewGame(points, cfg.Width, cfg.Height, engine.Options{
		HitRadius: cfg.HitRadius,
		Style:     style,
		Logger:    log,
	})
	if err != nil {
		log.Error("init gradient surface", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("grayramp")

	log.Info("editor starting", "width", cfg.Width, "height", cfg.Height, "points", points.Len())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run editor", "error", err)
		os.Exit(1)
	}
}
