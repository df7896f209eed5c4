package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/Garsondee/Carnobyl/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := game.ParseArgs(os.Args[1:], time.Now())
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Warning != "" {
		log.Printf("warning: %s", cfg.Warning)
	}
	log.Printf("seed %d (%s)", cfg.Seed, cfg.SeedSource)

	w, err := game.NewWorld(cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(game.New(w)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
