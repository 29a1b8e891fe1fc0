package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/steverpalmer/first-person-maze/internal/game"
)

func main() {
	cfg := game.LoadConfig()
	flag.IntVar(&cfg.MazeWidth, "width", cfg.MazeWidth, "maze width in rooms")
	flag.IntVar(&cfg.MazeHeight, "height", cfg.MazeHeight, "maze height in rooms")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "maze seed (0 derives one from the clock)")
	flag.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "directory with texture images")
	flag.BoolVar(&cfg.Audio, "audio", cfg.Audio, "enable sound effects")
	flag.Parse()

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("First Person Maze")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
