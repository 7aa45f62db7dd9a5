package main

import (
	"flag"
	"log"

	"sevenlights/internal/config"
	"sevenlights/internal/game"
)

func main() {
	configPath := flag.String("config", "sevenlights.yaml", "path to the YAML config (missing file uses defaults)")
	scenePath := flag.String("scene", "", "scene JSON to load instead of the built-in level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}
