package world

import (
	_ "embed"
	"log"
)

//go:embed default_scene.json
var defaultScene []byte

// LoadDefaultScene spawns the built-in demo level.
func (w *World) LoadDefaultScene() error {
	sf, err := ParseScene(defaultScene)
	if err != nil {
		return err
	}
	w.Instantiate(sf)
	log.Printf("World: loaded built-in scene (%d objects)", len(sf.Objects))
	return nil
}
