package palette

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestByName(t *testing.T) {
	if c, ok := ByName("Gold"); !ok || c != rl.Gold {
		t.Errorf("Expected Gold, got %v (ok %v)", c, ok)
	}
	if _, ok := ByName("gold"); ok {
		t.Error("Names should be case-sensitive")
	}
	if _, ok := ByName("Chartreuse"); ok {
		t.Error("Unknown color should not resolve")
	}
}

func TestLookupDefaultsToWhite(t *testing.T) {
	if Lookup("Red") != rl.Red {
		t.Error("Expected Red")
	}
	if Lookup("Nope") != rl.White {
		t.Error("Unknown colors should default to white")
	}
}
