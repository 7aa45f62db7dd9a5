package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestRenderProducesValidGo(t *testing.T) {
	src, err := render("LeverSwitch")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "lever_switch.go", src, parser.AllErrors); err != nil {
		t.Fatalf("Generated source does not parse: %v", err)
	}

	for _, want := range []string{
		"type LeverSwitch struct",
		"func (s *LeverSwitch) OnUsed(user *interact.Character)",
		`engine.RegisterScript("LeverSwitch", leverSwitchFactory, leverSwitchSerializer)`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("Generated source missing %q", want)
		}
	}
	if strings.Contains(src, "{{") {
		t.Error("Template placeholders left in output")
	}
}

func TestRenderRejectsBadNames(t *testing.T) {
	for _, name := range []string{"", "lever", "Lever-Switch", "Lever Switch"} {
		if _, err := render(name); err == nil {
			t.Errorf("Expected error for %q", name)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Item":        "item",
		"LeverSwitch": "lever_switch",
		"DoorKey2":    "door_key2",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
