package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const scriptsDir = "assets/scripts"

const tmpl = `package scripts

import (
	"sevenlights/internal/engine"
	"sevenlights/internal/interact"
)

// {{.Name}} reacts when a character uses its object.
type {{.Name}} struct {
	engine.BaseComponent
	Label string
}

// OnUsed implements interact.Usable
func (s *{{.Name}}) OnUsed(user *interact.Character) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	// TODO: implement behavior
}

func init() {
	engine.RegisterScript("{{.Name}}", {{.Lower}}Factory, {{.Lower}}Serializer)
}

func {{.Lower}}Factory(props map[string]any) engine.Component {
	label, _ := props["label"].(string)
	return &{{.Name}}{Label: label}
}

func {{.Lower}}Serializer(c engine.Component) map[string]any {
	s, ok := c.(*{{.Name}})
	if !ok {
		return nil
	}
	return map[string]any{
		"label": s.Label,
	}
}
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run ./cmd/newscript <ScriptName>\n")
		fmt.Fprintf(os.Stderr, "Example: go run ./cmd/newscript LeverSwitch\n")
		os.Exit(1)
	}

	name := os.Args[1]
	content, err := render(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(scriptsDir, toSnakeCase(name)+".go")
	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", outPath)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", outPath)
	fmt.Printf("Usable script \"%s\" registered. Add it to a scene object with a collider:\n\n", name)
	fmt.Printf("  {\n")
	fmt.Printf("    \"type\": \"Script\",\n")
	fmt.Printf("    \"name\": \"%s\",\n", name)
	fmt.Printf("    \"props\": { \"label\": \"%s\" }\n", name)
	fmt.Printf("  }\n")
}

// render fills the template for a script type called name.
func render(name string) (string, error) {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return "", fmt.Errorf("script name must start with an uppercase letter")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", fmt.Errorf("script name %q must be a Go identifier", name)
		}
	}

	lower := string(unicode.ToLower(rune(name[0]))) + name[1:]
	content := strings.ReplaceAll(tmpl, "{{.Name}}", name)
	content = strings.ReplaceAll(content, "{{.Lower}}", lower)
	return content, nil
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
