package project

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Manifest is the parsed form of a config.vexl file: bracketed sections
// of quoted key/value pairs, with # comments.
type Manifest struct {
	Sections []*Section `parser:"@@*"`
}

type Section struct {
	Name    string   `parser:"'[' @Ident ']'"`
	Entries []*Entry `parser:"@@*"`
}

type Entry struct {
	Key   string `parser:"@Ident '='"`
	Value string `parser:"@String"`
}

var manifestLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Punct", Pattern: `\[|\]|=`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var manifestParser = participle.MustBuild[Manifest](
	participle.Lexer(manifestLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace", "Comment"),
)

// ParseManifest parses manifest text. The filename only labels errors.
func ParseManifest(filename, source string) (*Manifest, error) {
	manifest, err := manifestParser.ParseString(filename, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return manifest, nil
}

// Get returns the value for key inside section, if present.
func (m *Manifest) Get(section, key string) (string, bool) {
	for _, s := range m.Sections {
		if s.Name != section {
			continue
		}
		for _, e := range s.Entries {
			if e.Key == key {
				return e.Value, true
			}
		}
	}
	return "", false
}

// Info is the [project] section with defaults applied.
type Info struct {
	Name       string
	MainSource string
	MainLogic  string
	Version    string
	Author     string
}

// Project extracts the [project] section. Missing keys fall back to
// the values scaffolding writes.
func (m *Manifest) Project() Info {
	info := Info{
		MainSource: "src/main.vex",
		MainLogic:  "src/main.vel",
		Version:    "0.1.0",
	}
	if v, ok := m.Get("project", "name"); ok {
		info.Name = v
	}
	if v, ok := m.Get("project", "main_source"); ok {
		info.MainSource = v
	}
	if v, ok := m.Get("project", "main_logic"); ok {
		info.MainLogic = v
	}
	if v, ok := m.Get("project", "version"); ok {
		info.Version = v
	}
	if v, ok := m.Get("project", "author"); ok {
		info.Author = v
	}
	return info
}

// DefaultManifest renders the config.vexl written into new projects.
func DefaultManifest(name string) string {
	return fmt.Sprintf(`[project]
name = %q
main_source = "src/main.vex"
main_logic = "src/main.vel"
version = "0.1.0"
author = ""
`, name)
}
