package config

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/san-kum/asciisweep/internal/sweep"
	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

type Theme struct {
	Name       string   `yaml:"-"`
	Incoming   []string `yaml:"incoming"`
	Outgoing   []string `yaml:"outgoing"`
	Background string   `yaml:"background"`
}

var Themes = mustParseThemes(themesYAML)

func mustParseThemes(data []byte) map[string]*Theme {
	themes, err := ParseThemes(data)
	if err != nil {
		panic(err)
	}
	return themes
}

// ParseThemes decodes a YAML document mapping theme names to palettes and
// validates every theme.
func ParseThemes(data []byte) (map[string]*Theme, error) {
	themes := make(map[string]*Theme)
	if err := yaml.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("config: parse themes: %w", err)
	}
	for name, th := range themes {
		if th == nil {
			return nil, fmt.Errorf("config: theme %q is empty", name)
		}
		th.Name = name
		if _, err := th.Palettes(); err != nil {
			return nil, fmt.Errorf("config: theme %q: %w", name, err)
		}
	}
	return themes, nil
}

func GetTheme(name string) (*Theme, error) {
	th, ok := Themes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownTheme, name, ListThemes())
	}
	return th, nil
}

func ListThemes() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palettes converts the theme's color names.
func (th *Theme) Palettes() (sweep.Palettes, error) {
	var p sweep.Palettes
	var err error
	if p.Incoming, err = parsePalette(th.Incoming); err != nil {
		return p, fmt.Errorf("incoming: %w", err)
	}
	if p.Outgoing, err = parsePalette(th.Outgoing); err != nil {
		return p, fmt.Errorf("outgoing: %w", err)
	}
	p.Background = sweep.Black
	if th.Background != "" {
		if p.Background, err = sweep.ParseColor(th.Background); err != nil {
			return p, fmt.Errorf("background: %w", err)
		}
	}
	return p, nil
}

func parsePalette(names []string) (sweep.Palette, error) {
	colors := make([]sweep.Color, len(names))
	for i, n := range names {
		c, err := sweep.ParseColor(n)
		if err != nil {
			return sweep.Palette{}, err
		}
		colors[i] = c
	}
	return sweep.NewPalette(colors)
}
