package config

import (
	_ "embed"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

// Theme is a named figure palette. Low, Mid and High are the diverging
// colormap stops; the rest style the window chrome.
type Theme struct {
	Background string `yaml:"background"`
	Axes       string `yaml:"axes"`
	Text       string `yaml:"text"`
	Grid       string `yaml:"grid"`
	Low        string `yaml:"low"`
	Mid        string `yaml:"mid"`
	High       string `yaml:"high"`
}

type themeFile struct {
	Themes map[string]Theme `yaml:"themes"`
}

var (
	themesOnce sync.Once
	themes     map[string]Theme
)

func loadThemes() {
	var tf themeFile
	if err := yaml.Unmarshal(themesYAML, &tf); err != nil {
		// The palette file is embedded at build time; a parse
		// failure is a broken build.
		panic("config: embedded themes.yaml: " + err.Error())
	}
	themes = tf.Themes
}

// GetTheme returns the named palette, falling back to the default theme
// for unknown names.
func GetTheme(name string) Theme {
	themesOnce.Do(loadThemes)
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ListThemes returns the available palette names, sorted.
func ListThemes() []string {
	themesOnce.Do(loadThemes)
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
