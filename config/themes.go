package config

import "github.com/javanhut/ravenvt/grid"

// ThemeOption describes an available color theme.
type ThemeOption struct {
	Name  string
	Label string
	Fg    grid.RGB
	Bg    grid.RGB
}

// ThemeOptions lists the built-in themes, each carrying concrete fg/bg
// colors; cmd/ravenvt clears the window with Bg and draws the cursor
// block in Fg.
func ThemeOptions() []ThemeOption {
	return []ThemeOption{
		{Name: "raven-blue", Label: "Raven Blue", Fg: grid.RGB{R: 0xe5, G: 0xe5, B: 0xe5}, Bg: grid.RGB{R: 0x0b, G: 0x10, B: 0x1a}},
		{Name: "crow-black", Label: "Crow Black", Fg: grid.RGB{R: 0xd0, G: 0xd0, B: 0xd0}, Bg: grid.RGB{R: 0x00, G: 0x00, B: 0x00}},
		{Name: "magpie-black-white-grey", Label: "Magpie Black/White/Grey", Fg: grid.RGB{R: 0xff, G: 0xff, B: 0xff}, Bg: grid.RGB{R: 0x1a, G: 0x1a, B: 0x1a}},
		{Name: "catppuccin-mocha", Label: "Catppuccin Mocha", Fg: grid.RGB{R: 0xcd, G: 0xd6, B: 0xf4}, Bg: grid.RGB{R: 0x1e, G: 0x1e, B: 0x2e}},
	}
}

// ThemeLabel returns the display label for a theme name, falling back to
// "Raven Blue" for an empty name and the raw name for an unknown one.
func ThemeLabel(name string) string {
	for _, opt := range ThemeOptions() {
		if opt.Name == name {
			return opt.Label
		}
	}
	if name == "" {
		return "Raven Blue"
	}
	return name
}

// Resolve returns the ThemeOption for name, falling back to the first
// (default) theme if name is unknown.
func Resolve(name string) ThemeOption {
	opts := ThemeOptions()
	for _, opt := range opts {
		if opt.Name == name {
			return opt
		}
	}
	return opts[0]
}
