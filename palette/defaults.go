package palette

import (
	"embed"
	"fmt"
	"image/color"
	"path"
	"sort"
	"strings"
)

//go:embed assets/*.hex
var assets embed.FS

// DefaultName is the palette used when none is configured.
const DefaultName = "ocaso"

// Names lists the embedded palettes.
func Names() []string {
	entries, _ := assets.ReadDir("assets")
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".hex"))
	}
	sort.Strings(names)
	return names
}

// Default returns an embedded palette by name.
func Default(name string) (color.Palette, error) {
	data, err := assets.ReadFile(path.Join("assets", name+".hex"))
	if err != nil {
		return nil, fmt.Errorf("no embedded palette %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return ParseHex(string(data))
}

// Load returns the embedded palette called src, or else reads src as a hex file.
func Load(src string) (color.Palette, error) {
	if src == "" {
		src = DefaultName
	}
	for _, name := range Names() {
		if name == src {
			return Default(name)
		}
	}
	if path.Ext(src) == ".hex" {
		return LoadHex(src)
	}
	return FromImage(src, maxImageColors)
}
