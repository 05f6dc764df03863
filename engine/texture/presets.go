package texture

import "sort"

// RefCustom marks artwork that came from an upload in the current session.
const RefCustom = "custom"

// Fixed non-preset assets.
const (
	AssetVinyl   = "disc.png"
	AssetOverlay = "overlay.jpg"
)

// Presets maps preset names to image file names under the asset root.
type Presets map[string]string

// DefaultPresets is the preset table shipped with the sleeve assets.
var DefaultPresets = Presets{
	"Front": "front.jpg",
	"Back":  "back.jpg",
}

// Has reports whether name is a preset.
func (p Presets) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
