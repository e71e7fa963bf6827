package classify

import (
	"strings"

	"github.com/doeshing/xterm-go/internal/domain"
)

// DefaultIcons is the built-in folder name to glyph table.
var DefaultIcons = map[string]string{
	domain.DefaultIconKey: "📁",
	domain.HomeIconKey:    "🏡",
	"desktop":             "🖥️",
	"documents":           "📄",
	"downloads":           "⬇️",
}

// IconSet resolves folder names to glyphs with a default fallback.
type IconSet struct {
	icons map[string]string
}

// NewIconSet layers overrides on top of DefaultIcons. Keys are matched
// case-insensitively.
func NewIconSet(overrides map[string]string) IconSet {
	icons := make(map[string]string, len(DefaultIcons)+len(overrides))
	for name, icon := range DefaultIcons {
		icons[name] = icon
	}
	for name, icon := range overrides {
		if icon == "" {
			continue
		}
		icons[normalizeName(name)] = icon
	}
	return IconSet{icons: icons}
}

// Lookup returns the icon for name. Unknown or blank names get the default icon.
func (s IconSet) Lookup(name string) string {
	key := normalizeName(name)
	if icon, ok := s.icons[key]; ok && key != "" {
		return icon
	}
	return s.icons[domain.DefaultIconKey]
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
