package mctext

import (
	"math"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is one entry of the legacy colour table.
type Color struct {
	Code rune   // lowercase code character
	Name string // vanilla text component name
	Hex  string // "#RRGGBB", empty for the default colour
}

// ResetCode returns the active colour (and style) to the default.
const ResetCode = 'r'

var palette = [16]Color{
	{'0', "black", "#000000"},
	{'1', "dark_blue", "#0000AA"},
	{'2', "dark_green", "#00AA00"},
	{'3', "dark_aqua", "#00AAAA"},
	{'4', "dark_red", "#AA0000"},
	{'5', "dark_purple", "#AA00AA"},
	{'6', "gold", "#FFAA00"},
	{'7', "gray", "#AAAAAA"},
	{'8', "dark_gray", "#555555"},
	{'9', "blue", "#5555FF"},
	{'a', "green", "#55FF55"},
	{'b', "aqua", "#55FFFF"},
	{'c', "red", "#FF5555"},
	{'d', "light_purple", "#FF55FF"},
	{'e', "yellow", "#FFFF55"},
	{'f', "white", ""},
}

// parsed Lab-comparable palette, indexed like palette; 'f' is skipped.
var labPalette = func() [16]colorful.Color {
	var out [16]colorful.Color
	for i, c := range palette {
		if c.Hex == "" {
			continue
		}
		out[i], _ = colorful.Hex(c.Hex)
	}
	return out
}()

// lowerASCII folds A-Z only, so look-alike runes such as the Kelvin sign
// never match a code.
func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func paletteIndex(code rune) int {
	code = lowerASCII(code)
	switch {
	case code >= '0' && code <= '9':
		return int(code - '0')
	case code >= 'a' && code <= 'f':
		return int(code-'a') + 10
	}
	return -1
}

// Lookup returns the palette entry for a colour code, case-insensitively.
func Lookup(code rune) (Color, bool) {
	i := paletteIndex(code)
	if i < 0 {
		return Color{}, false
	}
	return palette[i], true
}

// Palette returns a copy of the 16 colour entries in code order.
func Palette() []Color {
	return slices.Clone(palette[:])
}

// NameOf returns the vanilla colour name for a palette hex value.
func NameOf(hex string) (string, bool) {
	if hex == "" {
		return "", false
	}
	for _, c := range palette {
		if strings.EqualFold(c.Hex, hex) {
			return c.Name, true
		}
	}
	return "", false
}

// Nearest maps any "#RGB"/"#RRGGBB" colour to the closest palette code
// (CIE Lab distance). The default entry 'f' is never returned.
func Nearest(hex string) (Color, bool) {
	for _, c := range palette {
		if c.Hex != "" && strings.EqualFold(c.Hex, hex) {
			return c, true
		}
	}
	want, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, false
	}
	best, bestDist := -1, math.MaxFloat64
	for i, c := range palette {
		if c.Hex == "" {
			continue
		}
		if d := want.DistanceLab(labPalette[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return palette[best], true
}
