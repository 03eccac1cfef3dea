package dom

import (
	"fmt"
	"math"
	"sort"
)

// Color is a packed 0xAARRGGBB value.
type Color uint32

// Empty is the unset color.
const Empty Color = 0

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ARGB returns a color with alpha.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// CMYK converts cyan, magenta, yellow, black and alpha percentages
// (0 to 100) to a color.
func CMYK(alpha, c, m, y, k float64) Color {
	c, m, y, k = c/100, m/100, y/100, k/100
	channel := func(v float64) uint8 {
		return uint8(math.Round(255 * (1 - v) * (1 - k)))
	}
	a := uint8(math.Round(alpha / 100 * 255))
	return ARGB(a, channel(c), channel(m), channel(y))
}

// Gray converts a gray percentage (0 white, 100 black) to a color.
func Gray(g float64) Color {
	l := uint8(math.Round((1 - g/100) * 255))
	return RGB(l, l, l)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

func (c Color) String() string {
	if name, ok := colorNamesByValue[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(c))
}

// LookupColor returns the predefined color with the given name, ignoring
// case.
func LookupColor(name string) (Color, bool) {
	c, ok := predefinedColors[FoldName(name)]
	return c, ok
}

// ColorNames returns the predefined color names, sorted.
func ColorNames() []string {
	return sortedColorNames
}

var namedColors = map[string]Color{
	"AliceBlue":            0xFFF0F8FF,
	"AntiqueWhite":         0xFFFAEBD7,
	"Aqua":                 0xFF00FFFF,
	"Aquamarine":           0xFF7FFFD4,
	"Azure":                0xFFF0FFFF,
	"Beige":                0xFFF5F5DC,
	"Bisque":               0xFFFFE4C4,
	"Black":                0xFF000000,
	"BlanchedAlmond":       0xFFFFEBCD,
	"Blue":                 0xFF0000FF,
	"BlueViolet":           0xFF8A2BE2,
	"Brown":                0xFFA52A2A,
	"BurlyWood":            0xFFDEB887,
	"CadetBlue":            0xFF5F9EA0,
	"Chartreuse":           0xFF7FFF00,
	"Chocolate":            0xFFD2691E,
	"Coral":                0xFFFF7F50,
	"CornflowerBlue":       0xFF6495ED,
	"Cornsilk":             0xFFFFF8DC,
	"Crimson":              0xFFDC143C,
	"Cyan":                 0xFF00FFFF,
	"DarkBlue":             0xFF00008B,
	"DarkCyan":             0xFF008B8B,
	"DarkGoldenrod":        0xFFB8860B,
	"DarkGray":             0xFFA9A9A9,
	"DarkGreen":            0xFF006400,
	"DarkKhaki":            0xFFBDB76B,
	"DarkMagenta":          0xFF8B008B,
	"DarkOliveGreen":       0xFF556B2F,
	"DarkOrange":           0xFFFF8C00,
	"DarkOrchid":           0xFF9932CC,
	"DarkRed":              0xFF8B0000,
	"DarkSalmon":           0xFFE9967A,
	"DarkSeaGreen":         0xFF8FBC8F,
	"DarkSlateBlue":        0xFF483D8B,
	"DarkSlateGray":        0xFF2F4F4F,
	"DarkTurquoise":        0xFF00CED1,
	"DarkViolet":           0xFF9400D3,
	"DeepPink":             0xFFFF1493,
	"DeepSkyBlue":          0xFF00BFFF,
	"DimGray":              0xFF696969,
	"DodgerBlue":           0xFF1E90FF,
	"Firebrick":            0xFFB22222,
	"FloralWhite":          0xFFFFFAF0,
	"ForestGreen":          0xFF228B22,
	"Fuchsia":              0xFFFF00FF,
	"Gainsboro":            0xFFDCDCDC,
	"GhostWhite":           0xFFF8F8FF,
	"Gold":                 0xFFFFD700,
	"Goldenrod":            0xFFDAA520,
	"Gray":                 0xFF808080,
	"Green":                0xFF008000,
	"GreenYellow":          0xFFADFF2F,
	"Honeydew":             0xFFF0FFF0,
	"HotPink":              0xFFFF69B4,
	"IndianRed":            0xFFCD5C5C,
	"Indigo":               0xFF4B0082,
	"Ivory":                0xFFFFFFF0,
	"Khaki":                0xFFF0E68C,
	"Lavender":             0xFFE6E6FA,
	"LavenderBlush":        0xFFFFF0F5,
	"LawnGreen":            0xFF7CFC00,
	"LemonChiffon":         0xFFFFFACD,
	"LightBlue":            0xFFADD8E6,
	"LightCoral":           0xFFF08080,
	"LightCyan":            0xFFE0FFFF,
	"LightGoldenrodYellow": 0xFFFAFAD2,
	"LightGray":            0xFFD3D3D3,
	"LightGreen":           0xFF90EE90,
	"LightPink":            0xFFFFB6C1,
	"LightSalmon":          0xFFFFA07A,
	"LightSeaGreen":        0xFF20B2AA,
	"LightSkyBlue":         0xFF87CEFA,
	"LightSlateGray":       0xFF778899,
	"LightSteelBlue":       0xFFB0C4DE,
	"LightYellow":          0xFFFFFFE0,
	"Lime":                 0xFF00FF00,
	"LimeGreen":            0xFF32CD32,
	"Linen":                0xFFFAF0E6,
	"Magenta":              0xFFFF00FF,
	"Maroon":               0xFF800000,
	"MediumAquamarine":     0xFF66CDAA,
	"MediumBlue":           0xFF0000CD,
	"MediumOrchid":         0xFFBA55D3,
	"MediumPurple":         0xFF9370DB,
	"MediumSeaGreen":       0xFF3CB371,
	"MediumSlateBlue":      0xFF7B68EE,
	"MediumSpringGreen":    0xFF00FA9A,
	"MediumTurquoise":      0xFF48D1CC,
	"MediumVioletRed":      0xFFC71585,
	"MidnightBlue":         0xFF191970,
	"MintCream":            0xFFF5FFFA,
	"MistyRose":            0xFFFFE4E1,
	"Moccasin":             0xFFFFE4B5,
	"NavajoWhite":          0xFFFFDEAD,
	"Navy":                 0xFF000080,
	"OldLace":              0xFFFDF5E6,
	"Olive":                0xFF808000,
	"OliveDrab":            0xFF6B8E23,
	"Orange":               0xFFFFA500,
	"OrangeRed":            0xFFFF4500,
	"Orchid":               0xFFDA70D6,
	"PaleGoldenrod":        0xFFEEE8AA,
	"PaleGreen":            0xFF98FB98,
	"PaleTurquoise":        0xFFAFEEEE,
	"PaleVioletRed":        0xFFDB7093,
	"PapayaWhip":           0xFFFFEFD5,
	"PeachPuff":            0xFFFFDAB9,
	"Peru":                 0xFFCD853F,
	"Pink":                 0xFFFFC0CB,
	"Plum":                 0xFFDDA0DD,
	"PowderBlue":           0xFFB0E0E6,
	"Purple":               0xFF800080,
	"Red":                  0xFFFF0000,
	"RosyBrown":            0xFFBC8F8F,
	"RoyalBlue":            0xFF4169E1,
	"SaddleBrown":          0xFF8B4513,
	"Salmon":               0xFFFA8072,
	"SandyBrown":           0xFFF4A460,
	"SeaGreen":             0xFF2E8B57,
	"SeaShell":             0xFFFFF5EE,
	"Sienna":               0xFFA0522D,
	"Silver":               0xFFC0C0C0,
	"SkyBlue":              0xFF87CEEB,
	"SlateBlue":            0xFF6A5ACD,
	"SlateGray":            0xFF708090,
	"Snow":                 0xFFFFFAFA,
	"SpringGreen":          0xFF00FF7F,
	"SteelBlue":            0xFF4682B4,
	"Tan":                  0xFFD2B48C,
	"Teal":                 0xFF008080,
	"Thistle":              0xFFD8BFD8,
	"Tomato":               0xFFFF6347,
	"Transparent":          0x00FFFFFF,
	"Turquoise":            0xFF40E0D0,
	"Violet":               0xFFEE82EE,
	"Wheat":                0xFFF5DEB3,
	"White":                0xFFFFFFFF,
	"WhiteSmoke":           0xFFF5F5F5,
	"Yellow":               0xFFFFFF00,
	"YellowGreen":          0xFF9ACD32,
}

var (
	predefinedColors  = make(map[string]Color, len(namedColors))
	colorNamesByValue = make(map[Color]string, len(namedColors))
	sortedColorNames  = make([]string, 0, len(namedColors))
)

func init() {
	for name, c := range namedColors {
		predefinedColors[FoldName(name)] = c
		sortedColorNames = append(sortedColorNames, name)
	}
	sort.Strings(sortedColorNames)
	// Aliases share a value; the first name alphabetically wins for String.
	for _, name := range sortedColorNames {
		c := namedColors[name]
		if _, ok := colorNamesByValue[c]; !ok {
			colorNamesByValue[c] = name
		}
	}
}
