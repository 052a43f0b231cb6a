package sprite

// Color is one of the sixteen terminal palette colors a cell can carry.
// The zero value means no color is set.
type Color int

const (
	NoColor Color = iota

	// light colors
	DarkGrey
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White

	// dark colors
	Black
	DarkRed
	DarkGreen
	DarkYellow
	DarkBlue
	DarkMagenta
	DarkCyan
	Grey
)

// Palette lists every paintable color, light colors first.
var Palette = []Color{
	DarkGrey, Red, Green, Yellow, Blue, Magenta, Cyan, White,
	Black, DarkRed, DarkGreen, DarkYellow, DarkBlue, DarkMagenta, DarkCyan, Grey,
}

var colorCodes = map[Color]rune{
	DarkGrey: 'a',
	Red:      'r',
	Green:    'g',
	Yellow:   'y',
	Blue:     'b',
	Magenta:  'm',
	Cyan:     'c',
	White:    'w',

	Black:       'A',
	DarkRed:     'R',
	DarkGreen:   'G',
	DarkYellow:  'Y',
	DarkBlue:    'B',
	DarkMagenta: 'M',
	DarkCyan:    'C',
	Grey:        'W',
}

var colorNames = map[Color]string{
	NoColor:     "none",
	DarkGrey:    "dark grey",
	Red:         "red",
	Green:       "green",
	Yellow:      "yellow",
	Blue:        "blue",
	Magenta:     "magenta",
	Cyan:        "cyan",
	White:       "white",
	Black:       "black",
	DarkRed:     "dark red",
	DarkGreen:   "dark green",
	DarkYellow:  "dark yellow",
	DarkBlue:    "dark blue",
	DarkMagenta: "dark magenta",
	DarkCyan:    "dark cyan",
	Grey:        "grey",
}

// Code returns the single character used for c in the export format.
// Absent and unknown colors encode as a space.
func (c Color) Code() rune {
	if code, ok := colorCodes[c]; ok {
		return code
	}
	return ' '
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ColorFromCode is the inverse of Color.Code. Unknown codes map to NoColor.
func ColorFromCode(code rune) Color {
	for c, r := range colorCodes {
		if r == code {
			return c
		}
	}
	return NoColor
}

// Cell is a single glyph with optional colors.
type Cell struct {
	Glyph      rune
	Foreground Color
	Background Color
}

// EmptyCell fills every row or column added to a grid.
var EmptyCell = Cell{Glyph: ' '}
