package sprite

import "strings"

// Animation is the per-frame, per-row string encoding of a sprite.
// Outer index is the frame, inner index the row; each string has one
// character per column.
type Animation struct {
	Symbols    [][]string `json:"symbols"`
	Colors     [][]string `json:"colors"`
	Highlights [][]string `json:"highlights"`
}

// Snapshot is the exported form of a grid. Flipped currently carries the
// same content as Forward.
type Snapshot struct {
	Forward Animation `json:"forward_animation"`
	Flipped Animation `json:"flipped_animation"`
}

// Export encodes every frame of the grid.
func (g *Grid) Export() Snapshot {
	forward := encodeAnimation(g.frames)
	return Snapshot{Forward: forward, Flipped: encodeAnimation(g.frames)}
}

func encodeAnimation(frames []Frame) Animation {
	anim := Animation{
		Symbols:    make([][]string, len(frames)),
		Colors:     make([][]string, len(frames)),
		Highlights: make([][]string, len(frames)),
	}
	for i, frame := range frames {
		anim.Symbols[i] = make([]string, len(frame))
		anim.Colors[i] = make([]string, len(frame))
		anim.Highlights[i] = make([]string, len(frame))
		for y, row := range frame {
			var symbols, colors, highlights strings.Builder
			for _, cell := range row {
				symbols.WriteRune(cell.Glyph)
				colors.WriteRune(cell.Foreground.Code())
				highlights.WriteRune(cell.Background.Code())
			}
			anim.Symbols[i][y] = symbols.String()
			anim.Colors[i][y] = colors.String()
			anim.Highlights[i][y] = highlights.String()
		}
	}
	return anim
}
