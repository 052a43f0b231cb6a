package sprite

import "fmt"

// Command is a single editing intent produced by an input decoder.
type Command interface {
	fmt.Stringer
	apply(g *Grid)
}

type MoveCursor struct {
	Dir Direction
}

type Resize struct {
	Dir   Direction
	Delta int
}

type SetGlyph struct {
	Glyph rune
}

type SetColor struct {
	Color Color
}

type SetHighlight struct {
	Color Color
}

type ClearCell struct{}

type AddFrame struct{}

type DeleteFrame struct{}

type DuplicateFrame struct{}

type CycleFrame struct {
	Delta int
}

func (c MoveCursor) apply(g *Grid) { g.MoveCursor(c.Dir) }

func (c Resize) apply(g *Grid) { g.Resize(c.Dir, c.Delta) }

func (c SetGlyph) apply(g *Grid) { g.SetGlyph(c.Glyph) }

func (c SetColor) apply(g *Grid) { g.SetForeground(c.Color) }

func (c SetHighlight) apply(g *Grid) { g.SetBackground(c.Color) }

func (ClearCell) apply(g *Grid) { g.ClearCell() }

func (AddFrame) apply(g *Grid) { g.AddFrame() }

func (DeleteFrame) apply(g *Grid) { g.DeleteFrame() }

func (DuplicateFrame) apply(g *Grid) { g.DuplicateFrame() }

func (c CycleFrame) apply(g *Grid) { g.CycleFrame(c.Delta) }

func (c MoveCursor) String() string { return "move " + c.Dir.String() }

func (c Resize) String() string { return fmt.Sprintf("resize %s %+d", c.Dir, c.Delta) }

func (c SetGlyph) String() string { return fmt.Sprintf("glyph %q", c.Glyph) }

func (c SetColor) String() string { return "color " + c.Color.String() }

func (c SetHighlight) String() string { return "highlight " + c.Color.String() }

func (ClearCell) String() string { return "clear" }

func (AddFrame) String() string { return "add frame" }

func (DeleteFrame) String() string { return "delete frame" }

func (DuplicateFrame) String() string { return "duplicate frame" }

func (c CycleFrame) String() string { return fmt.Sprintf("cycle frame %+d", c.Delta) }

// Apply runs cmd against the grid and reports whether any observable state
// (cells, size, frames, cursor or current frame) changed.
func (g *Grid) Apply(cmd Command) bool {
	if cmd == nil {
		return false
	}
	before := g.Clone()
	cmd.apply(g)
	return !g.equal(before)
}

func (g *Grid) equal(o *Grid) bool {
	if g.current != o.current || g.cursor != o.cursor || len(g.frames) != len(o.frames) {
		return false
	}
	if g.Size() != o.Size() {
		return false
	}
	for i, frame := range g.frames {
		for y, row := range frame {
			for x, cell := range row {
				if o.frames[i][y][x] != cell {
					return false
				}
			}
		}
	}
	return true
}
