package sprite

func (g *Grid) target() *Cell {
	return &g.frames[g.current][g.cursor.Y][g.cursor.X]
}

// SetGlyph replaces the character under the cursor, keeping its colors.
func (g *Grid) SetGlyph(r rune) {
	g.target().Glyph = r
}

// SetForeground replaces the foreground color under the cursor.
func (g *Grid) SetForeground(c Color) {
	g.target().Foreground = c
}

// SetBackground replaces the background (highlight) color under the cursor.
func (g *Grid) SetBackground(c Color) {
	g.target().Background = c
}

// ClearCell resets the cell under the cursor to EmptyCell.
func (g *Grid) ClearCell() {
	*g.target() = EmptyCell
}

// MoveCursor steps the cursor one cell in dir, stopping at the frame edges.
func (g *Grid) MoveCursor(dir Direction) {
	size := g.Size()
	switch dir {
	case Left:
		if g.cursor.X >= 1 {
			g.cursor.X--
		}
	case Right:
		if g.cursor.X < size.Width-1 {
			g.cursor.X++
		}
	case Up:
		if g.cursor.Y >= 1 {
			g.cursor.Y--
		}
	case Down:
		if g.cursor.Y < size.Height-1 {
			g.cursor.Y++
		}
	}
}
