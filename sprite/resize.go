package sprite

// Resize grows (delta > 0) or shrinks (delta < 0) the grid by |delta| rows or
// columns at the edge named by dir. Up and Down change the height, Left and
// Right the width. All frames change together.
//
// Growing at the top or left edge shifts existing content away from the
// origin, so the cursor moves with it. Shrinking at those edges pulls the
// cursor back, never below 0. A shrink stops once the axis reaches 1; the
// rest of delta is dropped.
func (g *Grid) Resize(dir Direction, delta int) {
	steps := delta
	if steps < 0 {
		steps = -steps
	}
	for n := 0; n < steps; n++ {
		var ok bool
		if delta > 0 {
			ok = g.growStep(dir)
		} else {
			ok = g.shrinkStep(dir)
		}
		if !ok {
			break
		}
	}
	g.clampCursor()
}

func (g *Grid) growStep(dir Direction) bool {
	width := g.Size().Width
	switch dir {
	case Up:
		for i, frame := range g.frames {
			g.frames[i] = append(Frame{blankRow(width)}, frame...)
		}
		g.cursor.Y++
	case Down:
		for i, frame := range g.frames {
			g.frames[i] = append(frame, blankRow(width))
		}
	case Left:
		for _, frame := range g.frames {
			for y, row := range frame {
				frame[y] = append([]Cell{EmptyCell}, row...)
			}
		}
		g.cursor.X++
	case Right:
		for _, frame := range g.frames {
			for y, row := range frame {
				frame[y] = append(row, EmptyCell)
			}
		}
	default:
		return false
	}
	return true
}

func (g *Grid) shrinkStep(dir Direction) bool {
	size := g.Size()
	switch dir {
	case Up, Down:
		if size.Height <= 1 {
			return false
		}
	case Left, Right:
		if size.Width <= 1 {
			return false
		}
	default:
		return false
	}

	switch dir {
	case Up:
		for i, frame := range g.frames {
			g.frames[i] = frame[1:]
		}
		g.cursor.Y = max(g.cursor.Y-1, 0)
	case Down:
		for i, frame := range g.frames {
			g.frames[i] = frame[:len(frame)-1]
		}
	case Left:
		for _, frame := range g.frames {
			for y, row := range frame {
				frame[y] = row[1:]
			}
		}
		g.cursor.X = max(g.cursor.X-1, 0)
	case Right:
		for _, frame := range g.frames {
			for y, row := range frame {
				frame[y] = row[:len(row)-1]
			}
		}
	}
	return true
}
