// Package sprite holds the in-memory model of a multi-frame glyph sprite and
// every operation that mutates it.
//
// A Grid is owned by a single editing session. None of its methods are safe
// for concurrent use; a multi-threaded host must serialize calls itself.
package sprite

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid = errors.New("sprite has no frames")
	ErrRagged    = errors.New("sprite frames are not rectangular")
)

type Position struct {
	X, Y int
}

type Size struct {
	Width, Height int
}

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Frame is one animation step, indexed [row][column].
type Frame [][]Cell

func blankFrame(size Size) Frame {
	frame := make(Frame, size.Height)
	for y := range frame {
		frame[y] = blankRow(size.Width)
	}
	return frame
}

func blankRow(width int) []Cell {
	row := make([]Cell, width)
	for x := range row {
		row[x] = EmptyCell
	}
	return row
}

func (f Frame) clone() Frame {
	out := make(Frame, len(f))
	for y, row := range f {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Grid is an ordered set of equally sized frames plus the editing cursor and
// the index of the frame being edited.
type Grid struct {
	frames  []Frame
	current int
	cursor  Position
}

// New returns a grid with one blank frame. Dimensions below 1 are raised to 1.
func New(size Size) *Grid {
	size.Width = max(size.Width, 1)
	size.Height = max(size.Height, 1)
	return &Grid{frames: []Frame{blankFrame(size)}}
}

// FromFrames builds a grid from existing frame data. The frames are copied.
// Every frame must have the same, non-zero number of rows and every row the
// same, non-zero number of cells.
func FromFrames(frames []Frame) (*Grid, error) {
	if len(frames) == 0 || len(frames[0]) == 0 || len(frames[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height := len(frames[0])
	width := len(frames[0][0])
	g := &Grid{frames: make([]Frame, len(frames))}
	for i, frame := range frames {
		if len(frame) != height {
			return nil, fmt.Errorf("frame %d has %d rows, want %d: %w", i, len(frame), height, ErrRagged)
		}
		for y, row := range frame {
			if len(row) != width {
				return nil, fmt.Errorf("frame %d row %d has %d cells, want %d: %w", i, y, len(row), width, ErrRagged)
			}
		}
		g.frames[i] = frame.clone()
	}
	return g, nil
}

func (g *Grid) Size() Size {
	return Size{Width: len(g.frames[0][0]), Height: len(g.frames[0])}
}

func (g *Grid) FrameCount() int {
	return len(g.frames)
}

func (g *Grid) CurrentFrameIndex() int {
	return g.current
}

func (g *Grid) Cursor() Position {
	return g.cursor
}

// Cell returns the cell at p in frame i, or false if either is out of range.
func (g *Grid) Cell(i int, p Position) (Cell, bool) {
	if i < 0 || i >= len(g.frames) || !g.contains(p) {
		return Cell{}, false
	}
	return g.frames[i][p.Y][p.X], true
}

// CurrentCell returns the cell under the cursor in the current frame.
func (g *Grid) CurrentCell() Cell {
	return g.frames[g.current][g.cursor.Y][g.cursor.X]
}

// Frame returns a copy of frame i.
func (g *Grid) Frame(i int) Frame {
	return g.frames[i].clone()
}

// Frames returns a copy of every frame.
func (g *Grid) Frames() []Frame {
	out := make([]Frame, len(g.frames))
	for i, frame := range g.frames {
		out[i] = frame.clone()
	}
	return out
}

func (g *Grid) Clone() *Grid {
	return &Grid{frames: g.Frames(), current: g.current, cursor: g.cursor}
}

func (g *Grid) contains(p Position) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.Width && p.Y < size.Height
}

func (g *Grid) clampCursor() {
	size := g.Size()
	g.cursor.X = min(max(g.cursor.X, 0), size.Width-1)
	g.cursor.Y = min(max(g.cursor.Y, 0), size.Height-1)
}
