// Package asset reads and writes sprite files in the symbols/colors/highlights
// JSON shape consumed by the game, and renders preview sheets.
package asset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"byofish/sprite"
	"github.com/natefinch/atomic"
)

var ErrMalformed = errors.New("malformed asset")

// Load reads the asset at path. Errors name the file; a missing file keeps
// os.ErrNotExist in its chain.
func Load(path string) (*sprite.Grid, error) {
	name := filepath.Base(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open asset file %s: %w", name, err)
	}
	defer file.Close()

	g, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("asset file %s is not proper json: %w", name, err)
	}
	return g, nil
}

// Decode parses an exported snapshot. The forward animation is
// authoritative: its symbols give the frame, row and column counts. Missing
// color or highlight entries decode as no color.
func Decode(r io.Reader) (*sprite.Grid, error) {
	var snap sprite.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	anim := snap.Forward
	if len(anim.Symbols) == 0 {
		return nil, fmt.Errorf("%w: forward_animation has no frames", ErrMalformed)
	}

	frames := make([]sprite.Frame, len(anim.Symbols))
	for i, rows := range anim.Symbols {
		frame := make(sprite.Frame, len(rows))
		for y, symbols := range rows {
			glyphs := []rune(symbols)
			colors := codesAt(anim.Colors, i, y)
			highlights := codesAt(anim.Highlights, i, y)

			row := make([]sprite.Cell, len(glyphs))
			for x, glyph := range glyphs {
				row[x] = sprite.Cell{
					Glyph:      glyph,
					Foreground: colorAt(colors, x),
					Background: colorAt(highlights, x),
				}
			}
			frame[y] = row
		}
		frames[i] = frame
	}

	g, err := sprite.FromFrames(frames)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return g, nil
}

func codesAt(channel [][]string, frame, row int) []rune {
	if frame >= len(channel) || row >= len(channel[frame]) {
		return nil
	}
	return []rune(channel[frame][row])
}

func colorAt(codes []rune, x int) sprite.Color {
	if x >= len(codes) {
		return sprite.NoColor
	}
	return sprite.ColorFromCode(codes[x])
}

// Encode writes snap as indented JSON. Glyphs such as '<' and '&' are kept
// literal.
func Encode(w io.Writer, snap sprite.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(snap)
}

// Save exports g to path, replacing any existing file atomically.
func Save(path string, g *sprite.Grid) error {
	var buf bytes.Buffer
	if err := Encode(&buf, g.Export()); err != nil {
		return fmt.Errorf("could not encode asset: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create %s: %w", dir, err)
		}
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("could not write asset file %s: %w", filepath.Base(path), err)
	}
	return nil
}
