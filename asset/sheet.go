package asset

import (
	"fmt"
	"image"
	"image/color"

	"byofish/sprite"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// SheetOptions controls how a sprite sheet is laid out. Zero fields take
// the defaults of DefaultSheetOptions.
type SheetOptions struct {
	CellWidth  int
	CellHeight int
	// Gap is the number of pixels between frames.
	Gap      int
	FontSize float64
}

func DefaultSheetOptions() SheetOptions {
	return SheetOptions{CellWidth: 8, CellHeight: 16, Gap: 8, FontSize: 12}
}

func (o SheetOptions) withDefaults() SheetOptions {
	d := DefaultSheetOptions()
	if o.CellWidth <= 0 {
		o.CellWidth = d.CellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = d.CellHeight
	}
	if o.Gap < 0 {
		o.Gap = d.Gap
	}
	if o.FontSize <= 0 {
		o.FontSize = d.FontSize
	}
	return o
}

// RGB values of the terminal palette, matching a stock xterm.
var paletteRGB = map[sprite.Color]color.RGBA{
	sprite.Black:       {0, 0, 0, 255},
	sprite.DarkRed:     {205, 0, 0, 255},
	sprite.DarkGreen:   {0, 205, 0, 255},
	sprite.DarkYellow:  {205, 205, 0, 255},
	sprite.DarkBlue:    {0, 0, 238, 255},
	sprite.DarkMagenta: {205, 0, 205, 255},
	sprite.DarkCyan:    {0, 205, 205, 255},
	sprite.Grey:        {229, 229, 229, 255},
	sprite.DarkGrey:    {127, 127, 127, 255},
	sprite.Red:         {255, 0, 0, 255},
	sprite.Green:       {0, 255, 0, 255},
	sprite.Yellow:      {255, 255, 0, 255},
	sprite.Blue:        {92, 92, 255, 255},
	sprite.Magenta:     {255, 0, 255, 255},
	sprite.Cyan:        {0, 255, 255, 255},
	sprite.White:       {255, 255, 255, 255},
}

// SheetSize returns the pixel size of the sheet RenderSheet would produce.
func SheetSize(g *sprite.Grid, opts SheetOptions) (int, int) {
	opts = opts.withDefaults()
	size := g.Size()
	frameWidth := size.Width * opts.CellWidth
	width := g.FrameCount()*frameWidth + (g.FrameCount()-1)*opts.Gap
	return width, size.Height * opts.CellHeight
}

// RenderSheet draws every frame left to right on a white background. Cells
// without a foreground color are drawn in black.
func RenderSheet(g *sprite.Grid, opts SheetOptions) (image.Image, error) {
	dc, err := drawSheet(g, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG renders g and writes it to path.
func SavePNG(path string, g *sprite.Grid, opts SheetOptions) error {
	dc, err := drawSheet(g, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("could not write png %s: %w", path, err)
	}
	return nil
}

func drawSheet(g *sprite.Grid, opts SheetOptions) (*gg.Context, error) {
	opts = opts.withDefaults()
	width, height := SheetSize(g, opts)

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	cw, ch := float64(opts.CellWidth), float64(opts.CellHeight)
	frameWidth := g.Size().Width*opts.CellWidth + opts.Gap
	for i, frame := range g.Frames() {
		originX := float64(i * frameWidth)
		for y, row := range frame {
			for x, cell := range row {
				px := originX + float64(x)*cw
				py := float64(y) * ch

				if bg, ok := paletteRGB[cell.Background]; ok {
					dc.SetColor(bg)
					dc.DrawRectangle(px, py, cw, ch)
					dc.Fill()
				}
				if cell.Glyph == ' ' {
					continue
				}
				fg, ok := paletteRGB[cell.Foreground]
				if !ok {
					fg = color.RGBA{0, 0, 0, 255}
				}
				dc.SetColor(fg)
				dc.DrawStringAnchored(string(cell.Glyph), px+cw/2, py+ch/2, 0.5, 0.5)
			}
		}
	}
	return dc, nil
}
