package main

import (
	"fmt"
	"strings"

	"byofish/sprite"
	"github.com/charmbracelet/lipgloss"
)

// ANSI 16 color indexes of the palette.
var ansiColors = map[sprite.Color]lipgloss.Color{
	sprite.Black:       lipgloss.Color("0"),
	sprite.DarkRed:     lipgloss.Color("1"),
	sprite.DarkGreen:   lipgloss.Color("2"),
	sprite.DarkYellow:  lipgloss.Color("3"),
	sprite.DarkBlue:    lipgloss.Color("4"),
	sprite.DarkMagenta: lipgloss.Color("5"),
	sprite.DarkCyan:    lipgloss.Color("6"),
	sprite.Grey:        lipgloss.Color("7"),
	sprite.DarkGrey:    lipgloss.Color("8"),
	sprite.Red:         lipgloss.Color("9"),
	sprite.Green:       lipgloss.Color("10"),
	sprite.Yellow:      lipgloss.Color("11"),
	sprite.Blue:        lipgloss.Color("12"),
	sprite.Magenta:     lipgloss.Color("13"),
	sprite.Cyan:        lipgloss.Color("14"),
	sprite.White:       lipgloss.Color("15"),
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
	currentFrameStyle = lipgloss.NewStyle().
				Bold(true)
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8"))
)

func cellStyle(cell sprite.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg, ok := ansiColors[cell.Foreground]; ok {
		style = style.Foreground(fg)
	}
	if bg, ok := ansiColors[cell.Background]; ok {
		style = style.Background(bg)
	}
	return style
}

// renderFrame draws frame i of the grid, one line per row. The cursor cell
// is shown reversed.
func renderFrame(g *sprite.Grid, i int, showCursor bool) []string {
	frame := g.Frame(i)
	cursor := g.Cursor()

	lines := make([]string, len(frame))
	for y, row := range frame {
		var line strings.Builder
		for x, cell := range row {
			style := cellStyle(cell)
			if showCursor && cursor.X == x && cursor.Y == y {
				style = style.Reverse(true)
			}
			line.WriteString(style.Render(string(cell.Glyph)))
		}
		lines[y] = line.String()
	}
	return lines
}

// renderFrameIndicator lists every frame, marking the current one:
// 0[*] 1[ ] 2[ ]
func renderFrameIndicator(current, count int) string {
	parts := make([]string, count)
	for i := range parts {
		if i == current {
			parts[i] = currentFrameStyle.Render(fmt.Sprintf("%d[*]", i))
		} else {
			parts[i] = fmt.Sprintf("%d[ ]", i)
		}
	}
	return strings.Join(parts, " ")
}

// renderColorGuide shows each palette letter on its own color, light colors
// on the first line and dark colors on the second.
func renderColorGuide() string {
	var light, dark strings.Builder
	for i, c := range sprite.Palette {
		style := lipgloss.NewStyle().Background(ansiColors[c])
		if i < len(sprite.Palette)/2 {
			light.WriteString(style.Foreground(ansiColors[sprite.Black]).Render(string(c.Code())))
		} else {
			dark.WriteString(style.Foreground(ansiColors[sprite.White]).Render(string(c.Code())))
		}
	}
	return light.String() + "\n" + dark.String()
}

func renderCanvas(g *sprite.Grid) string {
	lines := renderFrame(g, g.CurrentFrameIndex(), true)
	return borderStyle.Render(strings.Join(lines, "\n"))
}
