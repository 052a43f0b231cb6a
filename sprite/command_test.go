package sprite_test

import (
	"testing"

	"byofish/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDispatch(t *testing.T) {
	g := sprite.New(sprite.Size{Width: 2, Height: 2})

	assert.True(t, g.Apply(sprite.SetGlyph{Glyph: 'k'}))
	assert.True(t, g.Apply(sprite.SetColor{Color: sprite.DarkGreen}))
	assert.True(t, g.Apply(sprite.SetHighlight{Color: sprite.Blue}))
	assert.Equal(t, sprite.Cell{Glyph: 'k', Foreground: sprite.DarkGreen, Background: sprite.Blue}, g.CurrentCell())

	assert.True(t, g.Apply(sprite.MoveCursor{Dir: sprite.Right}))
	assert.Equal(t, sprite.Position{X: 1}, g.Cursor())

	assert.True(t, g.Apply(sprite.Resize{Dir: sprite.Down, Delta: 2}))
	assert.Equal(t, sprite.Size{Width: 2, Height: 4}, g.Size())

	assert.True(t, g.Apply(sprite.AddFrame{}))
	assert.True(t, g.Apply(sprite.DuplicateFrame{}))
	assert.Equal(t, 3, g.FrameCount())

	assert.True(t, g.Apply(sprite.CycleFrame{Delta: -1}))
	assert.True(t, g.Apply(sprite.DeleteFrame{}))
	assert.Equal(t, 2, g.FrameCount())

	g.Apply(sprite.MoveCursor{Dir: sprite.Left})
	g.Apply(sprite.CycleFrame{Delta: 1})
	require.Equal(t, 'k', g.CurrentCell().Glyph)
	assert.True(t, g.Apply(sprite.ClearCell{}))
	assert.Equal(t, sprite.EmptyCell, g.CurrentCell())
}

func TestApplyReportsNoops(t *testing.T) {
	g := sprite.New(sprite.Size{Width: 1, Height: 1})

	assert.False(t, g.Apply(nil))
	assert.False(t, g.Apply(sprite.MoveCursor{Dir: sprite.Left}))
	assert.False(t, g.Apply(sprite.Resize{Dir: sprite.Up, Delta: -1}))
	assert.False(t, g.Apply(sprite.DeleteFrame{}))
	assert.False(t, g.Apply(sprite.CycleFrame{Delta: 1}))
	assert.False(t, g.Apply(sprite.SetGlyph{Glyph: ' '}))
	assert.False(t, g.Apply(sprite.ClearCell{}))
}

func TestCommandStrings(t *testing.T) {
	assert.Equal(t, "resize up +1", sprite.Resize{Dir: sprite.Up, Delta: 1}.String())
	assert.Equal(t, "resize left -1", sprite.Resize{Dir: sprite.Left, Delta: -1}.String())
	assert.Equal(t, "cycle frame -1", sprite.CycleFrame{Delta: -1}.String())
	assert.Equal(t, "color dark red", sprite.SetColor{Color: sprite.DarkRed}.String())
	assert.Equal(t, `glyph 'x'`, sprite.SetGlyph{Glyph: 'x'}.String())
}
