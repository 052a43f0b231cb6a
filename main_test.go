package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"byofish/asset"
	"byofish/logging"
	"byofish/sprite"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()

	dir := t.TempDir()
	config := &Config{SaveDirectory: dir, Confirmations: true, DefaultWidth: 3, DefaultHeight: 2}
	m := newModel(sprite.New(sprite.Size{Width: 3, Height: 2}), filepath.Join(dir, "fish.json"), config,
		logging.New(io.Discard, slog.LevelDebug))
	m.copyText = func(string) error { return errors.New("no clipboard in tests") }
	return m
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()

	var next tea.Model = m
	var cmd tea.Cmd
	for _, key := range keys {
		next, cmd = next.Update(key)
	}
	updated, ok := next.(model)
	require.True(t, ok)
	return updated, cmd
}

func typeText(s string) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, runeKey(r))
	}
	return keys
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPaintAndSave(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, runeKey('@'), tea.KeyMsg{Type: tea.KeyRight}, runeKey('#'))
	assert.True(t, m.modified)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.modified)
	assert.Empty(t, m.errorMessage)
	assert.Equal(t, "Saved fish.json", m.successMessage)

	loaded, err := asset.Load(m.filename)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"@# ", "   "}}, loaded.Export().Forward.Symbols)
}

func TestModeCycle(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, ModeGlyph, m.mode)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModeColor, m.mode)
	m, _ = press(t, m, runeKey('r'))
	assert.Equal(t, sprite.Cell{Glyph: ' ', Foreground: sprite.Red}, m.grid.CurrentCell())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModeHighlight, m.mode)
	m, _ = press(t, m, runeKey('B'))
	assert.Equal(t, sprite.Cell{Glyph: ' ', Foreground: sprite.Red, Background: sprite.DarkBlue}, m.grid.CurrentCell())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModeGlyph, m.mode)
}

func TestNavigationDoesNotModify(t *testing.T) {
	m := newTestModel(t)
	m.grid.AddFrame()

	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyPgUp})
	assert.False(t, m.modified)
	assert.Equal(t, sprite.Position{X: 1, Y: 1}, m.grid.Cursor())
	assert.Equal(t, 1, m.grid.CurrentFrameIndex())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlLeft})
	assert.True(t, m.modified)
	assert.Equal(t, sprite.Size{Width: 4, Height: 2}, m.grid.Size())
	assert.Equal(t, sprite.Position{X: 2, Y: 1}, m.grid.Cursor())
}

func TestQuit(t *testing.T) {
	t.Run("clean sprite quits at once", func(t *testing.T) {
		m := newTestModel(t)
		_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		assert.True(t, isQuit(cmd))
	})

	t.Run("unsaved changes ask first", func(t *testing.T) {
		m := newTestModel(t)
		m, _ = press(t, m, runeKey('x'), tea.KeyMsg{Type: tea.KeyEsc})
		assert.Equal(t, ModeConfirm, m.mode)
		assert.Equal(t, ConfirmQuit, m.confirmAction)

		m, cmd := press(t, m, runeKey('n'))
		assert.False(t, isQuit(cmd))
		assert.Equal(t, ModeGlyph, m.mode)

		_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}, runeKey('y'))
		assert.True(t, isQuit(cmd))
	})

	t.Run("confirmations disabled", func(t *testing.T) {
		m := newTestModel(t)
		m.config.Confirmations = false
		_, cmd := press(t, m, runeKey('x'), tea.KeyMsg{Type: tea.KeyEsc})
		assert.True(t, isQuit(cmd))
	})
}

func TestExportPNG(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, ModeFileInput, m.mode)
	assert.Equal(t, "fish.png", m.fileInput)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "fish", m.fileInput)
	m, _ = press(t, m, typeText("-sheet")...)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeGlyph, m.mode)
	assert.Empty(t, m.errorMessage)
	assert.Equal(t, "Wrote fish-sheet.png", m.successMessage)
	_, err := os.Stat(filepath.Join(m.config.SaveDirectory, "fish-sheet.png"))
	assert.NoError(t, err)
}

func TestSaveAsOverwrite(t *testing.T) {
	m := newTestModel(t)
	existing := filepath.Join(m.config.SaveDirectory, "other.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0o644))

	m, _ = press(t, m, runeKey('q'), tea.KeyMsg{Type: tea.KeyCtrlW})
	m.fileInput = "other"
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, ConfirmOverwriteFile, m.confirmAction)

	m, _ = press(t, m, runeKey('n'))
	assert.Equal(t, ModeFileInput, m.mode)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('y'))
	assert.Equal(t, ModeGlyph, m.mode)
	assert.Equal(t, existing, m.filename)
	assert.False(t, m.modified)

	loaded, err := asset.Load(existing)
	require.NoError(t, err)
	assert.Equal(t, 'q', loaded.CurrentCell().Glyph)
}

func TestFileInputCancel(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyCtrlP}, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeColor, m.mode)
	assert.Empty(t, m.fileInput)
}

func TestCopyExport(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Contains(t, m.errorMessage, "clipboard unavailable")

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	m, _ = press(t, m, runeKey('Z'), tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Empty(t, m.errorMessage)
	assert.Contains(t, copied, `"forward_animation"`)
	assert.Contains(t, copied, `"Z  "`)
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyInsert}, runeKey('k'))

	view := m.View()
	assert.Contains(t, view, "0[*]")
	assert.Contains(t, view, "1[ ]")
	assert.Contains(t, view, "Mode: GLYPH")
	assert.Contains(t, view, "fish.json*")
	assert.Contains(t, view, "3x2")
	assert.Contains(t, view, "Frame 1/2")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Contains(t, m.View(), "byofish Help")
	m, _ = press(t, m, runeKey('x'))
	assert.False(t, m.help)
	assert.Equal(t, 'k', m.grid.CurrentCell().Glyph, "closing help must not paint")
}
