package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"byofish/logging"
	"byofish/sprite"
	"github.com/atotto/clipboard"
)

func newModel(grid *sprite.Grid, filename string, config *Config, logger *slog.Logger) model {
	return model{
		grid:      grid,
		filename:  filename,
		mode:      ModeGlyph,
		paintMode: ModeGlyph,
		config:    config,
		logger:    logger,
		ctx: logging.AppendCtx(logging.PackageCtx("editor"),
			slog.String(logging.FileName, filename)),
		copyText:  clipboard.WriteAll,
		fileExist: fileExists,
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) setError(err error) {
	m.successMessage = ""
	m.errorMessage = err.Error()
	m.logger.ErrorContext(m.ctx, "editor error", "error", err)
}

func (m *model) setSuccess(msg string) {
	m.errorMessage = ""
	m.successMessage = msg
}

// nextPaintMode returns the paint mode after the current one, wrapping.
func (m *model) nextPaintMode() Mode {
	for i, mode := range paintModes {
		if mode == m.paintMode {
			return paintModes[(i+1)%len(paintModes)]
		}
	}
	return ModeGlyph
}

// applyCommand runs one edit command and records whether it changed the
// saved content of the sprite. Cursor and frame navigation do not count.
func (m *model) applyCommand(cmd sprite.Command) {
	changed := m.grid.Apply(cmd)
	switch cmd.(type) {
	case sprite.MoveCursor, sprite.CycleFrame:
	default:
		if changed {
			m.modified = true
		}
	}
	m.logger.DebugContext(m.ctx, "applied command",
		"command", cmd.String(),
		"changed", changed,
		"frame", m.grid.CurrentFrameIndex(),
		"cursor_x", m.grid.Cursor().X,
		"cursor_y", m.grid.Cursor().Y)
}
