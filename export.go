package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"byofish/asset"
	"byofish/logging"
)

func (m *model) saveAsset(path string) error {
	if err := asset.Save(path, m.grid); err != nil {
		return err
	}
	m.filename = path
	m.modified = false
	m.logger.InfoContext(logging.AppendCtx(m.ctx, slog.String(logging.FileName, path)), "saved asset",
		"frames", m.grid.FrameCount())
	return nil
}

func (m *model) exportPNG(path string) error {
	if err := asset.SavePNG(path, m.grid, asset.DefaultSheetOptions()); err != nil {
		return err
	}
	m.logger.InfoContext(logging.AppendCtx(m.ctx, slog.String(logging.FileName, path)), "exported sheet")
	return nil
}

// copyExport puts the JSON export of the grid on the system clipboard.
func (m *model) copyExport() error {
	var buf bytes.Buffer
	if err := asset.Encode(&buf, m.grid.Export()); err != nil {
		return err
	}
	if err := m.copyText(buf.String()); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	return nil
}

// outputPath resolves what the user typed in the file prompt to a path with
// the extension of the operation.
func (m *model) outputPath(name string, op FileOperation) string {
	name = strings.TrimSpace(name)
	ext := jsonExt
	if op == FileOpSavePNG {
		ext = pngExt
	}
	if !strings.EqualFold(filepath.Ext(name), ext) {
		name += ext
	}
	return m.config.SavePath(name)
}

// defaultOutputName suggests a filename for op based on the asset name.
func (m *model) defaultOutputName(op FileOperation) string {
	base := strings.TrimSuffix(filepath.Base(m.filename), filepath.Ext(m.filename))
	if op == FileOpSavePNG {
		return base + pngExt
	}
	return base + jsonExt
}
