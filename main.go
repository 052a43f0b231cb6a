package main

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	Execute()
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}

		switch m.mode {
		case ModeFileInput:
			return m.handleFileInput(msg)
		case ModeConfirm:
			return m.handleConfirm(msg)
		default:
			return m.handlePaint(msg)
		}
	}
	return m, nil
}

func (m model) handlePaint(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		if m.modified && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "tab":
		m.paintMode = m.nextPaintMode()
		m.mode = m.paintMode
		m.clearMessages()
		return m, nil
	case "f1":
		m.help = true
		return m, nil
	case "ctrl+s":
		if err := m.saveAsset(m.filename); err != nil {
			m.setError(err)
		} else {
			m.setSuccess("Saved " + filepath.Base(m.filename))
		}
		return m, nil
	case "ctrl+w":
		m.startFileInput(FileOpSaveAs)
		return m, nil
	case "ctrl+p":
		m.startFileInput(FileOpSavePNG)
		return m, nil
	case "ctrl+y":
		if err := m.copyExport(); err != nil {
			m.setError(err)
		} else {
			m.setSuccess("Copied export to clipboard")
		}
		return m, nil
	}

	if cmd := decodeKey(msg, m.mode); cmd != nil {
		m.clearMessages()
		m.applyCommand(cmd)
	}
	return m, nil
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.fileInput = m.defaultOutputName(op)
	m.clearMessages()
}

func (m model) handleFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = m.paintMode
		m.fileInput = ""
		m.clearMessages()
		return m, nil
	case tea.KeyEnter:
		if strings.TrimSpace(m.fileInput) == "" {
			m.errorMessage = "Filename cannot be empty"
			return m, nil
		}
		path := m.outputPath(m.fileInput, m.fileOp)
		if m.config.Confirmations && m.fileExist(path) && path != m.filename {
			m.pendingPath = path
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
		m.writeOutput(path)
		return m, nil
	case tea.KeyBackspace:
		if len(m.fileInput) > 0 {
			runes := []rune(m.fileInput)
			m.fileInput = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.fileInput += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

// writeOutput performs the pending file operation and returns to painting.
// On failure the prompt stays open so the name can be corrected.
func (m *model) writeOutput(path string) {
	var err error
	switch m.fileOp {
	case FileOpSaveAs:
		err = m.saveAsset(path)
	case FileOpSavePNG:
		err = m.exportPNG(path)
	}
	if err != nil {
		m.mode = ModeFileInput
		m.setError(err)
		return
	}
	m.mode = m.paintMode
	m.fileInput = ""
	m.pendingPath = ""
	m.setSuccess("Wrote " + filepath.Base(path))
}

func (m model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.writeOutput(m.pendingPath)
		}
		return m, nil
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		} else {
			m.mode = m.paintMode
		}
		m.pendingPath = ""
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(renderFrameIndicator(m.grid.CurrentFrameIndex(), m.grid.FrameCount()))
	result.WriteString("\n")
	result.WriteString(renderCanvas(m.grid))
	result.WriteString("\n")
	result.WriteString(renderColorGuide())
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	var statusLine string
	switch m.mode {
	case ModeFileInput:
		opStr := "Save as"
		if m.fileOp == FileOpSavePNG {
			opStr = "Export PNG"
		}
		statusLine = fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", opStr, m.fileInput)
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit with unsaved changes? (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", filepath.Base(m.pendingPath))
		}
		statusLine = fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		size := m.grid.Size()
		cursor := m.grid.Cursor()
		name := filepath.Base(m.filename)
		if m.modified {
			name += "*"
		}
		statusLine = fmt.Sprintf("Mode: %s | %s | %dx%d | Frame %d/%d | Cursor: (%d,%d)",
			m.modeString(), name, size.Width, size.Height,
			m.grid.CurrentFrameIndex()+1, m.grid.FrameCount(), cursor.X, cursor.Y)
		if m.successMessage == "" && m.errorMessage == "" {
			statusLine += " | F1 for help | Esc to quit"
		}
	}

	statusLine = statusStyle.Render(statusLine)
	if m.errorMessage != "" {
		statusLine += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage != "" {
		statusLine += " | " + successStyle.Render(m.successMessage)
	}
	return statusLine
}

func (m model) modeString() string {
	switch m.mode {
	case ModeGlyph:
		return "GLYPH"
	case ModeColor:
		return "COLOR"
	case ModeHighlight:
		return "HIGHLIGHT"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"byofish Help",
		"============",
		"",
		"Cursor:",
		"-------",
		"  ←/↓/↑/→          Move cursor",
		"  h/j/k/l          Move cursor (color and highlight modes)",
		"",
		"Canvas:",
		"-------",
		"  Ctrl+←/↓/↑/→     Grow canvas by one at that edge",
		"  Shift+←/↓/↑/→    Shrink canvas by one at that edge",
		"",
		"Frames:",
		"-------",
		"  Insert           Insert blank frame before the current one",
		"  Delete           Delete current frame",
		"  Ctrl+D           Duplicate current frame",
		"  PgUp/PgDn        Next/previous frame",
		"",
		"Painting:",
		"---------",
		"  Tab              Cycle glyph / color / highlight mode",
		"  any character    Set glyph (glyph mode)",
		"  a r g y b m c w  Light colors (color and highlight modes)",
		"  A R G Y B M C W  Dark colors (color and highlight modes)",
		"  Space            Clear color (color and highlight modes)",
		"  Backspace        Clear cell",
		"",
		"Files:",
		"------",
		"  Ctrl+S           Save asset",
		"  Ctrl+W           Save asset as",
		"  Ctrl+P           Export PNG sprite sheet",
		"  Ctrl+Y           Copy asset JSON to clipboard",
		"",
		"  Esc/Ctrl+C       Quit",
		"",
		"Press any key to return",
	}
	return strings.Join(helpLines, "\n")
}
