package main

type Mode int

const (
	ModeGlyph Mode = iota
	ModeColor
	ModeHighlight
	ModeFileInput
	ModeConfirm
)

// paintModes are cycled with tab.
var paintModes = []Mode{ModeGlyph, ModeColor, ModeHighlight}

type FileOperation int

const (
	FileOpSaveAs FileOperation = iota
	FileOpSavePNG
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteFile
)

const (
	jsonExt = ".json"
	pngExt  = ".png"
)
