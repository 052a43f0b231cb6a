package main

import (
	"context"
	"log/slog"

	"byofish/sprite"
)

type model struct {
	width  int
	height int

	grid     *sprite.Grid
	filename string
	modified bool

	mode      Mode
	paintMode Mode // mode to return to from file input and confirm
	help      bool

	fileOp        FileOperation
	fileInput     string
	confirmAction ConfirmAction
	pendingPath   string

	errorMessage   string
	successMessage string

	config    *Config
	logger    *slog.Logger
	ctx       context.Context
	copyText  func(string) error
	fileExist func(string) bool
}
