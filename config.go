package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	DefaultWidth  int
	DefaultHeight int
	LogFile       string
}

// configFromFlags reads the editor settings from the command flags. Config
// file and environment values have already been copied onto unset flags by
// bindFlags.
func configFromFlags(flags *pflag.FlagSet) (*Config, error) {
	config := &Config{}

	var err error
	if config.DefaultWidth, err = flags.GetInt("width"); err != nil {
		return nil, err
	}
	if config.DefaultHeight, err = flags.GetInt("height"); err != nil {
		return nil, err
	}
	if config.Confirmations, err = flags.GetBool("confirm"); err != nil {
		return nil, err
	}
	if config.LogFile, err = flags.GetString("log-file"); err != nil {
		return nil, err
	}
	saveDir, err := flags.GetString("save-dir")
	if err != nil {
		return nil, err
	}
	config.SaveDirectory = expandPath(saveDir)

	return config, nil
}

func expandPath(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// SavePath resolves a bare output filename against SaveDirectory.
func (c *Config) SavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(c.SaveDirectory, filename)
}
