package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"byofish/asset"
	"byofish/logging"
	"byofish/sprite"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the editor when called with an asset file.
var rootCmd = &cobra.Command{
	Use:   "byofish FILE",
	Short: "Create assets for freefish!",
	Long: `byofish is a terminal editor for small animated glyph sprites.
Paint characters and colors on a grid, add and cycle frames, resize the
canvas and save the result as the JSON asset format the game loads.`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: bindFlags,
	SilenceUsage:     true,
	SilenceErrors:    true,
	RunE:             runEditor,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.byofish.toml)")

	addEditorFlags(rootCmd.Flags())
}

func addEditorFlags(flags *pflag.FlagSet) {
	flags.Int("width", 8, "Width of a new asset")
	flags.Int("height", 4, "Height of a new asset")
	flags.String("save-dir", "", "Directory for relative save-as and export paths")
	flags.String("log-file", "", "Write debug logs to this file")
	flags.Bool("confirm", true, "Ask before quitting with unsaved changes")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".byofish")
	}
	viper.SetEnvPrefix("byofish")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			fmt.Fprintf(os.Stderr, "error: could not read config file: %s\n", err)
			os.Exit(1)
		}
	}
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	if err := applyConfig(viper.GetViper(), cmd.Flags()); err != nil {
		cobra.CheckErr(err)
	}
}

func applyConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	var firstErr error
	flags.VisitAll(func(f *pflag.Flag) {
		// Config keys drop the hyphens: save-dir is savedir.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)
			if err := flags.Set(f.Name, fmt.Sprintf("%v", val)); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("invalid config value for %s: %w", configName, err)
			}
		}
	})
	return firstErr
}

func runEditor(cmd *cobra.Command, args []string) error {
	config, err := configFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(config.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	path := args[0]
	grid, err := openAsset(path, config)
	if err != nil {
		return err
	}

	logger.InfoContext(logging.PackageCtx("main"), "editing asset",
		logging.FileName, path,
		"frames", grid.FrameCount(),
		"width", grid.Size().Width,
		"height", grid.Size().Height)

	p := tea.NewProgram(newModel(grid, path, config, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor stopped: %w", err)
	}
	return nil
}

// openAsset loads path, or starts a blank sprite when the file does not
// exist yet.
func openAsset(path string, config *Config) (*sprite.Grid, error) {
	grid, err := asset.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return sprite.New(sprite.Size{Width: config.DefaultWidth, Height: config.DefaultHeight}), nil
	}
	return grid, err
}

func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return logging.New(io.Discard, slog.LevelInfo), func() {}, nil
	}
	f, err := tea.LogToFile(path, "byofish")
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}
	logger := logging.New(f, slog.LevelDebug)
	slog.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}
