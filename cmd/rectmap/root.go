package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rectmap/internal/config"
	"rectmap/internal/geom"
	"rectmap/internal/logger"
)

var (
	cfgPath  string
	logLevel string
	logFile  string
	workers  int

	cfg       = config.Default()
	log       *logrus.Logger
	logCloser io.Closer
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rectmap",
	Short: "Find the largest rectangle spanned by two vertices of a rectilinear loop",
	Long: `rectmap reads a closed rectilinear loop ("col,row" per line, CSV, WKT,
GeoJSON or KML) and reports the largest axis-aligned rectangle whose opposite
corners are loop vertices, with or without the constraint that the rectangle
stays inside the loop.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to a rectmap.yaml config file")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")
	pf.IntVar(&workers, "workers", 0, "goroutines used to enumerate vertex pairs")
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.Path = logFile
	}
	if flags.Changed("workers") {
		cfg.Search.Workers = workers
	}
	if err := config.Validate(&cfg); err != nil {
		return err
	}

	var err error
	log, logCloser, err = logger.New(cfg.Logging.Level, cfg.Logging.Path, cmd.ErrOrStderr())
	return err
}

// readLoop decodes the loop from the file argument, or from stdin as text.
func readLoop(cmd *cobra.Command, args []string) ([]geom.Point, string, error) {
	if len(args) > 0 {
		loop, err := geom.Load(args[0])
		return loop, args[0], err
	}
	loop, err := geom.ParseLoop(cmd.InOrStdin())
	if err != nil {
		return nil, "", err
	}
	return loop, "", nil
}
