// SPDX-License-Identifier: EPL-2.0

// zcant inspects and converts bat echolocation recordings.
//
//	zcant info R7122036.45# 20170712_203645.wav
//	zcant convert --divratio 8 --hpf 20 night1/*.wav
//	zcant te 20170712_203645.wav slow.wav
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ik5/batzc/config"
)

// Rotating log file limits.
const (
	logMaxSizeMB  = 2
	logMaxBackups = 9
)

type globalFlags struct {
	verbose    bool
	logFile    string
	configPath string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "zcant",
		Short: "Inspect and convert bat echolocation recordings",
		Long: `zcant reads Anabat zero-cross sequence files and full-spectrum recordings
(.wav, .aif, .aiff, .ogg) as zero-cross signals.

Full-spectrum recordings at or below 48 kHz are taken as 10x time expanded.
Conversion parameters come from the preferences file and can be overridden
per run with flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd.ErrOrStderr(), g)
		},
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log stage timings and decode details")
	root.PersistentFlags().StringVar(&g.logFile, "log-file", "", "also log to this file, rotated at 2 MB")
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "preferences file (default ~/.myotisoft/zcant.json)")

	root.AddCommand(newInfoCmd(g), newConvertCmd(g), newTECmd())
	return root
}

func setupLogging(stderr io.Writer, g *globalFlags) error {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}

	w := stderr
	if g.logFile != "" {
		w = io.MultiWriter(stderr, &lumberjack.Logger{
			Filename:   g.logFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
		})
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

func loadPreferences(g *globalFlags) (config.Preferences, error) {
	path := g.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			// no home directory
			return config.Defaults(), nil
		}
		path = p
	}
	return config.Load(path)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
