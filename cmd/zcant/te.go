// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ik5/batzc"
	"github.com/ik5/batzc/audio"
	"github.com/ik5/batzc/formats/wav"
	"github.com/ik5/batzc/zc"
)

var (
	errInvalidFactor = errors.New("time expansion factor must be at least 1")
	errSlowRate      = errors.New("time expanded sample rate below 1 Hz")
)

func newTECmd() *cobra.Command {
	var factor int

	cmd := &cobra.Command{
		Use:   "te INPUT OUTPUT.wav",
		Short: "Write a time expanded copy of a full-spectrum recording",
		Long: `te slows a full-spectrum recording down by the given factor so that
ultrasonic calls become audible. The samples are kept as they are and only
the declared sample rate of the output file is divided.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, rate, err := timeExpand(args[0], args[1], factor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples at %d Hz\n", args[1], n, rate)
			return nil
		},
	}

	cmd.Flags().IntVarP(&factor, "factor", "x", 10, "time expansion factor")
	return cmd
}

func timeExpand(inPath, outPath string, factor int) (int, int, error) {
	if factor < 1 {
		return 0, 0, fmt.Errorf("%w: %w: %d", zc.ErrConfig, errInvalidFactor, factor)
	}

	dec, ok := batzc.DefaultRegistry().Lookup(inPath)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %w: %q", zc.ErrConfig, batzc.ErrUnknownFileType, filepath.Ext(inPath))
	}

	in, err := os.Open(inPath)
	if err != nil {
		return 0, 0, fmt.Errorf("%w", err)
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return 0, 0, err
	}
	defer src.Close()

	if src.Channels() != 1 {
		return 0, 0, fmt.Errorf("%w: %d channels, want mono", zc.ErrConfig, src.Channels())
	}

	samples, err := audio.ReadAll(src, src.BufSize())
	if err != nil {
		return 0, 0, err
	}

	rate := src.SampleRate() / factor
	if rate < 1 {
		return 0, 0, fmt.Errorf("%w: %w: %d / %d", zc.ErrConfig, errSlowRate, src.SampleRate(), factor)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, 0, fmt.Errorf("%w", err)
	}
	if err := wav.WriteWAV16(out, rate, samples); err != nil {
		out.Close()
		return 0, 0, err
	}
	if err := out.Close(); err != nil {
		return 0, 0, fmt.Errorf("%w", err)
	}

	slog.Debug("time expanded", "input", inPath, "factor", factor, "rate", rate, "samples", len(samples))
	return len(samples), rate, nil
}
