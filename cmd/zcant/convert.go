// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ik5/batzc"
	"github.com/ik5/batzc/config"
	"github.com/ik5/batzc/convert"
)

type convertFlags struct {
	divRatio      int
	hpfKHz        float64
	threshold     float64
	interpolation bool
	brickwall     bool
	noAmplitudes  bool
	outDir        string
	save          bool
}

func (f *convertFlags) register(fs *pflag.FlagSet) {
	d := config.Defaults()
	fs.IntVar(&f.divRatio, "divratio", d.DivRatio, "frequency division ratio (4, 8, 10, 16 or 32)")
	fs.Float64Var(&f.hpfKHz, "hpf", d.HighPassKHz, "high-pass cutoff in kHz, 0 removes the DC offset only")
	fs.Float64Var(&f.threshold, "threshold", d.ThresholdFactor, "noise gate threshold as a multiple of the amplitude RMS, 0 disables")
	fs.BoolVar(&f.interpolation, "interpolation", d.Interpolation, "interpolate zero-crossing positions")
	fs.BoolVar(&f.brickwall, "brickwall", d.BrickwallHPF, "drop dots at or below the cutoff")
	fs.BoolVar(&f.noAmplitudes, "no-amplitudes", false, "skip amplitude extraction (requires --threshold 0)")
	fs.StringVarP(&f.outDir, "output", "o", "", "write converted files here instead of next to each source")
	fs.BoolVar(&f.save, "save-preferences", false, "store the effective parameters in the preferences file")
}

// apply overrides prefs with every flag set on the command line.
func (f *convertFlags) apply(fs *pflag.FlagSet, prefs config.Preferences) config.Preferences {
	if fs.Changed("divratio") {
		prefs.DivRatio = f.divRatio
	}
	if fs.Changed("hpf") {
		prefs.HighPassKHz = f.hpfKHz
	}
	if fs.Changed("threshold") {
		prefs.ThresholdFactor = f.threshold
	}
	if fs.Changed("interpolation") {
		prefs.Interpolation = f.interpolation
	}
	if fs.Changed("brickwall") {
		prefs.BrickwallHPF = f.brickwall
	}
	return prefs
}

func (f *convertFlags) outputPath(src string) string {
	out := batzc.OutputPath(src)
	if f.outDir != "" {
		out = filepath.Join(f.outDir, filepath.Base(out))
	}
	return out
}

func newConvertCmd(g *globalFlags) *cobra.Command {
	f := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Convert full-spectrum recordings to Anabat files",
		Long: `convert runs each recording through the zero-cross pipeline and writes an
Anabat version 132 file to _ZCANT_Converted/ next to it. Amplitudes are
embedded as GUANO metadata.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := loadPreferences(g)
			if err != nil {
				return err
			}
			prefs = f.apply(cmd.Flags(), prefs)

			opts := prefs.ConvertOptions()
			opts.NoAmplitudes = f.noAmplitudes
			opts.Logger = slog.Default()
			if err := opts.Validate(); err != nil {
				return err
			}

			if f.save {
				path := g.configPath
				if path == "" {
					if path, err = config.DefaultPath(); err != nil {
						return err
					}
				}
				if err := prefs.Save(path); err != nil {
					return err
				}
			}

			return convertAll(cmd, args, opts, f)
		},
	}

	f.register(cmd.Flags())
	return cmd
}

func convertAll(cmd *cobra.Command, paths []string, opts convert.Options, f *convertFlags) error {
	l := batzc.Loader{Options: opts, Logger: opts.Logger}

	var failed int
	for _, src := range paths {
		if batzc.IsAnabat(src) {
			slog.Warn("skipping Anabat file", "path", src)
			continue
		}

		out := f.outputPath(src)
		if err := convertOne(l, src, out); err != nil {
			slog.Error("conversion failed", "path", src, "error", err)
			failed++
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

func convertOne(l batzc.Loader, src, out string) error {
	z, err := l.Load(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("%w", err)
	}
	return batzc.Save(z, out)
}
