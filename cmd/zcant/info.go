// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/batzc"
	"github.com/ik5/batzc/zc"
)

func newInfoCmd(g *globalFlags) *cobra.Command {
	var anabatHPF float64

	cmd := &cobra.Command{
		Use:   "info FILE...",
		Short: "Summarize recordings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := loadPreferences(g)
			if err != nil {
				return err
			}
			l := batzc.Loader{
				Options:          prefs.ConvertOptions(),
				AnabatHighPassHz: anabatHPF * 1000,
				Logger:           slog.Default(),
			}

			var failed int
			for _, path := range args {
				z, err := l.Load(path)
				if err != nil {
					slog.Error("loading failed", "path", path, "error", err)
					failed++
					continue
				}
				printInfo(cmd.OutOrStdout(), z)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&anabatHPF, "anabat-hpf", 8, "drop Anabat dots at or below this frequency in kHz (0 keeps all)")
	return cmd
}

func printInfo(w io.Writer, z *zc.ZeroCross) {
	md := z.Metadata
	lo, hi := zc.MinMax(z.Freqs)

	fmt.Fprintf(w, "%s\n", md.Filename)
	fmt.Fprintf(w, "  dots:       %d\n", z.Len())
	fmt.Fprintf(w, "  duration:   %.3f s\n", z.Duration())
	fmt.Fprintf(w, "  frequency:  %.1f - %.1f kHz\n", lo/1000, hi/1000)
	fmt.Fprintf(w, "  divratio:   %d\n", md.DivRatio)
	fmt.Fprintf(w, "  amplitudes: %t\n", z.SupportsAmplitude())
	if md.HasTimestamp() {
		fmt.Fprintf(w, "  timestamp:  %s\n", md.Timestamp.Format("2006-01-02 15:04:05.000000"))
	}
	if len(md.Species) > 0 {
		fmt.Fprintf(w, "  species:    %s\n", strings.Join(md.Species, ", "))
	}
	for _, field := range []struct{ name, value string }{
		{"tape", md.Tape},
		{"location", md.Location},
		{"note1", md.Note1},
		{"note2", md.Note2},
	} {
		if field.value != "" {
			fmt.Fprintf(w, "  %-11s %s\n", field.name+":", field.value)
		}
	}
	for _, d := range z.Diagnostics {
		fmt.Fprintf(w, "  warning:    %v\n", d)
	}
}
