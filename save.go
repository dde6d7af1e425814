// SPDX-License-Identifier: EPL-2.0

package batzc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ik5/batzc/anabat"
	"github.com/ik5/batzc/guano"
	"github.com/ik5/batzc/zc"
)

// ConvertedDir is the directory, next to the source recording, where
// converted Anabat files are written.
const ConvertedDir = "_ZCANT_Converted"

const guanoTimestampLayout = "2006-01-02T15:04:05.999999"

// OutputPath is where the Anabat conversion of src is written:
// "<dir>/_ZCANT_Converted/<name>.zc".
func OutputPath(src string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(src), ConvertedDir, base+".zc")
}

// Save writes z to path as an Anabat version 132 file.
func Save(z *zc.ZeroCross, path string) error {
	w, err := anabat.Create(path)
	if err != nil {
		return err
	}
	if err := write(w, z); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Encode writes z to out as an Anabat version 132 file.
func Encode(out io.Writer, z *zc.ZeroCross) error {
	w := anabat.NewWriter(out)
	if err := write(w, z); err != nil {
		return err
	}
	return w.Close()
}

func write(w *anabat.Writer, z *zc.ZeroCross) error {
	log := slog.Default()

	if z.Len() > zc.MaxDots {
		log.Warn("writing more dots than an Anabat file nominally holds",
			"error", fmt.Errorf("%w: %d dots, limit %d", zc.ErrRange, z.Len(), zc.MaxDots))
	}

	h := anabat.HeaderFields{
		Timestamp: z.Metadata.Timestamp,
		DivRatio:  z.Metadata.DivRatio,
		Tape:      z.Metadata.Tape,
		Location:  z.Metadata.Location,
		Species:   strings.Join(z.Metadata.Species, ", "),
		Spec:      z.Metadata.Spec,
		Note1:     z.Metadata.Note1,
		Note2:     z.Metadata.Note2,
		ID:        z.Metadata.ID,
	}
	if z.SupportsAmplitude() {
		h.Metadata = guanoBlock(z)
	}

	err := w.WriteHeader(h)
	if errors.Is(err, anabat.ErrBlockTooLarge) {
		// the data pointer is 16 bits, long signals cannot carry amplitudes
		log.Warn("dropping amplitudes from the saved file", "dots", z.Len(), "error", err)
		h.Metadata = nil
		err = w.WriteHeader(h)
	}
	if err != nil {
		return err
	}
	return w.WriteIntervals(zc.Intervals(z.Times))
}

func guanoBlock(z *zc.ZeroCross) []byte {
	g := guano.New()
	if z.Metadata.HasTimestamp() {
		g.Set("Timestamp", z.Metadata.Timestamp.Format(guanoTimestampLayout))
	}
	if z.Metadata.Filename != "" {
		g.Set("Original Filename", z.Metadata.Filename)
	}
	g.Set(guano.AmplitudesKey, guano.EncodeFloat64s(z.Amplitudes))
	return g.Bytes()
}
