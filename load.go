// SPDX-License-Identifier: EPL-2.0

package batzc

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/batzc/anabat"
	"github.com/ik5/batzc/audio"
	"github.com/ik5/batzc/convert"
	"github.com/ik5/batzc/formats/aiff"
	"github.com/ik5/batzc/formats/vorbis"
	"github.com/ik5/batzc/formats/wav"
	"github.com/ik5/batzc/zc"
)

// DefaultRegistry maps the full-spectrum extensions to their decoders.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

// IsAnabat reports whether path names an Anabat sequence file.
func IsAnabat(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zc") || strings.HasSuffix(path, "#")
}

// Loader reads recordings of any supported type.
type Loader struct {
	// Options drive the conversion of full-spectrum recordings.
	Options convert.Options

	// AnabatHighPassHz drops Anabat dots at or below this frequency.
	// 0 keeps every dot.
	AnabatHighPassHz float64

	// Registry resolves full-spectrum decoders. nil uses DefaultRegistry.
	Registry *audio.Registry

	Logger *slog.Logger
}

// Load reads path with the default conversion options.
func Load(path string) (*zc.ZeroCross, error) {
	return Loader{Options: convert.DefaultOptions()}.Load(path)
}

func (l Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// Load decodes an Anabat file or converts a full-spectrum recording,
// recording path and file name in the metadata.
func (l Loader) Load(path string) (*zc.ZeroCross, error) {
	var (
		z   *zc.ZeroCross
		err error
	)
	if IsAnabat(path) {
		z, err = anabat.Decoder{HighPassHz: l.AnabatHighPassHz, Logger: l.logger()}.DecodeFile(path)
	} else {
		z, err = l.convertFile(path)
	}
	if err != nil {
		return nil, err
	}

	z.Metadata.Path = path
	z.Metadata.Filename = filepath.Base(path)
	return z, nil
}

func (l Loader) convertFile(path string) (*zc.ZeroCross, error) {
	reg := l.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	dec, ok := reg.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", zc.ErrConfig, ErrUnknownFileType, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recording: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	defer src.Close()

	opts := l.Options
	if opts.Logger == nil {
		opts.Logger = l.logger()
	}
	return convert.Convert(src, path, opts)
}
