// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/batzc/audio"
	"github.com/ik5/batzc/zc"
)

// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
const wavFormatPCM = 1

type Decoder struct{}

// Decode parses the RIFF headers and returns a Source positioned at the
// start of the data chunk. go-audio needs to seek, so a plain io.Reader is
// read into memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", zc.ErrFormat, ErrNotWavFile, err)
		}
		return nil, fmt.Errorf("%w: %w", zc.ErrFormat, ErrNotWavFile)
	}

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: %w: format tag %d", zc.ErrConfig, ErrUnsupportedWavLayout, dec.WavAudioFormat)
	}
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %w: %d-bit", zc.ErrConfig, ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", zc.ErrFormat, ErrNotWavFile, err)
	}

	var closer io.Closer
	if c, ok := r.(io.Closer); ok {
		closer = c
	}
	return audio.NewPCMSource(dec, int(dec.SampleRate), int(dec.NumChans), closer), nil
}
