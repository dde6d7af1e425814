// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/batzc/audio"
	"github.com/ik5/batzc/utils"
	"github.com/ik5/batzc/zc"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source quantizes the decoder's float output to 16-bit PCM.
type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32
	closer     io.Closer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return cap(s.frameBuf) }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *source) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if cap(s.frameBuf) < len(dst) {
		s.frameBuf = make([]float32, len(dst))
	}
	s.frameBuf = s.frameBuf[:len(dst)]

	// Read returns interleaved values, always whole frames. It can come
	// back empty at a page boundary before the stream ends.
	var n int
	var err error
	for n == 0 && err == nil {
		n, err = s.dec.Read(s.frameBuf)
	}
	utils.Float32sToInt16s(dst, s.frameBuf[:n])

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", zc.ErrFormat, ErrNotVorbisFile, err)
	}

	return newSource(dec, r), nil
}

func newSource(dec oggReader, r io.Reader) *source {
	s := &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   max(dec.Channels(), 1),
		frameBuf:   make([]float32, 4096),
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}
