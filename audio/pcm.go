// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// PCMReader is implemented by the go-audio container decoders (wav, aiff).
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// pcmSource streams 16-bit integer samples out of a go-audio decoder.
type pcmSource struct {
	dec        PCMReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
	closer     io.Closer
	done       bool
}

// NewPCMSource wraps a go-audio decoder whose stream holds 16-bit samples.
// closer may be nil.
func NewPCMSource(dec PCMReader, sampleRate, channels int, closer io.Closer) Source {
	return &pcmSource{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
		closer:     closer,
	}
}

func (s *pcmSource) SampleRate() int { return s.sampleRate }
func (s *pcmSource) Channels() int   { return s.channels }

func (s *pcmSource) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *pcmSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *pcmSource) ReadSamples(dst []int16) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data: make([]int, len(dst)),
			Format: &goaudio.Format{
				NumChannels: s.channels,
				SampleRate:  s.sampleRate,
			},
			SourceBitDepth: 16,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	for i := range n {
		dst[i] = int16(s.intBuf.Data[i])
	}

	switch {
	case err == io.EOF || (err == nil && n == 0):
		// go-audio reports the end of the PCM chunk as a zero count
		s.done = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}
