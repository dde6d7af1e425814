// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer is a Source over samples already held in memory.
type Buffer struct {
	sampleRate int
	channels   int
	data       []int16
	pos        int
}

// NewBuffer wraps interleaved samples. data is not copied.
func NewBuffer(sampleRate, channels int, data []int16) *Buffer {
	return &Buffer{
		sampleRate: sampleRate,
		channels:   max(channels, 1),
		data:       data,
	}
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return b.channels }
func (b *Buffer) BufSize() int    { return 4096 }
func (b *Buffer) Close() error    { return nil }

// Samples returns the unread part of the buffer.
func (b *Buffer) Samples() []int16 { return b.data[b.pos:] }

func (b *Buffer) ReadSamples(dst []int16) (int, error) {
	if len(dst)%b.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}

	n := copy(dst, b.data[b.pos:])
	b.pos += n
	if b.pos >= len(b.data) {
		return n, io.EOF
	}
	return n, nil
}

// ReadAll drains src and returns every interleaved sample it produced,
// reading bufSize samples at a time. Reaching the end of the stream is not
// an error.
func ReadAll(src Source, bufSize int) ([]int16, error) {
	if bufSize <= 0 {
		return nil, ErrInvalidBufSize
	}
	if b, ok := src.(*Buffer); ok {
		out := make([]int16, len(b.Samples()))
		copy(out, b.Samples())
		b.pos = len(b.data)
		return out, nil
	}

	// keep whole frames per read
	if ch := src.Channels(); ch > 1 && bufSize%ch != 0 {
		bufSize += ch - bufSize%ch
	}

	var pcm16 []int16
	buf := make([]int16, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			pcm16 = append(pcm16, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			// a source that neither advances nor reports EOF would spin forever
			return nil, fmt.Errorf("%w", io.ErrNoProgress)
		}
	}

	return pcm16, nil
}
