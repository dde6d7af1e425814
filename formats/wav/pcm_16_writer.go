// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const headerSize = 44

// ErrInvalidSampleRate is returned by WriteWAV16 for a rate that does not
// fit the header.
var ErrInvalidSampleRate = errors.New("invalid sample rate")

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. The canonical
// 44-byte header is written first, so w does not need to seek.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 || sampleRate > math.MaxUint32/2 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	const (
		numChannels   = 1
		bitsPerSample = 16
		blockAlign    = numChannels * bitsPerSample / 8
	)
	dataSize := uint32(len(samples) * blockAlign)

	header := make([]byte, 0, headerSize)
	header = append(header, "RIFF"...)
	header = binary.LittleEndian.AppendUint32(header, headerSize-8+dataSize)
	header = append(header, "WAVE"...)

	header = append(header, "fmt "...)
	header = binary.LittleEndian.AppendUint32(header, 16) // PCM fmt chunk size
	header = binary.LittleEndian.AppendUint16(header, wavFormatPCM)
	header = binary.LittleEndian.AppendUint16(header, numChannels)
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate))
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate)*blockAlign)
	header = binary.LittleEndian.AppendUint16(header, blockAlign)
	header = binary.LittleEndian.AppendUint16(header, bitsPerSample)

	header = append(header, "data"...)
	header = binary.LittleEndian.AppendUint32(header, dataSize)

	bw := bufio.NewWriterSize(w, 8192)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	var b [2]byte
	for _, s := range samples {
		binary.LittleEndian.PutUint16(b[:], uint16(s))
		if _, err := bw.Write(b[:]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
