// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/batzc/audio"
	"github.com/ik5/batzc/zc"
)

// Helper function to create a minimal WAV file with an arbitrary fmt chunk
func createWAVFile(format, channels, sampleRate, bitsPerSample int, data []byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := uint16(channels * bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(format))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

func encodeWAV(t testing.TB, sampleRate int, samples []int16) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, sampleRate, samples); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func readAll(t *testing.T, src audio.Source) []int16 {
	t.Helper()

	samples, err := audio.ReadAll(src, 3)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return samples
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0, 32767, -32768}
	src, err := Decoder{}.Decode(bytes.NewReader(encodeWAV(t, 384000, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	defer src.Close()

	if src.SampleRate() != 384000 {
		t.Errorf("SampleRate() = %d, want 384000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	if got := readAll(t, src); !slices.Equal(got, samples) {
		t.Errorf("samples = %v, want %v", got, samples)
	}
}

func TestDecoder_PlainReader(t *testing.T) {
	t.Parallel()

	samples := []int16{5, -5, 5, -5}
	// io.MultiReader hides Seek, forcing the in-memory path
	r := io.MultiReader(bytes.NewReader(encodeWAV(t, 44100, samples)))

	src, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := readAll(t, src); !slices.Equal(got, samples) {
		t.Errorf("samples = %v, want %v", got, samples)
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	data := make([]byte, 0, 12)
	for _, s := range []int16{100, 200, 300, 400, 500, 600} {
		data = binary.LittleEndian.AppendUint16(data, uint16(s))
	}

	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(1, 2, 44100, 16, data)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if got := readAll(t, src); len(got) != 6 {
		t.Errorf("read %d samples, want 6", len(got))
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		sentinel error
		category error
	}{
		{"not riff", []byte("NOT A WAV FILE DATA"), ErrNotWavFile, zc.ErrFormat},
		{"truncated", []byte("RIF"), ErrNotWavFile, zc.ErrFormat},
		{"24 bit", createWAVFile(1, 1, 44100, 24, make([]byte, 6)), ErrOnlyPCM16bitSupported, zc.ErrConfig},
		{"8 bit", createWAVFile(1, 1, 44100, 8, make([]byte, 4)), ErrOnlyPCM16bitSupported, zc.ErrConfig},
		{"float", createWAVFile(3, 1, 44100, 32, make([]byte, 8)), ErrUnsupportedWavLayout, zc.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.sentinel) || !errors.Is(err, tt.category) {
				t.Errorf("Decode() error = %v, want %v and %v", err, tt.sentinel, tt.category)
			}
		})
	}
}

type closeTracker struct {
	*bytes.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	r := &closeTracker{Reader: bytes.NewReader(encodeWAV(t, 8000, []int16{1, 2}))}
	src, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatal(err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !r.closed {
		t.Error("Close() did not close the underlying reader")
	}
}

func TestDecoder_VariousSampleRates(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{22050, 44100, 48000, 192000, 250000, 500000} {
		src, err := Decoder{}.Decode(bytes.NewReader(encodeWAV(t, rate, []int16{1, -1})))
		if err != nil {
			t.Fatalf("Decode(%d Hz) error = %v", rate, err)
		}
		if src.SampleRate() != rate {
			t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), rate)
		}
	}
}

func BenchmarkDecoder_ReadAll(b *testing.B) {
	samples := make([]int16, 500000)
	for i := range samples {
		samples[i] = int16(i%64 - 32)
	}
	data := encodeWAV(b, 500000, samples)

	b.ReportAllocs()

	for b.Loop() {
		src, _ := Decoder{}.Decode(bytes.NewReader(data))
		_, _ = audio.ReadAll(src, src.BufSize())
	}
}
