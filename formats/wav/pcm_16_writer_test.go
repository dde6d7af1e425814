// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWriteWAV16_CorrectHeader(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 44100, []int16{100, 200, 300, 400}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	data := buf.Bytes()

	if len(data) != 44+8 {
		t.Fatalf("WAV file size = %d, want 52", len(data))
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"RIFF", string(data[0:4]), "RIFF"},
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), uint32(44)},
		{"WAVE", string(data[8:12]), "WAVE"},
		{"fmt", string(data[12:16]), "fmt "},
		{"fmt size", binary.LittleEndian.Uint32(data[16:20]), uint32(16)},
		{"format", binary.LittleEndian.Uint16(data[20:22]), uint16(1)},
		{"channels", binary.LittleEndian.Uint16(data[22:24]), uint16(1)},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), uint32(44100)},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), uint32(88200)},
		{"block align", binary.LittleEndian.Uint16(data[32:34]), uint16(2)},
		{"bits", binary.LittleEndian.Uint16(data[34:36]), uint16(16)},
		{"data", string(data[36:40]), "data"},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), uint32(8)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestWriteWAV16_ByteOrder(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, []int16{0x0102, -2}); err != nil {
		t.Fatal(err)
	}

	got := buf.Bytes()[44:]
	want := []byte{0x02, 0x01, 0xFE, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("sample bytes = % x, want % x", got, want)
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}
	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteWAV16_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{0, -1} {
		if err := WriteWAV16(new(bytes.Buffer), rate, []int16{1}); !errors.Is(err, ErrInvalidSampleRate) {
			t.Errorf("WriteWAV16(rate %d) error = %v, want ErrInvalidSampleRate", rate, err)
		}
	}
}

func TestWriteWAV16_LargeFile(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 100000)
	for i := range samples {
		samples[i] = int16(i)
	}
	data := encodeWAV(t, 500000, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	got := readAll(t, src)
	if len(got) != len(samples) {
		t.Fatalf("round trip read %d samples, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Fatalf("sample %d = %d, want %d", i, got[i], samples[i])
		}
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 500000)
	buf := new(bytes.Buffer)

	b.ReportAllocs()

	for b.Loop() {
		buf.Reset()
		_ = WriteWAV16(buf, 500000, samples)
	}
}
