// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/batzc/internal/audiotest"
)

func TestBuffer_ReadSamples(t *testing.T) {
	t.Parallel()

	b := NewBuffer(500000, 1, []int16{1, 2, 3, 4, 5})

	dst := make([]int16, 2)
	var got []int16
	for {
		n, err := b.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}

	if !slices.Equal(got, []int16{1, 2, 3, 4, 5}) {
		t.Errorf("read %v", got)
	}
	if n, err := b.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, EOF", n, err)
	}
}

func TestBuffer_InvalidDstSize(t *testing.T) {
	t.Parallel()

	b := NewBuffer(44100, 2, []int16{1, 2, 3, 4})
	if _, err := b.ReadSamples(make([]int16, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples(3) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      Source
		bufSize  int
		expected int
	}{
		{"mono exact", audiotest.NewSineSource(48000, 1, 4096, 1000), 1024, 4096},
		{"mono partial", audiotest.NewSineSource(48000, 1, 5000, 1000), 4096, 5000},
		{"stereo odd buffer", audiotest.NewConstantSource(44100, 2, 100, 7), 33, 200},
		{"empty", audiotest.NewSilentSource(44100, 1, 0), 16, 0},
		{"buffer", NewBuffer(8000, 1, make([]int16, 10)), 3, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReadAll(tt.src, tt.bufSize)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != tt.expected {
				t.Errorf("ReadAll() got %d samples, want %d", len(got), tt.expected)
			}
		})
	}
}

func TestReadAll_PreservesSamples(t *testing.T) {
	t.Parallel()

	src := audiotest.NewToneSource(48000, 1, 1000, 3000, 0.3, 0.5)
	want := src.Samples()

	got, err := ReadAll(src, 128)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, want) {
		t.Error("ReadAll() samples differ from the generated waveform")
	}
}

type stuckSource struct{ Buffer }

func (stuckSource) ReadSamples([]int16) (int, error) { return 0, nil }

type brokenSource struct{ Buffer }

var errBroken = errors.New("broken")

func (brokenSource) ReadSamples([]int16) (int, error) { return 0, errBroken }

func TestReadAll_Errors(t *testing.T) {
	t.Parallel()

	if _, err := ReadAll(NewBuffer(8000, 1, nil), 0); !errors.Is(err, ErrInvalidBufSize) {
		t.Errorf("ReadAll(bufSize 0) error = %v, want ErrInvalidBufSize", err)
	}
	if _, err := ReadAll(&stuckSource{Buffer{channels: 1}}, 16); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("ReadAll(stuck) error = %v, want io.ErrNoProgress", err)
	}
	if _, err := ReadAll(&brokenSource{Buffer{channels: 1}}, 16); !errors.Is(err, errBroken) {
		t.Errorf("ReadAll(broken) error = %v, want errBroken", err)
	}
}

// BenchmarkReadAll benchmarks collecting one second of 500kHz audio
func BenchmarkReadAll(b *testing.B) {
	src := audiotest.NewSineSource(500000, 1, 500000, 40000)

	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		_, _ = ReadAll(src, 4096)
	}
}
