// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/batzc/audio"
	"github.com/ik5/batzc/internal/audiotest"
)

// Example_readAll collects a whole recording into memory.
func Example_readAll() {
	source := audiotest.NewSineSource(500000, 1, 250000, 40000.0) // 0.5 second, 40kHz call

	samples, err := audio.ReadAll(source, source.BufSize())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Samples: %d\n", len(samples))
	// Output:
	// Sample rate: 500000 Hz
	// Samples: 250000
}

// Example_registry shows extension based decoder lookup.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", nopDecoder{})
	registry.Register(".AIF", nopDecoder{})

	for _, path := range []string{"20170712_203645.WAV", "call.aif", "R7122036.45#"} {
		_, ok := registry.Lookup(path)
		fmt.Printf("%s: %v\n", path, ok)
	}
	fmt.Println(registry.Extensions())
	// Output:
	// 20170712_203645.WAV: true
	// call.aif: true
	// R7122036.45#: false
	// [aif wav]
}

type nopDecoder struct{}

func (nopDecoder) Decode(io.Reader) (audio.Source, error) {
	return audio.NewBuffer(44100, 1, nil), nil
}

// Example_buffer streams in-memory samples through the Source interface.
func Example_buffer() {
	buf := audio.NewBuffer(384000, 1, []int16{0, 1200, -1200, 800, -800})
	dst := make([]int16, 2)

	for {
		n, err := buf.ReadSamples(dst)
		fmt.Println(dst[:n])
		if err == io.EOF {
			break
		}
	}
	// Output:
	// [0 1200]
	// [-1200 800]
	// [-800]
}
