// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM plumbing between container decoders and
// the zero-cross conversion pipeline.
//
// # Source Interface
//
// Every format decoder produces a Source of interleaved 16-bit samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are kept at their native 16-bit resolution; the zero-cross
// detector and its amplitude estimate work on the raw integer scale, so no
// normalization to [-1, 1] is done here.
//
// # Collecting Samples
//
// ReadAll drains a Source into memory:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	samples, err := audio.ReadAll(src, src.BufSize())
//
// Buffer goes the other way and exposes in-memory samples as a Source.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Lookup("20170712_203645.WAV")
//
// # Error Handling
//
// Sources return io.EOF when no more data is available, possibly together
// with the final samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n] first
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
