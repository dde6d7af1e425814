// SPDX-License-Identifier: EPL-2.0

// Package batzc loads bat echolocation recordings as zero-cross signals
// and saves them as Anabat files.
//
// Anabat sequence files (".zc", or the classic 8.3 names ending in '#')
// are decoded directly. Full-spectrum recordings are decoded by extension
// through an audio.Registry and run through the conversion pipeline in
// package convert.
//
// # Supported Formats
//
//   - Anabat versions 129 to 132 via anabat
//   - WAV (PCM 16-bit mono) via formats/wav
//   - AIFF (PCM 16-bit mono) via formats/aiff
//   - Ogg Vorbis (mono, quantized to 16-bit) via formats/vorbis
//
// # Quick Start
//
//	z, err := batzc.Load("20170712_203645.wav")
//	if err != nil {
//		return err
//	}
//	fmt.Println(z.Len(), "dots")
//
//	// persist as Anabat next to the source
//	out := batzc.OutputPath("20170712_203645.wav")
//	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
//		return err
//	}
//	err = batzc.Save(z, out)
//
// Use a Loader for non-default pipeline options, a decode-side high-pass
// on Anabat files or a custom registry.
//
// # Errors
//
// Every failure matches one of the zc categories: zc.ErrFormat for
// corrupt input, zc.ErrConfig for unsupported input or options. Recovered
// conditions are collected in ZeroCross.Diagnostics.
package batzc
