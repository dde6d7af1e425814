// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF recordings through
// github.com/go-audio/aiff.
//
//	f, _ := os.Open("call.aif")
//	source, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotAiffFile or ErrOnlyPCM16bitSupported
//	}
//	samples, err := audio.ReadAll(source, source.BufSize())
//
// Samples are delivered at their native 16-bit scale, converted from the
// big-endian sound data chunk by the go-audio decoder.
package aiff
