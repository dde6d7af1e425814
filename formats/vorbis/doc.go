// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis recordings with
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float samples; the Source quantizes them to 16-bit PCM
// with utils.Float32ToInt16 so lossy recordings flow through the same
// zero-cross pipeline as WAV files:
//
//	f, _ := os.Open("call.ogg")
//	source, err := vorbis.Decoder{}.Decode(f)
//	samples, err := audio.ReadAll(source, source.BufSize())
//
// Lossy compression smears the waveform near zero, so zero crossings from
// Vorbis input are less precise than from PCM recordings.
package vorbis
