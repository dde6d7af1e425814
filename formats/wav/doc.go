// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV recordings.
//
// Decoding walks the RIFF chunks with github.com/go-audio/wav, so files
// with LIST or vendor chunks ahead of "data" are accepted. Only the PCM
// format tag at 16 bits per sample is supported; other shapes fail with an
// error matching zc.ErrConfig, and non-RIFF input with zc.ErrFormat.
//
//	f, _ := os.Open("20170712_203645.wav")
//	source, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrOnlyPCM16bitSupported) {
//	    // 24-bit or 8-bit recording
//	}
//	samples, err := audio.ReadAll(source, source.BufSize())
//
// Some recorder firmwares hide their own metadata at the front of the
// data chunk; those bytes come through as ordinary samples and are removed
// later by the conversion pipeline.
//
// # Writing WAV Files
//
// WriteWAV16 writes a canonical 44-byte header followed by the samples:
//
//	file, _ := os.Create("slowed.wav")
//	err := wav.WriteWAV16(file, 50000, samples)
//
// It is used to export time-expanded copies of ultrasonic recordings, where
// the declared rate is the capture rate divided by the expansion factor.
package wav
