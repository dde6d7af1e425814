// SPDX-License-Identifier: EPL-2.0

// Package convert turns full-spectrum mono 16-bit PCM into a zero-cross
// signal.
//
// The stages run in a fixed order:
//
//  1. rates at or below 48 kHz are taken as 10x time expanded and scaled up
//  2. firmware metadata blocks written into the PCM data are skipped
//  3. a 6th order zero-phase Butterworth high-pass, or DC offset removal
//     when no cutoff is set
//  4. every divratio-th sign change becomes a dot, optionally with the
//     mean absolute amplitude of the preceding span
//  5. optional linear interpolation of the crossing positions
//  6. optional brick-wall drop of dots at or below the cutoff
//  7. optional noise gate at a multiple of the amplitude RMS
//
// Typical use:
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	z, err := convert.Convert(src, f.Name(), convert.DefaultOptions())
package convert
