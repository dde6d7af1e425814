// SPDX-License-Identifier: EPL-2.0

// Package zc holds the normalized zero-crossing record shared by every
// decode path, together with the small numeric helpers that operate on it.
//
// A ZeroCross is a series of dots. Each dot has a time in seconds, an
// instantaneous frequency in Hz and, when the source provides it, an
// amplitude:
//
//	z, _ := batzc.Load("20170712_203645.wav", batzc.Options{})
//	fmt.Println(z.Len(), z.Duration())
//
//	// first 100 dots, sharing storage with z
//	head := z.Slice(0, 100)
//
// # Error Categories
//
// Errors produced anywhere in the module are joined to one of four
// category sentinels so callers can react by kind with errors.Is:
//   - ErrFormat: the input bytes are structurally invalid (fatal)
//   - ErrConfig: the request cannot be honoured (fatal, checked first)
//   - ErrMetadata: a metadata field was unusable and has been omitted
//   - ErrRange: a value exceeded a nominal limit and was capped or dropped
//
// The last two never abort processing. They are logged and collected in
// ZeroCross.Diagnostics.
package zc
