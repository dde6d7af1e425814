// SPDX-License-Identifier: EPL-2.0

package anabat

// MetadataParser recovers an amplitude series from the embedded metadata
// block that sits between the fixed header and the dot data. ok is false
// when the block parses but carries no amplitudes.
type MetadataParser interface {
	ParseAmplitudes(block []byte) (amps []float64, ok bool, err error)
}
