// SPDX-License-Identifier: EPL-2.0

package guano

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
)

// AmplitudesKey is where converted recordings keep their per-dot
// amplitude series.
const AmplitudesKey = "ZCANT|Amplitudes"

// EncodeFloat64s packs xs as little-endian float64 values in base64.
func EncodeFloat64s(xs []float64) string {
	buf := make([]byte, len(xs)*8)
	for i, x := range xs {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(x))
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeFloat64s reverses EncodeFloat64s.
func DecodeFloat64s(s string) ([]float64, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFloat64, err)
	}
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidFloat64, len(buf))
	}

	xs := make([]float64, len(buf)/8)
	for i := range xs {
		xs[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return xs, nil
}

// AmplitudeParser pulls a stored amplitude series out of an embedded GUANO
// block. It satisfies anabat.MetadataParser.
type AmplitudeParser struct{}

// ParseAmplitudes reports ok=false, with no error, when block is valid
// GUANO but carries no amplitudes.
func (AmplitudeParser) ParseAmplitudes(block []byte) ([]float64, bool, error) {
	f, err := Parse(block)
	if err != nil {
		return nil, false, err
	}

	v, ok := f.Get(AmplitudesKey)
	if !ok {
		return nil, false, nil
	}

	amps, err := DecodeFloat64s(v)
	if err != nil {
		return nil, false, err
	}
	return amps, true, nil
}
