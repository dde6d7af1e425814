// SPDX-License-Identifier: EPL-2.0

package guano

import "errors"

var (
	ErrNotGuano       = errors.New("missing GUANO|Version header")
	ErrMalformedLine  = errors.New("malformed GUANO line")
	ErrInvalidUTF8    = errors.New("GUANO block is not valid UTF-8")
	ErrInvalidFloat64 = errors.New("binary payload is not a float64 array")
)
