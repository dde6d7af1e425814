// SPDX-License-Identifier: EPL-2.0

package anabat

import "fmt"

// DotStatus is the code carried by a status byte.
type DotStatus uint8

const (
	StatusOutOfRange DotStatus = iota
	StatusOff
	StatusNormal
	StatusMain
)

func (s DotStatus) String() string {
	switch s {
	case StatusOutOfRange:
		return "OUT_OF_RANGE"
	case StatusOff:
		return "OFF"
	case StatusNormal:
		return "NORMAL"
	case StatusMain:
		return "MAIN"
	}
	return fmt.Sprintf("DotStatus(%d)", uint8(s))
}
