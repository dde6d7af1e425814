// SPDX-License-Identifier: EPL-2.0

package anabat

import (
	"fmt"
	"strings"
	"time"
)

// Filename builds the classic Anabat 8.3 name for a recording started at
// t, e.g. 2017-07-12 20:36:45 gives "R7122036.45#". Years before 1990
// cannot be represented and report ok=false.
func Filename(t time.Time) (string, bool) {
	if t.Year() < 1990 {
		return "", false
	}

	var year string
	if t.Year() < 2000 {
		year = fmt.Sprint(t.Year() - 1990)
	} else {
		year = string(rune('A' + t.Year() - 2000))
	}
	month := strings.ToUpper(fmt.Sprintf("%x", int(t.Month())))

	return fmt.Sprintf("%s%s%02d%02d%02d.%02d#", year, month, t.Day(), t.Hour(), t.Minute(), t.Second()), true
}
