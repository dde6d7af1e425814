// SPDX-License-Identifier: EPL-2.0

package convert_test

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/ik5/batzc/convert"
)

// Example_convertSamples converts a 4 kHz tone recorded in real time at
// 48 kHz, which the pipeline reads as a 40 kHz call.
func Example_convertSamples() {
	samples := make([]int16, 4800)
	for i := range samples {
		samples[i] = int16(10000 * math.Sin(2*math.Pi*4000*float64(i)/48000+0.3))
	}

	opts := convert.Options{
		DivRatio: 8,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	z, err := convert.ConvertSamples(samples, 48000, "20170712_203645.wav", opts)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.0f Hz\n", z.Freqs[0])
	fmt.Println(z.Metadata.Timestamp.Format("2006-01-02 15:04:05"))
	// Output:
	// 40000 Hz
	// 2017-07-12 20:36:45
}
