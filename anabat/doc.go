// SPDX-License-Identifier: EPL-2.0

// Package anabat reads and writes Anabat zero-crossing sequence files.
//
// # File Layout
//
// An Anabat file starts with a fixed header:
//
//	0x000  u16   pointer to the data information table
//	0x003  u8    file type (129, 130, 132, ...)
//	0x006  text  tape(8) date(8) location(40) species(50) spec(16) note1(73) note2(80)
//	ptr    u16   data pointer, u16 res1, u8 divratio, u8 vres
//
// Version 132 files add a timestamp block at 0x120 (year, month, day,
// hour, minute, second, hundredths, microseconds, 6 byte id, 32 byte GPS)
// and may embed a GUANO metadata block between 0x150 and the data pointer.
//
// Dot data follows the data pointer. Each byte selects an encoding:
//
//	0x00-0x7F  7-bit signed delta from the previous interval
//	0x80-0x9F  13-bit interval (5 bits here, 8 in the next byte)
//	0xA0-0xBF  21-bit interval (5 + 16 bits)
//	0xC0-0xDF  29-bit interval (5 + 24 bits)
//	0xE0-0xFF  status code (low 5 bits) for the number of dots in the next byte
//
// Intervals are microseconds between successive zero crossings counted
// after frequency division.
//
// # Decoding
//
//	dec := anabat.Decoder{HighPassHz: 8000}
//	z, err := dec.DecodeFile("R7122036.45#")
//
// Dots flagged OFF by status bytes are removed. Other status codes are
// parsed and ignored.
//
// # Encoding
//
//	w, err := anabat.Create("out.zc")
//	err = w.WriteHeader(anabat.HeaderFields{Timestamp: ts, DivRatio: 8})
//	err = w.WriteIntervals([]int{100, 50, 20, 5000})
//	err = w.Close()
package anabat
