// SPDX-License-Identifier: EPL-2.0

package anabat

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/batzc/zc"
)

// Largest interval each absolute encoding can hold, exclusive.
const (
	max13Bit = 0x2000
	max21Bit = 0x200000
	max29Bit = 0x20000000
)

// HeaderFields is the content of a version 132 header. Zero Res1 and VRes
// select the Anabat defaults (25000 and 0x52). A zero Timestamp writes a
// blank date and all-zero timestamp fields.
type HeaderFields struct {
	Timestamp time.Time
	DivRatio  int

	Tape     string
	Location string
	Species  string
	Spec     string
	Note1    string
	Note2    string
	ID       string

	Res1 uint16
	VRes uint8

	// Metadata is copied verbatim between the header and the dot data.
	Metadata []byte
}

// Writer produces an Anabat version 132 file. WriteHeader must be called
// exactly once before any WriteIntervals call. There is no dot count
// validation; keeping within zc.MaxDots is up to the caller.
//
//	w, _ := anabat.Create("R7122036.45#")
//	w.WriteHeader(anabat.HeaderFields{Timestamp: ts, DivRatio: 8, Species: "Mylu"})
//	w.WriteIntervals(intervals)
//	w.Close()
type Writer struct {
	w      *bufio.Writer
	closer io.Closer
	log    *slog.Logger

	byteCount     int
	intervalCount int
	lengthUS      int64
	dropped       int
	dataPointer   int

	prev    int
	hasPrev bool

	headerDone bool
	closed     bool
}

// Create opens path for exclusive writing, truncating any existing file.
func Create(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating anabat file: %w", err)
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

// NewWriter writes to an arbitrary sink. Close flushes but does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:           bufio.NewWriter(w),
		log:         slog.Default(),
		dataPointer: v132End,
	}
}

// WithLogger sets the logger used for range warnings.
func (w *Writer) WithLogger(l *slog.Logger) *Writer {
	if l != nil {
		w.log = l
	}
	return w
}

func (w *Writer) ByteCount() int     { return w.byteCount }
func (w *Writer) IntervalCount() int { return w.intervalCount }
func (w *Writer) Dropped() int       { return w.dropped }

// Length is the sum of all intervals passed to WriteIntervals.
func (w *Writer) Length() time.Duration {
	return time.Duration(w.lengthUS) * time.Microsecond
}

func (w *Writer) WriteHeader(h HeaderFields) error {
	switch {
	case w.closed:
		return ErrWriterClosed
	case w.headerDone:
		return ErrHeaderWritten
	case !zc.ValidDivRatio(h.DivRatio):
		return fmt.Errorf("%w: divratio %d", zc.ErrConfig, h.DivRatio)
	case v132End+len(h.Metadata) > 0xFFFF:
		return fmt.Errorf("%w: %w: %d bytes", zc.ErrConfig, ErrBlockTooLarge, len(h.Metadata))
	}

	res1, vres := h.Res1, h.VRes
	if res1 == 0 {
		res1 = defaultRes1
	}
	if vres == 0 {
		vres = defaultVRes
	}

	date := ""
	if !h.Timestamp.IsZero() {
		date = h.Timestamp.Format("20060102")
	}

	w.dataPointer = v132End + len(h.Metadata)

	buf := make([]byte, v132End)

	// start block: data information table pointer and file version
	binary.LittleEndian.PutUint16(buf[0:2], dataInfoOffset)
	buf[offsetFileType] = FileType132

	off := offsetText
	for i, s := range []string{h.Tape, date, h.Location, h.Species, h.Spec, h.Note1, h.Note2} {
		copy(buf[off:], padText(s, textFields[i]))
		off += textFields[i]
	}
	off += textHeaderPadding

	// data information table
	binary.LittleEndian.PutUint16(buf[off:], uint16(w.dataPointer))
	binary.LittleEndian.PutUint16(buf[off+2:], res1)
	buf[off+4] = byte(h.DivRatio)
	buf[off+5] = vres
	off += dataInfoSize

	// version 132 timestamp block, GPS is left zeroed
	if ts := h.Timestamp; !ts.IsZero() {
		usec := ts.Nanosecond() / 1000
		binary.LittleEndian.PutUint16(buf[off:], uint16(ts.Year()))
		buf[off+2] = byte(ts.Month())
		buf[off+3] = byte(ts.Day())
		buf[off+4] = byte(ts.Hour())
		buf[off+5] = byte(ts.Minute())
		buf[off+6] = byte(ts.Second())
		buf[off+7] = byte(usec / 10000)
		binary.LittleEndian.PutUint16(buf[off+8:], uint16(usec%10000))
	}
	off += 10
	copy(buf[off:], padText(h.ID, idSize))

	if _, err := w.w.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := w.w.Write(h.Metadata); err != nil {
		return fmt.Errorf("%w", err)
	}

	w.byteCount = len(buf) + len(h.Metadata)
	w.headerDone = true
	return nil
}

// WriteIntervals appends microsecond intervals using the smallest encoding
// that fits. It may be called repeatedly. Intervals that do not fit in 29
// bits, and negative ones, are dropped with a warning.
func (w *Writer) WriteIntervals(intervals []int) error {
	if w.closed {
		return ErrWriterClosed
	}
	if !w.headerDone {
		return ErrHeaderMissing
	}

	var scratch [4]byte
	for _, interval := range intervals {
		w.intervalCount++
		w.lengthUS += int64(interval)

		var b []byte
		diff := interval - w.prev

		switch {
		case w.hasPrev && diff > -64 && diff < 64:
			if diff >= 0 {
				scratch[0] = byte(diff)
			} else {
				// 7-bit two's complement
				scratch[0] = byte(^(-diff - 1) & 0x7F)
			}
			b = scratch[:1]

		case interval < 0:
			w.drop(interval)

		case interval < max13Bit:
			scratch[0] = 0x80 | byte(interval>>8)
			scratch[1] = byte(interval)
			b = scratch[:2]

		case interval < max21Bit:
			scratch[0] = 0xA0 | byte(interval>>16)
			scratch[1] = byte(interval >> 8)
			scratch[2] = byte(interval)
			b = scratch[:3]

		case interval < max29Bit:
			scratch[0] = 0xC0 | byte(interval>>24)
			scratch[1] = byte(interval >> 16)
			scratch[2] = byte(interval >> 8)
			scratch[3] = byte(interval)
			b = scratch[:4]

		default:
			w.drop(interval)
		}

		if b != nil {
			if _, err := w.w.Write(b); err != nil {
				return fmt.Errorf("%w", err)
			}
			w.byteCount += len(b)
		}

		// the previous interval advances even when this one was dropped
		w.prev = interval
		w.hasPrev = true
	}

	return nil
}

func (w *Writer) drop(interval int) {
	w.dropped++
	w.log.Warn("interval out of range, unable to encode",
		"interval_us", interval, "error", zc.ErrRange)
}

// Close flushes buffered output and releases the sink. The Writer cannot
// be used afterwards.
func (w *Writer) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true

	err := w.w.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
