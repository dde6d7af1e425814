// SPDX-License-Identifier: EPL-2.0

package anabat

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/ik5/batzc/guano"
	"github.com/ik5/batzc/zc"
)

// initialDots is the historical dot cap of an Anabat file; the interval
// buffer starts there and grows as needed.
const initialDots = 1 << 14

// Decoder turns Anabat sequence bytes into a ZeroCross.
type Decoder struct {
	// HighPassHz drops every dot at or below this frequency. 0 disables.
	HighPassHz float64

	// Metadata reads the embedded metadata block. nil uses GUANO.
	Metadata MetadataParser

	Logger *slog.Logger
}

func (d Decoder) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

func (d Decoder) metadataParser() MetadataParser {
	if d.Metadata != nil {
		return d.Metadata
	}
	return guano.AmplitudeParser{}
}

// DecodeFile decodes the file at path through a read-only memory map.
func (d Decoder) DecodeFile(path string) (*zc.ZeroCross, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening anabat file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var z *zc.ZeroCross
	if info.Size() == 0 {
		// empty files cannot be mapped
		z, err = d.Decode(nil)
	} else {
		m, merr := mmap.Map(f, mmap.RDONLY, 0)
		if merr != nil {
			return nil, fmt.Errorf("mapping anabat file: %w", merr)
		}
		z, err = d.Decode(m)
		if uerr := m.Unmap(); uerr != nil && err == nil {
			err = fmt.Errorf("%w", uerr)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	z.Metadata.Path = path
	z.Metadata.Filename = filepath.Base(path)
	return z, nil
}

// Decode parses a complete Anabat file held in data. The returned record
// does not reference data.
func (d Decoder) Decode(data []byte) (*zc.ZeroCross, error) {
	log := d.logger()
	start := time.Now()
	defer func() {
		log.Debug("anabat decode", "elapsed", time.Since(start))
	}()

	c := NewCursor(data)
	h, err := ReadHeader(c)
	if err != nil {
		return nil, err
	}

	z := &zc.ZeroCross{
		Metadata: zc.Metadata{
			Tape:     h.Tape,
			Date:     h.Date,
			Location: h.Location,
			Species:  h.SpeciesList(),
			Spec:     h.Spec,
			Note1:    h.Note1,
			Note2:    h.Note2,
			DivRatio: int(h.DivRatio),
		},
	}

	var amps []float64
	if h.FileType >= FileType132 {
		z.Metadata.ID = h.ID
		z.Metadata.GPS = h.GPS

		ts, err := h.Timestamp()
		if err != nil {
			log.Warn("failed extracting timestamp", "error", err)
			z.Warn(fmt.Errorf("%w: %w", zc.ErrMetadata, err))
		}
		z.Metadata.Timestamp = ts

		amps = d.embeddedAmplitudes(data, int(h.DataPointer), z)
	}

	log.Debug("anabat header",
		"file_type", h.FileType,
		"data_info_pointer", fmt.Sprintf("0x%03x", h.DataInfoPointer),
		"data_pointer", fmt.Sprintf("0x%03x", h.DataPointer),
		"divratio", h.DivRatio)

	if err := c.Seek(int(h.DataPointer)); err != nil {
		return nil, err
	}
	intervals, offDots, err := scanIntervals(c, log)
	if err != nil {
		return nil, err
	}

	if amps != nil && len(amps) != len(intervals) {
		err := fmt.Errorf("%w: %w: %d amplitudes, %d dots", zc.ErrMetadata, ErrAmplitudeCount, len(amps), len(intervals))
		log.Warn("discarding embedded amplitudes", "error", err)
		z.Warn(err)
		amps = nil
	}

	times := make([]float64, len(intervals))
	freqs := make([]float64, len(intervals))
	var t float64
	for i, us := range intervals {
		iv := float64(us) * 1e-6
		t += iv
		times[i] = t
		freqs[i] = zc.Frequency(iv, z.Metadata.DivRatio)
	}

	if len(offDots) > 0 {
		n := 0
		for _, count := range offDots {
			n += count
		}
		log.Debug("throwing out off-dots", "off", n, "dots", len(times))
		times, freqs, amps = zc.Compact(times, freqs, amps, offDotFilter(offDots))
	}

	lo, hi := zc.MinMax(freqs)
	log.Debug("anabat dots", "dots", len(freqs), "min_khz", lo/1000, "max_khz", hi/1000)

	if d.HighPassHz > 0 && len(freqs) > 0 {
		before := len(freqs)
		times, freqs, amps = zc.HighPass(times, freqs, amps, d.HighPassHz)
		log.Debug("high-pass", "cutoff_hz", d.HighPassHz, "dropped", before-len(freqs), "dots", before)
	}

	z.Times, z.Freqs, z.Amplitudes = times, freqs, amps
	return z, nil
}

func (d Decoder) embeddedAmplitudes(data []byte, dataPointer int, z *zc.ZeroCross) []float64 {
	log := d.logger()

	if dataPointer-v132End <= minMetadataBlock {
		log.Debug("no embedded metadata found")
		return nil
	}

	block := data[v132End:min(dataPointer, len(data))]
	amps, ok, err := d.metadataParser().ParseAmplitudes(block)
	if err != nil {
		log.Warn("failed parsing embedded metadata block", "error", err)
		z.Warn(fmt.Errorf("%w: %w", zc.ErrMetadata, err))
		return nil
	}
	if !ok {
		return nil
	}
	return amps
}

// scanIntervals reads the dot stream from the cursor position to the end
// of the buffer. It returns the intervals in microseconds and the OFF runs
// keyed by the dot index they start at.
func scanIntervals(c *Cursor, log *slog.Logger) ([]uint32, map[int]int, error) {
	intervals := make([]uint32, 0, initialDots)
	offDots := map[int]int{}

	for !c.EOF() {
		pos := c.Pos()
		b, _ := c.Byte()

		switch {
		case b <= 0x7F:
			// 7-bit two's complement offset from the previous interval
			delta := int64(b)
			if b >= 0x40 {
				delta -= 0x80
			}
			if len(intervals) == 0 {
				log.Warn("sequence starts with a one-byte interval diff, skipping", "byte", fmt.Sprintf("0x%X", b), "offset", pos)
				continue
			}
			prev := intervals[len(intervals)-1]
			intervals = append(intervals, uint32(int64(prev)+delta))

		case b <= 0x9F:
			rest, err := c.Bytes(1)
			if err != nil {
				return nil, nil, err
			}
			intervals = append(intervals, uint32(b&0x1F)<<8|uint32(rest[0]))

		case b <= 0xBF:
			rest, err := c.Bytes(2)
			if err != nil {
				return nil, nil, err
			}
			intervals = append(intervals, uint32(b&0x1F)<<16|uint32(rest[0])<<8|uint32(rest[1]))

		case b <= 0xDF:
			rest, err := c.Bytes(3)
			if err != nil {
				return nil, nil, err
			}
			intervals = append(intervals, uint32(b&0x1F)<<24|uint32(rest[0])<<16|uint32(rest[1])<<8|uint32(rest[2]))

		case b >= 0xE0:
			// status byte applying to the next count dots
			status := DotStatus(b & 0x1F)
			count, err := c.Byte()
			if err != nil {
				return nil, nil, err
			}
			if status == StatusOff {
				offDots[len(intervals)] = int(count)
			} else {
				log.Debug("unsupported dot status", "status", status, "dots", count, "dot", len(intervals), "offset", fmt.Sprintf("0x%X", pos))
			}

		default:
			return nil, nil, &FormatError{Offset: pos, Byte: int(b), Err: ErrUnknownByte}
		}
	}

	return intervals, offDots, nil
}

// offDotFilter returns a keep predicate excluding every dot covered by an
// OFF run. The predicate must be called with ascending indices.
func offDotFilter(runs map[int]int) func(int) bool {
	starts := slices.Sorted(maps.Keys(runs))
	next, until := 0, 0

	return func(i int) bool {
		for next < len(starts) && starts[next] <= i {
			until = max(until, starts[next]+runs[starts[next]])
			next++
		}
		return i >= until
	}
}
