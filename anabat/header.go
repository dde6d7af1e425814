// SPDX-License-Identifier: EPL-2.0

package anabat

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Layout of an Anabat sequence file.
const (
	// FileType132 is the version written by Writer and the first version
	// carrying a precise timestamp.
	FileType132 = 132

	offsetFileType    = 0x003
	offsetText        = 0x006
	dataInfoOffset    = 0x11a // where Writer places the data information table
	dataInfoSize      = 6
	v132Offset        = 0x120
	v132End           = 0x150
	minMetadataBlock  = 12 // smaller gaps before the data pointer are not metadata
	defaultRes1       = 25000
	defaultVRes       = 0x52
	idSize, gpsSize   = 6, 32
	textHeaderPadding = 1
)

// textFields are the fixed-width padded text fields starting at 0x006, in
// file order: tape, date, location, species, spec, note1, note2.
var textFields = [...]int{8, 8, 40, 50, 16, 73, 80}

// Header is the decoded fixed-layout part of an Anabat file.
type Header struct {
	DataInfoPointer uint16
	FileType        uint8

	Tape     string
	Date     string
	Location string
	Species  string // raw species field, see SpeciesList
	Spec     string
	Note1    string
	Note2    string

	DataPointer uint16
	Res1        uint16
	DivRatio    uint8
	VRes        uint8

	// Only present when FileType >= 132.
	Year         uint16
	Month        uint8
	Day          uint8
	Hour         uint8
	Minute       uint8
	Second       uint8
	Hundredths   uint8
	Microseconds uint16
	ID           string
	GPS          string
}

func trimField(b []byte) string {
	return strings.Trim(string(b), "\x00\t ")
}

// ReadHeader decodes the header, the data information table and, for
// version 132 files, the extended timestamp block.
func ReadHeader(c *Cursor) (*Header, error) {
	var err error
	h := &Header{}

	if h.DataInfoPointer, err = c.Uint16At(0); err != nil {
		return nil, err
	}
	if h.FileType, err = c.ByteAt(offsetFileType); err != nil {
		return nil, err
	}

	text := make([][]byte, len(textFields))
	off := offsetText
	for i, n := range textFields {
		if text[i], err = c.BytesAt(off, n); err != nil {
			return nil, err
		}
		off += n
	}
	h.Tape = trimField(text[0])
	h.Date = trimField(text[1])
	h.Location = trimField(text[2])
	h.Species = string(text[3])
	h.Spec = trimField(text[4])
	h.Note1 = trimField(text[5])
	h.Note2 = trimField(text[6])

	if err := c.Seek(int(h.DataInfoPointer)); err != nil {
		return nil, err
	}
	if h.DataPointer, err = c.Uint16(); err != nil {
		return nil, err
	}
	if h.Res1, err = c.Uint16(); err != nil {
		return nil, err
	}
	if h.DivRatio, err = c.Byte(); err != nil {
		return nil, err
	}
	if h.VRes, err = c.Byte(); err != nil {
		return nil, err
	}

	if h.FileType < FileType132 {
		return h, nil
	}

	if err := readV132(c, h); err != nil {
		return nil, err
	}
	return h, nil
}

func readV132(c *Cursor, h *Header) error {
	if err := c.Seek(v132Offset); err != nil {
		return err
	}

	b, err := c.Bytes(v132End - v132Offset)
	if err != nil {
		return err
	}
	r := NewCursor(b)

	// the block is known to be long enough, errors are impossible here
	h.Year, _ = r.Uint16()
	fields := []*uint8{&h.Month, &h.Day, &h.Hour, &h.Minute, &h.Second, &h.Hundredths}
	for _, f := range fields {
		*f, _ = r.Byte()
	}
	h.Microseconds, _ = r.Uint16()
	id, _ := r.Bytes(idSize)
	gps, _ := r.Bytes(gpsSize)
	h.ID = trimField(id)
	h.GPS = trimField(gps)

	return nil
}

// SpeciesList splits the species field. A parenthesis marks vendor
// annotations, so only the text before it is kept as a single species;
// otherwise the field is a comma separated list.
func (h *Header) SpeciesList() []string {
	return parseSpecies(h.Species)
}

func parseSpecies(raw string) []string {
	if before, _, found := strings.Cut(raw, "("); found {
		return []string{strings.TrimSpace(trimField([]byte(before)))}
	}

	s := trimField([]byte(raw))
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Timestamp assembles the version 132 timestamp fields, failing with
// ErrInvalidTimestamp when any component is out of calendar range.
func (h *Header) Timestamp() (time.Time, error) {
	usec := int(h.Hundredths)*10000 + int(h.Microseconds)

	t := time.Date(int(h.Year), time.Month(h.Month), int(h.Day),
		int(h.Hour), int(h.Minute), int(h.Second), usec*1000, time.UTC)

	valid := h.Year >= 1 && h.Month >= 1 && h.Month <= 12 && h.Day >= 1 &&
		h.Hour < 24 && h.Minute < 60 && h.Second < 60 && usec < 1000000 &&
		t.Day() == int(h.Day)
	if !valid {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d:%02d.%06d", ErrInvalidTimestamp,
			h.Year, h.Month, h.Day, h.Hour, h.Minute, h.Second, usec)
	}
	return t, nil
}

// padText fits s into an n-byte field: unicode is decomposed and reduced to
// ASCII, then the result is truncated or space padded.
func padText(s string, n int) []byte {
	out := make([]byte, 0, n)
	for _, r := range norm.NFKD.String(s) {
		if len(out) == n {
			break
		}
		if r <= unicode.MaxASCII {
			out = append(out, byte(r))
		}
	}
	for len(out) < n {
		out = append(out, ' ')
	}
	return out
}
