// SPDX-License-Identifier: EPL-2.0

package guano

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Version is the GUANO version written by this package.
const Version = "1.0"

const versionKey = "GUANO|Version"

type field struct {
	key   string
	value string
}

// File is an ordered set of GUANO fields.
type File struct {
	fields []field
}

// New returns an empty File carrying only the version field.
func New() *File {
	return &File{fields: []field{{key: versionKey, value: Version}}}
}

// Parse reads a GUANO block. Trailing NUL padding and blank lines are
// ignored.
func Parse(b []byte) (*File, error) {
	b = bytes.TrimRight(b, "\x00")
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}

	f := &File{}
	for n, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, n+1, line)
		}
		f.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	if _, ok := f.Get(versionKey); !ok {
		return nil, ErrNotGuano
	}

	return f, nil
}

func normalizeKey(key string) string {
	// the default namespace may be written with or without a bare "|"
	return strings.TrimPrefix(key, "|")
}

// Get returns the value stored under key, written as "Namespace|Key" or,
// for the default namespace, just "Key".
func (f *File) Get(key string) (string, bool) {
	key = normalizeKey(key)
	for _, fl := range f.fields {
		if fl.key == key {
			return fl.value, true
		}
	}
	return "", false
}

// Set stores value under key, replacing any existing value in place.
func (f *File) Set(key, value string) {
	key = normalizeKey(key)
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i].value = value
			return
		}
	}
	f.fields = append(f.fields, field{key: key, value: value})
}

// Keys lists the field keys in insertion order.
func (f *File) Keys() []string {
	keys := make([]string, len(f.fields))
	for i, fl := range f.fields {
		keys[i] = fl.key
	}
	return keys
}

func (f *File) String() string {
	var sb strings.Builder
	if v, ok := f.Get(versionKey); ok {
		fmt.Fprintf(&sb, "%s: %s", versionKey, v)
	} else {
		fmt.Fprintf(&sb, "%s: %s", versionKey, Version)
	}
	for _, fl := range f.fields {
		if fl.key == versionKey {
			continue
		}
		fmt.Fprintf(&sb, "\n%s: %s", fl.key, fl.value)
	}
	return sb.String()
}

// Bytes serializes f with the version line first, padded with a newline
// to an even byte length.
func (f *File) Bytes() []byte {
	b := []byte(f.String())
	if len(b)%2 != 0 {
		b = append(b, '\n')
	}
	return b
}
