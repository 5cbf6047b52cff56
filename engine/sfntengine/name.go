// seehuhn.de/go/webfont - convert fonts to compressed web fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sfntengine

import (
	"encoding/binary"
	"errors"
	"slices"
)

var errName = errors.New("sfntengine: malformed \"name\" table")

// filterNames removes name records from a "name" table.  Records are kept
// if their name ID is in ids and their language ID is in langs; a nil
// slice matches everything.
// https://learn.microsoft.com/en-us/typography/opentype/spec/name
func filterNames(data []byte, ids, langs []uint16) ([]byte, error) {
	if len(data) < 6 {
		return nil, errName
	}
	format := binary.BigEndian.Uint16(data[0:])
	count := int(binary.BigEndian.Uint16(data[2:]))
	storageOffset := int(binary.BigEndian.Uint16(data[4:]))
	if format > 1 || storageOffset > len(data) {
		return nil, errName
	}
	pos := 6 + 12*count
	if pos > len(data) {
		return nil, errName
	}
	storage := data[storageOffset:]

	str := func(length, offset uint16) ([]byte, error) {
		end := int(offset) + int(length)
		if end > len(storage) {
			return nil, errName
		}
		return storage[offset:end], nil
	}

	type record struct {
		header [8]byte // platform, encoding, language, name IDs
		value  []byte
	}
	var records []record
	for i := 0; i < count; i++ {
		rec := data[6+12*i : 18+12*i]
		language := binary.BigEndian.Uint16(rec[4:])
		nameID := binary.BigEndian.Uint16(rec[6:])
		if ids != nil && !slices.Contains(ids, nameID) {
			continue
		}
		if langs != nil && !slices.Contains(langs, language) {
			continue
		}
		value, err := str(binary.BigEndian.Uint16(rec[8:]), binary.BigEndian.Uint16(rec[10:]))
		if err != nil {
			return nil, err
		}
		var r record
		copy(r.header[:], rec[:8])
		r.value = value
		records = append(records, r)
	}

	var langTags [][]byte
	if format == 1 {
		if pos+2 > len(data) {
			return nil, errName
		}
		n := int(binary.BigEndian.Uint16(data[pos:]))
		pos += 2
		if pos+4*n > len(data) {
			return nil, errName
		}
		for i := 0; i < n; i++ {
			rec := data[pos+4*i:]
			value, err := str(binary.BigEndian.Uint16(rec[0:]), binary.BigEndian.Uint16(rec[2:]))
			if err != nil {
				return nil, err
			}
			langTags = append(langTags, value)
		}
	}

	headerLen := 6 + 12*len(records)
	if format == 1 {
		headerLen += 2 + 4*len(langTags)
	}
	res := make([]byte, headerLen)
	binary.BigEndian.PutUint16(res[0:], format)
	binary.BigEndian.PutUint16(res[2:], uint16(len(records)))
	binary.BigEndian.PutUint16(res[4:], uint16(headerLen))

	var pool []byte
	put := func(out []byte, value []byte) {
		binary.BigEndian.PutUint16(out[0:], uint16(len(value)))
		binary.BigEndian.PutUint16(out[2:], uint16(len(pool)))
		pool = append(pool, value...)
	}
	for i, r := range records {
		out := res[6+12*i:]
		copy(out, r.header[:])
		put(out[8:], r.value)
	}
	if format == 1 {
		pos := 6 + 12*len(records)
		binary.BigEndian.PutUint16(res[pos:], uint16(len(langTags)))
		for i, tag := range langTags {
			put(res[pos+2+4*i:], tag)
		}
	}
	return append(res, pool...), nil
}
