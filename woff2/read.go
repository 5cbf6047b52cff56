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

package woff2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

// Font is the content of a WOFF2 file.
type Font struct {
	// Flavor is the sfnt version of the font.
	Flavor uint32

	Tables map[string][]byte
}

const maxTotalSize = 1 << 30

// Read decodes a WOFF2 file.  Only files where all tables use the null
// transform are supported; font collections are not supported.
func Read(data []byte) (*Font, error) {
	if len(data) < headerSize {
		return nil, errMalformed
	}
	header := &fileHeader{}
	err := binary.Read(bytes.NewReader(data[:headerSize]), binary.BigEndian, header)
	if err != nil {
		return nil, err
	}
	if header.Signature != Signature {
		return nil, errors.New("woff2: not a WOFF2 file")
	}
	if header.Flavor == 0x74746366 {
		return nil, errors.New("woff2: font collections not supported")
	}
	if int64(header.Length) > int64(len(data)) || header.NumTables == 0 {
		return nil, errMalformed
	}

	type entry struct {
		tag    string
		length uint32
	}
	entries := make([]entry, header.NumTables)
	pos := headerSize
	var total uint64
	for i := range entries {
		if pos >= len(data) {
			return nil, errMalformed
		}
		flags := data[pos]
		pos++

		var tag string
		if idx := flags & tagIndexMask; idx == tagIndexExplicit {
			if pos+4 > len(data) {
				return nil, errMalformed
			}
			tag = string(data[pos : pos+4])
			pos += 4
		} else {
			tag = knownTags[idx]
		}

		if flags>>transformShift != nullTransform(tag) {
			return nil, errTransformed
		}

		length, n, err := readBase128(data[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		total += uint64(length)
		entries[i] = entry{tag: tag, length: length}
	}
	if total > maxTotalSize {
		return nil, errMalformed
	}

	end := pos + int(header.TotalCompressedSize)
	if end > len(data) {
		return nil, errMalformed
	}
	r := brotli.NewReader(bytes.NewReader(data[pos:end]))

	tables := make(map[string][]byte, len(entries))
	for _, e := range entries {
		if _, dup := tables[e.tag]; dup {
			return nil, fmt.Errorf("woff2: duplicate table %q", e.tag)
		}
		buf := make([]byte, e.length)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("woff2: table %q: %w", e.tag, err)
		}
		tables[e.tag] = buf
	}

	return &Font{
		Flavor: header.Flavor,
		Tables: tables,
	}, nil
}
