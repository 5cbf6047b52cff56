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
	"io"
	"slices"

	"github.com/andybalholm/brotli"
)

// Write writes a WOFF2 file containing the given sfnt tables.
//
// Flavor is the sfnt version of the font, for example 0x00010000 for
// TrueType outlines.  The tables are stored as they are: in particular the
// checksum adjustment in the "head" table must already be set.
func Write(w io.Writer, flavor uint32, tables map[string][]byte) (int64, error) {
	tags := make([]string, 0, len(tables))
	for tag, data := range tables {
		if data != nil && len(tag) == 4 {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return 0, errors.New("woff2: no tables")
	}
	slices.Sort(tags)

	var dir []byte
	totalSfntSize := 12 + 16*uint32(len(tags))
	compressed := &bytes.Buffer{}
	bw := brotli.NewWriterLevel(compressed, brotli.BestCompression)
	for _, tag := range tags {
		data := tables[tag]

		flags := nullTransform(tag) << transformShift
		idx, known := knownTagIndex[tag]
		if known {
			flags |= idx
		} else {
			flags |= tagIndexExplicit
		}
		dir = append(dir, flags)
		if !known {
			dir = append(dir, tag...)
		}
		dir = appendBase128(dir, uint32(len(data)))

		totalSfntSize += pad4(uint32(len(data)))
		if _, err := bw.Write(data); err != nil {
			return 0, err
		}
	}
	if err := bw.Close(); err != nil {
		return 0, err
	}

	unpadded := headerSize + uint32(len(dir)) + uint32(compressed.Len())
	length := pad4(unpadded)
	header := &fileHeader{
		Signature:           Signature,
		Flavor:              flavor,
		Length:              length,
		NumTables:           uint16(len(tags)),
		TotalSfntSize:       totalSfntSize,
		TotalCompressedSize: uint32(compressed.Len()),
		MajorVersion:        1,
	}

	out := bytes.NewBuffer(make([]byte, 0, length))
	_ = binary.Write(out, binary.BigEndian, header)
	out.Write(dir)
	out.Write(compressed.Bytes())
	for i := unpadded; i < length; i++ {
		out.WriteByte(0)
	}

	n, err := w.Write(out.Bytes())
	return int64(n), err
}
