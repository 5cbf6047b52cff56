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

// Package woff reads and writes fonts in the WOFF 1.0 container format.
//
// See https://www.w3.org/TR/WOFF/ for the file format.
package woff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/klauspost/compress/zlib"
)

// Signature is the tag at the start of every WOFF file ("wOFF").
const Signature uint32 = 0x774F4646

const (
	headerSize   = 44
	dirEntrySize = 20
)

type fileHeader struct {
	Signature      uint32
	Flavor         uint32
	Length         uint32
	NumTables      uint16
	Reserved       uint16
	TotalSfntSize  uint32
	MajorVersion   uint16
	MinorVersion   uint16
	MetaOffset     uint32
	MetaLength     uint32
	MetaOrigLength uint32
	PrivOffset     uint32
	PrivLength     uint32
}

type dirEntry struct {
	Tag          [4]byte
	Offset       uint32
	CompLength   uint32
	OrigLength   uint32
	OrigChecksum uint32
}

var errMalformed = errors.New("woff: malformed file")

// Write writes a WOFF file containing the given sfnt tables.
// Each table is zlib-compressed if this makes it smaller.
func Write(w io.Writer, flavor uint32, tables map[string][]byte) (int64, error) {
	tags := make([]string, 0, len(tables))
	for tag, data := range tables {
		if data != nil && len(tag) == 4 {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return 0, errors.New("woff: no tables")
	}
	slices.Sort(tags)

	entries := make([]dirEntry, len(tags))
	bodies := make([][]byte, len(tags))
	offset := uint32(headerSize + dirEntrySize*len(tags))
	totalSfntSize := 12 + 16*uint32(len(tags))
	for i, tag := range tags {
		data := tables[tag]
		body, err := compress(data)
		if err != nil {
			return 0, err
		}
		copy(entries[i].Tag[:], tag)
		entries[i].Offset = offset
		entries[i].CompLength = uint32(len(body))
		entries[i].OrigLength = uint32(len(data))
		entries[i].OrigChecksum = checksum(tag, data)
		bodies[i] = body

		offset += pad4(uint32(len(body)))
		totalSfntSize += pad4(uint32(len(data)))
	}

	header := &fileHeader{
		Signature:     Signature,
		Flavor:        flavor,
		Length:        offset,
		NumTables:     uint16(len(tags)),
		TotalSfntSize: totalSfntSize,
		MajorVersion:  1,
	}

	out := bytes.NewBuffer(make([]byte, 0, offset))
	_ = binary.Write(out, binary.BigEndian, header)
	_ = binary.Write(out, binary.BigEndian, entries)
	var pad [3]byte
	for _, body := range bodies {
		out.Write(body)
		out.Write(pad[:pad4(uint32(len(body)))-uint32(len(body))])
	}

	n, err := w.Write(out.Bytes())
	return int64(n), err
}

// compress returns the zlib-compressed data, or data itself if compression
// does not save space.
func compress(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	if buf.Len() >= len(data) {
		return data, nil
	}
	return buf.Bytes(), nil
}

// Font is the content of a WOFF file.
type Font struct {
	// Flavor is the sfnt version of the font.
	Flavor uint32

	Tables map[string][]byte
}

// Read decodes a WOFF file.
func Read(data []byte) (*Font, error) {
	if len(data) < headerSize {
		return nil, errMalformed
	}
	r := bytes.NewReader(data)
	header := &fileHeader{}
	if err := binary.Read(r, binary.BigEndian, header); err != nil {
		return nil, err
	}
	if header.Signature != Signature {
		return nil, errors.New("woff: not a WOFF file")
	}
	if headerSize+dirEntrySize*int(header.NumTables) > len(data) {
		return nil, errMalformed
	}
	entries := make([]dirEntry, header.NumTables)
	if err := binary.Read(r, binary.BigEndian, entries); err != nil {
		return nil, err
	}

	tables := make(map[string][]byte, len(entries))
	for _, e := range entries {
		tag := string(e.Tag[:])
		end := uint64(e.Offset) + uint64(e.CompLength)
		if end > uint64(len(data)) || e.CompLength > e.OrigLength {
			return nil, errMalformed
		}
		body := data[e.Offset:end]
		if e.CompLength == e.OrigLength {
			tables[tag] = bytes.Clone(body)
			continue
		}

		zr, err := zlib.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("woff: table %q: %w", tag, err)
		}
		buf := make([]byte, e.OrigLength)
		_, err = io.ReadFull(zr, buf)
		zr.Close()
		if err != nil {
			return nil, fmt.Errorf("woff: table %q: %w", tag, err)
		}
		tables[tag] = buf
	}

	return &Font{
		Flavor: header.Flavor,
		Tables: tables,
	}, nil
}

// checksum computes the sfnt table checksum.  For the "head" table the
// checksum adjustment field is treated as zero.
func checksum(tag string, data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		if tag == "head" && i == 8 {
			continue
		}
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

func pad4(n uint32) uint32 {
	return (n + 3) &^ 3
}
