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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBase128(t *testing.T) {
	cases := []struct {
		x   uint32
		enc []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x81, 0x00}},
		{16383, []byte{0xFF, 0x7F}},
		{16384, []byte{0x81, 0x80, 0x00}},
		{0xFFFFFFFF, []byte{0x8F, 0xFF, 0xFF, 0xFF, 0x7F}},
	}
	for _, c := range cases {
		enc := appendBase128(nil, c.x)
		if d := cmp.Diff(c.enc, enc); d != "" {
			t.Errorf("appendBase128(%d) (-want +got):\n%s", c.x, d)
		}
		x, n, err := readBase128(append(enc, 0xAA))
		if err != nil || x != c.x || n != len(enc) {
			t.Errorf("readBase128(%x) = %d, %d, %v", enc, x, n, err)
		}
	}
}

func TestBase128Invalid(t *testing.T) {
	cases := [][]byte{
		{},
		{0x80, 0x01},                   // leading zero
		{0x81, 0x81},                   // truncated
		{0x90, 0x80, 0x80, 0x80, 0x00}, // overflow
		{0x81, 0x80, 0x80, 0x80, 0x80, 0x00},
	}
	for _, enc := range cases {
		if _, _, err := readBase128(enc); !errors.Is(err, errBase128) {
			t.Errorf("readBase128(%x): expected error, got %v", enc, err)
		}
	}
}

func testTables() map[string][]byte {
	return map[string][]byte{
		"head": bytes.Repeat([]byte{1, 2, 3}, 18),
		"glyf": bytes.Repeat([]byte("glyph data "), 50),
		"loca": {0, 0, 0, 10, 0, 20},
		"zzzz": {42},
		"cmap": {},
	}
}

func TestRoundTrip(t *testing.T) {
	tables := testTables()
	buf := &bytes.Buffer{}
	n, err := Write(buf, 0x00010000, tables)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("Write returned %d, wrote %d bytes", n, buf.Len())
	}
	if buf.Len()%4 != 0 {
		t.Errorf("file length %d is not a multiple of 4", buf.Len())
	}

	font, err := Read(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if font.Flavor != 0x00010000 {
		t.Errorf("flavor %08x", font.Flavor)
	}
	if d := cmp.Diff(tables, font.Tables); d != "" {
		t.Errorf("tables changed (-want +got):\n%s", d)
	}
}

func TestHeader(t *testing.T) {
	tables := testTables()
	buf := &bytes.Buffer{}
	_, err := Write(buf, 0x4F54544F, tables)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	header := &fileHeader{}
	err = binary.Read(bytes.NewReader(data), binary.BigEndian, header)
	if err != nil {
		t.Fatal(err)
	}
	var sfntSize uint32 = 12 + 16*5
	for _, data := range tables {
		sfntSize += pad4(uint32(len(data)))
	}
	want := &fileHeader{
		Signature:           Signature,
		Flavor:              0x4F54544F,
		Length:              uint32(len(data)),
		NumTables:           5,
		TotalSfntSize:       sfntSize,
		TotalCompressedSize: header.TotalCompressedSize,
		MajorVersion:        1,
	}
	if d := cmp.Diff(want, header); d != "" {
		t.Errorf("unexpected header (-want +got):\n%s", d)
	}

	// The directory is sorted by tag: cmap, glyf, head, loca, zzzz.
	dir := data[headerSize:]
	if dir[0] != 0 || dir[1] != 0 {
		t.Errorf("cmap entry % x", dir[:2])
	}
	if dir[2] != 3<<6|10 {
		t.Errorf("glyf flags %02x", dir[2])
	}
}

func TestReadErrors(t *testing.T) {
	good := &bytes.Buffer{}
	_, err := Write(good, 0x00010000, map[string][]byte{"head": {1, 2, 3, 4}})
	if err != nil {
		t.Fatal(err)
	}

	transformed := bytes.Clone(good.Bytes())
	transformed[headerSize] |= 1 << transformShift

	badSig := bytes.Clone(good.Bytes())
	badSig[3] = 'F'

	cases := map[string][]byte{
		"short":       good.Bytes()[:20],
		"signature":   badSig,
		"transformed": transformed,
		"truncated":   good.Bytes()[:headerSize+3],
	}
	for name, data := range cases {
		if _, err := Read(data); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestWriteEmpty(t *testing.T) {
	_, err := Write(&bytes.Buffer{}, 0x00010000, nil)
	if err == nil {
		t.Error("expected an error for an empty font")
	}
}
