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

package woff

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	tables := map[string][]byte{
		"head": make([]byte, 54),
		"glyf": bytes.Repeat([]byte("compressible "), 100),
		"name": {1, 2, 3},
	}
	buf := &bytes.Buffer{}
	n, err := Write(buf, 0x00010000, tables)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) || buf.Len()%4 != 0 {
		t.Errorf("wrote %d bytes, reported %d", buf.Len(), n)
	}
	if buf.Len() >= len(tables["glyf"]) {
		t.Errorf("glyf table was not compressed: %d bytes", buf.Len())
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

func TestDirectory(t *testing.T) {
	head := make([]byte, 54)
	binary.BigEndian.PutUint32(head[8:12], 0xDEADBEEF)
	head[0] = 1
	buf := &bytes.Buffer{}
	_, err := Write(buf, 0x4F54544F, map[string][]byte{"head": head})
	if err != nil {
		t.Fatal(err)
	}

	r := bytes.NewReader(buf.Bytes())
	header := &fileHeader{}
	entry := &dirEntry{}
	_ = binary.Read(r, binary.BigEndian, header)
	_ = binary.Read(r, binary.BigEndian, entry)

	if header.Length != uint32(buf.Len()) || header.TotalSfntSize != 12+16+56 {
		t.Errorf("unexpected header %+v", header)
	}
	if string(entry.Tag[:]) != "head" || entry.OrigLength != 54 {
		t.Errorf("unexpected entry %+v", entry)
	}
	if entry.OrigChecksum != 0x01000000 {
		t.Errorf("checksum %08x, want 01000000", entry.OrigChecksum)
	}
}

func TestReadErrors(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte("wOF2 is not WOFF, but the header is long enough......"),
	} {
		if _, err := Read(data); err == nil {
			t.Errorf("Read(%q): expected error", data)
		}
	}
}
