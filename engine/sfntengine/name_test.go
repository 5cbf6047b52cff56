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
	"testing"

	"github.com/google/go-cmp/cmp"
)

type nameRecord struct {
	platform, encoding, language, nameID uint16
	value                                string
}

func makeNameTable(format uint16, records []nameRecord, langTags []string) []byte {
	headerLen := 6 + 12*len(records)
	if format == 1 {
		headerLen += 2 + 4*len(langTags)
	}
	res := make([]byte, headerLen)
	binary.BigEndian.PutUint16(res[0:], format)
	binary.BigEndian.PutUint16(res[2:], uint16(len(records)))
	binary.BigEndian.PutUint16(res[4:], uint16(headerLen))
	var storage []byte
	for i, r := range records {
		out := res[6+12*i:]
		binary.BigEndian.PutUint16(out[0:], r.platform)
		binary.BigEndian.PutUint16(out[2:], r.encoding)
		binary.BigEndian.PutUint16(out[4:], r.language)
		binary.BigEndian.PutUint16(out[6:], r.nameID)
		binary.BigEndian.PutUint16(out[8:], uint16(len(r.value)))
		binary.BigEndian.PutUint16(out[10:], uint16(len(storage)))
		storage = append(storage, r.value...)
	}
	if format == 1 {
		pos := 6 + 12*len(records)
		binary.BigEndian.PutUint16(res[pos:], uint16(len(langTags)))
		for i, tag := range langTags {
			out := res[pos+2+4*i:]
			binary.BigEndian.PutUint16(out[0:], uint16(len(tag)))
			binary.BigEndian.PutUint16(out[2:], uint16(len(storage)))
			storage = append(storage, tag...)
		}
	}
	return append(res, storage...)
}

func TestFilterNames(t *testing.T) {
	records := []nameRecord{
		{3, 1, 0x409, 1, "\x00F\x00a\x00m"},
		{3, 1, 0x409, 4, "\x00F\x00u\x00l\x00l"},
		{3, 1, 0x407, 1, "\x00F\x00a"},
		{3, 1, 0x409, 256, "\x00X"},
		{1, 0, 0, 1, "Fam"},
	}

	cases := []struct {
		name  string
		ids   []uint16
		langs []uint16
		want  []nameRecord
	}{
		{"all", nil, nil, records},
		{"ids", []uint16{1}, nil, []nameRecord{records[0], records[2], records[4]}},
		{"langs", nil, []uint16{0x409}, []nameRecord{records[0], records[1], records[3]}},
		{"both", []uint16{1, 4}, []uint16{0x409}, []nameRecord{records[0], records[1]}},
		{"none", []uint16{}, nil, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := filterNames(makeNameTable(0, records, nil), c.ids, c.langs)
			if err != nil {
				t.Fatal(err)
			}
			want := makeNameTable(0, c.want, nil)
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("unexpected name table (-want +got):\n%s", d)
			}
		})
	}
}

func TestFilterNamesFormat1(t *testing.T) {
	records := []nameRecord{
		{3, 1, 0x8000, 1, "\x00A"},
		{3, 1, 0x409, 2, "\x00B"},
	}
	tags := []string{"\x00d\x00e"}
	got, err := filterNames(makeNameTable(1, records, tags), []uint16{1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := makeNameTable(1, records[:1], tags)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected name table (-want +got):\n%s", d)
	}
}

func TestFilterNamesMalformed(t *testing.T) {
	table := makeNameTable(0, []nameRecord{{3, 1, 0x409, 1, "abcd"}}, nil)
	cases := map[string][]byte{
		"short":   table[:4],
		"records": table[:10],
		"string":  table[:len(table)-1],
	}
	for name, data := range cases {
		if _, err := filterNames(data, nil, nil); !errors.Is(err, errName) {
			t.Errorf("%s: expected errName, got %v", name, err)
		}
	}
}
