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

package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/webfont"
	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/repertoire"
)

const testManifest = `
workers: 3
defaults:
  encoding: gbk
  basic_cjk_punct: false
jobs:
  - input: fonts/a.otf
    output: /abs/a.woff2
    common_chars: chars.txt
  - input: fonts/b.ttf
    common_text: "Hello"
    encoding: utf-8
    basic_ascii: false
    basic_cjk_punct: true
    flavor: woff
  - input: /abs/c.ttf
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest), "base")
	if err != nil {
		t.Fatal(err)
	}
	if m.Workers != 3 {
		t.Errorf("Workers = %d", m.Workers)
	}

	reqs, err := m.Requests()
	if err != nil {
		t.Fatal(err)
	}
	hello := "Hello"
	want := []*webfont.Request{
		{
			InputPath:  filepath.Join("base", "fonts", "a.otf"),
			OutputPath: "/abs/a.woff2",
			TextPath:   filepath.Join("base", "chars.txt"),
			Encoding:   "gbk",
			Flags:      &repertoire.Flags{BasicASCII: true},
			Flavor:     engine.WOFF2,
		},
		{
			InputPath:  filepath.Join("base", "fonts", "b.ttf"),
			OutputPath: filepath.Join("base", "fonts", "b.woff"),
			Text:       &hello,
			Encoding:   "utf-8",
			Flags:      &repertoire.Flags{CJKPunct: true},
			Flavor:     engine.WOFF,
		},
		{
			InputPath:  "/abs/c.ttf",
			OutputPath: "/abs/c.woff2",
			Encoding:   "gbk",
			Flags:      &repertoire.Flags{BasicASCII: true},
			Flavor:     engine.WOFF2,
		},
	}
	if d := cmp.Diff(want, reqs); d != "" {
		t.Errorf("unexpected requests (-want +got):\n%s", d)
	}
}

func TestParseManifestErrors(t *testing.T) {
	cases := map[string]string{
		"no jobs":      "workers: 2\n",
		"no input":     "jobs:\n  - output: x.woff2\n",
		"bad workers":  "workers: -1\njobs:\n  - input: a.ttf\n",
		"invalid yaml": "jobs: [\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(data), "."); err == nil {
				t.Error("no error")
			}
		})
	}
}

func TestRequestsErrors(t *testing.T) {
	cases := map[string]string{
		"bad flavor": "jobs:\n  - input: a.ttf\n    flavor: pdf\n",
		"overwrite":  "jobs:\n  - input: a.ttf\n    flavor: sfnt\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := ParseManifest([]byte(data), ".")
			if err != nil {
				t.Fatal(err)
			}
			if _, err := m.Requests(); err == nil {
				t.Error("no error")
			}
		})
	}
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fonts.yaml")
	err := os.WriteFile(path, []byte("jobs:\n  - input: x.ttf\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	m, err := ReadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	reqs, err := m.Requests()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := reqs[0].InputPath, filepath.Join(dir, "x.ttf"); got != want {
		t.Errorf("InputPath = %q, want %q", got, want)
	}
	if !reqs[0].Flags.BasicASCII || !reqs[0].Flags.CJKPunct {
		t.Error("augmentation flags are not on by default")
	}
}
