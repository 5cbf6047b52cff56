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

package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/webfont/detect"
	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/engine/sfntengine"
	"seehuhn.de/go/webfont/repertoire"
	"seehuhn.de/go/webfont/woff"
	"seehuhn.de/go/webfont/woff2"
)

type inspectCmd struct {
	File string  `arg:"" type:"existingfile" help:"Font file to inspect."`
	Text *string `placeholder:"TEXT" help:"List the characters of TEXT which the font cannot display."`
}

func (c *inspectCmd) Run(log *logrus.Logger) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	f, err := sfntengine.New().Load(data)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	defer f.Close()
	log.WithField("file", c.File).Debug("font loaded")

	var text []rune
	if c.Text != nil {
		text = repertoire.NewSet([]rune(*c.Text)...).Runes()
	}
	return writeReport(os.Stdout, f, container(data), c.File, text)
}

func container(data []byte) engine.Flavor {
	if len(data) < 4 {
		return engine.SFNT
	}
	switch binary.BigEndian.Uint32(data) {
	case woff2.Signature:
		return engine.WOFF2
	case woff.Signature:
		return engine.WOFF
	default:
		return engine.SFNT
	}
}

func writeReport(w io.Writer, f *engine.Font, flavor engine.Flavor, fname string, text []rune) error {
	fmt.Fprintf(w, "file:      %s\n", fname)
	fmt.Fprintf(w, "container: %s\n", flavor)
	fmt.Fprintf(w, "outlines:  %s\n", detect.Classify(f, fname))
	fmt.Fprintf(w, "glyphs:    %d\n", f.NumGlyphs())
	fmt.Fprintf(w, "tables:\n")
	for _, name := range slices.Sorted(maps.Keys(f.Tables)) {
		fmt.Fprintf(w, "  %-4s %8d\n", name, len(f.Tables[name]))
	}

	if text == nil {
		return nil
	}
	missing, err := sfntengine.Coverage(f, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "coverage:  %d of %d characters\n", len(text)-len(missing), len(text))
	for _, r := range missing {
		name := runenames.Name(r)
		if name == "" {
			name = "<unnamed>"
		}
		fmt.Fprintf(w, "  missing U+%04X %s\n", r, name)
	}
	return nil
}
