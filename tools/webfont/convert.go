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
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/webfont"
	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/repertoire"
)

type convertCmd struct {
	Input       string  `short:"i" required:"" type:"path" help:"Input font (TTF, OTF, WOFF or WOFF2)."`
	Output      string  `short:"o" required:"" type:"path" help:"Output file."`
	CommonText  *string `placeholder:"TEXT" help:"Keep only the glyphs for the characters in TEXT.  Takes precedence over --common-chars."`
	CommonChars string  `type:"path" placeholder:"FILE" help:"Keep only the glyphs for the characters in the text file FILE."`
	Encoding    string  `default:"utf-8" help:"Character encoding of the --common-chars file."`
	BasicASCII  bool    `name:"basic-ascii" negatable:"" default:"true" help:"Also keep the printable ASCII characters."`
	CJKPunct    bool    `name:"basic-cjk-punct" negatable:"" default:"true" help:"Also keep common CJK punctuation."`
	Flavor      string  `enum:"woff2,woff,sfnt" default:"woff2" help:"Output format (${enum})."`
}

func (c *convertCmd) Run(log *logrus.Logger) error {
	flavor, err := engine.ParseFlavor(c.Flavor)
	if err != nil {
		return err
	}
	req := &webfont.Request{
		InputPath:  c.Input,
		OutputPath: c.Output,
		Text:       c.CommonText,
		TextPath:   c.CommonChars,
		Encoding:   c.Encoding,
		Flags: &repertoire.Flags{
			BasicASCII: c.BasicASCII,
			CJKPunct:   c.CJKPunct,
		},
		Flavor: flavor,
	}
	return webfont.NewDefault(webfont.WithLogger(log)).Convert(req)
}
