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

package webfont

import (
	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/repertoire"
)

// Request describes a single font conversion.
type Request struct {
	// InputPath is the font to convert.  TrueType, OpenType, WOFF and
	// WOFF2 files are accepted.
	InputPath string

	// OutputPath is the file to write.  An existing file is replaced only
	// if the conversion succeeds.
	OutputPath string

	// Text, if not nil, lists the characters to keep.  Text takes
	// precedence over TextPath.
	Text *string

	// TextPath, if not empty, names a text file listing the characters to
	// keep.
	TextPath string

	// Encoding is the character encoding of the file at TextPath.
	// The empty string selects UTF-8.
	Encoding string

	// Flags select additional characters which are kept whenever the
	// font is subset.  If Flags is nil, repertoire.DefaultFlags() is used,
	// so that the printable ASCII characters and the common CJK
	// punctuation are kept.
	Flags *repertoire.Flags

	// Flavor is the container format of the output.  The zero value
	// selects WOFF2.
	Flavor engine.Flavor
}

// TextSource describes where the characters to keep come from.
// The concrete types are InlineText and TextFile.
type TextSource interface {
	isTextSource()
}

// InlineText is a text source given directly as a string.
type InlineText string

// TextFile is a text source read from a file.
type TextFile struct {
	Path     string
	Encoding string
}

func (InlineText) isTextSource() {}
func (TextFile) isTextSource()   {}

// Source returns the text source of the request.  If both Text and
// TextPath are set, the inline text is used and the file is ignored.
// If neither is set, Source returns nil and the font is not subset.
func (req *Request) Source() TextSource {
	switch {
	case req.Text != nil:
		return InlineText(*req.Text)
	case req.TextPath != "":
		return TextFile{Path: req.TextPath, Encoding: req.Encoding}
	default:
		return nil
	}
}

func (req *Request) flags() repertoire.Flags {
	if req.Flags == nil {
		return repertoire.DefaultFlags()
	}
	return *req.Flags
}

func (req *Request) flavor() engine.Flavor {
	if req.Flavor == 0 {
		return engine.WOFF2
	}
	return req.Flavor
}
