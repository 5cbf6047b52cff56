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

package repertoire

import (
	"bytes"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

const byteOrderMark = '\uFEFF'

// Normalize decodes raw using the named encoding and normalizes the
// result as described for [NormalizeString].
//
// Bytes which are not valid in the given encoding cause a *DecodeError.
// The error does not carry a file name; [ReadFile] adds it.
func Normalize(raw []byte, encodingName string) (string, error) {
	text, err := decode(raw, encodingName)
	if err != nil {
		return "", err
	}
	return NormalizeString(text), nil
}

// NormalizeString removes every byte order mark and all whitespace from s
// and appends the two structural spaces U+0020 and U+3000.
func NormalizeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if r == byteOrderMark || isSeparator(r) {
			continue
		}
		b.WriteRune(r)
	}
	b.WriteRune(Space)
	b.WriteRune(IdeographicSpace)
	return b.String()
}

// ReadFile reads and normalizes the text file at path.
func ReadFile(path, encodingName string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := Normalize(raw, encodingName)
	if e, ok := err.(*DecodeError); ok {
		e.Path = path
	}
	return text, err
}

// isSeparator reports whether r separates words in running text.  Besides
// the Unicode white space characters this includes the ASCII information
// separators U+001C to U+001F.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}

func decode(raw []byte, encodingName string) (string, error) {
	if encodingName == "" {
		encodingName = DefaultEncoding
	}
	e, err := lookupEncoding(encodingName)
	if err != nil {
		return "", &DecodeError{Encoding: encodingName, Err: err}
	}

	if isUTF8(e) {
		if !utf8.Valid(raw) {
			return "", &DecodeError{Encoding: encodingName, Err: ErrInvalidText}
		}
		return string(raw), nil
	}

	// The x/text decoders replace invalid input by U+FFFD instead of
	// failing.
	out, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &DecodeError{Encoding: encodingName, Err: err}
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", &DecodeError{Encoding: encodingName, Err: ErrInvalidText}
	}
	return string(out), nil
}

// IsBlank reports whether s consists only of white space and byte order
// marks.
func IsBlank(s string) bool {
	for _, r := range s {
		if r != byteOrderMark && !isSeparator(r) {
			return false
		}
	}
	return true
}
