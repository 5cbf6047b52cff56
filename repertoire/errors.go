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
	"errors"
	"strconv"
)

// ErrInvalidText is wrapped by a DecodeError when the input bytes are not
// valid in the requested encoding.
var ErrInvalidText = errors.New("invalid byte sequence")

// DecodeError indicates that a text file could not be decoded.
type DecodeError struct {
	Path     string
	Encoding string
	Err      error
}

func (err *DecodeError) Error() string {
	what := "text"
	if err.Path != "" {
		what = strconv.Quote(err.Path)
	}
	msg := "cannot decode " + what + " as " + err.Encoding
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if errors.Is(err.Err, ErrInvalidText) {
		msg += " (retry with a different encoding, e.g. " + err.suggest() + ")"
	}
	return msg
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

func (err *DecodeError) suggest() string {
	if e, lerr := lookupEncoding(err.Encoding); lerr == nil && isGBK(e) {
		return "utf-8"
	}
	return "gbk"
}

// EmptyRepertoireError indicates that a text source contained no
// characters to keep.
type EmptyRepertoireError struct {
	Source string
}

func (err *EmptyRepertoireError) Error() string {
	if err.Source == "" {
		return "empty character repertoire"
	}
	return "empty character repertoire: " + strconv.Quote(err.Source) + " contains no characters"
}
