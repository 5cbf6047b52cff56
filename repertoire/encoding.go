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
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used for text files when no encoding is given.
const DefaultEncoding = "utf-8"

var encodingAliases = map[string]string{
	"":          DefaultEncoding,
	"utf8":      "utf-8",
	"utf-8-sig": "utf-8",
	"utf_8":     "utf-8",
	"cp936":     "gbk",
	"ms936":     "gbk",
}

// lookupEncoding finds the text encoding with the given name.  Both WHATWG
// and IANA names are recognised.
func lookupEncoding(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := encodingAliases[key]; ok {
		key = alias
	}
	if e, err := htmlindex.Get(key); err == nil {
		return e, nil
	}
	e, err := ianaindex.IANA.Encoding(key)
	if err != nil || e == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return e, nil
}

func isUTF8(e encoding.Encoding) bool {
	return e == unicode.UTF8
}

func isGBK(e encoding.Encoding) bool {
	return e == simplifiedchinese.GBK || e == simplifiedchinese.GB18030
}
