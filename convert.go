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
	"io"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/webfont/cff2glyf"
	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/engine/sfntengine"
)

// Converter runs font conversions.  A Converter has no mutable state and
// can be used by several goroutines at the same time.
type Converter struct {
	eng engine.Engine
	log logrus.FieldLogger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used to report progress.  By default, no
// messages are logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

// New returns a converter which uses eng for all font operations.
func New(eng engine.Engine, opts ...Option) *Converter {
	c := &Converter{eng: eng}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		c.log = discard
	}
	return c
}

// NewDefault returns a converter which uses the sfnt engine, with support
// for CFF-based fonts.
func NewDefault(opts ...Option) *Converter {
	eng := sfntengine.New(sfntengine.WithOutlineConverter(cff2glyf.New()))
	return New(eng, opts...)
}

// Convert performs the conversion described by req.
//
// If the request has a text source, the font is subset to the characters
// of the text, together with the characters selected by req.Flags.
// Otherwise all glyphs are kept.
//
// On error, no output file is written.  The error is one of
// *LoadError, *MissingCapabilityError, *OutlineConversionError,
// *DecodeError, *EmptyRepertoireError, *SubsetError or *SaveError.
func (c *Converter) Convert(req *Request) error {
	cv := &conversion{
		eng: c.eng,
		req: req,
		log: c.log.WithField("input", req.InputPath),
	}
	defer cv.close()

	for state := stateFn((*conversion).load); state != nil; {
		var err error
		state, err = state(cv)
		if err != nil {
			return err
		}
	}
	return nil
}
