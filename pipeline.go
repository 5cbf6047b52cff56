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
	"errors"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/webfont/detect"
	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/repertoire"
)

// conversion holds the state of a single run of Converter.Convert.
type conversion struct {
	eng engine.Engine
	req *Request
	log logrus.FieldLogger

	font *engine.Font
	text repertoire.Set
}

// stateFn is one step of the conversion.  It returns the next step, or nil
// once the conversion is complete.
type stateFn func(*conversion) (stateFn, error)

func (cv *conversion) step(s Step) logrus.FieldLogger {
	return cv.log.WithField("step", s.String())
}

func (cv *conversion) load() (stateFn, error) {
	path := cv.req.InputPath
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	cv.font, err = cv.eng.Load(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	log := cv.step(StepLoad)
	log.WithField("glyphs", cv.font.NumGlyphs()).Info("font loaded")
	log.WithField("tables", slices.Sorted(maps.Keys(cv.font.Tables))).Debug("font tables")
	return (*conversion).detect, nil
}

func (cv *conversion) detect() (stateFn, error) {
	log := cv.step(StepDetect)
	if detect.Mismatch(cv.font, cv.req.InputPath) {
		log.Warn("file name extension does not match the font signature")
	}
	kind := detect.Classify(cv.font, cv.req.InputPath)
	log.WithField("outlines", kind).Info("outline format detected")
	if kind == detect.CFFOutline {
		return (*conversion).convertOutline, nil
	}
	return (*conversion).buildRepertoire, nil
}

func (cv *conversion) convertOutline() (stateFn, error) {
	path := cv.req.InputPath
	err := cv.eng.ConvertOutlines(cv.font)
	var unsupported *engine.UnsupportedError
	switch {
	case errors.As(err, &unsupported):
		return nil, &MissingCapabilityError{
			Path:       path,
			Capability: unsupported.Component,
			Err:        err,
		}
	case err != nil:
		return nil, &OutlineConversionError{Path: path, Err: err}
	case cv.font.IsCFF():
		return nil, &OutlineConversionError{
			Path: path,
			Err:  errors.New("font still has CFF outlines"),
		}
	}
	cv.step(StepConvertOutline).Info("outlines converted to glyf format")
	return (*conversion).buildRepertoire, nil
}

func (cv *conversion) buildRepertoire() (stateFn, error) {
	log := cv.step(StepBuildRepertoire)

	var primary, source string
	switch src := cv.req.Source().(type) {
	case nil:
		log.Info("no text source, keeping all glyphs")
		return (*conversion).save, nil
	case InlineText:
		primary = string(src)
		source = "inline text"
	case TextFile:
		encoding := src.Encoding
		if encoding == "" {
			encoding = repertoire.DefaultEncoding
		}
		text, err := repertoire.ReadFile(src.Path, encoding)
		var decodeErr *DecodeError
		if err != nil && !errors.As(err, &decodeErr) {
			err = &DecodeError{Path: src.Path, Encoding: encoding, Err: err}
		}
		if err != nil {
			return nil, err
		}
		if repertoire.IsBlank(text) {
			return nil, &EmptyRepertoireError{Source: src.Path}
		}
		primary = text
		source = src.Path
	}

	text, err := repertoire.Build(primary, cv.req.flags())
	if err != nil {
		var emptyErr *EmptyRepertoireError
		if errors.As(err, &emptyErr) && emptyErr.Source == "" {
			emptyErr.Source = source
		}
		return nil, err
	}
	cv.text = text
	log.WithField("characters", text.Len()).Info("character repertoire built")
	return (*conversion).subset, nil
}

func (cv *conversion) subset() (stateFn, error) {
	err := cv.eng.Subset(cv.font, cv.text, engine.DefaultSubsetOptions())
	if err != nil {
		return nil, &SubsetError{Path: cv.req.InputPath, Err: err}
	}
	cv.step(StepSubset).Info("font subset")
	return (*conversion).save, nil
}

func (cv *conversion) save() (stateFn, error) {
	path := cv.req.OutputPath
	flavor := cv.req.flavor()
	cv.font.SetFlavor(flavor)
	err := writeFile(path, func(w io.Writer) error {
		return cv.eng.Encode(w, cv.font)
	})
	if err != nil {
		return nil, &SaveError{Path: path, Err: err}
	}
	cv.step(StepSave).WithFields(logrus.Fields{
		"output": path,
		"flavor": flavor,
	}).Info("font saved")
	return nil, nil
}

func (cv *conversion) close() {
	if cv.font != nil {
		cv.font.Close()
		cv.font = nil
	}
}
