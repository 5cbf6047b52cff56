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
	"strconv"

	"seehuhn.de/go/webfont/repertoire"
)

// Step identifies a stage of the conversion pipeline.
type Step int

// The steps of a conversion, in the order they are executed.
const (
	StepLoad Step = iota + 1
	StepDetect
	StepConvertOutline
	StepBuildRepertoire
	StepSubset
	StepSave
)

func (s Step) String() string {
	switch s {
	case StepLoad:
		return "load"
	case StepDetect:
		return "detect"
	case StepConvertOutline:
		return "convert-outline"
	case StepBuildRepertoire:
		return "build-repertoire"
	case StepSubset:
		return "subset"
	case StepSave:
		return "save"
	default:
		return "Step(" + strconv.Itoa(int(s)) + ")"
	}
}

// The text source errors are defined in the repertoire package.
type (
	DecodeError          = repertoire.DecodeError
	EmptyRepertoireError = repertoire.EmptyRepertoireError
)

// LoadError indicates that the input font could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (err *LoadError) Error() string {
	return "cannot load font " + strconv.Quote(err.Path) + ": " + err.Err.Error()
}

func (err *LoadError) Unwrap() error {
	return err.Err
}

// MissingCapabilityError indicates that a font has CFF outlines, but the
// engine has no outline converter.
type MissingCapabilityError struct {
	Path string

	// Capability names the missing optional component.
	Capability string

	Err error
}

func (err *MissingCapabilityError) Error() string {
	return "converting " + strconv.Quote(err.Path) + " requires the " +
		err.Capability + ": " + err.Err.Error()
}

func (err *MissingCapabilityError) Unwrap() error {
	return err.Err
}

// OutlineConversionError indicates that the outline converter failed.
type OutlineConversionError struct {
	Path string
	Err  error
}

func (err *OutlineConversionError) Error() string {
	return "cannot convert outlines of " + strconv.Quote(err.Path) + ": " + err.Err.Error()
}

func (err *OutlineConversionError) Unwrap() error {
	return err.Err
}

// SubsetError indicates that the engine failed to subset a font.
type SubsetError struct {
	Path string
	Err  error
}

func (err *SubsetError) Error() string {
	return "cannot subset " + strconv.Quote(err.Path) + ": " + err.Err.Error()
}

func (err *SubsetError) Unwrap() error {
	return err.Err
}

// SaveError indicates that the output file could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (err *SaveError) Error() string {
	return "cannot save " + strconv.Quote(err.Path) + ": " + err.Err.Error()
}

func (err *SaveError) Unwrap() error {
	return err.Err
}

// FailedStep returns the pipeline step which caused err.
// The second return value is false if err was not returned by
// Converter.Convert.
func FailedStep(err error) (Step, bool) {
	var (
		loadErr    *LoadError
		missingErr *MissingCapabilityError
		outlineErr *OutlineConversionError
		decodeErr  *DecodeError
		emptyErr   *EmptyRepertoireError
		subsetErr  *SubsetError
		saveErr    *SaveError
	)
	switch {
	case errors.As(err, &loadErr):
		return StepLoad, true
	case errors.As(err, &missingErr), errors.As(err, &outlineErr):
		return StepConvertOutline, true
	case errors.As(err, &decodeErr), errors.As(err, &emptyErr):
		return StepBuildRepertoire, true
	case errors.As(err, &subsetErr):
		return StepSubset, true
	case errors.As(err, &saveErr):
		return StepSave, true
	}
	return 0, false
}
