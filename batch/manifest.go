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

// Package batch runs many font conversions, described by a YAML manifest,
// in parallel.
//
// A manifest looks like this:
//
//	workers: 4
//	defaults:
//	  encoding: utf-8
//	  basic_ascii: true
//	  basic_cjk_punct: true
//	  flavor: woff2
//	jobs:
//	  - input: fonts/NotoSansSC-Regular.otf
//	    output: web/NotoSansSC-Regular.woff2
//	    common_chars: chars.txt
//	  - input: fonts/Title.ttf
//	    common_text: "Hello World"
//	    basic_cjk_punct: false
//
// Relative paths are interpreted relative to the directory containing the
// manifest.  If a job has no output path, the input path with the file
// name extension of the output flavor is used.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/webfont"
	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/repertoire"
)

// Manifest is the decoded form of a batch manifest.
type Manifest struct {
	// Workers is the number of conversions run in parallel.
	// Zero means one worker per CPU.
	Workers int `yaml:"workers"`

	Defaults Settings `yaml:"defaults"`
	Jobs     []Job    `yaml:"jobs"`

	dir string
}

// Settings are the conversion settings which can be given both for the
// whole manifest and for individual jobs.  Unset fields are inherited.
type Settings struct {
	Encoding      string `yaml:"encoding,omitempty"`
	BasicASCII    *bool  `yaml:"basic_ascii,omitempty"`
	BasicCJKPunct *bool  `yaml:"basic_cjk_punct,omitempty"`
	Flavor        string `yaml:"flavor,omitempty"`
}

// Job describes one conversion.
type Job struct {
	Input       string  `yaml:"input"`
	Output      string  `yaml:"output,omitempty"`
	CommonText  *string `yaml:"common_text,omitempty"`
	CommonChars string  `yaml:"common_chars,omitempty"`

	Settings `yaml:",inline"`
}

// ReadManifest reads and decodes the manifest file at path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data, filepath.Dir(path))
}

// ParseManifest decodes a manifest.  Relative paths in the manifest are
// resolved against dir.
func ParseManifest(data []byte, dir string) (*Manifest, error) {
	m := &Manifest{dir: dir}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if len(m.Jobs) == 0 {
		return nil, errors.New("batch: manifest has no jobs")
	}
	if m.Workers < 0 {
		return nil, fmt.Errorf("batch: invalid number of workers %d", m.Workers)
	}
	for i, job := range m.Jobs {
		if strings.TrimSpace(job.Input) == "" {
			return nil, fmt.Errorf("batch: job %d has no input", i+1)
		}
	}
	return m, nil
}

// Requests converts the jobs of the manifest into conversion requests.
func (m *Manifest) Requests() ([]*webfont.Request, error) {
	reqs := make([]*webfont.Request, 0, len(m.Jobs))
	for i, job := range m.Jobs {
		s := m.Defaults.merge(job.Settings)
		flavor, err := engine.ParseFlavor(s.Flavor)
		if err != nil {
			return nil, fmt.Errorf("batch: job %d: %w", i+1, err)
		}

		input := m.resolve(job.Input)
		output := m.resolve(job.Output)
		if job.Output == "" {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + flavor.Ext()
		}
		if output == input {
			return nil, fmt.Errorf("batch: job %d: output would overwrite input %q", i+1, input)
		}

		req := &webfont.Request{
			InputPath:  input,
			OutputPath: output,
			Text:       job.CommonText,
			Encoding:   s.Encoding,
			Flags: &repertoire.Flags{
				BasicASCII: s.BasicASCII == nil || *s.BasicASCII,
				CJKPunct:   s.BasicCJKPunct == nil || *s.BasicCJKPunct,
			},
			Flavor: flavor,
		}
		if job.CommonChars != "" {
			req.TextPath = m.resolve(job.CommonChars)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (m *Manifest) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.dir, path)
}

// merge returns s, with the fields set in override replaced.
func (s Settings) merge(override Settings) Settings {
	if override.Encoding != "" {
		s.Encoding = override.Encoding
	}
	if override.BasicASCII != nil {
		s.BasicASCII = override.BasicASCII
	}
	if override.BasicCJKPunct != nil {
		s.BasicCJKPunct = override.BasicCJKPunct
	}
	if override.Flavor != "" {
		s.Flavor = override.Flavor
	}
	return s
}
