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

package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestVersion(t *testing.T) {
	cases := []struct {
		version  string
		settings []debug.BuildSetting
		want     string
	}{
		{"v0.3.1", nil, "v0.3.1"},
		{"(devel)", nil, ""},
		{"(devel)", []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
		}, "01234567"},
		{"", []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc"},
			{Key: "vcs.modified", Value: "true"},
		}, "abc+dirty"},
		{"", []debug.BuildSetting{
			{Key: "vcs.modified", Value: "true"},
		}, ""},
	}
	for _, c := range cases {
		info := &debug.BuildInfo{Settings: c.settings}
		info.Main.Version = c.version
		if got := Version(info); got != c.want {
			t.Errorf("Version(%q, %v) = %q, want %q", c.version, c.settings, got, c.want)
		}
	}
}
