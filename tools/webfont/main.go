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

// Command webfont converts TrueType and OpenType fonts into web fonts,
// optionally keeping only the glyphs needed for a given text.
//
// Usage:
//
//	webfont convert -i font.otf -o font.woff2 --common-chars chars.txt
//	webfont batch fonts.yaml
//	webfont inspect font.woff2 --text "Hello"
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"seehuhn.de/go/webfont/tools/internal/buildinfo"
	"seehuhn.de/go/webfont/tools/internal/profile"
)

type cli struct {
	Verbose    bool             `short:"v" help:"Show debugging output."`
	CPUProfile string           `name:"cpuprofile" type:"path" placeholder:"FILE" help:"Write a CPU profile to FILE."`
	MemProfile string           `name:"memprofile" type:"path" placeholder:"FILE" help:"Write a memory profile to FILE."`
	Version    kong.VersionFlag `help:"Show the version and exit."`

	Convert convertCmd `cmd:"" help:"Convert a font into a web font."`
	Batch   batchCmd   `cmd:"" help:"Run the conversions listed in a YAML manifest."`
	Inspect inspectCmd `cmd:"" help:"Show information about a font file."`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("webfont"),
		kong.Description("Convert TrueType and OpenType fonts into WOFF2 web fonts."),
		kong.Vars{"version": buildinfo.Short("webfont")},
		kong.UsageOnError(),
	)

	log := newLogger(args.Verbose)
	if err := run(ctx, &args, log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(ctx *kong.Context, args *cli, log *logrus.Logger) error {
	stop, err := profile.Start(args.CPUProfile, args.MemProfile, log)
	if err != nil {
		return err
	}
	defer stop()

	return ctx.Run(log)
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	log.Formatter = &logrus.TextFormatter{
		ForceColors:      isTerm,
		DisableColors:    !isTerm,
		DisableTimestamp: true,
	}
	if verbose {
		log.Level = logrus.DebugLevel
	}
	return log
}
