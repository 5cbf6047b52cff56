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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/webfont"
	"seehuhn.de/go/webfont/batch"
)

type batchCmd struct {
	Manifest string `arg:"" type:"existingfile" help:"YAML file listing the conversions."`
	Workers  int    `short:"j" help:"Number of parallel conversions.  Overrides the manifest."`
	FailFast bool   `help:"Stop starting new conversions after the first failure."`
}

func (c *batchCmd) Run(log *logrus.Logger) error {
	m, err := batch.ReadManifest(c.Manifest)
	if err != nil {
		return err
	}
	reqs, err := m.Requests()
	if err != nil {
		return err
	}
	workers := m.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	conv := webfont.NewDefault(webfont.WithLogger(log))
	results, err := batch.Run(ctx, conv, reqs, workers, c.FailFast)

	failed := batch.Failed(results)
	for _, r := range failed {
		log.WithField("input", r.Request.InputPath).Error(r.Err)
	}
	log.WithFields(logrus.Fields{
		"total":  len(results),
		"failed": len(failed),
	}).Info("batch finished")

	switch {
	case len(failed) > 0:
		return fmt.Errorf("%d of %d conversions failed", len(failed), len(results))
	case err != nil:
		return err
	}
	return nil
}
