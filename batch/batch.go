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

package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/webfont"
)

// Converter performs a single conversion.  It is implemented by
// *webfont.Converter.
type Converter interface {
	Convert(req *webfont.Request) error
}

// Result is the outcome of one conversion.
type Result struct {
	Request *webfont.Request

	// Err is nil if the conversion succeeded.  Conversions which were
	// never started because the run was cancelled have the context error
	// here.
	Err error
}

// Run performs the conversions in reqs, using up to workers goroutines.
// If workers is zero or negative, one worker per CPU is used.
//
// The results are in the same order as reqs.  Without failFast, all
// requests are processed and the returned error is nil unless ctx is
// cancelled.  With failFast, no new conversions are started after the
// first failure, and the returned error is the first failure.
// Conversions which are already running always complete.
func Run(ctx context.Context, conv Converter, reqs []*webfont.Request, workers int, failFast bool) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(reqs))
	for i, req := range reqs {
		results[i].Request = req
	}

	g, gctx := errgroup.WithContext(ctx)
	if !failFast {
		gctx = ctx
	}
	g.SetLimit(workers)
	for i, req := range reqs {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(reqs); j++ {
				results[j].Err = err
			}
			break
		}
		g.Go(func() error {
			err := conv.Convert(req)
			results[i].Err = err
			if failFast {
				return err
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return results, err
}

// Failed returns the results of the conversions which did not succeed.
func Failed(results []Result) []Result {
	var res []Result
	for _, r := range results {
		if r.Err != nil {
			res = append(res, r)
		}
	}
	return res
}
