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
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"seehuhn.de/go/webfont"
	"seehuhn.de/go/webfont/internal/testfont"
)

type fakeConverter struct {
	mu      sync.Mutex
	running int
	peak    int
	calls   atomic.Int32
	fail    map[string]bool
	release chan struct{}
}

func (c *fakeConverter) Convert(req *webfont.Request) error {
	c.calls.Add(1)
	c.mu.Lock()
	c.running++
	c.peak = max(c.peak, c.running)
	c.mu.Unlock()

	if c.release != nil {
		<-c.release
	}

	c.mu.Lock()
	c.running--
	c.mu.Unlock()
	if c.fail[req.InputPath] {
		return errors.New("conversion failed")
	}
	return nil
}

func makeRequests(n int) []*webfont.Request {
	reqs := make([]*webfont.Request, n)
	for i := range reqs {
		reqs[i] = &webfont.Request{InputPath: strconv.Itoa(i)}
	}
	return reqs
}

func TestRunLimit(t *testing.T) {
	release := make(chan struct{})
	conv := &fakeConverter{release: release}
	reqs := makeRequests(20)

	done := make(chan struct{})
	var results []Result
	var err error
	go func() {
		results, err = Run(context.Background(), conv, reqs, 3, false)
		close(done)
	}()
	for range reqs {
		release <- struct{}{}
	}
	<-done

	if err != nil {
		t.Fatal(err)
	}
	if conv.peak > 3 {
		t.Errorf("%d conversions ran in parallel", conv.peak)
	}
	for i, r := range results {
		if r.Request != reqs[i] || r.Err != nil {
			t.Errorf("result %d: %v", i, r.Err)
		}
	}
}

func TestRunErrors(t *testing.T) {
	conv := &fakeConverter{fail: map[string]bool{"2": true, "5": true}}
	reqs := makeRequests(8)

	results, err := Run(context.Background(), conv, reqs, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if int(conv.calls.Load()) != len(reqs) {
		t.Errorf("%d of %d conversions run", conv.calls.Load(), len(reqs))
	}
	failed := Failed(results)
	if len(failed) != 2 || failed[0].Request != reqs[2] || failed[1].Request != reqs[5] {
		t.Errorf("unexpected failures %v", failed)
	}
}

func TestRunFailFast(t *testing.T) {
	conv := &fakeConverter{fail: map[string]bool{"0": true}}
	reqs := makeRequests(50)

	results, err := Run(context.Background(), conv, reqs, 1, true)
	if err == nil {
		t.Fatal("no error")
	}
	if results[0].Err == nil {
		t.Error("first conversion did not fail")
	}
	if n := int(conv.calls.Load()); n >= len(reqs) {
		t.Errorf("all %d conversions were started", n)
	}
	if last := results[len(results)-1].Err; !errors.Is(last, context.Canceled) {
		t.Errorf("last result: %v", last)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := &fakeConverter{}
	results, err := Run(ctx, conv, makeRequests(4), 2, false)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if conv.calls.Load() != 0 {
		t.Error("conversions started after cancellation")
	}
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result error %v", r.Err)
		}
	}
}

func TestRunManifest(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "a.ttf"), testfont.TrueType(), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	manifest := `
jobs:
  - input: a.ttf
    common_text: ABC
  - input: a.ttf
    output: full.woff
    flavor: woff
  - input: missing.ttf
`
	m, err := ParseManifest([]byte(manifest), dir)
	if err != nil {
		t.Fatal(err)
	}
	reqs, err := m.Requests()
	if err != nil {
		t.Fatal(err)
	}

	results, err := Run(context.Background(), webfont.NewDefault(), reqs, m.Workers, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.woff2", "full.woff"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Error(err)
		}
	}
	var loadErr *webfont.LoadError
	if !errors.As(results[2].Err, &loadErr) {
		t.Errorf("missing input: %v", results[2].Err)
	}
}
