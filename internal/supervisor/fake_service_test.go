// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// fakeService implements suture.Service. It fails its first failures runs
// and then blocks until the context is canceled.
type fakeService struct {
	name     string
	failures int32
	starts   atomic.Int32
	started  chan struct{}
}

func newFakeService(name string, failures int32) *fakeService {
	return &fakeService{name: name, failures: failures, started: make(chan struct{}, 16)}
}

func (f *fakeService) Serve(ctx context.Context) error {
	n := f.starts.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if n <= f.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeService) String() string { return f.name }
