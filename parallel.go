/*
Copyright (C) 2018-2026 the mwrt authors.
This file is part of mwrt.

mwrt is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

mwrt is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with mwrt.  If not, see <http://www.gnu.org/licenses/>.
*/

package mwrt

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallel evaluates kernel independently at each frequency in freqs,
// fanning the work out across up to workers goroutines (GOMAXPROCS if
// workers<=0), and returns the results in the same order as freqs.
// kernel must be pure with respect to any state it closes over across
// workers, since it may run concurrently; there is no shared mutable
// state between the workers beyond the result slice each writes its own
// index of. Cancellation is not exposed and there is no timeout: the
// first kernel error aborts the batch and is returned, discarding any
// results from frequencies still in flight.
//
// This is the idiomatic-Go re-expression of the reference
// implementation's process-pool fan-out: a worker pool over a batch of
// (index, frequency) pairs rather than a shared list mutated by spawned
// OS processes.
func Parallel[T any](freqs []float64, kernel func(f float64) (T, error), workers int) ([]T, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(freqs) {
		workers = len(freqs)
	}
	results := make([]T, len(freqs))
	g, ctx := errgroup.WithContext(context.Background())
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, f := range freqs {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := kernel(f)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
