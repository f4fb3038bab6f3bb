// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package panchangam

import (
	"errors"
	"math"
	"time"
)

// ErrNonConvergence is returned when a boundary search fails to narrow
// its bracket within the iteration limit.
var ErrNonConvergence = errors.New("boundary search did not converge")

const (
	boundaryPrecision = time.Minute
	maxIterations     = 30
)

// angleFn returns an angle in degrees in [0..360) at an instant. The
// functions handed to the solver advance monotonically and by less
// than a full circle per day.
type angleFn func(t time.Time) (float64, error)

func mod360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// solveCrossing locates the first instant in [start .. start+24h] at
// which fn reaches target degrees, to one minute precision. The
// crossing is detected on the angle's advance from its value at start,
// so targets may wrap through 0. A crossing that does not occur within
// the window, including the degenerate case of an angle that does not
// advance, is reported as not found with a nil error.
func solveCrossing(fn angleFn, start time.Time, target float64) (time.Time, bool, error) {
	f0, err := fn(start)
	if err != nil {
		return time.Time{}, false, err
	}
	end := start.Add(24 * time.Hour)
	f1, err := fn(end)
	if err != nil {
		return time.Time{}, false, err
	}
	advance := mod360(f1 - f0)
	need := mod360(target - f0)
	if advance == 0 || need > advance {
		return time.Time{}, false, nil
	}
	lo, hi := start, end
	for i := 0; hi.Sub(lo) > boundaryPrecision; i++ {
		if i >= maxIterations {
			return time.Time{}, false, ErrNonConvergence
		}
		mid := lo.Add(hi.Sub(lo) / 2)
		fm, err := fn(mid)
		if err != nil {
			return time.Time{}, false, err
		}
		if mod360(fm-f0) >= need {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, true, nil
}
