// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package panchangam

import (
	"time"

	"cloudeng.io/almanac/tables"
)

// dayWindows are the traditional auspicious and inauspicious windows
// of a civil day, derived from the length of daylight.
type dayWindows struct {
	rahu         *Interval
	yama         *Interval
	varjyam      *Interval
	abhijit      *Interval
	amrutha      *Interval
	durmuhurtham []Period
}

// daySegments computes the day's windows from its sunrise and sunset.
// On days without both events, inside the polar circles, there are no
// windows.
func daySegments(ts *tables.Set, weekday time.Weekday, sunrise, sunset time.Time) dayWindows {
	var w dayWindows
	if sunrise.IsZero() || sunset.IsZero() || !sunset.After(sunrise) {
		return w
	}
	daylight := sunset.Sub(sunrise)
	eighth := daylight / 8
	interval := func(start time.Time, d time.Duration) *Interval {
		return &Interval{Start: clock(start), End: clock(start.Add(d))}
	}

	w.rahu = interval(sunrise.Add(time.Duration(ts.RahuSegments[weekday])*eighth), eighth)
	w.yama = interval(sunrise.Add(time.Duration(ts.YamaSegments[weekday])*eighth), eighth)

	morning := sunrise.Add(6 * time.Hour)
	w.durmuhurtham = []Period{
		{Period: "Morning", Start: clock(morning), End: clock(morning.Add(48 * time.Minute))},
		{Period: "Evening", Start: clock(sunset.Add(-48 * time.Minute)), End: clock(sunset)},
	}

	w.varjyam = interval(sunrise.Add(time.Duration(0.4*float64(daylight))), 48*time.Minute)

	muhurta := daylight / 15
	w.abhijit = interval(sunrise.Add(7*muhurta), muhurta)
	w.amrutha = interval(sunrise.Add(2*muhurta), muhurta)
	return w
}
