// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ephemeris provides the astronomical inputs required for
// panchangam computation: apparent sidereal longitudes of the sun and
// moon and local rise and set times for a calendar date and place.
package ephemeris

import (
	"context"
	"errors"
	"time"

	"cloudeng.io/datetime"
)

// ErrEphemeris is returned when an astronomical quantity cannot be
// computed. It is distinct from an event that simply does not occur,
// such as a missing sunrise inside a polar circle, which is reported
// as a zero time with a nil error.
var ErrEphemeris = errors.New("ephemeris unavailable")

// Provider supplies positions and event times. Implementations must be
// safe for concurrent use and deterministic for a given instant, date
// and place.
type Provider interface {
	// Longitudes returns the apparent sidereal (Lahiri) longitudes of
	// the sun and moon at the given instant, in degrees in [0..360).
	Longitudes(ctx context.Context, t time.Time) (sun, moon float64, err error)

	// SunTimes returns sunrise and sunset for the calendar date at the
	// place, expressed in the place's timezone. A zero time reports
	// that the event does not occur on that date.
	SunTimes(ctx context.Context, date datetime.CalendarDate, place datetime.Place) (rise, set time.Time, err error)

	// MoonTimes returns the moonrise and moonset falling within the
	// calendar date at the place, expressed in the place's timezone.
	// Either or both may be zero; the moon rises and sets some 50
	// minutes later each day and hence skips a day once a month.
	MoonTimes(ctx context.Context, date datetime.CalendarDate, place datetime.Place) (rise, set time.Time, err error)
}
