// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"context"
	"time"

	"cloudeng.io/datetime"
)

// Mean daily motions in degrees per day.
const (
	MeanSunRate  = 0.98564736
	MeanMoonRate = 13.17639646
)

// Model is a synthetic Provider with uniform solar and lunar motion
// and fixed rise and set times. It allows panchangam computations to
// be exercised deterministically, without an astronomical library and
// with full control over element boundaries.
type Model struct {
	// Epoch is the instant at which Sun and Moon hold. Longitudes
	// advance linearly from it, in both directions.
	Epoch time.Time
	// Sun and Moon are sidereal longitudes at Epoch in degrees.
	Sun  float64
	Moon float64
	// SunRate and MoonRate are in degrees per day and default to the
	// mean daily motions.
	SunRate  float64
	MoonRate float64

	// Rise and Set are the fixed local sunrise and sunset, defaulting
	// to 06:00 and 18:00. NoSun reports both as absent.
	Rise  datetime.TimeOfDay
	Set   datetime.TimeOfDay
	NoSun bool

	// MoonRise and MoonSet are the fixed local lunar events,
	// defaulting to 09:00 and 21:00. NoMoon reports both as absent.
	MoonRise datetime.TimeOfDay
	MoonSet  datetime.TimeOfDay
	NoMoon   bool

	// Err, when set, is returned by every method.
	Err error
}

// Longitudes implements Provider.
func (m *Model) Longitudes(_ context.Context, t time.Time) (float64, float64, error) {
	if m.Err != nil {
		return 0, 0, m.Err
	}
	days := t.Sub(m.Epoch).Hours() / 24
	sunRate, moonRate := m.SunRate, m.MoonRate
	if sunRate == 0 {
		sunRate = MeanSunRate
	}
	if moonRate == 0 {
		moonRate = MeanMoonRate
	}
	return normalize(m.Sun + sunRate*days), normalize(m.Moon + moonRate*days), nil
}

// SunTimes implements Provider.
func (m *Model) SunTimes(_ context.Context, date datetime.CalendarDate, place datetime.Place) (time.Time, time.Time, error) {
	if m.Err != nil {
		return time.Time{}, time.Time{}, m.Err
	}
	if m.NoSun {
		return time.Time{}, time.Time{}, nil
	}
	rise, set := m.Rise, m.Set
	var unset datetime.TimeOfDay
	if rise == unset && set == unset {
		rise, set = datetime.NewTimeOfDay(6, 0, 0), datetime.NewTimeOfDay(18, 0, 0)
	}
	return date.Time(rise, place.TimeLocation), date.Time(set, place.TimeLocation), nil
}

// MoonTimes implements Provider.
func (m *Model) MoonTimes(_ context.Context, date datetime.CalendarDate, place datetime.Place) (time.Time, time.Time, error) {
	if m.Err != nil {
		return time.Time{}, time.Time{}, m.Err
	}
	if m.NoMoon {
		return time.Time{}, time.Time{}, nil
	}
	rise, set := m.MoonRise, m.MoonSet
	var unset datetime.TimeOfDay
	if rise == unset && set == unset {
		rise, set = datetime.NewTimeOfDay(9, 0, 0), datetime.NewTimeOfDay(21, 0, 0)
	}
	return date.Time(rise, place.TimeLocation), date.Time(set, place.TimeLocation), nil
}
