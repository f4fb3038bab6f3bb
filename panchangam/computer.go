// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package panchangam computes the daily elements of the Hindu
// lunisolar calendar, tithi, nakshatra, yoga and karana, the calendar
// context (masa, paksha, samvatsara, ayana, ruthu, rashis) and the
// traditional windows of the day, for a location and civil date.
package panchangam

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"cloudeng.io/almanac/ephemeris"
	"cloudeng.io/almanac/tables"
	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

// Computer derives panchangam records from an ephemeris provider and
// a table set. It is safe for concurrent use.
type Computer struct {
	provider    ephemeris.Provider
	tables      *tables.Set
	concurrency int
}

// Option configures a Computer.
type Option func(*Computer)

// WithTables overrides the default name and segment tables.
func WithTables(ts *tables.Set) Option {
	return func(c *Computer) {
		c.tables = ts
	}
}

// WithConcurrency bounds the number of concurrent per-day
// computations, the default is GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(c *Computer) {
		c.concurrency = n
	}
}

// New returns a Computer using the supplied provider.
func New(provider ephemeris.Provider, opts ...Option) (*Computer, error) {
	c := &Computer{
		provider:    provider,
		tables:      tables.Default(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.provider == nil {
		return nil, fmt.Errorf("no ephemeris provider")
	}
	if err := c.tables.Validate(); err != nil {
		return nil, err
	}
	if c.concurrency < 1 {
		c.concurrency = 1
	}
	return c, nil
}

// Day computes the record for one location and civil date. The day's
// elements are those holding at sunrise; local noon stands in on days
// without a sunrise. Element end times are searched for over the 24
// hours following the reference instant.
func (c *Computer) Day(ctx context.Context, loc tables.Location, date datetime.CalendarDate) (*Record, error) {
	place := loc.Place()
	sunrise, sunset, err := c.provider.SunTimes(ctx, date, place)
	if err != nil {
		return nil, err
	}
	moonrise, moonset, err := c.provider.MoonTimes(ctx, date, place)
	if err != nil {
		return nil, err
	}
	ref := sunrise
	if ref.IsZero() {
		ref = date.Time(datetime.NewTimeOfDay(12, 0, 0), place.TimeLocation)
	}
	sun, moon, err := c.provider.Longitudes(ctx, ref)
	if err != nil {
		return nil, err
	}

	ts := c.tables
	r := &Record{
		Date:     dateString(date),
		Location: Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude},
		Timezone: loc.TZ,
		Info:     loc.Info(),
		Sunrise:  clock(sunrise),
		Sunset:   clock(sunset),
		Moonrise: clock(moonrise),
		Moonset:  clock(moonset),
	}

	tithi := Tithi(sun, moon)
	r.TithiNumber, r.TithiName = tithi, ts.Tithis[tithi-1]
	r.Paksha = ts.Pakshas[Paksha(tithi)-1]
	nakshatra := Nakshatra(moon)
	r.NakshatraNumber, r.NakshatraName = nakshatra, ts.Nakshatras[nakshatra-1]
	yoga := Yoga(sun, moon)
	r.YogaNumber, r.YogaName = yoga, ts.Yogas[yoga-1]
	masa := Masa(sun)
	r.MasaNumber, r.Masa = masa, ts.Masas[masa-1]
	r.Samvatsara = ts.Samvatsara(date.Year())
	r.Ayana = ts.Ayanas[Ayana(sun)-1]
	r.Ruthu = ts.Ruthus[Ruthu(sun)-1]
	suryarashi, chandrarashi := Rashi(sun), Rashi(moon)
	r.SuryaRashiNumber, r.SuryaRashi = suryarashi, ts.Rashis[suryarashi-1]
	r.ChandraRashiNumber, r.ChandraRashi = chandrarashi, ts.Rashis[chandrarashi-1]

	elongation := func(t time.Time) (float64, error) {
		s, m, err := c.provider.Longitudes(ctx, t)
		return mod360(m - s), err
	}
	lunar := func(t time.Time) (float64, error) {
		_, m, err := c.provider.Longitudes(ctx, t)
		return m, err
	}
	combined := func(t time.Time) (float64, error) {
		s, m, err := c.provider.Longitudes(ctx, t)
		return mod360(s + m), err
	}
	if r.TithiEnd, err = boundary(ctx, "tithi", elongation, ref, float64(tithi)*12); err != nil {
		return nil, err
	}
	if r.NakshatraEnd, err = boundary(ctx, "nakshatra", lunar, ref, float64(nakshatra)*360/27); err != nil {
		return nil, err
	}
	if r.YogaEnd, err = boundary(ctx, "yoga", combined, ref, float64(yoga)*360/27); err != nil {
		return nil, err
	}
	slot := KaranaSlot(sun, moon)
	for i := 0; i < 2; i++ {
		entry := Karana{Number: (slot+i)%60 + 1, Name: ts.Karanas[KaranaName((slot+i)%60)]}
		if entry.End, err = boundary(ctx, "karana", elongation, ref, float64(slot+i+1)*6); err != nil {
			return nil, err
		}
		r.Karanas = append(r.Karanas, entry)
	}

	weekday := date.Time(datetime.NewTimeOfDay(0, 0, 0), place.TimeLocation).Weekday()
	w := daySegments(ts, weekday, sunrise, sunset)
	r.Rahukalam, r.Yamagandam, r.Varjyam = w.rahu, w.yama, w.varjyam
	r.Abhijit, r.Amruthakalam = w.abhijit, w.amrutha
	r.Durmuhurtham = w.durmuhurtham
	return r, nil
}

// boundary renders a boundary crossing as a local clock time, "" when
// the crossing falls outside the search window. A search that fails to
// converge leaves that element's end unresolved rather than failing
// the whole record.
func boundary(ctx context.Context, element string, fn angleFn, start time.Time, target float64) (string, error) {
	end, found, err := solveCrossing(fn, start, target)
	if errors.Is(err, ErrNonConvergence) {
		ctxlog.Logger(ctx).Warn("boundary unresolved", "element", element, "target", target, "error", err)
		return "", nil
	}
	if err != nil || !found {
		return "", err
	}
	return clock(end), nil
}

// Range computes the records for every date from from to to
// inclusive, in date order. Days are computed concurrently; the first
// failure cancels the remainder.
func (c *Computer) Range(ctx context.Context, loc tables.Location, from, to datetime.CalendarDate) ([]*Record, error) {
	days := Dates(from, to)
	records := make([]*Record, len(days))
	g, ctx := errgroup.WithContext(ctx)
	g = errgroup.WithConcurrency(g, c.concurrency)
	for i, date := range days {
		g.Go(func() error {
			r, err := c.Day(ctx, loc, date)
			if err != nil {
				return fmt.Errorf("%v: %w", dateString(date), err)
			}
			records[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// Dates lists the calendar dates from from to to inclusive.
func Dates(from, to datetime.CalendarDate) []datetime.CalendarDate {
	var dates []datetime.CalendarDate
	day := time.Date(from.Year(), time.Month(from.Month()), from.Day(), 12, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), time.Month(to.Month()), to.Day(), 12, 0, 0, 0, time.UTC)
	for !day.After(end) {
		dates = append(dates, datetime.NewCalendarDate(day.Year(), datetime.Month(day.Month()), day.Day()))
		day = day.AddDate(0, 0, 1)
	}
	return dates
}
