// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/globe"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/mooncaker816/learnmeeus/v3/nutation"
	"github.com/mooncaker816/learnmeeus/v3/rise"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/mooncaker816/learnmeeus/v3/solar"
	sunrise "github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/unit"
)

// Meeus implements Provider using the algorithms from Meeus,
// "Astronomical Algorithms", for solar and lunar positions and lunar
// rise and set, and the NOAA method for sunrise and sunset.
type Meeus struct{}

// Lahiri (Chitrapaksha) ayanamsa: value at J2000.0 in degrees and its
// accumulation rate in arcseconds per Julian year.
const (
	ayanamsaJ2000 = 23.853203
	ayanamsaRate  = 50.2878
)

// Ayanamsa returns the Lahiri ayanamsa in degrees at the given Julian
// date. Subtracting it from a tropical longitude yields the sidereal
// longitude used throughout the panchangam.
func Ayanamsa(jd float64) float64 {
	years := (jd - base.J2000) / base.JulianYear
	return ayanamsaJ2000 + ayanamsaRate*years/3600
}

// deltaT estimates TT-UT in seconds using the Espenak and Meeus
// polynomial fit for 2005..2050. The fit degrades gracefully for
// nearby decades, which is ample for rise and set interpolation.
func deltaT(jd float64) float64 {
	t := (jd - base.J2000) / base.JulianYear
	return 62.92 + 0.32217*t + 0.005589*t*t
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Longitudes implements Provider.
func (Meeus) Longitudes(_ context.Context, t time.Time) (float64, float64, error) {
	jd := julian.TimeToJD(t)
	jde := jd + deltaT(jd)/86400
	Δψ, _ := nutation.Nutation(jde)
	sun := solar.ApparentLongitude(base.J2000Century(jde))
	moon, _, _ := moonposition.Position(jde)
	ayanamsa := Ayanamsa(jd)
	return normalize(sun.Deg() - ayanamsa), normalize((moon + Δψ).Deg() - ayanamsa), nil
}

// SunTimes implements Provider.
func (Meeus) SunTimes(_ context.Context, date datetime.CalendarDate, place datetime.Place) (time.Time, time.Time, error) {
	r, s := sunrise.SunriseSunset(place.Latitude, place.Longitude, date.Year(), time.Month(date.Month()), date.Day())
	if r.IsZero() || s.IsZero() {
		return time.Time{}, time.Time{}, nil
	}
	return r.In(place.TimeLocation), s.In(place.TimeLocation), nil
}

// MoonTimes implements Provider. Lunar events are irregular enough
// that the UT day boundary and the local one cannot be conflated;
// events are computed per UT day and then filtered against the local
// civil day.
func (Meeus) MoonTimes(_ context.Context, date datetime.CalendarDate, place datetime.Place) (moonrise, moonset time.Time, err error) {
	dayStart := date.Time(datetime.NewTimeOfDay(0, 0, 0), place.TimeLocation)
	dayEnd := dayStart.AddDate(0, 0, 1)
	within := func(t time.Time) bool {
		return !t.Before(dayStart) && t.Before(dayEnd)
	}
	utc := dayStart.UTC()
	for i := 0; i < 2; i++ {
		y, m, d := utc.AddDate(0, 0, i).Date()
		r, s, rerr := lunarEventsUT(y, m, d, place)
		if rerr != nil {
			if errors.Is(rerr, rise.ErrorCircumpolar) {
				continue
			}
			return time.Time{}, time.Time{}, fmt.Errorf("%w: lunar events for %04d-%02d-%02d: %v", ErrEphemeris, y, m, d, rerr)
		}
		if moonrise.IsZero() && within(r) {
			moonrise = r.In(place.TimeLocation)
		}
		if moonset.IsZero() && within(s) {
			moonset = s.In(place.TimeLocation)
		}
	}
	return moonrise, moonset, nil
}

// lunarEventsUT returns the moonrise and moonset on the given UT day,
// in UTC, using the interpolated rise method of Meeus chapter 15 with
// apparent lunar positions at 0h TT on the day before, of and after.
func lunarEventsUT(year int, month time.Month, day int, place datetime.Place) (time.Time, time.Time, error) {
	jd0 := julian.CalendarGregorianToJD(year, int(month), float64(day))
	α := make([]unit.RA, 3)
	δ := make([]unit.Angle, 3)
	for i := 0; i < 3; i++ {
		α[i], δ[i] = moonEquatorial(jd0 + float64(i-1))
	}
	_, _, Δ := moonposition.Position(jd0)
	h0 := rise.Stdh0Lunar(moonposition.Parallax(Δ))
	p := globeCoord(place)
	tRise, _, tSet, err := rise.Times(p, unit.Time(deltaT(jd0)), h0, sidereal.Apparent0UT(jd0), α, δ)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	r := midnight.Add(time.Duration(tRise.Sec() * float64(time.Second)))
	s := midnight.Add(time.Duration(tSet.Sec() * float64(time.Second)))
	return r, s, nil
}

func moonEquatorial(jde float64) (unit.RA, unit.Angle) {
	λ, β, _ := moonposition.Position(jde)
	Δψ, Δε := nutation.Nutation(jde)
	ε := nutation.MeanObliquity(jde) + Δε
	sε, cε := math.Sincos(ε.Rad())
	return coord.EclToEq(λ+Δψ, β, sε, cε)
}

// globeCoord converts a place to the globe convention of longitudes
// positive west.
func globeCoord(place datetime.Place) globe.Coord {
	return globe.Coord{
		Lat: unit.AngleFromDeg(place.Latitude),
		Lon: unit.AngleFromDeg(-place.Longitude),
	}
}
