// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"time"

	"cloudeng.io/datetime"
	sunrise "github.com/nathan-osman/go-sunrise"
)

// SunRise implements datetime.DynamicTimeOfDay for local sunrise. At
// latitudes and dates without a sunrise the result is meaningless.
type SunRise struct{}

func (s SunRise) Name() string {
	return "sun-rise"
}

func (s SunRise) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	rise, _ := sunrise.SunriseSunset(place.Latitude, place.Longitude, cd.Year(), time.Month(cd.Month()), cd.Day())
	return datetime.TimeOfDayFromTime(rise.In(place.TimeLocation))
}

// SunSet implements datetime.DynamicTimeOfDay for local sunset. At
// latitudes and dates without a sunset the result is meaningless.
type SunSet struct{}

func (s SunSet) Name() string {
	return "sun-set"
}

func (s SunSet) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	_, set := sunrise.SunriseSunset(place.Latitude, place.Longitude, cd.Year(), time.Month(cd.Month()), cd.Day())
	return datetime.TimeOfDayFromTime(set.In(place.TimeLocation))
}
