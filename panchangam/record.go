// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package panchangam

import (
	"fmt"
	"time"

	"cloudeng.io/almanac/tables"
	"cloudeng.io/datetime"
)

// Interval is a clock time window within a civil day, rendered "HH:MM"
// in the location's timezone.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Period is a named interval.
type Period struct {
	Period string `json:"period"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// Karana is one of the two karana entries of a civil day. Number is
// the 1-based half-tithi slot (1..60) and End the local clock time at
// which it ends, empty when the end falls outside the search window.
type Karana struct {
	Number int          `json:"number"`
	Name   tables.Label `json:"name"`
	End    string       `json:"end,omitempty"`
}

// Coordinates is the geographic position of a record's location.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Record is the complete panchangam for one location and civil day.
// All clock times are local and rendered "HH:MM"; element end times
// may fall in the early hours of the following day. Events that do not
// occur and windows that cannot be computed are omitted.
type Record struct {
	Date     string      `json:"date"`
	Location Coordinates `json:"location"`
	Timezone string      `json:"timezone"`
	Info     tables.Info `json:"location_info"`

	Sunrise  string `json:"sunrise,omitempty"`
	Sunset   string `json:"sunset,omitempty"`
	Moonrise string `json:"moonrise,omitempty"`
	Moonset  string `json:"moonset,omitempty"`

	TithiNumber int          `json:"tithi_number"`
	TithiName   tables.Label `json:"tithi_name"`
	TithiEnd    string       `json:"tithi_end,omitempty"`
	Paksha      tables.Label `json:"paksha"`

	NakshatraNumber int          `json:"nakshatra_number"`
	NakshatraName   tables.Label `json:"nakshatra_name"`
	NakshatraEnd    string       `json:"nakshatra_end,omitempty"`

	YogaNumber int          `json:"yoga_number"`
	YogaName   tables.Label `json:"yoga_name"`
	YogaEnd    string       `json:"yoga_end,omitempty"`

	Karanas []Karana `json:"karana"`

	MasaNumber int          `json:"masa_number"`
	Masa       tables.Label `json:"masa"`
	Samvatsara tables.Label `json:"samvatsaram"`
	Ayana      tables.Label `json:"ayana"`
	Ruthu      tables.Label `json:"ruthu"`

	SuryaRashiNumber   int          `json:"suryarashi_number"`
	SuryaRashi         tables.Label `json:"suryarashi"`
	ChandraRashiNumber int          `json:"chandrarashi_number"`
	ChandraRashi       tables.Label `json:"chandrarashi"`

	Rahukalam    *Interval `json:"rahukalam,omitempty"`
	Yamagandam   *Interval `json:"yamagandam,omitempty"`
	Durmuhurtham []Period  `json:"durmuhurtham,omitempty"`
	Varjyam      *Interval `json:"varjyam,omitempty"`
	Abhijit      *Interval `json:"abhijit_muhurtham,omitempty"`
	Amruthakalam *Interval `json:"amruthakalam,omitempty"`
}

// Check reports whether the record is internally consistent, it guards
// against serving a truncated or hand edited document from a cache.
func (r *Record) Check() error {
	switch {
	case r.Date == "":
		return fmt.Errorf("record has no date")
	case r.Info.Key == "":
		return fmt.Errorf("record has no location key")
	case r.TithiNumber < 1 || r.TithiNumber > 30:
		return fmt.Errorf("tithi out of range: %v", r.TithiNumber)
	case r.NakshatraNumber < 1 || r.NakshatraNumber > 27:
		return fmt.Errorf("nakshatra out of range: %v", r.NakshatraNumber)
	case r.YogaNumber < 1 || r.YogaNumber > 27:
		return fmt.Errorf("yoga out of range: %v", r.YogaNumber)
	case len(r.Karanas) != 2:
		return fmt.Errorf("have %v karana entries, need 2", len(r.Karanas))
	case r.MasaNumber < 1 || r.MasaNumber > 12:
		return fmt.Errorf("masa out of range: %v", r.MasaNumber)
	case r.SuryaRashiNumber < 1 || r.SuryaRashiNumber > 12:
		return fmt.Errorf("suryarashi out of range: %v", r.SuryaRashiNumber)
	case r.ChandraRashiNumber < 1 || r.ChandraRashiNumber > 12:
		return fmt.Errorf("chandrarashi out of range: %v", r.ChandraRashiNumber)
	}
	for i, k := range r.Karanas {
		if k.Number < 1 || k.Number > 60 {
			return fmt.Errorf("karana %v out of range: %v", i, k.Number)
		}
		if k.Name.EN == "" {
			return fmt.Errorf("karana %v has no name", i)
		}
	}
	return nil
}

// clock renders a local time as "HH:MM", or "" for the zero time.
func clock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}

func dateString(date datetime.CalendarDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
}
