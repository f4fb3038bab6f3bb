// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package muhurtam

import (
	"fmt"
	"sort"
	"time"

	"cloudeng.io/almanac/panchangam"
	"cloudeng.io/almanac/tables"
)

// Date is one qualifying day of a search. End times are local clock
// times and empty when the element runs past the day's search window.
type Date struct {
	Date         string `json:"date"`
	Day          string `json:"day"`
	Tithi        string `json:"tithi"`
	TithiEnd     string `json:"tithi_end"`
	Nakshatra    string `json:"nakshatra"`
	NakshatraEnd string `json:"nakshatra_end"`
	Masa         string `json:"masa"`
	Paksha       string `json:"paksha"`
}

// Result is the outcome of a search over a year of records for a
// single location and event kind.
type Result struct {
	Year     int         `json:"year"`
	Kind     string      `json:"muhurtam_type"`
	Location tables.Info `json:"location"`
	Count    int         `json:"count"`
	Dates    []Date      `json:"dates"`
}

// NewResult assembles a Result for a completed search. An empty
// search serializes with an empty dates list rather than null.
func NewResult(year int, kind string, location tables.Info, dates []Date) *Result {
	if dates == nil {
		dates = []Date{}
	}
	return &Result{
		Year:     year,
		Kind:     kind,
		Location: location,
		Count:    len(dates),
		Dates:    dates,
	}
}

// Check reports whether the result is internally consistent.
func (r *Result) Check() error {
	switch {
	case r.Year == 0:
		return fmt.Errorf("result has no year")
	case r.Kind == "":
		return fmt.Errorf("result has no kind")
	case r.Location.Key == "":
		return fmt.Errorf("result has no location")
	case r.Count != len(r.Dates):
		return fmt.Errorf("count %v does not match %v dates", r.Count, len(r.Dates))
	}
	return nil
}

// Select filters day records down to those qualifying for the event
// kind, in ascending date order. The records are typically a
// location's full year.
func Select(catalog Catalog, kind string, records []*panchangam.Record) ([]Date, error) {
	rule, ok := catalog[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	var dates []Date
	for _, rec := range records {
		day, err := time.Parse(time.DateOnly, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("record date %q: %w", rec.Date, err)
		}
		if !rule.matches(rec, day.Weekday()) {
			continue
		}
		dates = append(dates, Date{
			Date:         rec.Date,
			Day:          day.Weekday().String(),
			Tithi:        rec.TithiName.EN,
			TithiEnd:     rec.TithiEnd,
			Nakshatra:    rec.NakshatraName.EN,
			NakshatraEnd: rec.NakshatraEnd,
			Masa:         rec.Masa.EN,
			Paksha:       rec.Paksha.EN,
		})
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Date < dates[j].Date })
	return dates, nil
}
