// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"fmt"

	"cloudeng.io/almanac/panchangam"
	"cloudeng.io/almanac/tables"
)

// YearData is the full year document for one location, persisted as
// data/<year>/<year>_<location>_full.json. Days run from January 1st
// to December 31st in date order.
type YearData struct {
	Year     int                  `json:"year"`
	Location tables.Info          `json:"location"`
	Count    int                  `json:"count"`
	Days     []*panchangam.Record `json:"data"`
}

// Check reports whether the document is internally consistent.
func (d *YearData) Check() error {
	switch {
	case d.Year == 0:
		return fmt.Errorf("year document has no year")
	case d.Location.Key == "":
		return fmt.Errorf("year document has no location")
	case d.Count == 0 || d.Count != len(d.Days):
		return fmt.Errorf("year document has %v days, count %v", len(d.Days), d.Count)
	}
	return nil
}

// MonthData is a single month of day records, assembled from per-day
// documents rather than persisted in its own right.
type MonthData struct {
	Year     int                  `json:"year"`
	Month    int                  `json:"month"`
	Location tables.Info          `json:"location"`
	Count    int                  `json:"count"`
	Days     []*panchangam.Record `json:"data"`
}

// Check reports whether the document is internally consistent.
func (d *MonthData) Check() error {
	switch {
	case d.Year == 0:
		return fmt.Errorf("month document has no year")
	case d.Month < 1 || d.Month > 12:
		return fmt.Errorf("month out of range: %v", d.Month)
	case d.Location.Key == "":
		return fmt.Errorf("month document has no location")
	case d.Count == 0 || d.Count != len(d.Days):
		return fmt.Errorf("month document has %v days, count %v", len(d.Days), d.Count)
	}
	return nil
}

// RangeData is an arbitrary run of day records, computed on demand and
// never persisted as a unit.
type RangeData struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Location  tables.Info          `json:"location"`
	Count     int                  `json:"count"`
	Days      []*panchangam.Record `json:"data"`
}

// Check reports whether the document is internally consistent.
func (d *RangeData) Check() error {
	switch {
	case d.StartDate == "" || d.EndDate == "":
		return fmt.Errorf("range document has no dates")
	case d.Location.Key == "":
		return fmt.Errorf("range document has no location")
	case d.Count == 0 || d.Count != len(d.Days):
		return fmt.Errorf("range document has %v days, count %v", len(d.Days), d.Count)
	}
	return nil
}
