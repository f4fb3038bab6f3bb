// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package muhurtam selects auspicious dates for life events from runs
// of panchangam records. Selection is rule driven: an event kind
// admits certain tithis and nakshatras and may exclude weekdays or
// whole fortnights of particular months.
package muhurtam

import (
	"errors"
	"slices"
	"sort"
	"time"

	"cloudeng.io/almanac/panchangam"
)

// ErrUnknownKind is returned for an event kind the catalog does not
// cover.
var ErrUnknownKind = errors.New("unknown muhurtam kind")

// MasaPaksha pairs a solar month with a fortnight.
type MasaPaksha struct {
	Masa   int // 1-based solar month
	Paksha int // 1 Shukla, 2 Krishna
}

// Rule describes the day combinations an event kind admits. A day
// qualifies when its tithi and nakshatra both appear in the rule and
// no exclusion applies.
type Rule struct {
	// Tithis holds 0-based within-fortnight tithi indices (0..14);
	// the same indices admit days of both fortnights.
	Tithis []int
	// Nakshatras holds 0-based nakshatra indices (0..26).
	Nakshatras []int
	// AvoidWeekdays excludes whole weekdays.
	AvoidWeekdays []time.Weekday
	// AvoidMasaPakshas excludes month and fortnight pairings.
	AvoidMasaPakshas []MasaPaksha
}

func (r Rule) matches(rec *panchangam.Record, weekday time.Weekday) bool {
	if slices.Contains(r.AvoidWeekdays, weekday) {
		return false
	}
	if !slices.Contains(r.Tithis, (rec.TithiNumber-1)%15) {
		return false
	}
	if !slices.Contains(r.Nakshatras, rec.NakshatraNumber-1) {
		return false
	}
	paksha := panchangam.Paksha(rec.TithiNumber)
	for _, mp := range r.AvoidMasaPakshas {
		if mp.Masa == rec.MasaNumber && mp.Paksha == paksha {
			return false
		}
	}
	return true
}

// Catalog maps event kinds to their rules.
type Catalog map[string]Rule

// Kinds returns the catalog's kinds in sorted order.
func (c Catalog) Kinds() []string {
	kinds := make([]string, 0, len(c))
	for k := range c {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Default returns the standard catalog of six event kinds. Marriage
// additionally avoids Tuesdays, Saturdays and the waning fortnights of
// Aadi and Purattasi, the solar months overlapping the lunar Ashadha
// and Bhadrapada.
func Default() Catalog {
	ceremonyTithis := []int{2, 3, 5, 7, 10, 11, 12, 13}
	childTithis := []int{5, 6, 10, 11, 12}
	marriageNakshatras := []int{0, 2, 3, 4, 6, 7, 9, 10, 12, 13, 14, 16, 19, 22, 25, 26}
	householdNakshatras := []int{0, 2, 3, 4, 6, 9, 10, 12, 13, 16, 19, 22, 25, 26}
	childNakshatras := []int{0, 2, 3, 4, 6, 9, 10, 12, 13, 16, 22, 25, 26}

	return Catalog{
		"marriage": {
			Tithis:           ceremonyTithis,
			Nakshatras:       marriageNakshatras,
			AvoidWeekdays:    []time.Weekday{time.Tuesday, time.Saturday},
			AvoidMasaPakshas: []MasaPaksha{{Masa: 4, Paksha: 2}, {Masa: 6, Paksha: 2}},
		},
		"grihapravesam": {
			Tithis:     ceremonyTithis,
			Nakshatras: householdNakshatras,
		},
		"vehicle": {
			Tithis:     []int{2, 3, 5, 6, 7, 10, 11, 12, 13},
			Nakshatras: householdNakshatras,
		},
		"naamkaranam": {
			Tithis:     childTithis,
			Nakshatras: childNakshatras,
		},
		"annaprasanam": {
			Tithis:     childTithis,
			Nakshatras: childNakshatras,
		},
		"upanayanam": {
			Tithis:     ceremonyTithis,
			Nakshatras: childNakshatras,
		},
	}
}
