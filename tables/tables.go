// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package tables provides the static lookup data used by the panchangam
// and muhurtam engines: bilingual element names, the weekday tables for
// the inauspicious day segments, the 60-year samvatsara cycle and the
// registry of supported locations. All tables are immutable configuration
// injected into the engines at construction so that tests can substitute
// alternates.
package tables

import "fmt"

// Label is a bilingual display name, English plus Tamil.
type Label struct {
	EN string `json:"en" yaml:"en"`
	TA string `json:"ta" yaml:"ta"`
}

// Set holds the element name tables and the weekday segment tables. The
// name slices are indexed by element number - 1 (tithi 1..30, nakshatra
// 1..27 and so on). The segment tables give the index of the daytime
// eighth, counted from sunrise, occupied by rahukalam and yamagandam,
// indexed by weekday with Sunday first.
type Set struct {
	Nakshatras  []Label
	Tithis      []Label
	Yogas       []Label
	Karanas     []Label
	Masas       []Label
	Rashis      []Label
	Ruthus      []Label
	Ayanas      []Label
	Pakshas     []Label
	Samvatsaras []Label

	RahuSegments [7]int
	YamaSegments [7]int

	// SamvatsaraEpoch is a gregorian year known to have been Prabhava,
	// the first name of the 60 year cycle.
	SamvatsaraEpoch int
}

// Default returns the standard tables. The returned Set is freshly
// allocated and may be modified by the caller before use.
func Default() *Set {
	return &Set{
		Nakshatras:      append([]Label{}, nakshatras...),
		Tithis:          append([]Label{}, tithis...),
		Yogas:           append([]Label{}, yogas...),
		Karanas:         append([]Label{}, karanas...),
		Masas:           append([]Label{}, masas...),
		Rashis:          append([]Label{}, rashis...),
		Ruthus:          append([]Label{}, ruthus...),
		Ayanas:          append([]Label{}, ayanas...),
		Pakshas:         append([]Label{}, pakshas...),
		Samvatsaras:     append([]Label{}, samvatsaras...),
		RahuSegments:    rahuSegments,
		YamaSegments:    yamaSegments,
		SamvatsaraEpoch: samvatsaraEpoch,
	}
}

// Validate checks that every table has its traditional cardinality and
// that the segment indices address one of the eight daytime segments.
func (s *Set) Validate() error {
	for _, c := range []struct {
		name string
		got  int
		want int
	}{
		{"nakshatras", len(s.Nakshatras), 27},
		{"tithis", len(s.Tithis), 30},
		{"yogas", len(s.Yogas), 27},
		{"karanas", len(s.Karanas), 11},
		{"masas", len(s.Masas), 12},
		{"rashis", len(s.Rashis), 12},
		{"ruthus", len(s.Ruthus), 6},
		{"ayanas", len(s.Ayanas), 2},
		{"pakshas", len(s.Pakshas), 2},
		{"samvatsaras", len(s.Samvatsaras), 60},
	} {
		if c.got != c.want {
			return fmt.Errorf("%v: have %v names, need %v", c.name, c.got, c.want)
		}
	}
	for i := 0; i < 7; i++ {
		if r := s.RahuSegments[i]; r < 0 || r > 7 {
			return fmt.Errorf("rahu segment for weekday %v out of range: %v", i, r)
		}
		if y := s.YamaSegments[i]; y < 0 || y > 7 {
			return fmt.Errorf("yama segment for weekday %v out of range: %v", i, y)
		}
		if s.RahuSegments[i] == s.YamaSegments[i] {
			return fmt.Errorf("rahu and yama segments coincide for weekday %v", i)
		}
	}
	if s.SamvatsaraEpoch == 0 {
		return fmt.Errorf("samvatsara epoch year not set")
	}
	return nil
}

// Samvatsara returns the name of the 60 year cycle for the given
// gregorian year.
func (s *Set) Samvatsara(year int) Label {
	n := (year - s.SamvatsaraEpoch) % 60
	if n < 0 {
		n += 60
	}
	return s.Samvatsaras[n]
}
