// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tables_test

import (
	"strings"
	"testing"

	"cloudeng.io/almanac/tables"
)

func TestDefaultTables(t *testing.T) {
	s := tables.Default()
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		got  tables.Label
		want tables.Label
	}{
		{s.Nakshatras[0], tables.Label{EN: "Ashwini", TA: "அஸ்வினி"}},
		{s.Tithis[0], tables.Label{EN: "Pratipada", TA: "பிரதமை"}},
		{s.Tithis[14], tables.Label{EN: "Purnima", TA: "பௌர்ணமி"}},
		{s.Tithis[29], tables.Label{EN: "Amavasya", TA: "அமாவாசை"}},
		{s.Yogas[0], tables.Label{EN: "Vishkambha", TA: "விஷ்கம்பா"}},
		{s.Karanas[6], tables.Label{EN: "Vishti", TA: "விஷ்டி"}},
		{s.Masas[0], tables.Label{EN: "Chithirai", TA: "சித்திரை"}},
		{s.Pakshas[0], tables.Label{EN: "Shukla Paksha", TA: "சுக்ல பக்ஷம்"}},
	} {
		if got, want := tc.got, tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := s.RahuSegments[0], 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := s.YamaSegments[0], 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDefaultIsACopy(t *testing.T) {
	s := tables.Default()
	s.Tithis[0].EN = "mutated"
	s.RahuSegments[0] = 0
	fresh := tables.Default()
	if got, want := fresh.Tithis[0].EN, "Pratipada"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := fresh.RahuSegments[0], 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSamvatsara(t *testing.T) {
	s := tables.Default()
	for _, tc := range []struct {
		year int
		want string
	}{
		{1987, "Prabhava"},
		{2025, "Vishvavasu"},
		{2026, "Parabhava"},
		{2027, "Plavanga"},
		{2047, "Prabhava"},
		{1986, "Akshaya"},
		{1927, "Prabhava"},
	} {
		if got, want := s.Samvatsara(tc.year).EN, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestValidateErrors(t *testing.T) {
	for _, tc := range []struct {
		mutate func(*tables.Set)
		want   string
	}{
		{func(s *tables.Set) { s.Tithis = s.Tithis[:29] }, "tithis"},
		{func(s *tables.Set) { s.Samvatsaras = nil }, "samvatsaras"},
		{func(s *tables.Set) { s.RahuSegments[3] = 9 }, "rahu segment"},
		{func(s *tables.Set) { s.YamaSegments[2] = -1 }, "yama segment"},
		{func(s *tables.Set) { s.YamaSegments[1] = s.RahuSegments[1] }, "coincide"},
		{func(s *tables.Set) { s.SamvatsaraEpoch = 0 }, "epoch"},
	} {
		s := tables.Default()
		tc.mutate(s)
		err := s.Validate()
		if err == nil {
			t.Errorf("%v: expected an error", tc.want)
			continue
		}
		if got, want := err.Error(), tc.want; !strings.Contains(got, want) {
			t.Errorf("got %v, want it to contain %v", got, want)
		}
	}
}
