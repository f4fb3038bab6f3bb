// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package panchangam_test

import (
	"testing"

	"cloudeng.io/almanac/panchangam"
)

func TestTithi(t *testing.T) {
	for _, tc := range []struct {
		sun, moon float64
		want      int
	}{
		{0, 0, 1},
		{0, 11.9, 1},
		// An elongation exactly on a boundary belongs to the next
		// element.
		{350, 2, 2},
		{100, 280, 16},
		{100, 99, 30},
		{351.7, 3.2, 1},
	} {
		if got, want := panchangam.Tithi(tc.sun, tc.moon), tc.want; got != want {
			t.Errorf("sun %v moon %v: got %v, want %v", tc.sun, tc.moon, got, want)
		}
	}
}

func TestPaksha(t *testing.T) {
	for _, tc := range []struct {
		tithi, want int
	}{
		{1, 1}, {15, 1}, {16, 2}, {30, 2},
	} {
		if got, want := panchangam.Paksha(tc.tithi), tc.want; got != want {
			t.Errorf("tithi %v: got %v, want %v", tc.tithi, got, want)
		}
	}
}

func TestNakshatraYoga(t *testing.T) {
	for _, tc := range []struct {
		moon float64
		want int
	}{
		{0, 1}, {13.2, 1}, {13.4, 2}, {359.9, 27},
	} {
		if got, want := panchangam.Nakshatra(tc.moon), tc.want; got != want {
			t.Errorf("moon %v: got %v, want %v", tc.moon, got, want)
		}
	}
	for _, tc := range []struct {
		sun, moon float64
		want      int
	}{
		{0, 0, 1},
		{200, 205, 4},
		{300, 101, 4},
	} {
		if got, want := panchangam.Yoga(tc.sun, tc.moon), tc.want; got != want {
			t.Errorf("sun %v moon %v: got %v, want %v", tc.sun, tc.moon, got, want)
		}
	}
}

func TestKarana(t *testing.T) {
	for _, tc := range []struct {
		sun, moon float64
		want      int
	}{
		{0, 0, 0},
		{0, 6, 1},
		{100, 99, 59},
	} {
		if got, want := panchangam.KaranaSlot(tc.sun, tc.moon), tc.want; got != want {
			t.Errorf("sun %v moon %v: got %v, want %v", tc.sun, tc.moon, got, want)
		}
	}
	// Seven movable names rotate through the first 57 slots, the
	// fixed names close the month.
	for _, tc := range []struct {
		slot, want int
	}{
		{0, 0}, {6, 6}, {7, 0}, {55, 6}, {56, 0}, {57, 7}, {58, 8}, {59, 9},
	} {
		if got, want := panchangam.KaranaName(tc.slot), tc.want; got != want {
			t.Errorf("slot %v: got %v, want %v", tc.slot, got, want)
		}
	}
}

func TestSolarElements(t *testing.T) {
	for _, tc := range []struct {
		longitude float64
		want      int
	}{
		{0, 1}, {29.9, 1}, {30, 2}, {359.9, 12},
	} {
		if got, want := panchangam.Rashi(tc.longitude), tc.want; got != want {
			t.Errorf("longitude %v: got %v, want %v", tc.longitude, got, want)
		}
	}
	if got, want := panchangam.Masa(45), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		sun  float64
		want int
	}{
		{0, 1}, {89.9, 1}, {90, 2}, {269.9, 2}, {270, 1}, {359.9, 1},
	} {
		if got, want := panchangam.Ayana(tc.sun), tc.want; got != want {
			t.Errorf("sun %v: got %v, want %v", tc.sun, got, want)
		}
	}
	for _, tc := range []struct {
		sun  float64
		want int
	}{
		{0, 1}, {59.9, 1}, {60, 2}, {300, 6}, {359.9, 6},
	} {
		if got, want := panchangam.Ruthu(tc.sun), tc.want; got != want {
			t.Errorf("sun %v: got %v, want %v", tc.sun, got, want)
		}
	}
}
