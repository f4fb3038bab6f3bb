// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package panchangam

// The classification functions map apparent sidereal longitudes, in
// degrees in [0..360), to 1-based element numbers. A day's elements
// are those holding at sunrise.

// Tithi returns the lunar day, 1..30. Each tithi spans 12 degrees of
// elongation of the moon from the sun.
func Tithi(sun, moon float64) int {
	return int(mod360(moon-sun)/12) + 1
}

// Paksha returns the fortnight for a tithi: 1 for Shukla (waxing),
// 2 for Krishna (waning).
func Paksha(tithi int) int {
	if tithi <= 15 {
		return 1
	}
	return 2
}

// Nakshatra returns the lunar mansion occupied by the moon, 1..27.
func Nakshatra(moon float64) int {
	return int(moon/(360.0/27)) + 1
}

// Yoga returns the luni-solar yoga, 1..27, derived from the sum of the
// longitudes.
func Yoga(sun, moon float64) int {
	return int(mod360(sun+moon)/(360.0/27)) + 1
}

// KaranaSlot returns the half-tithi slot, 0..59.
func KaranaSlot(sun, moon float64) int {
	return int(mod360(moon-sun)/6) % 60
}

// KaranaName returns the 0-based index into the eleven karana names
// for a slot. The seven movable names rotate through slots 0..56; the
// four fixed names occupy the final slots of the month.
func KaranaName(slot int) int {
	if slot < 57 {
		return slot % 7
	}
	return 7 + (slot - 57)
}

// Rashi returns the zodiac sign occupied by a longitude, 1..12.
func Rashi(longitude float64) int {
	return int(longitude/30) + 1
}

// Masa returns the solar month, 1..12. The Tamil solar calendar names
// the month after the sign the sun occupies, Chithirai for Mesha.
func Masa(sun float64) int {
	return Rashi(sun)
}

// Ayana returns 1 while the sun travels north (Uttarayana) and 2 while
// it travels south (Dakshinayana).
func Ayana(sun float64) int {
	if sun >= 270 || sun < 90 {
		return 1
	}
	return 2
}

// Ruthu returns the season, 1..6, each spanning two solar months.
func Ruthu(sun float64) int {
	return int(sun/60) + 1
}
