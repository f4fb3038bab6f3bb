// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tables

import (
	"fmt"
	"sort"
	"time"

	"cloudeng.io/datetime"
	"gopkg.in/yaml.v3"
)

// Location is a place for which panchangam data can be computed. Key is
// the stable identifier used in queries and cache paths.
type Location struct {
	Key       string  `json:"key" yaml:"key"`
	Name      string  `json:"name" yaml:"name"`
	Country   string  `json:"country" yaml:"country"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	TZ        string  `json:"timezone" yaml:"timezone"`

	tzloc *time.Location
}

// Info identifies a location in serialized results.
type Info struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Info returns the identifying subset of the location.
func (l Location) Info() Info {
	return Info{Key: l.Key, Name: l.Name, Country: l.Country}
}

// Place returns the location as a datetime.Place.
func (l Location) Place() datetime.Place {
	return datetime.Place{
		TimeLocation: l.TimeLocation(),
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
	}
}

// TimeLocation returns the resolved timezone. Locations issued by a
// registry have it pre-resolved; for locations constructed directly it
// is resolved on the fly, falling back to UTC.
func (l Location) TimeLocation() *time.Location {
	if l.tzloc != nil {
		return l.tzloc
	}
	if tz, err := time.LoadLocation(l.TZ); err == nil {
		return tz
	}
	return time.UTC
}

func (l *Location) resolve() error {
	switch {
	case l.Key == "":
		return fmt.Errorf("location with empty key")
	case l.Latitude < -90 || l.Latitude > 90:
		return fmt.Errorf("%v: latitude out of range: %v", l.Key, l.Latitude)
	case l.Longitude < -180 || l.Longitude > 180:
		return fmt.Errorf("%v: longitude out of range: %v", l.Key, l.Longitude)
	}
	tz, err := time.LoadLocation(l.TZ)
	if err != nil {
		return fmt.Errorf("%v: %w", l.Key, err)
	}
	l.tzloc = tz
	return nil
}

// Registry is an immutable set of locations keyed by Location.Key.
type Registry struct {
	locations map[string]Location
	keys      []string
}

// NewRegistry validates the supplied locations, resolves their
// timezones and returns a registry over them. Duplicate keys are an
// error.
func NewRegistry(locations ...Location) (*Registry, error) {
	r := &Registry{locations: make(map[string]Location, len(locations))}
	for _, l := range locations {
		if err := l.resolve(); err != nil {
			return nil, err
		}
		if _, ok := r.locations[l.Key]; ok {
			return nil, fmt.Errorf("duplicate location key: %v", l.Key)
		}
		r.locations[l.Key] = l
		r.keys = append(r.keys, l.Key)
	}
	sort.Strings(r.keys)
	return r, nil
}

// DefaultRegistry returns a registry over DefaultLocations.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultLocations()...)
}

// With returns a new registry containing the receiver's locations plus
// the supplied ones. A supplied location with an existing key replaces
// the original.
func (r *Registry) With(locations ...Location) (*Registry, error) {
	merged := make([]Location, 0, len(r.keys)+len(locations))
	seen := map[string]bool{}
	for _, l := range locations {
		seen[l.Key] = true
	}
	for _, k := range r.keys {
		if !seen[k] {
			merged = append(merged, r.locations[k])
		}
	}
	return NewRegistry(append(merged, locations...)...)
}

// Lookup returns the location for key.
func (r *Registry) Lookup(key string) (Location, bool) {
	l, ok := r.locations[key]
	return l, ok
}

// Keys returns the location keys in sorted order.
func (r *Registry) Keys() []string {
	return append([]string{}, r.keys...)
}

// Locations returns the locations in key order.
func (r *Registry) Locations() []Location {
	locations := make([]Location, 0, len(r.keys))
	for _, k := range r.keys {
		locations = append(locations, r.locations[k])
	}
	return locations
}

// LoadLocations parses a YAML document containing a list of locations,
// eg:
//
//	- key: chennai
//	  name: Chennai, Tamil Nadu
//	  country: India
//	  latitude: 13.0827
//	  longitude: 80.2707
//	  timezone: Asia/Kolkata
func LoadLocations(data []byte) ([]Location, error) {
	var locations []Location
	if err := yaml.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("failed to parse locations: %w", err)
	}
	return locations, nil
}

// DefaultYears returns the years for which bulk data generation and
// muhurtam searches are supported by default.
func DefaultYears() []int {
	return []int{2025, 2026, 2027}
}

// DefaultLocations returns the built in locations.
func DefaultLocations() []Location {
	return []Location{
		{Key: "chennai", Name: "Chennai, Tamil Nadu", Country: "India", Latitude: 13.0827, Longitude: 80.2707, TZ: "Asia/Kolkata"},
		{Key: "madurai", Name: "Madurai, Tamil Nadu", Country: "India", Latitude: 9.9252, Longitude: 78.1198, TZ: "Asia/Kolkata"},
		{Key: "coimbatore", Name: "Coimbatore, Tamil Nadu", Country: "India", Latitude: 11.0168, Longitude: 76.9558, TZ: "Asia/Kolkata"},
		{Key: "amaravati", Name: "Amaravati, Andhra Pradesh", Country: "India", Latitude: 16.541, Longitude: 80.515, TZ: "Asia/Kolkata"},
		{Key: "hyderabad", Name: "Hyderabad, Telangana", Country: "India", Latitude: 17.3850, Longitude: 78.4867, TZ: "Asia/Kolkata"},
		{Key: "atlanta", Name: "Atlanta", Country: "USA", Latitude: 33.7490, Longitude: -84.3880, TZ: "America/New_York"},
		{Key: "chicago", Name: "Chicago", Country: "USA", Latitude: 41.8781, Longitude: -87.6298, TZ: "America/Chicago"},
		{Key: "newark", Name: "Newark, New Jersey", Country: "USA", Latitude: 40.7357, Longitude: -74.1724, TZ: "America/New_York"},
		{Key: "newyork", Name: "New York City", Country: "USA", Latitude: 40.7128, Longitude: -74.0060, TZ: "America/New_York"},
		{Key: "phoenix", Name: "Phoenix", Country: "USA", Latitude: 33.4484, Longitude: -112.0740, TZ: "America/Phoenix"},
		{Key: "sanfrancisco", Name: "San Francisco", Country: "USA", Latitude: 37.7749, Longitude: -122.4194, TZ: "America/Los_Angeles"},
		{Key: "losangeles", Name: "Los Angeles", Country: "USA", Latitude: 34.0522, Longitude: -118.2437, TZ: "America/Los_Angeles"},
		{Key: "toronto", Name: "Toronto", Country: "Canada", Latitude: 43.6532, Longitude: -79.3832, TZ: "America/Toronto"},
		{Key: "london", Name: "London", Country: "United Kingdom", Latitude: 51.5074, Longitude: -0.1278, TZ: "Europe/London"},
		{Key: "auckland", Name: "Auckland", Country: "New Zealand", Latitude: -36.8485, Longitude: 174.7633, TZ: "Pacific/Auckland"},
		{Key: "sydney", Name: "Sydney", Country: "Australia", Latitude: -33.8688, Longitude: 151.2093, TZ: "Australia/Sydney"},
		{Key: "capetown", Name: "Cape Town", Country: "South Africa", Latitude: -33.9249, Longitude: 18.4241, TZ: "Africa/Johannesburg"},
		{Key: "riyadh", Name: "Riyadh", Country: "Saudi Arabia", Latitude: 24.7136, Longitude: 46.6753, TZ: "Asia/Riyadh"},
		{Key: "dubai", Name: "Dubai", Country: "UAE", Latitude: 25.2048, Longitude: 55.2708, TZ: "Asia/Dubai"},
		{Key: "singapore", Name: "Singapore", Country: "Singapore", Latitude: 1.3521, Longitude: 103.8198, TZ: "Asia/Singapore"},
		{Key: "kualalumpur", Name: "Kuala Lumpur", Country: "Malaysia", Latitude: 3.1390, Longitude: 101.6869, TZ: "Asia/Kuala_Lumpur"},
	}
}
