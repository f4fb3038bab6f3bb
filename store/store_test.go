// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package store_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cloudeng.io/almanac/muhurtam"
	"cloudeng.io/almanac/panchangam"
	"cloudeng.io/almanac/store"
	"cloudeng.io/almanac/tables"
	"cloudeng.io/datetime"
)

func testRecord(date string) *panchangam.Record {
	ts := tables.Default()
	return &panchangam.Record{
		Date:               date,
		Location:           panchangam.Coordinates{Latitude: 13.0827, Longitude: 80.2707},
		Timezone:           "Asia/Kolkata",
		Info:               tables.Info{Key: "chennai", Name: "Chennai, Tamil Nadu", Country: "India"},
		Sunrise:            "06:22",
		Sunset:             "17:55",
		TithiNumber:        5,
		TithiName:          ts.Tithis[4],
		TithiEnd:           "09:14",
		Paksha:             ts.Pakshas[0],
		NakshatraNumber:    3,
		NakshatraName:      ts.Nakshatras[2],
		NakshatraEnd:       "22:40",
		YogaNumber:         7,
		YogaName:           ts.Yogas[6],
		Karanas:            []panchangam.Karana{{Number: 9, Name: ts.Karanas[1], End: "09:14"}, {Number: 10, Name: ts.Karanas[2], End: "20:31"}},
		MasaNumber:         9,
		Masa:               ts.Masas[8],
		Samvatsara:         ts.Samvatsaras[39],
		Ayana:              ts.Ayanas[0],
		Ruthu:              ts.Ruthus[5],
		SuryaRashiNumber:   9,
		SuryaRashi:         ts.Rashis[8],
		ChandraRashiNumber: 1,
		ChandraRashi:       ts.Rashis[0],
	}
}

func TestPaths(t *testing.T) {
	s := store.New("/tmp/almanac")
	date := datetime.NewCalendarDate(2026, 1, 7)
	if got, want := s.DayPath("chennai", date), filepath.Join("data", "2026", "chennai", "2026-01-07.json"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := s.YearPath("chennai", 2026), filepath.Join("data", "2026", "2026_chennai_full.json"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := s.MuhurtamPath("marriage", "chennai", 2026), filepath.Join("muhurtam_cache", "marriage_2026_chennai.json"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDayRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := store.New(t.TempDir())
	date := datetime.NewCalendarDate(2026, 1, 7)

	var miss panchangam.Record
	found, err := s.GetDay(ctx, "chennai", date, &miss)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Errorf("unexpected hit for empty store")
	}

	rec := testRecord("2026-01-07")
	if err := s.PutDay(ctx, "chennai", date, rec); err != nil {
		t.Fatal(err)
	}
	var got panchangam.Record
	found, err = s.GetDay(ctx, "chennai", date, &got)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected a hit")
	}
	if !reflect.DeepEqual(&got, rec) {
		t.Errorf("got %#v, want %#v", &got, rec)
	}

	data, err := os.ReadFile(filepath.Join(s.Root(), s.DayPath("chennai", date)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\"date\": \"2026-01-07\"") {
		t.Errorf("document is not pretty printed: %s", data)
	}

	rec.TithiNumber, rec.TithiName = 6, tables.Default().Tithis[5]
	if err := s.PutDay(ctx, "chennai", date, rec); err != nil {
		t.Fatal(err)
	}
	found, err = s.GetDay(ctx, "chennai", date, &got)
	if err != nil || !found {
		t.Fatalf("found %v: %v", found, err)
	}
	if got.TithiNumber != 6 {
		t.Errorf("got %v, want 6", got.TithiNumber)
	}

	stray, err := filepath.Glob(filepath.Join(s.Root(), "data", "2026", "chennai", ".almanac-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(stray) != 0 {
		t.Errorf("temporary files left behind: %v", stray)
	}
}

func TestCorrupt(t *testing.T) {
	ctx := context.Background()
	s := store.New(t.TempDir())
	date := datetime.NewCalendarDate(2026, 1, 7)
	if err := s.PutDay(ctx, "chennai", date, testRecord("2026-01-07")); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(s.Root(), s.DayPath("chennai", date))

	for _, contents := range []string{"{not json", "{}"} {
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
		var got panchangam.Record
		found, err := s.GetDay(ctx, "chennai", date, &got)
		if found {
			t.Errorf("%q: unexpected hit", contents)
		}
		if !errors.Is(err, store.ErrCorrupt) {
			t.Errorf("%q: got %v, want %v", contents, err, store.ErrCorrupt)
		}
	}
}

func TestPutRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	s := store.New(t.TempDir())
	date := datetime.NewCalendarDate(2026, 1, 7)
	rec := testRecord("2026-01-07")
	rec.TithiNumber = 99
	err := s.PutDay(ctx, "chennai", date, rec)
	if err == nil || !strings.Contains(err.Error(), "refusing to store") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Root(), s.DayPath("chennai", date))); err == nil {
		t.Errorf("invalid document was written")
	}
}

type note struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (n *note) Check() error {
	if n.Title == "" {
		return fmt.Errorf("note has no title")
	}
	return nil
}

func TestYearDocuments(t *testing.T) {
	ctx := context.Background()
	s := store.New(t.TempDir())
	doc := &note{Title: "2026", Body: "a year of days"}
	if err := s.PutYear(ctx, "chennai", 2026, doc); err != nil {
		t.Fatal(err)
	}
	var got note
	found, err := s.GetYear(ctx, "chennai", 2026, &got)
	if err != nil || !found {
		t.Fatalf("found %v: %v", found, err)
	}
	if !reflect.DeepEqual(&got, doc) {
		t.Errorf("got %#v, want %#v", &got, doc)
	}
	if found, _ := s.GetYear(ctx, "chennai", 2027, &got); found {
		t.Errorf("unexpected hit for another year")
	}
}

func TestMuhurtamDocuments(t *testing.T) {
	ctx := context.Background()
	s := store.New(t.TempDir())
	info := tables.Info{Key: "chennai", Name: "Chennai, Tamil Nadu", Country: "India"}
	doc := muhurtam.NewResult(2026, "marriage", info, []muhurtam.Date{{Date: "2026-01-07", Day: "Wednesday"}})
	if err := s.PutMuhurtam(ctx, "marriage", "chennai", 2026, doc); err != nil {
		t.Fatal(err)
	}
	var got muhurtam.Result
	found, err := s.GetMuhurtam(ctx, "marriage", "chennai", 2026, &got)
	if err != nil || !found {
		t.Fatalf("found %v: %v", found, err)
	}
	if !reflect.DeepEqual(&got, doc) {
		t.Errorf("got %#v, want %#v", &got, doc)
	}
	if found, _ := s.GetMuhurtam(ctx, "vehicle", "chennai", 2026, &got); found {
		t.Errorf("unexpected hit for another kind")
	}
}
