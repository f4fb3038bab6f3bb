// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"cloudeng.io/almanac"
	"cloudeng.io/almanac/ephemeris"
	"cloudeng.io/almanac/muhurtam"
	"cloudeng.io/almanac/panchangam"
	"cloudeng.io/almanac/store"
	"cloudeng.io/almanac/tables"
	"cloudeng.io/datetime"
)

func testModel() *ephemeris.Model {
	return &ephemeris.Model{
		Epoch:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Sun:      280.1,
		Moon:     100.4,
		SunRate:  1,
		MoonRate: 13,
	}
}

func testRegistry(t *testing.T) *tables.Registry {
	registry, err := tables.NewRegistry(tables.Location{
		Key:       "testville",
		Name:      "Testville",
		Country:   "Nowhere",
		Latitude:  12.34,
		Longitude: 56.78,
		TZ:        "UTC",
	})
	if err != nil {
		t.Fatal(err)
	}
	return registry
}

func testService(t *testing.T, opts ...almanac.Option) *almanac.Service {
	base := []almanac.Option{
		almanac.WithProvider(testModel()),
		almanac.WithLocations(testRegistry(t)),
		almanac.WithYears([]int{2026}),
		almanac.WithConcurrency(4),
	}
	svc, err := almanac.New(append(base, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestServiceDefaults(t *testing.T) {
	ctx := context.Background()
	svc, err := almanac.New(almanac.WithProvider(testModel()))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(svc.Locations()), 21; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := svc.Years(), []int{2025, 2026, 2027}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(svc.Kinds()), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	rec, err := svc.Day(ctx, "chennai", datetime.NewCalendarDate(2026, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := rec.Date, "2026-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := rec.Info.Key, "chennai"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestServiceValidation(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	date := datetime.NewCalendarDate(2026, 1, 7)

	if _, err := svc.Day(ctx, "atlantis", date); !errors.Is(err, almanac.ErrUnknownLocation) {
		t.Errorf("got %v, want %v", err, almanac.ErrUnknownLocation)
	}
	if _, err := svc.Day(ctx, "testville", datetime.NewCalendarDate(2026, 2, 30)); !errors.Is(err, almanac.ErrBadDate) {
		t.Errorf("got %v, want %v", err, almanac.ErrBadDate)
	}
	if _, err := svc.Year(ctx, "testville", 1999); !errors.Is(err, almanac.ErrUnsupportedYear) {
		t.Errorf("got %v, want %v", err, almanac.ErrUnsupportedYear)
	}
	if _, err := svc.Month(ctx, "testville", 2026, 13); !errors.Is(err, almanac.ErrBadDate) {
		t.Errorf("got %v, want %v", err, almanac.ErrBadDate)
	}
	if _, err := svc.Muhurtam(ctx, "housewarming", "testville", 2026); !errors.Is(err, muhurtam.ErrUnknownKind) {
		t.Errorf("got %v, want %v", err, muhurtam.ErrUnknownKind)
	}
	from, to := datetime.NewCalendarDate(2026, 3, 10), datetime.NewCalendarDate(2026, 3, 1)
	if _, err := svc.Range(ctx, "testville", from, to); !errors.Is(err, almanac.ErrBadDate) {
		t.Errorf("got %v, want %v", err, almanac.ErrBadDate)
	}
	from, to = datetime.NewCalendarDate(2026, 1, 1), datetime.NewCalendarDate(2027, 1, 10)
	if _, err := svc.Range(ctx, "testville", from, to); !errors.Is(err, almanac.ErrBadDate) {
		t.Errorf("got %v, want %v", err, almanac.ErrBadDate)
	}
}

func TestServiceDay(t *testing.T) {
	ctx := context.Background()
	date := datetime.NewCalendarDate(2026, 1, 7)

	live := testService(t)
	want, err := live.Day(ctx, "testville", date)
	if err != nil {
		t.Fatal(err)
	}

	st := store.New(t.TempDir())
	stored := testService(t, almanac.WithStore(st))
	cold, err := stored.Day(ctx, "testville", date)
	if err != nil {
		t.Fatal(err)
	}
	warm, err := stored.Day(ctx, "testville", date)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cold, want) {
		t.Errorf("stored and live records differ: got %#v, want %#v", cold, want)
	}
	if !reflect.DeepEqual(warm, cold) {
		t.Errorf("warm and cold records differ")
	}
	if _, err := os.Stat(filepath.Join(st.Root(), st.DayPath("testville", date))); err != nil {
		t.Errorf("day document not persisted: %v", err)
	}
}

func TestServiceDayCorruption(t *testing.T) {
	ctx := context.Background()
	date := datetime.NewCalendarDate(2026, 1, 7)
	st := store.New(t.TempDir())
	svc := testService(t, almanac.WithStore(st))

	want, err := svc.Day(ctx, "testville", date)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(st.Root(), st.DayPath("testville", date))
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Day(ctx, "testville", date)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recomputed record differs: got %#v, want %#v", got, want)
	}
	var onDisk panchangam.Record
	found, err := st.GetDay(ctx, "testville", date, &onDisk)
	if err != nil || !found {
		t.Fatalf("corrupt document was not overwritten: found %v: %v", found, err)
	}
}

func TestServiceYear(t *testing.T) {
	ctx := context.Background()
	st := store.New(t.TempDir())
	svc := testService(t, almanac.WithStore(st))

	cold, err := svc.Year(ctx, "testville", 2026)
	if err != nil {
		t.Fatal(err)
	}
	if err := cold.Check(); err != nil {
		t.Fatal(err)
	}
	if got, want := cold.Count, 365; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cold.Days[0].Date, "2026-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cold.Days[364].Date, "2026-12-31"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i := 1; i < len(cold.Days); i++ {
		if cold.Days[i-1].Date >= cold.Days[i].Date {
			t.Fatalf("days out of order at %v: %v then %v", i, cold.Days[i-1].Date, cold.Days[i].Date)
		}
	}

	if _, err := os.Stat(filepath.Join(st.Root(), st.YearPath("testville", 2026))); err != nil {
		t.Errorf("year document not persisted: %v", err)
	}
	warm, err := svc.Year(ctx, "testville", 2026)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(warm, cold) {
		t.Errorf("warm and cold year documents differ")
	}
}

func TestServiceMonth(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	doc, err := svc.Month(ctx, "testville", 2026, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Check(); err != nil {
		t.Fatal(err)
	}
	if got, want := doc.Count, 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := doc.Days[0].Date, "2026-02-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := doc.Days[27].Date, "2026-02-28"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestServiceRange(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	from, to := datetime.NewCalendarDate(2026, 3, 1), datetime.NewCalendarDate(2026, 3, 3)
	doc, err := svc.Range(ctx, "testville", from, to)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Check(); err != nil {
		t.Fatal(err)
	}
	if got, want := doc.StartDate, "2026-03-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := doc.EndDate, "2026-03-03"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := doc.Count, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestServiceMuhurtam(t *testing.T) {
	ctx := context.Background()
	st := store.New(t.TempDir())
	svc := testService(t, almanac.WithStore(st))

	result, err := svc.Muhurtam(ctx, "marriage", "testville", 2026)
	if err != nil {
		t.Fatal(err)
	}
	if err := result.Check(); err != nil {
		t.Fatal(err)
	}
	if result.Count == 0 {
		t.Fatal("no marriage dates in a full synthetic year")
	}

	year, err := svc.Year(ctx, "testville", 2026)
	if err != nil {
		t.Fatal(err)
	}
	inYear := map[string]bool{}
	for _, rec := range year.Days {
		inYear[rec.Date] = true
	}
	for i, d := range result.Dates {
		if !inYear[d.Date] {
			t.Errorf("%v not a day of the year", d.Date)
		}
		if d.Day == "Tuesday" || d.Day == "Saturday" {
			t.Errorf("%v falls on an avoided weekday %v", d.Date, d.Day)
		}
		if i > 0 && result.Dates[i-1].Date >= d.Date {
			t.Errorf("dates out of order at %v: %v then %v", i, result.Dates[i-1].Date, d.Date)
		}
	}

	live := testService(t)
	fresh, err := live.Muhurtam(ctx, "marriage", "testville", 2026)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fresh, result) {
		t.Errorf("live and stored results differ")
	}

	warm, err := svc.Muhurtam(ctx, "marriage", "testville", 2026)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(warm, result) {
		t.Errorf("warm and cold results differ")
	}
}

func TestServiceMuhurtamAll(t *testing.T) {
	ctx := context.Background()
	st := store.New(t.TempDir())
	svc := testService(t, almanac.WithStore(st))

	results, err := svc.MuhurtamAll(ctx, "testville", 2026)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(results), 6; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for _, kind := range svc.Kinds() {
		result, ok := results[kind]
		if !ok {
			t.Errorf("missing kind %v", kind)
			continue
		}
		if err := result.Check(); err != nil {
			t.Errorf("%v: %v", kind, err)
		}
		var got muhurtam.Result
		found, err := st.GetMuhurtam(ctx, kind, "testville", 2026, &got)
		if err != nil || !found {
			t.Errorf("%v: document not persisted: found %v: %v", kind, found, err)
		}
	}
}

func TestServiceCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := testService(t)
	if _, err := svc.Year(ctx, "testville", 2026); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
}

func TestParseDate(t *testing.T) {
	date, err := almanac.ParseDate("2026-01-07")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := date, datetime.NewCalendarDate(2026, 1, 7); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, val := range []string{"", "garbage", "2026-13-01", "07/01/2026"} {
		if _, err := almanac.ParseDate(val); !errors.Is(err, almanac.ErrBadDate) {
			t.Errorf("%q: got %v, want %v", val, err, almanac.ErrBadDate)
		}
	}
}

func oneDay() []*panchangam.Record {
	return []*panchangam.Record{{Date: "2026-01-01"}}
}

func TestDocumentChecks(t *testing.T) {
	info := tables.Info{Key: "testville", Name: "Testville", Country: "Nowhere"}
	for _, tc := range []struct {
		doc store.Checker
		ok  bool
	}{
		{&almanac.YearData{Year: 2026, Location: info, Count: 1, Days: oneDay()}, true},
		{&almanac.YearData{Location: info, Count: 1, Days: oneDay()}, false},
		{&almanac.YearData{Year: 2026, Location: info, Count: 2, Days: oneDay()}, false},
		{&almanac.YearData{Year: 2026, Count: 1, Days: oneDay()}, false},
		{&almanac.MonthData{Year: 2026, Month: 2, Location: info, Count: 1, Days: oneDay()}, true},
		{&almanac.MonthData{Year: 2026, Month: 13, Location: info, Count: 1, Days: oneDay()}, false},
		{&almanac.RangeData{StartDate: "2026-01-01", EndDate: "2026-01-01", Location: info, Count: 1, Days: oneDay()}, true},
		{&almanac.RangeData{EndDate: "2026-01-01", Location: info, Count: 1, Days: oneDay()}, false},
	} {
		err := tc.doc.Check()
		if got := err == nil; got != tc.ok {
			t.Errorf("%#v: got %v, want %v", tc.doc, err, tc.ok)
		}
	}
}
