// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package almanac serves Hindu almanac documents, the per-day
// panchangam, month, year and date-range assemblies and muhurtam date
// searches, for a registry of locations. Queries validate their inputs,
// then read through an optional document store, computing and
// persisting on a miss; a Service without a store computes everything
// live.
package almanac

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"cloudeng.io/almanac/ephemeris"
	"cloudeng.io/almanac/muhurtam"
	"cloudeng.io/almanac/panchangam"
	"cloudeng.io/almanac/store"
	"cloudeng.io/almanac/tables"
	"cloudeng.io/datetime"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

var (
	// ErrUnknownLocation is returned for a location key absent from
	// the registry.
	ErrUnknownLocation = errors.New("unknown location")
	// ErrUnsupportedYear is returned for a year outside the supported
	// set; year keyed documents exist only for supported years.
	ErrUnsupportedYear = errors.New("unsupported year")
	// ErrBadDate is returned for malformed dates and for inverted or
	// oversized ranges.
	ErrBadDate = errors.New("invalid date")
)

// maxRangeDays bounds Range queries to a leap year's worth of days.
const maxRangeDays = 366

type options struct {
	provider    ephemeris.Provider
	store       *store.T
	tables      *tables.Set
	catalog     muhurtam.Catalog
	registry    *tables.Registry
	years       []int
	concurrency int
}

// Option represents an option to New.
type Option func(*options)

// WithProvider sets the ephemeris provider, Meeus by default.
func WithProvider(p ephemeris.Provider) Option {
	return func(o *options) { o.provider = p }
}

// WithStore sets the document store. Without one every query is
// computed live and nothing is persisted.
func WithStore(s *store.T) Option {
	return func(o *options) { o.store = s }
}

// WithTables overrides the default name and segment tables.
func WithTables(ts *tables.Set) Option {
	return func(o *options) { o.tables = ts }
}

// WithCatalog overrides the default muhurtam rule catalog.
func WithCatalog(c muhurtam.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithLocations sets the location registry.
func WithLocations(r *tables.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithYears sets the supported years for year keyed documents.
func WithYears(years []int) Option {
	return func(o *options) { o.years = years }
}

// WithConcurrency bounds the worker pool used for batch generation,
// the default is GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// Service answers almanac queries for the locations of its registry.
// It is safe for concurrent use.
type Service struct {
	options
	computer *panchangam.Computer
}

// New returns a Service configured by the supplied options.
func New(opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, fn := range opts {
		fn(&svc.options)
	}
	if svc.provider == nil {
		svc.provider = ephemeris.Meeus{}
	}
	if svc.tables == nil {
		svc.tables = tables.Default()
	}
	if svc.catalog == nil {
		svc.catalog = muhurtam.Default()
	}
	if svc.registry == nil {
		registry, err := tables.DefaultRegistry()
		if err != nil {
			return nil, err
		}
		svc.registry = registry
	}
	if len(svc.years) == 0 {
		svc.years = tables.DefaultYears()
	}
	if svc.concurrency <= 0 {
		svc.concurrency = runtime.GOMAXPROCS(0)
	}
	computer, err := panchangam.New(svc.provider,
		panchangam.WithTables(svc.tables),
		panchangam.WithConcurrency(svc.concurrency))
	if err != nil {
		return nil, err
	}
	svc.computer = computer
	return svc, nil
}

// Locations returns the registry's locations sorted by key.
func (s *Service) Locations() []tables.Location {
	return s.registry.Locations()
}

// Years returns the supported years.
func (s *Service) Years() []int {
	return slices.Clone(s.years)
}

// Kinds returns the catalog's muhurtam kinds in sorted order.
func (s *Service) Kinds() []string {
	return s.catalog.Kinds()
}

// ParseDate parses a YYYY-MM-DD civil date.
func ParseDate(val string) (datetime.CalendarDate, error) {
	var zero datetime.CalendarDate
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return zero, fmt.Errorf("%w: %q", ErrBadDate, val)
	}
	return datetime.NewCalendarDate(t.Year(), datetime.Month(t.Month()), t.Day()), nil
}

// Day returns the record for one location and civil date.
func (s *Service) Day(ctx context.Context, location string, date datetime.CalendarDate) (*panchangam.Record, error) {
	loc, err := s.lookup(location)
	if err != nil {
		return nil, err
	}
	if err := checkDate(date); err != nil {
		return nil, err
	}
	return s.day(ctx, loc, date)
}

// Month returns one month of records, assembled from per-day
// documents; no month document is persisted.
func (s *Service) Month(ctx context.Context, location string, year, month int) (*MonthData, error) {
	loc, err := s.lookup(location)
	if err != nil {
		return nil, err
	}
	if err := s.checkYear(year); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %v", ErrBadDate, month)
	}
	last := int(datetime.DaysInMonth(year, datetime.Month(month)))
	days, derr := s.days(ctx, loc,
		datetime.NewCalendarDate(year, datetime.Month(month), 1),
		datetime.NewCalendarDate(year, datetime.Month(month), last))
	doc := &MonthData{Year: year, Month: month, Location: loc.Info(), Count: len(days), Days: days}
	return doc, derr
}

// Year returns the full year for a location. With a store the year
// document is served when present and written once every day of the
// year has been computed; on partial failure the successful days are
// returned alongside the collected per-date errors and no year
// document is written.
func (s *Service) Year(ctx context.Context, location string, year int) (*YearData, error) {
	loc, err := s.lookup(location)
	if err != nil {
		return nil, err
	}
	if err := s.checkYear(year); err != nil {
		return nil, err
	}
	if s.store != nil {
		var doc YearData
		found, err := s.store.GetYear(ctx, loc.Key, year, &doc)
		switch {
		case errors.Is(err, store.ErrCorrupt):
			ctxlog.Logger(ctx).Warn("recomputing corrupt year document", "location", loc.Key, "year", year, "error", err)
		case err != nil:
			return nil, err
		case found:
			return &doc, nil
		}
	}
	days, derr := s.days(ctx, loc,
		datetime.NewCalendarDate(year, 1, 1),
		datetime.NewCalendarDate(year, 12, 31))
	doc := &YearData{Year: year, Location: loc.Info(), Count: len(days), Days: days}
	if derr != nil {
		return doc, derr
	}
	if s.store != nil {
		if err := s.store.PutYear(ctx, loc.Key, year, doc); err != nil {
			return doc, err
		}
	}
	return doc, nil
}

// Range returns the records for an inclusive date range of at most
// 366 days. Per-day documents go through the store but the assembled
// range is never persisted.
func (s *Service) Range(ctx context.Context, location string, from, to datetime.CalendarDate) (*RangeData, error) {
	loc, err := s.lookup(location)
	if err != nil {
		return nil, err
	}
	if err := checkDate(from); err != nil {
		return nil, err
	}
	if err := checkDate(to); err != nil {
		return nil, err
	}
	dates := panchangam.Dates(from, to)
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: %v is before %v", ErrBadDate, dateString(to), dateString(from))
	}
	if len(dates) > maxRangeDays {
		return nil, fmt.Errorf("%w: %v days exceeds %v", ErrBadDate, len(dates), maxRangeDays)
	}
	days, derr := s.days(ctx, loc, from, to)
	doc := &RangeData{
		StartDate: dateString(from),
		EndDate:   dateString(to),
		Location:  loc.Info(),
		Count:     len(days),
		Days:      days,
	}
	return doc, derr
}

// Muhurtam returns the auspicious dates of a year for one event kind
// and location. The stored search document is served when present;
// otherwise the year is assembled, searched, and the result persisted.
func (s *Service) Muhurtam(ctx context.Context, kind, location string, year int) (*muhurtam.Result, error) {
	loc, err := s.lookup(location)
	if err != nil {
		return nil, err
	}
	if err := s.checkYear(year); err != nil {
		return nil, err
	}
	if _, ok := s.catalog[kind]; !ok {
		return nil, fmt.Errorf("%w: %v", muhurtam.ErrUnknownKind, kind)
	}
	return s.muhurtam(ctx, kind, loc, year, func() (*YearData, error) {
		return s.Year(ctx, location, year)
	})
}

// MuhurtamAll runs every catalog kind for a location and year,
// collecting per-kind failures without abandoning the remainder. The
// year is assembled at most once, and only when some kind misses the
// store.
func (s *Service) MuhurtamAll(ctx context.Context, location string, year int) (map[string]*muhurtam.Result, error) {
	loc, err := s.lookup(location)
	if err != nil {
		return nil, err
	}
	if err := s.checkYear(year); err != nil {
		return nil, err
	}
	var yd *YearData
	yearData := func() (*YearData, error) {
		if yd != nil {
			return yd, nil
		}
		var err error
		yd, err = s.Year(ctx, location, year)
		return yd, err
	}
	results := make(map[string]*muhurtam.Result, len(s.catalog))
	var errs errors.M
	for _, kind := range s.catalog.Kinds() {
		result, err := s.muhurtam(ctx, kind, loc, year, yearData)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", kind, err))
			continue
		}
		results[kind] = result
	}
	return results, errs.Err()
}

// muhurtam serves one kind from the store or selects it from the
// lazily supplied year data.
func (s *Service) muhurtam(ctx context.Context, kind string, loc tables.Location, year int, yearData func() (*YearData, error)) (*muhurtam.Result, error) {
	if s.store != nil {
		var doc muhurtam.Result
		found, err := s.store.GetMuhurtam(ctx, kind, loc.Key, year, &doc)
		switch {
		case errors.Is(err, store.ErrCorrupt):
			ctxlog.Logger(ctx).Warn("recomputing corrupt muhurtam document", "kind", kind, "location", loc.Key, "year", year, "error", err)
		case err != nil:
			return nil, err
		case found:
			return &doc, nil
		}
	}
	yd, err := yearData()
	if err != nil {
		return nil, err
	}
	dates, err := muhurtam.Select(s.catalog, kind, yd.Days)
	if err != nil {
		return nil, err
	}
	result := muhurtam.NewResult(year, kind, loc.Info(), dates)
	if s.store != nil {
		if err := s.store.PutMuhurtam(ctx, kind, loc.Key, year, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// day reads one record through the store, computing and persisting on
// a miss. Corrupt documents are recomputed and overwritten.
func (s *Service) day(ctx context.Context, loc tables.Location, date datetime.CalendarDate) (*panchangam.Record, error) {
	if s.store != nil {
		var rec panchangam.Record
		found, err := s.store.GetDay(ctx, loc.Key, date, &rec)
		switch {
		case errors.Is(err, store.ErrCorrupt):
			ctxlog.Logger(ctx).Warn("recomputing corrupt day document", "location", loc.Key, "date", dateString(date), "error", err)
		case err != nil:
			return nil, err
		case found:
			return &rec, nil
		}
	}
	rec, err := s.computer.Day(ctx, loc, date)
	if err != nil {
		return nil, err
	}
	if s.store != nil {
		if err := s.store.PutDay(ctx, loc.Key, date, rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// days computes the records for an inclusive date range with a
// bounded worker pool, collecting per-date failures rather than
// stopping at the first. The returned records are in date order with
// failed dates absent.
func (s *Service) days(ctx context.Context, loc tables.Location, from, to datetime.CalendarDate) ([]*panchangam.Record, error) {
	dates := panchangam.Dates(from, to)
	records := make([]*panchangam.Record, len(dates))
	g := errgroup.WithConcurrency(&errgroup.T{}, s.concurrency)
	for i, date := range dates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := s.day(ctx, loc, date)
			if err != nil {
				return fmt.Errorf("%v: %w", dateString(date), err)
			}
			records[i] = rec
			return nil
		})
	}
	err := g.Wait()
	out := make([]*panchangam.Record, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			out = append(out, rec)
		}
	}
	return out, err
}

func (s *Service) lookup(key string) (tables.Location, error) {
	loc, ok := s.registry.Lookup(key)
	if !ok {
		return tables.Location{}, fmt.Errorf("%w: %v", ErrUnknownLocation, key)
	}
	return loc, nil
}

func (s *Service) checkYear(year int) error {
	if slices.Contains(s.years, year) {
		return nil
	}
	return fmt.Errorf("%w: %v not in %v", ErrUnsupportedYear, year, s.years)
}

// checkDate rejects dates a calendar cannot contain, February 30th
// and the like.
func checkDate(date datetime.CalendarDate) error {
	t := time.Date(date.Year(), time.Month(date.Month()), date.Day(), 12, 0, 0, 0, time.UTC)
	if t.Year() != date.Year() || t.Month() != time.Month(date.Month()) || t.Day() != date.Day() || date.Year() <= 0 {
		return fmt.Errorf("%w: %v", ErrBadDate, dateString(date))
	}
	return nil
}

func dateString(date datetime.CalendarDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
}
