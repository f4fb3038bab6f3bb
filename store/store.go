// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package store persists almanac documents as a directory tree of
// pretty printed JSON files so that published data remains directly
// browsable. Day and year documents live under data/<year>/ and
// muhurtam searches under muhurtam_cache/, mirroring the layout served
// by the static site.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
)

// ErrCorrupt is returned when a stored document cannot be decoded or
// fails its consistency check. Callers generally treat it as a miss
// and overwrite the document with a fresh computation.
var ErrCorrupt = errors.New("corrupt document")

// Checker is implemented by all documents the store handles.
type Checker interface {
	Check() error
}

// T is a document store rooted at a single directory. Writes go via a
// temporary file and a rename so that readers never observe partial
// documents; concurrent writers of the same path are safe with the
// last write winning.
type T struct {
	root string
}

// New returns a store rooted at the supplied directory. The directory
// need not exist, it is created on first write.
func New(root string) *T {
	return &T{root: root}
}

// Root returns the store's root directory.
func (s *T) Root() string {
	return s.root
}

// DayPath returns the path of a day document relative to the root.
func (s *T) DayPath(location string, date datetime.CalendarDate) string {
	name := fmt.Sprintf("%04d-%02d-%02d.json", date.Year(), date.Month(), date.Day())
	return filepath.Join("data", strconv.Itoa(date.Year()), location, name)
}

// YearPath returns the path of a year document relative to the root.
func (s *T) YearPath(location string, year int) string {
	return filepath.Join("data", strconv.Itoa(year), fmt.Sprintf("%v_%v_full.json", year, location))
}

// MuhurtamPath returns the path of a muhurtam search document
// relative to the root.
func (s *T) MuhurtamPath(kind, location string, year int) string {
	return filepath.Join("muhurtam_cache", fmt.Sprintf("%v_%v_%v.json", kind, year, location))
}

// GetDay reads a day document into doc, returning false when none is
// stored.
func (s *T) GetDay(ctx context.Context, location string, date datetime.CalendarDate, doc Checker) (bool, error) {
	return s.get(ctx, s.DayPath(location, date), doc)
}

// PutDay writes a day document.
func (s *T) PutDay(ctx context.Context, location string, date datetime.CalendarDate, doc Checker) error {
	return s.put(ctx, s.DayPath(location, date), doc)
}

// GetYear reads a year document into doc, returning false when none
// is stored.
func (s *T) GetYear(ctx context.Context, location string, year int, doc Checker) (bool, error) {
	return s.get(ctx, s.YearPath(location, year), doc)
}

// PutYear writes a year document.
func (s *T) PutYear(ctx context.Context, location string, year int, doc Checker) error {
	return s.put(ctx, s.YearPath(location, year), doc)
}

// GetMuhurtam reads a muhurtam search document into doc, returning
// false when none is stored.
func (s *T) GetMuhurtam(ctx context.Context, kind, location string, year int, doc Checker) (bool, error) {
	return s.get(ctx, s.MuhurtamPath(kind, location, year), doc)
}

// PutMuhurtam writes a muhurtam search document.
func (s *T) PutMuhurtam(ctx context.Context, kind, location string, year int, doc Checker) error {
	return s.put(ctx, s.MuhurtamPath(kind, location, year), doc)
}

func (s *T) get(ctx context.Context, path string, doc Checker) (bool, error) {
	full := filepath.Join(s.root, path)
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return false, fmt.Errorf("%w: %v: %v", ErrCorrupt, path, err)
	}
	if err := doc.Check(); err != nil {
		return false, fmt.Errorf("%w: %v: %v", ErrCorrupt, path, err)
	}
	ctxlog.Logger(ctx).Debug("store read", "path", path)
	return true, nil
}

func (s *T) put(ctx context.Context, path string, doc Checker) error {
	if err := doc.Check(); err != nil {
		return fmt.Errorf("refusing to store %v: %w", path, err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	full := filepath.Join(s.root, path)
	if err := writeFileAtomic(full, append(data, '\n')); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("store write", "path", path, "size", len(data))
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".almanac-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
