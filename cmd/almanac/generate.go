// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/almanac"
	"cloudeng.io/logging/ctxlog"
)

// selection returns the years and location keys to operate on, the
// full supported set unless narrowed by flags. Requested values that
// are unknown are left in place for the service to reject.
func selection(svc *almanac.Service, year int, location string) ([]int, []string) {
	years := svc.Years()
	if year != 0 {
		years = []int{year}
	}
	var keys []string
	if location != "" {
		keys = []string{location}
	} else {
		for _, l := range svc.Locations() {
			keys = append(keys, l.Key)
		}
	}
	return years, keys
}

func generateCmdRunner(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*generateFlags)
	ctx = loggingContext(ctx, fv.Verbose)
	svc, err := newService(ctx, fv.CommonFlags, fv.Concurrency)
	if err != nil {
		return err
	}
	years, locations := selection(svc, fv.Year, fv.Location)
	var generated, failed int
	for _, year := range years {
		for _, location := range locations {
			start := time.Now()
			doc, err := svc.Year(ctx, location, year)
			if err != nil {
				failed++
				ctxlog.Logger(ctx).Error("year generation failed",
					"location", location, "year", year, "error", err)
				continue
			}
			generated++
			ctxlog.Logger(ctx).Info("generated year",
				"location", location, "year", year, "days", doc.Count,
				"took", time.Since(start))
		}
	}
	if generated == 0 && failed > 0 {
		return fmt.Errorf("all %v year generations failed", failed)
	}
	return nil
}

func muhurtamCacheCmdRunner(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*muhurtamCacheFlags)
	ctx = loggingContext(ctx, fv.Verbose)
	svc, err := newService(ctx, fv.CommonFlags, fv.Concurrency)
	if err != nil {
		return err
	}
	years, locations := selection(svc, fv.Year, fv.Location)
	var generated, failed int
	for _, year := range years {
		for _, location := range locations {
			if fv.Kind != "" {
				result, err := svc.Muhurtam(ctx, fv.Kind, location, year)
				if err != nil {
					failed++
					ctxlog.Logger(ctx).Error("muhurtam search failed",
						"kind", fv.Kind, "location", location, "year", year, "error", err)
					continue
				}
				generated++
				ctxlog.Logger(ctx).Info("muhurtam search",
					"kind", fv.Kind, "location", location, "year", year, "dates", result.Count)
				continue
			}
			results, err := svc.MuhurtamAll(ctx, location, year)
			if err != nil {
				ctxlog.Logger(ctx).Error("muhurtam searches failed",
					"location", location, "year", year, "error", err)
			}
			if len(results) == 0 {
				failed++
				continue
			}
			generated++
			for _, kind := range svc.Kinds() {
				if result, ok := results[kind]; ok {
					ctxlog.Logger(ctx).Info("muhurtam search",
						"kind", kind, "location", location, "year", year, "dates", result.Count)
				}
			}
		}
	}
	if generated == 0 && failed > 0 {
		return fmt.Errorf("all %v muhurtam searches failed", failed)
	}
	return nil
}
