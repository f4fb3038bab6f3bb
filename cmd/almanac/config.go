// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"

	"cloudeng.io/almanac"
	"cloudeng.io/almanac/store"
	"cloudeng.io/almanac/tables"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
)

// config is the optional YAML configuration file, eg:
//
//	data_dir: ./data
//	concurrency: 8
//	years: [2025, 2026, 2027]
//	locations:
//	  - key: mumbai
//	    name: Mumbai, Maharashtra
//	    country: India
//	    latitude: 19.0760
//	    longitude: 72.8777
//	    timezone: Asia/Kolkata
//
// Locations add to, or by key replace, the built in registry. Flags
// take precedence over the file.
type config struct {
	DataDir     string            `yaml:"data_dir"`
	Concurrency int               `yaml:"concurrency"`
	Years       []int             `yaml:"years"`
	Locations   []tables.Location `yaml:"locations"`
}

// newService builds the almanac service from the configuration file,
// if any, and the command line.
func newService(ctx context.Context, fv CommonFlags, concurrency int) (*almanac.Service, error) {
	var cfg config
	if fv.Config != "" {
		if err := cmdyaml.ParseConfigFile(ctx, fv.Config, &cfg); err != nil {
			return nil, err
		}
	}
	if fv.DataDir != "" {
		cfg.DataDir = fv.DataDir
	}
	if concurrency > 0 {
		cfg.Concurrency = concurrency
	}
	var opts []almanac.Option
	if cfg.DataDir != "" {
		opts = append(opts, almanac.WithStore(store.New(cfg.DataDir)))
	}
	if cfg.Concurrency > 0 {
		opts = append(opts, almanac.WithConcurrency(cfg.Concurrency))
	}
	if len(cfg.Years) > 0 {
		opts = append(opts, almanac.WithYears(cfg.Years))
	}
	if len(cfg.Locations) > 0 {
		registry, err := tables.DefaultRegistry()
		if err != nil {
			return nil, err
		}
		if registry, err = registry.With(cfg.Locations...); err != nil {
			return nil, err
		}
		opts = append(opts, almanac.WithLocations(registry))
	}
	return almanac.New(opts...)
}

// loggingContext attaches a JSON logger to the context for the
// library packages to log through.
func loggingContext(ctx context.Context, verbose bool) context.Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: level})
}
