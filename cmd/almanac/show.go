// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"cloudeng.io/almanac"
)

func showCmdRunner(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*showFlags)
	ctx = loggingContext(ctx, fv.Verbose)
	date, err := almanac.ParseDate(fv.Date)
	if err != nil {
		return err
	}
	svc, err := newService(ctx, fv.CommonFlags, 0)
	if err != nil {
		return err
	}
	rec, err := svc.Day(ctx, fv.Location, date)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func locationsCmdRunner(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*locationsFlags)
	ctx = loggingContext(ctx, fv.Verbose)
	svc, err := newService(ctx, fv.CommonFlags, 0)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tCOUNTRY\tLATITUDE\tLONGITUDE\tTIMEZONE")
	for _, l := range svc.Locations() {
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\n",
			l.Key, l.Name, l.Country, l.Latitude, l.Longitude, l.TZ)
	}
	return tw.Flush()
}
