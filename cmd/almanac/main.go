// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command almanac generates, caches and displays Hindu almanac
// (panchangam) data and muhurtam date searches for a registry of
// locations.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are shared by every subcommand.
type CommonFlags struct {
	Config  string `subcmd:"config,,yaml configuration file overriding the data directory and built in years and locations"`
	DataDir string `subcmd:"data-dir,,directory for generated documents; empty means compute without persisting"`
	Verbose bool   `subcmd:"v,false,enable debug logging"`
}

type generateFlags struct {
	CommonFlags
	Concurrency int    `subcmd:"concurrency,0,days computed concurrently per year; 0 uses all CPUs"`
	Year        int    `subcmd:"year,0,generate a single year rather than all supported years"`
	Location    string `subcmd:"location,,generate a single location rather than the full registry"`
}

type muhurtamCacheFlags struct {
	CommonFlags
	Concurrency int    `subcmd:"concurrency,0,days computed concurrently per year; 0 uses all CPUs"`
	Year        int    `subcmd:"year,0,search a single year rather than all supported years"`
	Location    string `subcmd:"location,,search a single location rather than the full registry"`
	Kind        string `subcmd:"kind,,search a single event kind rather than the full catalog"`
}

type showFlags struct {
	CommonFlags
	Date     string `subcmd:"date,,date to display as YYYY-MM-DD"`
	Location string `subcmd:"location,chennai,location to display"`
}

type locationsFlags struct {
	CommonFlags
}

func init() {
	generateCmd := subcmd.NewCommand("generate",
		subcmd.MustRegisterFlagStruct(&generateFlags{}, nil, nil),
		generateCmdRunner, subcmd.WithoutArguments())
	generateCmd.Document("generate the per-day and full-year panchangam documents for the supported years and locations")

	muhurtamCmd := subcmd.NewCommand("muhurtam-cache",
		subcmd.MustRegisterFlagStruct(&muhurtamCacheFlags{}, nil, nil),
		muhurtamCacheCmdRunner, subcmd.WithoutArguments())
	muhurtamCmd.Document("generate the muhurtam search documents for the supported years and locations")

	showCmd := subcmd.NewCommand("show",
		subcmd.MustRegisterFlagStruct(&showFlags{}, nil, nil),
		showCmdRunner, subcmd.WithoutArguments())
	showCmd.Document("display the panchangam for one date and location")

	locationsCmd := subcmd.NewCommand("locations",
		subcmd.MustRegisterFlagStruct(&locationsFlags{}, nil, nil),
		locationsCmdRunner, subcmd.WithoutArguments())
	locationsCmd.Document("list the locations for which data can be generated")

	cmdSet = subcmd.NewCommandSet(generateCmd, muhurtamCmd, showCmd, locationsCmd)
	cmdSet.Document("generate and inspect Hindu almanac data")
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
