// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nihplot tabulates and plots analyses of NIH EXPORTER grant
// funding records.
//
// nihplot loads the nihexporter SQLite database and runs one named
// analysis over it:
//
//	funding       yearly grant dollars by grantee organization
//	pis           lifetime grant dollars by principal investigator
//	productivity  lifetime cost against publication output per grant
//	duration      distribution of funded grant spans
//	deciles       publication output across per-institute cost deciles
//	rcr           per-institute Relative Citation Ratio summaries
//
// The derived table is rendered as an SVG plot, or printed as a table
// with -table. Dollar values are reported in millions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/jayhesselberth/nihexporter/analysis"
	"github.com/jayhesselberth/nihexporter/exporter"
)

func main() {
	log.SetPrefix("nihplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagDB         = flag.String("db", "nihexporter.db", "load EXPORTER tables from `database`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable      = flag.Bool("table", false, "output a table instead of a plot")
		flagTop        = flag.Int("top", 8, "keep the top `n` organizations or investigators")
		flagBuckets    = flag.Int("buckets", 10, "split each institute's grants into `n` cost bins")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <analysis>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Analyses: funding, pis, productivity, duration, deciles, rcr\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	store, err := exporter.Load(*flagDB)
	if err != nil {
		log.Fatal(err)
	}
	if bad := analysis.CheckTotals(store.Projects, store.ProjectIO, 1e-6); bad != nil {
		log.Printf("warning: %d project_io rollups disagree with yearly costs", len(bad))
	}

	var tab table.Grouping
	var plot *gg.Plot
	switch name := flag.Arg(0); name {
	case "funding":
		rows := analysis.CostByInstitutionYear(store.Projects, store.ProjectOrgs, store.OrgInfo)
		tab = fundingTable(rows, *flagTop)
		plot = plotFunding(tab)
	case "pis":
		rows := analysis.CostByPI(store.Projects, store.ProjectPIs)
		tab = piTable(rows, *flagTop)
		plot = plotPIs(tab)
	case "productivity":
		rows := analysis.Productivity(store.Projects, store.ProjectIO, nil)
		tab = productivityTable(rows)
		plot = plotProductivity(tab)
	case "duration":
		rows := analysis.GrantDurations(store.Projects)
		tab = durationTable(rows)
		plot = plotDuration(tab)
	case "deciles":
		bins := analysis.BinByCostDecile(store.Projects, store.ProjectIO, *flagBuckets)
		tab = decileTable(bins)
		plot = plotDeciles(tab)
	case "rcr":
		rows := analysis.SummarizeRCR(store.Projects, store.PubLinks, store.Publications)
		tab = rcrTable(rows)
		plot = plotRCR(tab)
	default:
		log.Fatalf("unknown analysis %q", name)
	}

	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if *flagTable {
		table.Fprint(f, tab)
		return
	}

	plot.Add(gg.Title("NIH EXPORTER " + flag.Arg(0)))
	plot.WriteSVG(f, 700, 450)
}
