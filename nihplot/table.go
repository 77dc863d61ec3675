// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/table"

	"github.com/jayhesselberth/nihexporter/analysis"
)

// Derived tables carry dollars; everything below scales them to
// millions for display. This is the only place that conversion
// happens.

const million = 1e6

// fundingTable keeps the top organizations by overall dollars and
// packs their yearly funding into a gg table.
func fundingTable(rows []analysis.InstitutionYearCost, top int) *table.Table {
	totals := make(map[string]float64)
	for _, r := range rows {
		totals[orgLabel(r)] += r.TotalDollars
	}
	labels := make([]string, 0, len(totals))
	for l := range totals {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return totals[labels[i]] > totals[labels[j]] })
	if len(labels) > top {
		labels = labels[:top]
	}
	keep := make(map[string]bool, len(labels))
	for _, l := range labels {
		keep[l] = true
	}

	var years []int
	var orgs []string
	var dollars []float64
	for _, r := range rows {
		l := orgLabel(r)
		if !keep[l] {
			continue
		}
		years = append(years, r.FiscalYear)
		orgs = append(orgs, l)
		dollars = append(dollars, r.TotalDollars/million)
	}
	return new(table.Builder).
		Add("fiscal year", years).
		Add("org name", orgs).
		Add("dollars (millions)", dollars).
		Done()
}

// orgLabel names an organization for display, falling back to the
// DUNS for left-join misses.
func orgLabel(r analysis.InstitutionYearCost) string {
	switch {
	case r.OrgName != "":
		return r.OrgName
	case r.OrgDUNS != "":
		return r.OrgDUNS
	}
	return "(unknown)"
}

func piTable(rows []analysis.PICost, top int) *table.Table {
	if len(rows) > top {
		rows = rows[:top]
	}
	ranks := make([]int, len(rows))
	ids := make([]string, len(rows))
	dollars := make([]float64, len(rows))
	for i, r := range rows {
		ranks[i] = i + 1
		ids[i] = fmt.Sprintf("%d", r.PIID)
		dollars[i] = r.Dollars / million
	}
	return new(table.Builder).
		Add("rank", ranks).
		Add("pi", ids).
		Add("dollars (millions)", dollars).
		Done()
}

func productivityTable(rows []analysis.ProductivityRow) *table.Table {
	nums := make([]string, len(rows))
	insts := make([]string, len(rows))
	costs := make([]float64, len(rows))
	pubs := make([]int, len(rows))
	perPub := make([]float64, len(rows))
	for i, r := range rows {
		nums[i] = r.ProjectNum
		insts[i] = r.Institute
		costs[i] = r.TotalCost / million
		pubs[i] = r.NPubs
		perPub[i] = r.CostPerPub / million // NaN rows stay NaN
	}
	return new(table.Builder).
		Add("project", nums).
		Add("institute", insts).
		Add("total cost (millions)", costs).
		Add("publications", pubs).
		Add("cost per pub (millions)", perPub).
		Done()
}

func durationTable(rows []analysis.GrantDuration) *table.Table {
	nums := make([]string, len(rows))
	years := make([]float64, len(rows))
	for i, r := range rows {
		nums[i] = r.ProjectNum
		years[i] = r.Years
	}
	return new(table.Builder).
		Add("project", nums).
		Add("duration (years)", years).
		Done()
}

func decileTable(bins []analysis.CostBin) *table.Table {
	insts := make([]string, len(bins))
	tiles := make([]int, len(bins))
	projects := make([]int, len(bins))
	costs := make([]float64, len(bins))
	pubs := make([]int, len(bins))
	for i, b := range bins {
		insts[i] = b.Institute
		tiles[i] = b.Tile
		projects[i] = b.NProjects
		costs[i] = b.TotalCost / million
		pubs[i] = b.NPubs
	}
	return new(table.Builder).
		Add("institute", insts).
		Add("cost decile", tiles).
		Add("projects", projects).
		Add("total cost (millions)", costs).
		Add("publications", pubs).
		Done()
}

func rcrTable(rows []analysis.RCRSummary) *table.Table {
	insts := make([]string, len(rows))
	pubs := make([]int, len(rows))
	means := make([]float64, len(rows))
	geomeans := make([]float64, len(rows))
	medians := make([]float64, len(rows))
	for i, r := range rows {
		insts[i] = r.Institute
		pubs[i] = r.NPubs
		means[i] = r.Mean
		geomeans[i] = r.GeoMean
		medians[i] = r.Median
	}
	return new(table.Builder).
		Add("institute", insts).
		Add("publications", pubs).
		Add("mean rcr", means).
		Add("geomean rcr", geomeans).
		Add("median rcr", medians).
		Done()
}
