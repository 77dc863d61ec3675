// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"math"
	"sort"

	"github.com/jayhesselberth/nihexporter/exporter"
)

// ProductivityRow relates one grant's lifetime cost to its research
// outputs.
type ProductivityRow struct {
	ProjectNum string
	Institute  string
	Activity   string
	TotalCost  float64
	NPubs      int
	NPatents   int

	// CostPerPub is TotalCost / NPubs, or NaN when the grant has
	// no publications. Callers must filter NaN rows before
	// aggregating further.
	CostPerPub float64
}

// Productivity joins grants (reduced to project.num granularity) to
// their project_io rollups and reports cost per publication. Grants
// with no rollup row are dropped. If keep is non-nil, only rows it
// accepts are returned; keep sees the completed row, including
// CostPerPub.
func Productivity(projects []exporter.Project, projectIO []exporter.ProjectIO, keep func(ProductivityRow) bool) []ProductivityRow {
	ioByNum := make(map[string]exporter.ProjectIO, len(projectIO))
	for _, io := range projectIO {
		ioByNum[io.ProjectNum] = io
	}

	var out []ProductivityRow
	for _, g := range dedupeGrants(projects) {
		io, ok := ioByNum[g.projectNum]
		if !ok {
			continue
		}
		row := ProductivityRow{
			ProjectNum: g.projectNum,
			Institute:  g.institute,
			Activity:   g.activity,
			TotalCost:  io.TotalCost,
			NPubs:      io.NPubs,
			NPatents:   io.NPatents,
			CostPerPub: math.NaN(),
		}
		if io.NPubs > 0 {
			row.CostPerPub = io.TotalCost / float64(io.NPubs)
		}
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// InstituteSummary rolls lifetime cost and outputs up to one NIH
// institute.
type InstituteSummary struct {
	Institute string
	NProjects int
	TotalCost float64
	NPubs     int
	NPatents  int

	// PubCost and PatentCost are dollars per publication and per
	// patent across the institute's grants; NaN when the
	// denominator is zero.
	PubCost    float64
	PatentCost float64
}

// InstituteProductivity aggregates grant rollups per institute,
// sorted by descending total cost.
func InstituteProductivity(projects []exporter.Project, projectIO []exporter.ProjectIO) []InstituteSummary {
	ioByNum := make(map[string]exporter.ProjectIO, len(projectIO))
	for _, io := range projectIO {
		ioByNum[io.ProjectNum] = io
	}

	sums := make(map[string]*InstituteSummary)
	for _, g := range dedupeGrants(projects) {
		io, ok := ioByNum[g.projectNum]
		if !ok {
			continue
		}
		s := sums[g.institute]
		if s == nil {
			s = &InstituteSummary{Institute: g.institute}
			sums[g.institute] = s
		}
		s.NProjects++
		s.TotalCost += orZero(io.TotalCost)
		s.NPubs += io.NPubs
		s.NPatents += io.NPatents
	}

	out := make([]InstituteSummary, 0, len(sums))
	for _, s := range sums {
		s.PubCost = ratio(s.TotalCost, s.NPubs)
		s.PatentCost = ratio(s.TotalCost, s.NPatents)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalCost != out[j].TotalCost {
			return out[i].TotalCost > out[j].TotalCost
		}
		return out[i].Institute < out[j].Institute
	})
	return out
}

// ratio divides dollars by a count, yielding the NaN undefined marker
// for an empty denominator.
func ratio(dollars float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}
	return dollars / float64(n)
}
