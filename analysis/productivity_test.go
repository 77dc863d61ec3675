// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"math"
	"testing"

	"github.com/jayhesselberth/nihexporter/exporter"
)

func TestProductivity(t *testing.T) {
	projects := []exporter.Project{
		proj("P1", 1, "GM", "R01", 2010, 0),
		proj("P1", 2, "GM", "R01", 2011, 0), // second year: still one output row
		proj("P2", 3, "CA", "P01", 2010, 0),
		proj("P3", 4, "CA", "U54", 2010, 0), // no rollup row: dropped
	}
	io := []exporter.ProjectIO{
		{ProjectNum: "P1", TotalCost: 2e6, NPubs: 4, NPatents: 1},
		{ProjectNum: "P2", TotalCost: 3e6, NPubs: 0, NPatents: 0},
	}

	got := Productivity(projects, io, nil)
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(got), got)
	}
	if got[0].ProjectNum != "P1" || got[0].CostPerPub != 500000 {
		t.Errorf("P1 = %+v, want cost.per.pub 500000", got[0])
	}
	// No publications: the ratio is an explicit undefined marker,
	// never zero and never a panic.
	if got[1].ProjectNum != "P2" || !math.IsNaN(got[1].CostPerPub) {
		t.Errorf("P2 = %+v, want NaN cost.per.pub", got[1])
	}
}

func TestProductivityPredicate(t *testing.T) {
	projects := []exporter.Project{
		proj("P1", 1, "GM", "R01", 2010, 0),
		proj("P2", 2, "GM", "P01", 2010, 0),
		proj("P3", 3, "GM", "P01", 2010, 0),
	}
	io := []exporter.ProjectIO{
		{ProjectNum: "P1", TotalCost: 5e6, NPubs: 10, NPatents: 0},
		{ProjectNum: "P2", TotalCost: 5e6, NPubs: 10, NPatents: 0},
		{ProjectNum: "P3", TotalCost: 5e5, NPubs: 1, NPatents: 0},
	}

	// The classic vignette filter: big non-R01 grants.
	got := Productivity(projects, io, func(r ProductivityRow) bool {
		return r.Activity != "R01" && r.TotalCost > 1e6
	})
	if len(got) != 1 || got[0].ProjectNum != "P2" {
		t.Errorf("filtered rows = %v, want only P2", got)
	}
}

func TestInstituteProductivity(t *testing.T) {
	projects := []exporter.Project{
		proj("P1", 1, "GM", "R01", 2010, 0),
		proj("P2", 2, "GM", "R01", 2010, 0),
		proj("P3", 3, "CA", "R01", 2010, 0),
	}
	io := []exporter.ProjectIO{
		{ProjectNum: "P1", TotalCost: 4e6, NPubs: 8, NPatents: 2},
		{ProjectNum: "P2", TotalCost: 2e6, NPubs: 4, NPatents: 0},
		{ProjectNum: "P3", TotalCost: 9e6, NPubs: 0, NPatents: 0},
	}

	got := InstituteProductivity(projects, io)
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(got), got)
	}
	// Sorted by descending total cost: CA first.
	ca, gm := got[0], got[1]
	if ca.Institute != "CA" || gm.Institute != "GM" {
		t.Fatalf("order = %s, %s, want CA, GM", got[0].Institute, got[1].Institute)
	}
	if gm.NProjects != 2 || gm.TotalCost != 6e6 || gm.NPubs != 12 || gm.NPatents != 2 {
		t.Errorf("GM rollup = %+v", gm)
	}
	if gm.PubCost != 500000 || gm.PatentCost != 3e6 {
		t.Errorf("GM ratios = pub %v, patent %v, want 500000, 3e6", gm.PubCost, gm.PatentCost)
	}
	if !math.IsNaN(ca.PubCost) || !math.IsNaN(ca.PatentCost) {
		t.Errorf("CA ratios = pub %v, patent %v, want NaN (no outputs)", ca.PubCost, ca.PatentCost)
	}
}
