// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"sort"

	"github.com/jayhesselberth/nihexporter/exporter"
)

// CostBin aggregates one institute's grants falling in one cost bin.
//
// BinByCostDecile and BinByCostInterval both produce CostBins but
// draw bin boundaries differently: the former by rank within the
// institute, the latter by fixed dollar breakpoints shared across
// institutes. They are alternative views of the same cost/output
// question and their boundaries are deliberately not reconciled.
type CostBin struct {
	Institute string

	// Tile is the 1-based bin number, ordered by ascending cost.
	Tile int

	NProjects int
	TotalCost float64
	NPubs     int
}

// binnedGrant is one grant prepared for binning: lifetime cost and
// publication count from its project_io rollup.
type binnedGrant struct {
	cost float64
	pubs int
}

// grantsByInstitute joins grants to their rollups, grouped per
// institute with input order preserved within each group. Grants with
// no rollup row are dropped (their lifetime cost is unknown).
func grantsByInstitute(projects []exporter.Project, projectIO []exporter.ProjectIO) map[string][]binnedGrant {
	ioByNum := make(map[string]exporter.ProjectIO, len(projectIO))
	for _, io := range projectIO {
		ioByNum[io.ProjectNum] = io
	}
	per := make(map[string][]binnedGrant)
	for _, g := range dedupeGrants(projects) {
		io, ok := ioByNum[g.projectNum]
		if !ok {
			continue
		}
		per[g.institute] = append(per[g.institute], binnedGrant{orZero(io.TotalCost), io.NPubs})
	}
	return per
}

// BinByCostDecile splits each institute's grants by lifetime cost
// into the given number of equal-population bins and aggregates cost
// and publication counts per bin.
//
// Binning is by rank: grants are stably sorted by ascending lifetime
// cost, so ties keep their input order, and split into buckets runs
// whose sizes differ by at most one (the larger runs come first, as
// in dplyr's ntile). An institute with fewer grants than buckets
// yields one bin per grant. Results are ordered by institute code,
// then tile.
func BinByCostDecile(projects []exporter.Project, projectIO []exporter.ProjectIO, buckets int) []CostBin {
	if buckets < 1 {
		panic("analysis: bucket count must be at least 1")
	}

	per := grantsByInstitute(projects, projectIO)
	insts := make([]string, 0, len(per))
	for inst := range per {
		insts = append(insts, inst)
	}
	sort.Strings(insts)

	var out []CostBin
	for _, inst := range insts {
		grants := append([]binnedGrant(nil), per[inst]...)
		sort.SliceStable(grants, func(i, j int) bool {
			return grants[i].cost < grants[j].cost
		})

		n := len(grants)
		k := buckets
		if k > n {
			k = n
		}
		big, rem := n/k+1, n%k
		next := 0
		for tile := 1; tile <= k; tile++ {
			size := big
			if tile > rem {
				size = big - 1
			}
			bin := CostBin{Institute: inst, Tile: tile}
			for _, g := range grants[next : next+size] {
				bin.NProjects++
				bin.TotalCost += g.cost
				bin.NPubs += g.pubs
			}
			next += size
			out = append(out, bin)
		}
	}
	return out
}

// BinByCostInterval assigns each grant to the fixed interval
// breaks[i] <= cost < breaks[i+1] and aggregates per institute and
// interval. breaks must be ascending and hold at least two values.
//
// Costs outside the covered range are clamped into the boundary bins:
// below breaks[0] into the first, at or above the last break into the
// last. No grant is discarded for falling outside the breaks. Empty
// bins produce no row. Results are ordered by institute code, then
// tile.
func BinByCostInterval(projects []exporter.Project, projectIO []exporter.ProjectIO, breaks []float64) []CostBin {
	if len(breaks) < 2 {
		panic("analysis: need at least two breakpoints")
	}
	for i := 1; i < len(breaks); i++ {
		if breaks[i] <= breaks[i-1] {
			panic("analysis: breakpoints must be ascending")
		}
	}
	nbins := len(breaks) - 1

	per := grantsByInstitute(projects, projectIO)
	insts := make([]string, 0, len(per))
	for inst := range per {
		insts = append(insts, inst)
	}
	sort.Strings(insts)

	var out []CostBin
	for _, inst := range insts {
		bins := make([]CostBin, nbins)
		for _, g := range per[inst] {
			i := sort.SearchFloat64s(breaks, g.cost)
			// SearchFloat64s finds the insertion point; shift
			// to the interval left of it, then clamp.
			if i > 0 && (i >= len(breaks) || breaks[i] != g.cost) {
				i--
			}
			if i >= nbins {
				i = nbins - 1
			}
			bins[i].NProjects++
			bins[i].TotalCost += g.cost
			bins[i].NPubs += g.pubs
		}
		for i := range bins {
			if bins[i].NProjects == 0 {
				continue
			}
			bins[i].Institute = inst
			bins[i].Tile = i + 1
			out = append(out, bins[i])
		}
	}
	return out
}
