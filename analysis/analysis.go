// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis computes derived tables over the NIH EXPORTER
// grant data.
//
// Every function in this package is pure: it takes slices from an
// exporter.Store (or rows derived from one), allocates its result,
// and touches no shared state. For a given input the output is
// deterministic, so independent analyses may run concurrently over
// the same Store.
//
// Numeric policy: an unreported cost (NaN in the Store) contributes
// zero to every sum. A ratio with a zero denominator, such as cost
// per publication for a grant with no publications, is NaN in the
// output; it is never coerced to zero, and callers must filter or
// handle it before aggregating further. Currency stays in dollars in
// every derived value; scaling to millions is presentation work.
package analysis

import (
	"math"

	"github.com/jayhesselberth/nihexporter/exporter"
)

// orZero maps the missing-cost marker to zero for summation.
func orZero(cost float64) float64 {
	if math.IsNaN(cost) {
		return 0
	}
	return cost
}

// lifetimeCost sums FYCost across all fiscal years of each grant,
// treating unreported costs as zero.
func lifetimeCost(projects []exporter.Project) map[string]float64 {
	totals := make(map[string]float64)
	for _, p := range projects {
		totals[p.ProjectNum] += orZero(p.FYCost)
	}
	return totals
}

// grantFacts is one grant reduced from its yearly rows to project.num
// granularity. Institute and Activity come from the grant's first row
// in input order; they do not vary across years of one grant.
type grantFacts struct {
	projectNum string
	institute  string
	activity   string
}

// dedupeGrants reduces yearly rows to one grantFacts per project.num,
// preserving first-appearance order.
func dedupeGrants(projects []exporter.Project) []grantFacts {
	seen := make(map[string]bool)
	var grants []grantFacts
	for _, p := range projects {
		if seen[p.ProjectNum] {
			continue
		}
		seen[p.ProjectNum] = true
		grants = append(grants, grantFacts{p.ProjectNum, p.Institute, p.Activity})
	}
	return grants
}
