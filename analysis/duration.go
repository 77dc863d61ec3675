// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"sort"
	"time"

	"github.com/jayhesselberth/nihexporter/exporter"
)

// GrantDuration is the funded span of one grant.
type GrantDuration struct {
	ProjectNum string

	// Years is the span from the grant's earliest reported start
	// to its latest reported end, in 365-day years.
	Years float64
}

const daysPerYear = 365

// GrantDurations computes each grant's funded span from its yearly
// rows: max(project.end) minus min(project.start), in 365-day years,
// sorted by descending duration. The result is independent of input
// row order. Grants with no reported start or no reported end are
// omitted, since their span is undefined.
func GrantDurations(projects []exporter.Project) []GrantDuration {
	type span struct {
		start, end time.Time
	}
	spans := make(map[string]span)
	for _, p := range projects {
		s := spans[p.ProjectNum]
		if !p.ProjectStart.IsZero() && (s.start.IsZero() || p.ProjectStart.Before(s.start)) {
			s.start = p.ProjectStart
		}
		if !p.ProjectEnd.IsZero() && (s.end.IsZero() || p.ProjectEnd.After(s.end)) {
			s.end = p.ProjectEnd
		}
		spans[p.ProjectNum] = s
	}

	out := make([]GrantDuration, 0, len(spans))
	for num, s := range spans {
		if s.start.IsZero() || s.end.IsZero() {
			continue
		}
		days := s.end.Sub(s.start).Hours() / 24
		out = append(out, GrantDuration{num, days / daysPerYear})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Years != out[j].Years {
			return out[i].Years > out[j].Years
		}
		return out[i].ProjectNum < out[j].ProjectNum
	})
	return out
}
