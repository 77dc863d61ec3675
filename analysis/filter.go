// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import "github.com/jayhesselberth/nihexporter/exporter"

// FilterByActivityAndInstitute selects the project rows whose
// activity code and institute code are both listed. An empty or nil
// list leaves that column unconstrained. A selection that matches
// nothing returns an empty slice, not an error.
func FilterByActivityAndInstitute(projects []exporter.Project, activities, institutes []string) []exporter.Project {
	actOK := memberOf(activities)
	instOK := memberOf(institutes)
	out := []exporter.Project{}
	for _, p := range projects {
		if actOK(p.Activity) && instOK(p.Institute) {
			out = append(out, p)
		}
	}
	return out
}

// memberOf returns a membership predicate over vals; an empty set
// admits everything.
func memberOf(vals []string) func(string) bool {
	if len(vals) == 0 {
		return func(string) bool { return true }
	}
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return func(v string) bool { return set[v] }
}
