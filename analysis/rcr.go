// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/jayhesselberth/nihexporter/exporter"
)

// RCRSummary summarizes the Relative Citation Ratio of one
// institute's publications.
type RCRSummary struct {
	Institute string

	// NPubs counts the distinct publications with a reported RCR
	// that acknowledge one of the institute's grants.
	NPubs int

	Mean    float64
	GeoMean float64
	Median  float64
}

// SummarizeRCR computes per-institute RCR summary statistics over the
// publications acknowledging each institute's grants, sorted by
// institute code.
//
// A publication acknowledged by several grants of the same institute
// counts once for that institute; one acknowledged by grants of
// different institutes counts once per institute. Publications with
// no reported RCR are skipped.
func SummarizeRCR(projects []exporter.Project, pubLinks []exporter.PubLink, publications []exporter.Publication) []RCRSummary {
	instByNum := make(map[string]string)
	for _, p := range projects {
		if _, ok := instByNum[p.ProjectNum]; !ok {
			instByNum[p.ProjectNum] = p.Institute
		}
	}
	rcrByPMID := make(map[int64]float64, len(publications))
	for _, pub := range publications {
		rcrByPMID[pub.PMID] = pub.RCR
	}

	type instPub struct {
		inst string
		pmid int64
	}
	seen := make(map[instPub]bool)
	rcrs := make(map[string][]float64)
	for _, link := range pubLinks {
		inst, ok := instByNum[link.ProjectNum]
		if !ok {
			continue
		}
		if seen[instPub{inst, link.PMID}] {
			continue
		}
		seen[instPub{inst, link.PMID}] = true
		rcr, ok := rcrByPMID[link.PMID]
		if !ok || math.IsNaN(rcr) {
			continue
		}
		rcrs[inst] = append(rcrs[inst], rcr)
	}

	out := make([]RCRSummary, 0, len(rcrs))
	for inst, xs := range rcrs {
		out = append(out, RCRSummary{
			Institute: inst,
			NPubs:     len(xs),
			Mean:      stats.Mean(xs),
			GeoMean:   stats.GeoMean(xs),
			Median:    stats.Sample{Xs: xs}.Quantile(0.5),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Institute < out[j].Institute
	})
	return out
}
