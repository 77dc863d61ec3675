// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"sort"

	"github.com/jayhesselberth/nihexporter/exporter"
)

// InstitutionYearCost is total grant funding awarded to one
// organization in one fiscal year.
type InstitutionYearCost struct {
	FiscalYear int
	OrgDUNS    string

	// OrgName is "" when the DUNS has no org_info row (left-join
	// miss) or when the project row has no organization link at
	// all, in which case OrgDUNS is also "".
	OrgName string

	TotalDollars float64
}

// CostByInstitutionYear sums yearly project costs by grantee
// organization and fiscal year, sorted by descending dollars.
//
// Project rows are left-joined to project_orgs on application.id and
// on to org_info on org.duns: a row with no organization link is kept
// under the empty DUNS, and a DUNS with no org_info row keeps its
// DUNS with an empty name. Unreported costs count as zero.
func CostByInstitutionYear(projects []exporter.Project, projectOrgs []exporter.ProjectOrg, orgInfo []exporter.OrgInfo) []InstitutionYearCost {
	orgsByApp := make(map[int64][]string)
	for _, po := range projectOrgs {
		orgsByApp[po.ApplicationID] = append(orgsByApp[po.ApplicationID], po.OrgDUNS)
	}
	nameByDUNS := make(map[string]string, len(orgInfo))
	for _, o := range orgInfo {
		nameByDUNS[o.OrgDUNS] = o.OrgName
	}

	type key struct {
		duns string
		year int
	}
	sums := make(map[key]float64)
	for _, p := range projects {
		orgs := orgsByApp[p.ApplicationID]
		if len(orgs) == 0 {
			orgs = []string{""}
		}
		// A project linked to several organizations contributes
		// its cost to each; the release does not apportion.
		for _, duns := range orgs {
			sums[key{duns, p.FiscalYear}] += orZero(p.FYCost)
		}
	}

	out := make([]InstitutionYearCost, 0, len(sums))
	for k, dollars := range sums {
		out = append(out, InstitutionYearCost{
			FiscalYear:   k.year,
			OrgDUNS:      k.duns,
			OrgName:      nameByDUNS[k.duns],
			TotalDollars: dollars,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalDollars != out[j].TotalDollars {
			return out[i].TotalDollars > out[j].TotalDollars
		}
		if out[i].OrgDUNS != out[j].OrgDUNS {
			return out[i].OrgDUNS < out[j].OrgDUNS
		}
		return out[i].FiscalYear < out[j].FiscalYear
	})
	return out
}

// PICost is total lifetime funding attributed to one principal
// investigator.
type PICost struct {
	PIID    int64
	Dollars float64
}

// CostByPI sums lifetime grant costs by principal investigator,
// sorted by descending dollars.
//
// Each grant's cost is first summed across its fiscal years, then
// attributed in full to every PI linked to the grant. The fan-out is
// intentional: the release does not apportion cost across multiple
// PIs, so a grant with k PIs contributes its whole cost to each of
// the k sums. Links with a missing PI identity are excluded, as are
// links to grants with no project rows.
func CostByPI(projects []exporter.Project, projectPIs []exporter.ProjectPI) []PICost {
	totals := lifetimeCost(projects)

	sums := make(map[int64]float64)
	for _, link := range projectPIs {
		if link.PIID == 0 {
			continue
		}
		cost, ok := totals[link.ProjectNum]
		if !ok {
			continue
		}
		sums[link.PIID] += cost
	}

	out := make([]PICost, 0, len(sums))
	for id, dollars := range sums {
		out = append(out, PICost{id, dollars})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dollars != out[j].Dollars {
			return out[i].Dollars > out[j].Dollars
		}
		return out[i].PIID < out[j].PIID
	})
	return out
}
