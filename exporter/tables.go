// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exporter

import "time"

// Project is one fiscal year of funding for a grant. A grant funded
// across several years has one Project row per fiscal year, all
// sharing the same ProjectNum; (ProjectNum, FiscalYear) is unique.
type Project struct {
	// ProjectNum is the full grant number, such as
	// "5R01GM038784-21".
	ProjectNum string

	// ApplicationID identifies the yearly application behind this
	// row and is the key into ProjectOrg.
	ApplicationID int64

	// Institute is the two-letter code of the NIH institute or
	// center administering the grant (see Institutes).
	Institute string

	// Activity is the grant activity code, such as "R01" or
	// "P01".
	Activity string

	FiscalYear int

	// FYCost is the total cost awarded in FiscalYear, in dollars.
	// It is NaN when the release does not report a cost for this
	// row; aggregations treat NaN as zero.
	FYCost float64

	// ProjectStart and ProjectEnd span the project period. Either
	// may be the zero time when unreported.
	ProjectStart time.Time
	ProjectEnd   time.Time
}

// OrgInfo describes a grantee organization, keyed by its DUNS number.
type OrgInfo struct {
	OrgDUNS  string
	OrgName  string
	OrgState string
}

// ProjectOrg links a yearly application to the organization it was
// awarded to.
type ProjectOrg struct {
	ApplicationID int64
	OrgDUNS       string
}

// ProjectPI links a grant to a principal investigator. A grant may
// carry several PIs and a PI may hold several grants.
type ProjectPI struct {
	ProjectNum string

	// PIID is the investigator's EXPORTER identity. Zero marks a
	// link whose PI identity is missing from the release.
	PIID int64
}

// PubLink links a grant to a publication it is acknowledged in.
type PubLink struct {
	ProjectNum string
	PMID       int64
}

// Publication is a PubMed publication with its iCite citation
// metrics.
type Publication struct {
	PMID int64

	// RCR is the Relative Citation Ratio, a field-normalized
	// citation impact metric. NaN when iCite has not computed one
	// (recent papers).
	RCR float64

	// CitationPercentile is the publication's NIH citation
	// percentile, 0-100. NaN when unavailable.
	CitationPercentile float64
}

// ClinicalStudy links a grant to a registered clinical trial.
type ClinicalStudy struct {
	ProjectNum string

	// NCTID is the ClinicalTrials.gov registry number.
	NCTID string

	Status string
}

// Patent links a grant to a patent that cites its support.
type Patent struct {
	ProjectNum string
	PatentID   string
}

// ProjectIO is the precomputed per-grant rollup of lifetime cost and
// research outputs. TotalCost must equal the sum of FYCost over the
// grant's Project rows; analysis.CheckTotals verifies that.
type ProjectIO struct {
	ProjectNum string
	TotalCost  float64
	NPubs      int
	NPatents   int
}
