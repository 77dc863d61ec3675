// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exporter provides typed access to the NIH EXPORTER grant
// tables.
//
// EXPORTER is NIH's public release of grant funding records. This
// package exposes a cleaned, pre-joined form of that release as nine
// immutable in-memory tables: yearly project funding rows, grantee
// organizations, the links tying projects to organizations, principal
// investigators, publications, clinical studies and patents, and a
// precomputed per-project rollup of lifetime cost and output counts.
//
// A Store is built once by Load and never mutated afterwards. Every
// analysis consumes it read-only, so independent analyses may run
// concurrently over the same Store without coordination.
package exporter

// Store holds all EXPORTER tables fully materialized in memory.
//
// The slices are reference data: they are populated by Load and must
// not be modified afterwards. Derived tables are always fresh values.
type Store struct {
	Projects        []Project
	OrgInfo         []OrgInfo
	ProjectOrgs     []ProjectOrg
	ProjectPIs      []ProjectPI
	PubLinks        []PubLink
	Publications    []Publication
	ClinicalStudies []ClinicalStudy
	Patents         []Patent
	ProjectIO       []ProjectIO
}

// A LoadError reports that a table could not be loaded. Loading is
// all-or-nothing: any LoadError means the whole Store is unusable.
type LoadError struct {
	// Table is the name of the table that failed to load.
	Table string

	Err error
}

func (e *LoadError) Error() string {
	return "load " + e.Table + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
