// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exporter

import (
	"database/sql"
	"fmt"
	"math"
	"os"
	"time"

	_ "modernc.org/sqlite" // pure Go sqlite driver
)

// Load reads all EXPORTER tables from the SQLite database at path and
// returns a fully materialized Store.
//
// Loading is all-or-nothing: a missing file, a missing table or
// column, or a value that does not scan as its declared type aborts
// the load with a *LoadError naming the offending table. There is no
// partial or degraded mode.
func Load(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{"database", err}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &LoadError{"database", err}
	}
	defer db.Close()

	s := new(Store)
	for _, t := range []struct {
		name string
		load func(*sql.DB) error
	}{
		{"projects", s.loadProjects},
		{"org_info", s.loadOrgInfo},
		{"project_orgs", s.loadProjectOrgs},
		{"project_pis", s.loadProjectPIs},
		{"publinks", s.loadPubLinks},
		{"publications", s.loadPublications},
		{"clinical_studies", s.loadClinicalStudies},
		{"patents", s.loadPatents},
		{"project_io", s.loadProjectIO},
	} {
		if err := t.load(db); err != nil {
			return nil, &LoadError{t.name, err}
		}
	}
	return s, nil
}

func (s *Store) loadProjects(db *sql.DB) error {
	rows, err := db.Query(`SELECT project_num, application_id, institute, activity,
		fiscal_year, fy_cost, project_start, project_end FROM projects`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var p Project
		var cost sql.NullFloat64
		var start, end sql.NullString
		err := rows.Scan(&p.ProjectNum, &p.ApplicationID, &p.Institute,
			&p.Activity, &p.FiscalYear, &cost, &start, &end)
		if err != nil {
			return err
		}
		p.FYCost = nullFloat(cost)
		if p.ProjectStart, err = nullDate(start); err != nil {
			return err
		}
		if p.ProjectEnd, err = nullDate(end); err != nil {
			return err
		}
		s.Projects = append(s.Projects, p)
	}
	return rows.Err()
}

func (s *Store) loadOrgInfo(db *sql.DB) error {
	rows, err := db.Query(`SELECT org_duns, org_name, org_state FROM org_info`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var o OrgInfo
		var name, state sql.NullString
		if err := rows.Scan(&o.OrgDUNS, &name, &state); err != nil {
			return err
		}
		o.OrgName, o.OrgState = name.String, state.String
		s.OrgInfo = append(s.OrgInfo, o)
	}
	return rows.Err()
}

func (s *Store) loadProjectOrgs(db *sql.DB) error {
	rows, err := db.Query(`SELECT application_id, org_duns FROM project_orgs`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var po ProjectOrg
		if err := rows.Scan(&po.ApplicationID, &po.OrgDUNS); err != nil {
			return err
		}
		s.ProjectOrgs = append(s.ProjectOrgs, po)
	}
	return rows.Err()
}

func (s *Store) loadProjectPIs(db *sql.DB) error {
	rows, err := db.Query(`SELECT project_num, pi_id FROM project_pis`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var pp ProjectPI
		var id sql.NullInt64
		if err := rows.Scan(&pp.ProjectNum, &id); err != nil {
			return err
		}
		pp.PIID = id.Int64
		s.ProjectPIs = append(s.ProjectPIs, pp)
	}
	return rows.Err()
}

func (s *Store) loadPubLinks(db *sql.DB) error {
	rows, err := db.Query(`SELECT project_num, pmid FROM publinks`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var pl PubLink
		if err := rows.Scan(&pl.ProjectNum, &pl.PMID); err != nil {
			return err
		}
		s.PubLinks = append(s.PubLinks, pl)
	}
	return rows.Err()
}

func (s *Store) loadPublications(db *sql.DB) error {
	rows, err := db.Query(`SELECT pmid, rcr, citation_percentile FROM publications`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var p Publication
		var rcr, pctl sql.NullFloat64
		if err := rows.Scan(&p.PMID, &rcr, &pctl); err != nil {
			return err
		}
		p.RCR = nullFloat(rcr)
		p.CitationPercentile = nullFloat(pctl)
		s.Publications = append(s.Publications, p)
	}
	return rows.Err()
}

func (s *Store) loadClinicalStudies(db *sql.DB) error {
	rows, err := db.Query(`SELECT project_num, nct_id, status FROM clinical_studies`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cs ClinicalStudy
		var status sql.NullString
		if err := rows.Scan(&cs.ProjectNum, &cs.NCTID, &status); err != nil {
			return err
		}
		cs.Status = status.String
		s.ClinicalStudies = append(s.ClinicalStudies, cs)
	}
	return rows.Err()
}

func (s *Store) loadPatents(db *sql.DB) error {
	rows, err := db.Query(`SELECT project_num, patent_id FROM patents`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var p Patent
		if err := rows.Scan(&p.ProjectNum, &p.PatentID); err != nil {
			return err
		}
		s.Patents = append(s.Patents, p)
	}
	return rows.Err()
}

func (s *Store) loadProjectIO(db *sql.DB) error {
	rows, err := db.Query(`SELECT project_num, total_cost, n_pubs, n_patents FROM project_io`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var io ProjectIO
		var cost sql.NullFloat64
		if err := rows.Scan(&io.ProjectNum, &cost, &io.NPubs, &io.NPatents); err != nil {
			return err
		}
		io.TotalCost = nullFloat(cost)
		s.ProjectIO = append(s.ProjectIO, io)
	}
	return rows.Err()
}

// nullFloat maps a SQL NULL to NaN, the Store's missing-value marker
// for numeric columns.
func nullFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// dateLayout is how the cleaned release stores dates.
const dateLayout = "2006-01-02"

func nullDate(v sql.NullString) (time.Time, error) {
	if !v.Valid || v.String == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, v.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: %w", v.String, err)
	}
	return d, nil
}
