// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exporter

import (
	"database/sql"
	"errors"
	"math"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

var fixtureSchema = []string{
	`CREATE TABLE projects (
		project_num TEXT, application_id INTEGER, institute TEXT, activity TEXT,
		fiscal_year INTEGER, fy_cost REAL, project_start TEXT, project_end TEXT)`,
	`CREATE TABLE org_info (org_duns TEXT, org_name TEXT, org_state TEXT)`,
	`CREATE TABLE project_orgs (application_id INTEGER, org_duns TEXT)`,
	`CREATE TABLE project_pis (project_num TEXT, pi_id INTEGER)`,
	`CREATE TABLE publinks (project_num TEXT, pmid INTEGER)`,
	`CREATE TABLE publications (pmid INTEGER, rcr REAL, citation_percentile REAL)`,
	`CREATE TABLE clinical_studies (project_num TEXT, nct_id TEXT, status TEXT)`,
	`CREATE TABLE patents (project_num TEXT, patent_id TEXT)`,
	`CREATE TABLE project_io (project_num TEXT, total_cost REAL, n_pubs INTEGER, n_patents INTEGER)`,
}

// makeFixture writes a small but fully populated database and returns
// its path.
func makeFixture(t *testing.T, stmts []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nihexporter.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("%s: %v", stmt, err)
		}
	}
	return path
}

func TestLoad(t *testing.T) {
	stmts := append([]string{}, fixtureSchema...)
	stmts = append(stmts,
		`INSERT INTO projects VALUES
			('5R01GM000001-01', 1, 'GM', 'R01', 2010, 250000, '2010-01-01', '2011-12-31'),
			('5R01GM000001-02', 2, 'GM', 'R01', 2011, NULL, NULL, NULL)`,
		`INSERT INTO org_info VALUES ('001', 'Acme University', 'CO')`,
		`INSERT INTO project_orgs VALUES (1, '001'), (2, '001')`,
		`INSERT INTO project_pis VALUES ('5R01GM000001-01', 77), ('5R01GM000001-01', NULL)`,
		`INSERT INTO publinks VALUES ('5R01GM000001-01', 101)`,
		`INSERT INTO publications VALUES (101, 1.5, 62.0), (102, NULL, NULL)`,
		`INSERT INTO clinical_studies VALUES ('5R01GM000001-01', 'NCT00000001', 'Completed')`,
		`INSERT INTO patents VALUES ('5R01GM000001-01', 'US7654321')`,
		`INSERT INTO project_io VALUES ('5R01GM000001-01', 250000, 1, 1)`,
	)

	s, err := Load(makeFixture(t, stmts))
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Projects) != 2 {
		t.Fatalf("loaded %d projects, want 2", len(s.Projects))
	}
	p := s.Projects[0]
	want := Project{
		ProjectNum:    "5R01GM000001-01",
		ApplicationID: 1,
		Institute:     "GM",
		Activity:      "R01",
		FiscalYear:    2010,
		FYCost:        250000,
		ProjectStart:  time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		ProjectEnd:    time.Date(2011, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Projects[0] = %+v, want %+v", p, want)
	}

	// NULLs map to the package's missing-value markers.
	p = s.Projects[1]
	if !math.IsNaN(p.FYCost) || !p.ProjectStart.IsZero() || !p.ProjectEnd.IsZero() {
		t.Errorf("Projects[1] missing values = %+v, want NaN cost and zero dates", p)
	}
	if got := s.ProjectPIs[1].PIID; got != 0 {
		t.Errorf("NULL pi_id loaded as %d, want 0", got)
	}
	if got := s.Publications[1]; !math.IsNaN(got.RCR) || !math.IsNaN(got.CitationPercentile) {
		t.Errorf("NULL metrics loaded as %+v, want NaNs", got)
	}

	if len(s.OrgInfo) != 1 || s.OrgInfo[0].OrgName != "Acme University" {
		t.Errorf("OrgInfo = %+v", s.OrgInfo)
	}
	if len(s.ProjectOrgs) != 2 || len(s.PubLinks) != 1 || len(s.ClinicalStudies) != 1 || len(s.Patents) != 1 {
		t.Errorf("link tables = %d orgs, %d publinks, %d studies, %d patents",
			len(s.ProjectOrgs), len(s.PubLinks), len(s.ClinicalStudies), len(s.Patents))
	}
	if len(s.ProjectIO) != 1 || s.ProjectIO[0].TotalCost != 250000 {
		t.Errorf("ProjectIO = %+v", s.ProjectIO)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.db"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Load = %v, want *LoadError", err)
	}
}

func TestLoadMissingTable(t *testing.T) {
	// Leave out the projects table.
	_, err := Load(makeFixture(t, fixtureSchema[1:]))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Load = %v, want *LoadError", err)
	}
	if le.Table != "projects" {
		t.Errorf("failed table = %q, want %q", le.Table, "projects")
	}
}

func TestLoadMissingColumn(t *testing.T) {
	stmts := append([]string{}, fixtureSchema...)
	stmts[1] = `CREATE TABLE org_info (org_duns TEXT)` // org_name, org_state gone
	_, err := Load(makeFixture(t, stmts))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Load = %v, want *LoadError", err)
	}
	if le.Table != "org_info" {
		t.Errorf("failed table = %q, want %q", le.Table, "org_info")
	}
}

func TestLoadBadDate(t *testing.T) {
	stmts := append([]string{}, fixtureSchema...)
	stmts = append(stmts,
		`INSERT INTO projects VALUES ('P1', 1, 'GM', 'R01', 2010, 0, 'not-a-date', NULL)`)
	_, err := Load(makeFixture(t, stmts))
	var le *LoadError
	if !errors.As(err, &le) || le.Table != "projects" {
		t.Fatalf("Load = %v, want *LoadError for projects", err)
	}
}
