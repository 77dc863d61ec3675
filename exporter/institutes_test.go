// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exporter

import (
	"sort"
	"testing"
)

func TestInstituteName(t *testing.T) {
	name, ok := InstituteName("GM")
	if !ok || name != "National Institute of General Medical Sciences" {
		t.Errorf("InstituteName(GM) = %q, %v", name, ok)
	}
	if _, ok := InstituteName("ZZ"); ok {
		t.Error("InstituteName(ZZ) reported a match")
	}
}

func TestInstitutesOrdered(t *testing.T) {
	if !sort.SliceIsSorted(Institutes, func(i, j int) bool {
		return Institutes[i].Code < Institutes[j].Code
	}) {
		t.Error("Institutes not in code order")
	}
	seen := make(map[string]bool)
	for _, inst := range Institutes {
		if seen[inst.Code] {
			t.Errorf("duplicate institute code %s", inst.Code)
		}
		seen[inst.Code] = true
	}
}
