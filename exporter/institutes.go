// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exporter

// Institute is an NIH institute or center that funds grants.
type Institute struct {
	// Code is the two-letter funding code embedded in grant
	// numbers, e.g. the "GM" in "5R01GM038784-21".
	Code string

	Name string
}

// Institutes lists the NIH institutes and centers appearing in the
// EXPORTER release, in code order.
var Institutes = []Institute{
	{"AA", "National Institute on Alcohol Abuse and Alcoholism"},
	{"AG", "National Institute on Aging"},
	{"AI", "National Institute of Allergy and Infectious Diseases"},
	{"AR", "National Institute of Arthritis and Musculoskeletal and Skin Diseases"},
	{"AT", "National Center for Complementary and Integrative Health"},
	{"CA", "National Cancer Institute"},
	{"DA", "National Institute on Drug Abuse"},
	{"DC", "National Institute on Deafness and Other Communication Disorders"},
	{"DE", "National Institute of Dental and Craniofacial Research"},
	{"DK", "National Institute of Diabetes and Digestive and Kidney Diseases"},
	{"EB", "National Institute of Biomedical Imaging and Bioengineering"},
	{"ES", "National Institute of Environmental Health Sciences"},
	{"EY", "National Eye Institute"},
	{"GM", "National Institute of General Medical Sciences"},
	{"HD", "Eunice Kennedy Shriver National Institute of Child Health and Human Development"},
	{"HG", "National Human Genome Research Institute"},
	{"HL", "National Heart, Lung, and Blood Institute"},
	{"LM", "National Library of Medicine"},
	{"MD", "National Institute on Minority Health and Health Disparities"},
	{"MH", "National Institute of Mental Health"},
	{"NR", "National Institute of Nursing Research"},
	{"NS", "National Institute of Neurological Disorders and Stroke"},
	{"RR", "National Center for Research Resources"},
	{"TR", "National Center for Advancing Translational Sciences"},
	{"TW", "Fogarty International Center"},
}

// InstituteName returns the full name for an institute code. The
// second result reports whether the code is known.
func InstituteName(code string) (string, bool) {
	for _, inst := range Institutes {
		if inst.Code == code {
			return inst.Name, true
		}
	}
	return "", false
}
