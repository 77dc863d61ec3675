// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

func plotFunding(tab table.Grouping) *gg.Plot {
	p := gg.NewPlot(tab)
	p.SortBy("fiscal year")
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerLines{
		X:     "fiscal year",
		Y:     "dollars (millions)",
		Color: "org name",
	})
	return p
}

func plotPIs(tab table.Grouping) *gg.Plot {
	p := gg.NewPlot(tab)
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerPoints{X: "rank", Y: "dollars (millions)"})
	p.Add(gg.LayerTooltips{X: "rank", Y: "dollars (millions)", Label: "pi"})
	return p
}

func plotProductivity(tab table.Grouping) *gg.Plot {
	// A grant whose rollup has no reported cost cannot be placed
	// on the X axis; drop it.
	tab = table.Filter(tab, func(cost float64) bool {
		return !math.IsNaN(cost)
	}, "total cost (millions)")

	p := gg.NewPlot(tab)
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerPoints{X: "total cost (millions)", Y: "publications"})
	p.Add(gg.LayerTooltips{X: "total cost (millions)", Y: "publications", Label: "project"})
	return p
}

func plotDuration(tab table.Grouping) *gg.Plot {
	p := gg.NewPlot(tab)
	p.Stat(ggstat.ECDF{X: "duration (years)"})
	p.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: "duration (years)", Y: "cumulative density"},
	})
	return p
}

func plotDeciles(tab table.Grouping) *gg.Plot {
	p := gg.NewPlot(tab)
	p.SortBy("cost decile")
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerLines{
		X:     "cost decile",
		Y:     "publications",
		Color: "institute",
	})
	return p
}

func plotRCR(tab table.Grouping) *gg.Plot {
	p := gg.NewPlot(tab)
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerPoints{X: "publications", Y: "mean rcr"})
	p.Add(gg.LayerTooltips{X: "publications", Y: "mean rcr", Label: "institute"})
	return p
}
