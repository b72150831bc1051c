// Copyright 2026 the dicelab authors
// This file is part of dicelab, a tabletop-dice probability toolkit.
//
// dicelab is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dicelab is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with dicelab. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/dicelab/dicelab/dice"
)

// HTML references for the rendered pages.
const pmfRef = "pmf"
const atLeastRef = "at-least"
const atMostRef = "at-most"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>dicelab: Dice Probability Charts</title>
  </head>
  <body>
    <h1>dicelab: Dice Probability Charts</h1>
    <ul>
    <li> <h3> <a href="/` + pmfRef + `"> Probability of Each Outcome </a> </h3> </li>
    <li> <h3> <a href="/` + atLeastRef + `"> Probability of Rolling At Least </a> </h3> </li>
    <li> <h3> <a href="/` + atMostRef + `"> Probability of Rolling At Most </a> </h3> </li>
    </ul>
</body>
</html>
`

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// convertSeriesData converts sorted distribution points to chart points.
func convertSeriesData(points []dice.Point) []opts.LineData {
	items := []opts.LineData{}
	for _, pt := range points {
		items = append(items, opts.LineData{Value: [2]float64{float64(pt.X), pt.Y}})
	}
	return items
}

// newDistributionChart creates a line chart with one series per die.
func newDistributionChart(title string, data []SeriesData) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	for _, series := range data {
		chart.AddSeries(series.Label, convertSeriesData(series.Points))
	}
	return chart
}

// renderPMF renders the probability of each outcome.
func renderPMF(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	chart := newDistributionChart("Probability of Each Outcome", view.normal)
	_ = chart.Render(w)
}

// renderAtLeast renders the reverse-cumulative probabilities.
func renderAtLeast(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	chart := newDistributionChart("Probability of Rolling At Least", view.atLeast)
	_ = chart.Render(w)
}

// renderAtMost renders the cumulative probabilities.
func renderAtMost(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	chart := newDistributionChart("Probability of Rolling At Most", view.atMost)
	_ = chart.Render(w)
}

// newServeMux wires the chart pages into a request multiplexer.
func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", renderMain)
	mux.HandleFunc("/"+pmfRef, renderPMF)
	mux.HandleFunc("/"+atLeastRef, renderAtLeast)
	mux.HandleFunc("/"+atMostRef, renderAtMost)
	return mux
}

// Update replaces the rendered dice while the server keeps running; the
// next page load shows the new curves.
func Update(ds []dice.Die) error {
	return setViewState(ds)
}

// FireUpWeb builds the view state for the given dice and serves the charts
// with a local web server.
func FireUpWeb(ds []dice.Die, addr string) error {
	if err := setViewState(ds); err != nil {
		return err
	}
	return http.ListenAndServe(":"+addr, newServeMux())
}
