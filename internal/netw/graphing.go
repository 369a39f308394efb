//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package netw

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ksreyes/twopoints/internal/gen"
	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/vv"
)

//
// GRAPHING
//

// see also: https://echarts.apache.org/en/option.html#series-graph

// RenderHTML - write a force directed page of the network; nodes start at their embedded coordinates
func RenderHTML(net str.Network, coords [][2]float64, w io.Writer) error {
	const (
		FAIL1 = "a network of %d nodes needs %d coordinates, not %d"
	)

	if len(coords) != len(net.Nodes) {
		return fmt.Errorf(FAIL1, len(net.Nodes), len(net.Nodes), len(coords))
	}

	g := generategraph(net, coords)

	p := components.NewPage()
	p.PageTitle = vv.MYNAME
	p.AddCharts(g)
	return p.Render(w)
}

func generategraph(net str.Network, coords [][2]float64) *charts.Graph {
	const (
		SYMSIZE       = 12
		PRECISON      = 4
		REPULSION     = 120
		GRAVITY       = .1
		EDGELEN       = 60
		SERIESNAME    = "library"
		LAYOUTTYPE    = "force"
		LABELPOSITON  = "right"
		LINECURVINESS = 0
		LINETYPE      = "solid"
		LINEOPACITY   = 0.3
		SPREAD        = 40 // coordinates span vv.EMBEDSPAN: stretch them over the page
	)

	round := func(val float64) float32 {
		ratio := math.Pow(10, float64(PRECISON))
		return float32(math.Round(val*ratio) / ratio)
	}

	// one category per nationality, in order of appearance
	catindex := make(map[string]int)
	var cats []*opts.GraphCategory
	for _, n := range net.Nodes {
		if _, ok := catindex[n.Nationality]; !ok {
			catindex[n.Nationality] = len(cats)
			cats = append(cats, &opts.GraphCategory{Name: n.Nationality})
		}
	}

	gnn := make([]opts.GraphNode, len(net.Nodes))
	for i, n := range net.Nodes {
		gnn[i] = opts.GraphNode{
			Name:       fmt.Sprintf("%d. %s", n.ID, gen.RuneLimit(n.Title, 40)),
			X:          round(coords[i][0] * SPREAD),
			Y:          round(coords[i][1] * SPREAD),
			Category:   catindex[n.Nationality],
			SymbolSize: SYMSIZE,
			Tooltip:    &opts.Tooltip{Show: true, Formatter: fmt.Sprintf("%s<br>%s", n.Title, n.Query)},
		}
	}

	gll := make([]opts.GraphLink, len(net.Links))
	for i, l := range net.Links {
		gll[i] = opts.GraphLink{Source: gnn[l.Source].Name, Target: gnn[l.Target].Name, Value: round(l.Value)}
	}

	graph := newlibgraph(cats)
	graph.AddSeries(SERIESNAME, gnn, gll,
		charts.WithLabelOpts(
			opts.Label{
				Show:     false,
				Position: LABELPOSITON,
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Curveness: LINECURVINESS,
				Type:      LINETYPE,
				Opacity:   LINEOPACITY,
			}),
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout: LAYOUTTYPE,
				Force: &opts.GraphForce{
					Repulsion:  REPULSION,
					Gravity:    GRAVITY,
					EdgeLength: EDGELEN,
				},
				Roam:               true,
				Draggable:          true,
				FocusNodeAdjacency: true,
				Categories:         cats,
			},
		),
	)
	return graph
}

// newlibgraph - return a pre-formatted charts.Graph
func newlibgraph(cats []*opts.GraphCategory) *charts.Graph {
	const (
		FONTSTYLE = "normal"
		LEFTALIGN = "20"
		BOTTALIGN = "3%"
		SAVETYPE  = "png"
		SAVESTR   = "Save to file..."
	)

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}

	tst := opts.TextStyle{
		FontStyle: FONTSTYLE,
		FontSize:  16,
		Padding:   "15",
	}

	tit := opts.Title{
		Title:      vv.MYNAME,
		TitleStyle: &tst,
		Bottom:     BOTTALIGN,
		Left:       LEFTALIGN,
	}

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  vv.SHORTNAME,
		Title: SAVESTR,
	}

	tbo := opts.Toolbox{
		Show:    true,
		Orient:  "vertical",
		Left:    LEFTALIGN,
		Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs},
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(tit),
		charts.WithToolboxOpts(tbo),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true, Data: names}),
	)
	return graph
}
