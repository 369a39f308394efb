//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package netw

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/vec"
	"github.com/ksreyes/twopoints/internal/vv"
)

func statsat(coords ...[2]float64) []str.StatsRecord {
	nats := []string{"English", "French", "English", "Russian"}
	ss := make([]str.StatsRecord, len(coords))
	for i, c := range coords {
		ss[i] = str.StatsRecord{Title: "Title", Query: "Somebody", Nationality: nats[i%len(nats)], X: c[0], Y: c[1]}
	}
	return ss
}

func TestPairwiseDistances(t *testing.T) {
	assert.Equal(t, []Pair{{0, 1}, {0, 2}, {1, 2}}, Pairs(3))
	assert.Empty(t, Pairs(1))

	dd := PairwiseDistances([][2]float64{{0, 0}, {3, 4}, {0, 8}})
	require.Len(t, dd, 3)
	assert.InDelta(t, 5, dd[0], 1e-12)
	assert.InDelta(t, 8, dd[1], 1e-12)
	assert.InDelta(t, 5, dd[2], 1e-12)
}

func TestBuild(t *testing.T) {
	// distances: (0,1)=1 (0,2)=20 (0,3)=10 (1,2)=19 (1,3)=9 (2,3)=10
	stats := statsat([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{20, 0}, [2]float64{10, 0})
	net := Build(stats, vv.EDGETHRESHOLD, vv.EDGEMAXWEIGHT)

	require.Len(t, net.Nodes, 4)
	for i, n := range net.Nodes {
		assert.Equal(t, i, n.ID)
	}
	assert.Equal(t, "French", net.Nodes[1].Nationality)

	// similarities: 19, 0, 10, 1, 11, 10; keep >= 8.5
	want := []str.NetLink{
		{Source: 0, Target: 1, Value: 5},
		{Source: 0, Target: 3, Value: 0},
		{Source: 1, Target: 3, Value: 5.0 / 9},
		{Source: 2, Target: 3, Value: 0},
	}
	require.Len(t, net.Links, len(want))
	for i := range want {
		assert.Equal(t, want[i].Source, net.Links[i].Source)
		assert.Equal(t, want[i].Target, net.Links[i].Target)
		assert.InDelta(t, want[i].Value, net.Links[i].Value, 1e-9)
	}
}

func TestBuildWeightsInRange(t *testing.T) {
	stats := statsat([2]float64{0, 0}, [2]float64{3, 7}, [2]float64{-12, 4}, [2]float64{25, -2})
	for _, th := range []float64{0, 5, vv.EDGETHRESHOLD, 30} {
		net := Build(stats, th, vv.EDGEMAXWEIGHT)
		for _, l := range net.Links {
			assert.GreaterOrEqual(t, l.Value, 0.0)
			assert.LessOrEqual(t, l.Value, vv.EDGEMAXWEIGHT)
			assert.Less(t, l.Source, l.Target)
		}
	}
}

func TestBuildEdges(t *testing.T) {
	tests := []struct {
		name  string
		stats []str.StatsRecord
		links []str.NetLink
	}{
		{"no records", nil, []str.NetLink{}},
		{"one record", statsat([2]float64{1, 1}), []str.NetLink{}},
		{"one pair is never similar enough", statsat([2]float64{0, 0}, [2]float64{50, 0}), []str.NetLink{}},
		{
			// similarities 10, 10, 0: equal survivors all get the top weight
			"equal similarities",
			statsat([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{20, 0}),
			[]str.NetLink{{Source: 0, Target: 1, Value: 5}, {Source: 1, Target: 2, Value: 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := Build(tt.stats, vv.EDGETHRESHOLD, vv.EDGEMAXWEIGHT)
			assert.Len(t, net.Nodes, len(tt.stats))
			assert.Equal(t, tt.links, net.Links)
		})
	}
}

func TestRenderHTML(t *testing.T) {
	stats := statsat([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{20, 0}, [2]float64{10, 0})
	stats[2].Title = "Les Misérables"
	net := Build(stats, vv.EDGETHRESHOLD, vv.EDGEMAXWEIGHT)
	coords := [][2]float64{{0, 0}, {1, 0}, {20, 0}, {10, 0}}

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(net, coords, &buf))
	page := buf.String()
	assert.Contains(t, page, "echarts")
	assert.Contains(t, page, "Les Misérables")
	assert.Contains(t, page, `"categories"`)
	assert.Contains(t, page, "Russian")

	assert.Error(t, RenderHTML(net, coords[:2], &buf))
}

func TestBuildOnClusters(t *testing.T) {
	// four tight clusters of five at the corners of a square, on the scale go-tsne leaves them
	corners := [][2]float64{{-1000, -1000}, {1000, -1000}, {1000, 1000}, {-1000, 1000}}
	jitter := [][2]float64{{0, 0}, {10, 0}, {0, 10}, {-10, 0}, {0, -10}}
	var raw [][2]float64
	for _, c := range corners {
		for _, j := range jitter {
			raw = append(raw, [2]float64{c[0] + j[0], c[1] + j[1]})
		}
	}
	pairs := len(Pairs(len(raw)))

	tests := []struct {
		name   string
		coords [][2]float64
		links  int
	}{
		{"unscaled keeps nearly everything", raw, 174},
		{"rescaled keeps each cluster and nothing else", vec.Rescale(raw, vv.EMBEDSPAN), 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := Build(statsat(tt.coords...), vv.EDGETHRESHOLD, vv.EDGEMAXWEIGHT)
			assert.Len(t, net.Links, tt.links)
		})
	}

	net := Build(statsat(vec.Rescale(raw, vv.EMBEDSPAN)...), vv.EDGETHRESHOLD, vv.EDGEMAXWEIGHT)
	assert.Less(t, len(net.Links), pairs/2)
	for _, l := range net.Links {
		assert.Equal(t, l.Source/len(jitter), l.Target/len(jitter))
	}
}
