//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package netw

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ksreyes/twopoints/internal/str"
)

//
// SIMILARITY NETWORK
//

// Pair - the indices of two points, I < J
type Pair struct {
	I int
	J int
}

// Pairs - every (i, j) with i < j, in lexicographic order
func Pairs(n int) []Pair {
	var pp []Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pp = append(pp, Pair{i, j})
		}
	}
	return pp
}

// PairwiseDistances - the euclidean distance for each of Pairs(len(coords)), in the same order
func PairwiseDistances(coords [][2]float64) []float64 {
	pp := Pairs(len(coords))
	dd := make([]float64, len(pp))
	for k, p := range pp {
		dd[k] = floats.Distance(coords[p.I][:], coords[p.J][:], 2)
	}
	return dd
}

// Build - one node per record; a link wherever max distance - distance reaches threshold, weights rescaled to [0, maxweight]
func Build(stats []str.StatsRecord, threshold float64, maxweight float64) str.Network {
	net := str.Network{
		Nodes: make([]str.NetNode, len(stats)),
		Links: []str.NetLink{},
	}

	coords := make([][2]float64, len(stats))
	for i, s := range stats {
		net.Nodes[i] = str.NetNode{ID: i, Title: s.Title, Query: s.Query, Nationality: s.Nationality}
		coords[i] = [2]float64{s.X, s.Y}
	}

	dd := PairwiseDistances(coords)
	if len(dd) == 0 {
		return net
	}

	pp := Pairs(len(coords))
	maxd := floats.Max(dd)

	var sims []float64
	for k, d := range dd {
		sim := maxd - d
		if sim < threshold {
			continue
		}
		net.Links = append(net.Links, str.NetLink{Source: pp[k].I, Target: pp[k].J})
		sims = append(sims, sim)
	}

	if len(sims) == 0 {
		return net
	}

	lo, hi := floats.Min(sims), floats.Max(sims)
	for k := range net.Links {
		if hi == lo {
			net.Links[k].Value = maxweight
			continue
		}
		net.Links[k].Value = (sims[k] - lo) * (maxweight / (hi - lo))
	}
	return net
}
