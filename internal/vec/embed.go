//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/danaugrs/go-tsne/tsne"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/vv"
)

//
// t-SNE
//

// Embed - project the rows of m into the plane; the same seed and data yield the same coordinates,
// centred on the origin and rescaled so that the two farthest points lie vv.EMBEDSPAN apart
func Embed(m *mat.Dense, cfg str.CurrentConfiguration) [][2]float64 {
	const (
		MSG1 = "Embed(): %d points; perplexity %.2f; %d iterations"
		MSG2 = "Embed(): iteration %d; KL divergence %.5f"
		MSG3 = "Embed(): fewer than two points; nothing to project"
	)

	if m == nil {
		return nil
	}

	n, _ := m.Dims()
	coords := make([][2]float64, n)
	if n < 2 {
		Msg.PEEK(MSG3)
		return coords
	}

	// go-tsne draws its initial solution from the global source. rand.Seed is a no-op once
	// go.mod says go 1.24 or later (GODEBUG randseednop): keep the directive below that.
	rand.Seed(cfg.RandomSeed)

	perp := Perplexity(cfg.TSNEPerplex, n)
	Msg.PEEK(fmt.Sprintf(MSG1, n, perp, cfg.TSNEIter))

	report := func(iter int, divergence float64, embedding mat.Matrix) bool {
		if iter%vv.EMBEDREPORTN == 0 {
			Msg.TMI(fmt.Sprintf(MSG2, iter, divergence))
		}
		return false
	}

	t := tsne.NewTSNE(vv.TSNEDIMS, perp, cfg.TSNELearn, cfg.TSNEIter, vv.TSNEVERBOSE)
	y := t.EmbedData(m, report)

	for i := 0; i < n; i++ {
		coords[i] = [2]float64{y.At(i, 0), y.At(i, 1)}
	}
	return Rescale(coords, vv.EMBEDSPAN)
}

// Rescale - centre the points on the origin and stretch them until the farthest pair is span apart
func Rescale(coords [][2]float64, span float64) [][2]float64 {
	n := len(coords)
	out := make([][2]float64, n)
	if n == 0 {
		return out
	}

	var cx, cy, maxd float64
	for i := 0; i < n; i++ {
		cx += coords[i][0]
		cy += coords[i][1]
		for j := i + 1; j < n; j++ {
			maxd = math.Max(maxd, floats.Distance(coords[i][:], coords[j][:], 2))
		}
	}
	cx /= float64(n)
	cy /= float64(n)

	// everything on one spot: there is no scale to recover
	if maxd == 0 || math.IsNaN(maxd) || math.IsInf(maxd, 0) {
		return out
	}

	k := span / maxd
	for i, c := range coords {
		out[i] = [2]float64{(c[0] - cx) * k, (c[1] - cy) * k}
	}
	return out
}

// Perplexity - the configured perplexity, held below the number of points
func Perplexity(want float64, n int) float64 {
	return math.Min(want, math.Max(1, float64(n-1)/3))
}
