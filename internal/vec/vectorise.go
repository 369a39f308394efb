//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"sort"

	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/ksreyes/twopoints/internal/lnch"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

//
// BAGS OF WORDS
//

// Vectorise - a documents x terms count matrix with unit-length rows; only terms found in at least minDF documents survive
func Vectorise(texts []string, stops []string, minDF int) (*mat.Dense, []string, error) {
	const (
		FAIL1 = "Vectorise() could not count terms: %w"
		MSG1  = "Vectorise(): %d documents; %d of %d terms appear in at least %d documents"
		MSG2  = "Vectorise(): no terms survived; every document is a zero vector"
	)

	n := len(texts)
	if n == 0 {
		return nil, nil, nil
	}

	if minDF > n {
		minDF = n
	}
	if minDF < 1 {
		minDF = 1
	}

	vectoriser := nlp.NewCountVectoriser(stops...)
	vectoriser.Fit(texts...)

	// sparse.NewDOK() will not build a matrix with zero rows
	if len(vectoriser.Vocabulary) == 0 {
		Msg.WARN(MSG2)
		return mat.NewDense(n, 1, nil), nil, nil
	}

	// rows = terms; columns = documents
	counts, err := vectoriser.Transform(texts...)
	if err != nil {
		return nil, nil, fmt.Errorf(FAIL1, err)
	}

	df := make([]int, len(vectoriser.Vocabulary))
	eachnonzero(counts, func(t, d int, v float64) {
		df[t]++
	})

	var terms []string
	for w, t := range vectoriser.Vocabulary {
		if df[t] >= minDF {
			terms = append(terms, w)
		}
	}
	sort.Strings(terms)

	Msg.PEEK(fmt.Sprintf(MSG1, n, len(terms), len(vectoriser.Vocabulary), minDF))

	if len(terms) == 0 {
		Msg.WARN(MSG2)
		return mat.NewDense(n, 1, nil), nil, nil
	}

	col := make(map[int]int, len(terms))
	for i, w := range terms {
		col[vectoriser.Vocabulary[w]] = i
	}

	m := mat.NewDense(n, len(terms), nil)
	eachnonzero(counts, func(t, d int, v float64) {
		if c, ok := col[t]; ok {
			m.Set(d, c, v)
		}
	})

	for i := 0; i < n; i++ {
		row := m.RawRowView(i)
		if l := floats.Norm(row, 2); l > 0 {
			floats.Scale(1/l, row)
		}
	}
	return m, terms, nil
}

// eachnonzero - visit the non-zero cells of m; sparse matrices visit only what they store
func eachnonzero(m mat.Matrix, fn func(i, j int, v float64)) {
	if nz, ok := m.(mat.NonZeroDoer); ok {
		nz.DoNonZero(fn)
		return
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				fn(i, j, v)
			}
		}
	}
}
