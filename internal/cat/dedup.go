//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cat

import (
	"fmt"
	"math"
	"regexp"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/nlp/measures/pairwise"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/ksreyes/twopoints/internal/gen"
	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/vec"
	"github.com/ksreyes/twopoints/internal/vv"
)

//
// DUPLICATES AND EXCLUSIONS
//

var volume = regexp.MustCompile(vv.VOLUMEMARKERS)

// counttitles - a terms x titles count matrix; nil when no title has a word worth counting
var counttitles = func(titles []string) (mat.Matrix, error) {
	vectoriser := nlp.NewCountVectoriser(vec.EnglishStops...)
	vectoriser.Fit(titles...)
	if len(vectoriser.Vocabulary) == 0 {
		return nil, nil
	}
	return vectoriser.Transform(titles...)
}

// DedupByID - keep the first occurrence of each gutenberg id
func DedupByID(recs []str.CatalogRecord) []str.CatalogRecord {
	return gen.FirstByKey(recs, func(r str.CatalogRecord) int { return r.GutID })
}

// DedupByTitle - drop any title too close to a title that precedes it; multi-volume works are never dropped
func DedupByTitle(recs []str.CatalogRecord, threshold float64) ([]str.CatalogRecord, error) {
	const (
		FAIL1 = "DedupByTitle() could not count the words of %d titles: %w"
	)

	if len(recs) < 2 {
		return recs, nil
	}

	titles := make([]string, len(recs))
	for i := range recs {
		titles[i] = recs[i].Title
	}

	counts, err := counttitles(titles)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, len(titles), err)
	}
	if counts == nil {
		return recs, nil
	}
	cols := columns(counts)

	var kept []str.CatalogRecord
	for i := range recs {
		if !volume.MatchString(recs[i].Title) && nearesttoearlier(cols, i, threshold) {
			Msg.TMI("DedupByTitle() dropped " + recs[i].Title)
			continue
		}
		kept = append(kept, recs[i])
	}
	return kept, nil
}

// nearesttoearlier - is any earlier column at least threshold similar to column i?
func nearesttoearlier(cols []mat.Vector, i int, threshold float64) bool {
	for j := 0; j < i; j++ {
		if similarity(cols[i], cols[j]) >= threshold {
			return true
		}
	}
	return false
}

// similarity - cosine similarity, with zero vectors similar to nothing
func similarity(a, b mat.Vector) float64 {
	s := pairwise.CosineSimilarity(a, b)
	if math.IsNaN(s) {
		return 0
	}
	return s
}

// columns - the document vectors of a terms x documents matrix
func columns(m mat.Matrix) []mat.Vector {
	r, c := m.Dims()
	cols := make([]mat.Vector, c)

	if dok, ok := m.(*sparse.DOK); ok {
		csc := dok.ToCSC()
		for j := 0; j < c; j++ {
			cols[j] = csc.ColView(j)
		}
		return cols
	}

	for j := 0; j < c; j++ {
		cols[j] = mat.NewVecDense(r, mat.Col(nil, j, m))
	}
	return cols
}

// RemoveDuplicates - DedupByTitle(DedupByID(recs))
func RemoveDuplicates(recs []str.CatalogRecord, threshold float64) ([]str.CatalogRecord, error) {
	return DedupByTitle(DedupByID(recs), threshold)
}

// Exclude - drop records whose author or title contains any of the excluded strings
func Exclude(recs []str.CatalogRecord, authors []string, titles []string) []str.CatalogRecord {
	var kept []str.CatalogRecord
	for _, r := range recs {
		if gen.ContainsAny(r.Author, authors) || gen.ContainsAny(r.Title, titles) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
