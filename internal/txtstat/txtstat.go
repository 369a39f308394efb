//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txtstat

import (
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
	"gonum.org/v1/gonum/stat"

	"github.com/ksreyes/twopoints/internal/str"
)

//
// TEXT STATISTICS
//

const (
	PARAGRAPH = "\n\n"
)

var (
	pieces = regexp.MustCompile(` |—`)
	// the lexicon is parsed on first use
	analyzer = sync.OnceValue(govader.NewSentimentIntensityAnalyzer)
)

// WordCount - whitespace separated fields
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Sentiment - the mean VADER compound score of the paragraphs of text, in [-1, 1]
func Sentiment(text string) float64 {
	sia := analyzer()

	var scores []float64
	for _, p := range strings.Split(text, PARAGRAPH) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		scores = append(scores, sia.PolarityScores(p).Compound)
	}

	if len(scores) == 0 {
		return 0
	}
	m := stat.Mean(scores, nil)
	return math.Max(-1, math.Min(1, m))
}

// ParLength - mean paragraph length, counting the pieces between spaces and em-dashes
func ParLength(text string) float64 {
	paras := strings.Split(text, PARAGRAPH)
	lengths := make([]float64, len(paras))
	for i, p := range paras {
		lengths[i] = float64(len(pieces.Split(p, -1)))
	}
	return stat.Mean(lengths, nil)
}

// Compute - one StatsRecord per entry, in order; X and Y are left for the embedding
func Compute(entries []str.CorpusEntry) []str.StatsRecord {
	stats := make([]str.StatsRecord, len(entries))
	for i, e := range entries {
		stats[i] = str.StatsRecord{
			Nationality: e.Nationality,
			Query:       e.Query,
			Title:       e.Title,
			Words:       WordCount(e.Text),
			Sentiment:   Sentiment(e.Text),
			ParLength:   ParLength(e.Text),
		}
	}
	return stats
}
