//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package grab

import (
	"context"
	"fmt"

	"github.com/ksreyes/twopoints/internal/gen"
	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/txtstat"
)

// TextSource - anything that can hand over a raw text by id; *Fetcher is the real one
type TextSource interface {
	Fetch(ctx context.Context, id int) (string, error)
}

// GetAndClean - fetch, strip and clean one text
func GetAndClean(ctx context.Context, src TextSource, id int) (string, error) {
	raw, err := src.Fetch(ctx, id)
	if err != nil {
		return "", err
	}
	return Clean(StripHeaders(raw)), nil
}

// Acquire - the cleaned text of every record, in record order; the first failure ends the run
// and a text with no words left after cleaning is dropped
func Acquire(ctx context.Context, src TextSource, recs []str.CatalogRecord) ([]str.CorpusEntry, error) {
	const (
		FAIL1 = "could not acquire '%s' (%d): %w"
		MSG1  = "[%d/%d] %s: %s"
		MSG2  = "[%d/%d] %s: nothing left of '%s' (%d) after cleaning; dropping it"
	)

	corpus := make([]str.CorpusEntry, 0, len(recs))
	for i, r := range recs {
		txt, err := GetAndClean(ctx, src, r.GutID)
		if err != nil {
			return nil, fmt.Errorf(FAIL1, r.Title, r.GutID, err)
		}
		if txtstat.WordCount(txt) == 0 {
			Msg.WARN(fmt.Sprintf(MSG2, i+1, len(recs), r.Query, gen.RuneLimit(r.Title, 48), r.GutID))
			continue
		}
		Msg.FYI(fmt.Sprintf(MSG1, i+1, len(recs), r.Query, gen.RuneLimit(r.Title, 48)))
		corpus = append(corpus, str.CorpusEntry{CatalogRecord: r, Text: txt})
	}
	return corpus, nil
}
