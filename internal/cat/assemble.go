//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cat

import (
	"context"
	"fmt"

	"github.com/ksreyes/twopoints/internal/db"
	"github.com/ksreyes/twopoints/internal/gen"
	"github.com/ksreyes/twopoints/internal/lnch"
	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/vv"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

// Querier - anything that can answer an author query; *db.Catalog is the real one
type Querier interface {
	QueryAuthor(ctx context.Context, q db.AuthorQuery) ([]str.CatalogRecord, error)
}

// Assemble - query each roster name in order, dedup its works, stamp them, then apply the exclusion lists
func Assemble(ctx context.Context, q Querier, roster []vv.RosterGroup, cfg str.CurrentConfiguration) ([]str.CatalogRecord, error) {
	const (
		FAIL1 = "could not assemble the library: %w"
		MSG1  = "%s: %d candidate works; %d after removing duplicates"
		MSG2  = "%s: no works found"
		MSG3  = "exclusions removed %d of %d works"
	)

	// one shelf per roster name, in roster order
	var shelves [][]str.CatalogRecord

	for _, g := range roster {
		for _, name := range g.Names {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf(FAIL1, err)
			}

			found, err := q.QueryAuthor(ctx, db.NewAuthorQuery(name, cfg))
			if err != nil {
				return nil, fmt.Errorf(FAIL1, err)
			}
			if len(found) == 0 {
				Msg.WARN(fmt.Sprintf(MSG2, name))
				continue
			}

			works, err := RemoveDuplicates(found, cfg.TitleSim)
			if err != nil {
				return nil, fmt.Errorf(FAIL1, err)
			}
			Msg.FYI(fmt.Sprintf(MSG1, name, len(found), len(works)))

			for i := range works {
				works[i].Query = name
				works[i].Nationality = g.Nationality
			}
			shelves = append(shelves, works)
		}
	}

	library := gen.FlattenSlices(shelves)

	kept := Exclude(library, vv.ExcludedAuthors, vv.ExcludedTitles)
	Msg.NOTE(fmt.Sprintf(MSG3, len(library)-len(kept), len(library)))
	return kept, nil
}
