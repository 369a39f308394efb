//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ksreyes/twopoints/internal/cat"
	"github.com/ksreyes/twopoints/internal/db"
	"github.com/ksreyes/twopoints/internal/grab"
	"github.com/ksreyes/twopoints/internal/mm"
	"github.com/ksreyes/twopoints/internal/netw"
	"github.com/ksreyes/twopoints/internal/out"
	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/txtstat"
	"github.com/ksreyes/twopoints/internal/vec"
	"github.com/ksreyes/twopoints/internal/vv"
)

// Pipeline - everything one run needs; the stages are called in order by Run
type Pipeline struct {
	Cfg    str.CurrentConfiguration
	Msg    *mm.MessageMaker
	Roster []vv.RosterGroup
	Stops  []string // nil means UserStops() at the embedding stage
	Source grab.TextSource

	catalog  cat.Querier
	closer   func() error
	start    time.Time
	previous time.Time
}

type censustaker interface {
	Census(context.Context) (str.CatalogCensus, error)
}

// Results - what a run produced, in row order
type Results struct {
	Corpus  []str.CorpusEntry
	Stats   []str.StatsRecord
	Coords  [][2]float64
	Network str.Network
	Written []string
}

// New - a pipeline over the configured catalog and mirror; the stage packages share msg
func New(cfg str.CurrentConfiguration, msg *mm.MessageMaker) *Pipeline {
	cat.Msg = msg
	grab.Msg = msg
	vec.Msg = msg
	return &Pipeline{
		Cfg:    cfg,
		Msg:    msg,
		Roster: vv.AuthorRoster,
		Source: grab.NewFetcher(cfg),
	}
}

func (p *Pipeline) timer(letter string, o string) {
	p.Msg.Timer(letter, o, p.start, p.previous)
	p.previous = time.Now()
}

// OpenCatalog - open the catalog cache unless a querier is already in place
func (p *Pipeline) OpenCatalog() error {
	if p.catalog != nil {
		return nil
	}
	c, err := db.OpenCatalog(p.Cfg.CacheDB)
	if err != nil {
		return err
	}
	p.catalog = c
	p.closer = c.Close
	return nil
}

// CloseCatalog - release the catalog handle; safe to call more than once
func (p *Pipeline) CloseCatalog() {
	const (
		FAIL1 = "problem closing the catalog: %s"
	)
	if p.closer != nil {
		if err := p.closer(); err != nil {
			p.Msg.WARN(fmt.Sprintf(FAIL1, err.Error()))
		}
	}
	p.closer = nil
	p.catalog = nil
}

// Catalog - stage 1: the deduplicated records for the whole roster
func (p *Pipeline) Catalog(ctx context.Context) ([]str.CatalogRecord, error) {
	if err := p.OpenCatalog(); err != nil {
		return nil, err
	}
	if cz, ok := p.catalog.(censustaker); ok {
		if c, e := cz.Census(ctx); e == nil {
			m := message.NewPrinter(language.English)
			p.Msg.PEEK(m.Sprintf("catalog holds %d books by %d authors", c.Books, c.Authors))
		}
	}
	return cat.Assemble(ctx, p.catalog, p.Roster, p.Cfg)
}

// Acquire - stage 2
func (p *Pipeline) Acquire(ctx context.Context, recs []str.CatalogRecord) ([]str.CorpusEntry, error) {
	return grab.Acquire(ctx, p.Source, recs)
}

// Statistics - stage 3
func (p *Pipeline) Statistics(corpus []str.CorpusEntry) []str.StatsRecord {
	return txtstat.Compute(corpus)
}

// Embedding - stage 4: vectorise the texts and write the 2D coordinates into stats
func (p *Pipeline) Embedding(corpus []str.CorpusEntry, stats []str.StatsRecord) ([][2]float64, error) {
	const (
		FAIL1 = "could not vectorise the corpus: %w"
		MSG1  = "%d texts vectorised over %d terms"
	)

	if p.Stops == nil {
		p.Stops = vec.UserStops()
	}

	texts := make([]string, len(corpus))
	for i, e := range corpus {
		texts[i] = e.Text
	}

	m, terms, err := vec.Vectorise(texts, p.Stops, p.Cfg.MinDocFreq)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, err)
	}
	p.Msg.FYI(fmt.Sprintf(MSG1, len(texts), len(terms)))

	coords := vec.Embed(m, p.Cfg)
	for i := range stats {
		if i < len(coords) {
			stats[i].X = coords[i][0]
			stats[i].Y = coords[i][1]
		}
	}
	return coords, nil
}

// Network - stage 5
func (p *Pipeline) Network(stats []str.StatsRecord) str.Network {
	return netw.Build(stats, p.Cfg.EdgeThreshold, p.Cfg.EdgeMaxWeight)
}

// Export - stage 6: the csv and json files always; html and parquet when asked for
func (p *Pipeline) Export(r *Results) error {
	const (
		MSG1 = "wrote %s"
	)

	at := func(fn string) string {
		return filepath.Join(p.Cfg.OutDir, fn)
	}

	type job struct {
		fn string
		do func(string) error
	}

	jobs := []job{
		{vv.LIBRARYCSV, func(f string) error { return out.WriteLibrary(f, r.Corpus) }},
		{vv.STATSCSV, func(f string) error { return out.WriteStats(f, r.Stats) }},
		{vv.NETWORKJSON, func(f string) error { return out.WriteNetwork(f, r.Network) }},
	}
	if p.Cfg.WriteHTML {
		jobs = append(jobs, job{vv.NETWORKHTML, func(f string) error { return out.WriteNetworkHTML(f, r.Network, r.Coords) }})
	}
	if p.Cfg.WriteParquet {
		jobs = append(jobs, job{vv.STATSPARQ, func(f string) error { return out.WriteStatsParquet(f, r.Stats) }})
	}

	for _, j := range jobs {
		f := at(j.fn)
		if err := j.do(f); err != nil {
			return err
		}
		r.Written = append(r.Written, f)
		p.Msg.FYI(fmt.Sprintf(MSG1, f))
	}
	return nil
}

// Run - all six stages; the catalog is closed as soon as the texts are in hand
func (p *Pipeline) Run(ctx context.Context) (*Results, error) {
	const (
		MSG1 = "%d works selected"
		MSG2 = "fetched and cleaned %d texts"
		MSG3 = "statistics computed"
		MSG4 = "embedding computed"
		MSG5 = "network built: %d nodes and %d links"
		MSG6 = "%d files written to '%s'"
	)

	p.start = time.Now()
	p.previous = p.start
	defer p.CloseCatalog()

	m := message.NewPrinter(language.English)
	r := &Results{}

	recs, err := p.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	p.timer("A", m.Sprintf(MSG1, len(recs)))

	r.Corpus, err = p.Acquire(ctx, recs)
	p.CloseCatalog()
	if err != nil {
		return nil, err
	}
	p.timer("B", m.Sprintf(MSG2, len(r.Corpus)))
	p.Msg.Heap("Acquire()", false)

	r.Stats = p.Statistics(r.Corpus)
	p.timer("C", MSG3)

	r.Coords, err = p.Embedding(r.Corpus, r.Stats)
	if err != nil {
		return nil, err
	}
	p.timer("D", MSG4)
	// the term matrix is garbage now
	p.Msg.Heap("Embedding()", true)

	r.Network = p.Network(r.Stats)
	p.timer("E", m.Sprintf(MSG5, len(r.Network.Nodes), len(r.Network.Links)))

	if err = p.Export(r); err != nil {
		return nil, err
	}
	p.timer("F", fmt.Sprintf(MSG6, len(r.Written), p.Cfg.OutDir))
	return r, nil
}
