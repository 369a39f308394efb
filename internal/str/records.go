//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// CatalogRecord - one candidate work as found in the catalog
type CatalogRecord struct {
	GutID       int
	Author      string
	Title       string
	Downloads   int
	Query       string // the roster name that found this work
	Nationality string
}

// CatalogCensus - the size of the catalog cache
type CatalogCensus struct {
	Books   int
	Authors int
	Titles  int
}

// CorpusEntry - a record and its cleaned text
type CorpusEntry struct {
	CatalogRecord
	Text string
}

// StatsRecord - the numbers for one corpus entry; X and Y are filled in by the embedding stage
type StatsRecord struct {
	Nationality string  `parquet:"nationality"`
	Query       string  `parquet:"query"`
	Title       string  `parquet:"title"`
	Words       int     `parquet:"words"`
	Sentiment   float64 `parquet:"sentiment"`
	ParLength   float64 `parquet:"parlength"`
	X           float64 `parquet:"x"`
	Y           float64 `parquet:"y"`
}

type NetNode struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Query       string `json:"query"`
	Nationality string `json:"nationality"`
}

// NetLink - Source and Target are indices into Network.Nodes; Value is the rescaled weight
type NetLink struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
}

type Network struct {
	Nodes []NetNode `json:"nodes"`
	Links []NetLink `json:"links"`
}
