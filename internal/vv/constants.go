//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "twopoints Literary Corpus Builder"
	SHORTNAME = "TPL"
	VERSION   = "1.0.3"

	BLACKANDWHITE     = false
	CONFIGLOCATION    = "."
	CONFIGALTAPTH     = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC       = "twopoints-conf.json"
	CONFIGSTOPS       = "twopoints-stops.json"
	DEFAULTGOLOGLEVEL = 3
	JSONINDENT        = "  "
	WRITEPERMS        = 0644
	DIRPERMS          = 0755

	// the gutenbergpy cache: see GutenbergCacheSettings.CACHE_FILENAME
	DEFAULTCACHEDB  = "gutenbergindex.db"
	DEFAULTTEXTDIR  = "texts"
	DEFAULTOUTDIR   = "."
	DEFAULTMIRROR   = "http://aleph.gutenberg.org"
	DEFAULTEPUBBASE = "https://www.gutenberg.org/cache/epub"
	FETCHTIMEOUT    = 120 * time.Second
	FETCHUSERAGENT  = "twopoints/" + VERSION

	LIBRARYCSV  = "library.csv"
	STATSCSV    = "library_stats.csv"
	NETWORKJSON = "library_network.json"
	NETWORKHTML = "library_network.html"
	STATSPARQ   = "library_stats.parquet"

	// catalog query
	LANGENGLISH = 1  // books.languageid
	TYPEBOOK    = -1 // books.typeid
	QUERYLIMIT  = 50

	// dedup
	TITLESIMILARITY = 0.5
	VOLUMEMARKERS   = `Vol|vol|Part|part`

	// embedding
	MINDOCFREQ   = 5
	RANDOMSEED   = 42
	TSNEPERPLEX  = 30
	TSNELEARNRT  = 10 // go-tsne adds each gradient to the last one: larger steps diverge
	TSNEMAXITER  = 300
	TSNEDIMS     = 2
	TSNEVERBOSE  = false
	EMBEDREPORTN = 50 // report the divergence every N iterations
	EMBEDSPAN    = 14 // the farthest two points end up this far apart

	// network
	EDGETHRESHOLD = 8.5
	EDGEMAXWEIGHT = 5.0

	// graph page
	DEFAULTCHRTWIDTH  = "1500px"
	DEFAULTCHRTHEIGHT = "1200px"
)
