//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksreyes/twopoints/internal/grab"
	"github.com/ksreyes/twopoints/internal/lnch"
	"github.com/ksreyes/twopoints/internal/mm"
	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/vec"
	"github.com/ksreyes/twopoints/internal/vv"
)

const (
	SCHEMA = `
CREATE TABLE books (id INTEGER PRIMARY KEY, gutenbergbookid INTEGER, numdownloads INTEGER, languageid INTEGER, typeid INTEGER);
CREATE TABLE authors (id INTEGER PRIMARY KEY, name TEXT);
CREATE TABLE book_authors (id INTEGER PRIMARY KEY, bookid INTEGER, authorid INTEGER);
CREATE TABLE titles (id INTEGER PRIMARY KEY, bookid INTEGER, name TEXT);

INSERT INTO authors (id, name) VALUES (1, 'Austen, Jane'), (2, 'Tolstoy, Leo');
INSERT INTO books (id, gutenbergbookid, numdownloads, languageid, typeid) VALUES (1, 158, 9000, 1, -1), (2, 2600, 8000, 1, -1);
INSERT INTO book_authors (bookid, authorid) VALUES (1, 1), (2, 2);
INSERT INTO titles (bookid, name) VALUES (1, 'Emma'), (2, 'War and Peace');
`
	EMMA = "*** START OF THE PROJECT GUTENBERG EBOOK EMMA ***\r\n\r\n" +
		"Emma Woodhouse, handsome, clever, and rich, lived in the village\r\n" +
		"with her father near the river.\r\n\r\n" +
		"CHAPTER I\r\n\r\n" +
		"The river ran past the village and the garden was happy and bright.\r\n"
	WAR = "*** START OF THE PROJECT GUTENBERG EBOOK WAR AND PEACE ***\n\n" +
		"The prince walked to the village by the river in the cold morning.\n\n" +
		"Soldiers crossed the river near the village and the garden burned.\n"
)

func quietmsg() *mm.MessageMaker {
	m := lnch.NewMessageMakerWithDefaults()
	m.Out = io.Discard
	return m
}

func TestMain(m *testing.M) {
	lnch.Msg.Out = io.Discard
	os.Exit(m.Run())
}

// testpipeline - a two author catalog and a mirror that holds exactly their texts
func testpipeline(t *testing.T, bodies map[string]string) *Pipeline {
	t.Helper()

	dir := t.TempDir()
	dbp := filepath.Join(dir, vv.DEFAULTCACHEDB)
	w, err := sql.Open("sqlite3", dbp)
	require.NoError(t, err)
	_, err = w.Exec(SCHEMA)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, b)
	}))
	t.Cleanup(srv.Close)

	cfg := *lnch.BuildDefaultConfig()
	cfg.CacheDB = dbp
	cfg.TextDir = filepath.Join(dir, "texts")
	cfg.OutDir = filepath.Join(dir, "out")
	cfg.Mirror = srv.URL
	cfg.EpubBase = srv.URL + "/cache/epub"

	p := New(cfg, quietmsg())
	p.Roster = []vv.RosterGroup{
		{Nationality: "English", Names: []string{"Jane Austen"}},
		{Nationality: "Russian", Names: []string{"Leo Tolstoy"}},
	}
	p.Stops = vec.EnglishStops
	return p
}

func bothtexts() map[string]string {
	return map[string]string{
		"/" + grab.MirrorDir(158) + "/158.txt": EMMA,
		"/cache/epub/2600/pg2600.txt":          WAR,
	}
}

func TestRunEndToEnd(t *testing.T) {
	p := testpipeline(t, bothtexts())

	r, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, r.Corpus, 2)
	assert.Equal(t, "Jane Austen", r.Corpus[0].Query)
	assert.Equal(t, "English", r.Corpus[0].Nationality)
	assert.Equal(t, "Russian", r.Corpus[1].Nationality)
	assert.NotContains(t, r.Corpus[0].Text, "CHAPTER")
	assert.NotContains(t, r.Corpus[0].Text, "GUTENBERG")
	assert.Contains(t, r.Corpus[0].Text, "in the village with her father")

	require.Len(t, r.Stats, 2)
	for _, s := range r.Stats {
		assert.Greater(t, s.Words, 0)
		assert.GreaterOrEqual(t, s.Sentiment, -1.0)
		assert.LessOrEqual(t, s.Sentiment, 1.0)
	}
	require.Len(t, r.Coords, 2)
	assert.Equal(t, r.Coords[0][0], r.Stats[0].X)
	assert.Equal(t, r.Coords[1][1], r.Stats[1].Y)

	assert.Len(t, r.Network.Nodes, 2)
	assert.LessOrEqual(t, len(r.Network.Links), 1)

	for _, fn := range []string{vv.LIBRARYCSV, vv.STATSCSV, vv.NETWORKJSON, vv.NETWORKHTML, vv.STATSPARQ} {
		assert.FileExists(t, filepath.Join(p.Cfg.OutDir, fn))
	}
	assert.Len(t, r.Written, 5)

	b, err := os.ReadFile(filepath.Join(p.Cfg.OutDir, vv.NETWORKJSON))
	require.NoError(t, err)
	var net str.Network
	require.NoError(t, json.Unmarshal(b, &net))
	assert.Equal(t, r.Network.Nodes, net.Nodes)

	// the catalog is not held past the acquisition stage
	assert.Nil(t, p.catalog)
}

func TestRunReportsHeap(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  bool
	}{
		{"peek", mm.MSGPEEK, true},
		{"note", mm.MSGNOTE, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log bytes.Buffer
			p := testpipeline(t, bothtexts())
			p.Msg.Out = &log
			p.Msg.LLvl = tt.level
			p.Msg.BW = true

			_, err := p.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, bytes.Contains(log.Bytes(), []byte("Embedding() runtime.GC()")))
			assert.Equal(t, tt.want, bytes.Contains(log.Bytes(), []byte("Acquire() current heap")))
		})
	}
}

func TestRunOptionalOutputs(t *testing.T) {
	p := testpipeline(t, bothtexts())
	p.Cfg.WriteHTML = false
	p.Cfg.WriteParquet = false

	r, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, r.Written, 3)
	assert.NoFileExists(t, filepath.Join(p.Cfg.OutDir, vv.NETWORKHTML))
	assert.NoFileExists(t, filepath.Join(p.Cfg.OutDir, vv.STATSPARQ))
}

func TestRunIsReproducible(t *testing.T) {
	a, err := testpipeline(t, bothtexts()).Run(context.Background())
	require.NoError(t, err)
	b, err := testpipeline(t, bothtexts()).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.Coords, b.Coords)
}

func TestRunFailures(t *testing.T) {
	t.Run("missing catalog", func(t *testing.T) {
		p := testpipeline(t, bothtexts())
		p.Cfg.CacheDB = filepath.Join(t.TempDir(), "nothere.db")
		_, err := p.Run(context.Background())
		assert.Error(t, err)
	})

	t.Run("missing text", func(t *testing.T) {
		p := testpipeline(t, map[string]string{"/cache/epub/2600/pg2600.txt": WAR})
		_, err := p.Run(context.Background())
		assert.ErrorIs(t, err, grab.ErrNotFound)
		assert.NoFileExists(t, filepath.Join(p.Cfg.OutDir, vv.LIBRARYCSV))
		assert.Nil(t, p.catalog)
	})

	t.Run("cancelled", func(t *testing.T) {
		p := testpipeline(t, bothtexts())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
