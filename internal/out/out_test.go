//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package out

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/vv"
)

func readcsv(t *testing.T, path string) [][]string {
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func somestats() []str.StatsRecord {
	return []str.StatsRecord{
		{Nationality: "English", Query: "Jane Austen", Title: "Emma", Words: 158000, Sentiment: 0.25, ParLength: 61.5, X: -1.5, Y: 2},
		{Nationality: "Russian", Query: "Leo Tolstoy", Title: "War and Peace", Words: 562000, Sentiment: -0.125, ParLength: 80, X: 3.25, Y: -0.5},
	}
}

// nothing but the target should be left in the directory
func onlyfile(t *testing.T, dir string, name string) {
	ee, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, ee, 1)
	assert.Equal(t, name, ee[0].Name())
}

func TestWriteLibrary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, vv.LIBRARYCSV)
	entries := []str.CorpusEntry{
		{
			CatalogRecord: str.CatalogRecord{GutID: 158, Author: "Austen, Jane", Title: "Emma", Downloads: 9000, Query: "Jane Austen", Nationality: "English"},
			Text:          "Emma Woodhouse, handsome, clever, and rich.\n\nShe said \"no\".",
		},
	}

	require.NoError(t, WriteLibrary(path, entries))
	rows := readcsv(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, LibraryHeader, rows[0])
	assert.Equal(t, []string{"158", "Austen, Jane", "Emma", "9000", "English", "Jane Austen", entries[0].Text}, rows[1])
	onlyfile(t, dir, vv.LIBRARYCSV)
}

func TestWriteStats(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, vv.STATSCSV)

	require.NoError(t, WriteStats(path, somestats()))
	rows := readcsv(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, StatsHeader, rows[0])
	assert.Equal(t, []string{"English", "Jane Austen", "Emma", "158000", "0.25", "61.5", "-1.5", "2"}, rows[1])
	assert.Equal(t, []string{"Russian", "Leo Tolstoy", "War and Peace", "562000", "-0.125", "80", "3.25", "-0.5"}, rows[2])

	// empty input still gets a header
	require.NoError(t, WriteStats(path, nil))
	assert.Equal(t, [][]string{StatsHeader}, readcsv(t, path))
}

func TestWriteNetwork(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, vv.NETWORKJSON)
	net := str.Network{
		Nodes: []str.NetNode{{ID: 0, Title: "Emma", Query: "Jane Austen", Nationality: "English"}, {ID: 1, Title: "Persuasion", Query: "Jane Austen", Nationality: "English"}},
		Links: []str.NetLink{{Source: 0, Target: 1, Value: 5}},
	}

	require.NoError(t, WriteNetwork(path, net))
	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var got str.Network
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, net, got)

	var raw map[string]any
	require.NoError(t, WriteNetwork(path, str.Network{}))
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, []any{}, raw["nodes"])
	assert.Equal(t, []any{}, raw["links"])
}

func TestWriteNetworkHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, vv.NETWORKHTML)
	net := str.Network{Nodes: []str.NetNode{{ID: 0, Title: "Emma", Nationality: "English"}}, Links: []str.NetLink{}}

	require.NoError(t, WriteNetworkHTML(path, net, [][2]float64{{1, 1}}))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Emma")

	// a failed render leaves neither a file nor a temporary behind
	bad := filepath.Join(dir, "bad.html")
	assert.Error(t, WriteNetworkHTML(bad, net, nil))
	assert.NoFileExists(t, bad)
	onlyfile(t, dir, vv.NETWORKHTML)
}

func TestWriteStatsParquet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, vv.STATSPARQ)

	require.NoError(t, WriteStatsParquet(path, somestats()))
	got, err := parquet.ReadFile[str.StatsRecord](path)
	require.NoError(t, err)
	assert.Equal(t, somestats(), got)
	onlyfile(t, dir, vv.STATSPARQ)
}

func TestWriteMakesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", vv.STATSCSV)
	require.NoError(t, WriteStats(path, somestats()))
	assert.FileExists(t, path)
}
