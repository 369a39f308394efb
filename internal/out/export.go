//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package out

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"

	"github.com/ksreyes/twopoints/internal/netw"
	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/vv"
)

//
// EXPORT
//

var (
	LibraryHeader = []string{"gutid", "author", "title", "downloads", "nationality", "query", "text"}
	StatsHeader   = []string{"nationality", "query", "title", "words", "sentiment", "parlength", "x", "y"}
)

// tmpname - a sibling of path that nobody else will want
func tmpname(path string) string {
	rnd := strings.Replace(uuid.New().String(), "-", "", -1)
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+rnd+".tmp")
}

// atomically - fill a temporary file with fn and move it onto path only if everything worked
func atomically(path string, fn func(w io.Writer) error) error {
	const (
		FAIL1 = "could not write %s: %w"
	)

	if err := os.MkdirAll(filepath.Dir(path), vv.DIRPERMS); err != nil {
		return fmt.Errorf(FAIL1, path, err)
	}

	tmp := tmpname(path)
	fh, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, vv.WRITEPERMS)
	if err != nil {
		return fmt.Errorf(FAIL1, path, err)
	}

	bw := bufio.NewWriter(fh)
	err = fn(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf(FAIL1, path, err)
	}
	return nil
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteLibrary - library.csv: the catalog data and the cleaned text of every work
func WriteLibrary(path string, entries []str.CorpusEntry) error {
	return atomically(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(LibraryHeader); err != nil {
			return err
		}
		for _, e := range entries {
			row := []string{strconv.Itoa(e.GutID), e.Author, e.Title, strconv.Itoa(e.Downloads), e.Nationality, e.Query, e.Text}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// WriteStats - library_stats.csv
func WriteStats(path string, stats []str.StatsRecord) error {
	return atomically(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(StatsHeader); err != nil {
			return err
		}
		for _, s := range stats {
			row := []string{s.Nationality, s.Query, s.Title, strconv.Itoa(s.Words), ff(s.Sentiment), ff(s.ParLength), ff(s.X), ff(s.Y)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// WriteNetwork - library_network.json: {"nodes": [...], "links": [...]}
func WriteNetwork(path string, net str.Network) error {
	if net.Links == nil {
		net.Links = []str.NetLink{}
	}
	if net.Nodes == nil {
		net.Nodes = []str.NetNode{}
	}
	return atomically(path, func(w io.Writer) error {
		return json.NewEncoder(w).Encode(net)
	})
}

// WriteNetworkHTML - library_network.html
func WriteNetworkHTML(path string, net str.Network, coords [][2]float64) error {
	return atomically(path, func(w io.Writer) error {
		return netw.RenderHTML(net, coords, w)
	})
}

// WriteStatsParquet - library_stats.parquet: the same table as library_stats.csv
func WriteStatsParquet(path string, stats []str.StatsRecord) error {
	return atomically(path, func(w io.Writer) error {
		return parquet.Write(w, stats)
	})
}
