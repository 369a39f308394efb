//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package grab

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/ksreyes/twopoints/internal/lnch"
	"github.com/ksreyes/twopoints/internal/str"
	"github.com/ksreyes/twopoints/internal/vv"
)

//
// FETCHING
//

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	ErrNotFound = errors.New("no source could supply the text")
)

// Fetcher - finds the raw text of a book: the local cache first, then the mirror, then the epub cache
type Fetcher struct {
	TextDir  string
	Mirror   string
	EpubBase string
	Client   *http.Client
}

// source - one place a text might be and how to decode it
type source struct {
	url    string
	latin1 bool
}

func NewFetcher(cfg str.CurrentConfiguration) *Fetcher {
	return &Fetcher{
		TextDir:  cfg.TextDir,
		Mirror:   strings.TrimRight(cfg.Mirror, "/"),
		EpubBase: strings.TrimRight(cfg.EpubBase, "/"),
		Client:   &http.Client{Timeout: vv.FETCHTIMEOUT},
	}
}

// MirrorDir - 1234 is found in 1/2/3/1234; 5 in 0/5
func MirrorDir(id int) string {
	s := strconv.Itoa(id)
	if len(s) == 1 {
		return "0/" + s
	}
	parts := strings.Split(s[:len(s)-1], "")
	return strings.Join(parts, "/") + "/" + s
}

func (f *Fetcher) sources(id int) []source {
	const (
		PLAIN = "%s/%s/%d.txt"
		LATIN = "%s/%s/%d-8.txt"
		UTF8  = "%s/%s/%d-0.txt"
		EPUB  = "%s/%d/pg%d.txt"
	)
	d := MirrorDir(id)
	return []source{
		{fmt.Sprintf(PLAIN, f.Mirror, d, id), false},
		{fmt.Sprintf(LATIN, f.Mirror, d, id), true},
		{fmt.Sprintf(UTF8, f.Mirror, d, id), false},
		{fmt.Sprintf(EPUB, f.EpubBase, id, id), false},
	}
}

// CachePath - where a fetched text is kept on disk
func (f *Fetcher) CachePath(id int) string {
	return filepath.Join(f.TextDir, strconv.Itoa(id)+".txt.gz")
}

// Fetch - the raw text of book id
func (f *Fetcher) Fetch(ctx context.Context, id int) (string, error) {
	const (
		FAIL1 = "fetch of %d failed: %w"
		FAIL2 = "could not cache %d: %s"
		MSG1  = "Fetch(): %d found in the local cache"
		MSG2  = "Fetch(): %s unavailable: %s"
		MSG3  = "Fetch(): %d from %s"
	)

	if txt, err := f.fromcache(id); err == nil {
		Msg.TMI(fmt.Sprintf(MSG1, id))
		return txt, nil
	}

	var errs []error
	for _, s := range f.sources(id) {
		txt, err := f.download(ctx, s)
		if err != nil {
			// a cancelled run is not a missing text
			if ctx.Err() != nil {
				return "", fmt.Errorf(FAIL1, id, ctx.Err())
			}
			Msg.TMI(fmt.Sprintf(MSG2, s.url, err.Error()))
			errs = append(errs, err)
			continue
		}
		Msg.PEEK(fmt.Sprintf(MSG3, id, s.url))
		if e := f.tocache(id, txt); e != nil {
			Msg.WARN(fmt.Sprintf(FAIL2, id, e.Error()))
		}
		return txt, nil
	}

	return "", fmt.Errorf(FAIL1, id, errors.Join(append([]error{ErrNotFound}, errs...)...))
}

func (f *Fetcher) download(ctx context.Context, s source) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", vv.FETCHUSERAGENT)

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: %s", s.url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if s.latin1 {
		return charmap.ISO8859_1.NewDecoder().String(string(body))
	}
	return string(body), nil
}

func (f *Fetcher) fromcache(id int) (string, error) {
	if f.TextDir == "" {
		return "", os.ErrNotExist
	}

	fh, err := os.Open(f.CachePath(id))
	if err != nil {
		return "", err
	}
	defer fh.Close()

	zr, err := gzip.NewReader(fh)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	b, err := io.ReadAll(zr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (f *Fetcher) tocache(id int, txt string) error {
	if f.TextDir == "" {
		return nil
	}
	if err := os.MkdirAll(f.TextDir, vv.DIRPERMS); err != nil {
		return err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(txt)); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return os.WriteFile(f.CachePath(id), buf.Bytes(), vv.WRITEPERMS)
}
