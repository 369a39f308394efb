//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"sync"

	"github.com/mattn/go-sqlite3"

	"github.com/ksreyes/twopoints/internal/str"
)

//
// THE GUTENBERG CATALOG CACHE
//

// the cache is the sqlite file built by gutenbergpy's GutenbergCache.create(); we never write to it

const (
	DRIVERNAME = "sqlite3_read_only"
)

var registration sync.Once

// register - a driver whose every connection refuses writes
func register() {
	registration.Do(func() {
		sql.Register(DRIVERNAME,
			&sqlite3.SQLiteDriver{
				ConnectHook: func(conn *sqlite3.SQLiteConn) error {
					_, err := conn.Exec("PRAGMA query_only = ON", nil)
					return err
				},
			})
	})
}

// Catalog - a read-only handle on the catalog cache
type Catalog struct {
	Path string
	db   *sql.DB
}

// OpenCatalog - open the cache file read-only; a missing file is an error
func OpenCatalog(path string) (*Catalog, error) {
	const (
		FAIL1 = "catalog cache '%s' is not available: %w"
		FAIL2 = "could not open catalog cache '%s': %w"
		DSN   = "file:%s?mode=ro"
	)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf(FAIL1, path, err)
	}

	register()

	u := url.URL{Path: path}
	handle, err := sql.Open(DRIVERNAME, fmt.Sprintf(DSN, u.EscapedPath()))
	if err != nil {
		return nil, fmt.Errorf(FAIL2, path, err)
	}

	if err = handle.Ping(); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf(FAIL2, path, err)
	}

	return &Catalog{Path: path, db: handle}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// QueryAuthor - the catalog rows for one roster name, most downloaded first
func (c *Catalog) QueryAuthor(ctx context.Context, q AuthorQuery) ([]str.CatalogRecord, error) {
	const (
		FAIL1 = "query for '%s' failed: %w"
		FAIL2 = "could not scan a row for '%s': %w"
	)

	if len(q.Tokens) == 0 {
		return nil, fmt.Errorf(FAIL1, q.Name, ErrEmptyQuery)
	}

	stmt, args := q.SQL()
	rows, err := c.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, q.Name, err)
	}
	defer rows.Close()

	var found []str.CatalogRecord
	for rows.Next() {
		var (
			id    int
			au    sql.NullString
			ti    sql.NullString
			downl sql.NullInt64
		)
		if err = rows.Scan(&id, &au, &ti, &downl); err != nil {
			return nil, fmt.Errorf(FAIL2, q.Name, err)
		}
		found = append(found, str.CatalogRecord{
			GutID:     id,
			Author:    au.String,
			Title:     ti.String,
			Downloads: int(downl.Int64),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf(FAIL1, q.Name, err)
	}
	return found, nil
}

// Census - how big is the cache?
func (c *Catalog) Census(ctx context.Context) (str.CatalogCensus, error) {
	const (
		COUNT = `SELECT
	(SELECT COUNT(*) FROM books),
	(SELECT COUNT(*) FROM authors),
	(SELECT COUNT(*) FROM titles)`
		FAIL1 = "census of '%s' failed: %w"
	)
	var cc str.CatalogCensus
	err := c.db.QueryRowContext(ctx, COUNT).Scan(&cc.Books, &cc.Authors, &cc.Titles)
	if err != nil {
		return cc, fmt.Errorf(FAIL1, c.Path, err)
	}
	return cc, nil
}
