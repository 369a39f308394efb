//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"errors"
	"strings"

	"github.com/ksreyes/twopoints/internal/str"
)

var ErrEmptyQuery = errors.New("author query has no name tokens")

// AuthorQuery - everything needed to ask the catalog for one roster name
type AuthorQuery struct {
	Name       string
	Tokens     []string
	LanguageID int
	TypeID     int
	Limit      int
}

// NewAuthorQuery - "Charlotte Bronte" becomes two LIKE conditions: '%Charlotte%' AND '%Bronte%'
func NewAuthorQuery(name string, cfg str.CurrentConfiguration) AuthorQuery {
	return AuthorQuery{
		Name:       name,
		Tokens:     strings.Fields(name),
		LanguageID: cfg.LanguageID,
		TypeID:     cfg.TypeID,
		Limit:      cfg.QueryLimit,
	}
}

// SQL - the statement and its bound arguments
func (q AuthorQuery) SQL() (string, []any) {
	const (
		HEAD = `SELECT DISTINCT books.gutenbergbookid, authors.name, titles.name, books.numdownloads
FROM books, authors, book_authors, titles
WHERE authors.id = book_authors.authorid
AND books.id = book_authors.bookid
AND books.id = titles.bookid
AND books.languageid = ?
AND books.typeid = ?`
		LIKE = "\nAND authors.name LIKE ?"
		TAIL = "\nORDER BY books.numdownloads DESC\nLIMIT ?"
	)

	var b strings.Builder
	b.WriteString(HEAD)

	args := make([]any, 0, len(q.Tokens)+3)
	args = append(args, q.LanguageID, q.TypeID)

	for _, t := range q.Tokens {
		b.WriteString(LIKE)
		args = append(args, "%"+t+"%")
	}

	b.WriteString(TAIL)
	args = append(args, q.Limit)

	return b.String(), args
}
