//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package grab

import (
	"regexp"
	"strings"

	"github.com/ksreyes/twopoints/internal/gen"
	"github.com/ksreyes/twopoints/internal/vv"
)

//
// CLEANING
//

var (
	discard     = regexp.MustCompile(strings.Join(vv.ParagraphDiscards, "|"))
	manybreaks  = regexp.MustCompile(`\n{3,}`)
	crlf        = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	invisibles  = "\ufeff\u200b"
	paragrapher = "\n\n"
)

// StripHeaders - lose the gutenberg boilerplate at the top and bottom of a text
func StripHeaders(raw string) string {
	lines := strings.Split(crlf.Replace(gen.Purgechars(invisibles, raw)), "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var out []string
	kept := 0
	legalese := false

	for _, l := range lines {
		// the header may announce its end more than once: start over each time
		if kept <= vv.HEADERLINES && startswithany(l, vv.TextStartMarkers) {
			out = out[:0]
			continue
		}

		if kept >= vv.FOOTERLINES && startswithany(l, vv.TextEndMarkers) {
			break
		}

		if startswithany(l, vv.LegaleseStartMarkers) {
			legalese = true
			continue
		} else if startswithany(l, vv.LegaleseEndMarkers) {
			legalese = false
			continue
		}

		if !legalese {
			out = append(out, l)
			kept++
		}
	}
	return strings.Join(out, "\n")
}

func startswithany(l string, markers []string) bool {
	for _, m := range markers {
		if strings.HasPrefix(l, m) {
			return true
		}
	}
	return false
}

// Clean - undo the hard wrapping and keep only paragraphs of prose
func Clean(text string) string {
	text = manybreaks.ReplaceAllString(unwrap(text), paragrapher)

	var kept []string
	for _, p := range strings.Split(text, paragrapher) {
		// a blank line left over from the header sticks to the first paragraph
		p = strings.Trim(p, "\n")
		if discard.MatchString(p) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, paragrapher)
}

// unwrap - a lone newline between two other characters becomes a space
func unwrap(text string) string {
	r := []rune(text)
	u := make([]rune, len(r))
	for i := range r {
		u[i] = r[i]
		if r[i] == '\n' && i > 0 && i < len(r)-1 && r[i-1] != '\n' && r[i+1] != '\n' {
			u[i] = ' '
		}
	}
	return string(u)
}
