// Package normalize canonicalizes uploaded file names
// Pipeline order
// 1 drop control runes and invalid UTF-8
// 2 keep the last path element for both slash styles
// 3 Unicode NFKD decomposition
// 4 Case folding
// 5 Remove zero-width and combining marks
// 6 Width fold fullwidth to ASCII then recompose as NFC
// 7 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
			norm.NFC,
		)
	},
}

// FileName returns the canonical form of a client supplied file name
// two names that differ only in case, width, accents or spacing map to the same value
func FileName(s string) string {
	s = Sanitize(s)
	if s == "" {
		return ""
	}
	s = baseName(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(ns)
}

// Extension returns the lower case extension of a normalized name without the dot
// dotfiles like ".env" have no extension
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// Title renders a snake or kebab case token as words, "form_scan" becomes "Form Scan"
func Title(token string) string {
	words := strings.FieldsFunc(token, func(r rune) bool { return r == '_' || r == '-' || unicode.IsSpace(r) })
	// casers keep state so each call gets its own
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func baseName(s string) string {
	s = strings.TrimRight(s, `/\`)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		return s[i+1:]
	}
	return s
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
