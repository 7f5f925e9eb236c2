// Package nlp holds the small amount of text matching the service does
// locally: deciding whether a résumé already mentions a keyword.
package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}+#]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
	folder    = cases.Fold()
)

// Normalize case-folds s, turns everything except letters, digits, '+'
// and '#' into spaces and collapses runs of spaces. "C++" and "C#" survive.
func Normalize(s string) string {
	s = folder.String(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPhrase reports whether the normalized phrase occurs in the
// normalized text as whole words: "rest api" matches "... rest api ..."
// but not "... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	return strings.Contains(" "+normalizedText+" ", " "+normalizedPhrase+" ")
}

// aliases groups spellings recruiters and résumés use interchangeably.
// Every entry names the same thing unambiguously: no group maps a term to
// a short token that is also an ordinary word ("go", "rest", "ui").
var aliases = [][]string{
	{"ms excel", "microsoft excel", "advanced excel"},
	{"ms word", "microsoft word"},
	{"power bi", "powerbi"},
	{"postgres", "postgresql"},
	{"k8s", "kubernetes"},
	{"node js", "nodejs"},
	{"rest api", "restful api", "rest apis", "restful apis"},
	{"ci cd", "cicd"},
	{"gst", "goods and services tax"},
	{"ui ux", "ux ui"},
}

var aliasIndex = func() map[string][]string {
	idx := make(map[string][]string)
	for _, group := range aliases {
		for _, a := range group {
			idx[a] = group
		}
	}
	return idx
}()

// Variants returns the normalized spellings of a keyword, the keyword
// itself first.
func Variants(keyword string) []string {
	base := Normalize(keyword)
	if base == "" {
		return []string{}
	}
	out := []string{base}
	for _, a := range aliasIndex[base] {
		if a != base {
			out = append(out, a)
		}
	}
	return out
}

// Mentions reports whether text contains the keyword or one of its variants.
func Mentions(text, keyword string) bool {
	return mentions(Normalize(text), keyword)
}

func mentions(normalizedText, keyword string) bool {
	for _, v := range Variants(keyword) {
		if ContainsPhrase(normalizedText, v) {
			return true
		}
	}
	return false
}

// Missing keeps the keywords text does not mention, in order and without
// duplicates. Blank keywords are dropped. The result is never nil.
func Missing(text string, keywords []string) []string {
	norm := Normalize(text)
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		key := Normalize(k)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if !mentions(norm, k) {
			out = append(out, strings.TrimSpace(k))
		}
	}
	return out
}
