package resume

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

var (
	reBlanks   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n{3,}`)
)

// extractTextFromPDF joins the plain text of every page with blank lines.
// The pdf package panics on some malformed inputs, so panics are turned
// into ErrPDFExtraction as well.
func extractTextFromPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrPDFExtraction, r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFExtraction, err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrPDFExtraction, i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
	}
	return normalizeWhitespace(sb.String()), nil
}

func readPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrTextRead)
	}
	return string(data), nil
}

func normalizeWhitespace(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, " ", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Truncate caps text at MaxResumeChars characters and reports whether it cut.
func Truncate(text string) (string, bool) {
	if utf8.RuneCountInString(text) <= MaxResumeChars {
		return text, false
	}
	n := 0
	for i := range text {
		if n == MaxResumeChars {
			return text[:i], true
		}
		n++
	}
	return text, false
}
