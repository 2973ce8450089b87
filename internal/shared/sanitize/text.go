// Package sanitize cleans user-supplied text before it is stored: markup is
// stripped, whitespace normalized and Persian text brought to NFC form.
package sanitize

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var strict = bluemonday.StrictPolicy()

// Text cleans a single-line field. Tags are removed, every run of whitespace
// becomes a single space and the result is trimmed.
func Text(s string) string {
	return strings.Join(strings.Fields(stripTags(s)), " ")
}

// Multiline cleans a free-text field while keeping its line breaks.
func Multiline(s string) string {
	lines := strings.Split(strings.ReplaceAll(stripTags(s), "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func stripTags(s string) string {
	// bluemonday escapes entities in what it keeps; stored text stays unescaped.
	return norm.NFC.String(html.UnescapeString(strict.Sanitize(s)))
}

var digitFolder = runes.Map(func(r rune) rune {
	switch {
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	}
	return r
})

// FoldDigits rewrites Persian and Arabic-Indic digits as ASCII digits.
func FoldDigits(s string) string {
	out, _, err := transform.String(digitFolder, s)
	if err != nil {
		return s
	}
	return out
}

// Digits keeps only the decimal digits of s after folding, so "۱۲٬۵۰۰ ریال" becomes "12500".
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, FoldDigits(s))
}
