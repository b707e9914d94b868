// Package textutil provides the small text primitives shared by the
// extraction services: sentence segmentation, word splitting and a few
// string normalizers.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/neurosnap/sentences/english"
	sentences "gopkg.in/neurosnap/sentences.v1"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Splitter segments text into sentences using the trained English Punkt
// model. A nil Splitter still works, degrading to a terminator-based split
// so the regex and keyword strategies never lose their sentence view.
type Splitter struct {
	tok *sentences.DefaultSentenceTokenizer
}

// NewSplitter loads the English sentence tokenizer.
func NewSplitter() (*Splitter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &Splitter{tok: tok}, nil
}

// Split returns the trimmed, non-empty sentences of text.
func (s *Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if s == nil || s.tok == nil {
		return naiveSplit(text)
	}
	raw := s.tok.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func naiveSplit(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '?' || r == '!' {
			if t := strings.TrimSpace(text[start : i+1]); t != "" {
				out = append(out, t)
			}
			start = i + 1
		}
	}
	if t := strings.TrimSpace(text[start:]); t != "" {
		out = append(out, t)
	}
	return out
}

// CleanText collapses runs of whitespace into single spaces.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Words splits text on whitespace and strips surrounding punctuation,
// keeping apostrophes and hyphens inside words intact.
func Words(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Truncate returns at most n runes of text.
func Truncate(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// Capitalize upper-cases the first letter of text.
func Capitalize(text string) string {
	if text == "" {
		return text
	}
	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:]
}

// ContainsAny reports whether any needle occurs in text. Matching is
// case-insensitive and substring-based, so "concern" also hits "concerned".
func ContainsAny(text string, needles []string) bool {
	lower := strings.ToLower(text)
	for _, n := range needles {
		if n != "" && strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// CountContained counts how many needles occur in text, case-insensitively.
// Each needle counts at most once regardless of repetition.
func CountContained(text string, needles []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, n := range needles {
		if n != "" && strings.Contains(lower, strings.ToLower(n)) {
			count++
		}
	}
	return count
}
