package extract

import (
	"sort"
	"strings"

	"github.com/MausamRakse/Physician-Notetaker/internal/rules"
	"github.com/MausamRakse/Physician-Notetaker/internal/textutil"
)

// extractSymptoms merges the three symptom strategies over the patient's
// dialogue: token rules, fixed-form patterns, and the body-part/pain
// pairing scan. Candidates are canonicalized to lowercase, generic mentions
// subsumed by more specific ones are dropped, and the survivors come back
// in order of first mention.
func (s *service) extractSymptoms(doc *document) []string {
	ex := s.rules.Extraction
	seen := make(map[string]struct{})
	add := func(c string) {
		c = textutil.CleanText(strings.ToLower(c))
		if c != "" {
			seen[c] = struct{}{}
		}
	}

	for _, span := range s.tokenSpans(doc.patientTokens, rules.RuleSymptom) {
		add(span)
	}

	for _, re := range ex.SymptomPatterns {
		for _, m := range re.FindAllString(doc.patientText, -1) {
			add(m)
		}
	}

	// A sentence mentioning pain names its body parts: "pain in my neck and
	// back" carries both neck pain and back pain.
	for _, sent := range s.splitter.Split(doc.patientText) {
		lower := strings.ToLower(sent)
		if !textutil.ContainsAny(lower, ex.SymptomKeywords) {
			continue
		}
		if !strings.Contains(lower, "pain") {
			continue
		}
		for _, part := range ex.BodyParts {
			if strings.Contains(lower, part) {
				add(part + " pain")
			}
		}
	}

	return orderCandidates(subsume(seen), doc.patientText)
}

// subsume drops every candidate that is a substring of another, so "pain"
// gives way to "back pain".
func subsume(seen map[string]struct{}) []string {
	kept := make([]string, 0, len(seen))
	for c := range seen {
		contained := false
		for other := range seen {
			if other != c && strings.Contains(other, c) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, c)
		}
	}
	return kept
}

// orderCandidates sorts candidates by the position of their first mention.
// Candidates never seen verbatim (synthesized ones like "neck pain" from
// "neck and back pain") anchor on their leading word.
func orderCandidates(cands []string, text string) []string {
	lower := strings.ToLower(text)
	sort.SliceStable(cands, func(i, j int) bool {
		pi, pj := candidatePos(lower, cands[i]), candidatePos(lower, cands[j])
		if pi != pj {
			return pi < pj
		}
		return cands[i] < cands[j]
	})
	return cands
}

func candidatePos(lower, candidate string) int {
	if pos := strings.Index(lower, candidate); pos >= 0 {
		return pos
	}
	if fields := strings.Fields(candidate); len(fields) > 0 {
		if pos := strings.Index(lower, fields[0]); pos >= 0 {
			return pos
		}
	}
	return len(lower)
}
