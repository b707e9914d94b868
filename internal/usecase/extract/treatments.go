package extract

import (
	"sort"
	"strings"

	"github.com/MausamRakse/Physician-Notetaker/internal/rules"
	"github.com/MausamRakse/Physician-Notetaker/internal/textutil"
)

type treatmentKind int

const (
	treatmentSession treatmentKind = iota
	treatmentSessionBare
	treatmentTherapy
	treatmentMedication
)

type treatmentCandidate struct {
	kind treatmentKind
	text string
	pos  int
}

// extractTreatments canonicalizes every treatment mention: counted therapy
// sessions ("ten sessions of physiotherapy" -> "10 physiotherapy sessions"),
// therapy kinds, and medication mentions, which all collapse onto
// "Painkillers". Results keep first-mention order.
func (s *service) extractTreatments(doc *document) []string {
	ex := s.rules.Extraction
	var cands []treatmentCandidate

	for _, re := range ex.SessionPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(doc.fullText, -1) {
			count := normalizeCount(doc.fullText[m[2]:m[3]], ex.NumberWords)
			kind := textutil.CleanText(strings.ToLower(doc.fullText[m[4]:m[5]]))
			cands = append(cands, treatmentCandidate{
				kind: treatmentSession,
				text: count + " " + kind + " sessions",
				pos:  m[0],
			})
		}
	}

	for _, m := range ex.TherapyPattern.FindAllStringIndex(doc.fullText, -1) {
		cands = append(cands, treatmentCandidate{
			kind: treatmentTherapy,
			text: textutil.Capitalize(textutil.CleanText(strings.ToLower(doc.fullText[m[0]:m[1]]))),
			pos:  m[0],
		})
	}

	for _, m := range ex.MedicationPattern.FindAllStringIndex(doc.fullText, -1) {
		cands = append(cands, treatmentCandidate{
			kind: treatmentMedication,
			text: "Painkillers",
			pos:  m[0],
		})
	}

	lower := strings.ToLower(doc.fullText)
	for _, span := range s.tokenSpans(doc.fullTokens, rules.RuleTreatment) {
		if cand, ok := tokenTreatment(span, lower); ok {
			cands = append(cands, cand)
		}
	}

	return resolveTreatments(cands)
}

func normalizeCount(raw string, numberWords map[string]string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if digits, ok := numberWords[raw]; ok {
		return digits
	}
	return raw
}

// tokenTreatment maps a matched treatment token run onto its canonical
// candidate. Generic mentions ("treatment", "therapy") carry no content on
// their own and are skipped.
func tokenTreatment(span, lower string) (treatmentCandidate, bool) {
	pos := strings.Index(lower, span)
	if pos < 0 {
		pos = len(lower)
	}
	fields := strings.Fields(span)
	switch {
	case len(fields) == 2 && isDigits(fields[0]):
		return treatmentCandidate{kind: treatmentSessionBare, text: fields[0] + " sessions", pos: pos}, true
	case strings.Contains(span, "physiotherapy"):
		return treatmentCandidate{kind: treatmentTherapy, text: "Physiotherapy", pos: pos}, true
	case strings.Contains(span, "painkiller"),
		strings.Contains(span, "medication"),
		strings.Contains(span, "medicine"):
		return treatmentCandidate{kind: treatmentMedication, text: "Painkillers", pos: pos}, true
	}
	return treatmentCandidate{}, false
}

// resolveTreatments suppresses candidates a counted session mention already
// covers, deduplicates, and orders by first mention.
func resolveTreatments(cands []treatmentCandidate) []string {
	var sessionTexts []string
	for _, c := range cands {
		if c.kind == treatmentSession {
			sessionTexts = append(sessionTexts, strings.ToLower(c.text))
		}
	}

	covered := func(c treatmentCandidate) bool {
		switch c.kind {
		case treatmentSessionBare:
			return len(sessionTexts) > 0
		case treatmentTherapy:
			needle := strings.ToLower(c.text)
			for _, st := range sessionTexts {
				if strings.Contains(st, needle) {
					return true
				}
			}
		}
		return false
	}

	best := make(map[string]treatmentCandidate)
	for _, c := range cands {
		if covered(c) {
			continue
		}
		key := strings.ToLower(c.text)
		if prev, ok := best[key]; !ok || c.pos < prev.pos {
			best[key] = c
		}
	}

	ordered := make([]treatmentCandidate, 0, len(best))
	for _, c := range best {
		ordered = append(ordered, c)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].pos != ordered[j].pos {
			return ordered[i].pos < ordered[j].pos
		}
		return ordered[i].text < ordered[j].text
	})

	out := make([]string, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, c.text)
	}
	return out
}
