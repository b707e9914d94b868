package extract

import (
	"strings"

	"github.com/MausamRakse/Physician-Notetaker/internal/textutil"
)

// extractKeyPhrases condenses every sentence touching a medical keyword
// into a short phrase of its content words, in sentence order.
func (s *service) extractKeyPhrases(text string) []string {
	kw := s.rules.Keywords
	medical := s.medicalKeywords()

	stop := make(map[string]struct{}, len(kw.Stopwords))
	for _, w := range kw.Stopwords {
		stop[w] = struct{}{}
	}

	phrases := make([]string, 0, kw.MaxPhrases)
	for _, sent := range s.splitter.Split(text) {
		if len(phrases) >= kw.MaxPhrases {
			break
		}
		if !textutil.ContainsAny(sent, medical) {
			continue
		}

		var important []string
		for _, w := range textutil.Words(sent) {
			if len(important) >= kw.MaxPhraseWords {
				break
			}
			if len(w) < kw.MinWordLen {
				continue
			}
			if _, isStop := stop[strings.ToLower(w)]; isStop {
				continue
			}
			important = append(important, w)
		}

		if phrase := strings.Join(important, " "); len(phrase) > kw.MinPhraseLen {
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}

func (s *service) medicalKeywords() []string {
	ex := s.rules.Extraction
	out := make([]string, 0,
		len(ex.SymptomKeywords)+len(ex.TreatmentKeywords)+len(ex.DiagnosisKeywords)+len(ex.PrognosisKeywords))
	out = append(out, ex.SymptomKeywords...)
	out = append(out, ex.TreatmentKeywords...)
	out = append(out, ex.DiagnosisKeywords...)
	out = append(out, ex.PrognosisKeywords...)
	return out
}
