package extract

import (
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
	"github.com/MausamRakse/Physician-Notetaker/internal/rules"
	"github.com/MausamRakse/Physician-Notetaker/internal/textutil"
	"github.com/MausamRakse/Physician-Notetaker/pkg/nlp"
)

// Tagger is the slice of the NLP toolkit the extractor needs. A nil Tagger
// disables entity and token matching; the pattern and keyword strategies
// still run, so extraction degrades instead of failing.
type Tagger interface {
	DetectEntities(text string) ([]nlp.Entity, error)
	Tokens(text string) ([]nlp.Token, error)
}

// Service defines the interface for medical detail extraction
type Service interface {
	Extract(transcript *entities.Transcript) *entities.MedicalSummary
}

type service struct {
	rules    *rules.Set
	tagger   Tagger
	splitter *textutil.Splitter
	logger   *zap.Logger
}

// NewService creates a new extraction service
func NewService(ruleSet *rules.Set, tagger Tagger, splitter *textutil.Splitter, logger *zap.Logger) Service {
	return &service{
		rules:    ruleSet,
		tagger:   tagger,
		splitter: splitter,
		logger:   logger,
	}
}

// document carries the per-transcript views every field extractor reads.
// Symptoms and current status are resolved against the patient's own words;
// physician phrasing ("are you still experiencing pain?") would otherwise
// leak into them.
type document struct {
	fullText      string
	patientText   string
	entities      []nlp.Entity
	fullTokens    []nlp.Token
	patientTokens []nlp.Token
}

func (s *service) Extract(transcript *entities.Transcript) *entities.MedicalSummary {
	summary := entities.NewMedicalSummary()
	if transcript == nil || transcript.IsEmpty() {
		return summary
	}

	doc := s.analyze(transcript)

	if s.logger != nil {
		s.logger.Info("🤖 Extracting medical details",
			zap.String("transcript_id", transcript.ID.String()),
			zap.Int("utterances", len(transcript.Utterances)))
	}

	summary.PatientName = s.extractPatientName(doc)
	summary.Symptoms = s.extractSymptoms(doc)
	summary.Diagnosis = s.extractDiagnosis(doc)
	summary.Treatment = s.extractTreatments(doc)
	summary.CurrentStatus = s.extractCurrentStatus(doc)
	summary.Prognosis = s.extractPrognosis(doc)
	summary.Keywords = s.extractKeyPhrases(doc.fullText)

	return summary
}

func (s *service) analyze(transcript *entities.Transcript) *document {
	doc := &document{
		fullText:    textutil.CleanText(transcript.FullText()),
		patientText: textutil.CleanText(transcript.PatientText()),
	}
	if doc.patientText == "" {
		doc.patientText = doc.fullText
	}
	if s.tagger == nil {
		return doc
	}

	var err error
	doc.entities, err = s.tagger.DetectEntities(doc.fullText)
	if err == nil {
		doc.fullTokens, err = s.tagger.Tokens(doc.fullText)
	}
	if err == nil {
		doc.patientTokens, err = s.tagger.Tokens(doc.patientText)
	}
	if err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Tagger unavailable, continuing with pattern extraction", zap.Error(err))
	}
	return doc
}

var (
	honorificPrefix = regexp.MustCompile(`^(?:Ms\.|Mr\.|Mrs\.|Dr\.)\s+`)
	properName      = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// extractPatientName prefers a recognized person entity and falls back to
// honorific patterns. Honorifics are stripped so both paths agree on the
// surname form.
func (s *service) extractPatientName(doc *document) string {
	for _, ent := range doc.entities {
		if ent.Label != "PERSON" {
			continue
		}
		name := honorificPrefix.ReplaceAllString(strings.TrimSpace(ent.Text), "")
		if properName.MatchString(name) {
			return name
		}
	}
	for _, re := range s.rules.Extraction.NamePatterns {
		if m := re.FindStringSubmatch(doc.fullText); m != nil {
			return m[1]
		}
	}
	return entities.NotSpecified
}

// extractDiagnosis walks the strategy ladder: explicit diagnosis phrasing,
// then condition keywords with their sentence context, then context around
// a condition token the matcher recognized.
func (s *service) extractDiagnosis(doc *document) string {
	for _, re := range s.rules.Extraction.DiagnosisPatterns {
		m := re.FindStringSubmatch(doc.fullText)
		if m == nil {
			continue
		}
		// innermost capture carries the condition itself
		for i := len(m) - 1; i >= 1; i-- {
			if v := strings.TrimSpace(m[i]); v != "" {
				return textutil.Capitalize(v)
			}
		}
	}

	lower := strings.ToLower(doc.fullText)
	for _, keyword := range s.rules.Extraction.ConditionKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		if ctx := s.conditionContext(doc.fullText, keyword); ctx != "" {
			return textutil.Capitalize(ctx)
		}
	}

	for _, span := range s.tokenSpans(doc.fullTokens, rules.RuleDiagnosis) {
		if ctx := s.conditionContext(doc.fullText, span); ctx != "" {
			return textutil.Capitalize(ctx)
		}
	}

	return entities.NotSpecified
}

// conditionContext returns a short word window around the first exact-word
// occurrence of keyword.
func (s *service) conditionContext(text, keyword string) string {
	radius := s.rules.Extraction.ContextRadius
	for _, sent := range s.splitter.Split(text) {
		if !strings.Contains(strings.ToLower(sent), keyword) {
			continue
		}
		words := strings.Fields(sent)
		for i, w := range words {
			if strings.ToLower(trimWord(w)) != keyword {
				continue
			}
			start := i - radius
			if start < 0 {
				start = 0
			}
			end := i + radius + 1
			if end > len(words) {
				end = len(words)
			}
			return strings.TrimRight(strings.Join(words[start:end], " "), ".,!?;:")
		}
	}
	return ""
}

func (s *service) extractCurrentStatus(doc *document) string {
	for _, re := range s.rules.Extraction.StatusPatterns {
		if m := re.FindStringSubmatch(doc.patientText); m != nil {
			return textutil.Capitalize(strings.TrimSpace(m[1]))
		}
	}
	for _, re := range s.rules.Extraction.StatusFallbackPatterns {
		if m := re.FindStringSubmatch(doc.patientText); m != nil {
			return textutil.Capitalize(strings.TrimSpace(m[1]))
		}
	}
	return entities.NotSpecified
}

var recoveryLead = regexp.MustCompile(`(?i)^full\s+recovery\s+((?:within|in)\s+.+)$`)

func (s *service) extractPrognosis(doc *document) string {
	for _, re := range s.rules.Extraction.PrognosisPatterns {
		if m := re.FindStringSubmatch(doc.fullText); m != nil {
			return normalizePrognosis(strings.TrimSpace(m[1]))
		}
	}
	if m := s.rules.Extraction.RecoveryTimePattern.FindStringSubmatch(doc.fullText); m != nil {
		return normalizePrognosis(strings.TrimSpace(m[1]))
	}

	lower := strings.ToLower(doc.fullText)
	if strings.Contains(lower, "full recovery") {
		return "Full recovery expected"
	}
	if strings.Contains(lower, "improving") || strings.Contains(lower, "better") {
		return "Condition improving"
	}
	return entities.NotSpecified
}

// normalizePrognosis rewrites "full recovery within X" to the explicit
// "Full recovery expected within X" form and capitalizes everything else.
func normalizePrognosis(phrase string) string {
	if m := recoveryLead.FindStringSubmatch(phrase); m != nil {
		return "Full recovery expected " + m[1]
	}
	return textutil.Capitalize(phrase)
}

// tokenSpans returns the lowercased text of every token run matching a rule
// with the given label.
func (s *service) tokenSpans(tokens []nlp.Token, label rules.RuleLabel) []string {
	if len(tokens) == 0 {
		return nil
	}
	var spans []string
	for _, rule := range s.rules.Extraction.TokenRules {
		if rule.Label != label || len(rule.Steps) == 0 {
			continue
		}
		for i := 0; i+len(rule.Steps) <= len(tokens); i++ {
			if !stepsMatch(rule.Steps, tokens[i:i+len(rule.Steps)]) {
				continue
			}
			parts := make([]string, 0, len(rule.Steps))
			for _, tok := range tokens[i : i+len(rule.Steps)] {
				parts = append(parts, strings.ToLower(tok.Text))
			}
			spans = append(spans, strings.Join(parts, " "))
		}
	}
	return spans
}

func stepsMatch(steps []rules.TokenStep, tokens []nlp.Token) bool {
	for i, step := range steps {
		if !stepMatches(step, tokens[i]) {
			return false
		}
	}
	return true
}

func stepMatches(step rules.TokenStep, tok nlp.Token) bool {
	if step.IsDigit {
		return isDigits(tok.Text)
	}
	if len(step.LowerIn) == 0 {
		return true
	}
	lower := strings.ToLower(tok.Text)
	for _, want := range step.LowerIn {
		if lower == want {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func trimWord(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
