// Package rules holds the keyword dictionaries, pattern libraries and
// tunables the extraction pipeline runs on. A Set is built once at startup
// (usually via Default), validated, and passed explicitly to the services
// that need it; nothing mutates a Set after construction, so one Set is
// safe to share across concurrent pipelines.
package rules

import (
	"regexp"

	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
	"github.com/MausamRakse/Physician-Notetaker/pkg/validator"
)

// RuleLabel names the summary field a token rule feeds.
type RuleLabel string

const (
	RuleSymptom   RuleLabel = "symptom"
	RuleTreatment RuleLabel = "treatment"
	RuleDiagnosis RuleLabel = "diagnosis"
)

// TokenStep matches a single token. An empty LowerIn with IsDigit false
// matches any token.
type TokenStep struct {
	LowerIn []string // allowed lowercased token texts
	IsDigit bool     // token must be all digits
}

// TokenRule is an ordered sequence of token steps; a span of consecutive
// tokens satisfying every step is a candidate for the labeled field.
type TokenRule struct {
	Label RuleLabel   `validate:"required"`
	Steps []TokenStep `validate:"min=1"`
}

// IntentLexicon scores one intent label. Lexicons are tried in slice
// order, and on a tied score the earlier lexicon wins.
type IntentLexicon struct {
	Intent   entities.Intent `validate:"required"`
	Keywords []string        `validate:"min=1,dive,required"`
}

// ExtractionRules drive the medical-summary extractor.
type ExtractionRules struct {
	SymptomKeywords   []string `validate:"min=1,dive,required"`
	TreatmentKeywords []string `validate:"min=1,dive,required"`
	DiagnosisKeywords []string `validate:"min=1,dive,required"`
	PrognosisKeywords []string `validate:"min=1,dive,required"`

	// ConditionKeywords are the bare condition terms the keyword fallback
	// recognizes when no diagnosis phrase matched.
	ConditionKeywords []string `validate:"min=1,dive,required"`

	// BodyParts pair with pain mentions to form canonical symptoms.
	BodyParts []string `validate:"min=1,dive,required"`

	TokenRules []TokenRule `validate:"min=1"`

	NamePatterns      []*regexp.Regexp `validate:"min=1,dive,required"`
	SymptomPatterns   []*regexp.Regexp `validate:"min=1,dive,required"`
	DiagnosisPatterns []*regexp.Regexp `validate:"min=1,dive,required"`
	PrognosisPatterns []*regexp.Regexp `validate:"min=1,dive,required"`
	StatusPatterns    []*regexp.Regexp `validate:"min=1,dive,required"`

	// StatusFallbackPatterns catch first-person phrasing when no direct
	// status statement matched.
	StatusFallbackPatterns []*regexp.Regexp `validate:"min=1,dive,required"`

	// SessionPatterns capture a session count next to a therapy mention;
	// the count is the first capture group, the therapy kind the second.
	SessionPatterns   []*regexp.Regexp `validate:"min=1,dive,required"`
	TherapyPattern    *regexp.Regexp   `validate:"required"`
	MedicationPattern *regexp.Regexp   `validate:"required"`

	// RecoveryTimePattern backs the prognosis context fallback: a full
	// recovery mention carrying an explicit time frame.
	RecoveryTimePattern *regexp.Regexp `validate:"required"`

	// NumberWords maps spelled-out counts onto digits before treatment
	// canonicalization.
	NumberWords map[string]string `validate:"min=1"`

	// ContextRadius is the word window taken around a condition keyword
	// by the context fallback.
	ContextRadius int `validate:"gt=0"`
}

// SentimentRules drive sentiment and intent classification.
type SentimentRules struct {
	// PositiveLabels and NegativeLabels translate raw classifier output;
	// both plain and index-style label schemes appear in the wild.
	PositiveLabels []string `validate:"min=1,dive,required"`
	NegativeLabels []string `validate:"min=1,dive,required"`

	// ReliefCues turn a positive classification into Reassured; AnxietyCues
	// turn a negative one into Anxious. Without a cue the label maps to
	// Neutral.
	ReliefCues  []string `validate:"min=1,dive,required"`
	AnxietyCues []string `validate:"min=1,dive,required"`

	// AnxietyLexicon and ReassuranceLexicon back the rule-based fallback
	// scoring when no classifier verdict is usable.
	AnxietyLexicon     []string `validate:"min=1,dive,required"`
	ReassuranceLexicon []string `validate:"min=1,dive,required"`

	Intents []IntentLexicon `validate:"min=1"`

	// MinConfidence is the classifier score below which the verdict is
	// discarded in favor of the lexicon fallback.
	MinConfidence float64 `validate:"gte=0,lte=1"`

	// MaxModelInput bounds the rune count sent to the classifier.
	MaxModelInput int `validate:"gt=0"`
}

// SOAPRules drive note composition.
type SOAPRules struct {
	TimelinePatterns []*regexp.Regexp `validate:"min=1,dive,required"`

	// FindingPatterns capture concrete exam findings; ExamPatterns are the
	// generic fallback used when no concrete finding matched.
	FindingPatterns []*regexp.Regexp `validate:"min=1,dive,required"`
	ExamPatterns    []*regexp.Regexp `validate:"min=1,dive,required"`

	ObservationKeywords []string `validate:"min=1,dive,required"`
	MaxObservations     int      `validate:"gt=0"`
	MaxObservationLen   int      `validate:"gt=0"`

	SevereWords    []string `validate:"min=1,dive,required"`
	MildWords      []string `validate:"min=1,dive,required"`
	ModerateWords  []string `validate:"min=1,dive,required"`
	ImprovingWords []string `validate:"min=1,dive,required"`

	// RecoveryCues in the prognosis downgrade severity to "Mild, improving"
	// the same way an improving current status does.
	RecoveryCues []string `validate:"min=1,dive,required"`

	FollowUpPatterns []*regexp.Regexp `validate:"min=1,dive,required"`

	// FollowUpFullRecovery and FollowUpDefault are the canned instructions
	// used when the transcript states none.
	FollowUpFullRecovery string `validate:"required"`
	FollowUpDefault      string `validate:"required"`

	// ComplaintCueWords gate the chief-complaint fallback on the first
	// patient sentence.
	ComplaintCueWords    []string `validate:"min=1,dive,required"`
	MaxComplaintSymptoms int      `validate:"gt=0"`
	MaxComplaintLen      int      `validate:"gt=0"`
}

// KeywordRules drive key-phrase extraction for the summary's Keywords field.
type KeywordRules struct {
	Stopwords      []string `validate:"min=1,dive,required"`
	MaxPhrases     int      `validate:"gt=0"`
	MaxPhraseWords int      `validate:"gt=0"`
	MinPhraseLen   int      `validate:"gt=0"`
	MinWordLen     int      `validate:"gt=0"`
}

// Set is the complete rule configuration for one pipeline.
type Set struct {
	Extraction ExtractionRules `validate:"required"`
	Sentiment  SentimentRules  `validate:"required"`
	SOAP       SOAPRules       `validate:"required"`
	Keywords   KeywordRules    `validate:"required"`
}

// Validate checks the set for structural completeness.
func (s *Set) Validate() error {
	return validator.New().Validate(s)
}
