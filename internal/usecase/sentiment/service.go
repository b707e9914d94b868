package sentiment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	apperrors "github.com/MausamRakse/Physician-Notetaker/errors"
	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
	"github.com/MausamRakse/Physician-Notetaker/internal/rules"
	"github.com/MausamRakse/Physician-Notetaker/internal/textutil"
)

// Classifier produces a raw label and a confidence score for a piece of
// text. pkg/ai.SentimentClient is the hosted implementation; the service
// works without one and falls back to lexicon scoring. Implementations
// mark transient outages with entities.ErrModelUnavailable (or the errors
// package's MODEL_UNAVAILABLE code) to get retried before the fallback.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, float64, error)
}

// Service classifies patient sentiment and communicative intent.
type Service interface {
	// AnalyzeText classifies a raw piece of patient speech.
	AnalyzeText(ctx context.Context, text string) *entities.SentimentResult

	// AnalyzeTranscript classifies the patient side of a conversation,
	// falling back to the whole conversation when speaker labels are
	// missing.
	AnalyzeTranscript(ctx context.Context, t *entities.Transcript) *entities.SentimentResult
}

type service struct {
	rules      rules.SentimentRules
	classifier Classifier
	logger     *zap.Logger
}

// NewService creates a sentiment service. classifier and logger may be nil.
func NewService(r rules.SentimentRules, classifier Classifier, logger *zap.Logger) Service {
	return &service{
		rules:      r,
		classifier: classifier,
		logger:     logger,
	}
}

func (s *service) AnalyzeText(ctx context.Context, text string) *entities.SentimentResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.NewSentimentResult()
	}

	result := &entities.SentimentResult{
		Sentiment: s.classifySentiment(ctx, text),
		Intent:    s.detectIntent(text),
	}

	if s.logger != nil {
		s.logger.Info("✅ Sentiment analyzed",
			zap.String("sentiment", string(result.Sentiment)),
			zap.String("intent", string(result.Intent)),
		)
	}
	return result
}

func (s *service) AnalyzeTranscript(ctx context.Context, t *entities.Transcript) *entities.SentimentResult {
	if t.IsEmpty() {
		return entities.NewSentimentResult()
	}

	text := t.PatientText()
	if strings.TrimSpace(text) == "" {
		text = t.FullText()
	}

	if s.logger != nil {
		s.logger.Info("🤖 Analyzing patient sentiment",
			zap.String("transcript_id", t.ID.String()),
		)
	}
	return s.AnalyzeText(ctx, text)
}

// classifySentiment prefers the hosted classifier and falls back to
// lexicon scoring when the model is missing, unreachable, unsure, or
// speaks a label scheme we don't recognize.
func (s *service) classifySentiment(ctx context.Context, text string) entities.Sentiment {
	if s.classifier != nil {
		if sentiment, ok := s.classifyWithModel(ctx, text); ok {
			return sentiment
		}
	}
	return s.classifyWithLexicon(text)
}

func (s *service) classifyWithModel(ctx context.Context, text string) (entities.Sentiment, bool) {
	input := textutil.Truncate(text, s.rules.MaxModelInput)

	var label string
	var confidence float64

	classifyFn := func() error {
		var err error
		label, confidence, err = s.classifier.Classify(ctx, input)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Sentiment classifier call failed",
					zap.Error(err),
				)
			}
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	// Retry logic with exponential backoff
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(classifyFn, backoff.WithContext(bo, ctx)); err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Sentiment model unavailable, using lexicon fallback",
				zap.Error(err),
			)
		}
		return "", false
	}

	if confidence < s.rules.MinConfidence {
		if s.logger != nil {
			s.logger.Warn("⚠️ Classifier verdict below confidence floor, using lexicon fallback",
				zap.String("label", label),
				zap.Float64("confidence", confidence),
				zap.Error(entities.ErrLowConfidence),
			)
		}
		return "", false
	}

	switch {
	case matchesLabel(label, s.rules.PositiveLabels):
		if textutil.ContainsAny(text, s.rules.ReliefCues) {
			return entities.SentimentReassured, true
		}
		return entities.SentimentNeutral, true
	case matchesLabel(label, s.rules.NegativeLabels):
		if textutil.ContainsAny(text, s.rules.AnxietyCues) {
			return entities.SentimentAnxious, true
		}
		return entities.SentimentNeutral, true
	}

	if s.logger != nil {
		s.logger.Warn("⚠️ Classifier returned unrecognized label, using lexicon fallback",
			zap.String("label", label),
		)
	}
	return "", false
}

// classifyWithLexicon counts anxiety and reassurance cues; a strict
// majority decides, a tie stays Neutral.
func (s *service) classifyWithLexicon(text string) entities.Sentiment {
	anxious := textutil.CountContained(text, s.rules.AnxietyLexicon)
	reassured := textutil.CountContained(text, s.rules.ReassuranceLexicon)

	switch {
	case anxious > reassured:
		return entities.SentimentAnxious
	case reassured > anxious:
		return entities.SentimentReassured
	}
	return entities.SentimentNeutral
}

// detectIntent scores every intent lexicon and keeps the best. Only a
// strictly higher score displaces the incumbent, so on a tie the earlier
// lexicon wins.
func (s *service) detectIntent(text string) entities.Intent {
	best := entities.IntentGeneralInquiry
	bestScore := 0
	for _, lex := range s.rules.Intents {
		if score := textutil.CountContained(text, lex.Keywords); score > bestScore {
			best = lex.Intent
			bestScore = score
		}
	}
	return best
}

func matchesLabel(label string, labels []string) bool {
	for _, l := range labels {
		if strings.EqualFold(label, l) {
			return true
		}
	}
	return false
}

// retryable reports whether another attempt could plausibly succeed.
// Outages heal; malformed responses and client-side rejections do not.
func retryable(err error) bool {
	if errors.Is(err, entities.ErrModelUnavailable) {
		return true
	}
	var appErr apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.ErrorCode_MODEL_UNAVAILABLE, apperrors.ErrorCode_EXTERNAL_API_FAILED:
			return true
		}
	}
	return false
}
