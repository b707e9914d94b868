package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/MausamRakse/Physician-Notetaker/errors"
	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
	"github.com/MausamRakse/Physician-Notetaker/internal/rules"
)

// stubClassifier returns a canned verdict and records what it was asked.
type stubClassifier struct {
	label     string
	score     float64
	err       error
	calls     int
	lastInput string
}

func (s *stubClassifier) Classify(ctx context.Context, text string) (string, float64, error) {
	s.calls++
	s.lastInput = text
	if s.err != nil {
		return "", 0, s.err
	}
	return s.label, s.score, nil
}

func newTestService(c Classifier) Service {
	return NewService(rules.Default().Sentiment, c, nil)
}

func transcriptOf(utterances ...entities.Utterance) *entities.Transcript {
	return entities.NewTranscript(utterances)
}

func TestAnalyzeModelReassured(t *testing.T) {
	svc := newTestService(&stubClassifier{label: "POSITIVE", score: 0.99})

	got := svc.AnalyzeText(context.Background(), "That's a relief, thank you doctor.")
	if got.Sentiment != entities.SentimentReassured {
		t.Errorf("sentiment = %s, want Reassured", got.Sentiment)
	}
	if got.Intent != entities.IntentExpressingRelief {
		t.Errorf("intent = %s, want Expressing relief", got.Intent)
	}
}

func TestAnalyzeModelPositiveWithoutCue(t *testing.T) {
	svc := newTestService(&stubClassifier{label: "POSITIVE", score: 0.99})

	// positive but not reassurance: stays Neutral
	got := svc.AnalyzeText(context.Background(), "The weather is lovely today.")
	if got.Sentiment != entities.SentimentNeutral {
		t.Errorf("sentiment = %s, want Neutral", got.Sentiment)
	}
	if got.Intent != entities.IntentGeneralInquiry {
		t.Errorf("intent = %s, want General inquiry", got.Intent)
	}
}

func TestAnalyzeModelAnxious(t *testing.T) {
	svc := newTestService(&stubClassifier{label: "NEGATIVE", score: 0.99})

	got := svc.AnalyzeText(context.Background(), "I'm really worried about this pain")
	if got.Sentiment != entities.SentimentAnxious {
		t.Errorf("sentiment = %s, want Anxious", got.Sentiment)
	}
	if got.Intent != entities.IntentSeekingReassurance {
		t.Errorf("intent = %s, want Seeking reassurance", got.Intent)
	}
}

func TestAnalyzeLowConfidenceFallsBack(t *testing.T) {
	// POSITIVE would map to Neutral or Reassured; the lexicon verdict
	// Anxious proves the low-confidence result was discarded.
	svc := newTestService(&stubClassifier{label: "POSITIVE", score: 0.30})

	got := svc.AnalyzeText(context.Background(), "I'm worried about the tingling.")
	if got.Sentiment != entities.SentimentAnxious {
		t.Errorf("sentiment = %s, want lexicon fallback Anxious", got.Sentiment)
	}
}

func TestAnalyzeUnknownLabelFallsBack(t *testing.T) {
	svc := newTestService(&stubClassifier{label: "MIXED", score: 0.90})

	got := svc.AnalyzeText(context.Background(), "That's a relief!")
	if got.Sentiment != entities.SentimentReassured {
		t.Errorf("sentiment = %s, want lexicon fallback Reassured", got.Sentiment)
	}
}

func TestAnalyzeClassifierErrorFallsBack(t *testing.T) {
	stub := &stubClassifier{err: errors.New("connection refused")}
	svc := newTestService(stub)

	got := svc.AnalyzeText(context.Background(), "I'm really worried about this pain")
	if got.Sentiment != entities.SentimentAnxious {
		t.Errorf("sentiment = %s, want Anxious despite classifier failure", got.Sentiment)
	}
	if stub.calls != 1 {
		t.Errorf("classifier called %d times, want 1 (permanent errors must not retry)", stub.calls)
	}
}

func TestAnalyzeWithoutClassifier(t *testing.T) {
	svc := newTestService(nil)

	got := svc.AnalyzeText(context.Background(), "I'm really worried about this pain")
	if got.Sentiment != entities.SentimentAnxious {
		t.Errorf("sentiment = %s, want Anxious", got.Sentiment)
	}
	if got.Intent != entities.IntentSeekingReassurance {
		t.Errorf("intent = %s, want Seeking reassurance", got.Intent)
	}
	if !got.Sentiment.IsValid() || !got.Intent.IsValid() {
		t.Errorf("result outside closed label sets: %+v", got)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	svc := newTestService(nil)

	for _, got := range []*entities.SentimentResult{
		svc.AnalyzeText(context.Background(), "   "),
		svc.AnalyzeTranscript(context.Background(), transcriptOf()),
	} {
		if got.Sentiment != entities.SentimentNeutral {
			t.Errorf("sentiment = %s, want Neutral", got.Sentiment)
		}
		if got.Intent != entities.IntentGeneralInquiry {
			t.Errorf("intent = %s, want General inquiry", got.Intent)
		}
	}
}

func TestAnalyzeTranscriptUsesPatientSpeech(t *testing.T) {
	tr := transcriptOf(
		entities.Utterance{Role: entities.SpeakerPhysician, Text: "I'm worried about the swelling around the joint."},
		entities.Utterance{Role: entities.SpeakerPatient, Text: "That's a relief, thank you."},
	)

	got := newTestService(nil).AnalyzeTranscript(context.Background(), tr)
	if got.Sentiment != entities.SentimentReassured {
		t.Errorf("sentiment = %s, want Reassured from patient speech only", got.Sentiment)
	}
}

func TestAnalyzeTranscriptWithoutSpeakerLabels(t *testing.T) {
	tr := transcriptOf(
		entities.Utterance{Role: entities.SpeakerUnknown, Text: "I'm worried about the result."},
	)

	got := newTestService(nil).AnalyzeTranscript(context.Background(), tr)
	if got.Sentiment != entities.SentimentAnxious {
		t.Errorf("sentiment = %s, want Anxious from whole conversation", got.Sentiment)
	}
}

func TestAnalyzeTruncatesModelInput(t *testing.T) {
	stub := &stubClassifier{label: "POSITIVE", score: 0.99}
	svc := newTestService(stub)

	svc.AnalyzeText(context.Background(), strings.Repeat("worry ", 100))
	if got := len([]rune(stub.lastInput)); got != rules.Default().Sentiment.MaxModelInput {
		t.Errorf("classifier input length = %d, want %d", got, rules.Default().Sentiment.MaxModelInput)
	}
}

func TestRetryableErrors(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{entities.ErrModelUnavailable, true},
		{fmt.Errorf("call failed: %w", entities.ErrModelUnavailable), true},
		{apperrors.ErrModelUnavailable("distilbert", errors.New("status 503")), true},
		{apperrors.ErrExternalAPIFailed("inference", errors.New("reset")), true},
		{apperrors.ErrClassificationFailed(errors.New("status 401")), false},
		{errors.New("malformed response"), false},
	}
	for _, c := range cases {
		if got := retryable(c.err); got != c.want {
			t.Errorf("retryable(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
