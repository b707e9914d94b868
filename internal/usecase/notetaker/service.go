package notetaker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/extract"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/sentiment"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/soap"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/transcript"
)

// Service runs the whole notetaking pipeline on one conversation.
type Service interface {
	Process(ctx context.Context, raw string) *entities.Report
}

type service struct {
	parser    *transcript.Parser
	extractor extract.Service
	analyzer  sentiment.Service
	composer  soap.Service
	logger    *zap.Logger
}

// NewService wires the pipeline stages together. logger may be nil.
func NewService(
	parser *transcript.Parser,
	extractor extract.Service,
	analyzer sentiment.Service,
	composer soap.Service,
	logger *zap.Logger,
) Service {
	return &service{
		parser:    parser,
		extractor: extractor,
		analyzer:  analyzer,
		composer:  composer,
		logger:    logger,
	}
}

// Process turns one raw conversation into the three structured records.
// Every stage absorbs its own failures, so the report is always complete;
// fields the stages could not resolve carry their defaults.
func (s *service) Process(ctx context.Context, raw string) *entities.Report {
	start := time.Now()

	t := s.parser.Parse(raw)
	if t.IsEmpty() {
		if s.logger != nil {
			s.logger.Warn("⚠️ Transcript is empty, report will carry defaults",
				zap.Error(entities.ErrEmptyInput),
			)
		}
	} else if s.logger != nil {
		s.logger.Info("🤖 Processing transcript",
			zap.String("transcript_id", t.ID.String()),
			zap.Int("utterances", len(t.Utterances)),
		)
	}

	report := entities.NewReport()

	stage := time.Now()
	report.Summary = s.extractor.Extract(t)
	extractTime := time.Since(stage)

	stage = time.Now()
	report.Sentiment = s.analyzer.AnalyzeTranscript(ctx, t)
	sentimentTime := time.Since(stage)

	stage = time.Now()
	report.SOAP = s.composer.Compose(t, report.Summary)
	soapTime := time.Since(stage)

	if s.logger != nil {
		s.logger.Info("✅ Report generated",
			zap.String("transcript_id", t.ID.String()),
			zap.Duration("extract_time", extractTime),
			zap.Duration("sentiment_time", sentimentTime),
			zap.Duration("soap_time", soapTime),
			zap.Duration("total_time", time.Since(start)),
		)
	}
	return report
}
