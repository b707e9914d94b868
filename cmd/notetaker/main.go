// Command notetaker runs the physician notetaking pipeline end to end: it
// parses a physician-patient conversation, extracts the medical summary,
// classifies patient sentiment and intent, composes the SOAP note, then
// prints all three records and writes them out as JSON files.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/MausamRakse/Physician-Notetaker/errors"
	"github.com/MausamRakse/Physician-Notetaker/internal/adapter/presenter"
	"github.com/MausamRakse/Physician-Notetaker/internal/rules"
	"github.com/MausamRakse/Physician-Notetaker/internal/textutil"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/extract"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/notetaker"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/sentiment"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/soap"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/transcript"
	pkgai "github.com/MausamRakse/Physician-Notetaker/pkg/ai"
	"github.com/MausamRakse/Physician-Notetaker/pkg/config"
	"github.com/MausamRakse/Physician-Notetaker/pkg/nlp"
)

var banner = strings.Repeat("=", 80)

// sectionTitles map each output document onto its printed section header.
var sectionTitles = map[string]string{
	presenter.MedicalSummaryFile:    "1. MEDICAL NLP SUMMARIZATION",
	presenter.SentimentAnalysisFile: "2. SENTIMENT & INTENT ANALYSIS",
	presenter.SOAPNoteFile:          "3. SOAP NOTE GENERATION",
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize pipeline components
	log.Println("🔧 Initializing components...")

	ruleSet := rules.Default()
	if err := ruleSet.Validate(); err != nil {
		log.Fatalf("Invalid rule set: %v", err)
	}

	splitter, err := textutil.NewSplitter()
	if err != nil {
		log.Printf("⚠️  Sentence splitter unavailable, using naive splitting: %v", err)
		splitter = nil
	}

	var tagger extract.Tagger
	if cfg.Tagger.Disabled {
		log.Println("⚠️  Entity tagger disabled; running pattern and keyword strategies only")
	} else {
		log.Println("🤖 Loading entity tagger...")
		tagger = nlp.NewProseTagger()
	}

	var classifier sentiment.Classifier
	if cfg.Sentiment.Enabled() {
		log.Printf("🤖 Using hosted sentiment model: %s", cfg.Sentiment.Model)
		classifier = pkgai.NewSentimentClient(&cfg.Sentiment)
	} else {
		log.Println("⚠️  No sentiment API key configured; using lexicon fallback")
	}

	pipeline := notetaker.NewService(
		transcript.NewParser(),
		extract.NewService(ruleSet, tagger, splitter, logger),
		sentiment.NewService(ruleSet.Sentiment, classifier, logger),
		soap.NewService(ruleSet.SOAP, splitter, logger),
		logger,
	)
	log.Println("✅ Components initialized")

	raw, source, err := readInput(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to read transcript: %v", err)
	}

	fmt.Println(banner)
	fmt.Println("Physician Notetaker - Medical NLP Pipeline")
	fmt.Println(banner)
	fmt.Println()
	fmt.Printf("Processing %s...\n", source)

	report := pipeline.Process(context.Background(), raw)

	docs, err := presenter.ToDocuments(report)
	if err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}

	for _, doc := range docs {
		fmt.Println()
		fmt.Println(sectionTitles[doc.Name])
		fmt.Println(banner)
		fmt.Println(string(doc.JSON))
	}

	fmt.Println()
	fmt.Println("Saving outputs to files...")
	if err := saveDocuments(cfg.OutputDir, docs); err != nil {
		log.Fatalf("Failed to save outputs: %v", err)
	}

	fmt.Println()
	fmt.Println(banner)
	fmt.Println("Pipeline completed successfully!")
	fmt.Println(banner)
}

// newLogger builds the zap logger for the configured environment.
func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// readInput resolves the transcript text and a label for where it came
// from. A single positional argument names a transcript file; with no
// arguments the embedded sample consultation runs.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 {
		return sampleConversation, "embedded sample conversation", nil
	}
	if len(args) > 1 {
		return "", "", apperrors.ErrInvalidArgument("expected a single transcript file argument")
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", apperrors.ErrInputUnreadable(args[0], err)
	}
	return string(b), args[0], nil
}

func saveDocuments(dir string, docs []presenter.OutputDocument) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.ErrOutputWriteFailed(dir, err)
	}
	for _, doc := range docs {
		path := filepath.Join(dir, doc.Name)
		if err := os.WriteFile(path, doc.JSON, 0o644); err != nil {
			return apperrors.ErrOutputWriteFailed(path, err)
		}
		fmt.Printf("[OK] Saved: %s\n", path)
	}
	return nil
}
