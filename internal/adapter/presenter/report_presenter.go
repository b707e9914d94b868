package presenter

import (
	"encoding/json"
	"fmt"

	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
)

// File names of the three rendered records.
const (
	MedicalSummaryFile    = "medical_summary.json"
	SentimentAnalysisFile = "sentiment_analysis.json"
	SOAPNoteFile          = "soap_note.json"
)

// OutputDocument is one rendered record: the file it belongs in and its
// pretty-printed JSON body.
type OutputDocument struct {
	Name string
	JSON []byte
}

// ToDocuments renders a report's three records as indented JSON documents,
// always in summary, sentiment, SOAP order. A nil report renders the
// defaults.
func ToDocuments(r *entities.Report) ([]OutputDocument, error) {
	if r == nil {
		r = entities.NewReport()
	}

	records := []struct {
		name string
		body interface{}
	}{
		{MedicalSummaryFile, r.Summary},
		{SentimentAnalysisFile, r.Sentiment},
		{SOAPNoteFile, r.SOAP},
	}

	docs := make([]OutputDocument, 0, len(records))
	for _, rec := range records {
		data, err := json.MarshalIndent(rec.body, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", rec.name, err)
		}
		docs = append(docs, OutputDocument{Name: rec.name, JSON: data})
	}
	return docs, nil
}
