package entities

// Report bundles the three records produced for one transcript. All three
// are always present; degraded runs fill them with defaults rather than
// leaving holes.
type Report struct {
	Summary   *MedicalSummary  `json:"medical_summary"`
	Sentiment *SentimentResult `json:"sentiment_analysis"`
	SOAP      *SOAPNote        `json:"soap_note"`
}

// NewReport creates a report with every record at its defaults.
func NewReport() *Report {
	return &Report{
		Summary:   NewMedicalSummary(),
		Sentiment: NewSentimentResult(),
		SOAP:      NewSOAPNote(),
	}
}
