package entities

// Sentiment is the patient's emotional state over the conversation.
type Sentiment string

const (
	SentimentAnxious   Sentiment = "Anxious"
	SentimentNeutral   Sentiment = "Neutral"
	SentimentReassured Sentiment = "Reassured"
)

// IsValid reports whether s is one of the recognized sentiment labels.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentAnxious, SentimentNeutral, SentimentReassured:
		return true
	}
	return false
}

// Intent is the communicative goal behind the patient's words.
type Intent string

const (
	IntentSeekingReassurance Intent = "Seeking reassurance"
	IntentReportingSymptoms  Intent = "Reporting symptoms"
	IntentExpressingConcern  Intent = "Expressing concern"
	IntentSeekingInformation Intent = "Seeking information"
	IntentExpressingRelief   Intent = "Expressing relief"
	IntentGeneralInquiry     Intent = "General inquiry"
)

// IsValid reports whether i is one of the recognized intent labels.
func (i Intent) IsValid() bool {
	switch i {
	case IntentSeekingReassurance, IntentReportingSymptoms, IntentExpressingConcern,
		IntentSeekingInformation, IntentExpressingRelief, IntentGeneralInquiry:
		return true
	}
	return false
}

// SentimentResult pairs the detected sentiment with the detected intent.
type SentimentResult struct {
	Sentiment Sentiment `json:"Sentiment"`
	Intent    Intent    `json:"Intent"`
}

// NewSentimentResult creates a result with the neutral defaults used when
// the transcript gives no signal either way.
func NewSentimentResult() *SentimentResult {
	return &SentimentResult{
		Sentiment: SentimentNeutral,
		Intent:    IntentGeneralInquiry,
	}
}
