package entities

// NotSpecified is the sentinel used for any summary field no extraction
// strategy could resolve. Consumers can rely on fields never being empty.
const NotSpecified = "Not specified"

// MedicalSummary is the structured report extracted from one transcript.
// Scalar fields fall back to NotSpecified; list fields are never nil.
type MedicalSummary struct {
	PatientName   string   `json:"Patient_Name"`
	Symptoms      []string `json:"Symptoms"`
	Diagnosis     string   `json:"Diagnosis"`
	Treatment     []string `json:"Treatment"`
	CurrentStatus string   `json:"Current_Status"`
	Prognosis     string   `json:"Prognosis"`
	Keywords      []string `json:"Keywords"`
}

// NewMedicalSummary creates a summary with every field at its default.
func NewMedicalSummary() *MedicalSummary {
	return &MedicalSummary{
		PatientName:   NotSpecified,
		Symptoms:      []string{},
		Diagnosis:     NotSpecified,
		Treatment:     []string{},
		CurrentStatus: NotSpecified,
		Prognosis:     NotSpecified,
		Keywords:      []string{},
	}
}
