package entities

// SubjectiveSection carries what the patient reports in their own words.
type SubjectiveSection struct {
	ChiefComplaint          string `json:"Chief_Complaint"`
	HistoryOfPresentIllness string `json:"History_of_Present_Illness"`
}

// ObjectiveSection carries what the physician observed or examined.
type ObjectiveSection struct {
	PhysicalExam string `json:"Physical_Exam"`
	Observations string `json:"Observations"`
}

// AssessmentSection carries the clinical judgement.
type AssessmentSection struct {
	Diagnosis string `json:"Diagnosis"`
	Severity  string `json:"Severity"`
}

// PlanSection carries the treatment plan and follow-up instructions.
type PlanSection struct {
	Treatment string `json:"Treatment"`
	FollowUp  string `json:"Follow-Up"`
}

// SOAPNote is the standard four-section clinical note composed from a
// transcript and its extracted summary. Every sub-field defaults to
// NotSpecified so the note is always fully populated.
type SOAPNote struct {
	Subjective SubjectiveSection `json:"Subjective"`
	Objective  ObjectiveSection  `json:"Objective"`
	Assessment AssessmentSection `json:"Assessment"`
	Plan       PlanSection       `json:"Plan"`
}

// NewSOAPNote creates a note with every sub-field at its sentinel default.
func NewSOAPNote() *SOAPNote {
	return &SOAPNote{
		Subjective: SubjectiveSection{
			ChiefComplaint:          NotSpecified,
			HistoryOfPresentIllness: NotSpecified,
		},
		Objective: ObjectiveSection{
			PhysicalExam: NotSpecified,
			Observations: NotSpecified,
		},
		Assessment: AssessmentSection{
			Diagnosis: NotSpecified,
			Severity:  NotSpecified,
		},
		Plan: PlanSection{
			Treatment: NotSpecified,
			FollowUp:  NotSpecified,
		},
	}
}
