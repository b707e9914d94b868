package soap

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
	"github.com/MausamRakse/Physician-Notetaker/internal/rules"
	"github.com/MausamRakse/Physician-Notetaker/internal/textutil"
)

// Service composes the four-section SOAP note from a transcript and its
// extracted summary.
type Service interface {
	Compose(transcript *entities.Transcript, summary *entities.MedicalSummary) *entities.SOAPNote
}

type service struct {
	rules    rules.SOAPRules
	splitter *textutil.Splitter
	logger   *zap.Logger
}

// NewService creates a SOAP composition service. splitter and logger may
// be nil.
func NewService(r rules.SOAPRules, splitter *textutil.Splitter, logger *zap.Logger) Service {
	return &service{
		rules:    r,
		splitter: splitter,
		logger:   logger,
	}
}

// views are the role-scoped slices of the conversation the section rules
// read. Subjective rules look at the patient's words, Objective rules at
// the physician's; exam statements fall back to the whole conversation
// when no utterance carries a physician label.
type views struct {
	full      string
	patient   string
	physician string
}

func (s *service) Compose(transcript *entities.Transcript, summary *entities.MedicalSummary) *entities.SOAPNote {
	if transcript == nil {
		transcript = entities.NewTranscript(nil)
	}
	if summary == nil {
		summary = entities.NewMedicalSummary()
	}

	v := &views{
		full:      textutil.CleanText(transcript.FullText()),
		patient:   textutil.CleanText(transcript.PatientText()),
		physician: textutil.CleanText(transcript.PhysicianText()),
	}
	if v.patient == "" {
		v.patient = v.full
	}
	if v.physician == "" {
		v.physician = v.full
	}

	note := entities.NewSOAPNote()
	note.Subjective.ChiefComplaint = s.chiefComplaint(v, summary)
	note.Subjective.HistoryOfPresentIllness = s.presentIllness(v, summary)
	note.Objective.PhysicalExam = s.physicalExam(v)
	note.Objective.Observations = s.observations(v)
	note.Assessment.Diagnosis = summary.Diagnosis
	note.Assessment.Severity = s.severity(v, summary)
	note.Plan.Treatment = s.treatmentPlan(summary)
	note.Plan.FollowUp = s.followUp(v, summary)

	if s.logger != nil {
		s.logger.Info("✅ SOAP note composed",
			zap.String("transcript_id", transcript.ID.String()),
			zap.String("chief_complaint", note.Subjective.ChiefComplaint),
			zap.String("severity", note.Assessment.Severity),
		)
	}
	return note
}

// chiefComplaint condenses the extracted symptom set; with more than three
// symptoms the tail is summarized as "and others". Without symptoms the
// first patient sentence is used when it names a complaint.
func (s *service) chiefComplaint(v *views, summary *entities.MedicalSummary) string {
	symptoms := summary.Symptoms
	switch {
	case len(symptoms) == 1:
		return textutil.Capitalize(symptoms[0])
	case len(symptoms) > 0 && len(symptoms) <= 3:
		return textutil.Capitalize(strings.Join(symptoms, " and "))
	case len(symptoms) > 3:
		return textutil.Capitalize(strings.Join(symptoms[:3], ", ") + " and others")
	}

	if sents := s.splitter.Split(v.patient); len(sents) > 0 {
		if textutil.ContainsAny(sents[0], s.rules.ComplaintCueWords) {
			return textutil.Truncate(strings.TrimRight(sents[0], "."), s.rules.MaxComplaintLen)
		}
	}
	return entities.NotSpecified
}

// presentIllness assembles the HPI narrative from the timeline phrase and
// the structured summary, in the fixed onset-diagnosis-symptoms-treatment-
// status order. When the summary carries nothing, the patient's first
// three sentences stand in.
func (s *service) presentIllness(v *views, summary *entities.MedicalSummary) string {
	var parts []string

	for _, re := range s.rules.TimelinePatterns {
		if m := re.FindString(v.full); m != "" {
			parts = append(parts, "Patient reports "+strings.ToLower(strings.TrimSpace(m))+".")
			break
		}
	}
	if summary.Diagnosis != entities.NotSpecified {
		parts = append(parts, "Diagnosed with "+strings.ToLower(summary.Diagnosis)+".")
	}
	if len(summary.Symptoms) > 0 {
		parts = append(parts, "Presented with "+strings.ToLower(strings.Join(summary.Symptoms, ", "))+".")
	}
	if len(summary.Treatment) > 0 {
		parts = append(parts, "Received "+strings.ToLower(strings.Join(summary.Treatment, ", "))+".")
	}
	if summary.CurrentStatus != entities.NotSpecified {
		parts = append(parts, "Current status: "+strings.ToLower(summary.CurrentStatus)+".")
	}

	if len(parts) == 0 {
		for _, sent := range s.splitter.Split(v.patient) {
			parts = append(parts, strings.TrimRight(sent, ".")+".")
			if len(parts) == 3 {
				break
			}
		}
	}
	if len(parts) == 0 {
		return entities.NotSpecified
	}
	return strings.Join(parts, " ")
}

// physicalExam prefers concrete findings (range of movement, tenderness,
// muscle and spine condition) over generic examination mentions.
func (s *service) physicalExam(v *views) string {
	if findings := matchAll(s.rules.FindingPatterns, v.physician); len(findings) > 0 {
		return textutil.Capitalize(strings.Join(findings, ". "))
	}
	if mentions := matchAll(s.rules.ExamPatterns, v.physician); len(mentions) > 0 {
		return textutil.Capitalize(strings.Join(mentions, ". "))
	}
	return entities.NotSpecified
}

// observations collects the physician's appearance and normality remarks,
// sentence by sentence, capped in count and length.
func (s *service) observations(v *views) string {
	var found []string
	for _, sent := range s.splitter.Split(v.physician) {
		if len(found) >= s.rules.MaxObservations {
			break
		}
		if len([]rune(sent)) > s.rules.MaxObservationLen {
			continue
		}
		if textutil.ContainsAny(sent, s.rules.ObservationKeywords) {
			found = append(found, strings.TrimRight(sent, "."))
		}
	}
	if len(found) == 0 {
		return entities.NotSpecified
	}
	return strings.Join(found, ". ")
}

// severity grades the condition from qualifier adjectives, falling back to
// trend evidence in the status and prognosis. No evidence means the
// sentinel; the note never guesses a grade.
func (s *service) severity(v *views, summary *entities.MedicalSummary) string {
	switch {
	case textutil.ContainsAny(v.full, s.rules.SevereWords):
		return "Severe"
	case textutil.ContainsAny(v.full, s.rules.MildWords):
		return "Mild"
	case textutil.ContainsAny(summary.CurrentStatus, s.rules.ImprovingWords):
		return "Mild, improving"
	case textutil.ContainsAny(summary.Prognosis, s.rules.RecoveryCues):
		return "Mild, improving"
	case textutil.ContainsAny(v.full, s.rules.ModerateWords):
		return "Moderate"
	}
	return entities.NotSpecified
}

func (s *service) treatmentPlan(summary *entities.MedicalSummary) string {
	if len(summary.Treatment) == 0 {
		return entities.NotSpecified
	}
	return textutil.Capitalize(strings.ToLower(strings.Join(summary.Treatment, ", ")))
}

// followUp joins every explicit follow-up instruction in the conversation;
// absent one, the canned instruction matching the prognosis applies. An
// empty conversation earns no instruction at all.
func (s *service) followUp(v *views, summary *entities.MedicalSummary) string {
	if instructions := matchAll(s.rules.FollowUpPatterns, v.full); len(instructions) > 0 {
		return textutil.Capitalize(strings.Join(instructions, ". "))
	}
	switch {
	case textutil.ContainsAny(summary.Prognosis, s.rules.RecoveryCues):
		return s.rules.FollowUpFullRecovery
	case v.full != "" || summary.Prognosis != entities.NotSpecified:
		return s.rules.FollowUpDefault
	}
	return entities.NotSpecified
}

// matchAll returns the trimmed text of every pattern match, pattern order
// first and text order within a pattern.
func matchAll(patterns []*regexp.Regexp, text string) []string {
	var out []string
	for _, re := range patterns {
		for _, m := range re.FindAllString(text, -1) {
			if m = strings.TrimSpace(strings.TrimRight(m, ".,;:")); m != "" {
				out = append(out, m)
			}
		}
	}
	return out
}
