package entities

import (
	"strings"

	"github.com/google/uuid"
)

// SpeakerRole identifies who produced an utterance.
type SpeakerRole string

const (
	SpeakerPhysician SpeakerRole = "Physician"
	SpeakerPatient   SpeakerRole = "Patient"
	SpeakerUnknown   SpeakerRole = "Unknown"
)

// Utterance is a single speaker turn in a conversation.
type Utterance struct {
	Role SpeakerRole `json:"role"`
	Text string      `json:"text"`
}

// Transcript is an ordered doctor-patient conversation. It is built once
// by the parser and never mutated afterwards; the ID exists only so log
// lines from different stages can be correlated.
type Transcript struct {
	ID         uuid.UUID   `json:"id"`
	Utterances []Utterance `json:"utterances"`
}

// NewTranscript creates a transcript from parsed utterances.
func NewTranscript(utterances []Utterance) *Transcript {
	return &Transcript{
		ID:         uuid.New(),
		Utterances: utterances,
	}
}

// IsEmpty reports whether the transcript carries no spoken text.
func (t *Transcript) IsEmpty() bool {
	if t == nil {
		return true
	}
	for _, u := range t.Utterances {
		if strings.TrimSpace(u.Text) != "" {
			return false
		}
	}
	return true
}

// FullText joins every utterance in conversation order.
func (t *Transcript) FullText() string {
	return t.textByRole("")
}

// PatientText joins the patient's utterances in conversation order.
func (t *Transcript) PatientText() string {
	return t.textByRole(SpeakerPatient)
}

// PhysicianText joins the physician's utterances in conversation order.
func (t *Transcript) PhysicianText() string {
	return t.textByRole(SpeakerPhysician)
}

// UtterancesByRole returns the utterances spoken by the given role,
// preserving conversation order.
func (t *Transcript) UtterancesByRole(role SpeakerRole) []Utterance {
	if t == nil {
		return nil
	}
	out := make([]Utterance, 0, len(t.Utterances))
	for _, u := range t.Utterances {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

func (t *Transcript) textByRole(role SpeakerRole) string {
	if t == nil {
		return ""
	}
	parts := make([]string, 0, len(t.Utterances))
	for _, u := range t.Utterances {
		if role != "" && u.Role != role {
			continue
		}
		if u.Text != "" {
			parts = append(parts, u.Text)
		}
	}
	return strings.Join(parts, " ")
}
