package transcript

import (
	"strings"
	"testing"

	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
)

func TestParseLabeledConversation(t *testing.T) {
	raw := "Physician: Good morning, Ms. Jones. How are you feeling today?\n\n" +
		"Patient: Good morning, doctor. I'm doing better, but I still have some discomfort now and then.\n"

	tr := NewParser().Parse(raw)
	if len(tr.Utterances) != 2 {
		t.Fatalf("expected 2 utterances, got %d: %+v", len(tr.Utterances), tr.Utterances)
	}
	if tr.Utterances[0].Role != entities.SpeakerPhysician {
		t.Errorf("unexpected first role %s", tr.Utterances[0].Role)
	}
	if tr.Utterances[1].Role != entities.SpeakerPatient {
		t.Errorf("unexpected second role %s", tr.Utterances[1].Role)
	}
	if !strings.Contains(tr.Utterances[1].Text, "discomfort now and then") {
		t.Errorf("patient text lost content: %q", tr.Utterances[1].Text)
	}
}

func TestParseInlineLabels(t *testing.T) {
	raw := "Patient: I had neck and back pain after a car accident. I've had 10 physiotherapy sessions. " +
		"Doctor: Your prognosis is full recovery within six months."

	tr := NewParser().Parse(raw)
	if len(tr.Utterances) != 2 {
		t.Fatalf("expected 2 utterances, got %d: %+v", len(tr.Utterances), tr.Utterances)
	}
	if tr.Utterances[0].Role != entities.SpeakerPatient {
		t.Errorf("unexpected first role %s", tr.Utterances[0].Role)
	}
	if !strings.Contains(tr.Utterances[0].Text, "10 physiotherapy sessions") {
		t.Errorf("patient segment truncated: %q", tr.Utterances[0].Text)
	}
	if tr.Utterances[1].Role != entities.SpeakerPhysician {
		t.Errorf("Doctor label not mapped to physician: %s", tr.Utterances[1].Role)
	}
	if !strings.Contains(tr.Utterances[1].Text, "full recovery within six months") {
		t.Errorf("physician segment truncated: %q", tr.Utterances[1].Text)
	}
}

func TestParseContinuationLines(t *testing.T) {
	raw := "Patient: The first four weeks were rough.\nI had trouble sleeping back then.\n"

	tr := NewParser().Parse(raw)
	if len(tr.Utterances) != 1 {
		t.Fatalf("expected continuation to merge, got %d utterances", len(tr.Utterances))
	}
	got := tr.Utterances[0].Text
	if !strings.Contains(got, "rough") || !strings.Contains(got, "trouble sleeping") {
		t.Errorf("continuation lost content: %q", got)
	}
}

func TestParseStageDirection(t *testing.T) {
	raw := "Physician: Let's do a physical examination.\n\n[Physical Examination Conducted]\n\nPhysician: Everything looks good."

	tr := NewParser().Parse(raw)
	if len(tr.Utterances) != 3 {
		t.Fatalf("expected 3 utterances, got %d: %+v", len(tr.Utterances), tr.Utterances)
	}
	if tr.Utterances[1].Role != entities.SpeakerUnknown {
		t.Errorf("stage direction not attributed to Unknown: %s", tr.Utterances[1].Role)
	}
	if tr.Utterances[1].Text != "Physical Examination Conducted" {
		t.Errorf("unexpected stage direction text %q", tr.Utterances[1].Text)
	}
}

func TestParseUnlabeledText(t *testing.T) {
	tr := NewParser().Parse("no speaker labels anywhere here")
	if len(tr.Utterances) != 1 {
		t.Fatalf("expected 1 utterance, got %d", len(tr.Utterances))
	}
	if tr.Utterances[0].Role != entities.SpeakerUnknown {
		t.Errorf("unexpected role %s", tr.Utterances[0].Role)
	}
	// unattributed speech must still surface through FullText
	if tr.PatientText() != "" {
		t.Errorf("patient text fabricated: %q", tr.PatientText())
	}
	if tr.FullText() == "" {
		t.Error("full text empty")
	}
}

func TestParseEmptyInput(t *testing.T) {
	tr := NewParser().Parse("")
	if !tr.IsEmpty() {
		t.Fatal("expected empty transcript")
	}
	if tr.FullText() != "" {
		t.Errorf("unexpected full text %q", tr.FullText())
	}
}
