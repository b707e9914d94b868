package notetaker

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
	"github.com/MausamRakse/Physician-Notetaker/internal/rules"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/extract"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/sentiment"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/soap"
	"github.com/MausamRakse/Physician-Notetaker/internal/usecase/transcript"
)

const consultation = `
Physician: Good morning, Ms. Jones. How are you feeling today?

Patient: Good morning, doctor. I'm doing better, but I still have some discomfort now and then.

Physician: I understand you were in a car accident last September. Can you walk me through what happened?

Patient: Yes, it was on September 1st, around 12:30 in the afternoon. I was driving from Cheadle Hulme to Manchester when I had to stop in traffic. Out of nowhere, another car hit me from behind, which pushed my car into the one in front.

Physician: That sounds like a strong impact. Were you wearing your seatbelt?

Patient: Yes, I always do.

Physician: What did you feel immediately after the accident?

Patient: At first, I was just shocked. But then I realized I had hit my head on the steering wheel, and I could feel pain in my neck and back almost right away.

Physician: Did you seek medical attention at that time?

Patient: Yes, I went to Moss Bank Accident and Emergency. They checked me over and said it was a whiplash injury, but they didn't do any X-rays. They just gave me some advice and sent me home.

Physician: How did things progress after that?

Patient: The first four weeks were rough. My neck and back pain were really bad - I had trouble sleeping and had to take painkillers regularly. It started improving after that, but I had to go through ten sessions of physiotherapy to help with the stiffness and discomfort.

Physician: That makes sense. Are you still experiencing pain now?

Patient: It's not constant, but I do get occasional backaches. It's nothing like before, though.

Physician: That's good to hear. Have you noticed any other effects, like anxiety while driving or difficulty concentrating?

Patient: No, nothing like that. I don't feel nervous driving, and I haven't had any emotional issues from the accident.

Physician: And how has this impacted your daily life? Work, hobbies, anything like that?

Patient: I had to take a week off work, but after that, I was back to my usual routine. It hasn't really stopped me from doing anything.

Physician: That's encouraging. Let's go ahead and do a physical examination to check your mobility and any lingering pain.

[Physical Examination Conducted]

Physician: Everything looks good. Your neck and back have a full range of movement, and there's no tenderness or signs of lasting damage. Your muscles and spine seem to be in good condition.

Patient: That's a relief!

Physician: Yes, your recovery so far has been quite positive. Given your progress, I'd expect you to make a full recovery within six months of the accident. There are no signs of long-term damage or degeneration.

Patient: That's great to hear. So, I don't need to worry about this affecting me in the future?

Physician: That's right. I don't foresee any long-term impact on your work or daily life. If anything changes or you experience worsening symptoms, you can always come back for a follow-up. But at this point, you're on track for a full recovery.

Patient: Thank you, doctor. I appreciate it.

Physician: You're very welcome, Ms. Jones. Take care, and don't hesitate to reach out if you need anything.
`

type stubClassifier struct {
	label string
	score float64
}

func (s *stubClassifier) Classify(ctx context.Context, text string) (string, float64, error) {
	return s.label, s.score, nil
}

func newPipeline(classifier sentiment.Classifier) Service {
	set := rules.Default()
	return NewService(
		transcript.NewParser(),
		extract.NewService(set, nil, nil, nil),
		sentiment.NewService(set.Sentiment, classifier, nil),
		soap.NewService(set.SOAP, nil, nil),
		nil,
	)
}

func TestProcessConsultation(t *testing.T) {
	report := newPipeline(nil).Process(context.Background(), consultation)

	summary := report.Summary
	if summary.PatientName != "Jones" {
		t.Errorf("patient name = %q, want Jones", summary.PatientName)
	}
	if summary.Diagnosis != "Whiplash injury" {
		t.Errorf("diagnosis = %q, want Whiplash injury", summary.Diagnosis)
	}
	for _, want := range []string{"neck pain", "back pain"} {
		if !containsString(summary.Symptoms, want) {
			t.Errorf("symptoms %v missing %q", summary.Symptoms, want)
		}
	}
	wantTreatment := []string{"Painkillers", "10 physiotherapy sessions"}
	if !reflect.DeepEqual(summary.Treatment, wantTreatment) {
		t.Errorf("treatment = %v, want %v", summary.Treatment, wantTreatment)
	}
	if summary.CurrentStatus != "Occasional backaches" {
		t.Errorf("current status = %q, want Occasional backaches", summary.CurrentStatus)
	}
	if summary.Prognosis != "Full recovery expected within six months of the accident" {
		t.Errorf("prognosis = %q", summary.Prognosis)
	}
	if len(summary.Keywords) != 10 {
		t.Errorf("keywords = %d phrases, want the cap of 10", len(summary.Keywords))
	}

	if report.Sentiment.Sentiment != entities.SentimentReassured {
		t.Errorf("sentiment = %s, want Reassured", report.Sentiment.Sentiment)
	}
	if report.Sentiment.Intent != entities.IntentReportingSymptoms {
		t.Errorf("intent = %s, want Reporting symptoms", report.Sentiment.Intent)
	}

	note := report.SOAP
	if !strings.HasPrefix(note.Subjective.ChiefComplaint, "Discomfort") ||
		!strings.HasSuffix(note.Subjective.ChiefComplaint, "and others") {
		t.Errorf("chief complaint = %q", note.Subjective.ChiefComplaint)
	}
	if !strings.Contains(note.Subjective.HistoryOfPresentIllness, "Patient reports september 1st") {
		t.Errorf("history = %q, want september onset first", note.Subjective.HistoryOfPresentIllness)
	}
	if !strings.Contains(note.Subjective.HistoryOfPresentIllness, "Diagnosed with whiplash injury.") {
		t.Errorf("history = %q, want diagnosis part", note.Subjective.HistoryOfPresentIllness)
	}
	for _, want := range []string{"range of movement", "muscles and spine"} {
		if !strings.Contains(note.Objective.PhysicalExam, want) {
			t.Errorf("physical exam = %q, missing %q", note.Objective.PhysicalExam, want)
		}
	}
	if note.Objective.Observations != "Your muscles and spine seem to be in good condition" {
		t.Errorf("observations = %q", note.Objective.Observations)
	}
	if note.Assessment.Diagnosis != "Whiplash injury" {
		t.Errorf("assessment diagnosis = %q", note.Assessment.Diagnosis)
	}
	if note.Assessment.Severity != "Mild" {
		t.Errorf("severity = %q, want Mild", note.Assessment.Severity)
	}
	if note.Plan.Treatment != "Painkillers, 10 physiotherapy sessions" {
		t.Errorf("plan treatment = %q", note.Plan.Treatment)
	}
	if note.Plan.FollowUp != "Come back for a follow-up" {
		t.Errorf("follow-up = %q", note.Plan.FollowUp)
	}
}

func TestProcessClassifierVerdict(t *testing.T) {
	svc := newPipeline(&stubClassifier{label: "NEGATIVE", score: 0.99})

	report := svc.Process(context.Background(), "Patient: I'm really worried about this pain.")
	if report.Sentiment.Sentiment != entities.SentimentAnxious {
		t.Errorf("sentiment = %s, want Anxious", report.Sentiment.Sentiment)
	}
	if report.Sentiment.Intent != entities.IntentSeekingReassurance {
		t.Errorf("intent = %s, want Seeking reassurance", report.Sentiment.Intent)
	}
}

func TestProcessEmptyInput(t *testing.T) {
	svc := newPipeline(nil)

	for _, raw := range []string{"", "   \n\t  "} {
		report := svc.Process(context.Background(), raw)

		summary := report.Summary
		for field, got := range map[string]string{
			"patient name":   summary.PatientName,
			"diagnosis":      summary.Diagnosis,
			"current status": summary.CurrentStatus,
			"prognosis":      summary.Prognosis,
		} {
			if got != entities.NotSpecified {
				t.Errorf("%s = %q, want sentinel", field, got)
			}
		}
		if report.Sentiment.Sentiment != entities.SentimentNeutral ||
			report.Sentiment.Intent != entities.IntentGeneralInquiry {
			t.Errorf("sentiment = %+v, want Neutral defaults", report.Sentiment)
		}
		note := report.SOAP
		for field, got := range map[string]string{
			"chief complaint": note.Subjective.ChiefComplaint,
			"history":         note.Subjective.HistoryOfPresentIllness,
			"physical exam":   note.Objective.PhysicalExam,
			"observations":    note.Objective.Observations,
			"diagnosis":       note.Assessment.Diagnosis,
			"severity":        note.Assessment.Severity,
			"treatment":       note.Plan.Treatment,
			"follow-up":       note.Plan.FollowUp,
		} {
			if got != entities.NotSpecified {
				t.Errorf("%s = %q, want sentinel", field, got)
			}
		}
	}
}

// Reports never carry empty fields, whatever the input looks like.
func TestProcessTotalReport(t *testing.T) {
	svc := newPipeline(nil)

	inputs := []string{
		consultation,
		"",
		"no speaker labels at all, just prose",
		"Patient: hello.",
		"Doctor: take two aspirin.",
	}
	for _, raw := range inputs {
		report := svc.Process(context.Background(), raw)
		if report.Summary == nil || report.Sentiment == nil || report.SOAP == nil {
			t.Fatalf("input %q: report has nil records", raw)
		}
		if report.Summary.Symptoms == nil || report.Summary.Treatment == nil || report.Summary.Keywords == nil {
			t.Errorf("input %q: nil collections in summary", raw)
		}
		scalars := []string{
			report.Summary.PatientName,
			report.Summary.Diagnosis,
			report.Summary.CurrentStatus,
			report.Summary.Prognosis,
			string(report.Sentiment.Sentiment),
			string(report.Sentiment.Intent),
			report.SOAP.Subjective.ChiefComplaint,
			report.SOAP.Subjective.HistoryOfPresentIllness,
			report.SOAP.Objective.PhysicalExam,
			report.SOAP.Objective.Observations,
			report.SOAP.Assessment.Diagnosis,
			report.SOAP.Assessment.Severity,
			report.SOAP.Plan.Treatment,
			report.SOAP.Plan.FollowUp,
		}
		for i, v := range scalars {
			if v == "" {
				t.Errorf("input %q: scalar %d is empty", raw, i)
			}
		}
		if !report.Sentiment.Sentiment.IsValid() || !report.Sentiment.Intent.IsValid() {
			t.Errorf("input %q: sentiment outside closed sets: %+v", raw, report.Sentiment)
		}
	}
}

func TestProcessIdempotent(t *testing.T) {
	svc := newPipeline(nil)

	first := svc.Process(context.Background(), consultation)
	second := svc.Process(context.Background(), consultation)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ:\n%+v\n%+v", first, second)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
