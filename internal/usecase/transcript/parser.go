package transcript

import (
	"regexp"
	"strings"

	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
	"github.com/MausamRakse/Physician-Notetaker/internal/textutil"
)

var labelRe = regexp.MustCompile(`(?i)\b(physician|doctor|patient)\s*:\s*`)

// Parser builds structured transcripts from raw speaker-labeled text.
type Parser struct{}

// NewParser constructs a transcript parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits raw text into speaker-attributed utterances, preserving
// conversation order. Speaker labels may open a line or appear mid-line;
// unlabeled lines continue the current speaker, and bracketed stage
// directions like "[Physical Examination Conducted]" become Unknown
// utterances. Empty input yields an empty transcript, never an error.
func (p *Parser) Parse(raw string) *entities.Transcript {
	var utterances []entities.Utterance
	currentRole := entities.SpeakerUnknown
	seenSpeaker := false

	appendText := func(role entities.SpeakerRole, text string) {
		text = textutil.CleanText(text)
		if text == "" {
			return
		}
		if n := len(utterances); n > 0 && utterances[n-1].Role == role && role != entities.SpeakerUnknown {
			utterances[n-1].Text += " " + text
			return
		}
		utterances = append(utterances, entities.Utterance{Role: role, Text: text})
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			appendText(entities.SpeakerUnknown, strings.Trim(line, "[]"))
			continue
		}

		labels := labelRe.FindAllStringSubmatchIndex(line, -1)
		if len(labels) == 0 {
			if seenSpeaker {
				appendText(currentRole, line)
			} else {
				appendText(entities.SpeakerUnknown, line)
			}
			continue
		}

		// Text before the first label continues the current speaker.
		if lead := line[:labels[0][0]]; strings.TrimSpace(lead) != "" && seenSpeaker {
			appendText(currentRole, lead)
		}

		for i, loc := range labels {
			role := roleFor(line[loc[2]:loc[3]])
			end := len(line)
			if i+1 < len(labels) {
				end = labels[i+1][0]
			}
			appendText(role, line[loc[1]:end])
			currentRole = role
			seenSpeaker = true
		}
	}

	return entities.NewTranscript(utterances)
}

func roleFor(label string) entities.SpeakerRole {
	if strings.EqualFold(label, "patient") {
		return entities.SpeakerPatient
	}
	return entities.SpeakerPhysician
}
