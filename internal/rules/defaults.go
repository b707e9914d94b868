package rules

import (
	"regexp"

	"github.com/MausamRakse/Physician-Notetaker/internal/domain/entities"
)

// Default returns the built-in rule set covering common musculoskeletal
// and accident-related consultations. Callers needing different coverage
// construct their own Set.
func Default() *Set {
	return &Set{
		Extraction: ExtractionRules{
			SymptomKeywords: []string{
				"pain", "ache", "discomfort", "stiffness", "sore", "tender", "numbness",
				"tingling", "headache", "dizziness", "nausea", "fatigue", "weakness",
				"swelling", "inflammation", "difficulty", "trouble", "problem",
			},
			TreatmentKeywords: []string{
				"treatment", "therapy", "physiotherapy", "medication", "medicine",
				"painkiller", "analgesic", "surgery", "operation", "injection",
				"session", "appointment", "prescription", "exercise", "rehabilitation",
			},
			DiagnosisKeywords: []string{
				"diagnosis", "diagnosed", "condition", "injury", "disease", "disorder",
				"syndrome", "fracture", "strain", "sprain", "whiplash", "concussion",
			},
			PrognosisKeywords: []string{
				"recovery", "prognosis", "outcome", "expect", "forecast", "improve",
				"heal", "resolve", "chronic", "acute", "long-term", "short-term",
				"full recovery", "partial recovery", "recurrence",
			},
			ConditionKeywords: []string{
				"whiplash", "injury", "strain", "sprain", "fracture", "concussion",
			},
			BodyParts: []string{
				"neck", "back", "head", "shoulder", "arm", "leg",
			},
			TokenRules: []TokenRule{
				{Label: RuleSymptom, Steps: []TokenStep{
					{LowerIn: []string{"pain", "ache", "discomfort", "stiffness"}},
				}},
				{Label: RuleSymptom, Steps: []TokenStep{
					{LowerIn: []string{"neck", "back", "head", "shoulder"}},
					{LowerIn: []string{"pain"}},
				}},
				{Label: RuleSymptom, Steps: []TokenStep{
					{LowerIn: []string{"trouble"}},
					{LowerIn: []string{"sleeping", "concentrating"}},
				}},
				{Label: RuleTreatment, Steps: []TokenStep{
					{LowerIn: []string{"physiotherapy", "therapy", "treatment"}},
				}},
				{Label: RuleTreatment, Steps: []TokenStep{
					{LowerIn: []string{"painkiller", "painkillers", "medication", "medicine"}},
				}},
				{Label: RuleTreatment, Steps: []TokenStep{
					{IsDigit: true},
					{LowerIn: []string{"session", "sessions"}},
				}},
				{Label: RuleDiagnosis, Steps: []TokenStep{
					{LowerIn: []string{"whiplash", "strain", "sprain", "fracture", "concussion"}},
				}},
			},
			NamePatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?:Ms\.|Mr\.|Mrs\.|Dr\.)\s+([A-Z][a-z]+)`),
				regexp.MustCompile(`Patient[:\s]+([A-Z][a-z]+)`),
			},
			SymptomPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(neck\s+pain|back\s+pain|head\s+pain|headache)`),
				regexp.MustCompile(`(?i)(discomfort|stiffness|tenderness)`),
				regexp.MustCompile(`(?i)(trouble\s+(?:sleeping|concentrating))`),
				regexp.MustCompile(`(?i)(hit\s+(?:my|the)\s+(?:head|neck|back))`),
			},
			DiagnosisPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(whiplash\s+injury)`),
				regexp.MustCompile(`(?i)diagnosed\s+with\s+([^.]+)`),
				regexp.MustCompile(`(?i)it\s+was\s+(?:a|an)\s+([^.]+)`),
			},
			PrognosisPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(full\s+recovery\s+(?:expected|within|in)\s+[^.]+)`),
				regexp.MustCompile(`(?i)(recovery\s+(?:expected|within|in)\s+[^.]+)`),
				regexp.MustCompile(`(?i)(prognosis[^.]+)`),
				regexp.MustCompile(`(?i)(expect\s+[^.]*recovery[^.]*)`),
				regexp.MustCompile(`(?i)(no\s+(?:signs?|indication)\s+of\s+[^.]+)`),
			},
			StatusPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(still\s+(?:experiencing|having|feeling)\s+[^.?!]+)`),
				regexp.MustCompile(`(?i)(occasional\s+[^.?!]+)`),
				regexp.MustCompile(`(?i)(not\s+constant[^.?!]+)`),
				regexp.MustCompile(`(?i)(doing\s+better[^.?!]+)`),
				regexp.MustCompile(`(?i)(feeling\s+[^.?!]+now)`),
			},
			StatusFallbackPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(I\s+(?:still|get|have)\s+[^.?!]+)`),
				regexp.MustCompile(`(?i)(It'?s\s+(?:not|nothing)\s+[^.?!]+)`),
			},
			SessionPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(\d+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\s+sessions?\s+of\s+(physiotherapy|physical\s+therapy|therapy)`),
				regexp.MustCompile(`(?i)\b(\d+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\s+(physiotherapy|physical\s+therapy|therapy)\s+sessions?`),
			},
			TherapyPattern:      regexp.MustCompile(`(?i)\b(?:physiotherapy|physical\s+therapy|rehabilitation)\b`),
			MedicationPattern:   regexp.MustCompile(`(?i)\b(?:painkillers?|medications?|medicines?|analgesics?)\b`),
			RecoveryTimePattern: regexp.MustCompile(`(?i)(full\s+recovery[^.]*\d+\s*(?:day|days|week|weeks|month|months|year|years)[^.]*)`),
			NumberWords: map[string]string{
				"one": "1", "two": "2", "three": "3", "four": "4",
				"five": "5", "six": "6", "seven": "7", "eight": "8",
				"nine": "9", "ten": "10", "eleven": "11", "twelve": "12",
			},
			ContextRadius: 2,
		},
		Sentiment: SentimentRules{
			PositiveLabels: []string{"POSITIVE", "LABEL_1"},
			NegativeLabels: []string{"NEGATIVE", "LABEL_0"},
			ReliefCues: []string{
				"relief", "relieved", "good to hear", "thank",
			},
			AnxietyCues: []string{
				"worry", "worried", "concerned", "anxious", "afraid",
			},
			AnxietyLexicon: []string{
				"worried", "concerned", "anxious", "afraid", "fear", "nervous", "apprehensive",
			},
			ReassuranceLexicon: []string{
				"relief", "relieved", "glad", "thankful", "appreciate", "good to hear", "great",
			},
			Intents: []IntentLexicon{
				{Intent: entities.IntentSeekingReassurance, Keywords: []string{
					"worry", "worried", "concerned", "anxious", "hope", "wondering",
					"afraid", "fear", "nervous", "apprehensive", "uncertain",
				}},
				{Intent: entities.IntentReportingSymptoms, Keywords: []string{
					"pain", "ache", "discomfort", "feeling", "experiencing",
					"having", "symptoms", "problem", "issue", "trouble",
				}},
				{Intent: entities.IntentExpressingConcern, Keywords: []string{
					"concern", "worried about", "afraid of", "fear that",
					"not sure", "uncertain", "question",
				}},
				{Intent: entities.IntentSeekingInformation, Keywords: []string{
					"what", "how", "why", "when", "where", "explain", "tell me",
					"understand", "mean", "question",
				}},
				{Intent: entities.IntentExpressingRelief, Keywords: []string{
					"relief", "relieved", "glad", "happy", "thankful", "appreciate",
					"good to hear", "great", "wonderful",
				}},
			},
			MinConfidence: 0.50,
			MaxModelInput: 512,
		},
		SOAP: SOAPRules{
			TimelinePatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)((?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d+[^.]*)`),
				regexp.MustCompile(`(?i)(\d+\s+weeks?\s+ago[^.]*)`),
				regexp.MustCompile(`(?i)(last\s+[^.]+)`),
			},
			FindingPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(full\s+range\s+of\s+(?:movement|motion)[^.]+)`),
				regexp.MustCompile(`(?i)(no\s+tenderness[^.]+|tenderness[^.]+)`),
				regexp.MustCompile(`(?i)(muscles?[^.]+spine[^.]+|spine[^.]+muscles?[^.]+)`),
			},
			ExamPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(physical\s+examination[^.]+)`),
				regexp.MustCompile(`(?i)(range\s+of\s+(?:movement|motion)[^.]+)`),
				regexp.MustCompile(`(?i)(checked[^.]+)`),
			},
			ObservationKeywords: []string{
				"appears", "normal", "good condition", "healthy", "gait",
			},
			MaxObservations:   3,
			MaxObservationLen: 200,
			SevereWords:       []string{"severe", "serious", "critical", "acute"},
			MildWords:         []string{"mild", "minor", "slight", "occasional"},
			ModerateWords:     []string{"moderate"},
			ImprovingWords:    []string{"improving", "better", "recovering"},
			RecoveryCues:      []string{"full recovery", "no long-term"},
			FollowUpPatterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(follow[^.]*up[^.]+)`),
				regexp.MustCompile(`(?i)(return\s+if[^.]+)`),
				regexp.MustCompile(`(?i)(come\s+back[^.]+)`),
				regexp.MustCompile(`(?i)(schedule[^.]+)`),
			},
			FollowUpFullRecovery: "Patient to return if symptoms worsen or persist beyond expected recovery period.",
			FollowUpDefault:      "Patient to return for follow-up as needed or if symptoms worsen.",
			ComplaintCueWords:    []string{"pain", "ache", "discomfort", "problem"},
			MaxComplaintSymptoms: 3,
			MaxComplaintLen:      100,
		},
		Keywords: KeywordRules{
			Stopwords: []string{
				"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
				"you", "your", "yours", "yourself", "yourselves",
				"he", "him", "his", "himself", "she", "her", "hers", "herself",
				"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
				"what", "which", "who", "whom", "this", "that", "these", "those",
				"am", "is", "are", "was", "were", "be", "been", "being",
				"have", "has", "had", "having", "do", "does", "did", "doing",
				"a", "an", "the", "and", "but", "if", "or", "because", "as",
				"until", "while", "of", "at", "by", "for", "with", "about",
				"against", "between", "into", "through", "during", "before",
				"after", "above", "below", "to", "from", "up", "down", "in",
				"out", "on", "off", "over", "under", "again", "further", "then",
				"once", "here", "there", "when", "where", "why", "how", "all",
				"any", "both", "each", "few", "more", "most", "other", "some",
				"such", "no", "nor", "not", "only", "own", "same", "so", "than",
				"too", "very", "can", "will", "just", "don", "should", "now",
			},
			MaxPhrases:     10,
			MaxPhraseWords: 10,
			MinPhraseLen:   10,
			MinWordLen:     3,
		},
	}
}
