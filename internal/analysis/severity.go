package analysis

// Severity is the categorical cognitive-status label derived from the score
// percentage or from the classifier.
type Severity string

const (
	SeverityNormal   Severity = "Normal"
	SeverityMild     Severity = "Mild" // produced by the classifier only
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

// Percentage cut points for the three-tier interpretation scheme.
// Earlier revisions of the tool carried a four-tier raw-score scheme; the
// percentage scheme is the current policy.
const (
	NormalThreshold   = 75.0
	ModerateThreshold = 45.0
)

// interpretation pairs a severity with its fixed narrative sentence and
// display color tag.
type interpretation struct {
	Text  string
	Color string
}

var interpretations = map[Severity]interpretation{
	SeverityNormal: {
		Text:  "Cognitive function appears to be within normal parameters.",
		Color: "green",
	},
	SeverityMild: {
		Text:  "Mild cognitive changes detected. Monitoring is recommended.",
		Color: "yellow",
	},
	SeverityModerate: {
		Text:  "Indicates moderate cognitive impairment. Follow-up with a healthcare provider is recommended.",
		Color: "orange",
	},
	SeveritySevere: {
		Text:  "Indicates severe cognitive impairment. Immediate medical consultation is recommended.",
		Color: "red",
	},
}

// Interpret maps a percentage score onto its severity band.
func Interpret(percentage float64) Severity {
	switch {
	case percentage >= NormalThreshold:
		return SeverityNormal
	case percentage >= ModerateThreshold:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// InterpretationFor returns the fixed narrative sentence for a severity.
func InterpretationFor(s Severity) string {
	return interpretations[s].Text
}

// ColorFor returns the display color tag for a severity.
func ColorFor(s Severity) string {
	return interpretations[s].Color
}
