// Package catalog holds the fixed MMSE question sequence and pure helpers
// over it. The catalog is hand-authored, trusted data: option scores are not
// validated beyond staying within each question's MaxScore.
package catalog

import "fmt"

// questions is the examination sequence. IDs are stable ordering keys and
// must stay unique; categories group questions for aggregate reporting.
var questions = []Question{
	{
		ID:       1,
		Category: "Orientation to Time",
		Text:     "What is today's date?",
		Kind:     KindFreeText,
		MaxScore: 1,
		Scoring:  ClassifierScored{},
	},
	{
		ID:       2,
		Category: "Orientation to Place",
		Text:     "Where are you right now?",
		Kind:     KindFreeText,
		MaxScore: 1,
		Scoring:  ContainsAny("hospital", "clinic", "doctor"),
		Expected: []string{"Hospital", "Clinic", "Doctor's office"},
	},
	{
		ID:           3,
		Category:     "Registration",
		Text:         "Can you repeat the words: 'apple, table, penny'?",
		Instructions: "Score based on first attempt.",
		Kind:         KindMultipleChoice,
		Options: []Option{
			{Label: "All 3 words repeated correctly", Score: 3},
			{Label: "2 words repeated correctly", Score: 2},
			{Label: "1 word repeated correctly", Score: 1},
			{Label: "0 words repeated correctly", Score: 0},
		},
		MaxScore: 3,
		Scoring:  FixedChoice{},
	},
	{
		ID:       4,
		Category: "Calculation",
		Text:     "What is 100 minus 7?",
		Kind:     KindFreeText,
		MaxScore: 1,
		Scoring:  ExactAnswer("93"),
		Expected: []string{"93"},
	},
	{
		ID:       5,
		Category: "Current Events",
		Text:     "What is the name of the current President?",
		Kind:     KindFreeText,
		MaxScore: 1,
		Scoring:  ClassifierScored{},
	},
	{
		ID:           6,
		Category:     "Attention",
		Text:         "Can you spell 'WORLD' backward?",
		Instructions: "Enter the patient's response. The correct answer is 'DLROW'.",
		Kind:         KindFreeText,
		MaxScore:     1,
		Scoring:      ExactAnswer("DLROW"),
		Expected:     []string{"DLROW"},
	},
	{
		ID:           7,
		Category:     "Object Recognition",
		Text:         "What is this object called?",
		Instructions: "Show the patient a picture of a watch.",
		Kind:         KindFreeText,
		MaxScore:     1,
		Scoring:      ContainsAny("watch", "wristwatch", "clock"),
		Expected:     []string{"Watch", "Wristwatch", "Clock"},
		Image:        "images/watch.jpg",
	},
	{
		ID:           8,
		Category:     "Recall",
		Text:         "Can you recall the three words I mentioned earlier?",
		Instructions: "The patient should recall 'apple, table, penny'.",
		Kind:         KindMultipleChoice,
		Options: []Option{
			{Label: "All 3 words recalled correctly", Score: 3},
			{Label: "2 words recalled correctly", Score: 2},
			{Label: "1 word recalled correctly", Score: 1},
			{Label: "0 words recalled correctly", Score: 0},
		},
		MaxScore: 3,
		Scoring:  FixedChoice{},
	},
	{
		ID:           9,
		Category:     "Language",
		Text:         "Can you write a complete sentence?",
		Instructions: "The sentence should contain a subject and a verb and make sense.",
		Kind:         KindFreeText,
		MaxScore:     1,
		Scoring:      MinWords(2),
	},
}

// All returns the full question sequence in presentation order.
// The returned slice must not be mutated.
func All() []Question {
	return questions
}

// Len returns the number of questions in the catalog.
func Len() int {
	return len(questions)
}

// ByID looks up a question by its id.
func ByID(id int) (Question, error) {
	for _, q := range questions {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, fmt.Errorf("unknown question id %d", id)
}

// MaxPossibleScore is the sum of MaxScore across the whole catalog.
func MaxPossibleScore() int {
	total := 0
	for _, q := range questions {
		total += q.MaxScore
	}
	return total
}

// CategoryTotal is the achieved and achievable score for one category.
type CategoryTotal struct {
	Score    int
	MaxScore int
}

// CategoryTotals folds every question's MaxScore into its category bucket and
// adds the matching answer score when one is recorded. Unanswered questions
// contribute 0 to the score, not a smaller denominator.
func CategoryTotals(answers map[int]int) map[string]CategoryTotal {
	totals := make(map[string]CategoryTotal)
	for _, q := range questions {
		t := totals[q.Category]
		t.MaxScore += q.MaxScore
		if score, ok := answers[q.ID]; ok {
			t.Score += score
		}
		totals[q.Category] = t
	}
	return totals
}

// Categories returns the category labels in catalog order, without duplicates.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}
