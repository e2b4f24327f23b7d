package analysis

import "time"

// Features is the input handed to the classifier when an examination
// completes: normalized per-category answer scores, patient demographics,
// and per-question response times.
type Features struct {
	// CategoryResponses maps category label to the normalized score (0..1)
	// of each answered question in that category, in catalog order.
	CategoryResponses map[string][]float64

	PatientAge    int
	PatientGender string

	// ResponseTimes maps question id to the elapsed time between display
	// and submission.
	ResponseTimes map[int]time.Duration
}

// OverallRatio is the mean of all normalized responses, 0 when none exist.
func (f Features) OverallRatio() float64 {
	sum, n := 0.0, 0
	for _, responses := range f.CategoryResponses {
		for _, r := range responses {
			sum += r
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// AverageResponseTime is the mean response time across all questions,
// 0 when no times were recorded.
func (f Features) AverageResponseTime() time.Duration {
	var sum time.Duration
	n := 0
	for _, d := range f.ResponseTimes {
		sum += d
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / time.Duration(n)
}
