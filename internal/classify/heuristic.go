package classify

import "github.com/asmit/mentis/internal/analysis"

// heuristicConfidence is the fixed confidence reported for heuristic
// predictions. The heuristic is deterministic, so confidence only signals
// to the UI that this is not a model output.
const heuristicConfidence = 0.85

// HeuristicPrediction derives a severity purely from the ratio of achieved
// to achievable points. It is the fallback whenever the model-backed
// classifier is unavailable or fails.
func HeuristicPrediction(features analysis.Features) *analysis.Prediction {
	ratio := features.OverallRatio()

	var sev analysis.Severity
	switch {
	case ratio >= 0.75:
		sev = analysis.SeverityNormal
	case ratio >= 0.5:
		sev = analysis.SeverityMild
	case ratio >= 0.25:
		sev = analysis.SeverityModerate
	default:
		sev = analysis.SeveritySevere
	}

	return &analysis.Prediction{
		Severity:       sev,
		Confidence:     heuristicConfidence,
		CategoryScores: categoryMeans(features),
	}
}

// categoryMeans computes the mean normalized score per category.
func categoryMeans(features analysis.Features) map[string]float64 {
	out := make(map[string]float64, len(features.CategoryResponses))
	for category, responses := range features.CategoryResponses {
		if len(responses) == 0 {
			continue
		}
		sum := 0.0
		for _, r := range responses {
			sum += r
		}
		out[category] = sum / float64(len(responses))
	}
	return out
}
