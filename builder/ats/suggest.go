package ats

import (
	"fmt"
	"strings"
)

// Suggestion thresholds. The four rules are independent and always emitted in
// the same order; consumers rely on the severity-based suggestion coming
// first when present.
const (
	lowScoreThreshold      = 30
	moderateScoreThreshold = 60
	strongScoreThreshold   = 80
	manyMissingThreshold   = 10
	namedMissingCount      = 5
)

// GenerateSuggestions derives improvement suggestions from the missing
// keyword set and the computed score
func GenerateSuggestions(missingKeywords []string, score int) []string {
	suggestions := make([]string, 0, 4)

	if score < lowScoreThreshold {
		suggestions = append(suggestions, "Your resume has low keyword match. Consider restructuring your experience section.")
	}

	if score < moderateScoreThreshold {
		suggestions = append(suggestions, "Add more relevant skills and technologies mentioned in the job description.")
	}

	if len(missingKeywords) > manyMissingThreshold {
		suggestions = append(suggestions, fmt.Sprintf("Consider incorporating these key terms: %s",
			strings.Join(missingKeywords[:namedMissingCount], ", ")))
	}

	if score > strongScoreThreshold {
		suggestions = append(suggestions, "Great job! Your resume has strong keyword alignment with this position.")
	}

	return suggestions
}
