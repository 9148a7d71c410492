package ats

import (
	"math"
	"strings"
)

// MatchResult is the outcome of comparing job keywords against resume keywords
type MatchResult struct {
	Score   int      `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// ScoreKeywords computes the match between a job description's keywords and a
// resume's keywords. A job keyword counts as matched when any resume keyword
// contains it as a case-insensitive substring. The asymmetry tolerates
// stemming and pluralization ("engineering" matches "engineer") at the cost
// of loose positives ("smart" matches "art"). The score is the rounded
// percentage of matched job keywords, half rounded up.
//
// Empty jobKeywords yields Score 0 with empty sets; callers that consider
// that an input error must reject before calling.
func ScoreKeywords(jobKeywords, resumeKeywords []string) MatchResult {
	result := MatchResult{
		Matched: make([]string, 0, len(jobKeywords)),
		Missing: make([]string, 0, len(jobKeywords)),
	}

	for _, keyword := range jobKeywords {
		if containsKeyword(resumeKeywords, keyword) {
			result.Matched = append(result.Matched, keyword)
		} else {
			result.Missing = append(result.Missing, keyword)
		}
	}

	if len(jobKeywords) > 0 {
		result.Score = int(math.Round(float64(len(result.Matched)) / float64(len(jobKeywords)) * 100))
	}

	return result
}

func containsKeyword(resumeKeywords []string, keyword string) bool {
	needle := strings.ToLower(keyword)
	for _, rk := range resumeKeywords {
		if strings.Contains(strings.ToLower(rk), needle) {
			return true
		}
	}
	return false
}
