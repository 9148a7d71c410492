package ats

import (
	"reflect"
	"testing"
)

func TestScoreKeywords(t *testing.T) {
	tests := []struct {
		name        string
		job         []string
		resume      []string
		wantScore   int
		wantMatched []string
		wantMissing []string
	}{
		{
			name:        "no resume keywords",
			job:         []string{"python", "java", "sql", "docker", "kubernetes"},
			resume:      []string{},
			wantScore:   0,
			wantMatched: []string{},
			wantMissing: []string{"python", "java", "sql", "docker", "kubernetes"},
		},
		{
			name:        "exact matches",
			job:         []string{"python", "java", "sql"},
			resume:      []string{"python", "java", "sql"},
			wantScore:   100,
			wantMatched: []string{"python", "java", "sql"},
			wantMissing: []string{},
		},
		{
			name:        "substring containment matches",
			job:         []string{"engineer"},
			resume:      []string{"engineering"},
			wantScore:   100,
			wantMatched: []string{"engineer"},
			wantMissing: []string{},
		},
		{
			name:        "loose substring quirk preserved",
			job:         []string{"art"},
			resume:      []string{"smart"},
			wantScore:   100,
			wantMatched: []string{"art"},
			wantMissing: []string{},
		},
		{
			name:        "asymmetric rule does not match the other way",
			job:         []string{"engineering"},
			resume:      []string{"engineer"},
			wantScore:   0,
			wantMatched: []string{},
			wantMissing: []string{"engineering"},
		},
		{
			name:        "case insensitive",
			job:         []string{"Python"},
			resume:      []string{"PYTHON"},
			wantScore:   100,
			wantMatched: []string{"Python"},
			wantMissing: []string{},
		},
		{
			name:        "partial match rounds",
			job:         []string{"python", "java", "sql"},
			resume:      []string{"python"},
			wantScore:   33,
			wantMatched: []string{"python"},
			wantMissing: []string{"java", "sql"},
		},
		{
			name:        "half rounds up",
			job:         []string{"a1x", "a2x", "a3x", "a4x", "a5x", "a6x", "a7x", "a8x"},
			resume:      []string{"a1x"},
			wantScore:   13, // 12.5 rounds up
			wantMatched: []string{"a1x"},
			wantMissing: []string{"a2x", "a3x", "a4x", "a5x", "a6x", "a7x", "a8x"},
		},
		{
			name:        "empty job keywords stays total",
			job:         []string{},
			resume:      []string{"python"},
			wantScore:   0,
			wantMatched: []string{},
			wantMissing: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreKeywords(tt.job, tt.resume)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if !reflect.DeepEqual(got.Matched, tt.wantMatched) {
				t.Errorf("Matched = %v, want %v", got.Matched, tt.wantMatched)
			}
			if !reflect.DeepEqual(got.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.wantMissing)
			}
		})
	}
}

func TestScoreKeywordsBounded(t *testing.T) {
	jobs := [][]string{
		{"python"},
		{"python", "java", "sql", "docker"},
		{"art", "smart", "chart"},
	}
	resumes := [][]string{
		{},
		{"python"},
		{"smart", "dart", "golang"},
	}

	for _, job := range jobs {
		for _, resume := range resumes {
			got := ScoreKeywords(job, resume)
			if got.Score < 0 || got.Score > 100 {
				t.Errorf("ScoreKeywords(%v, %v).Score = %d out of [0,100]", job, resume, got.Score)
			}
			if len(got.Matched)+len(got.Missing) != len(job) {
				t.Errorf("matched+missing = %d, want %d", len(got.Matched)+len(got.Missing), len(job))
			}
		}
	}
}

func TestScoreKeywordsMonotonic(t *testing.T) {
	job := []string{"python", "java", "sql", "docker", "kubernetes"}
	resume := []string{"python", "java"}

	before := ScoreKeywords(job, resume)

	// Adding a keyword that matches a previously-missing job keyword must
	// never decrease the score or grow the missing set.
	after := ScoreKeywords(job, append(resume, "docker"))

	if after.Score < before.Score {
		t.Errorf("score decreased after adding matching keyword: %d -> %d", before.Score, after.Score)
	}
	if len(after.Missing) > len(before.Missing) {
		t.Errorf("missing set grew after adding matching keyword: %d -> %d", len(before.Missing), len(after.Missing))
	}
}
