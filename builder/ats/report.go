package ats

import (
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// ATSReport is the persisted outcome of scoring one resume against one job
// description. Reports are immutable once created; a rescore produces a new
// report.
type ATSReport struct {
	ID               kernel.ReportID         `db:"id" json:"id"`
	ResumeID         kernel.ResumeID         `db:"resume_id" json:"resume_id"`
	JobDescriptionID kernel.JobDescriptionID `db:"job_description_id" json:"job_description_id"`
	Score            int                     `db:"score" json:"score"`
	MissingKeywords  []string                `db:"missing_keywords" json:"missing_keywords"`
	Suggestions      []string                `db:"suggestions" json:"suggestions"`
	CreatedAt        time.Time               `db:"created_at" json:"created_at"`
}

// IsStrongMatch reports whether the score clears the strong alignment bar
func (r *ATSReport) IsStrongMatch() bool {
	return r.Score > strongScoreThreshold
}

// NeedsWork reports whether the score falls below the moderate bar
func (r *ATSReport) NeedsWork() bool {
	return r.Score < moderateScoreThreshold
}
