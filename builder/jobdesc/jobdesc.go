package jobdesc

import (
	"time"

	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// JobDescription is a job posting saved by a user for scoring resumes against
type JobDescription struct {
	ID                kernel.JobDescriptionID   `db:"id" json:"id"`
	UserID            kernel.UserID             `db:"user_id" json:"user_id"`
	Title             string                    `db:"title" json:"title"`
	Company           string                    `db:"company" json:"company,omitempty"`
	Text              kernel.JobDescriptionText `db:"text" json:"text"`
	ExtractedKeywords []string                  `db:"extracted_keywords" json:"extracted_keywords,omitempty"`
	CreatedAt         time.Time                 `db:"created_at" json:"created_at"`
}

// HasKeywords reports whether keyword extraction found any significant terms
func (j *JobDescription) HasKeywords() bool {
	return len(j.ExtractedKeywords) > 0
}
