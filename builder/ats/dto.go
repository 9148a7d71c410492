package ats

import (
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// MaxInputLength bounds the accepted text size per field. Keeps the
// O(|jobKeywords| x |resumeKeywords|) matching step cheap even on abusive
// inputs.
const MaxInputLength = 100_000

// ScoreResumeRequest - DTO for scoring a resume against a job description
type ScoreResumeRequest struct {
	ResumeID           kernel.ResumeID         `json:"resume_id" validate:"required"`
	JobDescriptionID   kernel.JobDescriptionID `json:"job_description_id" validate:"required"`
	ResumeText         string                  `json:"resume_text" validate:"required"`
	JobDescriptionText string                  `json:"job_description_text" validate:"required"`
}

// Validate rejects malformed requests before any extraction runs
func (r *ScoreResumeRequest) Validate() error {
	if r.ResumeID.IsEmpty() {
		return ErrInvalidInput().WithDetail("resume_id", "missing or empty")
	}
	if r.JobDescriptionID.IsEmpty() {
		return ErrInvalidInput().WithDetail("job_description_id", "missing or empty")
	}
	if r.ResumeText == "" {
		return ErrInvalidInput().WithDetail("resume_text", "missing or empty")
	}
	if r.JobDescriptionText == "" {
		return ErrInvalidInput().WithDetail("job_description_text", "missing or empty")
	}
	if len(r.ResumeText) > MaxInputLength {
		return ErrTextTooLarge().WithDetail("field", "resume_text").WithDetail("max_length", MaxInputLength)
	}
	if len(r.JobDescriptionText) > MaxInputLength {
		return ErrTextTooLarge().WithDetail("field", "job_description_text").WithDetail("max_length", MaxInputLength)
	}
	return nil
}

// ScoreResumeResponse - DTO returned by the scoring endpoint. Mirrors the
// stored report plus the raw tuple for immediate consumption.
type ScoreResumeResponse struct {
	Report          *ATSReport `json:"report"`
	Score           int        `json:"score"`
	MissingKeywords []string   `json:"missing_keywords"`
	Suggestions     []string   `json:"suggestions"`
}

// ReportResponse - DTO for report lookup
type ReportResponse struct {
	Report *ATSReport `json:"report"`
}
