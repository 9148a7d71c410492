package rewrite

import "github.com/resumeforge/resumeforge/pkg/kernel"

// RewriteRequest - DTO for rewriting a resume section against a job description
type RewriteRequest struct {
	Text           string        `json:"text" validate:"required"`
	JobDescription string        `json:"jobDescription" validate:"required"`
	Provider       string        `json:"provider,omitempty"`
	Model          string        `json:"model,omitempty"`
	UserID         kernel.UserID `json:"userId,omitempty"`
}

// RewriteResponse - DTO carrying the rewritten text and usage info
type RewriteResponse struct {
	RewrittenText string `json:"rewrittenText"`
	Provider      string `json:"provider"`
	Model         string `json:"model"`
	TokensUsed    int    `json:"tokensUsed"`
}

// AvailableModel describes a model a user may rewrite with
type AvailableModel struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Name     string `json:"name"`
	Tier     string `json:"tier"`
}

// ModelsResponse - DTO listing the models available to a user
type ModelsResponse struct {
	Models []AvailableModel `json:"models"`
}
