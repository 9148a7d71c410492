package ats

import (
	"net/http"

	"github.com/resumeforge/resumeforge/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("ATS")

var (
	CodeInvalidInput     = ErrRegistry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Invalid scoring input")
	CodeTextTooLarge     = ErrRegistry.Register("TEXT_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "Input text exceeds maximum length")
	CodeNoJobKeywords    = ErrRegistry.Register("NO_JOB_KEYWORDS", errx.TypeValidation, http.StatusBadRequest, "Job description yields no significant keywords")
	CodeReportNotFound   = ErrRegistry.Register("REPORT_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "ATS report not found")
	CodeInvalidReference = ErrRegistry.Register("INVALID_REFERENCE", errx.TypeValidation, http.StatusBadRequest, "Resume or job description does not exist")
	CodePersistFailed    = ErrRegistry.Register("PERSIST_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to persist ATS report")
)

func ErrInvalidInput() *errx.Error {
	return ErrRegistry.New(CodeInvalidInput)
}

func ErrTextTooLarge() *errx.Error {
	return ErrRegistry.New(CodeTextTooLarge)
}

func ErrNoJobKeywords() *errx.Error {
	return ErrRegistry.New(CodeNoJobKeywords)
}

func ErrReportNotFound() *errx.Error {
	return ErrRegistry.New(CodeReportNotFound)
}

func ErrInvalidReference() *errx.Error {
	return ErrRegistry.New(CodeInvalidReference)
}

func ErrPersistFailed() *errx.Error {
	return ErrRegistry.New(CodePersistFailed)
}
