package resume

import (
	"net/http"

	"github.com/resumeforge/resumeforge/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

var (
	CodeResumeNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
	CodeInvalidResumeData = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid resume data")
	CodeUnknownTemplate   = ErrRegistry.Register("UNKNOWN_TEMPLATE", errx.TypeValidation, http.StatusBadRequest, "Referenced template does not exist")
	CodeNotOwner          = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Resume does not belong to this user")
)

func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}

func ErrInvalidResumeData() *errx.Error {
	return ErrRegistry.New(CodeInvalidResumeData)
}

func ErrUnknownTemplate() *errx.Error {
	return ErrRegistry.New(CodeUnknownTemplate)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}
