package template

import (
	"net/http"

	"github.com/resumeforge/resumeforge/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("TEMPLATE")

var (
	CodeTemplateNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Template not found")
	CodeInvalidTemplateData = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid template data")
	CodeContentUnavailable  = ErrRegistry.Register("CONTENT_UNAVAILABLE", errx.TypeExternal, http.StatusBadGateway, "Template content could not be fetched from storage")
)

func ErrTemplateNotFound() *errx.Error {
	return ErrRegistry.New(CodeTemplateNotFound)
}

func ErrInvalidTemplateData() *errx.Error {
	return ErrRegistry.New(CodeInvalidTemplateData)
}

func ErrContentUnavailable() *errx.Error {
	return ErrRegistry.New(CodeContentUnavailable)
}
