package rewrite

import (
	"net/http"

	"github.com/resumeforge/resumeforge/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("REWRITE")

var (
	CodeInvalidRequest  = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Text and job description are required")
	CodeUnknownProvider = ErrRegistry.Register("UNKNOWN_PROVIDER", errx.TypeValidation, http.StatusBadRequest, "Unknown AI provider")
	CodeProviderFailed  = ErrRegistry.Register("PROVIDER_FAILED", errx.TypeExternal, http.StatusBadGateway, "AI provider request failed")
)

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrUnknownProvider() *errx.Error {
	return ErrRegistry.New(CodeUnknownProvider)
}

func ErrProviderFailed() *errx.Error {
	return ErrRegistry.New(CodeProviderFailed)
}
