package catalog

import (
	"net/http"

	"github.com/resumeforge/resumeforge/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CATALOG")

var (
	CodeProviderNotFound   = ErrRegistry.Register("PROVIDER_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Provider not found")
	CodePlanNotFound       = ErrRegistry.Register("PLAN_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Plan not found")
	CodeInvalidCatalogData = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid catalog data")
	CodeDuplicateEntry     = ErrRegistry.Register("DUPLICATE_ENTRY", errx.TypeConflict, http.StatusConflict, "Catalog entry already exists")
)

func ErrProviderNotFound() *errx.Error {
	return ErrRegistry.New(CodeProviderNotFound)
}

func ErrPlanNotFound() *errx.Error {
	return ErrRegistry.New(CodePlanNotFound)
}

func ErrInvalidCatalogData() *errx.Error {
	return ErrRegistry.New(CodeInvalidCatalogData)
}

func ErrDuplicateEntry() *errx.Error {
	return ErrRegistry.New(CodeDuplicateEntry)
}
