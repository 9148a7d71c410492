package jobdesc

import (
	"net/http"

	"github.com/resumeforge/resumeforge/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("JOBDESC")

var (
	CodeJobDescriptionNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job description not found")
	CodeInvalidJobDescription  = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid job description data")
	CodeNotOwner               = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Job description does not belong to this user")
)

func ErrJobDescriptionNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobDescriptionNotFound)
}

func ErrInvalidJobDescription() *errx.Error {
	return ErrRegistry.New(CodeInvalidJobDescription)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}
