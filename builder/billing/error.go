package billing

import (
	"net/http"

	"github.com/resumeforge/resumeforge/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("BILLING")

var (
	CodeInvalidSignature     = ErrRegistry.Register("INVALID_SIGNATURE", errx.TypeValidation, http.StatusBadRequest, "Webhook signature verification failed")
	CodeInvalidBillingData   = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid billing data")
	CodeCheckoutFailed       = ErrRegistry.Register("CHECKOUT_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to create checkout session")
	CodeSubscriptionNotFound = ErrRegistry.Register("SUBSCRIPTION_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Subscription not found")
)

func ErrInvalidSignature() *errx.Error {
	return ErrRegistry.New(CodeInvalidSignature)
}

func ErrInvalidBillingData() *errx.Error {
	return ErrRegistry.New(CodeInvalidBillingData)
}

func ErrCheckoutFailed() *errx.Error {
	return ErrRegistry.New(CodeCheckoutFailed)
}

func ErrSubscriptionNotFound() *errx.Error {
	return ErrRegistry.New(CodeSubscriptionNotFound)
}
