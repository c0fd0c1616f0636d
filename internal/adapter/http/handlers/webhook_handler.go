package handlers

import (
	"errors"
	"log"
	"net/http"

	"barcraft/internal/usecase"
	"barcraft/pkg"

	"github.com/gin-gonic/gin"
)

const stripeSignatureHeader = "Stripe-Signature"

// WebhookHandler receives asynchronous payment-provider events. Signature
// failures are rejected with 400; processing failures after a valid signature
// return 5xx so the provider redelivers.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.HandleEvent(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader)); err != nil {
		log.Printf("[webhook][handler] event failed err=%v", err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebhookSecretMissing):
		return pkg.NewDomainErrorSimple("WEBHOOK_NOT_CONFIGURED", "Webhook secret not configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
