package handlers

import (
	"errors"
	"log"
	"net/http"

	request "barcraft/internal/adapter/http/dto/request"
	response "barcraft/internal/adapter/http/dto/response"
	"barcraft/internal/usecase"
	"barcraft/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuizPayload = pkg.NewDomainErrorSimple("INVALID_QUIZ_INPUT", "Invalid quiz payload", http.StatusBadRequest)

// QuizHandler handles the anonymous quiz flow: recording answers on a session
// and submitting the session for recipe generation.

type QuizHandler struct {
	usecase usecase.IQuizUseCase
}

func NewQuizHandler(uc usecase.IQuizUseCase) *QuizHandler {
	return &QuizHandler{usecase: uc}
}

// RecordAnswers merges a batch of answers into a quiz session, creating the
// session on first contact.
func (h *QuizHandler) RecordAnswers(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[quiz][handler] record-answers start session_id=%s", sessionID)

	var payload request.QuizAnswersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[quiz][handler] record-answers invalid payload session_id=%s err=%v", sessionID, err)
		c.JSON(errInvalidQuizPayload.HTTPStatus, errInvalidQuizPayload.ToHTTPError())
		return
	}
	answers, err := payload.ResolveAnswers()
	if err != nil {
		log.Printf("[quiz][handler] record-answers invalid answers session_id=%s err=%v", sessionID, err)
		c.JSON(errInvalidQuizPayload.HTTPStatus, errInvalidQuizPayload.ToHTTPError())
		return
	}

	sess, err := h.usecase.RecordAnswers(c.Request.Context(), payload.VenueID, sessionID, answers)
	if err != nil {
		log.Printf("[quiz][handler] record-answers failed session_id=%s err=%v", sessionID, err)
		appErr := mapQuizError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quiz][handler] record-answers success session_id=%s answers=%d", sessionID, len(sess.Answers))

	c.JSON(http.StatusOK, response.FromSession(sess))
}

// Submit closes the quiz and returns the payable order id. The body is
// optional and may carry a final answer batch.
func (h *QuizHandler) Submit(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[quiz][handler] submit start session_id=%s", sessionID)

	var payload request.QuizSubmitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Printf("[quiz][handler] submit invalid payload session_id=%s err=%v", sessionID, err)
			c.JSON(errInvalidQuizPayload.HTTPStatus, errInvalidQuizPayload.ToHTTPError())
			return
		}
	}
	answers, err := payload.ResolveAnswers()
	if err != nil {
		log.Printf("[quiz][handler] submit invalid answers session_id=%s err=%v", sessionID, err)
		c.JSON(errInvalidQuizPayload.HTTPStatus, errInvalidQuizPayload.ToHTTPError())
		return
	}

	orderID, err := h.usecase.Submit(c.Request.Context(), sessionID, answers)
	if err != nil {
		log.Printf("[quiz][handler] submit failed session_id=%s err=%v", sessionID, err)
		appErr := mapQuizError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quiz][handler] submit success session_id=%s order_id=%s", sessionID, orderID)

	c.JSON(http.StatusCreated, response.SubmitResponse{OrderID: orderID})
}

func mapQuizError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidVenueID), errors.Is(err, usecase.ErrInvalidAnswers):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionAlreadySubmitted):
		return pkg.NewDomainErrorSimple("SESSION_ALREADY_SUBMITTED", "Session already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrRecipeGenerationFailed):
		return pkg.NewDomainErrorSimple("RECIPE_ENGINE_UNAVAILABLE", "Recipe generation is temporarily unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
