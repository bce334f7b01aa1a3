package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"vowline/internal/repository"
	"vowline/internal/usecase"
)

type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, status int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, Response{Message: message})
}

// statusFromError maps the domain's sentinel errors onto HTTP statuses.
// Anything unrecognized is an internal error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrMissingRoomFields),
		errors.Is(err, usecase.ErrMissingMessageFields),
		errors.Is(err, usecase.ErrMissingProposalFields),
		errors.Is(err, usecase.ErrProposalViaSend),
		errors.Is(err, usecase.ErrMissingEventFields),
		errors.Is(err, usecase.ErrMissingNoteFields),
		errors.Is(err, usecase.ErrMissingReviewFields),
		errors.Is(err, usecase.ErrInvalidRating),
		errors.Is(err, usecase.ErrMissingBillFields),
		errors.Is(err, usecase.ErrMissingScheduleFields),
		errors.Is(err, usecase.ErrInvalidScheduleStatus),
		errors.Is(err, usecase.ErrMissingSubscriberEmail):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrEmailNotVerified),
		errors.Is(err, usecase.ErrInvalidRefreshToken),
		errors.Is(err, usecase.ErrExpiredRefreshToken),
		errors.Is(err, usecase.ErrRevokedRefreshToken):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrNotMessageSender),
		errors.Is(err, usecase.ErrNotEventOwner):
		return http.StatusForbidden
	case errors.Is(err, repository.ErrMessageNotFound),
		errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrEventNotFound),
		errors.Is(err, repository.ErrNoteNotFound),
		errors.Is(err, repository.ErrReviewNotFound),
		errors.Is(err, repository.ErrBillNotFound),
		errors.Is(err, repository.ErrScheduleNotFound),
		errors.Is(err, repository.ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrEmailAlreadyTaken),
		errors.Is(err, usecase.ErrBillAlreadyPaid),
		errors.Is(err, repository.ErrProposalAlreadyResolved),
		errors.Is(err, repository.ErrAlreadySubscribed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
