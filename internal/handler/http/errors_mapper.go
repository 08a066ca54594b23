// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/internal/service"
	"github.com/atomic/get-tentor/internal/utils"
	"github.com/atomic/get-tentor/internal/validators"
	"github.com/atomic/get-tentor/models"
)

var errorStatusMap = map[error]int{
	service.ErrMenteeNotFound:   http.StatusNotFound,
	service.ErrTentorNotFound:   http.StatusNotFound,
	service.ErrFavoriteNotFound: http.StatusNotFound,

	service.ErrEmailAlreadyUsed:     http.StatusConflict,
	service.ErrMenteeNIMAlreadyUsed: http.StatusConflict,
	service.ErrTentorNIMAlreadyUsed: http.StatusConflict,
	service.ErrFavoriteExists:       http.StatusConflict,

	service.ErrInvalidStatus:   http.StatusBadRequest,
	service.ErrReviewExists:    http.StatusBadRequest,
	service.ErrEmailNotFound:   http.StatusBadRequest,
	service.ErrOTPMismatch:     http.StatusBadRequest,
	service.ErrResetTokenEmpty: http.StatusBadRequest,
	service.ErrPasswordEmpty:   http.StatusBadRequest,
	service.ErrUnsupportedRole: http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrResetTokenInvalid:  http.StatusUnauthorized,
	service.ErrNotResetToken:      http.StatusUnauthorized,
	service.ErrUnauthorized:       http.StatusUnauthorized,

	service.ErrOTPExpired:             http.StatusExpectationFailed,
	service.ErrRepeatPasswordMismatch: http.StatusExpectationFailed,

	validators.ErrInvalidRequest:    http.StatusBadRequest,
	validators.ErrInvalidNama:       http.StatusBadRequest,
	validators.ErrInvalidNoTelp:     http.StatusBadRequest,
	validators.ErrInvalidIPK:        http.StatusBadRequest,
	validators.ErrInvalidEmail:      http.StatusBadRequest,
	validators.ErrInvalidPassword:   http.StatusBadRequest,
	validators.ErrInvalidNIM:        http.StatusBadRequest,
	validators.ErrInvalidFotoURL:    http.StatusBadRequest,
	validators.ErrInvalidRating:     http.StatusBadRequest,
	validators.ErrInvalidKomentar:   http.StatusBadRequest,
	validators.ErrInvalidIDs:        http.StatusBadRequest,
	validators.ErrInvalidPengalaman: http.StatusBadRequest,
	validators.ErrInvalidMataKuliah: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrForbidden:                        http.StatusForbidden,
	ErrInvalidID:                        http.StatusBadRequest,
	ErrInvalidJSON:                      http.StatusBadRequest,
	ErrInvalidGzip:                      http.StatusBadRequest,
}

// statusFromError returns the status of the first known error in err's chain
// together with that error's message. Unknown errors map to 500 and the
// generic status text, so internal details never reach the caller.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and answers with its mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFromError(err)
	writeErrorStatus(w, r, err, status, msg)
}

func writeErrorStatus(w http.ResponseWriter, r *http.Request, err error, status int, msg string) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}

func writeMessage(w http.ResponseWriter, msg string, status int) {
	utils.WriteJSON(w, models.MessageResponse{Message: msg}, status)
}
