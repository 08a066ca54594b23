// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/atomic/get-tentor/internal/service"
	"github.com/atomic/get-tentor/internal/utils"
	"github.com/atomic/get-tentor/models"
)

const (
	msgEmailSent       = "Email sent for verification!"
	msgOTPVerified     = "OTP berhasil diverifikasi"
	msgPasswordChanged = "Password telah diganti!"
)

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	role, err := pathRole(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrEmailNotFound, err))
		return
	}

	if err = h.services.PasswordResetService.VerifyEmail(r.Context(), role, email); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, msgEmailSent, http.StatusOK)
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	role, err := pathRole(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.VerifyOTPRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resetToken, err := h.services.PasswordResetService.VerifyOTP(r.Context(), role, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.VerifyOTPResponse{Message: msgOTPVerified, ResetToken: resetToken}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	role, err := pathRole(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ChangePasswordRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PasswordResetService.ChangePassword(r.Context(), role, req); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, msgPasswordChanged, http.StatusOK)
}
