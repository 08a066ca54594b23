// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/atomic/get-tentor/internal/service"
	"github.com/atomic/get-tentor/internal/utils"
	"github.com/atomic/get-tentor/models"
)

const msgProfileUpdated = "Profil berhasil diperbarui"

func (h *Handler) updateMenteeProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	var req models.ProfileUpdateRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeProfileError(w, r, err)
		return
	}

	if err := h.services.ProfileService.UpdateMenteeProfile(r.Context(), principal.Email, req); err != nil {
		writeProfileError(w, r, err)
		return
	}

	writeMessage(w, msgProfileUpdated, http.StatusOK)
}

func (h *Handler) updateTentorProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	var req models.TentorProfileUpdateRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeProfileError(w, r, err)
		return
	}

	if err := h.services.ProfileService.UpdateTentorProfile(r.Context(), principal.Email, req); err != nil {
		writeProfileError(w, r, err)
		return
	}

	writeMessage(w, msgProfileUpdated, http.StatusOK)
}

// writeProfileError answers every known profile update failure, including
// an unknown account, with 400 Bad Request.
func writeProfileError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFromError(err)
	if status < http.StatusInternalServerError {
		status = http.StatusBadRequest
	}
	writeErrorStatus(w, r, err, status, msg)
}
