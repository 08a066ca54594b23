// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/atomic/get-tentor/internal/service"
	"github.com/atomic/get-tentor/internal/utils"
	"github.com/atomic/get-tentor/models"
)

func (h *Handler) getTentor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	detail, err := h.services.ProfileService.GetTentor(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}

// listTentors lists approved tentors, optionally filtered by name (?q=).
func (h *Handler) listTentors(w http.ResponseWriter, r *http.Request) {
	filter := models.TentorFilter{
		Query:  r.URL.Query().Get("q"),
		Status: models.StatusApproved,
	}
	h.writeTentors(w, r, filter)
}

// listAllTentors is the admin listing: any status unless ?status= is given.
func (h *Handler) listAllTentors(w http.ResponseWriter, r *http.Request) {
	filter := models.TentorFilter{Query: r.URL.Query().Get("q")}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := models.ParseVerificationStatus(raw)
		if !ok {
			writeError(w, r, service.ErrInvalidStatus)
			return
		}
		filter.Status = status
	}

	h.writeTentors(w, r, filter)
}

func (h *Handler) writeTentors(w http.ResponseWriter, r *http.Request, filter models.TentorFilter) {
	tentors, err := h.services.ProfileService.ListTentors(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tentors, http.StatusOK)
}

func (h *Handler) setTentorStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SetStatusRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	detail, err := h.services.VerificationService.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}
