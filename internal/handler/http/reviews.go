// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/atomic/get-tentor/internal/utils"
	"github.com/atomic/get-tentor/models"
)

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.Submit(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) listTentorReviews(w http.ResponseWriter, r *http.Request) {
	tentorID, err := pathID(r, "tentorId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviews, err := h.services.ReviewService.ListByTentor(r.Context(), tentorID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}
