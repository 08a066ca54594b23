// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/internal/utils"
	"github.com/atomic/get-tentor/models"
)

func (h *Handler) registerMentee(w http.ResponseWriter, r *http.Request) {
	var req models.MenteeRegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	mentee, err := h.services.AccountService.RegisterMentee(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("mentee_id", mentee.ID).Msg("mentee registered")
	utils.WriteJSON(w, models.NewMenteeProfile(mentee), http.StatusCreated)
}

func (h *Handler) registerTentor(w http.ResponseWriter, r *http.Request) {
	var req models.TentorRegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tentor, err := h.services.AccountService.RegisterTentor(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("tentor_id", tentor.ID).Msg("tentor registered")
	utils.WriteJSON(w, models.NewTentorDetail(tentor, nil), http.StatusCreated)
}

// login returns the login endpoint of role. The issued access token is sent
// both in the Authorization header and in the JSON body.
func (h *Handler) login(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := h.decodeAndValidate(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		resp, err := h.services.AccountService.Login(r.Context(), role, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Int64("id", resp.ID).Str("role", string(role)).Msg("user successfully logged in")

		w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", resp.Token))
		utils.WriteJSON(w, resp, http.StatusOK)
	}
}
