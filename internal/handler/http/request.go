// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/atomic/get-tentor/internal/service"
	"github.com/atomic/get-tentor/models"
)

// decodeJSON reads the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeAndValidate reads the request body into dst and runs the request
// validator over it.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := decodeJSON(r, dst); err != nil {
		return err
	}
	return h.validator.Validate(r.Context(), dst)
}

// parseID parses a positive integer id.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	return parseID(chi.URLParam(r, name))
}

func queryID(r *http.Request, name string) (int64, error) {
	return parseID(r.URL.Query().Get(name))
}

// pathRole resolves the {role} segment of the password reset routes.
// Only mentees and tentors can reset a password.
func pathRole(r *http.Request) (models.Role, error) {
	switch role := models.Role(strings.ToUpper(chi.URLParam(r, "role"))); role {
	case models.RoleMentee, models.RoleTentor:
		return role, nil
	default:
		return "", service.ErrUnsupportedRole
	}
}
