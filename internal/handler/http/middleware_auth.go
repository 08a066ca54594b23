// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/atomic/get-tentor/internal/utils"
	"github.com/atomic/get-tentor/models"
)

// auth returns middleware that admits only callers holding a valid access
// token issued to one of roles.
//
// The bearer token is taken from the "Authorization" header and resolved by
// [service.AccountService.Authenticate]. The resulting principal is stored in
// the request context, see [utils.GetPrincipalFromContext].
//
// Missing, malformed or rejected tokens are answered with 401 Unauthorized.
// A valid token of another role is answered with 403 Forbidden.
func (h *Handler) auth(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, r, ErrEmptyAuthorizationHeader)
				return
			}

			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				writeError(w, r, err)
				return
			}

			ctx := r.Context()
			principal, err := h.services.AccountService.Authenticate(ctx, tokenString)
			if err != nil {
				writeError(w, r, err)
				return
			}

			if !slices.Contains(roles, principal.Role) {
				writeError(w, r, ErrForbidden)
				return
			}

			ctx = utils.WithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
