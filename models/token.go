// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenScope distinguishes what a signed token may be used for.
type TokenScope string

const (
	// ScopeAccess tokens authenticate API calls.
	ScopeAccess TokenScope = "access"

	// ScopeResetPassword tokens authorize exactly one password change.
	ScopeResetPassword TokenScope = "reset_password"
)

// TokenClaims is the claim set of every token issued by the server.
//
// The "sub" claim carries the account email. Role and AccountID are filled
// for access tokens only.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Scope is the intended use of the token.
	Scope TokenScope `json:"scope"`

	// Role is the principal kind the access token was issued to.
	Role Role `json:"role,omitempty"`

	// PrincipalID is the mentee, tentor or admin id of the principal.
	PrincipalID int64 `json:"uid,omitempty"`
}

// Principal is the authenticated caller extracted from an access token.
type Principal struct {
	ID    int64
	Email string
	Role  Role
}
