// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side secrets handling: password digests and
// the signed tokens that authenticate API calls and password resets.
package crypto

import "github.com/atomic/get-tentor/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher produces and checks one-way password digests.
type PasswordHasher interface {
	// Hash returns the digest of plain.
	Hash(plain string) (string, error)
	// Verify reports whether plain matches digest. A malformed digest never
	// matches.
	Verify(plain, digest string) bool
}

// TokenManager issues and inspects signed tokens.
//
// Two kinds of tokens exist:
//
//	access          issued on login, identifies a principal and its role
//	reset_password  issued after a successful OTP check, carries only the email
type TokenManager interface {
	// IssueAccessToken signs an access token for p.
	IssueAccessToken(p models.Principal) (string, error)
	// ParseAccessToken validates token and returns its principal. Tokens of
	// any scope other than access are rejected.
	ParseAccessToken(token string) (models.Principal, error)
	// IssueResetToken signs a short-lived reset_password token for email.
	IssueResetToken(email string) (string, error)
	// EmailFromToken returns the subject of a valid token.
	EmailFromToken(token string) (string, error)
	// IsValid reports whether token has a valid signature, issuer and expiry.
	IsValid(token string) bool
	// IsResetScope reports whether a valid token carries the reset_password
	// scope.
	IsResetScope(token string) bool
}
