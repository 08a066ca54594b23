// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced by the HTTP layer itself.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrForbidden is returned when an authenticated principal calls a route
	// reserved for another role.
	ErrForbidden = errors.New("Forbidden")

	// ErrInvalidID is returned when a path or query id is not a positive integer.
	ErrInvalidID = errors.New("ID harus berupa angka")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("Invalid JSON was passed")

	// ErrInvalidGzip is returned when a gzip-encoded request body has no
	// valid gzip header.
	ErrInvalidGzip = errors.New("Invalid gzip data")
)
