// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request payloads before they reach the
// service layer.
//
// Validation rules are declared with `validate` struct tags on the request
// types in package models. Besides the built-in rules of
// go-playground/validator, three domain rules are registered:
//
//	nama    letters and spaces only, not blank
//	notelp  10 to 13 digits
//	ipk     a number between 0.00 and 4.00
//
// A failed rule is reported as one of the package sentinel errors whose text
// is the user-facing message.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named struct fields.
	Validate(context.Context, any, ...string) error
}
