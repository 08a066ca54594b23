// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PasswordResetRequest is a pending OTP issued to the owner of a mentee or
// tentor account. It is single-use: deleted once verified or found expired.
type PasswordResetRequest struct {
	ID             int64
	Role           Role
	OwnerID        int64
	OTP            int
	ExpirationTime time.Time
}

// Expired reports whether the request is no longer valid at now.
func (p PasswordResetRequest) Expired(now time.Time) bool {
	return p.ExpirationTime.Before(now)
}

// VerifyOTPRequest is the body of POST /api/forgot-password/{role}/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   int    `json:"otp"`
}

// ChangePasswordRequest is the body of
// POST /api/forgot-password/{role}/change-password.
type ChangePasswordRequest struct {
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
	ResetToken     string `json:"resetToken"`
}

// VerifyOTPResponse carries the reset token issued after a successful OTP check.
type VerifyOTPResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}
