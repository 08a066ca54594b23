// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Errors returned to API callers. The text of each error is the exact
// user-facing message.
var (
	ErrEmailAlreadyUsed     = errors.New("Email sudah digunakan!")
	ErrMenteeNIMAlreadyUsed = errors.New("Nim sudah digunakan!")
	ErrTentorNIMAlreadyUsed = errors.New("Nim telah digunakan")
	ErrInvalidCredentials   = errors.New("Invalid email or password")

	ErrMenteeNotFound = errors.New("Mentee tidak ditemukan")
	ErrTentorNotFound = errors.New("Tentor tidak ditemukan")

	ErrInvalidStatus = errors.New("Status tidak valid. Gunakan: PENDING, APPROVED, REJECTED, SUSPENDED")

	ErrFavoriteExists   = errors.New("Favorite sudah ada")
	ErrFavoriteNotFound = errors.New("Favorite tidak ditemukan")

	ErrReviewExists = errors.New("Review already exists for this tentor by this mentee")

	ErrEmailNotFound          = errors.New("Email tidak ditemukan")
	ErrOTPMismatch            = errors.New("OTP Tidak Sesuai")
	ErrOTPExpired             = errors.New("OTP telah kadaluarsa")
	ErrRepeatPasswordMismatch = errors.New("Tolong masukkan Password ulang!")
	ErrPasswordEmpty          = errors.New("Password tidak boleh kosong!")
	ErrResetTokenEmpty        = errors.New("Reset token tidak boleh kosong!")
	ErrResetTokenInvalid      = errors.New("Reset token tidak valid atau sudah expired!")
	ErrNotResetToken          = errors.New("Token ini bukan token reset password!")

	ErrUnauthorized    = errors.New("Unauthorized")
	ErrUnsupportedRole = errors.New("Role tidak didukung")
)

// Internal errors. They never reach API callers verbatim.
var (
	ErrPasswordHashingFailed = errors.New("password hashing failed")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrOTPGenerationFailed   = errors.New("otp generation failed")
)
