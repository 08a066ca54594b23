// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/atomic/get-tentor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService registers accounts and authenticates principals.
type AccountService interface {
	RegisterMentee(ctx context.Context, req models.MenteeRegisterRequest) (models.Mentee, error)
	RegisterTentor(ctx context.Context, req models.TentorRegisterRequest) (models.Tentor, error)
	// Login checks credentials of a principal of the given role and issues
	// an access token.
	Login(ctx context.Context, role models.Role, req models.LoginRequest) (models.LoginResponse, error)
	// Authenticate resolves an access token to its principal.
	Authenticate(ctx context.Context, token string) (models.Principal, error)
}

// ProfileService reads tentor profiles and updates mentee and tentor profiles.
type ProfileService interface {
	UpdateMenteeProfile(ctx context.Context, email string, req models.ProfileUpdateRequest) error
	UpdateTentorProfile(ctx context.Context, email string, req models.TentorProfileUpdateRequest) error
	GetTentor(ctx context.Context, id int64) (models.TentorDetail, error)
	ListTentors(ctx context.Context, filter models.TentorFilter) ([]models.TentorSummary, error)
}

// VerificationService drives the tentor verification workflow.
type VerificationService interface {
	// SetStatus overwrites the verification status of a tentor. status must
	// be one of the four status literals, matched case-sensitively.
	SetStatus(ctx context.Context, tentorID int64, status string) (models.TentorDetail, error)
}

// FavoriteService maintains the favorite ledger.
type FavoriteService interface {
	Add(ctx context.Context, menteeID, tentorID int64) error
	Remove(ctx context.Context, menteeID, tentorID int64) error
	List(ctx context.Context, menteeID int64) ([]models.TentorSummary, error)
}

// ReviewService maintains the review ledger.
type ReviewService interface {
	Submit(ctx context.Context, req models.ReviewRequest) (models.ReviewView, error)
	ListByTentor(ctx context.Context, tentorID int64) ([]models.ReviewView, error)
}

// PasswordResetService runs the OTP based password reset of one role.
type PasswordResetService interface {
	// VerifyEmail issues an OTP for the account and mails it.
	VerifyEmail(ctx context.Context, role models.Role, email string) error
	// VerifyOTP consumes a pending OTP and returns a reset token.
	VerifyOTP(ctx context.Context, role models.Role, req models.VerifyOTPRequest) (string, error)
	// ChangePassword sets a new password for the account named by the reset
	// token.
	ChangePassword(ctx context.Context, role models.Role, req models.ChangePasswordRequest) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
