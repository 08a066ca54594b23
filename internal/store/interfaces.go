// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/atomic/get-tentor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository answers identity questions shared by every role.
type AccountRepository interface {
	// ExistsByEmail reports whether any account uses email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsByNIM reports whether any account uses nim.
	ExistsByNIM(ctx context.Context, nim string) (bool, error)
	// UpdatePassword replaces the password digest of an account.
	UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error
}

// MenteeRepository persists mentees together with their accounts.
type MenteeRepository interface {
	// Create inserts the account and the mentee in one transaction and
	// returns the mentee with its assigned identifiers.
	Create(ctx context.Context, mentee models.Mentee) (models.Mentee, error)
	FindByID(ctx context.Context, id int64) (models.Mentee, error)
	FindByEmail(ctx context.Context, email string) (models.Mentee, error)
	// Update persists the profile fields of the mentee's account.
	Update(ctx context.Context, mentee models.Mentee) error
}

// TentorRepository persists tentors together with their accounts.
type TentorRepository interface {
	// Create inserts the account and the tentor in one transaction.
	Create(ctx context.Context, tentor models.Tentor) (models.Tentor, error)
	FindByID(ctx context.Context, id int64) (models.Tentor, error)
	FindByEmail(ctx context.Context, email string) (models.Tentor, error)
	// Update persists every mutable tentor field and the account profile
	// fields in one transaction. A non-nil MataKuliah replaces the tentor's
	// course set in the same transaction.
	Update(ctx context.Context, tentor models.Tentor) error
	List(ctx context.Context, filter models.TentorFilter) ([]models.Tentor, error)
	// ListMataKuliah returns the courses taught by the tentor ordered by
	// nama. An empty result is an empty slice.
	ListMataKuliah(ctx context.Context, tentorID int64) ([]models.MataKuliah, error)
}

// AdminRepository looks up admins. Admins are provisioned outside the API.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (models.Admin, error)
}

// FavoriteRepository stores (mentee, tentor) favorite pairs.
type FavoriteRepository interface {
	Exists(ctx context.Context, menteeID, tentorID int64) (bool, error)
	Create(ctx context.Context, favorite models.Favorite) error
	// Delete removes the pair, returning [ErrNotFound] when it is absent.
	Delete(ctx context.Context, favorite models.Favorite) error
	// ListTentorsByMentee returns the tentors favorited by a mentee.
	ListTentorsByMentee(ctx context.Context, menteeID int64) ([]models.Tentor, error)
}

// ReviewRepository stores reviews and their reviewer projections.
type ReviewRepository interface {
	Exists(ctx context.Context, menteeID, tentorID int64) (bool, error)
	Create(ctx context.Context, review models.Review) (models.Review, error)
	// ListByTentor returns the reviews of a tentor, newest first.
	ListByTentor(ctx context.Context, tentorID int64) ([]models.ReviewView, error)
}

// PasswordResetRepository stores pending OTP requests.
type PasswordResetRepository interface {
	Create(ctx context.Context, request models.PasswordResetRequest) (models.PasswordResetRequest, error)
	// FindByOwnerAndOTP returns the newest request of the owner carrying otp.
	FindByOwnerAndOTP(ctx context.Context, role models.Role, ownerID int64, otp int) (models.PasswordResetRequest, error)
	Delete(ctx context.Context, id int64) error
}
