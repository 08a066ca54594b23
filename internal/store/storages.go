// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/atomic/get-tentor/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	AccountRepository       AccountRepository
	MenteeRepository        MenteeRepository
	TentorRepository        TentorRepository
	AdminRepository         AdminRepository
	FavoriteRepository      FavoriteRepository
	ReviewRepository        ReviewRepository
	PasswordResetRepository PasswordResetRepository
}

// NewStorages builds PostgreSQL-backed repositories sharing db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")

	return &Storages{
		AccountRepository:       NewAccountRepository(db, logger),
		MenteeRepository:        NewMenteeRepository(db, logger),
		TentorRepository:        NewTentorRepository(db, logger),
		AdminRepository:         NewAdminRepository(db, logger),
		FavoriteRepository:      NewFavoriteRepository(db, logger),
		ReviewRepository:        NewReviewRepository(db, logger),
		PasswordResetRepository: NewPasswordResetRepository(db, logger),
	}
}
