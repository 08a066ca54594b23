// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/models"
)

type adminRepository struct {
	*DB
	logger *logger.Logger
}

// NewAdminRepository constructs an [AdminRepository] backed by db.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (models.Admin, error) {
	query, args, err := selectAdmins().Where(sq.Eq{"a.email": email}).ToSql()
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	admin, err := scanAdmin(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*adminRepository.FindByEmail").Msg("failed to scan admin")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return admin, nil
}
