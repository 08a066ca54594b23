// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/atomic/get-tentor/internal/logger"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] over the "accounts" table.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	found, err := r.queryExists(ctx, "accounts", sq.Eq{"email": email})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*accountRepository.ExistsByEmail").
			Msg("failed to check email")
		return false, err
	}

	return found, nil
}

func (r *accountRepository) ExistsByNIM(ctx context.Context, nim string) (bool, error) {
	found, err := r.queryExists(ctx, "accounts", sq.Eq{"nim": nim})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*accountRepository.ExistsByNIM").
			Msg("failed to check nim")
		return false, err
	}

	return found, nil
}

// UpdatePassword replaces the digest. [ErrNotFound] is returned when no
// account has accountID.
func (r *accountRepository) UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("accounts").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := execAffecting(ctx, r.DB, query, args...); err != nil {
		log.Err(err).
			Str("func", "*accountRepository.UpdatePassword").
			Int64("account_id", accountID).
			Msg("failed to update password")
		return err
	}

	return nil
}
