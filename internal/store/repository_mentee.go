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

// menteeRepository is the PostgreSQL-backed implementation of
// [MenteeRepository]. Mentee rows reference their account through
// mentees.account_id.
type menteeRepository struct {
	*DB
	logger *logger.Logger
}

// NewMenteeRepository constructs a [MenteeRepository] backed by db.
func NewMenteeRepository(db *DB, logger *logger.Logger) MenteeRepository {
	logger.Debug().Msg("creating mentee repository")
	return &menteeRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts the account and the mentee row in one transaction.
//
// Error handling:
//   - unique violation on accounts.email → [ErrEmailAlreadyExists];
//   - unique violation on accounts.nim → [ErrNIMAlreadyExists].
func (r *menteeRepository) Create(ctx context.Context, mentee models.Mentee) (models.Mentee, error) {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		account, err := insertAccount(ctx, tx, mentee.Account)
		if err != nil {
			return err
		}

		query, args, err := psql.Insert("mentees").
			Columns("account_id").
			Values(account.ID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&mentee.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		mentee.Account = account
		mentee.AccountID = account.ID
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*menteeRepository.Create").Msg("failed to create mentee")
		return models.Mentee{}, err
	}

	return mentee, nil
}

func (r *menteeRepository) FindByID(ctx context.Context, id int64) (models.Mentee, error) {
	return r.findOne(ctx, sq.Eq{"m.id": id})
}

func (r *menteeRepository) FindByEmail(ctx context.Context, email string) (models.Mentee, error) {
	return r.findOne(ctx, sq.Eq{"a.email": email})
}

// Update writes nama, no_telp and foto_url of the mentee's account.
func (r *menteeRepository) Update(ctx context.Context, mentee models.Mentee) error {
	log := logger.FromContext(ctx)

	account := mentee.Account
	account.ID = mentee.AccountID

	query, args, err := buildUpdateAccountProfileQuery(account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := execAffecting(ctx, r.DB, query, args...); err != nil {
		log.Err(err).
			Str("func", "*menteeRepository.Update").
			Int64("mentee_id", mentee.ID).
			Msg("failed to update mentee profile")
		return err
	}

	return nil
}

func (r *menteeRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.Mentee, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectMentees().Where(where).ToSql()
	if err != nil {
		return models.Mentee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	mentee, err := scanMentee(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Mentee{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*menteeRepository.findOne").Msg("failed to scan mentee")
		return models.Mentee{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return mentee, nil
}
