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

// passwordResetRepository is the PostgreSQL-backed implementation of
// [PasswordResetRepository]. One table holds the requests of every role,
// distinguished by the role column.
type passwordResetRepository struct {
	*DB
	logger *logger.Logger
}

// NewPasswordResetRepository constructs a [PasswordResetRepository] backed by db.
func NewPasswordResetRepository(db *DB, logger *logger.Logger) PasswordResetRepository {
	logger.Debug().Msg("creating password reset repository")
	return &passwordResetRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *passwordResetRepository) Create(ctx context.Context, request models.PasswordResetRequest) (models.PasswordResetRequest, error) {
	query, args, err := psql.Insert("password_reset_requests").
		Columns("role", "owner_id", "otp", "expiration_time").
		Values(string(request.Role), request.OwnerID, request.OTP, request.ExpirationTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.PasswordResetRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.QueryRowContext(ctx, query, args...).Scan(&request.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*passwordResetRepository.Create").
			Str("role", string(request.Role)).
			Int64("owner_id", request.OwnerID).
			Msg("failed to insert password reset request")
		return models.PasswordResetRequest{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return request, nil
}

func (r *passwordResetRepository) FindByOwnerAndOTP(ctx context.Context, role models.Role, ownerID int64, otp int) (models.PasswordResetRequest, error) {
	query, args, err := psql.Select("id", "role", "owner_id", "otp", "expiration_time").
		From("password_reset_requests").
		Where(sq.Eq{"role": string(role), "owner_id": ownerID, "otp": otp}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.PasswordResetRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		request  models.PasswordResetRequest
		roleName string
	)
	err = r.QueryRowContext(ctx, query, args...).
		Scan(&request.ID, &roleName, &request.OwnerID, &request.OTP, &request.ExpirationTime)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PasswordResetRequest{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*passwordResetRepository.FindByOwnerAndOTP").
			Int64("owner_id", ownerID).
			Msg("failed to scan password reset request")
		return models.PasswordResetRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	request.Role = models.Role(roleName)

	return request, nil
}

func (r *passwordResetRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("password_reset_requests").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := execAffecting(ctx, r.DB, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*passwordResetRepository.Delete").
			Int64("request_id", id).
			Msg("failed to delete password reset request")
		return err
	}

	return nil
}
