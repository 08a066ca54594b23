// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/models"
	"github.com/jackc/pgerrcode"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository] over the "favorites" table, keyed by
// (mentee_id, tentor_id).
type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by db.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *favoriteRepository) Exists(ctx context.Context, menteeID, tentorID int64) (bool, error) {
	found, err := r.queryExists(ctx, "favorites", sq.Eq{"mentee_id": menteeID, "tentor_id": tentorID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*favoriteRepository.Exists").
			Int64("mentee_id", menteeID).
			Int64("tentor_id", tentorID).
			Msg("failed to check favorite")
		return false, err
	}

	return found, nil
}

// Create inserts the pair.
//
// Error handling:
//   - unique violation → [ErrAlreadyExists];
//   - foreign key violation → [ErrNotFound].
func (r *favoriteRepository) Create(ctx context.Context, favorite models.Favorite) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("favorites").
		Columns("mentee_id", "tentor_id").
		Values(favorite.MenteeID, favorite.TentorID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.Create").
			Int64("mentee_id", favorite.MenteeID).
			Int64("tentor_id", favorite.TentorID).
			Msg("failed to insert favorite")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return ErrNotFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, favorite models.Favorite) error {
	query, args, err := psql.Delete("favorites").
		Where(sq.Eq{"mentee_id": favorite.MenteeID, "tentor_id": favorite.TentorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := execAffecting(ctx, r.DB, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*favoriteRepository.Delete").
			Int64("mentee_id", favorite.MenteeID).
			Int64("tentor_id", favorite.TentorID).
			Msg("failed to delete favorite")
		return err
	}

	return nil
}

func (r *favoriteRepository) ListTentorsByMentee(ctx context.Context, menteeID int64) ([]models.Tentor, error) {
	query, args, err := buildListFavoriteTentorsQuery(menteeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTentors(ctx, "*favoriteRepository.ListTentorsByMentee", query, args...)
}
