// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/models"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository]. Reviews are insert-only.
type reviewRepository struct {
	*DB
	logger *logger.Logger
}

// NewReviewRepository constructs a [ReviewRepository] backed by db.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *reviewRepository) Exists(ctx context.Context, menteeID, tentorID int64) (bool, error) {
	found, err := r.queryExists(ctx, "reviews", sq.Eq{"mentee_id": menteeID, "tentor_id": tentorID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*reviewRepository.Exists").
			Int64("mentee_id", menteeID).
			Int64("tentor_id", tentorID).
			Msg("failed to check review")
		return false, err
	}

	return found, nil
}

// Create inserts the review and returns it with its id. A unique violation
// on (mentee_id, tentor_id) is reported as [ErrAlreadyExists].
func (r *reviewRepository) Create(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("reviews").
		Columns("mentee_id", "tentor_id", "komentar", "rating", "created_at").
		Values(review.MenteeID, review.TentorID, review.Komentar, review.Rating, review.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.QueryRowContext(ctx, query, args...).Scan(&review.ID); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.Create").
			Int64("mentee_id", review.MenteeID).
			Int64("tentor_id", review.TentorID).
			Msg("failed to insert review")

		if _, ok := uniqueViolation(err); ok {
			return models.Review{}, ErrAlreadyExists
		}
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return review, nil
}

func (r *reviewRepository) ListByTentor(ctx context.Context, tentorID int64) ([]models.ReviewView, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReviewsByTentorQuery(tentorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListByTentor").Int64("tentor_id", tentorID).Msg("failed to query reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.ReviewView, 0)
	for rows.Next() {
		var (
			view      models.ReviewView
			createdAt time.Time
		)
		if err := rows.Scan(&view.ID, &view.Rating, &view.Komentar, &view.ReviewerNama, &view.ReviewerNIM, &createdAt); err != nil {
			log.Err(err).Str("func", "*reviewRepository.ListByTentor").Msg("failed to scan review row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		view.CreatedAt = createdAt.Format(models.ReviewTimeLayout)
		reviews = append(reviews, view)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListByTentor").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}
