// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/internal/store"
	"github.com/atomic/get-tentor/models"
)

type reviewService struct {
	reviews store.ReviewRepository
	mentees store.MenteeRepository
	tentors store.TentorRepository

	now func() time.Time

	logger *logger.Logger
}

func NewReviewService(storages *store.Storages, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviews: storages.ReviewRepository,
		mentees: storages.MenteeRepository,
		tentors: storages.TentorRepository,
		now:     time.Now,
		logger:  logger,
	}
}

// Submit stores one review per (mentee, tentor) pair. Rating bounds are not
// re-checked here. The creation time comes from the server clock.
func (s *reviewService) Submit(ctx context.Context, req models.ReviewRequest) (models.ReviewView, error) {
	log := logger.FromContext(ctx)

	exists, err := s.reviews.Exists(ctx, req.MenteeID, req.TentorID)
	if err != nil {
		return models.ReviewView{}, fmt.Errorf("review check failed: %w", err)
	}
	if exists {
		return models.ReviewView{}, ErrReviewExists
	}

	mentee, err := s.mentees.FindByID(ctx, req.MenteeID)
	if errors.Is(err, store.ErrNotFound) {
		return models.ReviewView{}, ErrMenteeNotFound
	}
	if err != nil {
		return models.ReviewView{}, fmt.Errorf("mentee lookup failed: %w", err)
	}

	if _, err = s.tentors.FindByID(ctx, req.TentorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.ReviewView{}, ErrTentorNotFound
		}
		return models.ReviewView{}, fmt.Errorf("tentor lookup failed: %w", err)
	}

	review, err := s.reviews.Create(ctx, models.Review{
		MenteeID:  req.MenteeID,
		TentorID:  req.TentorID,
		Komentar:  req.Komentar,
		Rating:    req.Rating,
		CreatedAt: s.now().Truncate(time.Second),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return models.ReviewView{}, ErrReviewExists
	}
	if err != nil {
		log.Err(err).Int64("mentee_id", req.MenteeID).Int64("tentor_id", req.TentorID).Msg("review creation failed")
		return models.ReviewView{}, fmt.Errorf("review creation failed: %w", err)
	}

	log.Info().Int64("review_id", review.ID).Int64("tentor_id", review.TentorID).Msg("review submitted")
	return models.NewReviewView(review, mentee.Account), nil
}

// ListByTentor returns the reviews of an existing tentor, newest first.
func (s *reviewService) ListByTentor(ctx context.Context, tentorID int64) ([]models.ReviewView, error) {
	if _, err := s.tentors.FindByID(ctx, tentorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTentorNotFound
		}
		return nil, fmt.Errorf("tentor lookup failed: %w", err)
	}

	list, err := s.reviews.ListByTentor(ctx, tentorID)
	if err != nil {
		return nil, fmt.Errorf("review listing failed: %w", err)
	}
	if list == nil {
		list = []models.ReviewView{}
	}
	return list, nil
}
