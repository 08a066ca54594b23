// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/internal/store"
	"github.com/atomic/get-tentor/models"
)

// favoriteService maintains (mentee, tentor) favorite pairs and the cached
// favorite counter of tentors.
//
// Add leaves the counter untouched while Remove decrements it, so the
// counter is not guaranteed to equal the number of favorite rows.
type favoriteService struct {
	favorites store.FavoriteRepository
	mentees   store.MenteeRepository
	tentors   store.TentorRepository

	logger *logger.Logger
}

func NewFavoriteService(storages *store.Storages, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favorites: storages.FavoriteRepository,
		mentees:   storages.MenteeRepository,
		tentors:   storages.TentorRepository,
		logger:    logger,
	}
}

// Add stores the pair.
//
// Returns ErrFavoriteExists when the pair is already stored, otherwise
// ErrMenteeNotFound or ErrTentorNotFound when an id does not resolve.
func (s *favoriteService) Add(ctx context.Context, menteeID, tentorID int64) error {
	log := logger.FromContext(ctx)

	exists, err := s.favorites.Exists(ctx, menteeID, tentorID)
	if err != nil {
		return fmt.Errorf("favorite check failed: %w", err)
	}
	if exists {
		return ErrFavoriteExists
	}

	if err = s.ensureMentee(ctx, menteeID); err != nil {
		return err
	}
	if _, err = s.findTentor(ctx, tentorID); err != nil {
		return err
	}

	err = s.favorites.Create(ctx, models.Favorite{MenteeID: menteeID, TentorID: tentorID})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrFavoriteExists
	case errors.Is(err, store.ErrNotFound):
		return ErrTentorNotFound
	case err != nil:
		log.Err(err).Int64("mentee_id", menteeID).Int64("tentor_id", tentorID).Msg("favorite creation failed")
		return fmt.Errorf("favorite creation failed: %w", err)
	}

	log.Info().Int64("mentee_id", menteeID).Int64("tentor_id", tentorID).Msg("favorite added")
	return nil
}

// Remove deletes the pair and decrements the tentor's favorite counter by
// one. The counter has no floor.
//
// Returns ErrFavoriteNotFound when the pair is absent and ErrTentorNotFound
// when the tentor does not resolve.
func (s *favoriteService) Remove(ctx context.Context, menteeID, tentorID int64) error {
	log := logger.FromContext(ctx)

	exists, err := s.favorites.Exists(ctx, menteeID, tentorID)
	if err != nil {
		return fmt.Errorf("favorite check failed: %w", err)
	}
	if !exists {
		return ErrFavoriteNotFound
	}

	tentor, err := s.findTentor(ctx, tentorID)
	if err != nil {
		return err
	}

	err = s.favorites.Delete(ctx, models.Favorite{MenteeID: menteeID, TentorID: tentorID})
	if errors.Is(err, store.ErrNotFound) {
		return ErrFavoriteNotFound
	}
	if err != nil {
		log.Err(err).Int64("mentee_id", menteeID).Int64("tentor_id", tentorID).Msg("favorite deletion failed")
		return fmt.Errorf("favorite deletion failed: %w", err)
	}

	tentor.FavoriteCount--
	if err = s.tentors.Update(ctx, tentor); err != nil {
		log.Err(err).Int64("tentor_id", tentorID).Msg("favorite counter update failed")
		return fmt.Errorf("favorite counter update failed: %w", err)
	}

	log.Info().Int64("mentee_id", menteeID).Int64("tentor_id", tentorID).Int("favorite_count", tentor.FavoriteCount).Msg("favorite removed")
	return nil
}

// List returns the tentors favorited by the mentee, never nil.
func (s *favoriteService) List(ctx context.Context, menteeID int64) ([]models.TentorSummary, error) {
	tentors, err := s.favorites.ListTentorsByMentee(ctx, menteeID)
	if err != nil {
		return nil, fmt.Errorf("favorite listing failed: %w", err)
	}
	return summarize(tentors), nil
}

func (s *favoriteService) ensureMentee(ctx context.Context, id int64) error {
	_, err := s.mentees.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrMenteeNotFound
	}
	if err != nil {
		return fmt.Errorf("mentee lookup failed: %w", err)
	}
	return nil
}

func (s *favoriteService) findTentor(ctx context.Context, id int64) (models.Tentor, error) {
	tentor, err := s.tentors.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Tentor{}, ErrTentorNotFound
	}
	if err != nil {
		return models.Tentor{}, fmt.Errorf("tentor lookup failed: %w", err)
	}
	return tentor, nil
}
