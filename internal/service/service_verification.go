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

type verificationService struct {
	tentors store.TentorRepository
	reviews store.ReviewRepository

	logger *logger.Logger
}

func NewVerificationService(storages *store.Storages, logger *logger.Logger) VerificationService {
	return &verificationService{
		tentors: storages.TentorRepository,
		reviews: storages.ReviewRepository,
		logger:  logger,
	}
}

// SetStatus validates status before any lookup, so an invalid literal never
// touches storage. Any status may follow any other.
func (s *verificationService) SetStatus(ctx context.Context, tentorID int64, status string) (models.TentorDetail, error) {
	log := logger.FromContext(ctx)

	newStatus, ok := models.ParseVerificationStatus(status)
	if !ok {
		return models.TentorDetail{}, ErrInvalidStatus
	}

	tentor, err := s.tentors.FindByID(ctx, tentorID)
	if errors.Is(err, store.ErrNotFound) {
		return models.TentorDetail{}, ErrTentorNotFound
	}
	if err != nil {
		return models.TentorDetail{}, fmt.Errorf("tentor lookup failed: %w", err)
	}

	previous := tentor.VerificationStatus
	tentor.VerificationStatus = newStatus
	if err = s.tentors.Update(ctx, tentor); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.TentorDetail{}, ErrTentorNotFound
		}
		log.Err(err).Int64("tentor_id", tentorID).Msg("status update failed")
		return models.TentorDetail{}, fmt.Errorf("status update failed: %w", err)
	}

	log.Info().
		Int64("tentor_id", tentorID).
		Str("from", string(previous)).
		Str("to", string(newStatus)).
		Msg("verification status changed")

	return detailOf(ctx, s.tentors, s.reviews, tentor)
}
