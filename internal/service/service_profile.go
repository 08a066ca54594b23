// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/internal/store"
	"github.com/atomic/get-tentor/models"
)

type profileService struct {
	mentees store.MenteeRepository
	tentors store.TentorRepository
	reviews store.ReviewRepository

	logger *logger.Logger
}

func NewProfileService(storages *store.Storages, logger *logger.Logger) ProfileService {
	return &profileService{
		mentees: storages.MenteeRepository,
		tentors: storages.TentorRepository,
		reviews: storages.ReviewRepository,
		logger:  logger,
	}
}

// UpdateMenteeProfile overwrites nama, noTelp and fotoUrl of the mentee
// owning email. The request is expected to be validated already.
func (s *profileService) UpdateMenteeProfile(ctx context.Context, email string, req models.ProfileUpdateRequest) error {
	mentee, err := s.mentees.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrMenteeNotFound
	}
	if err != nil {
		return fmt.Errorf("mentee lookup failed: %w", err)
	}

	mentee.Account.Nama = req.Nama
	mentee.Account.NoTelp = req.NoTelp
	mentee.Account.FotoURL = req.FotoURL

	if err = s.mentees.Update(ctx, mentee); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMenteeNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("mentee_id", mentee.ID).Msg("mentee profile update failed")
		return fmt.Errorf("mentee profile update failed: %w", err)
	}

	return nil
}

// UpdateTentorProfile overwrites the account profile fields, ipk and
// pengalaman of the tentor owning email. A non-nil ListMataKuliah replaces
// the tentor's course set in the same update.
func (s *profileService) UpdateTentorProfile(ctx context.Context, email string, req models.TentorProfileUpdateRequest) error {
	tentor, err := s.tentors.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrTentorNotFound
	}
	if err != nil {
		return fmt.Errorf("tentor lookup failed: %w", err)
	}

	tentor.Account.Nama = req.Nama
	tentor.Account.NoTelp = req.NoTelp
	tentor.Account.FotoURL = req.FotoURL
	tentor.IPK = req.IPK
	tentor.Pengalaman = models.JoinPengalaman(req.Pengalaman)
	if req.ListMataKuliah != nil {
		tentor.MataKuliah = normalizeMataKuliah(req.ListMataKuliah)
	}

	if err = s.tentors.Update(ctx, tentor); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTentorNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("tentor_id", tentor.ID).Msg("tentor profile update failed")
		return fmt.Errorf("tentor profile update failed: %w", err)
	}

	return nil
}

// GetTentor returns the tentor with its reviews and rating aggregate.
func (s *profileService) GetTentor(ctx context.Context, id int64) (models.TentorDetail, error) {
	return tentorDetail(ctx, s.tentors, s.reviews, id)
}

func (s *profileService) ListTentors(ctx context.Context, filter models.TentorFilter) ([]models.TentorSummary, error) {
	tentors, err := s.tentors.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("query", filter.Query).Msg("tentor listing failed")
		return nil, fmt.Errorf("tentor listing failed: %w", err)
	}

	return summarize(tentors), nil
}

func tentorDetail(ctx context.Context, tentors store.TentorRepository, reviews store.ReviewRepository, id int64) (models.TentorDetail, error) {
	tentor, err := tentors.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.TentorDetail{}, ErrTentorNotFound
	}
	if err != nil {
		return models.TentorDetail{}, fmt.Errorf("tentor lookup failed: %w", err)
	}

	return detailOf(ctx, tentors, reviews, tentor)
}

// detailOf loads the courses and reviews of tentor into its detail view.
func detailOf(ctx context.Context, tentors store.TentorRepository, reviews store.ReviewRepository, tentor models.Tentor) (models.TentorDetail, error) {
	courses, err := tentors.ListMataKuliah(ctx, tentor.ID)
	if err != nil {
		return models.TentorDetail{}, fmt.Errorf("course listing failed: %w", err)
	}
	tentor.MataKuliah = courses

	list, err := reviews.ListByTentor(ctx, tentor.ID)
	if err != nil {
		return models.TentorDetail{}, fmt.Errorf("review listing failed: %w", err)
	}

	return models.NewTentorDetail(tentor, list), nil
}

// normalizeMataKuliah trims course names and drops repeated ones, keeping
// the first occurrence. Client-supplied ids are ignored; storage resolves
// courses by nama.
func normalizeMataKuliah(courses []models.MataKuliah) []models.MataKuliah {
	out := make([]models.MataKuliah, 0, len(courses))
	seen := make(map[string]struct{}, len(courses))
	for _, mk := range courses {
		nama := strings.TrimSpace(mk.Nama)
		if nama == "" {
			continue
		}
		if _, dup := seen[nama]; dup {
			continue
		}
		seen[nama] = struct{}{}
		out = append(out, models.MataKuliah{Nama: nama})
	}
	return out
}

func summarize(tentors []models.Tentor) []models.TentorSummary {
	out := make([]models.TentorSummary, 0, len(tentors))
	for _, t := range tentors {
		out = append(out, models.NewTentorSummary(t))
	}
	return out
}
