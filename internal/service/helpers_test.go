// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/atomic/get-tentor/internal/mock"
	"github.com/atomic/get-tentor/internal/store"
	"github.com/atomic/get-tentor/models"
	"go.uber.org/mock/gomock"
)

var (
	errDB    = errors.New("db down")
	fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
)

// repoMocks bundles one mock per repository together with the Storages that
// expose them.
type repoMocks struct {
	accounts  *mock.MockAccountRepository
	mentees   *mock.MockMenteeRepository
	tentors   *mock.MockTentorRepository
	admins    *mock.MockAdminRepository
	favorites *mock.MockFavoriteRepository
	reviews   *mock.MockReviewRepository
	resets    *mock.MockPasswordResetRepository

	storages *store.Storages
}

func newRepoMocks(t *testing.T) *repoMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &repoMocks{
		accounts:  mock.NewMockAccountRepository(ctrl),
		mentees:   mock.NewMockMenteeRepository(ctrl),
		tentors:   mock.NewMockTentorRepository(ctrl),
		admins:    mock.NewMockAdminRepository(ctrl),
		favorites: mock.NewMockFavoriteRepository(ctrl),
		reviews:   mock.NewMockReviewRepository(ctrl),
		resets:    mock.NewMockPasswordResetRepository(ctrl),
	}
	m.storages = &store.Storages{
		AccountRepository:       m.accounts,
		MenteeRepository:        m.mentees,
		TentorRepository:        m.tentors,
		AdminRepository:         m.admins,
		FavoriteRepository:      m.favorites,
		ReviewRepository:        m.reviews,
		PasswordResetRepository: m.resets,
	}
	return m
}

func testMentee() models.Mentee {
	return models.Mentee{
		ID:        1,
		AccountID: 10,
		Account: models.Account{
			ID:           10,
			NIM:          "2206000001",
			Nama:         "Dina Putri",
			Email:        "mentee@example.com",
			PasswordHash: "digest-mentee",
			NoTelp:       "081234567890",
		},
	}
}

func testTentor() models.Tentor {
	return models.Tentor{
		ID:        2,
		AccountID: 20,
		Account: models.Account{
			ID:           20,
			NIM:          "2206000002",
			Nama:         "Budi Santoso",
			Email:        "tentor@example.com",
			PasswordHash: "digest-tentor",
			NoTelp:       "081298765432",
		},
		IPK:                3.8,
		Pengalaman:         "Asisten Kalkulus|Olimpiade Fisika",
		VerificationStatus: models.StatusPending,
		FavoriteCount:      5,
	}
}
