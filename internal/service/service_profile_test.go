// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/internal/store"
	"github.com/atomic/get-tentor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileSvc(t *testing.T) (ProfileService, *repoMocks) {
	t.Helper()
	repos := newRepoMocks(t)
	return NewProfileService(repos.storages, logger.Nop()), repos
}

func TestProfileService_UpdateMenteeProfile(t *testing.T) {
	svc, repos := newTestProfileSvc(t)
	ctx := context.Background()

	repos.mentees.EXPECT().FindByEmail(ctx, "mentee@example.com").Return(testMentee(), nil)
	repos.mentees.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m models.Mentee) error {
		assert.Equal(t, "Dina Ayu", m.Account.Nama)
		assert.Equal(t, "0811111111", m.Account.NoTelp)
		assert.Equal(t, "https://cdn.example.com/d.png", m.Account.FotoURL)
		assert.Equal(t, "2206000001", m.Account.NIM, "identity fields stay untouched")
		return nil
	})

	err := svc.UpdateMenteeProfile(ctx, "mentee@example.com", models.ProfileUpdateRequest{
		Nama:    "Dina Ayu",
		NoTelp:  "0811111111",
		FotoURL: "https://cdn.example.com/d.png",
	})
	require.NoError(t, err)
}

func TestProfileService_UpdateMenteeProfile_NotFound(t *testing.T) {
	svc, repos := newTestProfileSvc(t)
	ctx := context.Background()

	repos.mentees.EXPECT().FindByEmail(ctx, gomock.Any()).Return(models.Mentee{}, store.ErrNotFound)

	err := svc.UpdateMenteeProfile(ctx, "ghost@example.com", models.ProfileUpdateRequest{Nama: "Ghost"})
	require.ErrorIs(t, err, ErrMenteeNotFound)
}

func TestProfileService_UpdateTentorProfile(t *testing.T) {
	svc, repos := newTestProfileSvc(t)
	ctx := context.Background()

	repos.tentors.EXPECT().FindByEmail(ctx, "tentor@example.com").Return(testTentor(), nil)
	repos.tentors.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tn models.Tentor) error {
		assert.Equal(t, 3.9, tn.IPK)
		assert.Equal(t, "Mentor Basis Data", tn.Pengalaman)
		assert.Equal(t, "Budi S", tn.Account.Nama)
		assert.Equal(t, models.StatusPending, tn.VerificationStatus)
		assert.Equal(t, 5, tn.FavoriteCount)
		assert.Nil(t, tn.MataKuliah)
		return nil
	})

	err := svc.UpdateTentorProfile(ctx, "tentor@example.com", models.TentorProfileUpdateRequest{
		Nama:       "Budi S",
		NoTelp:     "0812345678",
		IPK:        3.9,
		Pengalaman: []string{"Mentor Basis Data"},
	})
	require.NoError(t, err)
}

func TestProfileService_UpdateTentorProfile_ReplacesMataKuliah(t *testing.T) {
	tests := []struct {
		name string
		in   []models.MataKuliah
		want []models.MataKuliah
	}{
		{
			name: "trims and drops repeats",
			in:   []models.MataKuliah{{ID: 9, Nama: " Kalkulus "}, {Nama: "Basis Data"}, {Nama: "Kalkulus"}, {Nama: "  "}},
			want: []models.MataKuliah{{Nama: "Kalkulus"}, {Nama: "Basis Data"}},
		},
		{
			name: "empty list clears",
			in:   []models.MataKuliah{},
			want: []models.MataKuliah{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repos := newTestProfileSvc(t)
			ctx := context.Background()

			repos.tentors.EXPECT().FindByEmail(ctx, "tentor@example.com").Return(testTentor(), nil)
			repos.tentors.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tn models.Tentor) error {
				assert.Equal(t, tt.want, tn.MataKuliah)
				return nil
			})

			err := svc.UpdateTentorProfile(ctx, "tentor@example.com", models.TentorProfileUpdateRequest{
				Nama:           "Budi S",
				NoTelp:         "0812345678",
				IPK:            3.9,
				ListMataKuliah: tt.in,
			})
			require.NoError(t, err)
		})
	}
}

func TestProfileService_UpdateTentorProfile_NotFound(t *testing.T) {
	svc, repos := newTestProfileSvc(t)
	ctx := context.Background()

	repos.tentors.EXPECT().FindByEmail(ctx, gomock.Any()).Return(models.Tentor{}, store.ErrNotFound)

	err := svc.UpdateTentorProfile(ctx, "ghost@example.com", models.TentorProfileUpdateRequest{})
	require.ErrorIs(t, err, ErrTentorNotFound)
}

func TestProfileService_UpdateTentorProfile_StoreError(t *testing.T) {
	svc, repos := newTestProfileSvc(t)
	ctx := context.Background()

	repos.tentors.EXPECT().FindByEmail(ctx, gomock.Any()).Return(testTentor(), nil)
	repos.tentors.EXPECT().Update(ctx, gomock.Any()).Return(errDB)

	err := svc.UpdateTentorProfile(ctx, "tentor@example.com", models.TentorProfileUpdateRequest{})
	require.ErrorIs(t, err, errDB)
}

func TestProfileService_GetTentor(t *testing.T) {
	svc, repos := newTestProfileSvc(t)
	ctx := context.Background()

	reviews := []models.ReviewView{
		{ID: 2, Rating: 5, Komentar: "Mantap"},
		{ID: 1, Rating: 4, Komentar: "Oke"},
	}
	repos.tentors.EXPECT().FindByID(ctx, int64(2)).Return(testTentor(), nil)
	repos.tentors.EXPECT().ListMataKuliah(ctx, int64(2)).Return([]models.MataKuliah{{ID: 7, Nama: "Kalkulus"}}, nil)
	repos.reviews.EXPECT().ListByTentor(ctx, int64(2)).Return(reviews, nil)

	detail, err := svc.GetTentor(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []models.MataKuliah{{ID: 7, Nama: "Kalkulus"}}, detail.ListMataKuliah)
	assert.Equal(t, "Budi Santoso", detail.Nama)
	assert.Equal(t, []string{"Asisten Kalkulus", "Olimpiade Fisika"}, detail.Pengalaman)
	assert.Equal(t, 4.5, detail.AverageRating)
	assert.Equal(t, 2, detail.RatingCount)
	assert.Equal(t, 5, detail.CountFavorite)
}

func TestProfileService_GetTentor_CourseListingFails(t *testing.T) {
	svc, repos := newTestProfileSvc(t)
	ctx := context.Background()

	repos.tentors.EXPECT().FindByID(ctx, int64(2)).Return(testTentor(), nil)
	repos.tentors.EXPECT().ListMataKuliah(ctx, int64(2)).Return(nil, errDB)

	_, err := svc.GetTentor(ctx, 2)
	require.ErrorIs(t, err, errDB)
}

func TestProfileService_GetTentor_NotFound(t *testing.T) {
	svc, repos := newTestProfileSvc(t)
	ctx := context.Background()

	repos.tentors.EXPECT().FindByID(ctx, int64(404)).Return(models.Tentor{}, store.ErrNotFound)

	_, err := svc.GetTentor(ctx, 404)
	require.ErrorIs(t, err, ErrTentorNotFound)
}

func TestProfileService_ListTentors(t *testing.T) {
	svc, repos := newTestProfileSvc(t)
	ctx := context.Background()
	filter := models.TentorFilter{Query: "bud", Status: models.StatusApproved}

	repos.tentors.EXPECT().List(ctx, filter).Return([]models.Tentor{testTentor()}, nil)

	list, err := svc.ListTentors(ctx, filter)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Budi Santoso", list[0].Nama)
}

func TestProfileService_ListTentors_EmptyIsNotNil(t *testing.T) {
	svc, repos := newTestProfileSvc(t)
	ctx := context.Background()

	repos.tentors.EXPECT().List(ctx, gomock.Any()).Return(nil, nil)

	list, err := svc.ListTentors(ctx, models.TentorFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
