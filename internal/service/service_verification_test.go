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

func newTestVerificationSvc(t *testing.T) (VerificationService, *repoMocks) {
	t.Helper()
	repos := newRepoMocks(t)
	return NewVerificationService(repos.storages, logger.Nop()), repos
}

func TestVerificationService_SetStatus_EveryLiteral(t *testing.T) {
	for _, status := range models.VerificationStatuses {
		t.Run(string(status), func(t *testing.T) {
			svc, repos := newTestVerificationSvc(t)
			ctx := context.Background()

			repos.tentors.EXPECT().FindByID(ctx, int64(2)).Return(testTentor(), nil)
			repos.tentors.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tn models.Tentor) error {
				assert.Equal(t, status, tn.VerificationStatus)
				return nil
			})
			repos.tentors.EXPECT().ListMataKuliah(ctx, int64(2)).Return([]models.MataKuliah{}, nil)
			repos.reviews.EXPECT().ListByTentor(ctx, int64(2)).Return(nil, nil)

			detail, err := svc.SetStatus(ctx, 2, string(status))
			require.NoError(t, err)
			assert.Equal(t, status, detail.VerificationStatus)
			assert.NotNil(t, detail.ListReview)
			assert.NotNil(t, detail.ListMataKuliah)
		})
	}
}

func TestVerificationService_SetStatus_NoTransitionGuard(t *testing.T) {
	svc, repos := newTestVerificationSvc(t)
	ctx := context.Background()

	suspended := testTentor()
	suspended.VerificationStatus = models.StatusSuspended

	repos.tentors.EXPECT().FindByID(ctx, int64(2)).Return(suspended, nil)
	repos.tentors.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tn models.Tentor) error {
		assert.Nil(t, tn.MataKuliah)
		return nil
	})
	repos.tentors.EXPECT().ListMataKuliah(ctx, int64(2)).Return([]models.MataKuliah{{ID: 7, Nama: "Kalkulus"}}, nil)
	repos.reviews.EXPECT().ListByTentor(ctx, int64(2)).Return(nil, nil)

	detail, err := svc.SetStatus(ctx, 2, "PENDING")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, detail.VerificationStatus)
	assert.Equal(t, []models.MataKuliah{{ID: 7, Nama: "Kalkulus"}}, detail.ListMataKuliah)
}

func TestVerificationService_SetStatus_InvalidLiteralTouchesNothing(t *testing.T) {
	for _, status := range []string{"approved", "Approved", "", "DELETED", " APPROVED"} {
		t.Run(status, func(t *testing.T) {
			// no repository expectations: any call fails the test
			svc, _ := newTestVerificationSvc(t)

			_, err := svc.SetStatus(context.Background(), 2, status)
			require.ErrorIs(t, err, ErrInvalidStatus)
			assert.Equal(t, "Status tidak valid. Gunakan: PENDING, APPROVED, REJECTED, SUSPENDED", err.Error())
		})
	}
}

func TestVerificationService_SetStatus_UnknownTentor(t *testing.T) {
	svc, repos := newTestVerificationSvc(t)
	ctx := context.Background()

	repos.tentors.EXPECT().FindByID(ctx, int64(99)).Return(models.Tentor{}, store.ErrNotFound)

	_, err := svc.SetStatus(ctx, 99, "APPROVED")
	require.ErrorIs(t, err, ErrTentorNotFound)
}

func TestVerificationService_SetStatus_UpdateFails(t *testing.T) {
	svc, repos := newTestVerificationSvc(t)
	ctx := context.Background()

	repos.tentors.EXPECT().FindByID(ctx, int64(2)).Return(testTentor(), nil)
	repos.tentors.EXPECT().Update(ctx, gomock.Any()).Return(errDB)

	_, err := svc.SetStatus(ctx, 2, "APPROVED")
	require.ErrorIs(t, err, errDB)
}
