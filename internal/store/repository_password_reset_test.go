// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordResetRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPasswordResetRepository(db, logger.Nop())

	expires := testCreatedAt.Add(5 * time.Minute)
	mock.ExpectQuery(q("INSERT INTO password_reset_requests (role,owner_id,otp,expiration_time) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs("MENTEE", int64(3), 123456, expires).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	got, err := repo.Create(testContext(), models.PasswordResetRequest{
		Role:           models.RoleMentee,
		OwnerID:        3,
		OTP:            123456,
		ExpirationTime: expires,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestPasswordResetRepository_FindByOwnerAndOTP(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPasswordResetRepository(db, logger.Nop())

		mock.ExpectQuery(q("FROM password_reset_requests WHERE otp = $1 AND owner_id = $2 AND role = $3 ORDER BY id DESC LIMIT 1")).
			WithArgs(123456, int64(3), "TENTOR").
			WillReturnRows(sqlmock.NewRows([]string{"id", "role", "owner_id", "otp", "expiration_time"}).
				AddRow(int64(9), "TENTOR", int64(3), 123456, testCreatedAt))

		got, err := repo.FindByOwnerAndOTP(testContext(), models.RoleTentor, 3, 123456)
		require.NoError(t, err)
		assert.Equal(t, models.PasswordResetRequest{
			ID:             9,
			Role:           models.RoleTentor,
			OwnerID:        3,
			OTP:            123456,
			ExpirationTime: testCreatedAt,
		}, got)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPasswordResetRepository(db, logger.Nop())

		mock.ExpectQuery(q("FROM password_reset_requests")).WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByOwnerAndOTP(testContext(), models.RoleTentor, 3, 111111)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPasswordResetRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPasswordResetRepository(db, logger.Nop())

	mock.ExpectExec(q("DELETE FROM password_reset_requests WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(testContext(), 9))
}
