// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_Exists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReviewRepository(db, logger.Nop())

	mock.ExpectQuery(q("FROM reviews WHERE mentee_id = $1 AND tentor_id = $2")).
		WithArgs(int64(1), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	got, err := repo.Exists(testContext(), 1, 5)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestReviewRepository_Create(t *testing.T) {
	review := models.Review{MenteeID: 1, TentorID: 5, Komentar: "Sangat membantu", Rating: 5, CreatedAt: testCreatedAt}

	t.Run("inserted", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewReviewRepository(db, logger.Nop())

		mock.ExpectQuery(q("INSERT INTO reviews (mentee_id,tentor_id,komentar,rating,created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id")).
			WithArgs(int64(1), int64(5), "Sangat membantu", 5, testCreatedAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

		got, err := repo.Create(testContext(), review)
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ID)
		assert.Equal(t, testCreatedAt, got.CreatedAt)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewReviewRepository(db, logger.Nop())

		mock.ExpectQuery(q("INSERT INTO reviews")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "reviews_mentee_tentor_key"})

		_, err := repo.Create(testContext(), review)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestReviewRepository_ListByTentor(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReviewRepository(db, logger.Nop())

	mock.ExpectQuery(q("FROM reviews r JOIN mentees m ON m.id = r.mentee_id JOIN accounts a ON a.id = m.account_id WHERE r.tentor_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"r.id", "r.rating", "r.komentar", "a.nama", "a.nim", "r.created_at"}).
			AddRow(int64(42), 5, "Sangat membantu", "Dina Lestari", "2201001", testCreatedAt).
			AddRow(int64(41), 4, "Jelas", "Rudi", "2201002", testCreatedAt.Add(-time.Hour)))

	got, err := repo.ListByTentor(testContext(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.ReviewView{
		ID:           42,
		Rating:       5,
		Komentar:     "Sangat membantu",
		ReviewerNama: "Dina Lestari",
		ReviewerNIM:  "2201001",
		CreatedAt:    "2025-12-26 15:00:00",
	}, got[0])
	assert.Equal(t, "2025-12-26 14:00:00", got[1].CreatedAt)
}
