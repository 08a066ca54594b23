// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_Exists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectQuery(q("FROM favorites WHERE mentee_id = $1 AND tentor_id = $2")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := repo.Exists(testContext(), 1, 2)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestFavoriteRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "inserted"},
		{
			name:    "duplicate pair",
			dbErr:   &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "favorites_pkey"},
			wantErr: ErrAlreadyExists,
		},
		{
			name:    "unknown mentee or tentor",
			dbErr:   &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			wantErr: ErrNotFound,
		},
		{
			name:    "other failure",
			dbErr:   &pgconn.PgError{Code: pgerrcode.AdminShutdown},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewFavoriteRepository(db, logger.Nop())

			exp := mock.ExpectExec(q("INSERT INTO favorites (mentee_id,tentor_id) VALUES ($1,$2)")).
				WithArgs(int64(1), int64(2))
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.Create(testContext(), models.Favorite{MenteeID: 1, TentorID: 2})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFavoriteRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewFavoriteRepository(db, logger.Nop())

		mock.ExpectExec(q("DELETE FROM favorites WHERE mentee_id = $1 AND tentor_id = $2")).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(testContext(), models.Favorite{MenteeID: 1, TentorID: 2}))
	})

	t.Run("absent", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewFavoriteRepository(db, logger.Nop())

		mock.ExpectExec(q("DELETE FROM favorites")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(testContext(), models.Favorite{MenteeID: 1, TentorID: 2}), ErrNotFound)
	})
}

func TestFavoriteRepository_ListTentorsByMentee(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectQuery(q("JOIN favorites f ON f.tentor_id = t.id WHERE f.mentee_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(tentorRows())

	got, err := repo.ListTentorsByMentee(testContext(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Budiman", got[1].Account.Nama)
}
