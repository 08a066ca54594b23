// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/models"
)

// tentorRepository is the PostgreSQL-backed implementation of
// [TentorRepository]. Tentor rows reference their account through
// tentors.account_id.
type tentorRepository struct {
	*DB
	logger *logger.Logger
}

// NewTentorRepository constructs a [TentorRepository] backed by db.
func NewTentorRepository(db *DB, logger *logger.Logger) TentorRepository {
	logger.Debug().Msg("creating tentor repository")
	return &tentorRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts the account and the tentor row in one transaction. The
// verification status and favorite count are taken from tentor as given.
func (r *tentorRepository) Create(ctx context.Context, tentor models.Tentor) (models.Tentor, error) {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		account, err := insertAccount(ctx, tx, tentor.Account)
		if err != nil {
			return err
		}

		query, args, err := psql.Insert("tentors").
			Columns("account_id", "ipk", "pengalaman", "verification_status", "favorite_count").
			Values(account.ID, tentor.IPK, tentor.Pengalaman, string(tentor.VerificationStatus), tentor.FavoriteCount).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&tentor.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		tentor.Account = account
		tentor.AccountID = account.ID
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*tentorRepository.Create").Msg("failed to create tentor")
		return models.Tentor{}, err
	}

	return tentor, nil
}

func (r *tentorRepository) FindByID(ctx context.Context, id int64) (models.Tentor, error) {
	return r.findOne(ctx, sq.Eq{"t.id": id})
}

func (r *tentorRepository) FindByEmail(ctx context.Context, email string) (models.Tentor, error) {
	return r.findOne(ctx, sq.Eq{"a.email": email})
}

// Update overwrites ipk, pengalaman, verification_status and favorite_count
// of the tentor and the profile fields of its account. When
// tentor.MataKuliah is non-nil the course set is replaced as well.
func (r *tentorRepository) Update(ctx context.Context, tentor models.Tentor) error {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.Update("tentors").
			Set("ipk", tentor.IPK).
			Set("pengalaman", tentor.Pengalaman).
			Set("verification_status", string(tentor.VerificationStatus)).
			Set("favorite_count", tentor.FavoriteCount).
			Where(sq.Eq{"id": tentor.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err := execAffecting(ctx, tx, query, args...); err != nil {
			return err
		}

		account := tentor.Account
		account.ID = tentor.AccountID
		query, args, err = buildUpdateAccountProfileQuery(account)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err := execAffecting(ctx, tx, query, args...); err != nil {
			return err
		}

		if tentor.MataKuliah == nil {
			return nil
		}
		return replaceMataKuliah(ctx, tx, tentor.ID, tentor.MataKuliah)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*tentorRepository.Update").
			Int64("tentor_id", tentor.ID).
			Msg("failed to update tentor")
		return err
	}

	return nil
}

// List returns tentors matching filter ordered by id. An empty result is an
// empty slice.
func (r *tentorRepository) List(ctx context.Context, filter models.TentorFilter) ([]models.Tentor, error) {
	query, args, err := buildListTentorsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTentors(ctx, "*tentorRepository.List", query, args...)
}

func (r *tentorRepository) ListMataKuliah(ctx context.Context, tentorID int64) ([]models.MataKuliah, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTentorMataKuliahQuery(tentorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tentorRepository.ListMataKuliah").Msg("failed to query courses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.MataKuliah, 0)
	for rows.Next() {
		var mk models.MataKuliah
		if err := rows.Scan(&mk.ID, &mk.Nama); err != nil {
			log.Err(err).Str("func", "*tentorRepository.ListMataKuliah").Msg("failed to scan course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		courses = append(courses, mk)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*tentorRepository.ListMataKuliah").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// replaceMataKuliah drops every course link of the tentor and links the
// given courses, creating unknown ones by nama.
func replaceMataKuliah(ctx context.Context, tx *sql.Tx, tentorID int64, courses []models.MataKuliah) error {
	query, args, err := buildDeleteTentorMataKuliahQuery(tentorID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, mk := range courses {
		query, args, err := buildUpsertMataKuliahQuery(mk.Nama)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildLinkTentorMataKuliahQuery(tentorID, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *tentorRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.Tentor, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectTentors().Where(where).ToSql()
	if err != nil {
		return models.Tentor{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tentor, err := scanTentor(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tentor{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*tentorRepository.findOne").Msg("failed to scan tentor")
		return models.Tentor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tentor, nil
}

// queryTentors runs a tentor SELECT and collects every row.
func (db *DB) queryTentors(ctx context.Context, funcName, query string, args ...any) ([]models.Tentor, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query tentors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tentors := make([]models.Tentor, 0)
	for rows.Next() {
		tentor, err := scanTentor(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan tentor row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tentors = append(tentors, tentor)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tentors, nil
}
