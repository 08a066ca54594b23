// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/atomic/get-tentor/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func accountDest(a *models.Account) []any {
	return []any{
		&a.ID,
		&a.NIM,
		&a.Nama,
		&a.Email,
		&a.PasswordHash,
		&a.NoTelp,
		&a.FotoURL,
		&a.CreatedAt,
	}
}

func scanMentee(row rowScanner) (models.Mentee, error) {
	var m models.Mentee
	dest := append([]any{&m.ID}, accountDest(&m.Account)...)
	if err := row.Scan(dest...); err != nil {
		return models.Mentee{}, err
	}
	m.AccountID = m.Account.ID
	return m, nil
}

func scanTentor(row rowScanner) (models.Tentor, error) {
	var t models.Tentor
	var status string
	dest := append([]any{&t.ID, &t.IPK, &t.Pengalaman, &status, &t.FavoriteCount}, accountDest(&t.Account)...)
	if err := row.Scan(dest...); err != nil {
		return models.Tentor{}, err
	}
	t.VerificationStatus = models.VerificationStatus(status)
	t.AccountID = t.Account.ID
	return t, nil
}

func scanAdmin(row rowScanner) (models.Admin, error) {
	var a models.Admin
	dest := append([]any{&a.ID}, accountDest(&a.Account)...)
	if err := row.Scan(dest...); err != nil {
		return models.Admin{}, err
	}
	a.AccountID = a.Account.ID
	return a, nil
}

// queryExists runs SELECT EXISTS(SELECT 1 FROM from WHERE where).
func (db *DB) queryExists(ctx context.Context, from string, where sq.Sqlizer) (bool, error) {
	query, args, err := exists(from, where)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found bool
	if err := db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// execAffecting executes an UPDATE or DELETE and returns [ErrNotFound] when
// no row was affected.
func execAffecting(ctx context.Context, ex execer, query string, args ...any) error {
	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// insertAccount inserts the account row and fills its id and created_at.
// Unique violations are reported as [ErrEmailAlreadyExists] or
// [ErrNIMAlreadyExists].
func insertAccount(ctx context.Context, q queryRower, account models.Account) (models.Account, error) {
	query, args, err := buildInsertAccountQuery(account)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&account.ID, &account.CreatedAt); err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case constraintAccountsNIM:
				return models.Account{}, ErrNIMAlreadyExists
			default:
				return models.Account{}, ErrEmailAlreadyExists
			}
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return account, nil
}
