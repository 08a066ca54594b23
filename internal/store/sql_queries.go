// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/atomic/get-tentor/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var accountColumns = []string{
	"a.id",
	"a.nim",
	"a.nama",
	"a.email",
	"a.password_hash",
	"a.no_telp",
	"a.foto_url",
	"a.created_at",
}

var menteeColumns = append([]string{"m.id"}, accountColumns...)

var tentorColumns = append([]string{
	"t.id",
	"t.ipk",
	"t.pengalaman",
	"t.verification_status",
	"t.favorite_count",
}, accountColumns...)

var adminColumns = append([]string{"ad.id"}, accountColumns...)

func selectMentees() sq.SelectBuilder {
	return psql.Select(menteeColumns...).
		From("mentees m").
		Join("accounts a ON a.id = m.account_id")
}

func selectTentors() sq.SelectBuilder {
	return psql.Select(tentorColumns...).
		From("tentors t").
		Join("accounts a ON a.id = t.account_id")
}

func selectAdmins() sq.SelectBuilder {
	return psql.Select(adminColumns...).
		From("admins ad").
		Join("accounts a ON a.id = ad.account_id")
}

// exists wraps a SELECT 1 query into SELECT EXISTS(...).
func exists(from string, where sq.Sqlizer) (string, []any, error) {
	return psql.Select("1").
		Prefix("SELECT EXISTS(").
		From(from).
		Where(where).
		Suffix(")").
		ToSql()
}

func buildInsertAccountQuery(account models.Account) (string, []any, error) {
	return psql.Insert("accounts").
		Columns("nim", "nama", "email", "password_hash", "no_telp", "foto_url").
		Values(account.NIM, account.Nama, account.Email, account.PasswordHash, account.NoTelp, account.FotoURL).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildUpdateAccountProfileQuery(account models.Account) (string, []any, error) {
	return psql.Update("accounts").
		Set("nama", account.Nama).
		Set("no_telp", account.NoTelp).
		Set("foto_url", account.FotoURL).
		Where(sq.Eq{"id": account.ID}).
		ToSql()
}

func buildListTentorsQuery(filter models.TentorFilter) (string, []any, error) {
	query := selectTentors()

	if filter.Status != "" {
		query = query.Where(sq.Eq{"t.verification_status": string(filter.Status)})
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where(sq.ILike{"a.nama": "%" + escapeLike(q) + "%"})
	}

	return query.OrderBy("t.id").ToSql()
}

func buildListFavoriteTentorsQuery(menteeID int64) (string, []any, error) {
	return selectTentors().
		Join("favorites f ON f.tentor_id = t.id").
		Where(sq.Eq{"f.mentee_id": menteeID}).
		OrderBy("t.id").
		ToSql()
}

func buildListReviewsByTentorQuery(tentorID int64) (string, []any, error) {
	return psql.Select(
		"r.id",
		"r.rating",
		"r.komentar",
		"a.nama",
		"a.nim",
		"r.created_at",
	).
		From("reviews r").
		Join("mentees m ON m.id = r.mentee_id").
		Join("accounts a ON a.id = m.account_id").
		Where(sq.Eq{"r.tentor_id": tentorID}).
		OrderBy("r.created_at DESC", "r.id DESC").
		ToSql()
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}

func buildDeleteTentorMataKuliahQuery(tentorID int64) (string, []any, error) {
	return psql.Delete("tentor_mata_kuliah").
		Where(sq.Eq{"tentor_id": tentorID}).
		ToSql()
}

// buildUpsertMataKuliahQuery inserts a course by nama or touches the
// existing row, returning its id either way.
func buildUpsertMataKuliahQuery(nama string) (string, []any, error) {
	return psql.Insert("mata_kuliah").
		Columns("nama").
		Values(nama).
		Suffix("ON CONFLICT (nama) DO UPDATE SET nama = EXCLUDED.nama RETURNING id").
		ToSql()
}

func buildLinkTentorMataKuliahQuery(tentorID, mataKuliahID int64) (string, []any, error) {
	return psql.Insert("tentor_mata_kuliah").
		Columns("tentor_id", "mata_kuliah_id").
		Values(tentorID, mataKuliahID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

func buildListTentorMataKuliahQuery(tentorID int64) (string, []any, error) {
	return psql.Select("mk.id", "mk.nama").
		From("mata_kuliah mk").
		Join("tentor_mata_kuliah tmk ON tmk.mata_kuliah_id = mk.id").
		Where(sq.Eq{"tmk.tentor_id": tentorID}).
		OrderBy("mk.nama").
		ToSql()
}
