// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/atomic/get-tentor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListTentorsQuery(t *testing.T) {
	tests := []struct {
		name        string
		filter      models.TentorFilter
		wantWhere   string
		wantArgs    []any
		wantNoWhere bool
	}{
		{
			name:        "no filter",
			filter:      models.TentorFilter{},
			wantArgs:    nil,
			wantNoWhere: true,
		},
		{
			name:      "status only",
			filter:    models.TentorFilter{Status: models.StatusPending},
			wantWhere: "WHERE t.verification_status = $1",
			wantArgs:  []any{"PENDING"},
		},
		{
			name:      "query only, trimmed",
			filter:    models.TentorFilter{Query: "  budi "},
			wantWhere: "WHERE a.nama ILIKE $1",
			wantArgs:  []any{"%budi%"},
		},
		{
			name:      "status and query",
			filter:    models.TentorFilter{Query: "Budi", Status: models.StatusApproved},
			wantWhere: "WHERE t.verification_status = $1 AND a.nama ILIKE $2",
			wantArgs:  []any{"APPROVED", "%Budi%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListTentorsQuery(tt.filter)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "SELECT t.id, t.ipk"))
			assert.Contains(t, query, "FROM tentors t JOIN accounts a ON a.id = t.account_id")
			assert.True(t, strings.HasSuffix(query, "ORDER BY t.id"))

			if tt.wantNoWhere {
				assert.NotContains(t, query, "WHERE")
				assert.Empty(t, args)
				return
			}
			assert.Contains(t, query, tt.wantWhere)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_escapeLike(t *testing.T) {
	assert.Equal(t, "budi", escapeLike("budi"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\x`, escapeLike(`c:\x`))
}

func Test_exists(t *testing.T) {
	query, args, err := exists("favorites", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT EXISTS( SELECT 1 FROM favorites )", query)
	assert.Empty(t, args)
}

func Test_buildInsertAccountQuery(t *testing.T) {
	query, args, err := buildInsertAccountQuery(models.Account{
		NIM:          "2201001",
		Nama:         "Dina Lestari",
		Email:        "dina@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO accounts (nim,nama,email,password_hash,no_telp,foto_url) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at",
		query)
	assert.Equal(t, []any{"2201001", "Dina Lestari", "dina@example.com", "hash", "", ""}, args)
}

func Test_buildListReviewsByTentorQuery(t *testing.T) {
	query, args, err := buildListReviewsByTentorQuery(5)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE r.tentor_id = $1")
	assert.True(t, strings.HasSuffix(query, "ORDER BY r.created_at DESC, r.id DESC"))
	assert.Equal(t, []any{int64(5)}, args)
}
