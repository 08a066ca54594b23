// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTentorDetail_ListMataKuliah(t *testing.T) {
	tests := []struct {
		name    string
		tentor  Tentor
		wantKey string
	}{
		{
			name:    "courses not loaded",
			tentor:  Tentor{ID: 2, Account: Account{Nama: "Sari"}},
			wantKey: `"listMataKuliah":[]`,
		},
		{
			name:    "courses loaded",
			tentor:  Tentor{ID: 2, MataKuliah: []MataKuliah{{ID: 7, Nama: "Kalkulus"}}},
			wantKey: `"listMataKuliah":[{"id":7,"nama":"Kalkulus"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(NewTentorDetail(tt.tentor, nil))
			require.NoError(t, err)
			assert.Contains(t, string(raw), tt.wantKey)
			assert.Contains(t, string(raw), `"listReview":[]`)
		})
	}
}

func TestNewTentorDetail_RatingAggregate(t *testing.T) {
	detail := NewTentorDetail(Tentor{ID: 2}, []ReviewView{{Rating: 5}, {Rating: 4}})

	assert.InDelta(t, 4.5, detail.AverageRating, 1e-9)
	assert.Equal(t, 2, detail.RatingCount)
}
