// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/atomic/get-tentor/internal/service"
	"github.com/atomic/get-tentor/internal/validators"
	"github.com/atomic/get-tentor/models"
)

func TestSubmitReview(t *testing.T) {
	const body = `{"menteeId":1,"tentorId":2,"rating":5,"komentar":"Sangat membantu"}`

	t.Run("accepted", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.review.EXPECT().
			Submit(gomock.Any(), models.ReviewRequest{MenteeID: 1, TentorID: 2, Rating: 5, Komentar: "Sangat membantu"}).
			Return(models.ReviewView{ID: 10, Rating: 5, Komentar: "Sangat membantu", ReviewerNama: "Budi", ReviewerNIM: "2101", CreatedAt: "2026-01-02 03:04:05"}, nil)

		rec := serve(h, http.MethodPost, "/api/reviews", body, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"id":10,"rating":5,"komentar":"Sangat membantu","reviewerNama":"Budi","reviewerNim":"2101","createdAt":"2026-01-02 03:04:05"}`,
			rec.Body.String())
	})

	t.Run("duplicate is a bad request", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.review.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.ReviewView{}, service.ErrReviewExists)

		rec := serve(h, http.MethodPost, "/api/reviews", body, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Review already exists for this tentor by this mentee", errorMessage(t, rec))
	})

	t.Run("rating out of range", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(h, http.MethodPost, "/api/reviews", `{"menteeId":1,"tentorId":2,"rating":6,"komentar":"ok"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, validators.ErrInvalidRating.Error(), errorMessage(t, rec))
	})

	t.Run("empty komentar", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(h, http.MethodPost, "/api/reviews", `{"menteeId":1,"tentorId":2,"rating":3,"komentar":""}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, validators.ErrInvalidKomentar.Error(), errorMessage(t, rec))
	})
}

func TestListTentorReviews(t *testing.T) {
	t.Run("listed", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.review.EXPECT().ListByTentor(gomock.Any(), int64(2)).Return([]models.ReviewView{{ID: 1}}, nil)

		rec := serve(h, http.MethodGet, "/api/reviews/tentor/2", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[[]models.ReviewView](t, rec), 1)
	})

	t.Run("unknown tentor", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.review.EXPECT().ListByTentor(gomock.Any(), int64(3)).Return(nil, service.ErrTentorNotFound)

		rec := serve(h, http.MethodGet, "/api/reviews/tentor/3", "", false)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
