// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ReviewTimeLayout formats ReviewView.CreatedAt as yyyy-MM-dd HH:mm:ss.
const ReviewTimeLayout = "2006-01-02 15:04:05"

// Review is a mentee's rating of a tentor. At most one review exists per
// (MenteeID, TentorID) pair and reviews are never updated.
type Review struct {
	ID        int64
	MenteeID  int64
	TentorID  int64
	Komentar  string
	Rating    int
	CreatedAt time.Time
}

// ReviewView is the read projection of a review, resolved through the
// reviewing mentee's account.
type ReviewView struct {
	ID           int64  `json:"id"`
	Rating       int    `json:"rating"`
	Komentar     string `json:"komentar"`
	ReviewerNama string `json:"reviewerNama"`
	ReviewerNIM  string `json:"reviewerNim"`
	CreatedAt    string `json:"createdAt"`
}

// NewReviewView builds the projection of review written by reviewer.
func NewReviewView(review Review, reviewer Account) ReviewView {
	return ReviewView{
		ID:           review.ID,
		Rating:       review.Rating,
		Komentar:     review.Komentar,
		ReviewerNama: reviewer.Nama,
		ReviewerNIM:  reviewer.NIM,
		CreatedAt:    review.CreatedAt.Format(ReviewTimeLayout),
	}
}
