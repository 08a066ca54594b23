// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is a JSON body carrying a single user-facing message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a JSON body carrying a single user-facing error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned by every login endpoint. The same token is also
// set in the Authorization response header.
type LoginResponse struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
	Nama  string `json:"nama"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// MenteeProfile is the public view of a mentee.
type MenteeProfile struct {
	ID      int64  `json:"id"`
	NIM     string `json:"nim"`
	Nama    string `json:"nama"`
	Email   string `json:"email"`
	NoTelp  string `json:"noTelp"`
	FotoURL string `json:"fotoUrl"`
}

// NewMenteeProfile projects a mentee into its public view.
func NewMenteeProfile(m Mentee) MenteeProfile {
	return MenteeProfile{
		ID:      m.ID,
		NIM:     m.Account.NIM,
		Nama:    m.Account.Nama,
		Email:   m.Account.Email,
		NoTelp:  m.Account.NoTelp,
		FotoURL: m.Account.FotoURL,
	}
}

// TentorSummary is the list view of a tentor.
type TentorSummary struct {
	ID                 int64              `json:"id"`
	Nama               string             `json:"nama"`
	FotoURL            string             `json:"fotoUrl"`
	IPK                float64            `json:"ipk"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	CountFavorite      int                `json:"countFavorite"`
}

// NewTentorSummary projects a tentor into its list view.
func NewTentorSummary(t Tentor) TentorSummary {
	return TentorSummary{
		ID:                 t.ID,
		Nama:               t.Account.Nama,
		FotoURL:            t.Account.FotoURL,
		IPK:                t.IPK,
		VerificationStatus: t.VerificationStatus,
		CountFavorite:      t.FavoriteCount,
	}
}

// TentorDetail is the full public view of a tentor with its reviews.
type TentorDetail struct {
	ID                 int64              `json:"id"`
	NIM                string             `json:"nim"`
	Nama               string             `json:"nama"`
	Email              string             `json:"email"`
	IPK                float64            `json:"ipk"`
	Pengalaman         []string           `json:"pengalaman"`
	FotoURL            string             `json:"fotoUrl"`
	NoTelp             string             `json:"noTelp"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	CountFavorite      int                `json:"countFavorite"`
	ListMataKuliah     []MataKuliah       `json:"listMataKuliah"`
	ListReview         []ReviewView       `json:"listReview"`
	AverageRating      float64            `json:"averageRating"`
	RatingCount        int                `json:"ratingCount"`
}

// NewTentorDetail projects a tentor, its courses and its reviews into the
// detail view. Nil courses or reviews render as empty JSON arrays.
func NewTentorDetail(t Tentor, reviews []ReviewView) TentorDetail {
	if reviews == nil {
		reviews = []ReviewView{}
	}
	courses := t.MataKuliah
	if courses == nil {
		courses = []MataKuliah{}
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}

	var avg float64
	if len(reviews) > 0 {
		avg = float64(sum) / float64(len(reviews))
	}

	return TentorDetail{
		ID:                 t.ID,
		NIM:                t.Account.NIM,
		Nama:               t.Account.Nama,
		Email:              t.Account.Email,
		IPK:                t.IPK,
		Pengalaman:         t.PengalamanList(),
		FotoURL:            t.Account.FotoURL,
		NoTelp:             t.Account.NoTelp,
		VerificationStatus: t.VerificationStatus,
		CountFavorite:      t.FavoriteCount,
		ListMataKuliah:     courses,
		ListReview:         reviews,
		AverageRating:      avg,
		RatingCount:        len(reviews),
	}
}
