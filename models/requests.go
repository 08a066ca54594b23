// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of every login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MenteeRegisterRequest is the body of POST /api/mentees/register.
type MenteeRegisterRequest struct {
	NIM      string `json:"nim" validate:"required"`
	Nama     string `json:"nama" validate:"nama"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	NoTelp   string `json:"noTelp" validate:"notelp"`
	FotoURL  string `json:"fotoUrl" validate:"omitempty,url"`
}

// TentorRegisterRequest is the body of POST /api/tentors/register.
type TentorRegisterRequest struct {
	NIM        string   `json:"nim" validate:"required"`
	Nama       string   `json:"nama" validate:"nama"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=6"`
	NoTelp     string   `json:"noTelp" validate:"notelp"`
	FotoURL    string   `json:"fotoUrl" validate:"omitempty,url"`
	IPK        float64  `json:"ipk" validate:"ipk"`
	Pengalaman []string `json:"pengalaman" validate:"dive,excludes=0x7C"`
}

// ProfileUpdateRequest is the body of PUT /api/mentees/profile.
type ProfileUpdateRequest struct {
	Nama    string `json:"nama" validate:"nama"`
	NoTelp  string `json:"noTelp" validate:"notelp"`
	FotoURL string `json:"fotoUrl" validate:"omitempty,url"`
}

// TentorProfileUpdateRequest is the body of PUT /api/tentors/profile.
// A missing listMataKuliah keeps the stored courses; an empty one clears them.
type TentorProfileUpdateRequest struct {
	Nama           string       `json:"nama" validate:"nama"`
	NoTelp         string       `json:"noTelp" validate:"notelp"`
	FotoURL        string       `json:"fotoUrl" validate:"omitempty,url"`
	IPK            float64      `json:"ipk" validate:"ipk"`
	Pengalaman     []string     `json:"pengalaman" validate:"dive,excludes=0x7C"`
	ListMataKuliah []MataKuliah `json:"listMataKuliah" validate:"max=20,dive"`
}

// ReviewRequest is the body of POST /api/reviews.
type ReviewRequest struct {
	MenteeID int64  `json:"menteeId" validate:"required,gt=0"`
	TentorID int64  `json:"tentorId" validate:"required,gt=0"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Komentar string `json:"komentar" validate:"required,max=1000"`
}

// SetStatusRequest is the body of the admin status-change endpoint.
type SetStatusRequest struct {
	Status string `json:"status"`
}
