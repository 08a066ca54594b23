// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is the shared student identity (mahasiswa) that backs every role.
// A mentee, a tentor and an admin each reference exactly one Account through
// their AccountID field.
type Account struct {
	// ID is the internal identifier assigned by the database.
	ID int64 `json:"id"`

	// NIM is the unique student identification number.
	NIM string `json:"nim"`

	// Nama is the full name of the student.
	Nama string `json:"nama"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the one-way digest of the password. It is mutated only
	// through the password reset flow and never leaves the server.
	PasswordHash string `json:"-"`

	// NoTelp is the phone number, 10 to 13 digits.
	NoTelp string `json:"noTelp"`

	// FotoURL points to the profile photo.
	FotoURL string `json:"fotoUrl"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"-"`
}

// Role names the kind of principal an access token was issued to.
type Role string

const (
	RoleMentee Role = "MENTEE"
	RoleTentor Role = "TENTOR"
	RoleAdmin  Role = "ADMIN"
)

// Mentee is a student seeking tutoring.
type Mentee struct {
	ID        int64   `json:"id"`
	AccountID int64   `json:"-"`
	Account   Account `json:"account"`
}

// Admin verifies tentors. Admins have no registration endpoint.
type Admin struct {
	ID        int64   `json:"id"`
	AccountID int64   `json:"-"`
	Account   Account `json:"account"`
}
