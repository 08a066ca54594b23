// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// VerificationStatus is the admin-controlled state of a tentor.
// Any value can be set from any other; no transition graph is enforced.
type VerificationStatus string

const (
	StatusPending   VerificationStatus = "PENDING"
	StatusApproved  VerificationStatus = "APPROVED"
	StatusRejected  VerificationStatus = "REJECTED"
	StatusSuspended VerificationStatus = "SUSPENDED"
)

// VerificationStatuses lists every accepted status in declaration order.
var VerificationStatuses = []VerificationStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusSuspended,
}

// ParseVerificationStatus returns the status whose name equals s exactly.
// Matching is case-sensitive.
func ParseVerificationStatus(s string) (VerificationStatus, bool) {
	for _, status := range VerificationStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// pengalamanSeparator joins experience entries in the pengalaman column.
const pengalamanSeparator = "|"

// Tentor is a student tutor.
type Tentor struct {
	ID        int64   `json:"id"`
	AccountID int64   `json:"-"`
	Account   Account `json:"account"`

	// IPK is the GPA-equivalent score, 0.00 to 4.00.
	IPK float64 `json:"ipk"`

	// Pengalaman holds experience entries joined by "|".
	Pengalaman string `json:"-"`

	VerificationStatus VerificationStatus `json:"verificationStatus"`

	// FavoriteCount caches the number of favorite rows for this tentor.
	// It is only decremented by the favorite ledger and may drift.
	FavoriteCount int `json:"countFavorite"`

	// MataKuliah is the course set taught by the tentor. It is only loaded
	// on demand; nil leaves the stored set untouched on update.
	MataKuliah []MataKuliah `json:"-"`
}

// MataKuliah is a university course a tentor can teach. Courses are keyed
// by nama; ID is assigned by storage.
type MataKuliah struct {
	ID   int64  `json:"id"`
	Nama string `json:"nama" validate:"required,max=100"`
}

// PengalamanList splits Pengalaman into its entries.
func (t Tentor) PengalamanList() []string {
	return SplitPengalaman(t.Pengalaman)
}

// SplitPengalaman splits a stored pengalaman value. An empty value yields an
// empty, non-nil slice.
func SplitPengalaman(pengalaman string) []string {
	if strings.TrimSpace(pengalaman) == "" {
		return []string{}
	}
	return strings.Split(pengalaman, pengalamanSeparator)
}

// JoinPengalaman joins experience entries into their stored form.
func JoinPengalaman(entries []string) string {
	return strings.Join(entries, pengalamanSeparator)
}

// TentorFilter narrows tentor listings.
type TentorFilter struct {
	// Query matches nama case-insensitively as a substring. Empty matches all.
	Query string

	// Status restricts the listing to one verification status. Empty means any.
	Status VerificationStatus
}
