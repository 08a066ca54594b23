// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidRequest  = errors.New("Data permintaan tidak valid")
	ErrInvalidNama     = errors.New("Nama lengkap hanya boleh berisi huruf dan spasi.")
	ErrInvalidNoTelp   = errors.New("Nomor telepon tidak valid. Gunakan 10-13 digit angka.")
	ErrInvalidIPK      = errors.New("IPK harus berupa angka antara 0.00 hingga 4.00 (gunakan titik sebagai pemisah desimal).")
	ErrInvalidEmail    = errors.New("Email tidak valid")
	ErrInvalidPassword = errors.New("Password minimal 6 karakter")
	ErrInvalidNIM      = errors.New("Nim tidak boleh kosong")
	ErrInvalidFotoURL  = errors.New("URL foto tidak valid")
	ErrInvalidRating   = errors.New("Rating harus bernilai 1 sampai 5")
	ErrInvalidKomentar = errors.New("Komentar tidak boleh kosong dan maksimal 1000 karakter")
	ErrInvalidIDs      = errors.New("menteeId dan tentorId harus diisi")

	ErrInvalidPengalaman = errors.New("Pengalaman tidak boleh mengandung karakter |")
	ErrInvalidMataKuliah = errors.New("Mata kuliah harus memiliki nama (maksimal 100 karakter, paling banyak 20 mata kuliah)")
)

// fieldErrors maps a top-level struct field name to the error reported when
// any rule on that field, or inside its elements, fails.
var fieldErrors = map[string]error{
	"Nama":     ErrInvalidNama,
	"NoTelp":   ErrInvalidNoTelp,
	"IPK":      ErrInvalidIPK,
	"Email":    ErrInvalidEmail,
	"Password": ErrInvalidPassword,
	"NIM":      ErrInvalidNIM,
	"FotoURL":  ErrInvalidFotoURL,
	"Rating":   ErrInvalidRating,
	"Komentar": ErrInvalidKomentar,
	"MenteeID": ErrInvalidIDs,
	"TentorID": ErrInvalidIDs,

	"Pengalaman":     ErrInvalidPengalaman,
	"ListMataKuliah": ErrInvalidMataKuliah,
}
