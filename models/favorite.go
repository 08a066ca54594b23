// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Favorite records that a mentee favorited a tentor. The pair is unique.
type Favorite struct {
	MenteeID int64 `json:"menteeId"`
	TentorID int64 `json:"tentorId"`
}
