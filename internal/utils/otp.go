// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTP bounds: every code has exactly six digits.
const (
	MinOTP = 100000
	MaxOTP = 999999
)

// GenerateOTP returns a uniformly random code in [MinOTP, MaxOTP] drawn from
// the OS CSPRNG.
func GenerateOTP() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(MaxOTP-MinOTP+1))
	if err != nil {
		return 0, fmt.Errorf("error generating otp: %w", err)
	}

	return MinOTP + int(n.Int64()), nil
}
