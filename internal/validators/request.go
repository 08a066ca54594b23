// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/atomic/get-tentor/internal/logger"
	"github.com/go-playground/validator/v10"
)

// Tags of the domain rules registered by [NewRequestValidator].
const (
	TagNama   = "nama"
	TagNoTelp = "notelp"
	TagIPK    = "ipk"
)

var (
	namaPattern   = regexp.MustCompile(`^[\p{L} ]+$`)
	noTelpPattern = regexp.MustCompile(`^[0-9]{10,13}$`)
)

// RequestValidator validates tagged request structs.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
	v.registerRules()
	return v
}

// Validate checks obj, a struct or pointer to struct. When fields are given
// only those struct fields are checked. The first failing field decides the
// returned error.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return ErrInvalidRequest
	}

	first := fieldErrs[0]
	logger.FromContext(ctx).Debug().
		Str("field", first.StructNamespace()).
		Str("tag", first.Tag()).
		Msg("request validation failed")

	if mapped, ok := fieldErrors[topLevelField(first)]; ok {
		return mapped
	}
	return ErrInvalidRequest
}

// topLevelField returns the request field owning fe, so that
// "Req.ListMataKuliah[0].Nama" and "Req.Pengalaman[1]" map like their slice.
func topLevelField(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	if i := strings.IndexAny(ns, ".["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

func (v *RequestValidator) registerRules() {
	_ = v.validate.RegisterValidation(TagNama, func(fl validator.FieldLevel) bool {
		return IsValidNama(fl.Field().String())
	})

	_ = v.validate.RegisterValidation(TagNoTelp, func(fl validator.FieldLevel) bool {
		return IsValidNoTelp(fl.Field().String())
	})

	_ = v.validate.RegisterValidation(TagIPK, func(fl validator.FieldLevel) bool {
		return IsValidIPK(fl.Field().Float())
	})
}

// IsValidNama reports whether nama has at least one letter and only letters
// and spaces.
func IsValidNama(nama string) bool {
	return strings.TrimSpace(nama) != "" && namaPattern.MatchString(nama)
}

// IsValidNoTelp reports whether noTelp consists of 10 to 13 digits.
func IsValidNoTelp(noTelp string) bool {
	return noTelpPattern.MatchString(noTelp)
}

// IsValidIPK reports whether ipk lies in [0, 4].
func IsValidIPK(ipk float64) bool {
	return !math.IsNaN(ipk) && ipk >= 0 && ipk <= 4
}
