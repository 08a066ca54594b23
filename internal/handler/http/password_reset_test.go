// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/atomic/get-tentor/internal/service"
	"github.com/atomic/get-tentor/models"
)

func TestVerifyEmail(t *testing.T) {
	t.Run("mail sent", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.reset.EXPECT().VerifyEmail(gomock.Any(), models.RoleMentee, "budi@example.com").Return(nil)

		rec := serve(h, http.MethodPost, "/api/forgot-password/mentee/verify-email/budi@example.com", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, msgEmailSent, decodeBody[models.MessageResponse](t, rec).Message)
	})

	t.Run("escaped email", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.reset.EXPECT().VerifyEmail(gomock.Any(), models.RoleTentor, "sari@example.com").Return(nil)

		rec := serve(h, http.MethodPost, "/api/forgot-password/tentor/verify-email/sari%40example.com", "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.reset.EXPECT().VerifyEmail(gomock.Any(), models.RoleTentor, "nobody@example.com").Return(service.ErrEmailNotFound)

		rec := serve(h, http.MethodPost, "/api/forgot-password/tentor/verify-email/nobody@example.com", "", false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email tidak ditemukan", errorMessage(t, rec))
	})

	t.Run("admin cannot reset", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(h, http.MethodPost, "/api/forgot-password/admin/verify-email/root@example.com", "", false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, service.ErrUnsupportedRole.Error(), errorMessage(t, rec))
	})
}

func TestVerifyOTP(t *testing.T) {
	const body = `{"email":"budi@example.com","otp":123456}`

	t.Run("verified", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.reset.EXPECT().
			VerifyOTP(gomock.Any(), models.RoleMentee, models.VerifyOTPRequest{Email: "budi@example.com", OTP: 123456}).
			Return("reset-jwt", nil)

		rec := serve(h, http.MethodPost, "/api/forgot-password/mentee/verify-otp", body, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"OTP berhasil diverifikasi","resetToken":"reset-jwt"}`, rec.Body.String())
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"mismatch", service.ErrOTPMismatch, http.StatusBadRequest, "OTP Tidak Sesuai"},
		{"expired", service.ErrOTPExpired, http.StatusExpectationFailed, "OTP telah kadaluarsa"},
		{"unknown email", service.ErrEmailNotFound, http.StatusBadRequest, "Email tidak ditemukan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.reset.EXPECT().VerifyOTP(gomock.Any(), models.RoleMentee, gomock.Any()).Return("", tt.err)

			rec := serve(h, http.MethodPost, "/api/forgot-password/mentee/verify-otp", body, false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
		})
	}
}

func TestChangePassword(t *testing.T) {
	const body = `{"password":"newpass","repeatPassword":"newpass","resetToken":"reset-jwt"}`

	t.Run("changed", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.reset.EXPECT().
			ChangePassword(gomock.Any(), models.RoleTentor, models.ChangePasswordRequest{
				Password: "newpass", RepeatPassword: "newpass", ResetToken: "reset-jwt",
			}).
			Return(nil)

		rec := serve(h, http.MethodPost, "/api/forgot-password/tentor/change-password", body, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, msgPasswordChanged, decodeBody[models.MessageResponse](t, rec).Message)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"repeat mismatch", service.ErrRepeatPasswordMismatch, http.StatusExpectationFailed, "Tolong masukkan Password ulang!"},
		{"empty token", service.ErrResetTokenEmpty, http.StatusBadRequest, "Reset token tidak boleh kosong!"},
		{"invalid token", service.ErrResetTokenInvalid, http.StatusUnauthorized, "Reset token tidak valid atau sudah expired!"},
		{"access token", service.ErrNotResetToken, http.StatusUnauthorized, "Token ini bukan token reset password!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.reset.EXPECT().ChangePassword(gomock.Any(), models.RoleTentor, gomock.Any()).Return(tt.err)

			rec := serve(h, http.MethodPost, "/api/forgot-password/tentor/change-password", body, false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(h, http.MethodPost, "/api/forgot-password/tentor/change-password", `[`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
