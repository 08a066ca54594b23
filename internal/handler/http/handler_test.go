// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atomic/get-tentor/internal/config"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/internal/mock"
	"github.com/atomic/get-tentor/internal/service"
	"github.com/atomic/get-tentor/internal/validators"
	"github.com/atomic/get-tentor/models"
)

const testToken = "stub-token"

type serviceMocks struct {
	account      *mock.MockAccountService
	profile      *mock.MockProfileService
	verification *mock.MockVerificationService
	favorite     *mock.MockFavoriteService
	review       *mock.MockReviewService
	reset        *mock.MockPasswordResetService
	appInfo      *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		account:      mock.NewMockAccountService(ctrl),
		profile:      mock.NewMockProfileService(ctrl),
		verification: mock.NewMockVerificationService(ctrl),
		favorite:     mock.NewMockFavoriteService(ctrl),
		review:       mock.NewMockReviewService(ctrl),
		reset:        mock.NewMockPasswordResetService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}
	svcs := &service.Services{
		AccountService:       m.account,
		ProfileService:       m.profile,
		VerificationService:  m.verification,
		FavoriteService:      m.favorite,
		ReviewService:        m.review,
		PasswordResetService: m.reset,
		AppInfoService:       m.appInfo,
	}

	return NewHandler(svcs, validators.NewRequestValidator(), config.Server{}, logger.Nop()), m
}

// authenticateAs makes the stub token resolve to a principal of role.
func (m *serviceMocks) authenticateAs(role models.Role, email string) {
	m.account.EXPECT().
		Authenticate(gomock.Any(), testToken).
		Return(models.Principal{ID: 1, Email: email, Role: role}, nil)
}

func newRequest(method, target, body string) *http.Request {
	return httptest.NewRequest(method, target, strings.NewReader(body))
}

func serveRequest(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func serve(h *Handler, method, target, body string, withToken bool) *httptest.ResponseRecorder {
	req := newRequest(method, target, body)
	if withToken {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	return serveRequest(h, req)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rec).Error
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	v := validators.NewRequestValidator()
	l := logger.Nop()

	h := NewHandler(svcs, v, config.Server{RequestTimeout: 3 * time.Second}, l)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, v, h.validator)
	assert.Same(t, l, h.logger)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
}

func TestInit_ReturnsRouter(t *testing.T) {
	h, _ := newTestHandler(t)
	assert.NotNil(t, h.Init())
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/api/unknown", "", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDecodeAndValidate_ValidatorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mock.NewMockValidator(ctrl)
	v.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validators.ErrUnsupportedType)

	h := NewHandler(&service.Services{}, v, config.Server{}, logger.Nop())

	rec := serve(h, http.MethodPost, "/api/reviews", `{"menteeId":1}`, false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", errorMessage(t, rec))
}
