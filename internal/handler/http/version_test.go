// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/atomic/get-tentor/models"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name string
		info models.AppBuildInfo
		want string
	}{
		{
			name: "full build info",
			info: models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
			want: `{"version":"1.2.3","buildDate":"2026-01-01","buildCommit":"abc123"}`,
		},
		{
			name: "missing values",
			info: models.NewAppBuildInfo("", "", ""),
			want: `{"version":"N/A","buildDate":"N/A","buildCommit":"N/A"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(tt.info)

			rec := serve(h, http.MethodGet, "/api/version", "", false)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
