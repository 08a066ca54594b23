// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/atomic/get-tentor/internal/utils"
	"github.com/atomic/get-tentor/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, models.VersionResponse{
		Version:     info.BuildVersion(),
		BuildDate:   info.BuildDate(),
		BuildCommit: info.BuildCommit(),
	}, http.StatusOK)
}
