// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/atomic/get-tentor/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/mentees/register", h.registerMentee)
		r.Post("/api/mentees/login", h.login(models.RoleMentee))
		r.Post("/api/tentors/register", h.registerTentor)
		r.Post("/api/tentors/login", h.login(models.RoleTentor))
		r.Post("/api/admin/login", h.login(models.RoleAdmin))

		r.Get("/api/tentors", h.listTentors)
		r.Get("/api/tentors/{id}", h.getTentor)

		r.Get("/api/favorites/{menteeId}", h.listFavorites)
		r.Post("/api/favorites", h.addFavorite)
		r.Delete("/api/favorites", h.removeFavorite)

		r.Post("/api/reviews", h.submitReview)
		r.Get("/api/reviews/tentor/{tentorId}", h.listTentorReviews)

		r.Post("/api/forgot-password/{role}/verify-email/{email}", h.verifyEmail)
		r.Post("/api/forgot-password/{role}/verify-otp", h.verifyOTP)
		r.Post("/api/forgot-password/{role}/change-password", h.changePassword)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.RoleMentee))
		r.Put("/api/mentees/profile", h.updateMenteeProfile)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.RoleTentor))
		r.Put("/api/tentors/profile", h.updateTentorProfile)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.RoleAdmin))
		r.Get("/api/admin/tentors", h.listAllTentors)
		r.Patch("/api/admin/tentors/{id}/status", h.setTentorStatus)
		r.Put("/api/admin/tentors/{id}/status", h.setTentorStatus)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
