// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/atomic/get-tentor/internal/config"
	"github.com/atomic/get-tentor/internal/crypto"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/internal/mail"
	"github.com/atomic/get-tentor/internal/store"
	"github.com/atomic/get-tentor/models"
)

type Services struct {
	AccountService       AccountService
	ProfileService       ProfileService
	VerificationService  VerificationService
	FavoriteService      FavoriteService
	ReviewService        ReviewService
	PasswordResetService PasswordResetService
	AppInfoService       AppInfoService
}

// Dependencies are the collaborators shared by every service.
type Dependencies struct {
	Hasher    crypto.PasswordHasher
	Tokens    crypto.TokenManager
	Mail      mail.Sender
	BuildInfo models.AppBuildInfo
}

func NewServices(storages *store.Storages, deps Dependencies, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AccountService:       NewAccountService(storages, deps.Hasher, deps.Tokens, logger),
		ProfileService:       NewProfileService(storages, logger),
		VerificationService:  NewVerificationService(storages, logger),
		FavoriteService:      NewFavoriteService(storages, logger),
		ReviewService:        NewReviewService(storages, logger),
		PasswordResetService: NewPasswordResetService(storages, deps.Hasher, deps.Tokens, deps.Mail, cfg, logger),
		AppInfoService:       NewAppInfoService(deps.BuildInfo, logger),
	}
}
