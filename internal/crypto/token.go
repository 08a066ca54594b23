// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomic/get-tentor/internal/config"
	"github.com/atomic/get-tentor/internal/utils"
	"github.com/atomic/get-tentor/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrWrongTokenScope is returned when a valid token is used for another purpose.
	ErrWrongTokenScope = errors.New("wrong token scope")
	// ErrInvalidPrincipal is returned when an access token lacks a role or id.
	ErrInvalidPrincipal = errors.New("invalid token principal")
)

// JWTTokenManager implements [TokenManager] with HMAC-signed JWTs.
type JWTTokenManager struct {
	signKey   string
	issuer    string
	accessTTL time.Duration
	resetTTL  time.Duration
}

func NewJWTTokenManager(cfg config.App) *JWTTokenManager {
	return &JWTTokenManager{
		signKey:   cfg.TokenSignKey,
		issuer:    cfg.TokenIssuer,
		accessTTL: cfg.TokenDuration,
		resetTTL:  cfg.ResetTokenDuration,
	}
}

func (m *JWTTokenManager) IssueAccessToken(p models.Principal) (string, error) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: p.Email},
		Scope:            models.ScopeAccess,
		Role:             p.Role,
		PrincipalID:      p.ID,
	}

	token, err := utils.GenerateJWTToken(m.issuer, claims, m.accessTTL, m.signKey)
	if err != nil {
		return "", fmt.Errorf("error issuing access token: %w", err)
	}
	return token, nil
}

func (m *JWTTokenManager) ParseAccessToken(token string) (models.Principal, error) {
	claims, err := m.parse(token)
	if err != nil {
		return models.Principal{}, err
	}
	if claims.Scope != models.ScopeAccess {
		return models.Principal{}, ErrWrongTokenScope
	}
	if claims.Role == "" || claims.PrincipalID == 0 {
		return models.Principal{}, ErrInvalidPrincipal
	}

	return models.Principal{
		ID:    claims.PrincipalID,
		Email: claims.Subject,
		Role:  claims.Role,
	}, nil
}

func (m *JWTTokenManager) IssueResetToken(email string) (string, error) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: email},
		Scope:            models.ScopeResetPassword,
	}

	token, err := utils.GenerateJWTToken(m.issuer, claims, m.resetTTL, m.signKey)
	if err != nil {
		return "", fmt.Errorf("error issuing reset token: %w", err)
	}
	return token, nil
}

func (m *JWTTokenManager) EmailFromToken(token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (m *JWTTokenManager) IsValid(token string) bool {
	_, err := m.parse(token)
	return err == nil
}

func (m *JWTTokenManager) IsResetScope(token string) bool {
	claims, err := m.parse(token)
	return err == nil && claims.Scope == models.ScopeResetPassword
}

func (m *JWTTokenManager) parse(token string) (*models.TokenClaims, error) {
	return utils.ValidateAndParseJWTToken(token, m.signKey, m.issuer)
}
