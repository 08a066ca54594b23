// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomic/get-tentor/internal/crypto"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/internal/store"
	"github.com/atomic/get-tentor/models"
)

// accountService is the concrete implementation of AccountService.
// It checks identity uniqueness, hashes passwords with a PasswordHasher and
// issues access tokens through a TokenManager.
type accountService struct {
	accounts store.AccountRepository
	mentees  store.MenteeRepository
	tentors  store.TentorRepository
	admins   store.AdminRepository

	hasher crypto.PasswordHasher
	tokens crypto.TokenManager

	now func() time.Time

	logger *logger.Logger
}

// NewAccountService constructs an AccountService over the role repositories
// in storages.
func NewAccountService(storages *store.Storages, hasher crypto.PasswordHasher, tokens crypto.TokenManager, logger *logger.Logger) AccountService {
	return &accountService{
		accounts: storages.AccountRepository,
		mentees:  storages.MenteeRepository,
		tentors:  storages.TentorRepository,
		admins:   storages.AdminRepository,
		hasher:   hasher,
		tokens:   tokens,
		now:      time.Now,
		logger:   logger,
	}
}

// RegisterMentee creates an account and a mentee.
//
// Returns:
//   - ErrEmailAlreadyUsed if the email belongs to any account;
//   - ErrMenteeNIMAlreadyUsed if the NIM belongs to any account.
//
// The same errors are returned when a concurrent registration wins the race
// and the insert hits a unique constraint.
func (s *accountService) RegisterMentee(ctx context.Context, req models.MenteeRegisterRequest) (models.Mentee, error) {
	log := logger.FromContext(ctx)

	if err := s.checkIdentity(ctx, req.Email, req.NIM, ErrMenteeNIMAlreadyUsed); err != nil {
		return models.Mentee{}, err
	}

	account, err := s.newAccount(req.NIM, req.Nama, req.Email, req.Password, req.NoTelp, req.FotoURL)
	if err != nil {
		return models.Mentee{}, err
	}

	mentee, err := s.mentees.Create(ctx, models.Mentee{Account: account})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("mentee creation ended with error")
		return models.Mentee{}, identityError(err, ErrMenteeNIMAlreadyUsed)
	}

	log.Info().Int64("mentee_id", mentee.ID).Msg("mentee registered")
	return mentee, nil
}

// RegisterTentor creates an account and a PENDING tentor with no favorites.
//
// Returns ErrEmailAlreadyUsed or ErrTentorNIMAlreadyUsed on identity clashes.
func (s *accountService) RegisterTentor(ctx context.Context, req models.TentorRegisterRequest) (models.Tentor, error) {
	log := logger.FromContext(ctx)

	if err := s.checkIdentity(ctx, req.Email, req.NIM, ErrTentorNIMAlreadyUsed); err != nil {
		return models.Tentor{}, err
	}

	account, err := s.newAccount(req.NIM, req.Nama, req.Email, req.Password, req.NoTelp, req.FotoURL)
	if err != nil {
		return models.Tentor{}, err
	}

	tentor, err := s.tentors.Create(ctx, models.Tentor{
		Account:            account,
		IPK:                req.IPK,
		Pengalaman:         models.JoinPengalaman(req.Pengalaman),
		VerificationStatus: models.StatusPending,
		FavoriteCount:      0,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("tentor creation ended with error")
		return models.Tentor{}, identityError(err, ErrTentorNIMAlreadyUsed)
	}

	log.Info().Int64("tentor_id", tentor.ID).Msg("tentor registered")
	return tentor, nil
}

// Login authenticates a mentee, tentor or admin by email and password.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
// Tentors may log in whatever their verification status.
func (s *accountService) Login(ctx context.Context, role models.Role, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	id, account, err := s.findByRole(ctx, role, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Str("role", string(role)).Msg("login with unknown email")
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResponse{}, err
	}

	if !s.hasher.Verify(req.Password, account.PasswordHash) {
		log.Debug().Str("role", string(role)).Int64("id", id).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.IssueAccessToken(models.Principal{ID: id, Email: account.Email, Role: role})
	if err != nil {
		log.Err(err).Msg("access token creation failed")
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.LoginResponse{
		Token: token,
		ID:    id,
		Nama:  account.Nama,
		Email: account.Email,
		Role:  role,
	}, nil
}

// Authenticate parses an access token. Any token failure is reported as
// ErrUnauthorized.
func (s *accountService) Authenticate(ctx context.Context, token string) (models.Principal, error) {
	principal, err := s.tokens.ParseAccessToken(token)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		return models.Principal{}, ErrUnauthorized
	}
	return principal, nil
}

func (s *accountService) checkIdentity(ctx context.Context, email, nim string, nimErr error) error {
	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("email check failed: %w", err)
	}
	if exists {
		return ErrEmailAlreadyUsed
	}

	exists, err = s.accounts.ExistsByNIM(ctx, nim)
	if err != nil {
		return fmt.Errorf("nim check failed: %w", err)
	}
	if exists {
		return nimErr
	}

	return nil
}

func (s *accountService) newAccount(nim, nama, email, password, noTelp, fotoURL string) (models.Account, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	return models.Account{
		NIM:          nim,
		Nama:         nama,
		Email:        email,
		PasswordHash: digest,
		NoTelp:       noTelp,
		FotoURL:      fotoURL,
		CreatedAt:    s.now(),
	}, nil
}

func (s *accountService) findByRole(ctx context.Context, role models.Role, email string) (int64, models.Account, error) {
	switch role {
	case models.RoleMentee:
		m, err := s.mentees.FindByEmail(ctx, email)
		return m.ID, m.Account, err
	case models.RoleTentor:
		t, err := s.tentors.FindByEmail(ctx, email)
		return t.ID, t.Account, err
	case models.RoleAdmin:
		a, err := s.admins.FindByEmail(ctx, email)
		return a.ID, a.Account, err
	default:
		return 0, models.Account{}, ErrUnsupportedRole
	}
}

// identityError translates unique violations reported by the store.
func identityError(err, nimErr error) error {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyUsed
	case errors.Is(err, store.ErrNIMAlreadyExists):
		return nimErr
	default:
		return err
	}
}
