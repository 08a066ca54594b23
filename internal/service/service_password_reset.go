// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomic/get-tentor/internal/config"
	"github.com/atomic/get-tentor/internal/crypto"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/atomic/get-tentor/internal/mail"
	"github.com/atomic/get-tentor/internal/store"
	"github.com/atomic/get-tentor/internal/utils"
	"github.com/atomic/get-tentor/models"
)

const (
	otpMailSubject = "OTP for Forgot Password request"
	otpMailBody    = "This is the OTP for your Forgot Password request : %d"
)

// passwordResetService implements the reset flow
//
//	no request -> pending(otp, expiry) -> consumed
//
// for mentees and tentors. A pending request is deleted on successful
// verification and on detected expiry.
type passwordResetService struct {
	accounts store.AccountRepository
	mentees  store.MenteeRepository
	tentors  store.TentorRepository
	resets   store.PasswordResetRepository

	hasher crypto.PasswordHasher
	tokens crypto.TokenManager
	sender mail.Sender

	otpTTL      time.Duration
	generateOTP func() (int, error)
	now         func() time.Time

	logger *logger.Logger
}

func NewPasswordResetService(
	storages *store.Storages,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenManager,
	sender mail.Sender,
	cfg config.App,
	logger *logger.Logger,
) PasswordResetService {
	return &passwordResetService{
		accounts:    storages.AccountRepository,
		mentees:     storages.MenteeRepository,
		tentors:     storages.TentorRepository,
		resets:      storages.PasswordResetRepository,
		hasher:      hasher,
		tokens:      tokens,
		sender:      sender,
		otpTTL:      cfg.OTPTTL,
		generateOTP: utils.GenerateOTP,
		now:         time.Now,
		logger:      logger,
	}
}

// resetOwner is the role-specific record a reset request belongs to.
type resetOwner struct {
	id        int64
	accountID int64
	email     string
}

// VerifyEmail stores a fresh OTP for the account and mails it.
// A failed delivery is logged and does not fail the call.
func (s *passwordResetService) VerifyEmail(ctx context.Context, role models.Role, email string) error {
	log := logger.FromContext(ctx)

	owner, err := s.resolveOwner(ctx, role, email)
	if err != nil {
		return err
	}

	otp, err := s.generateOTP()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOTPGenerationFailed, err)
	}

	_, err = s.resets.Create(ctx, models.PasswordResetRequest{
		Role:           role,
		OwnerID:        owner.id,
		OTP:            otp,
		ExpirationTime: s.now().Add(s.otpTTL),
	})
	if err != nil {
		log.Err(err).Str("role", string(role)).Int64("owner_id", owner.id).Msg("reset request creation failed")
		return fmt.Errorf("reset request creation failed: %w", err)
	}

	err = s.sender.Send(ctx, mail.Message{
		To:      owner.email,
		Subject: otpMailSubject,
		Body:    fmt.Sprintf(otpMailBody, otp),
	})
	if err != nil {
		log.Err(err).Str("role", string(role)).Int64("owner_id", owner.id).Msg("otp mail delivery failed")
	}

	return nil
}

// VerifyOTP consumes the pending request matching the OTP and returns a
// reset token for the email.
//
// Returns ErrOTPMismatch when no request matches and ErrOTPExpired when the
// matching request has expired. An expired request is deleted too.
func (s *passwordResetService) VerifyOTP(ctx context.Context, role models.Role, req models.VerifyOTPRequest) (string, error) {
	log := logger.FromContext(ctx)

	owner, err := s.resolveOwner(ctx, role, req.Email)
	if err != nil {
		return "", err
	}

	pending, err := s.resets.FindByOwnerAndOTP(ctx, role, owner.id, req.OTP)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrOTPMismatch
	}
	if err != nil {
		return "", fmt.Errorf("reset request lookup failed: %w", err)
	}

	if pending.Expired(s.now()) {
		if err = s.resets.Delete(ctx, pending.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Err(err).Int64("request_id", pending.ID).Msg("expired reset request deletion failed")
		}
		return "", ErrOTPExpired
	}

	if err = s.resets.Delete(ctx, pending.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrOTPMismatch
		}
		return "", fmt.Errorf("reset request deletion failed: %w", err)
	}

	token, err := s.tokens.IssueResetToken(owner.email)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("role", string(role)).Int64("owner_id", owner.id).Msg("otp verified")
	return token, nil
}

// ChangePassword checks, in order: the repeated password, presence of the
// token, decodability, validity and reset scope of the token. Only then is
// the new password hashed and stored.
func (s *passwordResetService) ChangePassword(ctx context.Context, role models.Role, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.Password != req.RepeatPassword {
		return ErrRepeatPasswordMismatch
	}
	if req.ResetToken == "" {
		return ErrResetTokenEmpty
	}

	email, err := s.tokens.EmailFromToken(req.ResetToken)
	if err != nil {
		log.Debug().Err(err).Msg("reset token could not be decoded")
		return ErrResetTokenInvalid
	}
	if !s.tokens.IsValid(req.ResetToken) {
		return ErrResetTokenInvalid
	}
	if !s.tokens.IsResetScope(req.ResetToken) {
		return ErrNotResetToken
	}
	if req.Password == "" {
		return ErrPasswordEmpty
	}

	owner, err := s.resolveOwner(ctx, role, email)
	if err != nil {
		return err
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	err = s.accounts.UpdatePassword(ctx, owner.accountID, digest)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEmailNotFound
	}
	if err != nil {
		log.Err(err).Int64("account_id", owner.accountID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Str("role", string(role)).Int64("owner_id", owner.id).Msg("password changed")
	return nil
}

func (s *passwordResetService) resolveOwner(ctx context.Context, role models.Role, email string) (resetOwner, error) {
	var (
		owner resetOwner
		err   error
	)

	switch role {
	case models.RoleMentee:
		var m models.Mentee
		m, err = s.mentees.FindByEmail(ctx, email)
		owner = resetOwner{id: m.ID, accountID: m.AccountID, email: m.Account.Email}
	case models.RoleTentor:
		var t models.Tentor
		t, err = s.tentors.FindByEmail(ctx, email)
		owner = resetOwner{id: t.ID, accountID: t.AccountID, email: t.Account.Email}
	default:
		return resetOwner{}, ErrUnsupportedRole
	}

	if errors.Is(err, store.ErrNotFound) {
		return resetOwner{}, ErrEmailNotFound
	}
	if err != nil {
		return resetOwner{}, fmt.Errorf("%s lookup failed: %w", role, err)
	}

	return owner, nil
}
