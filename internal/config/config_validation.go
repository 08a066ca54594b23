// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults] to unset fields.
const (
	DefaultTokenIssuer        = "get-tentor"
	DefaultTokenDuration      = 24 * time.Hour
	DefaultResetTokenDuration = 10 * time.Minute
	DefaultOTPTTL             = 5 * time.Minute
	DefaultBcryptCost         = 10
	DefaultLogLevel           = "debug"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultMailTimeout        = 10 * time.Second
	DefaultSMTPPort           = 587
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.ResetTokenDuration == 0 {
		cfg.App.ResetTokenDuration = DefaultResetTokenDuration
	}
	if cfg.App.OTPTTL == 0 {
		cfg.App.OTPTTL = DefaultOTPTTL
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Mail.Driver == "" {
		cfg.Mail.Driver = MailDriverLog
	}
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = DefaultMailTimeout
	}
	if cfg.Mail.SMTPPort == 0 {
		cfg.Mail.SMTPPort = DefaultSMTPPort
	}
}

// validate checks that the final merged [StructuredConfig] carries every
// value the server cannot start without.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Mail.Driver {
	case MailDriverLog:
	case MailDriverSMTP:
		if cfg.Mail.SMTPHost == "" || cfg.Mail.From == "" {
			return fmt.Errorf("%w: smtp driver needs host and sender", ErrInvalidMailConfigs)
		}
	case MailDriverHTTP:
		if cfg.Mail.RelayURL == "" || cfg.Mail.From == "" {
			return fmt.Errorf("%w: http driver needs relay url and sender", ErrInvalidMailConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidMailConfigs, cfg.Mail.Driver)
	}

	return nil
}
