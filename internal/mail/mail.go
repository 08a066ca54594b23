// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mail delivers outbound plain-text messages such as password reset
// OTPs. The concrete [Sender] is chosen by [NewSender] from the mail driver
// configuration.
package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomic/get-tentor/internal/config"
	"github.com/atomic/get-tentor/internal/logger"
)

//go:generate mockgen -source=mail.go -destination=../mock/mail_mock.go -package=mock

// ErrUnknownDriver is returned by [NewSender] for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown mail driver")

// Message is a single plain-text email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender builds the sender selected by cfg.Driver.
func NewSender(cfg config.Mail, log *logger.Logger) (Sender, error) {
	switch cfg.Driver {
	case config.MailDriverSMTP:
		return NewSMTPSender(cfg), nil
	case config.MailDriverHTTP:
		return NewHTTPRelaySender(cfg), nil
	case config.MailDriverLog, "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
