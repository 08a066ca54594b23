// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/atomic/get-tentor/internal/config"
)

// SMTPSender delivers messages through an SMTP relay, upgrading to TLS with
// STARTTLS when the server offers it.
type SMTPSender struct {
	host     string
	addr     string
	username string
	password string
	from     string
	fromName string
	timeout  time.Duration
}

func NewSMTPSender(cfg config.Mail) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		addr:     net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		fromName: cfg.FromName,
		timeout:  cfg.Timeout,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("error dialing smtp server %s: %w", s.addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("error creating smtp client: %w", err)
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("error starting tls: %w", err)
		}
	}

	if s.username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			return fmt.Errorf("error authenticating to smtp server: %w", err)
		}
	}

	if err = c.Mail(s.from); err != nil {
		return fmt.Errorf("error setting sender: %w", err)
	}
	if err = c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("error setting recipient: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("error opening data writer: %w", err)
	}
	if _, err = w.Write(s.buildMessage(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("error writing message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("error closing data writer: %w", err)
	}

	return nil
}

func (s *SMTPSender) buildMessage(msg Message) []byte {
	from := s.from
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.from)
	}

	return []byte(strings.Join([]string{
		"From: " + from,
		"To: " + msg.To,
		"Subject: " + msg.Subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		msg.Body,
	}, "\r\n"))
}
