// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomic/get-tentor/internal/config"
	"github.com/atomic/get-tentor/internal/utils"
)

// ErrRelayRejected is returned when the relay answers with a non-2xx status.
var ErrRelayRejected = errors.New("mail relay rejected message")

// relayPayload is the JSON document posted to the relay endpoint.
type relayPayload struct {
	From     string `json:"from"`
	FromName string `json:"fromName,omitempty"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// HTTPRelaySender posts messages as JSON to an HTTP mail relay.
type HTTPRelaySender struct {
	client   *utils.HTTPClient
	url      string
	from     string
	fromName string
}

func NewHTTPRelaySender(cfg config.Mail) *HTTPRelaySender {
	return &HTTPRelaySender{
		client:   utils.NewHTTPClient(cfg.Timeout),
		url:      cfg.RelayURL,
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

func (s *HTTPRelaySender) Send(ctx context.Context, msg Message) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(relayPayload{
			From:     s.from,
			FromName: s.fromName,
			To:       msg.To,
			Subject:  msg.Subject,
			Body:     msg.Body,
		}).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("error posting message to relay: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode())
	}

	return nil
}
