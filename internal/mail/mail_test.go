// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import (
	"testing"

	"github.com/atomic/get-tentor/internal/config"
	"github.com/atomic/get-tentor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSender(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		want    any
		wantErr bool
	}{
		{name: "smtp", driver: config.MailDriverSMTP, want: &SMTPSender{}},
		{name: "http", driver: config.MailDriverHTTP, want: &HTTPRelaySender{}},
		{name: "log", driver: config.MailDriverLog, want: &LogSender{}},
		{name: "empty defaults to log", driver: "", want: &LogSender{}},
		{name: "unknown", driver: "pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := NewSender(config.Mail{Driver: tt.driver, SMTPHost: "localhost", SMTPPort: 25}, logger.Nop())
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownDriver)
				assert.Nil(t, sender)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, sender)
		})
	}
}
