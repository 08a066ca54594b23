// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/atomic/get-tentor/internal/config"
	"github.com/atomic/get-tentor/models"
)

func testTokenManager() *JWTTokenManager {
	return NewJWTTokenManager(config.App{
		TokenSignKey:       "test-key",
		TokenIssuer:        "get-tentor-test",
		TokenDuration:      time.Hour,
		ResetTokenDuration: 10 * time.Minute,
	})
}

func TestJWTTokenManager_AccessRoundTrip(t *testing.T) {
	m := testTokenManager()
	want := models.Principal{ID: 7, Email: "budi@example.com", Role: models.RoleTentor}

	token, err := m.IssueAccessToken(want)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	got, err := m.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if got != want {
		t.Fatalf("principal = %+v, want %+v", got, want)
	}

	if !m.IsValid(token) {
		t.Fatal("expected access token to be valid")
	}
	if m.IsResetScope(token) {
		t.Fatal("access token must not carry the reset scope")
	}
}

func TestJWTTokenManager_ResetToken(t *testing.T) {
	m := testTokenManager()

	token, err := m.IssueResetToken("dina@example.com")
	if err != nil {
		t.Fatalf("IssueResetToken error: %v", err)
	}

	if !m.IsValid(token) {
		t.Fatal("expected reset token to be valid")
	}
	if !m.IsResetScope(token) {
		t.Fatal("expected reset token to carry the reset scope")
	}

	email, err := m.EmailFromToken(token)
	if err != nil {
		t.Fatalf("EmailFromToken error: %v", err)
	}
	if email != "dina@example.com" {
		t.Fatalf("email = %q, want dina@example.com", email)
	}

	if _, err := m.ParseAccessToken(token); !errors.Is(err, ErrWrongTokenScope) {
		t.Fatalf("expected ErrWrongTokenScope, got %v", err)
	}
}

func TestJWTTokenManager_ForeignKey(t *testing.T) {
	m := testTokenManager()
	other := NewJWTTokenManager(config.App{
		TokenSignKey:       "other-key",
		TokenIssuer:        "get-tentor-test",
		TokenDuration:      time.Hour,
		ResetTokenDuration: time.Hour,
	})

	token, _ := other.IssueResetToken("dina@example.com")

	if m.IsValid(token) {
		t.Fatal("token signed with another key must be invalid")
	}
	if m.IsResetScope(token) {
		t.Fatal("invalid token must not report reset scope")
	}
	if _, err := m.EmailFromToken(token); err == nil {
		t.Fatal("expected error for token signed with another key")
	}
}

func TestJWTTokenManager_Expired(t *testing.T) {
	m := NewJWTTokenManager(config.App{
		TokenSignKey:       "test-key",
		TokenIssuer:        "get-tentor-test",
		TokenDuration:      -time.Minute,
		ResetTokenDuration: -time.Minute,
	})

	token, err := m.IssueResetToken("dina@example.com")
	if err != nil {
		t.Fatalf("IssueResetToken error: %v", err)
	}
	if m.IsValid(token) || m.IsResetScope(token) {
		t.Fatal("expired token must be rejected")
	}
}

func TestJWTTokenManager_Garbage(t *testing.T) {
	m := testTokenManager()

	for _, token := range []string{"", "abc", "a.b.c"} {
		if m.IsValid(token) {
			t.Fatalf("expected %q to be invalid", token)
		}
		if _, err := m.ParseAccessToken(token); err == nil {
			t.Fatalf("expected ParseAccessToken(%q) to fail", token)
		}
	}
}

func TestJWTTokenManager_AccessTokenWithoutPrincipal(t *testing.T) {
	m := testTokenManager()

	token, err := m.IssueAccessToken(models.Principal{Email: "x@example.com"})
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}
	if _, err := m.ParseAccessToken(token); !errors.Is(err, ErrInvalidPrincipal) {
		t.Fatalf("expected ErrInvalidPrincipal, got %v", err)
	}
}
