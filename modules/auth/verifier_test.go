package auth

import (
	"errors"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		SecretKey: "test-secret-key",
		Issuer:    "test-issuer",
		Audience:  "test-audience",
	}
}

func TestVerifier_SignAndVerify(t *testing.T) {
	verifier := NewVerifier(testConfig())

	subjectID := "user-123"
	email := "test@example.com"

	token, err := verifier.Sign(subjectID, email, 15*time.Minute)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if token == "" {
		t.Error("Sign() returned empty token")
	}

	identity, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if identity.SubjectID != subjectID {
		t.Errorf("identity.SubjectID = %v, want %v", identity.SubjectID, subjectID)
	}
	if identity.Email != email {
		t.Errorf("identity.Email = %v, want %v", identity.Email, email)
	}
	if identity.ExpiresAt.IsZero() {
		t.Error("identity.ExpiresAt not set")
	}
}

func TestVerifier_ExpiredToken(t *testing.T) {
	verifier := NewVerifier(testConfig())

	token, err := verifier.Sign("user-123", "test@example.com", 1*time.Millisecond)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	// Wait for the token to expire
	time.Sleep(10 * time.Millisecond)

	_, err = verifier.Verify(token)
	if err == nil {
		t.Fatal("Verify() should fail for expired token")
	}
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifier_WrongSecretKey(t *testing.T) {
	signer := NewVerifier(Config{
		SecretKey: "secret-key-1",
		Issuer:    "test-issuer",
		Audience:  "test-audience",
	})
	verifier := NewVerifier(Config{
		SecretKey: "secret-key-2",
		Issuer:    "test-issuer",
		Audience:  "test-audience",
	})

	token, err := signer.Sign("user-123", "test@example.com", 15*time.Minute)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	_, err = verifier.Verify(token)
	if err == nil {
		t.Fatal("Verify() should fail with different secret key")
	}
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifier_WrongIssuer(t *testing.T) {
	config := testConfig()
	config.Issuer = "other-issuer"
	signer := NewVerifier(config)
	verifier := NewVerifier(testConfig())

	token, err := signer.Sign("user-123", "", 15*time.Minute)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for wrong issuer, got %v", err)
	}
}

func TestVerifier_WrongAudience(t *testing.T) {
	config := testConfig()
	config.Audience = "other-audience"
	signer := NewVerifier(config)
	verifier := NewVerifier(testConfig())

	token, err := signer.Sign("user-123", "", 15*time.Minute)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for wrong audience, got %v", err)
	}
}

func TestVerifier_InvalidToken(t *testing.T) {
	verifier := NewVerifier(testConfig())

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "random string",
			token: "not.a.valid.token",
		},
		{
			name:  "malformed jwt",
			token: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			if !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("Verify(%q) = %v, want ErrTokenInvalid", tt.token, err)
			}
		})
	}
}

func TestVerifier_MissingSubject(t *testing.T) {
	verifier := NewVerifier(testConfig())

	token, err := verifier.Sign("", "test@example.com", 15*time.Minute)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for missing subject, got %v", err)
	}
}

func TestVerifier_ExpiredBeatsNothingElse(t *testing.T) {
	// A token that is both expired and signed with the wrong key must be
	// reported invalid, not expired: expiry classification is only for
	// tokens whose signature checks out.
	signer := NewVerifier(Config{
		SecretKey: "some-other-secret",
		Issuer:    "test-issuer",
		Audience:  "test-audience",
	})
	verifier := NewVerifier(testConfig())

	token, err := signer.Sign("user-123", "", 1*time.Millisecond)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
