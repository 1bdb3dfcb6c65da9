package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AuthModule provides token verification services. It holds the single
// long-lived Verifier instance shared by all requests.
type AuthModule struct {
	verifier *Verifier
}

// Compile-time interface checks.
var _ mono.Module = (*AuthModule)(nil)
var _ mono.ServiceProviderModule = (*AuthModule)(nil)
var _ mono.HealthCheckableModule = (*AuthModule)(nil)

// NewModule creates a new AuthModule.
func NewModule() *AuthModule {
	return &AuthModule{}
}

// Name returns the module name.
func (m *AuthModule) Name() string {
	return "auth"
}

// Start builds the verifier from environment configuration.
func (m *AuthModule) Start(_ context.Context) error {
	config := LoadConfig()
	m.verifier = NewVerifier(config)

	log.Printf("[auth] Module started (issuer: %s, audience: %s)", config.Issuer, config.Audience)
	return nil
}

// Stop shuts down the module.
func (m *AuthModule) Stop(_ context.Context) error {
	log.Println("[auth] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *AuthModule) Health(_ context.Context) mono.HealthStatus {
	if m.verifier == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "verifier not initialized",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *AuthModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container,
		"verify-token",
		json.Unmarshal,
		json.Marshal,
		m.handleVerifyToken,
	); err != nil {
		return fmt.Errorf("failed to register verify-token service: %w", err)
	}

	log.Printf("[auth] Registered services: verify-token")
	return nil
}

// handleVerifyToken handles token verification. Verification failures are
// returned as a classified response, not an error, so the adapter on the
// caller side can map them back to sentinel errors.
func (m *AuthModule) handleVerifyToken(_ context.Context, req VerifyTokenRequest, _ *mono.Msg) (VerifyTokenResponse, error) {
	identity, err := m.verifier.Verify(req.Token)
	if err != nil {
		failure := failureInvalid
		if errors.Is(err, ErrTokenExpired) {
			failure = failureExpired
		}
		log.Printf("[auth] Token verification failed: %v", err)
		return VerifyTokenResponse{
			Valid: false,
			Error: failure,
		}, nil
	}

	return VerifyTokenResponse{
		Valid:     true,
		SubjectID: identity.SubjectID,
		Email:     identity.Email,
		ExpiresAt: identity.ExpiresAt,
	}, nil
}
