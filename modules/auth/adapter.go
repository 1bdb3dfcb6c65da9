package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// VerifierPort defines the interface other modules use to verify tokens.
type VerifierPort interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// VerifierAdapter implements VerifierPort using the service container.
type VerifierAdapter struct {
	container mono.ServiceContainer
}

// NewVerifierAdapter creates a new VerifierAdapter.
func NewVerifierAdapter(container mono.ServiceContainer) *VerifierAdapter {
	return &VerifierAdapter{
		container: container,
	}
}

// Verify verifies a bearer token and returns the identity it carries.
// Failures keep their classification: ErrTokenExpired or ErrTokenInvalid.
func (a *VerifierAdapter) Verify(ctx context.Context, token string) (*Identity, error) {
	req := VerifyTokenRequest{Token: token}
	var resp VerifyTokenResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"verify-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("verify-token request failed: %w", err)
	}

	if !resp.Valid {
		if resp.Error == failureExpired {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	return &Identity{
		SubjectID: resp.SubjectID,
		Email:     resp.Email,
		ExpiresAt: resp.ExpiresAt,
	}, nil
}
