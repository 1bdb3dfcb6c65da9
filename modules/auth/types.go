package auth

import "time"

// Identity is the verified identity extracted from a bearer token.
// It lives for the duration of a single request and is never persisted.
type Identity struct {
	SubjectID string    `json:"subject_id"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Token failure classifications carried over the verify-token service.
const (
	failureExpired = "expired"
	failureInvalid = "invalid"
)

// VerifyTokenRequest represents a token verification request.
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// VerifyTokenResponse represents a token verification response. Verification
// failures are returned as data, not as service errors, so the caller can
// distinguish an expired token from an invalid one.
type VerifyTokenResponse struct {
	Valid     bool      `json:"valid"`
	SubjectID string    `json:"subject_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Error     string    `json:"error,omitempty"`
}
