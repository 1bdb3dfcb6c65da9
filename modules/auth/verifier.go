package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoToken is returned when no bearer token was presented at all.
	ErrNoToken = errors.New("no token provided")
	// ErrTokenExpired is returned when the token is well-signed but past expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned for every other verification failure.
	ErrTokenInvalid = errors.New("invalid token")
)

// Config holds token verification configuration. The secret key is shared
// with the identity provider that issues the tokens.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  string
}

// DefaultConfig returns a default verifier configuration.
// In production, the secret key must be loaded from environment variables.
func DefaultConfig() Config {
	return Config{
		SecretKey: "change-me-in-production",
		Issuer:    "task-list-idp",
		Audience:  "task-list",
	}
}

// LoadConfig loads verifier configuration from environment variables,
// falling back to defaults for anything unset.
func LoadConfig() Config {
	config := DefaultConfig()

	if secret := os.Getenv("TOKEN_SECRET_KEY"); secret != "" {
		config.SecretKey = secret
	}
	if issuer := os.Getenv("TOKEN_ISSUER"); issuer != "" {
		config.Issuer = issuer
	}
	if audience := os.Getenv("TOKEN_AUDIENCE"); audience != "" {
		config.Audience = audience
	}

	return config
}

// identityClaims are the claims the identity provider puts into its tokens.
type identityClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens issued by the identity provider.
// One long-lived instance is constructed at startup and shared by all requests.
type Verifier struct {
	config Config
}

// NewVerifier creates a new Verifier with the given configuration.
func NewVerifier(config Config) *Verifier {
	return &Verifier{
		config: config,
	}
}

// Verify checks the signature, expiry, issuer and audience of a raw token and
// returns the identity it carries. Failures are classified: ErrTokenExpired
// for a well-signed token past its expiry, ErrTokenInvalid for anything else.
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(v.config.SecretKey), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(v.config.Issuer),
		jwt.WithAudience(v.config.Audience),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	identity := &Identity{
		SubjectID: claims.Subject,
		Email:     claims.Email,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

// Sign issues a token for the given subject, valid for the given duration.
// Real deployments receive tokens minted by the identity provider; Sign exists
// for the devtoken command and for tests.
func (v *Verifier) Sign(subjectID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := identityClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.config.Issuer,
			Audience:  jwt.ClaimStrings{v.config.Audience},
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(v.config.SecretKey))
}
