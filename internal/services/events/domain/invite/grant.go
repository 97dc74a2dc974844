// Package invite issues and verifies signed RSVP invite grants. A grant is a
// short-lived ed25519 JWT that authorizes one guest email to respond to one
// event without an account.
package invite

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/id"
)

// DefaultGrantTTL bounds how long an issued invite grant stays valid.
const DefaultGrantTTL = 7 * 24 * time.Hour

// Environment variable names for invite grant configuration.
const (
	EnvInviteIssuer     = "EVENT_CONNECT_INVITE_ISSUER"
	EnvInviteAudience   = "EVENT_CONNECT_INVITE_AUDIENCE"
	EnvInvitePublicKey  = "EVENT_CONNECT_INVITE_PUBLIC_KEY"
	EnvInvitePrivateKey = "EVENT_CONNECT_INVITE_PRIVATE_KEY"
)

// grantVerifyEnv holds raw env values before post-parse validation.
type grantVerifyEnv struct {
	Issuer    string `env:"EVENT_CONNECT_INVITE_ISSUER"`
	Audience  string `env:"EVENT_CONNECT_INVITE_AUDIENCE"`
	PublicKey string `env:"EVENT_CONNECT_INVITE_PUBLIC_KEY"`
}

// grantSignEnv holds raw env values before post-parse validation.
type grantSignEnv struct {
	Issuer     string `env:"EVENT_CONNECT_INVITE_ISSUER"`
	Audience   string `env:"EVENT_CONNECT_INVITE_AUDIENCE"`
	PrivateKey string `env:"EVENT_CONNECT_INVITE_PRIVATE_KEY"`
}

// GrantConfig defines how invite grants are verified.
type GrantConfig struct {
	Issuer   string
	Audience string
	Key      ed25519.PublicKey
	Now      func() time.Time
}

// SignerConfig defines how invite grants are issued.
type SignerConfig struct {
	Issuer   string
	Audience string
	Key      ed25519.PrivateKey
	TTL      time.Duration
	Now      func() time.Time
	NewID    func() (string, error)
}

// GrantExpectation defines the expected identity for an invite grant.
type GrantExpectation struct {
	EventID    string
	GuestEmail string
}

// GrantClaims captures validated invite grant claims.
type GrantClaims struct {
	Issuer     string
	Audience   []string
	ExpiresAt  time.Time
	NotBefore  time.Time
	IssuedAt   time.Time
	JWTID      string
	EventID    string
	GuestEmail string
}

// grantClaims is the internal claims type used for JWT parsing.
type grantClaims struct {
	jwt.RegisteredClaims
	EventID    string `json:"event_id"`
	GuestEmail string `json:"guest_email"`
}

// LoadGrantConfigFromEnv reads invite grant verification configuration.
func LoadGrantConfigFromEnv(now func() time.Time) (GrantConfig, error) {
	var raw grantVerifyEnv
	if err := env.Parse(&raw); err != nil {
		return GrantConfig{}, fmt.Errorf("parse invite grant env: %w", err)
	}
	issuer := strings.TrimSpace(raw.Issuer)
	audience := strings.TrimSpace(raw.Audience)
	publicKey := strings.TrimSpace(raw.PublicKey)
	if issuer == "" {
		return GrantConfig{}, fmt.Errorf("EVENT_CONNECT_INVITE_ISSUER is required")
	}
	if audience == "" {
		return GrantConfig{}, fmt.Errorf("EVENT_CONNECT_INVITE_AUDIENCE is required")
	}
	if publicKey == "" {
		return GrantConfig{}, fmt.Errorf("EVENT_CONNECT_INVITE_PUBLIC_KEY is required")
	}
	keyBytes, err := decodeBase64(publicKey)
	if err != nil {
		return GrantConfig{}, fmt.Errorf("decode invite grant public key: %w", err)
	}
	if len(keyBytes) != ed25519.PublicKeySize {
		return GrantConfig{}, fmt.Errorf("invite grant public key must be %d bytes", ed25519.PublicKeySize)
	}
	if now == nil {
		now = time.Now
	}
	return GrantConfig{
		Issuer:   issuer,
		Audience: audience,
		Key:      ed25519.PublicKey(keyBytes),
		Now:      now,
	}, nil
}

// LoadSignerConfigFromEnv reads invite grant signing configuration. The
// private key env value accepts either a full ed25519 private key or its
// 32-byte seed, base64 encoded.
func LoadSignerConfigFromEnv(now func() time.Time) (SignerConfig, error) {
	var raw grantSignEnv
	if err := env.Parse(&raw); err != nil {
		return SignerConfig{}, fmt.Errorf("parse invite signer env: %w", err)
	}
	issuer := strings.TrimSpace(raw.Issuer)
	audience := strings.TrimSpace(raw.Audience)
	privateKey := strings.TrimSpace(raw.PrivateKey)
	if issuer == "" {
		return SignerConfig{}, fmt.Errorf("EVENT_CONNECT_INVITE_ISSUER is required")
	}
	if audience == "" {
		return SignerConfig{}, fmt.Errorf("EVENT_CONNECT_INVITE_AUDIENCE is required")
	}
	if privateKey == "" {
		return SignerConfig{}, fmt.Errorf("EVENT_CONNECT_INVITE_PRIVATE_KEY is required")
	}
	keyBytes, err := decodeBase64(privateKey)
	if err != nil {
		return SignerConfig{}, fmt.Errorf("decode invite grant private key: %w", err)
	}
	var key ed25519.PrivateKey
	switch len(keyBytes) {
	case ed25519.PrivateKeySize:
		key = ed25519.PrivateKey(keyBytes)
	case ed25519.SeedSize:
		key = ed25519.NewKeyFromSeed(keyBytes)
	default:
		return SignerConfig{}, fmt.Errorf("invite grant private key must be %d or %d bytes", ed25519.PrivateKeySize, ed25519.SeedSize)
	}
	if now == nil {
		now = time.Now
	}
	return SignerConfig{
		Issuer:   issuer,
		Audience: audience,
		Key:      key,
		TTL:      DefaultGrantTTL,
		Now:      now,
		NewID:    id.NewID,
	}, nil
}

// IssueGrant signs one invite grant for a guest email on an event.
func IssueGrant(eventID string, guestEmail string, cfg SignerConfig) (string, error) {
	eventID = strings.TrimSpace(eventID)
	guestEmail = strings.ToLower(strings.TrimSpace(guestEmail))
	if eventID == "" {
		return "", errors.New("event id is required")
	}
	if guestEmail == "" {
		return "", errors.New("guest email is required")
	}
	if cfg.Issuer == "" || cfg.Audience == "" || len(cfg.Key) != ed25519.PrivateKeySize {
		return "", errors.New("invite grant signer is not configured")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = id.NewID
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultGrantTTL
	}

	jwtID, err := cfg.NewID()
	if err != nil {
		return "", fmt.Errorf("generate invite grant id: %w", err)
	}
	now := cfg.Now().UTC()
	claims := grantClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jwtID,
		},
		EventID:    eventID,
		GuestEmail: guestEmail,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(cfg.Key)
	if err != nil {
		return "", fmt.Errorf("sign invite grant: %w", err)
	}
	return signed, nil
}

// ValidateGrant verifies an invite grant token and validates expected claims.
func ValidateGrant(grant string, expected GrantExpectation, cfg GrantConfig) (GrantClaims, error) {
	grant = strings.TrimSpace(grant)
	if grant == "" {
		return GrantClaims{}, apperrors.New(apperrors.CodeInviteGrantInvalid, "invite grant is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Issuer == "" || cfg.Audience == "" || len(cfg.Key) != ed25519.PublicKeySize {
		return GrantClaims{}, errors.New("invite grant verifier is not configured")
	}

	var parsed grantClaims
	_, err := jwt.ParseWithClaims(grant, &parsed, func(token *jwt.Token) (any, error) {
		return cfg.Key, nil
	},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return GrantClaims{}, mapJWTError(err)
	}

	if parsed.Issuer == "" || parsed.Issuer != cfg.Issuer {
		return GrantClaims{}, apperrors.WithMetadata(
			apperrors.CodeInviteGrantMismatch,
			"invite grant issuer mismatch",
			map[string]string{"Field": "issuer"},
		)
	}
	if !audienceContains(parsed.Audience, cfg.Audience) {
		return GrantClaims{}, apperrors.WithMetadata(
			apperrors.CodeInviteGrantMismatch,
			"invite grant audience mismatch",
			map[string]string{"Field": "audience"},
		)
	}

	if parsed.ID == "" {
		return GrantClaims{}, apperrors.New(apperrors.CodeInviteGrantInvalid, "invite grant jti is required")
	}
	if parsed.ExpiresAt == nil {
		return GrantClaims{}, apperrors.New(apperrors.CodeInviteGrantInvalid, "invite grant exp is required")
	}

	now := cfg.Now().UTC()
	exp := parsed.ExpiresAt.Time.UTC()
	if !exp.After(now) {
		return GrantClaims{}, apperrors.New(apperrors.CodeInviteGrantExpired, "invite grant is expired")
	}
	if parsed.NotBefore != nil {
		nbf := parsed.NotBefore.Time.UTC()
		if now.Before(nbf) {
			return GrantClaims{}, apperrors.New(apperrors.CodeInviteGrantInvalid, "invite grant not active yet")
		}
	}

	if strings.TrimSpace(parsed.EventID) == "" || parsed.EventID != expected.EventID {
		return GrantClaims{}, apperrors.WithMetadata(
			apperrors.CodeInviteGrantMismatch,
			"invite grant event mismatch",
			map[string]string{"Field": "event_id"},
		)
	}
	grantEmail := strings.ToLower(strings.TrimSpace(parsed.GuestEmail))
	expectedEmail := strings.ToLower(strings.TrimSpace(expected.GuestEmail))
	if grantEmail == "" || grantEmail != expectedEmail {
		return GrantClaims{}, apperrors.WithMetadata(
			apperrors.CodeInviteGrantMismatch,
			"invite grant guest mismatch",
			map[string]string{"Field": "guest_email"},
		)
	}

	claims := GrantClaims{
		Issuer:     parsed.Issuer,
		Audience:   []string(parsed.Audience),
		ExpiresAt:  exp,
		JWTID:      parsed.ID,
		EventID:    parsed.EventID,
		GuestEmail: grantEmail,
	}
	if parsed.NotBefore != nil {
		claims.NotBefore = parsed.NotBefore.Time.UTC()
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

// mapJWTError translates jwt library errors to application errors.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrEd25519Verification) {
		return apperrors.New(apperrors.CodeInviteGrantInvalid, "invite grant signature is invalid")
	}
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		return apperrors.New(apperrors.CodeInviteGrantInvalid, "invite grant alg is invalid")
	}
	return apperrors.New(apperrors.CodeInviteGrantInvalid, "invite grant is invalid")
}

// audienceContains reports whether the audience list contains the given value.
func audienceContains(aud jwt.ClaimStrings, value string) bool {
	for _, item := range aud {
		if item == value {
			return true
		}
	}
	return false
}

func decodeBase64(value string) ([]byte, error) {
	if value == "" {
		return nil, errors.New("empty base64 value")
	}
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}
