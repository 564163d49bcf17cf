package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. The HTTP layer collapses all of them into a
// single unauthorized response; the distinction exists for logging only.
var (
	ErrMalformed        = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token has expired")
)

// CodecConfig is the immutable signing material for the codec. Secret and
// TTL are loaded once at startup and never change at runtime.
type CodecConfig struct {
	Secret string
	TTL    time.Duration
}

// Codec signs and verifies the bearer tokens that represent an
// authenticated admin session. Tokens are self-contained; the server keeps
// no session state and cannot revoke a token before it expires.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a codec from the provided configuration.
func NewCodec(cfg CodecConfig) *Codec {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the time source, so expiry logic can be tested
// deterministically.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	if now != nil {
		c.now = now
	}
	return c
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given subject. The caller is responsible for
// having authenticated the subject beforehand.
func (c *Codec) Issue(subject uint) (string, error) {
	if len(c.secret) == 0 {
		return "", errors.New("codec secret is empty")
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(subject), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded subject.
// Expiry is compared against the codec's clock with no leeway; a token is
// rejected the instant its deadline passes.
func (c *Codec) Verify(tokenString string) (uint, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)

	var claims jwt.RegisteredClaims
	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, fmt.Errorf("%w: %v", ErrExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		default:
			return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	subject, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject claim %q", ErrMalformed, claims.Subject)
	}
	return uint(subject), nil
}
