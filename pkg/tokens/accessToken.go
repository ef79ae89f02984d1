package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultAccessTTL = 15 * time.Minute

var ErrInvalidToken = errors.New("invalid token")

type Issuer struct {
	Secret []byte
	Method jwt.SigningMethod
	TTL    time.Duration
}

// NewIssuer accepts only HMAC algorithms; the secret is symmetric.
func NewIssuer(secret []byte, alg string, ttl time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is empty")
	}
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm %q", alg)
	}
	if ttl <= 0 {
		ttl = DefaultAccessTTL
	}
	return &Issuer{Secret: secret, Method: method, TTL: ttl}, nil
}

func (i *Issuer) Issue(email string, tokenVersion int) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(i.TTL)
	version := tokenVersion

	claims := AccessClaims{
		TokenVersion: &version,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(i.Method, claims).SignedString(i.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies algorithm, signature and expiry. Every failure is reported as ErrInvalidToken.
func (i *Issuer) Parse(tokenStr string) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return i.Secret, nil
	},
		jwt.WithValidMethods([]string{i.Method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &claims, nil
}
