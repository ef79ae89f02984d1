package tokens

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the payload of an access token. Subject carries the user's email.
type AccessClaims struct {
	TokenVersion *int `json:"token_version,omitempty"`
	jwt.RegisteredClaims
}
