package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller decoded from a bearer token.
// It is handed explicitly to every protected handler and service call.
type Identity struct {
	UserID   string
	Username string
}

// TokenClaims is the claim set carried by access tokens: the standard
// registered claims (sub holds the user id) plus the username.
type TokenClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP responses.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the caller the token was issued for.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
