package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by access tokens issued at login.
type TokenClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID returns the numeric subject of the token.
func (c *TokenClaims) UserID() (int, error) {
	return strconv.Atoi(c.Subject)
}

// JWTParams groups everything needed to sign or verify a token.
type JWTParams struct {
	SigningKey string
	Issuer     string
	Audience   string
	// Now overrides the verification clock. Nil means time.Now.
	Now func() time.Time
}

// GenerateJWT signs an HS256 token for the given user that expires at expiresAt.
// issuedAt is used for both iat and nbf.
func GenerateJWT(params JWTParams, userID int, name, email string, issuedAt, expiresAt time.Time) (string, error) {
	if params.SigningKey == "" {
		return "", errors.New("jwt signing key is empty")
	}
	claims := TokenClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   strconv.Itoa(userID),
			Audience:  jwt.ClaimStrings{params.Audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(params.SigningKey))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature, issuer, audience and lifetime.
// It returns the TokenClaims if the token is valid, or an error otherwise.
func ParseAndValidateJWT(tokenString string, params JWTParams) (*TokenClaims, error) {
	claims := &TokenClaims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithAudience(params.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
	}
	if params.Now != nil {
		opts = append(opts, jwt.WithTimeFunc(params.Now))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(params.SigningKey), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
