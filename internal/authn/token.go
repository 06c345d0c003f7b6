package authn

import (
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// signSession emite un JWT HS256 con sub/email/iat/exp.
func signSession(secret []byte, userID, email string, ttl time.Duration, now time.Time) (*Session, error) {
	exp := now.Add(ttl)
	claims := jwtv5.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	tok := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := tok.SignedString(secret)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     signed,
		UserID:    userID,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: exp,
	}, nil
}

// parseSession valida el token y reconstruye la Session.
func parseSession(secret []byte, raw string) (*Session, error) {
	tok, err := jwtv5.Parse(raw, func(t *jwtv5.Token) (any, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	}, jwtv5.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	s := &Session{Token: raw, UserID: sub, Email: email}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		s.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s, nil
}
