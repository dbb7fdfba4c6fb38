// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// auth service and the authentication middleware.
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AuthClaims represents the payload embedded inside a signed token.
//
// # Why custom claims?
//
// Embedding the id, email and role lets the middleware authorise most
// requests from the token alone. The account is still looked up once per
// request to reject deactivated users.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID    int64    `json:"id"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	TokenType string   `json:"type"`
}

// Identity is the subject a token is minted for.
type Identity struct {
	UserID int64
	Email  string
	Role   UserRole
}

// TokenService handles generation and verification of HS256 tokens.
type TokenService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a new TokenService bound to a shared secret.
func NewTokenService(secret, issuer string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: jwt secret must not be empty")
	}

	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// GenerateAccessToken creates a short-lived token for API calls.
func (service *TokenService) GenerateAccessToken(identity Identity) (string, error) {
	return service.sign(identity, TokenTypeAccess, service.accessTTL)
}

// GenerateRefreshToken creates a long-lived token used to mint new access tokens.
func (service *TokenService) GenerateRefreshToken(identity Identity) (string, error) {
	return service.sign(identity, TokenTypeRefresh, service.refreshTTL)
}

// AccessTTL exposes the access token lifetime for response metadata.
func (service *TokenService) AccessTTL() time.Duration {
	return service.accessTTL
}

func (service *TokenService) sign(identity Identity, tokenType string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.UserID, 10),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID:    identity.UserID,
		Email:     identity.Email,
		Role:      identity.Role,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, issuer and expiry of a token string.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithIssuer(service.issuer))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid token claims")
	}

	return claims, nil
}

// Identity returns the subject encoded in the claims.
func (claims *AuthClaims) Identity() Identity {
	return Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
}
