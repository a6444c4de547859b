package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/microblog/config"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type TokenClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the access/refresh JWT pair.
// Logout puts the access token's jti on a redis denylist until the
// token would have expired anyway.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	redis      *redis.Client
}

func NewTokenService(cfg config.JWTConfig, rdb *redis.Client) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		redis:      rdb,
	}
}

func (s *TokenService) IssuePair(userID string) (TokenPair, error) {
	access, err := s.sign(userID, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(userID, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *TokenService) sign(userID, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies signature, expiry and token type, and checks the
// denylist for access tokens.
func (s *TokenService) Parse(ctx context.Context, tokenStr, wantType string) (*TokenClaims, error) {
	var claims TokenClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	if wantType == TokenTypeAccess {
		revoked, err := s.isRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}
	return &claims, nil
}

// Revoke denylists an access token until its natural expiry.
func (s *TokenService) Revoke(ctx context.Context, claims *TokenClaims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, denylistKey(claims.ID), "1", ttl).Err()
}

func (s *TokenService) isRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.redis.Exists(ctx, denylistKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func denylistKey(jti string) string { return "token:denied:" + jti }
