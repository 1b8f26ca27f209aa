// internals/features/users/auth/service/token_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "altroway_backend/internals/features/users/auth/model"
	helperAuth "altroway_backend/internals/helpers/auth"
)

var (
	ErrInvalidToken = errors.New("invalid or expired session")
	ErrNoSecret     = errors.New("JWT_SECRET is not configured")
)

type accessClaims struct {
	Email string `json:"email"`
	Typ   string `json:"typ"`
	jwt.RegisteredClaims
}

// IssueAccessToken signs an HS256 access token for the identity.
func (s *AuthService) IssueAccessToken(user *authModel.AuthUserModel) (string, time.Time, error) {
	if s.Secret == "" {
		return "", time.Time{}, ErrNoSecret
	}
	now := s.now()
	exp := now.Add(s.TTL)
	claims := accessClaims{
		Email: user.Email,
		Typ:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (s *AuthService) parse(raw string) (*accessClaims, error) {
	if s.Secret == "" {
		return nil, ErrNoSecret
	}
	claims := &accessClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// time checks are done below against the service clock
	parser.SkipClaimsValidation = true
	tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(s.Secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Typ != "access" || claims.ExpiresAt == nil || !s.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolveSession verifies a raw access token and returns the session it
// carries. Blacklisted (signed-out) tokens resolve to ErrInvalidToken.
func (s *AuthService) ResolveSession(ctx context.Context, raw string) (*helperAuth.Session, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidToken
	}
	claims, err := s.parse(raw)
	if err != nil {
		return nil, err
	}
	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	black, err := s.IsBlacklisted(ctx, raw)
	if err != nil {
		return nil, err
	}
	if black {
		return nil, ErrInvalidToken
	}
	return &helperAuth.Session{
		UserID:    uid,
		Email:     claims.Email,
		Token:     raw,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *AuthService) tokenDigest(raw string) string {
	return helperAuth.TokenDigest(raw, s.Secret)
}

// Blacklist stores the token digest until expiresAt. Repeated calls are no-ops.
func (s *AuthService) Blacklist(ctx context.Context, raw string, expiresAt time.Time) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if s.Secret == "" {
		return ErrNoSecret
	}
	row := authModel.TokenBlacklist{Token: s.tokenDigest(raw), ExpiredAt: expiresAt}
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

func (s *AuthService) IsBlacklisted(ctx context.Context, raw string) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&authModel.TokenBlacklist{}).
		Where("token = ? AND expired_at > ?", s.tokenDigest(raw), s.now()).
		Count(&n).Error
	return n > 0, err
}

// PurgeBlacklist hard-deletes digests that expired before cutoff.
func PurgeBlacklist(ctx context.Context, db *gorm.DB, cutoff time.Time, batch int) (int64, error) {
	var ids []uint
	if err := db.WithContext(ctx).
		Model(&authModel.TokenBlacklist{}).
		Unscoped().
		Where("expired_at < ?", cutoff).
		Limit(batch).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).Unscoped().Delete(&authModel.TokenBlacklist{}, ids)
	return res.RowsAffected, res.Error
}
