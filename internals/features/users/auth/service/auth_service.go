// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "altroway_backend/internals/features/users/auth/model"
	profileDTO "altroway_backend/internals/features/users/profiles/dto"
	profileModel "altroway_backend/internals/features/users/profiles/model"
	helper "altroway_backend/internals/helpers"
)

// Messages mirror the hosted auth provider the clients were written against.
var (
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrUserExists         = errors.New("User already registered")
	ErrWeakPassword       = errors.New("Password should be at least 6 characters")
	ErrInvalidEmail       = errors.New("Unable to validate email address: invalid format")
	ErrUserDisabled       = errors.New("User is disabled")
)

const minPasswordLen = 6

type AuthService struct {
	DB     *gorm.DB
	Secret string
	TTL    time.Duration
	Now    func() time.Time
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{DB: db, Secret: secret, TTL: ttl, Now: time.Now}
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

type SessionToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	ExpiresIn   int64     `json:"expires_in"`
}

type SignUpResult struct {
	User    *authModel.AuthUserModel       `json:"user"`
	Profile *profileModel.UserProfileModel `json:"profile"`
}

type SignInResult struct {
	User    *authModel.AuthUserModel       `json:"user"`
	Session SessionToken                   `json:"session"`
	Profile *profileModel.UserProfileModel `json:"profile,omitempty"`
}

func hashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", helper.Internal(err)
	}
	return string(b), nil
}

// CreateIdentity inserts a credential identity on db (which may be a transaction).
// Confirmed identities get email_confirmed_at stamped.
func (s *AuthService) CreateIdentity(ctx context.Context, db *gorm.DB, email, password string, confirmed bool) (*authModel.AuthUserModel, error) {
	email = authModel.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, helper.Invalid("Email and password are required")
	}
	if err := helper.Validator().Var(email, "required,email,max=255"); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	var n int64
	if err := db.WithContext(ctx).Model(&authModel.AuthUserModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrUserExists
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &authModel.AuthUserModel{Email: email, PasswordHash: hash, IsActive: true}
	if confirmed {
		now := s.now()
		user.EmailConfirmedAt = &now
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SignUp creates the identity and its profile together; neither exists
// when either insert fails.
func (s *AuthService) SignUp(ctx context.Context, email, password string, fields profileDTO.ProfileFields) (*SignUpResult, error) {
	var out SignUpResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.CreateIdentity(ctx, tx, email, password, true)
		if err != nil {
			return err
		}
		profile := &profileModel.UserProfileModel{ID: user.ID, Email: user.Email}
		fields.ApplyTo(profile)
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		out.User, out.Profile = user, profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	email = authModel.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, helper.Invalid("Email and password are required")
	}

	var user authModel.AuthUserModel
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserDisabled
	}

	token, exp, err := s.IssueAccessToken(&user)
	if err != nil {
		return nil, helper.Internal(err)
	}

	now := s.now()
	if err := s.DB.WithContext(ctx).Model(&user).Update("last_sign_in_at", now).Error; err != nil {
		return nil, err
	}
	user.LastSignInAt = &now

	res := &SignInResult{
		User: &user,
		Session: SessionToken{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresAt:   exp,
			ExpiresIn:   int64(exp.Sub(now).Seconds()),
		},
	}
	var profile profileModel.UserProfileModel
	if err := s.DB.WithContext(ctx).First(&profile, "id = ?", user.ID).Error; err == nil {
		res.Profile = &profile
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return res, nil
}

// SignOut blacklists the token until it would have expired. Signing out
// without a token, or with an already invalid one, succeeds.
func (s *AuthService) SignOut(ctx context.Context, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	claims, err := s.parse(raw)
	if err != nil {
		if errors.Is(err, ErrNoSecret) {
			return helper.Internal(err)
		}
		return nil
	}
	return s.Blacklist(ctx, raw, claims.ExpiresAt.Time)
}
