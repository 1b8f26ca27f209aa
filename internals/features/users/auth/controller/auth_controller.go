package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "altroway_backend/internals/features/users/auth/dto"
	authService "altroway_backend/internals/features/users/auth/service"
	profileService "altroway_backend/internals/features/users/profiles/service"
	helper "altroway_backend/internals/helpers"
	helperAuth "altroway_backend/internals/helpers/auth"
)

type AuthController struct {
	Auth     *authService.AuthService
	Profiles *profileService.ProfileService
	// SecureCookies is false only for plain-http local runs.
	SecureCookies bool
}

func NewAuthController(auth *authService.AuthService, profiles *profileService.ProfileService, secureCookies bool) *AuthController {
	return &AuthController{Auth: auth, Profiles: profiles, SecureCookies: secureCookies}
}

// POST /api/auth/signup
func (ctrl *AuthController) SignUp(c *fiber.Ctx) error {
	var req authDTO.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return helper.JsonFail(c, helper.Invalid("Email and password are required"))
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}

	res, err := ctrl.Auth.SignUp(c.UserContext(), req.Email, req.Password, req.ProfileFields)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonCreated(c, "User created successfully", res)
}

// POST /api/auth/signin
func (ctrl *AuthController) SignIn(c *fiber.Ctx) error {
	var req authDTO.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return helper.JsonFail(c, helper.Invalid("Email and password are required"))
	}

	res, err := ctrl.Auth.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	ctrl.setAccessCookie(c, res.Session.AccessToken, res.Session.ExpiresAt)
	return helper.JsonOK(c, "Signed in successfully", res)
}

// POST /api/auth/signout
func (ctrl *AuthController) SignOut(c *fiber.Ctx) error {
	if err := ctrl.Auth.SignOut(c.UserContext(), helperAuth.RawAccessToken(c)); err != nil {
		return helper.JsonFail(c, err)
	}
	ctrl.setAccessCookie(c, "", time.Now().Add(-time.Hour))
	return helper.JsonOK(c, "Signed out successfully", nil)
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	sess := helperAuth.SessionFrom(c)
	if sess == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	profile, err := ctrl.Profiles.GetProfile(c.UserContext(), sess.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", fiber.Map{
		"user": fiber.Map{
			"id":    sess.UserID,
			"email": sess.Email,
		},
		"expires_at": sess.ExpiresAt,
		"profile":    profile,
	})
}

// POST /api/auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	sess := helperAuth.SessionFrom(c)
	if sess == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if err := ctrl.Auth.ChangePassword(c.UserContext(), sess.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Password updated successfully", nil)
}

func (ctrl *AuthController) setAccessCookie(c *fiber.Ctx, value string, expires time.Time) {
	sameSite := fiber.CookieSameSiteLaxMode
	if ctrl.SecureCookies {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	cookie := &fiber.Cookie{
		Name:     "access_token",
		Value:    value,
		HTTPOnly: true,
		Secure:   ctrl.SecureCookies,
		SameSite: sameSite,
		Path:     "/",
		Expires:  expires,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	c.Cookie(cookie)
}
