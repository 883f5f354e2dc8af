// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gymhum/internal/models"
	"gymhum/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenDuration  = time.Hour
	refreshTokenDuration = 30 * 24 * time.Hour
)

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Bio      string `json:"bio"`
		Avatar   string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" || req.Password == "" || req.Bio == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username, email, password, and bio are required"))
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	// Check if user already exists
	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if existing == nil {
		existing, err = s.userRepo.GetByUsername(c.Context(), req.Username)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Bio:          req.Bio,
		LastActive:   time.Now(),
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return respondServiceError(c, createErr)
	}

	accessToken, refreshToken, err := s.issueTokens(c, user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Clients identify by username; email is accepted as an alternative.
	var user *models.User
	var err error
	if req.Username != "" {
		user, err = s.userRepo.GetByUsername(c.Context(), req.Username)
	} else {
		user, err = s.userRepo.GetByEmail(c.Context(), req.Email)
	}
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	if touchErr := s.userRepo.TouchLastActive(c.Context(), user.ID); touchErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, touchErr)
	}

	accessToken, refreshToken, err := s.issueTokens(c, user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user,
	})
}

// Refresh handles POST /api/auth/refresh. It exchanges a valid refresh token
// for a new access token and a rotated refresh token.
func (s *Server) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Refresh token is required"))
	}

	stored, err := s.tokenRepo.GetByHash(c.Context(), hashToken(req.RefreshToken))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid refresh token"))
	}
	if !stored.Valid(time.Now()) {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Refresh token expired or revoked"))
	}

	user, err := s.userRepo.GetByID(c.Context(), stored.UserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid refresh token"))
	}

	// Rotate: revoke the presented token, hand out a fresh pair.
	if revokeErr := s.tokenRepo.Revoke(c.Context(), stored.ID); revokeErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, revokeErr)
	}

	accessToken, refreshToken, err := s.issueTokens(c, user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Logout handles POST /api/auth/logout. It revokes the presented refresh
// token and blacklists the current access token's JTI until it expires.
func (s *Server) Logout(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err == nil && req.RefreshToken != "" {
		if stored, getErr := s.tokenRepo.GetByHash(c.Context(), hashToken(req.RefreshToken)); getErr == nil {
			if revokeErr := s.tokenRepo.Revoke(c.Context(), stored.ID); revokeErr != nil {
				return models.RespondWithError(c, fiber.StatusInternalServerError, revokeErr)
			}
		}
	}

	s.blacklistAccessToken(c)

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// blacklistAccessToken marks the request's bearer token JTI as revoked in
// Redis for the remainder of its lifetime. Best effort: a missing or invalid
// token is ignored.
func (s *Server) blacklistAccessToken(c *fiber.Ctx) {
	if s.redis == nil {
		return
	}

	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return
	}
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return
	}

	ttl := accessTokenDuration
	if exp, expOk := claims["exp"].(float64); expOk {
		if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
			ttl = until
		}
	}

	s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl)
}

// issueTokens creates an access/refresh token pair for the user and persists
// the refresh token hash.
func (s *Server) issueTokens(c *fiber.Ctx, user *models.User) (string, string, error) {
	accessToken, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return "", "", err
	}

	refreshToken := uuid.New().String()
	record := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(refreshTokenDuration),
	}
	if err := s.tokenRepo.Create(c.Context(), record); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// generateToken creates a JWT access token for the given user ID and username
func (s *Server) generateToken(userID uint, username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"exp":      now.Add(accessTokenDuration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// hashToken returns the hex SHA-256 digest of an opaque refresh token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
