package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"ukitchen/internal/caching"
	"ukitchen/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService handles JWT access tokens and redis-backed refresh tokens
type AuthService interface {
	GenerateTokens(ctx context.Context, user *models.User, role string) (*models.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (uuid.UUID, error)
	RevokeToken(ctx context.Context, refreshToken string) error
}

type authService struct {
	cacheSvc   caching.CacheService
	jwtSecret  []byte
	tokenTTL   int // access token TTL in seconds
	refreshTTL int // refresh token TTL in seconds
}

// TokenClaims represents the JWT claims issued at login. Role is the
// effective role (admin, client or employee), not the raw account role.
type TokenClaims struct {
	Role       string  `json:"role"`
	ClientID   *string `json:"client_id,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new authentication service
func NewAuthService(cacheSvc caching.CacheService, jwtSecret string, tokenTTLSeconds, refreshTTLSeconds int) AuthService {
	return &authService{
		cacheSvc:   cacheSvc,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTLSeconds,
		refreshTTL: refreshTTLSeconds,
	}
}

func (s *authService) GenerateTokens(ctx context.Context, user *models.User, role string) (*models.TokenResponse, error) {
	now := time.Now()
	tokenID := uuid.NewString()

	claims := TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ukitchen-auth",
			Subject:   user.ID.String(),
			Audience:  jwt.ClaimStrings{"ukitchen-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.tokenTTL) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        tokenID,
		},
	}
	if user.ClientID != nil {
		id := user.ClientID.String()
		claims.ClientID = &id
	}
	if user.EmployeeID != nil {
		id := user.EmployeeID.String()
		claims.EmployeeID = &id
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessTokenString, err := accessToken.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign JWT: %w", err)
	}

	refreshToken := s.generateSecureToken()
	refreshTokenHash := s.hashToken(refreshToken)

	refreshData := fmt.Sprintf("%s:%d", user.ID.String(), now.Unix()+int64(s.refreshTTL))
	cacheKey := fmt.Sprintf("ukitchen:refresh_token:%s", refreshTokenHash)
	if err := s.cacheSvc.SetString(ctx, cacheKey, refreshData, time.Duration(s.refreshTTL)*time.Second); err != nil {
		log.Printf("Failed to store refresh token: %v", err)
		// Continue - access token generation succeeded
	}

	return &models.TokenResponse{
		AccessToken:  accessTokenString,
		TokenType:    "Bearer",
		ExpiresIn:    s.tokenTTL,
		RefreshToken: refreshToken,
		UserID:       user.ID.String(),
		Role:         role,
		IssuedAt:     now,
	}, nil
}

// RefreshToken validates a refresh token and returns the user it belongs
// to. The token is single-use: it is deleted on successful validation.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (uuid.UUID, error) {
	refreshTokenHash := s.hashToken(refreshToken)
	cacheKey := fmt.Sprintf("ukitchen:refresh_token:%s", refreshTokenHash)

	tokenData, err := s.cacheSvc.GetString(ctx, cacheKey)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid refresh token")
	}

	parts := strings.SplitN(tokenData, ":", 2)
	if len(parts) != 2 {
		return uuid.Nil, fmt.Errorf("malformed refresh token record")
	}

	userID, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed refresh token record")
	}

	expiry, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || time.Now().Unix() > expiry {
		return uuid.Nil, fmt.Errorf("refresh token expired")
	}

	if err := s.cacheSvc.Delete(ctx, cacheKey); err != nil {
		log.Printf("Failed to delete used refresh token: %v", err)
	}
	return userID, nil
}

func (s *authService) RevokeToken(ctx context.Context, refreshToken string) error {
	refreshTokenHash := s.hashToken(refreshToken)
	cacheKey := fmt.Sprintf("ukitchen:refresh_token:%s", refreshTokenHash)
	return s.cacheSvc.Delete(ctx, cacheKey)
}

func (s *authService) generateSecureToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is unrecoverable for token issuance
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func (s *authService) hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
