package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shoplite/shoplite-backend/internal/config"
	appErrors "github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	repository "github.com/shoplite/shoplite-backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

type AdminService interface {
	Login(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminLoginResponse, error)
}

type adminService struct {
	rateLimiter repository.RateLimitRepository
	cfg         *config.AdminConfig
}

func NewAdminService(rateLimiter repository.RateLimitRepository, cfg *config.AdminConfig) AdminService {
	return &adminService{rateLimiter: rateLimiter, cfg: cfg}
}

// Login verifies the single configured console credential and issues a JWT.
// Attempts are rate limited per username through Redis.
func (s *adminService) Login(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminLoginResponse, error) {

	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Username)
	if err != nil {
		return nil, appErrors.InternalError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.AdminLoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	if req.Username != s.cfg.Username ||
		bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password)) != nil {
		return &models.AdminLoginResponse{
			Success:        false,
			Message:        "Invalid username or password",
			RemainingTries: remaining,
		}, nil
	}

	claims := &models.AdminClaims{
		Username: req.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.JWTKey))
	if err != nil {
		return nil, appErrors.InternalError("Failed to sign token").WithError(err)
	}

	return &models.AdminLoginResponse{Success: true, Token: signed}, nil
}
