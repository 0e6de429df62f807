package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/pkg/config"
	"github.com/citycab/taxi-dispatch/pkg/logger"
	"github.com/citycab/taxi-dispatch/pkg/middleware"
)

// Service handles authentication business logic
type Service struct {
	repo RepositoryInterface
	jwt  config.JWTConfig
}

// NewService creates a new auth service
func NewService(repo RepositoryInterface, jwtCfg config.JWTConfig) *Service {
	return &Service{repo: repo, jwt: jwtCfg}
}

// Login verifies credentials and issues a session token
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*SessionResponse, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, common.NewUnauthorizedError("invalid username or password")
		}
		return nil, common.NewInternalServerError("failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, common.NewUnauthorizedError("invalid username or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, common.NewInternalServerError("failed to issue token")
	}

	logger.WithContext(ctx).Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return &SessionResponse{Token: token, ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// Register creates a customer account and logs it in
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*SessionResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewInternalServerError("failed to hash password")
	}

	user := &User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Address:      req.Address,
		Phone:        req.Phone,
		NIC:          req.NIC,
		Role:         RoleCustomer,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrUsernameUsed) {
			return nil, common.NewConflictError("username already taken", err)
		}
		return nil, common.NewInternalServerError("failed to register user")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, common.NewInternalServerError("failed to issue token")
	}

	logger.WithContext(ctx).Info("User registered", zap.String("user_id", user.ID.String()))

	return &SessionResponse{Token: token, ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

func (s *Service) issueToken(user *User) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.jwt.Expiration) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwt.Secret))
}
