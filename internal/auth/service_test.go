package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/citycab/taxi-dispatch/internal/auth"
	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/pkg/config"
	"github.com/citycab/taxi-dispatch/pkg/middleware"
	"github.com/citycab/taxi-dispatch/test/mocks"
)

var testJWT = config.JWTConfig{Secret: "test-secret", Expiration: 24}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	userID := uuid.New()
	user := &auth.User{
		ID:           userID,
		Username:     "nimal",
		PasswordHash: hashFor(t, "correct-horse"),
		Role:         auth.RoleCustomer,
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		repo := new(mocks.MockAuthRepository)
		repo.On("GetUserByUsername", mock.Anything, "nimal").Return(user, nil)
		svc := auth.NewService(repo, testJWT)

		session, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "nimal", Password: "correct-horse"})

		require.NoError(t, err)
		assert.Equal(t, userID, session.ID)
		assert.Equal(t, auth.RoleCustomer, session.Role)
		assert.NotEmpty(t, session.Token)

		claims := &middleware.Claims{}
		_, err = jwt.ParseWithClaims(session.Token, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(testJWT.Secret), nil
		})
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, auth.RoleCustomer, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mocks.MockAuthRepository)
		repo.On("GetUserByUsername", mock.Anything, "nimal").Return(user, nil)
		svc := auth.NewService(repo, testJWT)

		_, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "nimal", Password: "wrong"})

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
	})

	t.Run("unknown username yields the same message as a wrong password", func(t *testing.T) {
		repo := new(mocks.MockAuthRepository)
		repo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, auth.ErrUserNotFound)
		svc := auth.NewService(repo, testJWT)

		_, errUnknown := svc.Login(context.Background(), &auth.LoginRequest{Username: "ghost", Password: "whatever"})

		repo2 := new(mocks.MockAuthRepository)
		repo2.On("GetUserByUsername", mock.Anything, "nimal").Return(user, nil)
		svc2 := auth.NewService(repo2, testJWT)

		_, errWrong := svc2.Login(context.Background(), &auth.LoginRequest{Username: "nimal", Password: "wrong"})

		require.Error(t, errUnknown)
		require.Error(t, errWrong)
		assert.Equal(t, errWrong.Error(), errUnknown.Error())
	})
}

func TestRegister(t *testing.T) {
	t.Run("new accounts are customers", func(t *testing.T) {
		repo := new(mocks.MockAuthRepository)
		repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*auth.User")).Return(nil)
		svc := auth.NewService(repo, testJWT)

		session, err := svc.Register(context.Background(), &auth.RegisterRequest{
			Username: "nimal",
			Password: "correct-horse",
			Address:  "12 Galle Road",
			Phone:    "0771234567",
			NIC:      "901234567V",
		})

		require.NoError(t, err)
		assert.Equal(t, auth.RoleCustomer, session.Role)
		assert.NotEmpty(t, session.Token)

		created := repo.Calls[0].Arguments.Get(1).(*auth.User)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.NotEqual(t, "correct-horse", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse")))
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		repo := new(mocks.MockAuthRepository)
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(auth.ErrUsernameUsed)
		svc := auth.NewService(repo, testJWT)

		_, err := svc.Register(context.Background(), &auth.RegisterRequest{
			Username: "nimal",
			Password: "correct-horse",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
	})
}
