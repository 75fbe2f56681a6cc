package services

import (
	"testing"

	"tablebook_backend/internal/models"
	"tablebook_backend/internal/repositories"
	"tablebook_backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authRepoStub struct {
	createUserFn         func(user *models.User, hashedPassword string) (int64, error)
	findUserByUsernameFn func(username string) (*models.User, string, error)
	findUserByIDFn       func(userID int64) (*models.User, error)
}

func (s *authRepoStub) CreateUser(_ repositories.SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	return s.createUserFn(user, hashedPassword)
}
func (s *authRepoStub) FindUserByUsername(username string) (*models.User, string, error) {
	return s.findUserByUsernameFn(username)
}
func (s *authRepoStub) FindUserByID(userID int64) (*models.User, error) {
	return s.findUserByIDFn(userID)
}

func TestRegisterUserStoresHashedPassword(t *testing.T) {
	var storedHash string
	authRepo := &authRepoStub{
		createUserFn: func(user *models.User, hashedPassword string) (int64, error) {
			storedHash = hashedPassword
			return 1, nil
		},
	}
	svc := NewAuthService(authRepo, nil)

	user, err := svc.RegisterUser(RegisterUserRequest{Username: "maitre", Password: "correct horse battery"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NotEqual(t, "correct horse battery", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("correct horse battery")))
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	authRepo := &authRepoStub{
		createUserFn: func(user *models.User, hashedPassword string) (int64, error) {
			return 0, repositories.ErrDuplicateKey
		},
	}
	svc := NewAuthService(authRepo, nil)

	_, err := svc.RegisterUser(RegisterUserRequest{Username: "maitre", Password: "correct horse battery"})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestLoginUserWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right password"), bcrypt.MinCost)
	require.NoError(t, err)

	authRepo := &authRepoStub{
		findUserByUsernameFn: func(username string) (*models.User, string, error) {
			return &models.User{ID: 1, Username: username}, string(hash), nil
		},
	}
	svc := NewAuthService(authRepo, nil)

	_, err = svc.LoginUser(LoginRequest{Username: "maitre", Password: "wrong password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserUnknownUsername(t *testing.T) {
	authRepo := &authRepoStub{
		findUserByUsernameFn: func(username string) (*models.User, string, error) {
			return nil, "", repositories.ErrNotFound
		},
	}
	svc := NewAuthService(authRepo, nil)

	_, err := svc.LoginUser(LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserIssuesValidToken(t *testing.T) {
	utils.InitJWT("test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("right password"), bcrypt.MinCost)
	require.NoError(t, err)

	authRepo := &authRepoStub{
		findUserByUsernameFn: func(username string) (*models.User, string, error) {
			return &models.User{ID: 42, Username: username}, string(hash), nil
		},
	}
	svc := NewAuthService(authRepo, nil)

	resp, err := svc.LoginUser(LoginRequest{Username: "maitre", Password: "right password"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := utils.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "maitre", claims.Username)
}
