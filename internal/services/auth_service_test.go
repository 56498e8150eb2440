package services

import (
	"context"
	"testing"

	"eventora_backend/internal/models"
	"eventora_backend/internal/repositories"
	"eventora_backend/internal/services/dto"
	"eventora_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) AuthService {
	return NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
	)
}

func TestRegister_CreatesUserWithUserRole(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "supersecret1",
		Name:     "New User",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user", resp.User.Role)

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "new@example.com").Error)
	assert.Equal(t, models.UserRoleUser, stored.Role)
	assert.NotEqual(t, "supersecret1", stored.PasswordHash)
}

func TestRegister_DuplicateEmailRefused(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(db)

	req := &dto.RegisterRequest{Email: "dup@example.com", Password: "supersecret1", Name: "Dup"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin_WrongPasswordRefused(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "who@example.com", Password: "supersecret1", Name: "Who",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "who@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "who@example.com", Password: "supersecret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefresh_RotatesToken(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(db)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "rot@example.com", Password: "supersecret1", Name: "Rot",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The old token was consumed by the rotation.
	_, err = svc.Refresh(context.Background(), registered.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestLogout_InvalidatesRefreshToken(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(db)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "bye@example.com", Password: "supersecret1", Name: "Bye",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), registered.RefreshToken))

	_, err = svc.Refresh(context.Background(), registered.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// Logging out twice is harmless.
	assert.NoError(t, svc.Logout(context.Background(), registered.RefreshToken))
}
