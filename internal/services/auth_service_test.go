package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resumebuilder_backend/internal/auth"
	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

func newAuthServiceForTest() (AuthService, *fakeUserRepo, *fakeMailer) {
	users := newFakeUserRepo()
	mailer := &fakeMailer{}
	tokens := auth.NewTokenManager("test-secret", 60)
	svc := NewAuthService(users, tokens, mailer, &fakeUploader{}, "http://localhost:8080")
	return svc, users, mailer
}

func TestRegisterCreatesUnverifiedUser(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.Empty(t, resp.Token)
	assert.False(t, resp.EmailVerified)
	assert.Equal(t, string(models.PlanBasic), resp.SubscriptionPlan)

	stored, err := users.FindByEmail(context.Background(), "alice@example.com")
	assert.NoError(t, err)
	assert.False(t, stored.EmailVerified)
	assert.NotEmpty(t, stored.VerificationToken)
	assert.NotNil(t, stored.VerificationExpires)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	req := &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"}
	_, err := svc.Register(context.Background(), req)
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestLoginWrongCredentials(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	// Unknown email and wrong password report the same error.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@example.com", Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@example.com", Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

// Full journey: register, login blocked until verified, verify, login again.
func TestRegisterVerifyLoginFlow(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{
		Email: "alice@example.com", Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotVerified)

	stored, _ := users.FindByEmail(ctx, "alice@example.com")
	assert.NoError(t, svc.VerifyEmail(ctx, stored.VerificationToken))

	resp, err := svc.Login(ctx, &dto.LoginRequest{
		Email: "alice@example.com", Password: "password123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.EmailVerified)
}

func TestVerifyEmailTokenSingleUse(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	stored, _ := users.FindByEmail(ctx, "alice@example.com")
	token := stored.VerificationToken

	assert.NoError(t, svc.VerifyEmail(ctx, token))

	// Token was cleared on use; replaying it fails.
	assert.ErrorIs(t, svc.VerifyEmail(ctx, token), apperrors.ErrInvalidToken)
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()
	ctx := context.Background()

	expired := time.Now().Add(-time.Hour)
	assert.NoError(t, users.Create(ctx, &models.User{
		Name:                "Stale",
		Email:               "stale@example.com",
		PasswordHash:        "x",
		VerificationToken:   "stale-token",
		VerificationExpires: &expired,
	}))

	assert.ErrorIs(t, svc.VerifyEmail(ctx, "stale-token"), apperrors.ErrInvalidToken)
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()
	assert.ErrorIs(t, svc.VerifyEmail(context.Background(), "nope"), apperrors.ErrInvalidToken)
	assert.ErrorIs(t, svc.VerifyEmail(context.Background(), ""), apperrors.ErrInvalidToken)
}

func TestResendVerificationRotatesToken(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	before, _ := users.FindByEmail(ctx, "alice@example.com")
	assert.NoError(t, svc.ResendVerification(ctx, "alice@example.com"))
	after, _ := users.FindByEmail(ctx, "alice@example.com")

	assert.NotEqual(t, before.VerificationToken, after.VerificationToken)
}

func TestResendVerificationAlreadyVerified(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	stored, _ := users.FindByEmail(ctx, "alice@example.com")
	assert.NoError(t, svc.VerifyEmail(ctx, stored.VerificationToken))

	assert.ErrorIs(t, svc.ResendVerification(ctx, "alice@example.com"), apperrors.ErrAlreadyVerified)
}

func TestRegisterSucceedsWhenEmailSendFails(t *testing.T) {
	users := newFakeUserRepo()
	mailer := &fakeMailer{err: assert.AnError}
	tokens := auth.NewTokenManager("test-secret", 60)
	svc := NewAuthService(users, tokens, mailer, &fakeUploader{}, "http://localhost:8080")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	_, err = users.FindByEmail(context.Background(), "alice@example.com")
	assert.NoError(t, err)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	assert.NoError(t, err)
	user, _ := users.FindByEmail(ctx, "alice@example.com")

	resp, err := svc.UpdateProfile(ctx, user, &dto.UpdateProfileRequest{Name: "Alice B"})
	assert.NoError(t, err)
	assert.Equal(t, "Alice B", resp.Name)
	assert.Equal(t, "alice@example.com", resp.Email)
}
