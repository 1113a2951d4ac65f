package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumebuilder_backend/internal/auth"
	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/pkg/email"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

const (
	minPasswordLength       = 8
	verificationTokenTTL    = 24 * time.Hour
	verificationSendTimeout = 30 * time.Second
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, emailAddr string) error
	GetProfile(ctx context.Context, user *models.User) *dto.AuthResponse
	UpdateProfile(ctx context.Context, user *models.User, req *dto.UpdateProfileRequest) (*dto.AuthResponse, error)
	UploadProfileImage(ctx context.Context, user *models.User, file *dto.UploadFile) (string, error)
}

type AuthServiceImpl struct {
	users    repositories.UserRepository
	tokens   *auth.TokenManager
	mailer   email.Sender
	uploader ImageUploader
	baseURL  string
}

func NewAuthService(
	users repositories.UserRepository,
	tokens *auth.TokenManager,
	mailer email.Sender,
	uploader ImageUploader,
	baseURL string,
) AuthService {
	return &AuthServiceImpl{
		users:    users,
		tokens:   tokens,
		mailer:   mailer,
		uploader: uploader,
		baseURL:  baseURL,
	}
}

// Register creates an unverified account and kicks off the verification
// email. The email send is best effort and never rolls back registration.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	expires := time.Now().Add(verificationTokenTTL)
	user := &models.User{
		Name:                req.Name,
		Email:               req.Email,
		PasswordHash:        hash,
		SubscriptionPlan:    models.PlanBasic,
		EmailVerified:       false,
		VerificationToken:   uuid.NewString(),
		VerificationExpires: &expires,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user)

	return dto.NewAuthResponse(user, ""), nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewAuthResponse(user, token), nil
}

// VerifyEmail consumes a verification token. Expired and unknown tokens are
// reported the same way; the token is cleared on success so it cannot be
// replayed.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrInvalidToken
	}

	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if user.VerificationExpires == nil || time.Now().After(*user.VerificationExpires) {
		return apperrors.ErrInvalidToken
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "email verified", "user_id", user.ID)
	return nil
}

// ResendVerification rotates the token and expiry before resending.
func (s *AuthServiceImpl) ResendVerification(ctx context.Context, emailAddr string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "auth", "User not found")
		}
		return apperrors.InternalError(err)
	}

	if user.EmailVerified {
		return apperrors.ErrAlreadyVerified
	}

	expires := time.Now().Add(verificationTokenTTL)
	user.VerificationToken = uuid.NewString()
	user.VerificationExpires = &expires
	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user)
	return nil
}

func (s *AuthServiceImpl) GetProfile(ctx context.Context, user *models.User) *dto.AuthResponse {
	return dto.NewAuthResponse(user, "")
}

func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, user *models.User, req *dto.UpdateProfileRequest) (*dto.AuthResponse, error) {
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.ProfileImageURL != "" {
		user.ProfileImageURL = req.ProfileImageURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewAuthResponse(user, ""), nil
}

// UploadProfileImage stores the image and persists its URL on the profile.
func (s *AuthServiceImpl) UploadProfileImage(ctx context.Context, user *models.User, file *dto.UploadFile) (string, error) {
	url, err := s.uploader.UploadImage(ctx, file)
	if err != nil {
		return "", err
	}

	user.ProfileImageURL = url
	if err := s.users.Update(ctx, user); err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(user *models.User) {
	link := fmt.Sprintf("%s/api/auth/verify-email?token=%s", s.baseURL, user.VerificationToken)
	msg := email.BuildVerificationEmail(user.Name, link)
	msg.To = user.Email

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), verificationSendTimeout)
		defer cancel()

		if err := s.mailer.Send(ctx, msg); err != nil {
			logger.Warn("verification email send failed",
				"user_id", user.ID, "error", err)
		}
	}()
}
