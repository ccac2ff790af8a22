package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/lumina-lms/lumina-api/internal/auth"
	"github.com/lumina-lms/lumina-api/internal/dto"
	"github.com/lumina-lms/lumina-api/internal/models"
	"github.com/lumina-lms/lumina-api/internal/repository"
	"github.com/lumina-lms/lumina-api/internal/token"
)

// ErrEmailTaken indicates the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials indicates an unknown email or a failed password check.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService registers and authenticates users and manages their profiles.
type AuthService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error)
	Refresh(ctx context.Context, userID uint) (dto.TokenResponse, error)
	GetProfile(ctx context.Context, userID uint) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uint, payload dto.UpdateProfileRequest) (dto.UserResponse, error)
}

type authService struct {
	users     repository.UserRepository
	tokens    *token.Codec
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users repository.UserRepository, tokens *token.Codec, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		tokens:    tokens,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Register(ctx context.Context, payload dto.RegisterRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthResponse{}, err
	}

	role := models.Role(payload.Role)
	if payload.Role == "" {
		role = models.RoleStudent
	}

	digest, err := auth.HashPassword(payload.Password)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user := models.User{
		Name:         payload.Name,
		Email:        payload.Email,
		PasswordHash: digest,
		Role:         role,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.AuthResponse{}, ErrEmailTaken
		}
		return dto.AuthResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")

	return s.authResponse(user)
}

func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthResponse{}, err
	}

	user, err := s.users.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthResponse{}, ErrInvalidCredentials
		}
		return dto.AuthResponse{}, err
	}

	if !auth.VerifyPassword(payload.Password, user.PasswordHash) {
		return dto.AuthResponse{}, ErrInvalidCredentials
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user logged in")

	return s.authResponse(user)
}

// Refresh issues a new access token for an identity already proven by token
// validation. Credentials are not re-verified.
func (s *authService) Refresh(ctx context.Context, userID uint) (dto.TokenResponse, error) {
	user, err := resolveRequester(ctx, s.users, userID)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	accessToken, err := s.tokens.Issue(user.ID, token.Access)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	return dto.TokenResponse{AccessToken: accessToken}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uint) (dto.UserResponse, error) {
	user, err := resolveRequester(ctx, s.users, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}

	return dto.NewUserResponse(user), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uint, payload dto.UpdateProfileRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	user, err := resolveRequester(ctx, s.users, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}

	if payload.Name != nil {
		user.Name = *payload.Name
	}

	if payload.Bio != nil {
		user.Bio = s.sanitizer.Sanitize(*payload.Bio)
	}

	if err := s.users.Update(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	return dto.NewUserResponse(user), nil
}

func (s *authService) authResponse(user models.User) (dto.AuthResponse, error) {
	accessToken, err := s.tokens.Issue(user.ID, token.Access)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	refreshToken, err := s.tokens.Issue(user.ID, token.Refresh)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	return dto.AuthResponse{
		User:         dto.NewUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
