package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/okarpov/tasktracker/internal/models"
	"github.com/okarpov/tasktracker/internal/repository"
)

const phoneNoLength = 10

type authServiceImpl struct {
	logger zerolog.Logger
	users  repository.UserRepository
	tokens *TokenManager
}

func NewAuthService(
	logger zerolog.Logger,
	users repository.UserRepository,
	tokens *TokenManager,
) AuthService {
	return &authServiceImpl{
		logger: logger,
		users:  users,
		tokens: tokens,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	params.Username = strings.TrimSpace(params.Username)
	params.Email = strings.TrimSpace(params.Email)
	params.PhoneNo = strings.TrimSpace(params.PhoneNo)

	if params.Username == "" || params.Email == "" ||
		params.PhoneNo == "" || params.Password == "" {
		return nil, ErrMissingFields
	}
	if !isValidPhoneNo(params.PhoneNo) {
		return nil, ErrInvalidPhone
	}

	now := time.Now()
	user := &models.User{
		Username:  params.Username,
		Email:     params.Email,
		PhoneNo:   params.PhoneNo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	userUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate user uuid")
		return nil, err
	}
	user.ID = userUUID.String()

	passwordHash, err := argon2id.CreateHash(params.Password, argon2id.DefaultParams)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}
	user.Password = passwordHash

	err = s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Msg("registered user")
	return &AuthResult{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Deliberately the same error as a password mismatch.
			s.logger.Warn().
				Str("email", email).
				Msg("login for unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := argon2id.ComparePasswordAndHash(password, user.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	}
	if !match {
		s.logger.Warn().
			Str("user_id", user.ID).
			Msg("password mismatch")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Msg("logged in")
	return &AuthResult{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *authServiceImpl) UserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// The hash never leaves the service layer.
	user.Password = ""
	return user, nil
}

func (s *authServiceImpl) ParseToken(token string) (string, error) {
	return s.tokens.Parse(token)
}

func isValidPhoneNo(phone string) bool {
	if len(phone) != phoneNoLength {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
