package service

import (
	"errors"
	"fmt"

	"keepnotes-be/internal/jwt"
	"keepnotes-be/internal/models"
	"keepnotes-be/internal/password"
	"keepnotes-be/internal/repository"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
// Callers must never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.SignupRequest) (*models.SignupResponse, error)
	Login(req *models.LoginRequest) (*models.TokenResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account. The unique constraint on email is the
// real guard against duplicates; the lookup here just short-circuits the
// common case before paying for a bcrypt hash.
func (s *authService) Register(req *models.SignupRequest) (*models.SignupResponse, error) {
	existing, err := s.userRepo.FindByEmail(req.UserEmail)
	if err == nil && existing != nil {
		return nil, repository.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.Create(req.UserName, req.UserEmail, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.SignupResponse{Message: "User registered successfully"}, nil
}

// Login authenticates a user and returns a bearer token with the user's
// display name. A failed login is always ErrInvalidCredentials, whether the
// email was unknown or the password wrong.
func (s *authService) Login(req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	ok, err := password.Verify(req.Password, user.PasswordHash)
	if err != nil {
		// A stored hash we cannot parse is an internal failure, not a
		// wrong password
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserName:    user.Name,
	}, nil
}
