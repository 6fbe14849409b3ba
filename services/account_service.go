package services

import (
	"fmt"
	"log/slog"

	"chat-vault/auth"
	"chat-vault/repositories"
)

type IAccountService interface {
	CreateUser(username, password, color string) error
	VerifyPassword(username, password string) bool
	UpdateProfile(username, color string) error
	SetDisplayName(username, displayName string) error
	SetOnlineStatus(username string, online bool) error
}

type AccountService struct {
	users repositories.IUserRepository
	log   *slog.Logger
}

func NewAccountService(users repositories.IUserRepository, log *slog.Logger) *AccountService {
	return &AccountService{users: users, log: log}
}

// CreateUser registers a new account.
func (s *AccountService) CreateUser(username, password, color string) error {
	// 1. Validate business rules before any expensive cryptographic work.
	req := auth.SignUpRequest{Username: username, Password: password}
	if err := auth.ValidateSignUp(req); err != nil {
		return err
	}

	// 2. Hash the password here so the repository never sees it in clear.
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist. Propagates ErrUserAlreadyExists if the name is taken.
	return s.users.Insert(username, passwordHash, color)
}

// VerifyPassword reports whether the password matches the stored hash.
// An unknown user and a wrong password are indistinguishable to the caller,
// which prevents user enumeration through this surface.
func (s *AccountService) VerifyPassword(username, password string) bool {
	user, err := s.users.GetUser(username)
	if err != nil {
		return false
	}
	return auth.ComparePassword(password, user.PasswordHash)
}

// UpdateProfile mutates the accent color only.
func (s *AccountService) UpdateProfile(username, color string) error {
	return s.users.UpdateColor(username, color)
}

func (s *AccountService) SetDisplayName(username, displayName string) error {
	return s.users.UpdateDisplayName(username, displayName)
}

// SetOnlineStatus flips the presence flag; session-lifecycle callers own
// when this happens.
func (s *AccountService) SetOnlineStatus(username string, online bool) error {
	return s.users.SetOnline(username, online)
}
