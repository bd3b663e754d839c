package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/repository"
)

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrWrongPassword   = errors.New("wrong password")
	ErrUserBlocked     = errors.New("user is blocked")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// dummyPasswordHash is compared against on unknown emails so that a failed
// login costs one bcrypt comparison whether or not the account exists.
var dummyPasswordHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("campus-api-dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err))
	}

	return hash
})

type AuthService struct {
	repo    AuthUserRepository
	compare func(hash, password []byte) error
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo:    repo,
		compare: bcrypt.CompareHashAndPassword,
	}
}

// Signup registers a new student account.
func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := s.checkEmailExists(ctx, user.Email); err != nil {
		return domain.User{}, err
	}

	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hashedPassword
	user.Role = domain.RoleStudent
	user.IsBlocked = false
	if user.Language == "" {
		user.Language = domain.LanguageFrench
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Login returns the account matching the credentials. Unknown emails yield
// ErrUserNotFound and bad passwords ErrWrongPassword; a blocked account is
// only reported once the password matched.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = s.compare(dummyPasswordHash(), []byte(password))
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = s.compare([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	if user.IsBlocked {
		return domain.User{}, ErrUserBlocked
	}

	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (s *AuthService) checkEmailExists(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrUserEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return nil
}
