// Package identity owns the user table: registration and credential checks.
// Passwords are stored as bcrypt hashes only; raw credentials are never
// persisted or logged.
package identity

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mintshop/mintshop/internal/domain"
	"github.com/mintshop/mintshop/pkg/common"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates a new account. Username and email must both be unused.
func (s *Service) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:        common.UUIDint64(),
		Username:  username,
		Email:     email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate compares the supplied password against the stored hash.
// Unknown usernames and wrong passwords fail identically.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	// best effort, login must not fail on this
	s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", user.ID).
		Update("last_login", time.Now())
	return &user, nil
}

// HashPassword returns the salted bcrypt hash for a raw password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
