package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/feedbackhq/feedbackhq/internal/models"
	"github.com/feedbackhq/feedbackhq/internal/security"
	"gorm.io/gorm"
)

// ErrDuplicateEmail indicates an admin with the same email already exists.
var ErrDuplicateEmail = errors.New("admin email already exists")

// AdminStore persists administrator accounts.
type AdminStore struct {
	db *gorm.DB
}

// NewAdminStore constructs an AdminStore.
func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{db: db}
}

// NormalizeEmail trims and lower-cases an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail looks up an admin by normalized email. Returns
// gorm.ErrRecordNotFound when no admin matches.
func (s *AdminStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).
		Where("email = ?", NormalizeEmail(email)).
		First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create hashes the password and inserts a new admin. The email is normalized
// before the uniqueness check and the insert; a plaintext password never
// reaches the database. Name falls back to "Admin" when blank.
func (s *AdminStore) Create(ctx context.Context, email, password, name string) (*models.Admin, error) {
	normalized := NormalizeEmail(email)

	var existing models.Admin
	errCheck := s.db.WithContext(ctx).Where("email = ?", normalized).First(&existing).Error
	if errCheck == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(errCheck, gorm.ErrRecordNotFound) {
		return nil, errCheck
	}

	hash, errHash := security.HashPassword(password)
	if errHash != nil {
		return nil, fmt.Errorf("hash password: %w", errHash)
	}

	admin := models.Admin{
		Email:    normalized,
		Password: hash,
		Name:     strings.TrimSpace(name),
	}
	if admin.Name == "" {
		admin.Name = "Admin"
	}
	if errCreate := s.db.WithContext(ctx).Create(&admin).Error; errCreate != nil {
		// The unique index closes the race between check and insert.
		if isUniqueViolation(errCreate) {
			return nil, ErrDuplicateEmail
		}
		return nil, errCreate
	}
	return &admin, nil
}

// ListAll returns all admins ordered newest-created-first. The password hash
// is left out of the projection; the model also never serializes it.
func (s *AdminStore) ListAll(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.db.WithContext(ctx).
		Omit("password").
		Order("created_at DESC").
		Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// isUniqueViolation reports whether an insert failed on a unique constraint.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
