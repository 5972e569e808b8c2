// Package catalog owns the persisted product table: CRUD plus filtered
// search. All mutations go through validated inputs at the API boundary.
package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mintshop/mintshop/internal/domain"
	"github.com/mintshop/mintshop/pkg/validate"
)

var ErrNotFound = errors.New("product not found")

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns products matching the optional filters. Category is a
// case-insensitive exact match, search a case-insensitive substring match on
// name or description; both compose with AND. The full result set is
// returned without pagination.
func (s *Store) List(ctx context.Context, category, search string) ([]domain.Product, error) {
	db := s.db.WithContext(ctx).Model(&domain.Product{})
	if category != "" {
		db = db.Where("LOWER(category) = ?", strings.ToLower(category))
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	var rows []domain.Product
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create assigns identity and creation time; the payload is expected to be
// validated already.
func (s *Store) Create(ctx context.Context, p *domain.Product) error {
	now := time.Now()
	p.ID = 0
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.db.WithContext(ctx).Create(p).Error
}

// Update overwrites only the fields present in upd. The read-modify-write
// runs in one transaction with a row lock so concurrent updates to the same
// product serialize while other products stay unblocked.
func (s *Store) Update(ctx context.Context, id int64, upd validate.ProductUpdate) (*domain.Product, error) {
	var out domain.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&out).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if upd.Name != nil {
			out.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Description != nil {
			out.Description = *upd.Description
		}
		if upd.Price != nil {
			out.Price = *upd.Price
		}
		if upd.Category != nil {
			out.Category = strings.TrimSpace(*upd.Category)
		}
		if upd.ImageBase64 != nil {
			out.ImageBase64 = upd.ImageBase64
		}
		out.UpdatedAt = time.Now()
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
