package app

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mintshop/mintshop/internal/domain"
	"github.com/mintshop/mintshop/internal/identity"
	"github.com/mintshop/mintshop/pkg/common"
)

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "mintshop-admin"

	var user domain.User
	err := a.gormDB.Where("username = ?", superUsername).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, herr := identity.HashPassword(defaultPassword)
		if herr != nil {
			zap.L().Error("failed to hash default admin password", zap.Error(herr))
			return
		}
		now := time.Now()
		if err := a.gormDB.Create(&domain.User{
			ID:        common.UUIDint64(),
			Username:  superUsername,
			Email:     "admin@mintshop.local",
			Password:  hashed,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error; err != nil {
			zap.L().Error("failed to create default admin account", zap.Error(err))
		} else {
			zap.L().Info("initialized default admin account", zap.String("username", superUsername))
		}
	case err != nil:
		zap.L().Error("failed to query admin account", zap.Error(err))
	}
}

// checkProducts seeds a small demo catalog when the table is empty.
func (a *Application) checkProducts() {
	var count int64
	a.gormDB.Model(&domain.Product{}).Count(&count)
	if count > 0 {
		return
	}

	defaultProducts := []domain.Product{
		{
			Name:        "Nova Headphones",
			Description: "Premium wireless noise-cancelling headphones for an immersive experience.",
			Price:       199.99,
			Category:    "Electronics",
		},
		{
			Name:        "Smart Watch Pro",
			Description: "Tracks your health, notifications, and fitness goals with style.",
			Price:       249.50,
			Category:    "Wearables",
		},
		{
			Name:        "Minimalist Lamp",
			Description: "Sleek wooden base lamp for a modern and warm workspace ambiance.",
			Price:       45.00,
			Category:    "Home Decor",
		},
	}

	now := time.Now()
	for _, p := range defaultProducts {
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := a.gormDB.Create(&p).Error; err != nil {
			zap.L().Error("failed to create default product", zap.String("name", p.Name), zap.Error(err))
		} else {
			zap.L().Info("initialized default product", zap.String("name", p.Name))
		}
	}
}
