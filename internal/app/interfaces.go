package app

import (
	"gorm.io/gorm"

	"github.com/mintshop/mintshop/config"
	"github.com/mintshop/mintshop/internal/cart"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// CartStoreProvider provides the session cart store
type CartStoreProvider interface {
	CartStore() *cart.Store
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	CartStoreProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
}
