package configs

import (
	"fmt"

	"github.com/sumtl/restaurant-reviews-app/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB ouvre la base selon le driver configuré.
// TranslateError est requis: les violations de l'index unique des
// avis doivent remonter comme gorm.ErrDuplicatedKey, pas en 500.
func ConnectionDB(cfg *Config) error {
	gormCfg := &gorm.Config{TranslateError: true}

	var err error
	switch cfg.DBDriver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.DBSource), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DBSource), gormCfg)
	default:
		return fmt.Errorf("unsupported db driver: %s", cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	return nil
}

func SetupDatabase() error {
	// Migrate the schema
	return db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Review{},
	)
}
