package services

import (
	"fmt"
	"testing"

	"github.com/sumtl/restaurant-reviews-app/entity"
	"github.com/sumtl/restaurant-reviews-app/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Base sqlite en mémoire, isolée par test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.MenuItem{}, &entity.Review{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	user := &entity.User{Email: email}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{Name: name}
	require.NoError(t, db.Create(item).Error)
	return item
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewUserRepository(db),
		repository.NewMenuItemRepository(db),
	)
}
