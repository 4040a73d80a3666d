package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type row struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&row{}))
	return database
}

func TestRunInTransaction_Commit(t *testing.T) {
	database := setupDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		tx := GetTxFromContext(ctx, database)
		return tx.Create(&row{Name: "kept"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, database.Model(&row{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRunInTransaction_Rollback(t *testing.T) {
	database := setupDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		tx := GetTxFromContext(ctx, database)
		if err := tx.Create(&row{Name: "discarded"}).Error; err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, database.Model(&row{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetTxFromContext_FallsBackToDefault(t *testing.T) {
	database := setupDB(t)

	tx := GetTxFromContext(context.Background(), database)
	require.NotNil(t, tx)
	assert.NoError(t, tx.Create(&row{Name: "direct"}).Error)
}
