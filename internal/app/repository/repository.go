package repository

import (
	"fmt"

	"seeds-backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(ds.Models()...)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return NewWithDB(db), nil
}

// NewWithDB wraps an already opened connection without migrating it.
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Ping checks the underlying connection pool.
func (r *Repository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// containsPattern builds the ILIKE pattern for a substring match. Wildcards in
// q are passed through unescaped.
func containsPattern(q string) string {
	return "%" + q + "%"
}

// maybeSingle narrows a query limited to two rows down to at most one. No rows
// give nil data and no error.
func maybeSingle[T any](rows []T, what string) Result[*T] {
	switch len(rows) {
	case 0:
		return resultOf[*T](nil)
	case 1:
		return resultOf(&rows[0])
	default:
		return resultErr[*T](fmt.Errorf("multiple %s", what))
	}
}
