package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	// UnitOfWork runs a function inside a single database transaction. Repos
	// expose WithTx so multi-aggregate operations commit or roll back together.
	UnitOfWork interface {
		Do(ctx context.Context, fn func(tx *gorm.DB) error) error
	}

	gormUnitOfWork struct {
		db *gorm.DB
	}
)

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}

// IsNotFound reports whether err is the gorm record-not-found sentinel, so
// services can map it onto the domain error taxonomy.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
