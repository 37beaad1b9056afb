// Package orm is a thin, typed layer over gorm that threads the request
// context through every statement and records its latency.
//
//	q := orm.For[models.Product](db)
//	p, err := q.Find(ctx, 7)
package orm

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-products/pkg/metrics"
)

// Query runs statements against the table behind T.
type Query[T any] struct {
	db *gorm.DB
}

// For returns a Query for model T on db.
func For[T any](db *gorm.DB) *Query[T] {
	return &Query[T]{db: db}
}

func (q *Query[T]) session(ctx context.Context) *gorm.DB {
	return q.db.WithContext(ctx).Model(new(T))
}

// All returns every row ordered by order (e.g. "id asc").
func (q *Query[T]) All(ctx context.Context, order string) ([]T, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	out := make([]T, 0)
	tx := q.session(ctx)
	if order != "" {
		tx = tx.Order(order)
	}
	return out, tx.Find(&out).Error
}

// Find loads the row with primary key id.
func (q *Query[T]) Find(ctx context.Context, id uint) (*T, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var v T
	if err := q.session(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts v and fills its generated columns.
func (q *Query[T]) Create(ctx context.Context, v *T) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.WithContext(ctx).Create(v).Error
}

// UpdateAll writes every column of v, zero values included, except the
// primary key and created_at. It returns the number of rows matched.
// Unlike gorm's Save it never falls back to an insert.
func (q *Query[T]) UpdateAll(ctx context.Context, v *T) (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	tx := q.db.WithContext(ctx).Model(v).Select("*").Omit("id", "created_at").Updates(v)
	return tx.RowsAffected, tx.Error
}

// Delete removes the row with primary key id and returns how many rows went.
func (q *Query[T]) Delete(ctx context.Context, id uint) (int64, error) {
	defer metrics.ObserveDBQuery("delete", time.Now())

	tx := q.db.WithContext(ctx).Delete(new(T), id)
	return tx.RowsAffected, tx.Error
}

// Exists reports whether any row matches the condition.
func (q *Query[T]) Exists(ctx context.Context, query string, args ...any) (bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var n int64
	err := q.session(ctx).Where(query, args...).Limit(1).Count(&n).Error
	return n > 0, err
}

// IsDuplicate reports whether err is a unique-constraint violation.
// Drivers without gorm error translation are matched on their message.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
