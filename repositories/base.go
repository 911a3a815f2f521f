package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter is an equality filter on column names. An empty filter matches everything.
type Filter map[string]any

// Scope narrows a query, e.g. for pagination.
type Scope = func(*gorm.DB) *gorm.DB

// Paginate returns a scope applying offset and limit.
func Paginate(offset, limit int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(limit)
	}
}

// Repository implements the shared CRUD operations for one entity type.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) Repository[T] {
	return Repository[T]{db: db}
}

func (r Repository[T]) query(ctx context.Context, filter Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	return q
}

func (r Repository[T]) GetAll(ctx context.Context, scopes ...Scope) ([]T, error) {
	return r.GetFiltered(ctx, nil, scopes...)
}

func (r Repository[T]) GetFiltered(ctx context.Context, filter Filter, scopes ...Scope) ([]T, error) {
	var out []T
	if err := r.query(ctx, filter).Scopes(scopes...).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetOneOrNone returns nil without error when nothing matches.
func (r Repository[T]) GetOneOrNone(ctx context.Context, filter Filter) (*T, error) {
	var out T
	err := r.query(ctx, filter).Order("id").Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r Repository[T]) GetOne(ctx context.Context, filter Filter) (*T, error) {
	out, err := r.GetOneOrNone(ctx, filter)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

func (r Repository[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	var n int64
	if err := r.query(ctx, filter).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Add inserts entity and fills in its generated identifier.
func (r Repository[T]) Add(ctx context.Context, entity *T) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
	return translateWriteError(err)
}

func (r Repository[T]) AddBulk(ctx context.Context, entities []T) error {
	if len(entities) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&entities).Error
	return translateWriteError(err)
}

// Edit updates the single object matching filter. With partial set only the
// supplied fields change (a map, or the non-zero fields of a struct);
// otherwise every column but the primary key is written from data.
func (r Repository[T]) Edit(ctx context.Context, data any, filter Filter, partial bool) error {
	if err := r.ensureSingle(ctx, filter); err != nil {
		return err
	}
	q := r.query(ctx, filter)
	if !partial {
		q = q.Select("*").Omit("id", clause.Associations)
	}
	return translateWriteError(q.Updates(data).Error)
}

// Delete removes the single object matching filter.
func (r Repository[T]) Delete(ctx context.Context, filter Filter) error {
	if err := r.ensureSingle(ctx, filter); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Where(map[string]any(filter)).Delete(new(T)).Error
	return translateWriteError(err)
}

func (r Repository[T]) ensureSingle(ctx context.Context, filter Filter) error {
	if len(filter) == 0 {
		return fmt.Errorf("%w: empty filter", ErrAmbiguousFilter)
	}
	n, err := r.Count(ctx, filter)
	if err != nil {
		return err
	}
	switch {
	case n == 0:
		return ErrNotFound
	case n > 1:
		return ErrAmbiguousFilter
	}
	return nil
}
