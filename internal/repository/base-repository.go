package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Filter is a set of column = value conditions joined with AND.
type Filter map[string]any

// Page limits a listing. A zero Limit returns every row.
type Page struct {
	Offset int
	Limit  int
	Order  string
}

// Repository is the CRUD surface shared by every entity.
type Repository[T any] interface {
	FindOne(ctx context.Context, filter Filter) (*T, error)
	FindOneOrFail(ctx context.Context, filter Filter) (*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	FindAndCount(ctx context.Context, filter Filter, page Page) ([]T, int64, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	ExistsBy(ctx context.Context, filter Filter) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, entity *T) error
	UpdateByID(ctx context.Context, id string, updates map[string]any) error
	UpdateBy(ctx context.Context, filter Filter, updates map[string]any) (int64, error)
	SoftDelete(ctx context.Context, filter Filter) (int64, error)
	SoftDeleteByID(ctx context.Context, id string) error
}

type baseRepository[T any] struct {
	db *gorm.DB
}

func newBaseRepository[T any](db *gorm.DB) baseRepository[T] {
	return baseRepository[T]{db: db}
}

func (r baseRepository[T]) query(ctx context.Context, filter Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	return q
}

func (r baseRepository[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	entity, err := r.FindOneOrFail(ctx, filter)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return entity, err
}

func (r baseRepository[T]) FindOneOrFail(ctx context.Context, filter Filter) (*T, error) {
	entity := new(T)
	if err := r.query(ctx, filter).Take(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

func (r baseRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.FindOneOrFail(ctx, Filter{"id": id})
}

func (r baseRepository[T]) FindAndCount(ctx context.Context, filter Filter, page Page) ([]T, int64, error) {
	var total int64
	if err := r.query(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.query(ctx, filter)
	if page.Order != "" {
		q = q.Order(page.Order)
	}
	if page.Limit > 0 {
		q = q.Limit(page.Limit).Offset(page.Offset)
	}

	var items []T
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r baseRepository[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	var total int64
	err := r.query(ctx, filter).Count(&total).Error
	return total, err
}

func (r baseRepository[T]) ExistsBy(ctx context.Context, filter Filter) (bool, error) {
	n, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r baseRepository[T]) ExistsByID(ctx context.Context, id string) (bool, error) {
	return r.ExistsBy(ctx, Filter{"id": id})
}

func (r baseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r baseRepository[T]) UpdateByID(ctx context.Context, id string, updates map[string]any) error {
	n, err := r.UpdateBy(ctx, Filter{"id": id}, updates)
	if err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r baseRepository[T]) UpdateBy(ctx context.Context, filter Filter, updates map[string]any) (int64, error) {
	res := r.query(ctx, filter).Updates(withVersionBump(updates))
	return res.RowsAffected, res.Error
}

func (r baseRepository[T]) SoftDelete(ctx context.Context, filter Filter) (int64, error) {
	res := r.query(ctx, filter).Delete(new(T))
	return res.RowsAffected, res.Error
}

func (r baseRepository[T]) SoftDeleteByID(ctx context.Context, id string) error {
	n, err := r.SoftDelete(ctx, Filter{"id": id})
	if err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func withVersionBump(updates map[string]any) map[string]any {
	out := make(map[string]any, len(updates)+1)
	for k, v := range updates {
		out[k] = v
	}
	out["version"] = gorm.Expr("version + 1")
	return out
}
