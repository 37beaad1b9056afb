package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-products/app/models"
	"github.com/shashiranjanraj/kashvi-products/pkg/orm"
)

var (
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateName is returned when a write would break name uniqueness.
	ErrDuplicateName = errors.New("product name already taken")
)

// ProductRepository is the persistence port for products.
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id uint) error
	// NameTaken reports whether another product already uses name.
	// exceptID (0 for none) is left out of the check.
	NameTaken(ctx context.Context, name string, exceptID uint) (bool, error)
}

// GormProductRepository stores products through gorm.
type GormProductRepository struct {
	q *orm.Query[models.Product]
}

// NewProductRepository returns a repository bound to db.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{q: orm.For[models.Product](db)}
}

// List returns all products in insertion order.
func (r *GormProductRepository) List(ctx context.Context) ([]models.Product, error) {
	products, err := r.q.All(ctx, "id asc")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// FindByID looks up a product by primary key.
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	p, err := r.q.Find(ctx, id)
	if orm.IsNotFound(err) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	return p, nil
}

// Create persists p and fills its id and timestamps.
func (r *GormProductRepository) Create(ctx context.Context, p *models.Product) error {
	if err := r.q.Create(ctx, p); err != nil {
		if orm.IsDuplicate(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Update writes every mutable column of p.
func (r *GormProductRepository) Update(ctx context.Context, p *models.Product) error {
	n, err := r.q.UpdateAll(ctx, p)
	if err != nil {
		if orm.IsDuplicate(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("update product %d: %w", p.ID, err)
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete hard-deletes the product.
func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	n, err := r.q.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// NameTaken checks the unique name constraint ahead of a write.
func (r *GormProductRepository) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	var (
		taken bool
		err   error
	)
	if exceptID == 0 {
		taken, err = r.q.Exists(ctx, "name = ?", name)
	} else {
		taken, err = r.q.Exists(ctx, "name = ? AND id <> ?", name, exceptID)
	}
	if err != nil {
		return false, fmt.Errorf("check product name: %w", err)
	}
	return taken, nil
}
