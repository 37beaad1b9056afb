package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/kashvi-products/app/models"
	"github.com/shashiranjanraj/kashvi-products/app/repositories"
	"github.com/shashiranjanraj/kashvi-products/pkg/bind"
	"github.com/shashiranjanraj/kashvi-products/pkg/metrics"
	"github.com/shashiranjanraj/kashvi-products/pkg/validate"
)

// ProductService implements the product resource operations on top of a
// ProductRepository. Every returned error wraps one of ErrValidation,
// ErrNotFound or ErrStore.
type ProductService struct {
	repo repositories.ProductRepository
}

func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List returns every product. The slice is never nil.
func (s *ProductService) List(ctx context.Context) (_ []models.Product, err error) {
	defer record("list", &err)

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr("list products", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Create validates in against the store rules and persists a new product.
func (s *ProductService) Create(ctx context.Context, in bind.Input) (_ *models.Product, err error) {
	defer record("create", &err)

	if err := s.check(ctx, in, storeRules(s.repo)); err != nil {
		return nil, err
	}

	p := &models.Product{}
	apply(p, in)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, s.classify("create product", err)
	}
	return p, nil
}

// Show loads a single product.
func (s *ProductService) Show(ctx context.Context, id uint) (_ *models.Product, err error) {
	defer record("show", &err)
	return s.find(ctx, id)
}

// Update replaces the supplied fields of product id and keeps the rest.
// An input with no known fields writes nothing and returns the product as is.
func (s *ProductService) Update(ctx context.Context, id uint, in bind.Input) (_ *models.Product, err error) {
	defer record("update", &err)

	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.check(ctx, in, updateRules(s.repo, p.ID)); err != nil {
		return nil, err
	}

	if !apply(p, in) {
		return p, nil
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, s.classify("update product", err)
	}
	return p, nil
}

// Destroy permanently removes product id.
func (s *ProductService) Destroy(ctx context.Context, id uint) (err error) {
	defer record("destroy", &err)

	p, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return s.classify("delete product", err)
	}
	return nil
}

func (s *ProductService) find(ctx context.Context, id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify("find product", err)
	}
	return p, nil
}

func (s *ProductService) check(ctx context.Context, in bind.Input, fields []validate.Field) error {
	errs, err := validate.Run(ctx, in, fields...)
	if err != nil {
		return storeErr("validate product", err)
	}
	if validate.HasErrors(errs) {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// classify maps repository errors onto the service error kinds.
func (s *ProductService) classify(op string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		return ErrNotFound
	case errors.Is(err, repositories.ErrDuplicateName):
		// lost a race with a concurrent writer after validation passed
		return invalid("name", "The name has already been taken.")
	default:
		return storeErr(op, err)
	}
}

// apply copies the supplied, already validated fields of in onto p and
// reports whether any field was supplied.
func apply(p *models.Product, in bind.Input) bool {
	changed := false
	if v, ok := in.Get("name"); ok {
		p.Name, _ = validate.AsString(v)
		changed = true
	}
	if v, ok := in.Get("price"); ok {
		p.Price, _ = validate.AsInt(v)
		changed = true
	}
	if v, ok := in.Get("photo"); ok {
		p.Photo, _ = validate.AsString(v)
		changed = true
	}
	if v, ok := in.Get("is_promo"); ok {
		p.IsPromo, _ = validate.AsBool(v)
		changed = true
	}
	return changed
}

func record(op string, errp *error) {
	metrics.RecordOperation(op, Outcome(*errp))
}

// Outcome labels err for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "store"
	}
}
