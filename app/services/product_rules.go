package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/kashvi-products/app/repositories"
	"github.com/shashiranjanraj/kashvi-products/pkg/validate"
)

// uniqueName rejects a name another product already uses. exceptID keeps
// a product's own row out of the check on update.
func uniqueName(repo repositories.ProductRepository, exceptID uint) validate.ContextRule {
	return func(ctx context.Context, field string, value any) (string, error) {
		name, _ := validate.AsString(value)
		taken, err := repo.NameTaken(ctx, name, exceptID)
		if err != nil {
			return "", err
		}
		if taken {
			return fmt.Sprintf("The %s has already been taken.", field), nil
		}
		return "", nil
	}
}

// storeRules: every field required.
func storeRules(repo repositories.ProductRepository) []validate.Field {
	return []validate.Field{
		{
			Name:    "name",
			Rules:   []validate.Rule{validate.Required, validate.String, validate.MaxLen(255)},
			Context: []validate.ContextRule{uniqueName(repo, 0)},
		},
		{Name: "price", Rules: []validate.Rule{validate.Required, validate.Integer}},
		{Name: "photo", Rules: []validate.Rule{validate.Required, validate.URL, validate.MaxLen(255)}},
		{Name: "is_promo", Rules: []validate.Rule{validate.Required, validate.Boolean}},
	}
}

// updateRules: only supplied fields are checked; null is never accepted and
// a supplied name must not be blank.
func updateRules(repo repositories.ProductRepository, id uint) []validate.Field {
	return []validate.Field{
		{
			Name:     "name",
			Optional: true,
			Rules:    []validate.Rule{validate.Required, validate.String, validate.MaxLen(255)},
			Context:  []validate.ContextRule{uniqueName(repo, id)},
		},
		{Name: "price", Optional: true, Rules: []validate.Rule{validate.NotNull, validate.Integer}},
		{Name: "photo", Optional: true, Rules: []validate.Rule{validate.NotNull, validate.URL, validate.MaxLen(255)}},
		{Name: "is_promo", Optional: true, Rules: []validate.Rule{validate.NotNull, validate.Boolean}},
	}
}
