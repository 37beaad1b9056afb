// Package graphql exposes read-only product queries:
//
//	{ products { id name price photo is_promo } }
//	{ product(id: 1) { name price } }
package graphql

import (
	"errors"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/kashvi-products/app/models"
	"github.com/shashiranjanraj/kashvi-products/app/services"
	gql "github.com/shashiranjanraj/kashvi-products/pkg/graphql"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int), Resolve: field(func(p *models.Product) any { return int(p.ID) })},
		"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: field(func(p *models.Product) any { return p.Name })},
		"price":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int), Resolve: field(func(p *models.Product) any { return int(p.Price) })},
		"photo":      &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: field(func(p *models.Product) any { return p.Photo })},
		"is_promo":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean), Resolve: field(func(p *models.Product) any { return p.IsPromo })},
		"created_at": &graphql.Field{Type: graphql.String, Resolve: field(func(p *models.Product) any { return p.CreatedAt.Format(time.RFC3339) })},
		"updated_at": &graphql.Field{Type: graphql.String, Resolve: field(func(p *models.Product) any { return p.UpdatedAt.Format(time.RFC3339) })},
	},
})

func field(get func(p *models.Product) any) graphql.FieldResolveFn {
	return func(rp graphql.ResolveParams) (any, error) {
		switch p := rp.Source.(type) {
		case *models.Product:
			return get(p), nil
		case models.Product:
			return get(&p), nil
		}
		return nil, nil
	}
}

// NewSchema builds the product schema on top of svc.
func NewSchema(svc *services.ProductService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
				Resolve: func(rp graphql.ResolveParams) (any, error) {
					products, err := svc.List(rp.Context)
					if err != nil {
						return nil, errors.New("Failed to load products")
					}
					return products, nil
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(rp graphql.ResolveParams) (any, error) {
					id, _ := rp.Args["id"].(int)
					if id <= 0 {
						return nil, errors.New("Failed to load product")
					}
					p, err := svc.Show(rp.Context, uint(id))
					if err != nil {
						return nil, errors.New("Failed to load product")
					}
					return p, nil
				},
			},
		},
	})
	return gql.NewSchema(query)
}
