package routes

import (
	"github.com/shashiranjanraj/kashvi-products/app/controllers"
	productgraphql "github.com/shashiranjanraj/kashvi-products/app/graphql"
	"github.com/shashiranjanraj/kashvi-products/app/services"
	"github.com/shashiranjanraj/kashvi-products/config"
	"github.com/shashiranjanraj/kashvi-products/pkg/graphql"
	"github.com/shashiranjanraj/kashvi-products/pkg/logger"
	"github.com/shashiranjanraj/kashvi-products/pkg/router"
)

// RegisterAPI mounts the products resource (under API_PREFIX) and the
// read-only GraphQL endpoint.
func RegisterAPI(r *router.Router, svc *services.ProductService) {
	api := r.Group(config.APIPrefix())
	api.Resource("/products", "products", controllers.NewProductController(svc))

	schema, err := productgraphql.NewSchema(svc)
	if err != nil {
		// the schema is static; this only fires on a programming error
		logger.Error("graphql: build schema", "error", err)
		return
	}
	r.Post("/graphql", "graphql", graphql.Handler(schema))
}
