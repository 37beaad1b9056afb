package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-products/app/services"
	"github.com/shashiranjanraj/kashvi-products/pkg/ctx"
)

// ProductController serves the products resource.
type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// StatusFor maps a ProductService error to the HTTP status sent to clients.
// Validation failures, missing products and store faults all answer 404;
// the cause only reaches the server log.
func StatusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return http.StatusNotFound
}

func (pc *ProductController) Index(w http.ResponseWriter, r *http.Request)   { ctx.Wrap(pc.index)(w, r) }
func (pc *ProductController) Store(w http.ResponseWriter, r *http.Request)   { ctx.Wrap(pc.store)(w, r) }
func (pc *ProductController) Show(w http.ResponseWriter, r *http.Request)    { ctx.Wrap(pc.show)(w, r) }
func (pc *ProductController) Update(w http.ResponseWriter, r *http.Request)  { ctx.Wrap(pc.update)(w, r) }
func (pc *ProductController) Destroy(w http.ResponseWriter, r *http.Request) { ctx.Wrap(pc.destroy)(w, r) }

func (pc *ProductController) index(c *ctx.Context) {
	products, err := pc.service.List(c.Context())
	if err != nil {
		c.Logger().Error("Error loading the products", "message", err.Error())
		c.Error(http.StatusInternalServerError, "Failed to load products")
		return
	}
	c.Payload(http.StatusOK, "Successfully loaded all the products.", "data", products)
}

func (pc *ProductController) store(c *ctx.Context) {
	in, err := c.Input()
	if err != nil {
		pc.fail(c, invalidBody(err), "Error creating the product", "Failed to create product")
		return
	}

	product, err := pc.service.Create(c.Context(), in)
	if err != nil {
		pc.fail(c, err, "Error creating the product", "Failed to create product")
		return
	}
	c.Payload(http.StatusCreated, "Successfully created the product.", "product", product)
}

func (pc *ProductController) show(c *ctx.Context) {
	id, ok := c.ParamID("id")
	if !ok {
		pc.fail(c, services.ErrNotFound, "Error loading the product", "Failed to load product")
		return
	}

	product, err := pc.service.Show(c.Context(), id)
	if err != nil {
		pc.fail(c, err, "Error loading the product", "Failed to load product")
		return
	}
	c.Payload(http.StatusOK, "Successfully loaded the product.", "product", product)
}

func (pc *ProductController) update(c *ctx.Context) {
	id, ok := c.ParamID("id")
	if !ok {
		pc.fail(c, services.ErrNotFound, "Error updating the product", "Failed to update product")
		return
	}

	in, err := c.Input()
	if err != nil {
		pc.fail(c, invalidBody(err), "Error updating the product", "Failed to update product")
		return
	}

	product, err := pc.service.Update(c.Context(), id, in)
	if err != nil {
		pc.fail(c, err, "Error updating the product", "Failed to update product")
		return
	}
	c.Payload(http.StatusOK, "Successfully updated the product.", "product", product)
}

func (pc *ProductController) destroy(c *ctx.Context) {
	id, ok := c.ParamID("id")
	if !ok {
		pc.fail(c, services.ErrNotFound, "Error deleting the product", "Failed to delete product")
		return
	}

	if err := pc.service.Destroy(c.Context(), id); err != nil {
		pc.fail(c, err, "Error deleting the product", "Failed to delete product")
		return
	}
	c.Message(http.StatusOK, "Successfully deleted the product.")
}

func (pc *ProductController) fail(c *ctx.Context, err error, logMsg, clientMsg string) {
	c.Logger().Error(logMsg,
		"message", err.Error(),
		"outcome", services.Outcome(err),
		"method", c.R.Method,
		"path", c.R.URL.Path,
	)
	c.Error(StatusFor(err), clientMsg)
}

// invalidBody turns an unreadable body into a validation failure.
func invalidBody(err error) error {
	return &services.ValidationError{Fields: map[string]string{"body": err.Error()}}
}
