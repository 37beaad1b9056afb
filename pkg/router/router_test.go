package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-products/pkg/router"
)

type recordingController struct{ last string }

func (c *recordingController) record(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.last = action + ":" + chi.URLParam(r, "id")
		w.WriteHeader(http.StatusOK)
	}
}

func (c *recordingController) Index(w http.ResponseWriter, r *http.Request) {
	c.record("index")(w, r)
}
func (c *recordingController) Store(w http.ResponseWriter, r *http.Request) {
	c.record("store")(w, r)
}
func (c *recordingController) Show(w http.ResponseWriter, r *http.Request) {
	c.record("show")(w, r)
}
func (c *recordingController) Update(w http.ResponseWriter, r *http.Request) {
	c.record("update")(w, r)
}
func (c *recordingController) Destroy(w http.ResponseWriter, r *http.Request) {
	c.record("destroy")(w, r)
}

func TestResourceDispatch(t *testing.T) {
	c := &recordingController{}
	r := router.New()
	r.Resource("/products", "products", c)

	cases := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/products", "index:"},
		{http.MethodPost, "/products", "store:"},
		{http.MethodGet, "/products/3", "show:3"},
		{http.MethodPut, "/products/3", "update:3"},
		{http.MethodPatch, "/products/4", "update:4"},
		{http.MethodDelete, "/products/5", "destroy:5"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.Handler().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.want, c.last)
		})
	}
}

func TestResourceRoutesListed(t *testing.T) {
	r := router.New()
	r.Group("/api").Resource("products", "products", &recordingController{})

	routes := r.Routes()
	require.Len(t, routes, 6)
	assert.Equal(t, router.RouteInfo{Method: http.MethodGet, Path: "/api/products", Name: "products.index"}, routes[0])
	assert.Equal(t, router.RouteInfo{Method: http.MethodDelete, Path: "/api/products/{id}", Name: "products.destroy"}, routes[5])

	url, err := r.URL("products.show", map[string]string{"id": "9"})
	require.NoError(t, err)
	assert.Equal(t, "/api/products/9", url)

	_, err = r.URL("products.show", nil)
	assert.Error(t, err)
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	r.Group("/v1", mw("group")).Get("/ping", "ping", func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}, mw("route"))

	r.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, []string{"group", "route", "handler"}, order)
}

func TestNamedVerbRoutes(t *testing.T) {
	r := router.New()
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }
	r.Get("/healthz", "health", ok)
	r.Post("graphql", "graphql", ok)

	assert.Equal(t, []router.RouteInfo{
		{Method: http.MethodGet, Path: "/healthz", Name: "health"},
		{Method: http.MethodPost, Path: "/graphql", Name: "graphql"},
	}, r.Routes())

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
