// Package ctx wraps a request/response pair behind one handler argument.
//
//	func (pc *ProductController) Show(c *ctx.Context) {
//	    id, ok := c.ParamID("id")
//	    ...
//	    c.Payload(http.StatusOK, "Successfully loaded the product.", "product", p)
//	}
//
//	router.Get("/products/{id}", "products.show", ctx.Wrap(pc.Show))
package ctx

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/kashvi-products/pkg/bind"
	"github.com/shashiranjanraj/kashvi-products/pkg/logger"
	"github.com/shashiranjanraj/kashvi-products/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int // 0 until a response is written
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamID parses a positive integer path parameter. ok is false for
// anything else, including 0.
func (c *Context) ParamID(key string) (id uint, ok bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || n == 0 || uint64(uint(n)) != n {
		return 0, false
	}
	return uint(n), true
}

// Input decodes the request body into a presence-aware field set.
func (c *Context) Input() (bind.Input, error) {
	return bind.FromRequest(c.R)
}

// Context returns the request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// Logger returns the request-scoped logger (request_id attached).
func (c *Context) Logger() *slog.Logger { return logger.WithCtx(c.R.Context()) }

// ─── Response helpers ─────────────────────────────────────────────────────────

// JSON writes v with the given status code.
func (c *Context) JSON(code int, v any) {
	c.status = code
	response.JSON(c.W, code, v)
}

// Message writes {"message": msg}.
func (c *Context) Message(code int, msg string) {
	c.status = code
	response.Message(c.W, code, msg)
}

// Payload writes {"message": msg, key: payload}.
func (c *Context) Payload(code int, msg, key string, payload any) {
	c.status = code
	response.WithPayload(c.W, code, msg, key, payload)
}

// Error writes {"error": msg}.
func (c *Context) Error(code int, msg string) {
	c.status = code
	response.Error(c.W, code, msg)
}

// WrittenStatus returns the status written so far, or 0.
func (c *Context) WrittenStatus() int { return c.status }
