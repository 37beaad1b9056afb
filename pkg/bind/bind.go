// Package bind decodes an HTTP request body into a presence-aware field set.
//
// Both JSON objects and form posts (urlencoded or multipart) are accepted.
// Values are kept raw so validation can tell "absent", "null" and "false"
// apart:
//
//	in, err := bind.FromRequest(r)
//	if v, ok := in.Get("is_promo"); ok { ... }
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/shashiranjanraj/kashvi-products/config"
)

// Input maps field name to the raw value the client sent. JSON numbers are
// kept as json.Number; form values are strings; JSON null is a nil value
// under a present key.
type Input map[string]any

// Has reports whether the client sent key at all.
func (in Input) Has(key string) bool {
	_, ok := in[key]
	return ok
}

// Get returns the raw value for key and whether it was sent.
func (in Input) Get(key string) (any, bool) {
	v, ok := in[key]
	return v, ok
}

// Only returns a copy of in restricted to keys.
func (in Input) Only(keys ...string) Input {
	out := make(Input, len(keys))
	for _, k := range keys {
		if v, ok := in[k]; ok {
			out[k] = v
		}
	}
	return out
}

// ErrNotObject is returned when a JSON body is valid but not an object.
var ErrNotObject = errors.New("request body must be a JSON object")

// FromRequest decodes r.Body according to its Content-Type.
// The body is capped at MAX_BODY_BYTES (default 4 MB).
// An empty body yields an empty Input.
func FromRequest(r *http.Request) (Input, error) {
	limit := config.MaxBodyBytes()
	r.Body = http.MaxBytesReader(nil, r.Body, limit)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, tooLarge(err)
		}
		return fromValues(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(limit); err != nil {
			return nil, tooLarge(err)
		}
		return fromValues(r.MultipartForm.Value), nil
	default:
		return decodeJSON(r.Body)
	}
}

func decodeJSON(body io.Reader) (Input, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, tooLarge(err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Input{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Input(obj), nil
}

func fromValues(values map[string][]string) Input {
	in := make(Input, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			in[k] = vs[0]
		}
	}
	return in
}

func tooLarge(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
	}
	return fmt.Errorf("read body: %w", err)
}
