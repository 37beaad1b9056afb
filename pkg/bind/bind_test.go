package bind_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-products/pkg/bind"
)

func TestJSONKeepsPresenceAndNull(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/products/1",
		strings.NewReader(`{"price":30000,"is_promo":false,"photo":null}`))
	req.Header.Set("Content-Type", "application/json")

	in, err := bind.FromRequest(req)
	require.NoError(t, err)

	assert.False(t, in.Has("name"))
	assert.Equal(t, json.Number("30000"), in["price"])
	assert.Equal(t, false, in["is_promo"])

	v, ok := in.Get("photo")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestEmptyBodyIsEmptyInput(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/products/1", nil)
	in, err := bind.FromRequest(req)
	require.NoError(t, err)
	assert.Empty(t, in)
}

func TestJSONMustBeObject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`[1,2]`))
	req.Header.Set("Content-Type", "application/json")
	_, err := bind.FromRequest(req)
	assert.ErrorIs(t, err, bind.ErrNotObject)

	req = httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":`))
	_, err = bind.FromRequest(req)
	assert.Error(t, err)
}

func TestURLEncodedForm(t *testing.T) {
	form := url.Values{"name": {"Nasi Kuning"}, "price": {"15000"}, "is_promo": {"0"}}
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	in, err := bind.FromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, bind.Input{"name": "Nasi Kuning", "price": "15000", "is_promo": "0"}, in)
}

func TestMultipartForm(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Mango Sagoo"))
	require.NoError(t, mw.WriteField("photo", "https://example.com/m.jpg"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/products", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	in, err := bind.FromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "Mango Sagoo", in["name"])
	assert.Equal(t, "https://example.com/m.jpg", in["photo"])
}

func TestOnly(t *testing.T) {
	in := bind.Input{"name": "x", "price": "1", "extra": true}
	assert.Equal(t, bind.Input{"name": "x"}, in.Only("name", "photo"))
}
