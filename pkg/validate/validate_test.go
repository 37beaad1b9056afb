package validate_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-products/pkg/validate"
)

func storeFields(taken string) []validate.Field {
	unique := func(_ context.Context, field string, v any) (string, error) {
		if s, _ := validate.AsString(v); s == taken {
			return "The " + field + " has already been taken.", nil
		}
		return "", nil
	}
	return []validate.Field{
		{Name: "name", Rules: []validate.Rule{validate.Required, validate.String, validate.MaxLen(255)}, Context: []validate.ContextRule{unique}},
		{Name: "price", Rules: []validate.Rule{validate.Required, validate.Integer}},
		{Name: "photo", Rules: []validate.Rule{validate.Required, validate.String, validate.URL}},
		{Name: "is_promo", Rules: []validate.Rule{validate.Required, validate.Boolean}},
	}
}

func TestValidInput(t *testing.T) {
	errs, err := validate.Run(context.Background(), map[string]any{
		"name":     "Mango Sagoo",
		"price":    json.Number("25000"),
		"photo":    "https://example.com/m.jpg",
		"is_promo": true,
	}, storeFields("")...)

	require.NoError(t, err)
	assert.False(t, validate.HasErrors(errs))
}

func TestMissingFields(t *testing.T) {
	errs, err := validate.Run(context.Background(), map[string]any{}, storeFields("")...)
	require.NoError(t, err)

	assert.Len(t, errs, 4)
	assert.Equal(t, "The name field is required.", errs["name"])
	assert.Equal(t, "The is_promo field is required.", errs["is_promo"])
}

func TestFalseAndZeroArePresent(t *testing.T) {
	errs, err := validate.Run(context.Background(), map[string]any{
		"name":     "Nasi Kuning",
		"price":    json.Number("0"),
		"photo":    "https://example.com/n.jpg",
		"is_promo": false,
	}, storeFields("")...)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestWrongTypes(t *testing.T) {
	errs, err := validate.Run(context.Background(), map[string]any{
		"name":     json.Number("12"),
		"price":    "abc",
		"photo":    "not a url",
		"is_promo": "maybe",
	}, storeFields("")...)
	require.NoError(t, err)

	assert.Equal(t, "The name field must be a string.", errs["name"])
	assert.Equal(t, "The price field must be an integer.", errs["price"])
	assert.Equal(t, "The photo field must be a valid URL.", errs["photo"])
	assert.Equal(t, "The is_promo field must be true or false.", errs["is_promo"])
}

func TestContextRuleRunsAfterPlainRules(t *testing.T) {
	in := map[string]any{
		"name":     "Mango Sagoo",
		"price":    json.Number("1"),
		"photo":    "https://example.com/m.jpg",
		"is_promo": "1",
	}
	errs, err := validate.Run(context.Background(), in, storeFields("Mango Sagoo")...)
	require.NoError(t, err)
	assert.Equal(t, "The name has already been taken.", errs["name"])

	// a non-string name never reaches the uniqueness check
	called := false
	f := validate.Field{
		Name:  "name",
		Rules: []validate.Rule{validate.String},
		Context: []validate.ContextRule{func(context.Context, string, any) (string, error) {
			called = true
			return "", nil
		}},
	}
	_, err = validate.Run(context.Background(), map[string]any{"name": 5}, f)
	require.NoError(t, err)
	assert.False(t, called)
}

func TestContextRuleErrorAborts(t *testing.T) {
	boom := errors.New("db down")
	f := validate.Field{
		Name: "name",
		Context: []validate.ContextRule{func(context.Context, string, any) (string, error) {
			return "", boom
		}},
	}
	errs, err := validate.Run(context.Background(), map[string]any{"name": "x"}, f)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, errs)
}

func TestOptionalFields(t *testing.T) {
	f := validate.Field{Name: "price", Optional: true, Rules: []validate.Rule{validate.NotNull, validate.Integer}}

	errs, err := validate.Run(context.Background(), map[string]any{}, f)
	require.NoError(t, err)
	assert.Empty(t, errs, "absent optional field is skipped")

	errs, _ = validate.Run(context.Background(), map[string]any{"price": nil}, f)
	assert.Equal(t, "The price field cannot be null.", errs["price"])

	errs, _ = validate.Run(context.Background(), map[string]any{"price": "30000"}, f)
	assert.Empty(t, errs)
}

func TestMaxLen(t *testing.T) {
	rule := validate.MaxLen(3)
	assert.Empty(t, rule("name", "abc", true))
	assert.Empty(t, rule("name", "äöü", true))
	assert.NotEmpty(t, rule("name", strings.Repeat("a", 4), true))
	assert.Empty(t, rule("name", 12345, true))
}

func TestErrorsString(t *testing.T) {
	errs := validate.Errors{"price": "b.", "name": "a."}
	assert.Equal(t, "a. b.", errs.Error())
}

func TestAsInt(t *testing.T) {
	cases := []struct {
		in   any
		want int64
		ok   bool
	}{
		{json.Number("25000"), 25000, true},
		{json.Number("25000.0"), 25000, true},
		{json.Number("1.5"), 0, false},
		{json.Number("9223372036854775807"), math.MaxInt64, true},
		{json.Number("9223372036854775808"), 0, false},
		{json.Number("-9223372036854775808"), math.MinInt64, true},
		{json.Number("-9223372036854775809"), 0, false},
		{json.Number("1e19"), 0, false},
		{float64(1 << 63), 0, false},
		{" 42 ", 42, true},
		{"4x", 0, false},
		{float64(7), 7, true},
		{7, 7, true},
		{true, 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := validate.AsInt(tc.in)
		assert.Equal(t, tc.ok, ok, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestAsBool(t *testing.T) {
	cases := []struct {
		in   any
		want bool
		ok   bool
	}{
		{true, true, true},
		{false, false, true},
		{json.Number("1"), true, true},
		{json.Number("0"), false, true},
		{json.Number("2"), false, false},
		{"1", true, true},
		{"0", false, true},
		{" 1 ", true, true},
		{"TRUE", false, false},
		{"false", false, false},
		{"yes", false, false},
		{nil, false, false},
	}
	for _, tc := range cases {
		got, ok := validate.AsBool(tc.in)
		assert.Equal(t, tc.ok, ok, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}
