// Package validate evaluates explicit, per-field rule sets against a raw
// request field map.
//
// Each field names its rules in order; the first failing rule produces the
// field's message and the remaining rules are skipped:
//
//	errs, err := validate.Run(ctx, input,
//	    validate.Field{Name: "name", Rules: []validate.Rule{validate.Required, validate.String}},
//	    validate.Field{Name: "photo", Optional: true, Rules: []validate.Rule{validate.NotNull, validate.URL}},
//	)
//
// Built-in rules:
//
//	Required    key present, not null, not blank
//	NotNull     a present key must not be null
//	String      value is a string
//	Integer     whole number (JSON number or numeric string)
//	Boolean     true/false, 1/0, "1"/"0"
//	URL         absolute URL with a scheme
//	MaxLen(n)   string length in runes <= n
//
// Rules that need I/O (uniqueness against a store) are ContextRules; they run
// only after every plain Rule on the field passed.
package validate

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule checks one value. present is false when the client did not send the
// key. It returns "" on success or a human readable message.
type Rule func(field string, value any, present bool) string

// ContextRule is a Rule that may consult external state. A non-nil error
// aborts validation and is returned to the caller unchanged.
type ContextRule func(ctx context.Context, field string, value any) (string, error)

// Field binds a field name to its rules.
type Field struct {
	Name string
	// Optional fields are only checked when present ("sometimes" semantics).
	Optional bool
	Rules    []Rule
	Context  []ContextRule
}

// Errors maps field name to its first failing message.
type Errors map[string]string

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs Errors) bool { return len(errs) > 0 }

// Error renders the messages in field order so logs are stable.
func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e[k])
	}
	return strings.Join(msgs, " ")
}

// Run validates input against fields. It returns the field errors (empty when
// valid) or the first error raised by a ContextRule.
func Run(ctx context.Context, input map[string]any, fields ...Field) (Errors, error) {
	errs := Errors{}

	for _, f := range fields {
		value, present := input[f.Name]
		if f.Optional && !present {
			continue
		}

		if msg := firstFailure(f, value, present); msg != "" {
			errs[f.Name] = msg
			continue
		}

		for _, rule := range f.Context {
			msg, err := rule(ctx, f.Name, value)
			if err != nil {
				return nil, err
			}
			if msg != "" {
				errs[f.Name] = msg
				break
			}
		}
	}

	return errs, nil
}

func firstFailure(f Field, value any, present bool) string {
	for _, rule := range f.Rules {
		if msg := rule(f.Name, value, present); msg != "" {
			return msg
		}
	}
	return ""
}

// ─── Built-in rules ───────────────────────────────────────────────────────────

// Required fails when the key is absent, null, or a blank string.
func Required(field string, value any, present bool) string {
	if !present || value == nil {
		return fmt.Sprintf("The %s field is required.", field)
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return fmt.Sprintf("The %s field is required.", field)
	}
	return ""
}

// NotNull fails when the key was sent with an explicit null.
func NotNull(field string, value any, present bool) string {
	if present && value == nil {
		return fmt.Sprintf("The %s field cannot be null.", field)
	}
	return ""
}

// String fails unless value is a string.
func String(field string, value any, _ bool) string {
	if _, ok := AsString(value); !ok {
		return fmt.Sprintf("The %s field must be a string.", field)
	}
	return ""
}

// Integer fails unless value is a whole number.
func Integer(field string, value any, _ bool) string {
	if _, ok := AsInt(value); !ok {
		return fmt.Sprintf("The %s field must be an integer.", field)
	}
	return ""
}

// Boolean fails unless value is one of the accepted boolean forms.
func Boolean(field string, value any, _ bool) string {
	if _, ok := AsBool(value); !ok {
		return fmt.Sprintf("The %s field must be true or false.", field)
	}
	return ""
}

var structValidator = validator.New()

// URL fails unless value is a string holding an absolute URL.
func URL(field string, value any, _ bool) string {
	s, ok := AsString(value)
	if !ok || structValidator.Var(s, "required,url") != nil {
		return fmt.Sprintf("The %s field must be a valid URL.", field)
	}
	return ""
}

// MaxLen fails when a string value is longer than n runes.
// Non-string values pass; pair it with String.
func MaxLen(n int) Rule {
	return func(field string, value any, _ bool) string {
		s, ok := value.(string)
		if ok && len([]rune(s)) > n {
			return fmt.Sprintf("The %s field must not be greater than %d characters.", field, n)
		}
		return ""
	}
}
