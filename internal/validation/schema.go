// Package validation checks JSON request bodies against a schema declared
// as a Go struct. The struct's json tags enumerate the allowed keys and its
// validate tags mark the required ones:
//
//	type createUserRequest struct {
//	    ID        string `json:"id"        validate:"required"`
//	    Firstname string `json:"Firstname" validate:"required"`
//	    Surname   string `json:"Surname"   validate:"required"`
//	}
//
//	var createUser = validation.NewSchema[createUserRequest](validation.Strict())
//
// Keys are matched exactly, so "firstname" does not satisfy "Firstname".
// Required string fields reject absent keys, null, "", false, and 0.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alfagnish/places-api/internal/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type field struct {
	name     string
	index    int
	required bool
}

type options struct {
	strict bool
}

// Option configures a Schema.
type Option func(*options)

// Strict makes the schema reject keys that are not declared on the struct.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// Schema decodes and validates request bodies into T.
type Schema[T any] struct {
	fields  []field
	allowed map[string]struct{}
	strict  bool
	missing *apperr.Error
	unknown *apperr.Error
}

// NewSchema builds a schema from T's tags. It panics if T is not a struct,
// since that is a programming error caught at start-up.
func NewSchema[T any](opts ...Option) *Schema[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() != reflect.Struct {
		panic(fmt.Sprintf("validation.NewSchema: %s is not a struct", typ))
	}

	s := &Schema[T]{
		allowed: make(map[string]struct{}),
		strict:  o.strict,
	}

	var names, required []string
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonName(sf)
		if name == "" {
			continue
		}
		f := field{
			name:     name,
			index:    i,
			required: hasRule(sf.Tag.Get("validate"), "required"),
		}
		s.fields = append(s.fields, f)
		s.allowed[name] = struct{}{}
		names = append(names, name)
		if f.required {
			required = append(required, name)
		}
	}

	s.missing = apperr.MissingFields.WithMessage("Missing required fields: " + strings.Join(required, ", "))
	s.unknown = apperr.UnknownFields.WithMessage("Only " + joinAnd(names) + " are allowed in the request body")
	return s
}

// Decode reads a JSON object from r and returns it as T. Checks run in a
// fixed order: well-formed object, field types, required fields, then
// unknown keys when the schema is strict.
func (s *Schema[T]) Decode(r io.Reader) (T, error) {
	var out T

	body, err := io.ReadAll(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return out, apperr.BodyTooLarge.WithCause(err)
		}
		return out, apperr.InvalidJSON.WithCause(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return out, apperr.InvalidJSON.WithCause(err)
	}
	if raw == nil {
		return out, apperr.InvalidJSON
	}

	v := reflect.ValueOf(&out).Elem()
	for _, f := range s.fields {
		msg, ok := raw[f.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(msg, v.Field(f.index).Addr().Interface()); err != nil {
			if isFalsy(msg) {
				continue
			}
			return out, apperr.InvalidJSON.
				WithMessage(fmt.Sprintf("Field %s has an invalid type", f.name)).
				WithCause(err)
		}
	}

	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return out, s.missing.WithCause(err)
		}
		return out, apperr.Internal.WithCause(err)
	}

	if s.strict {
		for key := range raw {
			if _, ok := s.allowed[key]; !ok {
				return out, s.unknown
			}
		}
	}

	return out, nil
}

// isFalsy reports whether a raw JSON value is false or a zero number.
// Such values count as absent rather than as a type mismatch.
func isFalsy(msg json.RawMessage) bool {
	v := strings.TrimSpace(string(msg))
	if v == "false" {
		return true
	}
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && f == 0
}

// RequireJSON reports whether a Content-Type header names application/json.
// Media type parameters such as charset are accepted.
func RequireJSON(contentType string) error {
	if contentType == "" {
		return apperr.UnsupportedMediaType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return apperr.UnsupportedMediaType.WithCause(err)
	}
	if mediaType != "application/json" {
		return apperr.UnsupportedMediaType
	}
	return nil
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}

func hasRule(tag, rule string) bool {
	for _, r := range strings.Split(tag, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

// joinAnd renders ["a","b","c"] as "a, b, and c".
func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
