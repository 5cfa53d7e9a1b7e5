package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alfagnish/places-api/internal/apperr"
)

type personRequest struct {
	ID        string `json:"id" validate:"required"`
	Firstname string `json:"Firstname" validate:"required"`
	Surname   string `json:"Surname" validate:"required"`
}

type spotRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Note     string `json:"note,omitempty"`
}

func TestSchema_DecodeValid(t *testing.T) {
	s := NewSchema[personRequest](Strict())

	got, err := s.Decode(strings.NewReader(`{"id":"3","Firstname":"Ana","Surname":"Lee"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (personRequest{ID: "3", Firstname: "Ana", Surname: "Lee"}) {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestSchema_DecodeErrors(t *testing.T) {
	strict := NewSchema[personRequest](Strict())

	testCases := []struct {
		name    string
		body    string
		want    *apperr.Error
		message string
	}{
		{"malformed", `{"id":`, apperr.InvalidJSON, "Request body must be a JSON object"},
		{"array", `[]`, apperr.InvalidJSON, "Request body must be a JSON object"},
		{"null", `null`, apperr.InvalidJSON, "Request body must be a JSON object"},
		{"trailing garbage", `{"id":"1"} x`, apperr.InvalidJSON, "Request body must be a JSON object"},
		{"wrong type", `{"id":3,"Firstname":"A","Surname":"B"}`, apperr.InvalidJSON, "Field id has an invalid type"},
		{"missing field", `{"id":"3","Firstname":"Ana"}`, apperr.MissingFields, "Missing required fields: id, Firstname, Surname"},
		{"empty string", `{"id":"","Firstname":"Ana","Surname":"Lee"}`, apperr.MissingFields, "Missing required fields: id, Firstname, Surname"},
		{"null field", `{"id":null,"Firstname":"Ana","Surname":"Lee"}`, apperr.MissingFields, "Missing required fields: id, Firstname, Surname"},
		{"zero field", `{"id":0,"Firstname":"Ana","Surname":"Lee"}`, apperr.MissingFields, "Missing required fields: id, Firstname, Surname"},
		{"false field", `{"id":false,"Firstname":"Ana","Surname":"Lee"}`, apperr.MissingFields, "Missing required fields: id, Firstname, Surname"},
		{"true field", `{"id":true,"Firstname":"Ana","Surname":"Lee"}`, apperr.InvalidJSON, "Field id has an invalid type"},
		{"wrong case", `{"id":"3","firstname":"Ana","Surname":"Lee"}`, apperr.MissingFields, "Missing required fields: id, Firstname, Surname"},
		{"extra field", `{"id":"3","Firstname":"Ana","Surname":"Lee","extra":1}`, apperr.UnknownFields, "Only id, Firstname, and Surname are allowed in the request body"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := strict.Decode(strings.NewReader(tc.body))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %s, got %v", tc.want.Code, err)
			}
			e, _ := apperr.As(err)
			if e.Message != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, e.Message)
			}
			if e.Status != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", e.Status)
			}
		})
	}
}

func TestSchema_MissingCheckedBeforeExtra(t *testing.T) {
	s := NewSchema[personRequest](Strict())

	_, err := s.Decode(strings.NewReader(`{"id":"3","extra":"x"}`))
	if !errors.Is(err, apperr.MissingFields) {
		t.Errorf("expected missing fields to win, got %v", err)
	}
}

func TestSchema_NonStrictIgnoresUnknownKeys(t *testing.T) {
	s := NewSchema[spotRequest]()

	got, err := s.Decode(strings.NewReader(`{"id":"99","name":"Louvre","location":"Paris"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Louvre" || got.Location != "Paris" || got.Note != "" {
		t.Errorf("unexpected result %+v", got)
	}

	_, err = s.Decode(strings.NewReader(`{"name":"Louvre"}`))
	e, ok := apperr.As(err)
	if !ok || e.Message != "Missing required fields: name, location" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestSchema_BodyTooLarge(t *testing.T) {
	s := NewSchema[spotRequest]()

	rec := httptest.NewRecorder()
	body := http.MaxBytesReader(rec, readCloser{strings.NewReader(`{"name":"Louvre","location":"Paris"}`)}, 8)

	_, err := s.Decode(body)
	if !errors.Is(err, apperr.BodyTooLarge) {
		t.Errorf("expected BodyTooLarge, got %v", err)
	}
}

func TestRequireJSON(t *testing.T) {
	testCases := []struct {
		contentType string
		ok          bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"Application/JSON", true},
		{"", false},
		{"text/plain", false},
		{"application/x-www-form-urlencoded", false},
	}

	for _, tc := range testCases {
		t.Run(tc.contentType, func(t *testing.T) {
			err := RequireJSON(tc.contentType)
			if tc.ok && err != nil {
				t.Errorf("expected %q to be accepted, got %v", tc.contentType, err)
			}
			if !tc.ok && !errors.Is(err, apperr.UnsupportedMediaType) {
				t.Errorf("expected %q to be rejected, got %v", tc.contentType, err)
			}
		})
	}
}

func TestJoinAnd(t *testing.T) {
	testCases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a and b"},
		{[]string{"a", "b", "c"}, "a, b, and c"},
	}
	for _, tc := range testCases {
		if got := joinAnd(tc.in); got != tc.want {
			t.Errorf("joinAnd(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

type readCloser struct{ *strings.Reader }

func (readCloser) Close() error { return nil }
