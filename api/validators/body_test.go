package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
)

type samplePayload struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Order    int    `json:"order" validate:"omitempty,gte=1"`
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"question":"Q","answer":"A","order":2}`))

	var dest samplePayload
	if err := DecodeJSONBody(r, &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.Order != 2 {
		t.Fatalf("expected order 2, got %d", dest.Order)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"question":"Q","answer":"A","surprise":true}`))

	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldsByJSONTag(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"question":"Q"}`))

	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected detail map, got %T", typed.Details())
	}
	if _, present := details["answer"]; !present {
		t.Fatalf("expected missing field keyed by json tag, got %v", details)
	}
}

func TestDecodeJSONBodyRejectsOrderBelowOne(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"question":"Q","answer":"A","order":-3}`))

	var dest samplePayload
	if err := DecodeJSONBody(r, &dest); err == nil {
		t.Fatal("expected validation error for negative order")
	}
}
