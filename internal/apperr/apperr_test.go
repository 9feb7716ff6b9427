package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"validation", New(Validation, "mal formado"), Validation},
		{"not found", Newf(NotFound, "no existe el id %d", 42), NotFound},
		{"conflict", New(Conflict, "duplicado"), Conflict},
		{"unavailable", Wrap(Unavailable, "sin red", errors.New("dial tcp")), Unavailable},
		{"configuration", New(Configuration, "sin tabla"), Configuration},
		{"plain error is unknown", errors.New("boom"), Unknown},
		{"nil is unknown", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.expected {
				t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestKindOfWrappedError(t *testing.T) {
	inner := New(Conflict, "duplicado")
	outer := fmt.Errorf("al crear: %w", inner)

	if got := KindOf(outer); got != Conflict {
		t.Errorf("KindOf(wrapped) = %v, want Conflict", got)
	}
}

func TestErrorMessage(t *testing.T) {
	e := New(NotFound, "no existe")
	if e.Error() != "no existe" {
		t.Errorf("Error() = %q", e.Error())
	}

	wrapped := Wrap(Unavailable, "sin red", errors.New("dial tcp"))
	if wrapped.Error() != "sin red: dial tcp" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, wrapped.Err) {
		t.Error("Unwrap does not expose the cause")
	}
}
