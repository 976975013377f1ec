package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestNewCarriesTypeAndMessage(t *testing.T) {
	err := New(ErrorTypeDecode, "bad image bytes")
	if err.Type != ErrorTypeDecode {
		t.Fatalf("expected type %q, got %q", ErrorTypeDecode, err.Type)
	}
	if err.Error() != "bad image bytes" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestWrapPreservesInnerError(t *testing.T) {
	inner := io.ErrUnexpectedEOF
	err := Wrap(inner, ErrorTypeDecode, "decode failed")

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatal("expected wrapped error to match inner via errors.Is")
	}
	if got := err.Error(); got != "decode failed: unexpected EOF" {
		t.Fatalf("unexpected formatted message: %s", got)
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if err := Wrap(nil, ErrorTypeEncode, "ignored"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestIsMatchesOnType(t *testing.T) {
	err := Wrap(io.EOF, ErrorTypeResize, "resize failed")

	if !errors.Is(err, New(ErrorTypeResize, "")) {
		t.Fatal("expected type match for resize errors")
	}
	if errors.Is(err, New(ErrorTypeEncode, "")) {
		t.Fatal("did not expect match against a different type")
	}
}

func TestFromErrorPassesFilterErrorsThrough(t *testing.T) {
	orig := New(ErrorTypeArtifact, "no space")
	wrapped := fmt.Errorf("creating destination: %w", orig)

	got := FromError(wrapped)
	if got != orig {
		t.Fatalf("expected the original FilterError back, got %v", got)
	}
}

func TestFromErrorConvertsForeignErrors(t *testing.T) {
	got := FromError(io.ErrClosedPipe)
	if got.Type != ErrorTypeInternal {
		t.Fatalf("expected internal type, got %q", got.Type)
	}
	if !errors.Is(got, io.ErrClosedPipe) {
		t.Fatal("expected inner error to be preserved")
	}
}

func TestFromPanic(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"error value", io.EOF, "panic recovered: EOF"},
		{"string value", "boom", "boom"},
		{"other value", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromPanic(tt.value)
			if err.Type != ErrorTypeInternal {
				t.Fatalf("expected internal type, got %q", err.Type)
			}
			if err.Error() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestTypeOf(t *testing.T) {
	if got := TypeOf(nil); got != "" {
		t.Fatalf("expected empty type for nil, got %q", got)
	}
	if got := TypeOf(New(ErrorTypeEncode, "x")); got != ErrorTypeEncode {
		t.Fatalf("expected encode, got %q", got)
	}
	if got := TypeOf(io.EOF); got != ErrorTypeInternal {
		t.Fatalf("expected internal for foreign error, got %q", got)
	}
}
