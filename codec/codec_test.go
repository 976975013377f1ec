package codec

import (
	"bytes"
	"io"
	"strings"
	"testing"

	imagetest "github.com/leeforge/imagefit/testing"
)

func TestDimensions(t *testing.T) {
	data := imagetest.PNGBytes(t, 64, 48)

	w, h, err := Dimensions(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Dimensions returned error: %v", err)
	}
	if w != 64 || h != 48 {
		t.Errorf("Dimensions = %dx%d, want 64x48", w, h)
	}
}

func TestDimensionsRejectsGarbage(t *testing.T) {
	if _, _, err := Dimensions(strings.NewReader("not an image")); err == nil {
		t.Error("expected error for non-image input")
	}
}

func TestRegistryBuiltins(t *testing.T) {
	for _, name := range []string{"native", "imaging"} {
		c, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) returned error: %v", name, err)
		}
		if c.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, c.Name())
		}
	}

	names := List()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["native"] || !found["imaging"] {
		t.Errorf("List() = %v, want native and imaging present", names)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	if _, err := Get("vips"); err == nil {
		t.Error("expected error for unregistered codec")
	}
}

func TestRegistryMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet should panic for unregistered codec")
		}
	}()
	MustGet("vips")
}

type fakeCodec struct{ name string }

func (f *fakeCodec) Name() string { return f.name }

func (f *fakeCodec) Decode(_ io.Reader) (*Decoded, error) { return nil, nil }

func (f *fakeCodec) Resize(d *Decoded, _, _ int, _ Options) (*Decoded, error) { return d, nil }

func (f *fakeCodec) Encode(_ io.Writer, _ *Decoded, _ Options) error { return nil }

func TestRegisterRejectsDuplicateAndEmpty(t *testing.T) {
	if err := Register(&fakeCodec{name: "native"}); err == nil {
		t.Error("expected error registering duplicate name")
	}
	if err := Register(&fakeCodec{name: ""}); err == nil {
		t.Error("expected error registering empty name")
	}
}
