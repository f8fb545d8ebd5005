package factory

import (
	"reflect"
	"testing"
)

type fakeSink struct{ Endpoint string }

func sinkBuilder(conf map[string]any) (*fakeSink, error) {
	var c struct {
		Endpoint string `json:"endpoint"`
	}
	if err := Decode(conf, &c); err != nil {
		return nil, err
	}
	return &fakeSink{Endpoint: c.Endpoint}, nil
}

func TestRegistryBuild(t *testing.T) {
	reg := NewRegistry[*fakeSink]()
	if err := reg.Register("fake", sinkBuilder); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := reg.Build(ModuleConfig{Type: "fake", Conf: map[string]any{"endpoint": "localhost:9090"}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got.Endpoint != "localhost:9090" {
		t.Errorf("endpoint = %q, want localhost:9090", got.Endpoint)
	}
}

func TestRegistryRejectsBadRegistrations(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", func(map[string]any) (int, error) { return 2, nil }); err == nil {
		t.Error("duplicate name must be rejected")
	}
	if err := reg.Register("y", nil); err == nil {
		t.Error("nil builder must be rejected")
	}
}

func TestRegistryUnknownType(t *testing.T) {
	reg := NewRegistry[int]()
	if _, err := reg.Build(ModuleConfig{Type: "missing"}); err == nil {
		t.Error("unknown type must be an error")
	}
}

func TestRegistryTypesSorted(t *testing.T) {
	reg := NewRegistry[int]()
	for _, name := range []string{"c", "a", "b"} {
		if err := reg.Register(name, func(map[string]any) (int, error) { return 0, nil }); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	if got := reg.Types(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("types = %v, want [a b c]", got)
	}
}
