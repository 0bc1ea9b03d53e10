package provider

import (
	"context"
	"reflect"
	"testing"
)

type fakeProvider struct {
	name string
}

func (f *fakeProvider) Name() string                     { return f.name }
func (f *fakeProvider) IsAvailable(context.Context) bool { return true }

func TestRegistry_CreateFromFactory(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	reg.RegisterFactory("fake", func(cfg map[string]any) (*fakeProvider, error) {
		name, _ := cfg["name"].(string)
		return &fakeProvider{name: name}, nil
	})

	p, err := reg.Create("fake", map[string]any{"name": "one"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "one" {
		t.Errorf("expected name 'one', got %q", p.Name())
	}
}

func TestRegistry_CreateUnregistered(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	if _, err := reg.Create("missing", nil); err == nil {
		t.Fatal("expected error for unregistered factory")
	}
}

func TestRegistry_GetSet(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	if _, ok := reg.Get("cached"); ok {
		t.Fatal("expected miss before Set")
	}
	reg.Set("cached", &fakeProvider{name: "cached"})
	p, ok := reg.Get("cached")
	if !ok || p.Name() != "cached" {
		t.Errorf("expected cached instance, got %v ok=%v", p, ok)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	factory := func(cfg map[string]any) (*fakeProvider, error) { return &fakeProvider{}, nil }
	reg.RegisterFactory("zeta", factory)
	reg.RegisterFactory("alpha", factory)

	if got, want := reg.List(), []string{"alpha", "zeta"}; !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}
