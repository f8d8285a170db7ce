package ui

import (
	"testing"

	"github.com/five82/satchel/internal/catalog"
)

func TestRouterStack(t *testing.T) {
	r := &router{}
	if r.Current() != "" || r.Back() {
		t.Fatalf("empty router not at the list")
	}
	if err := r.Push("/shop/cart"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := r.Push("/shop/cart"); err != nil {
		t.Fatalf("Push again: %v", err)
	}
	if r.Current() != "/shop/cart" {
		t.Fatalf("Current = %q", r.Current())
	}
	if !r.Back() || r.Current() != "" {
		t.Fatalf("duplicate push stacked twice")
	}
	if err := r.Push("  "); err == nil {
		t.Fatalf("Push(blank) returned nil")
	}
}

func TestNotifierDrain(t *testing.T) {
	n := &notifier{}
	n.ShowError("Error", "boom")
	n.ShowItem(catalog.ProductListItem{ID: 1})

	got := n.drain()
	if len(got) != 2 {
		t.Fatalf("drain = %d modals, want 2", len(got))
	}
	if _, ok := got[0].(*errorModal); !ok {
		t.Fatalf("first modal = %T", got[0])
	}
	if len(n.drain()) != 0 {
		t.Fatalf("second drain not empty")
	}
}
