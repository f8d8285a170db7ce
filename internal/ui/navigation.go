package ui

import (
	"errors"
	"strings"
	"sync"

	"github.com/five82/satchel/internal/catalog"
)

// router is the listing.Navigator for the TUI: a stack of routes where the
// empty route is the product list.
type router struct {
	mu    sync.Mutex
	stack []string
}

func (r *router) Push(route string) error {
	route = strings.TrimSpace(route)
	if route == "" {
		return errors.New("empty route")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if n := len(r.stack); n > 0 && r.stack[n-1] == route {
		return nil
	}
	r.stack = append(r.stack, route)
	return nil
}

// Back pops the current route and reports whether there was one.
func (r *router) Back() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.stack) == 0 {
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

// Current returns the active route, "" for the product list.
func (r *router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.stack) == 0 {
		return ""
	}
	return r.stack[len(r.stack)-1]
}

// notifier is the listing.Notifier for the TUI. Controller calls may run on
// command goroutines, so modals are queued and drained by Update.
type notifier struct {
	mu      sync.Mutex
	pending []Modal
}

func (n *notifier) ShowError(title, content string) {
	n.push(newErrorModal(title, content))
}

func (n *notifier) ShowItem(item catalog.ProductListItem) {
	n.push(newItemModal(item))
}

func (n *notifier) push(m Modal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, m)
}

func (n *notifier) drain() []Modal {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.pending
	n.pending = nil
	return out
}
