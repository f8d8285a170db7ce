// Package state provides the shared product store for Satchel.
//
// # Overview
//
// The Store holds the latest product page, its pagination window and the
// server-provided filter groups. The fetch command writes to it; the
// product-list controller and the UI read snapshots from it. Controller
// getters are recomputed from the snapshot on every read, so whatever the
// command wrote last is what the list shows.
//
//	fetch command                  listing controller / UI
//	┌────────────────┐            ┌──────────────────┐
//	│ FetchProducts()│            │                  │
//	│      ↓         │            │                  │
//	│ store.Update() │───────────→│ store.Snapshot() │
//	│ store.Append() │  (mutex)   │      ↓           │
//	│ SetFilters()   │            │ Items(), Page()  │
//	└────────────────┘            └──────────────────┘
//
// # Concurrency Model
//
// All writes come from commands triggered by the single UI loop, so the
// effective policy is last writer wins. Commands run on Bubble Tea's command
// goroutines, which is why the Store still uses a readers-writer lock:
//
//   - Update(), Append(), SetFilters(): write lock
//   - Snapshot(): read lock
//
// The lock is held only while copying, never during network I/O or rendering.
//
// # Update Semantics
//
//	store.Update(products, pagination)
//	→ snapshot.Products = products      (replaced)
//	→ snapshot.Pagination = pagination
//	→ snapshot.HasData = true
//
//	store.Append(products, pagination)
//	→ snapshot.Products = old + new     (IDs already present are replaced in place)
//	→ snapshot.Pagination = pagination
//
// A failed fetch never reaches the Store; the previous page stays visible.
//
// # Defensive Copying
//
// Update, Append, SetFilters and Snapshot all copy slices, so neither the
// caller nor a reader can mutate stored data. Products are small value
// structs and pages are tens of items, so copying costs nothing noticeable.
//
// # Testing Considerations
//
// The zero value is ready to use:
//
//	store := &state.Store{}
//
// Snapshot() on a fresh Store returns an empty Snapshot with HasData=false.
package state
