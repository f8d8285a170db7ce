// Package listing drives the product list screen.
//
// A ViewModel owns the screen's flags, the pagination window, the keyword
// and sort order, and the filter modal state. It reads products from the
// shared store (or from products supplied up front), issues page fetches
// through the fetch command, and reports failures and item selections
// through a Notifier. Load-more and pull-to-refresh are debounced so a burst
// of key presses triggers at most one request.
package listing
