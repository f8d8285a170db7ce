// Package ui implements the satchel terminal interface with Bubble Tea.
//
// Model owns the screen and delegates all catalog behaviour to a
// listing.ViewModel. Fetches run as tea.Cmds with a timeout; the view model
// reports failures and item selections through a notifier that queues
// modals until the fetch completes, and route changes through a small
// router (the product list and the cart).
//
// Views:
//
//   - Product list: category tabs, title search, windowed rows and a page
//     footer. The filter drawer (F) renders beside the list.
//   - Modals: product details, fetch errors, filter checkboxes, the session
//     log and key help. The topmost modal receives keys.
//   - Cart: placeholder screen; esc returns to the list.
//
// Theme and sort choices persist to the prefs file.
package ui
