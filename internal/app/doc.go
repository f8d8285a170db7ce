// Package app is the composition root for the satchel TUI.
//
// Run wires the pieces together and blocks until the UI exits:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> LoadConfig()                 TOML + SATCHEL_* env + flags
//	       ├─────> prefs.Load()                 theme and sort
//	       ├─────> logging.NewFile()            logrus to the log file
//	       ├─────> storefront.NewClient()       HTTP client
//	       ├─────> command.NewFetchProducts()   writes into state.Store
//	       └─────> ui.Run()                     Bubble Tea program (blocks)
//
// There is no background poller. Products are fetched when the list
// initializes and when the user pages, loads more or refreshes.
//
// Fatal errors (returned from Run): invalid config, an unopenable log file,
// a bad API base URL, or the terminal program failing. Fetch errors are
// not fatal; the UI shows them in an error dialog.
package app
