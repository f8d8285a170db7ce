// Package config loads satchel's client settings.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults
//  2. The TOML file at ~/.config/satchel/config.toml (or an explicit path)
//  3. SATCHEL_* environment variables, with an optional .env file in the
//     working directory loaded first
//
// A missing config file is not an error.
//
// # TOML Format
//
//	api_base = "127.0.0.1:8088"
//	products_path = "/api/products"
//	page_limit = 10
//	log_file = "~/.local/state/satchel/satchel.log"
//	log_level = "info"
//
// Every key is optional. Tilde expansion is applied to log_file, and a
// log_file of "-" turns file logging off.
//
// # Environment
//
//	SATCHEL_API_BASE, SATCHEL_PRODUCTS_PATH, SATCHEL_PAGE_LIMIT,
//	SATCHEL_LOG_FILE, SATCHEL_LOG_LEVEL
package config
