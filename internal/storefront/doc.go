// Package storefront provides an HTTP client for the storefront product API.
//
// # Overview
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the storefront API schema
//
// # Client Usage
//
//	client, err := storefront.NewClient("127.0.0.1:8088", "/api/products")
//	if err != nil {
//		return err
//	}
//
//	page, err := client.FetchProducts(ctx, storefront.ProductQuery{Offset: 0, Limit: 10})
//
// # API Endpoints
//
//   - GET <products path>?offset=&limit=&product_type=: one page of products,
//     its pagination window and optional filter groups
//
// Query parameters are only sent when set; the server applies its own
// defaults otherwise.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and User-Agent: satchel/0.1
//   - Carry a fresh X-Request-ID so backend logs can be correlated
//   - Have a 5-second timeout
//
// # Error Handling
//
//   - Client initialization errors: invalid api_base
//   - Network errors: connection refused, timeout, DNS failure
//   - HTTP errors: any status >= 400 ("api /api/products returned status 500")
//   - Decode errors: malformed JSON ("decode response: ...")
//
// The client never swallows errors; the fetch command decides how failures
// reach the UI.
package storefront
