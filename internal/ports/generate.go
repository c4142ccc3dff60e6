// Package ports defines the interfaces between the lookup core and its adapters.
// Upstream sources, the cache backend, logging and metrics all sit behind these
// contracts. Mocks for the core and API tests are generated into internal/mocks.
//
//go:generate mockery
package ports
