// Package storage declares persistence contracts for storefront-owned state.
//
// The backend API owns users, products and orders. The storefront only
// keeps sessions, vendor store settings and derived catalog cache entries.
package storage
