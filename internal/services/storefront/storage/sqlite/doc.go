// Package sqlite provides the storefront persistence adapter backed by SQLite.
//
// Sessions and cache entries are disposable; store settings are the only
// state the storefront owns outright.
package sqlite
