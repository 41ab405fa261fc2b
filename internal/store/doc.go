// Package store defines the persistence interfaces the services depend on.
// Implementations enforce the column constraints (unique usernames, unique
// workout names, required fields) and report violations through the errors
// in this package; callers must never swallow them.
package store
