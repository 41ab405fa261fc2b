// Package service contains the application use cases. It orchestrates domain
// entities and the persistence interfaces from internal/store.
//
// Every read-modify-write runs inside store.RunInTransaction and loads the
// row it mutates with a locking read (GetBy...ForUpdate), so concurrent
// requests against the same competitor, event or workout are serialized by
// the database. Password hashing goes through a HashGate that bounds how many
// bcrypt computations run at once.
//
// Errors from the store are wrapped with %w and never swallowed; callers test
// them with errors.Is against the store and domain sentinels or the ones
// declared here.
package service
