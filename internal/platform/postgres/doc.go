// Package postgres provides PostgreSQL implementations of the persistence
// interfaces defined in internal/store, backed by database/sql with the pgx
// driver. It maps between domain entities and rows, translates PostgreSQL
// errors into store errors and carries the embedded goose migrations.
//
// Plan and workout-list documents are stored as TEXT in their versioned JSON
// form. Weak references (owners, a competitor's event and workout) are
// nullable UUID columns; uuid.Nil in the domain maps to NULL.
package postgres
