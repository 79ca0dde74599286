// Package database owns the connection to the forum store: configuration,
// dialect selection (MySQL, PostgreSQL, SQLite), the process-wide accessor,
// query hooks, schema creation and SQL seeding.
package database
