// Package sqlite provides SQLite-backed implementations of the driven
// storage ports. A single Store owns the database connection and schema
// migrations; wrapper types expose the individual store interfaces.
package sqlite
