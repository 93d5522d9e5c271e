// Package queries contains read-only operations that bypass the domain
// aggregates and read projections straight from the database. Implements the
// query side of CQRS: each query is a guard-validated value object and each
// handler owns its SQL.
package queries
