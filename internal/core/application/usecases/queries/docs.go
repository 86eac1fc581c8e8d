// Package queries holds the read side: projections served straight from the
// store without loading aggregates or taking locks.
package queries
