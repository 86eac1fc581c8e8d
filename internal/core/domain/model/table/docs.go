// Package table models dining tables and their occupancy.
package table
