// Package menu models the restaurant's catalogue: menu items with a price,
// a category and an availability flag.
package menu
