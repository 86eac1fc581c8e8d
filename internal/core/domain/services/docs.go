// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - OrderRouter: the routing policy mapping menu categories to preparation
//     stations, and the builder of order lines from menu items
package services
