// Package kernel holds the primitives shared by every restaurant aggregate.
// Today that is the UUID value object used as entity identifier.
package kernel
