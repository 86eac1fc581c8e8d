// Package order contains the Order aggregate and its lines.
//
// The aggregate owns two state machines. Order status follows an explicit
// allowed-transition table keyed by (current status, operation), see status.go.
// Item status only moves forward from Pending towards Ready.
//
// The aggregate performs no I/O. Command handlers load it under a row lock,
// call one of its methods and persist the result in the same transaction.
package order
