// Package lookup implements the game and user lookup endpoint. A request is
// reduced to a typed Params value, dispatched to the game or user flow and
// answered with a Response description that the transport serializes.
package lookup
