// Package pure memoises pure functions.
//
// Tableize is a question as much as a cache: wrapping a function in it asks
// "is this really a function of its arguments alone?". Only wrap functions
// that are referentially transparent; anything reading the clock, the
// environment or I/O must stay outside.
//
// Results live in a bounded two-generation table. When the current generation
// reaches its bound it becomes the previous one and the older results are
// dropped, so memory stays within twice the bound.
package pure
