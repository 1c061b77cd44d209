// Package board holds the in-memory model of one kanban board and the pure
// ordering rules that operate on it: order normalization, drop placement and
// the advisory work-in-progress check.
//
// Nothing in this package performs I/O. State is owned and mutated by the
// engine; every other component reads it.
package board
