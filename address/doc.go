// Package address defines the opaque node/edge identifiers shared by every
// scoregraph package: a totally ordered, prefix-matchable Address built from
// a sequence of string parts.
//
// Addresses are the currency the rest of the module speaks in — hostgraph
// stores its vertices and edges keyed by Address, compiler and chain use
// Address ordering to fix the canonical node order, and scoregraph filters
// nodes/edges/neighbors by Address prefix.
//
// Two Addresses compare equal iff their part sequences are identical.
// Ordering is lexicographic over parts. HasPrefix(a, b) holds iff every
// part of b appears, in order, as a leading part of a — matching whole
// parts only, so Address{"user", "42"} does not have prefix
// Address{"user", "4"}.
package address
