// Package partition enumerates abstract partition trees: every way to
// recursively split a contiguous sequence of N positions into ordered
// groups of smaller runs.
//
// 🚀 What is a partition tree?
//
//	A tree whose leaves are runs (contiguous blocks of ≥ 1 positions)
//	and whose internal nodes are groups (≥ 2 children laid end-to-end).
//	Read left to right, the leaf lengths always sum to N. Partition
//	trees carry no geometry and no orientation — they are the pure
//	combinatorial skeleton that the layout engine later orients,
//	solves and realizes.
//
// ✨ Key properties:
//   - complete: every distinct tree within the split-depth budget appears exactly once
//   - deterministic: fixed (n, limit) always yields the same order
//   - memoized: results are cached process-wide by (n, limit) and shared
//     by reference; trees are immutable and must not be modified
//   - bounded: the split-level limit is the single lever against the
//     super-exponential growth of the tree space
//
// ⚙️ Usage:
//
//	trees, err := partition.Enumerate(5, 2) // depth ≤ 2
//	all, err := partition.Enumerate(5, partition.NoLimit)
//
// Growth (unbounded): 1, 1, 3, 11, 45, 197, … — callers are expected to
// pass a finite limit for n beyond ~6.
//
// See example_test.go for worked enumerations.
package partition
