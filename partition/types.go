// Package partition defines the tree type and sentinel errors for the
// partition enumerator.
package partition

import (
	"errors"
	"strconv"
	"strings"
)

// NoLimit disables the split-depth budget: every tree, however deep,
// is enumerated. Use with care: growth is super-exponential in n.
const NoLimit = -1

// Sentinel errors for enumeration input validation.
var (
	// ErrNonPositiveLength indicates n < 1.
	ErrNonPositiveLength = errors.New("partition: sequence length must be >= 1")

	// ErrBadSplitLimit indicates a split-depth budget below NoLimit.
	ErrBadSplitLimit = errors.New("partition: split limit must be NoLimit or >= 0")
)

// Node is one node of an immutable partition tree. A Node is either a
// run, a leaf covering length ≥ 1 contiguous positions, or a group of
// ≥ 2 child nodes composed end-to-end. The zero Node is not valid;
// Nodes are only produced by Enumerate and must never be mutated:
// subtrees are shared between trees, between enumerations and between
// goroutines.
type Node struct {
	length   int     // positions covered by a run; 0 for groups
	children []*Node // nil for runs; len >= 2 for groups
}

// newRun returns a leaf covering length contiguous positions.
func newRun(length int) *Node {
	return &Node{length: length}
}

// newGroup returns a group over children. The slice is copied so
// callers may reuse their scratch buffer.
func newGroup(children []*Node) *Node {
	owned := make([]*Node, len(children))
	copy(owned, children)

	return &Node{children: owned}
}

// IsRun reports whether n is a leaf run.
func (n *Node) IsRun() bool { return n.children == nil }

// IsGroup reports whether n is an internal group node.
func (n *Node) IsGroup() bool { return n.children != nil }

// Len returns the number of positions a run covers, and 0 for groups.
func (n *Node) Len() int { return n.length }

// Children returns the group's children in order, and nil for runs.
// The returned slice is shared; treat it as read-only.
func (n *Node) Children() []*Node { return n.children }

// Span returns the total number of positions covered by the subtree.
//
// Complexity: O(size of subtree).
func (n *Node) Span() int {
	if n.IsRun() {
		return n.length
	}
	span := 0
	for _, c := range n.children {
		span += c.Span()
	}

	return span
}

// SplitDepth returns the maximum number of group nodes on any
// leaf-to-root path of the subtree. A bare run has depth 0.
func (n *Node) SplitDepth() int {
	if n.IsRun() {
		return 0
	}
	deepest := 0
	for _, c := range n.children {
		if d := c.SplitDepth(); d > deepest {
			deepest = d
		}
	}

	return deepest + 1
}

// String renders the subtree compactly: a run as its length, a group as
// its children bracketed and space-separated. Example: "[2 [1 1]]".
func (n *Node) String() string {
	if n.IsRun() {
		return strconv.Itoa(n.length)
	}
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = c.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
