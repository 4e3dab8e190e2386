// Package layout - orientation expansion and bottom-up parameter solving.
//
// Every node of an oriented tree satisfies two equivalent linear
// relations between its rectangle's width w and height h:
//
//	w = a·h + b    and    h = c·w + d
//
// with a·c = 1 and a·d + b = 0. Only one pair is computed directly per
// node, chosen by the node's orientation; the other is derived by
// inversion. The b and d terms accumulate spacing: a run's directly
// computed term is non-negative and its derived term is at most zero.
// A group's direct term adds its own gaps to its children's terms of
// the same relation, which for the flipped children are derived ones,
// so a group's direct term can be negative as well.
package layout

import "github.com/katalvlaran/lvlayout/partition"

// orientation is the layout direction of a node's children.
type orientation uint8

const (
	// horizontal lays children side-by-side, sharing the node's height.
	horizontal orientation = iota

	// vertical stacks children, sharing the node's width.
	vertical
)

// flipped returns the opposite orientation.
func (o orientation) flipped() orientation { return o ^ 1 }

// orientations fixes the expansion order of the two root variants:
// horizontal first. Determinism of the result list depends on it.
var orientations = [2]orientation{horizontal, vertical}

// nodeParams carries both linear relations of one node.
type nodeParams struct {
	a, b float64 // w = a·h + b
	c, d float64 // h = c·w + d
}

// paramsByWidth builds nodeParams from a directly computed width
// relation, deriving the height relation by inversion.
func paramsByWidth(a, b float64) nodeParams {
	return nodeParams{a: a, b: b, c: 1 / a, d: -b / a}
}

// paramsByHeight builds nodeParams from a directly computed height
// relation, deriving the width relation by inversion.
func paramsByHeight(c, d float64) nodeParams {
	return nodeParams{a: 1 / c, b: -d / c, c: c, d: d}
}

// layoutNode is one node of a solved oriented tree. Oriented trees are
// per-call scratch values: built, realized, scored and dropped.
type layoutNode struct {
	orient orientation

	// Runs only: index of the first image and number of images covered.
	start, count int

	// Groups only: children in order, each carrying the flipped
	// orientation of this node.
	children []*layoutNode

	params nodeParams
}

// isRun reports whether n covers images directly.
func (n *layoutNode) isRun() bool { return n.children == nil }

// solver walks partition trees bottom-up, producing solved oriented
// trees for one generation call. aspects[i] is the width/height ratio
// of image i; the running cursor threads the image index so every run
// sees its correct slice of the sequence.
type solver struct {
	aspects []float64
	hGap    float64
	vGap    float64
}

// solve produces the oriented tree of t rooted at orient, with every
// node's parameters filled in.
func (s *solver) solve(t *partition.Node, orient orientation) *layoutNode {
	root, _ := s.solveAt(t, orient, 0)

	return root
}

// solveAt solves the subtree t at the given image cursor and returns
// the node together with the cursor advanced past its images.
func (s *solver) solveAt(t *partition.Node, orient orientation, cursor int) (*layoutNode, int) {
	// 1) Runs: fold the covered aspect ratios directly.
	if t.IsRun() {
		count := t.Len()
		node := &layoutNode{orient: orient, start: cursor, count: count}
		node.params = s.runParams(orient, cursor, count)

		return node, cursor + count
	}

	// 2) Groups: solve the children under the flipped orientation,
	//    then fold their parameters along this node's axis.
	kids := t.Children()
	node := &layoutNode{orient: orient, children: make([]*layoutNode, len(kids))}
	for i, kid := range kids {
		node.children[i], cursor = s.solveAt(kid, orient.flipped(), cursor)
	}
	node.params = s.groupParams(orient, node.children)

	return node, cursor
}

// runParams computes the direct relation of a run of count images
// starting at image index start.
//
//	horizontal: shared height  ⇒ w = (Σ α)·h + s_h·(count−1)
//	vertical:   shared width   ⇒ h = (Σ α⁻¹)·w + s_v·(count−1)
func (s *solver) runParams(orient orientation, start, count int) nodeParams {
	if orient == horizontal {
		a := 0.0
		for _, alpha := range s.aspects[start : start+count] {
			a += alpha
		}

		return paramsByWidth(a, s.hGap*float64(count-1))
	}

	c := 0.0
	for _, alpha := range s.aspects[start : start+count] {
		c += 1 / alpha
	}

	return paramsByHeight(c, s.vGap*float64(count-1))
}

// groupParams folds solved children along the group's axis.
//
//	horizontal: w = (Σ a_child)·h + s_h·(n−1) + Σ b_child
//	vertical:   h = (Σ c_child)·w + s_v·(n−1) + Σ d_child
func (s *solver) groupParams(orient orientation, children []*layoutNode) nodeParams {
	if orient == horizontal {
		a, b := 0.0, s.hGap*float64(len(children)-1)
		for _, kid := range children {
			a += kid.params.a
			b += kid.params.b
		}

		return paramsByWidth(a, b)
	}

	c, d := 0.0, s.vGap*float64(len(children)-1)
	for _, kid := range children {
		c += kid.params.c
		d += kid.params.d
	}

	return paramsByHeight(c, d)
}
