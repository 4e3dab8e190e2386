// Package layout - geometric realization of solved oriented trees.
//
// Realization is the only step that sees the container: the root's
// linear relations pick the unique scale filling the container in one
// axis without exceeding the other, the root rectangle is centered, and
// the tree is sliced recursively into per-image slots. Trees that do
// not fit (typically because accumulated spacing exceeds an internal
// dimension) are rejected rather than errored: rejection is an
// expected, per-tree outcome that the generator silently skips.
package layout

// realizer instantiates one solved tree inside a fixed container.
type realizer struct {
	container Size
	aspects   []float64
	hGap      float64
	vGap      float64
}

// realize returns the root rectangle and one slot rectangle per image,
// in image order. ok is false when the tree cannot be instantiated in
// the container. A non-nil error signals contradictory parameters and
// is a programming error, never a property of the inputs.
func (r *realizer) realize(root *layoutNode, imageCount int) (Rect, []Rect, bool, error) {
	// 1) Root sizing: prefer filling the container's height; fall back
	//    to filling its width.
	var w, h float64
	switch {
	case root.params.a*r.container.Height+root.params.b <= r.container.Width:
		h = r.container.Height
		w = root.params.a*h + root.params.b
	case root.params.c*r.container.Width+root.params.d <= r.container.Height:
		w = r.container.Width
		h = root.params.c*w + root.params.d
	default:
		return Rect{}, nil, false, ErrInconsistentParams
	}

	// 2) A relation with a negative constant term can make the dimension
	//    computed from it non-positive in a small container.
	if w <= 0 || h <= 0 {
		return Rect{}, nil, false, nil
	}

	// 3) Center the root and slice it down to the leaves.
	rootRect := Rect{
		X:      (r.container.Width - w) / 2,
		Y:      (r.container.Height - h) / 2,
		Width:  w,
		Height: h,
	}
	regions := make([]Rect, imageCount)
	if !r.slice(root, rootRect, regions) {
		return Rect{}, nil, false, nil
	}

	return rootRect, regions, true, nil
}

// slice cuts rect into n's children (slots for runs, sub-rectangles for
// groups) and recurses. It reports false as soon as any dimension would
// be non-positive.
func (r *realizer) slice(n *layoutNode, rect Rect, regions []Rect) bool {
	if n.orient == horizontal {
		return r.sliceHorizontal(n, rect, regions)
	}

	return r.sliceVertical(n, rect, regions)
}

// sliceHorizontal advances left-to-right, giving every child its solved
// width at the node's full height.
func (r *realizer) sliceHorizontal(n *layoutNode, rect Rect, regions []Rect) bool {
	// Reject when the gaps alone leave no room for the children.
	segments := n.count
	if !n.isRun() {
		segments = len(n.children)
	}
	if rect.Width <= r.hGap*float64(segments-1) {
		return false
	}

	x := rect.X
	if n.isRun() {
		for i := 0; i < n.count; i++ {
			w := rect.Height * r.aspectOf(n.start+i)
			regions[n.start+i] = Rect{X: x, Y: rect.Y, Width: w, Height: rect.Height}
			x += w + r.hGap
		}

		return true
	}

	for _, kid := range n.children {
		w := rect.Height*kid.params.a + kid.params.b
		if w <= 0 {
			return false
		}
		if !r.slice(kid, Rect{X: x, Y: rect.Y, Width: w, Height: rect.Height}, regions) {
			return false
		}
		x += w + r.hGap
	}

	return true
}

// sliceVertical advances top-to-bottom, giving every child its solved
// height at the node's full width.
func (r *realizer) sliceVertical(n *layoutNode, rect Rect, regions []Rect) bool {
	segments := n.count
	if !n.isRun() {
		segments = len(n.children)
	}
	if rect.Height <= r.vGap*float64(segments-1) {
		return false
	}

	y := rect.Y
	if n.isRun() {
		for i := 0; i < n.count; i++ {
			h := rect.Width / r.aspectOf(n.start+i)
			regions[n.start+i] = Rect{X: rect.X, Y: y, Width: rect.Width, Height: h}
			y += h + r.vGap
		}

		return true
	}

	for _, kid := range n.children {
		h := rect.Width*kid.params.c + kid.params.d
		if h <= 0 {
			return false
		}
		if !r.slice(kid, Rect{X: rect.X, Y: y, Width: rect.Width, Height: h}, regions) {
			return false
		}
		y += h + r.vGap
	}

	return true
}

// aspects is threaded through the realizer for run slicing.
func (r *realizer) aspectOf(i int) float64 { return r.aspects[i] }
