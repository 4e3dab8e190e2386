// Package layout turns partition trees into ranked aligned image
// layouts: concrete, scored slot rectangles inside a container.
//
// 🚀 What is an aligned image layout?
//
//	An arrangement of a fixed, ordered image sequence in which every
//	slot has exactly its image's aspect ratio, every slot edge aligns
//	with a container edge or another slot edge, the container is fully
//	covered in at least one axis, and slots are separated by constant
//	horizontal and vertical spacing.
//
// ✨ Pipeline, leaves first:
//   - orientation expansion — each partition tree becomes two oriented
//     trees (horizontal-rooted and vertical-rooted), orientation
//     alternating at every group boundary
//   - parameter solving — every node receives linear relations
//     w = a·h + b and h = c·w + d, propagated bottom-up from image
//     aspect ratios and spacing
//   - geometric realization — the unique scale filling the container in
//     one axis is picked, the root is centered, and the rectangle is
//     recursively sliced into slots; impossible trees are skipped
//   - scoring — coverage, scale accordance and area accordance multiply
//     into a single score in [0,1]
//   - collection — all layouts sorted by score, or a bounded top-K list
//
// ⚙️ Usage:
//
//	gen, err := layout.NewGenerator(layout.DefaultOptions())
//	best, err := gen.GenerateTopLayouts(images, container, 5)
//
// The engine performs no I/O, keeps no per-call state, and is safe for
// concurrent use; see Options.Parallelism for in-call parallelism.
//
// See example_test.go and cmd/lvlayout for worked runs.
package layout
