// Package layout (lvlayout) generates aligned image layouts: grid-like
// arrangements of an ordered image sequence inside a rectangular
// container, scored and ranked.
//
// 🚀 What is lvlayout?
//
//	A deterministic, CPU-bound layout engine that brings together:
//
//	  • Partition enumeration: every abstract partition tree of N slots,
//	    memoized process-wide and safely shared between goroutines
//	  • Symbolic geometry: width↔height linear relations solved bottom-up,
//	    instantiated only once per container
//	  • Scoring: coverage, scale accordance and area accordance combined
//	    into a single rankable score
//
// ✨ Why choose lvlayout?
//
//   - No cropping          — every slot keeps its image's exact aspect ratio
//   - Grid-aligned         — every slot edge meets a container or sibling edge
//   - Deterministic        — fixed inputs always produce the same ranking
//   - Pure Go              — no cgo, no I/O, no hidden state beyond one memo table
//
// Under the hood, everything is organized under two subpackages:
//
//	partition/ — abstract partition trees of N positions + process-wide memo
//	layout/    — oriented trees, parameter solver, geometric realizer,
//	             scorer, top-K collection and the Generator entry points
//
// Quick ASCII example:
//
//	    ┌───┬───────┐
//	    │ 0 │   1   │
//	    ├───┴───┬───┤
//	    │   2   │ 3 │
//	    └───────┴───┘
//
//	represents one aligned layout of four images.
//
// Dive into cmd/lvlayout for a runnable demo shell.
//
//	go get github.com/katalvlaran/lvlayout/layout
package layout
