// Package layout - unified entry points for layout generation.
//
// This file provides the canonical generator surface:
//
//   - GenerateLayouts: every realizable layout, ranked by score.
//   - GenerateTopLayouts: the best K layouts under a result cap.
//   - *Context variants: cancellation checked between partition trees,
//     the outermost loop of the pipeline.
//
// Design principles:
//   - Deterministic: fixed inputs yield the same ranked list at any
//     Parallelism setting; workers fill pre-indexed slots and results
//     are collected in sequential encounter order.
//   - Strict sentinels: only errors from types.go, plus the context's
//     error when a *Context call is cancelled.
//   - Hot-path discipline: aspects computed once, one scratch oriented
//     tree per (partition tree, orientation) pair, no hidden I/O.
package layout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/lvlayout/partition"
)

// Generator produces aligned image layouts under one fixed Options set.
// A Generator is immutable and safe for concurrent use.
type Generator struct {
	opts Options
}

// NewGenerator validates opts and returns a ready Generator.
//
// Errors: ErrNegativeSpacing, ErrBadSplitLimit, ErrBadParallelism.
func NewGenerator(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Generator{opts: opts}, nil
}

// Options returns the generator's configuration.
func (g *Generator) Options() Options { return g.opts }

// GenerateLayouts returns every realizable layout of images inside
// container, sorted by score descending.
func (g *Generator) GenerateLayouts(images []Image, container Size) ([]AlignedImageLayout, error) {
	return g.GenerateLayoutsContext(context.Background(), images, container)
}

// GenerateTopLayouts returns at most limit layouts, best first. A limit
// of 0 returns an empty list without enumerating anything.
func (g *Generator) GenerateTopLayouts(images []Image, container Size, limit int) ([]AlignedImageLayout, error) {
	return g.GenerateTopLayoutsContext(context.Background(), images, container, limit)
}

// GenerateLayoutsContext is GenerateLayouts with cancellation observed
// between partition trees.
func (g *Generator) GenerateLayoutsContext(ctx context.Context, images []Image, container Size) ([]AlignedImageLayout, error) {
	return g.generate(ctx, images, container, unbounded)
}

// GenerateTopLayoutsContext is GenerateTopLayouts with cancellation
// observed between partition trees.
func (g *Generator) GenerateTopLayoutsContext(ctx context.Context, images []Image, container Size, limit int) ([]AlignedImageLayout, error) {
	if limit < 0 {
		return nil, ErrBadResultLimit
	}
	if limit == 0 {
		// A zero cap short-circuits before any validation or work.
		return []AlignedImageLayout{}, nil
	}

	return g.generate(ctx, images, container, limit)
}

// candidate is the realization outcome of one oriented tree, held in
// its encounter-order slot until collection.
type candidate struct {
	layout AlignedImageLayout
	ok     bool
}

// generate runs the full pipeline. limit is unbounded or >= 1.
func (g *Generator) generate(ctx context.Context, images []Image, container Size, limit int) ([]AlignedImageLayout, error) {
	// 1) Validate inputs and derive per-image aspect ratios.
	sizes, aspects, err := imageSizes(images)
	if err != nil {
		return nil, err
	}
	if container.Width <= 0 || container.Height <= 0 {
		return nil, ErrNonPositiveContainer
	}

	// 2) Enumerate (or recall) the partition tree space.
	trees, err := partition.Enumerate(len(images), g.opts.SplitLevelLimit)
	if err != nil {
		return nil, err
	}

	// 3) Solve, realize and score every oriented tree.
	sol := &solver{aspects: aspects, hGap: g.opts.HorizontalSpacing, vGap: g.opts.VerticalSpacing}
	rea := &realizer{container: container, aspects: aspects, hGap: g.opts.HorizontalSpacing, vGap: g.opts.VerticalSpacing}

	candidates := make([]candidate, 2*len(trees))
	if g.opts.Parallelism == 1 {
		err = g.realizeSequential(ctx, trees, sol, rea, sizes, container, candidates)
	} else {
		err = g.realizeParallel(ctx, trees, sol, rea, sizes, container, candidates)
	}
	if err != nil {
		return nil, err
	}

	// 4) Collect in encounter order so ties resolve identically at any
	//    Parallelism setting.
	col := newCollector(limit)
	for _, cand := range candidates {
		if cand.ok {
			col.add(cand.layout)
		}
	}

	return col.results(), nil
}

// realizeOne processes both orientations of trees[ti] into their slots.
func (g *Generator) realizeOne(ti int, tree *partition.Node, sol *solver, rea *realizer, sizes []Size, container Size, candidates []candidate) error {
	for oi, orient := range orientations {
		root := sol.solve(tree, orient)
		rootRect, regions, ok, err := rea.realize(root, len(sizes))
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		candidates[2*ti+oi] = candidate{
			layout: scoreLayout(rootRect, regions, sizes, container),
			ok:     true,
		}
	}

	return nil
}

// realizeSequential is the Parallelism == 1 path.
func (g *Generator) realizeSequential(ctx context.Context, trees []*partition.Node, sol *solver, rea *realizer, sizes []Size, container Size, candidates []candidate) error {
	for ti, tree := range trees {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.realizeOne(ti, tree, sol, rea, sizes, container, candidates); err != nil {
			return err
		}
	}

	return nil
}

// realizeParallel fans partition trees across Parallelism workers. A
// weighted semaphore bounds concurrency; each worker owns disjoint
// candidate slots, so no locking is needed on the results themselves.
func (g *Generator) realizeParallel(ctx context.Context, trees []*partition.Node, sol *solver, rea *realizer, sizes []Size, container Size, candidates []candidate) error {
	sem := semaphore.NewWeighted(int64(g.opts.Parallelism))

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	for ti, tree := range trees {
		// Acquire blocks until a worker slot frees up; a cancelled
		// context surfaces here, between trees.
		if err := sem.Acquire(ctx, 1); err != nil {
			errMu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			errMu.Unlock()

			break
		}

		wg.Add(1)
		go func(ti int, tree *partition.Node) {
			defer wg.Done()
			defer sem.Release(1)

			if err := g.realizeOne(ti, tree, sol, rea, sizes, container, candidates); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		}(ti, tree)
	}
	wg.Wait()

	return firstErr
}

// imageSizes validates the sequence and extracts sizes plus aspects.
func imageSizes(images []Image) ([]Size, []float64, error) {
	if len(images) == 0 {
		return nil, nil, ErrNoImages
	}

	sizes := make([]Size, len(images))
	aspects := make([]float64, len(images))
	for i, img := range images {
		s := img.Size()
		if s.Width <= 0 || s.Height <= 0 {
			return nil, nil, ErrNonPositiveImage
		}
		sizes[i] = s
		aspects[i] = s.aspect()
	}

	return sizes, aspects, nil
}
