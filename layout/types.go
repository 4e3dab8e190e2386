// Package layout defines the public data model, configuration options
// and sentinel errors of the layout engine.
//
// Design goals:
//   - Mathematical rigor: precise, specialized errors; explicit invariants
//     on every returned rectangle and score.
//   - Determinism: fixed inputs always produce the same ranked list.
//   - Zero surprises: sensible defaults (no spacing, unbounded split
//     depth, sequential execution).
package layout

import "errors"

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation and internal consistency)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrNoImages indicates an empty image sequence.
	ErrNoImages = errors.New("layout: at least one image is required")

	// ErrNonPositiveImage indicates an image whose width or height is <= 0.
	ErrNonPositiveImage = errors.New("layout: image sizes must be strictly positive")

	// ErrNonPositiveContainer indicates a container whose width or height is <= 0.
	ErrNonPositiveContainer = errors.New("layout: container size must be strictly positive")

	// ErrNegativeSpacing indicates a negative horizontal or vertical gap.
	ErrNegativeSpacing = errors.New("layout: spacing must be non-negative")

	// ErrBadSplitLimit indicates a split-level limit below NoSplitLimit.
	ErrBadSplitLimit = errors.New("layout: split level limit must be NoSplitLimit or >= 0")

	// ErrBadParallelism indicates Options.Parallelism < 1.
	ErrBadParallelism = errors.New("layout: parallelism must be >= 1")

	// ErrBadResultLimit indicates a negative result count limit.
	ErrBadResultLimit = errors.New("layout: result count limit must be >= 0")

	// ErrInconsistentParams indicates a solved tree whose parameters fit
	// no root size at all. This cannot happen for well-formed inputs and
	// signals a programming error rather than a rejectable layout.
	ErrInconsistentParams = errors.New("layout: node parameters cannot fit any container size")
)

// NoSplitLimit disables the split-depth budget of the partition
// enumerator. The tree space then grows super-exponentially in the
// image count; callers should set a finite limit beyond ~6 images.
const NoSplitLimit = -1

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Geometry primitives
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Size is a width/height pair in abstract units. Size implements Image,
// so bare sizes can be passed wherever images are expected.
type Size struct {
	Width, Height float64
}

// Size returns s itself, making Size the trivial Image.
func (s Size) Size() Size { return s }

// aspect returns width/height. Callers must have validated s.
func (s Size) aspect() float64 { return s.Width / s.Height }

// Image is anything exposing a positive pixel size. The engine never
// inspects pixels; only the aspect ratio matters.
type Image interface {
	Size() Size
}

// Sizes adapts a slice of bare sizes into an image sequence.
func Sizes(sizes []Size) []Image {
	images := make([]Image, len(sizes))
	for i, s := range sizes {
		images[i] = s
	}

	return images
}

// Rect is an axis-aligned rectangle in container coordinates: the
// origin is the container's top-left corner with y growing downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Area returns Width · Height.
func (r Rect) Area() float64 { return r.Width * r.Height }

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// AlignedImageLayout is one realized arrangement.
//
// Invariants:
//   - len(Regions) == number of input images, in image order
//   - every region has strictly positive width and height, keeps its
//     image's aspect ratio, and lies inside the container
//   - the bounding rectangle of Regions touches at least one pair of
//     opposite container edges
//   - every sub-score lies in [0,1] and Score is their product
type AlignedImageLayout struct {
	// Regions holds one slot rectangle per image, in image order.
	Regions []Rect

	// ScoreOfCoverage is sqrt(bounding area / container area).
	ScoreOfCoverage float64

	// ScoreOfScaleAccordance rewards uniform image-to-slot scale factors.
	ScoreOfScaleAccordance float64

	// ScoreOfAreaAccordance rewards uniform slot areas.
	ScoreOfAreaAccordance float64

	// Score is the product of the three sub-scores.
	Score float64
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Options configures a Generator.
//
// Fields:
//
//	HorizontalSpacing - gap between horizontally adjacent slots; >= 0.
//	VerticalSpacing   - gap between vertically adjacent slots; >= 0.
//	SplitLevelLimit   - maximum split depth of enumerated partition
//	                    trees. NoSplitLimit means unbounded.
//	Parallelism       - number of concurrent workers realizing and
//	                    scoring oriented trees. 1 means sequential; any
//	                    value yields the same result list.
type Options struct {
	HorizontalSpacing float64
	VerticalSpacing   float64
	SplitLevelLimit   int
	Parallelism       int
}

// DefaultOptions returns an Options struct pre-populated with safe defaults.
//
//	HorizontalSpacing: 0.0          // slots touch
//	VerticalSpacing:   0.0          // slots touch
//	SplitLevelLimit:   NoSplitLimit // every tree
//	Parallelism:       1            // sequential
func DefaultOptions() Options {
	return Options{
		HorizontalSpacing: 0.0,
		VerticalSpacing:   0.0,
		SplitLevelLimit:   NoSplitLimit,
		Parallelism:       1,
	}
}

// Validate checks that Options fields hold a valid combination.
func (o *Options) Validate() error {
	if o.HorizontalSpacing < 0 || o.VerticalSpacing < 0 {
		return ErrNegativeSpacing
	}
	if o.SplitLevelLimit < NoSplitLimit {
		return ErrBadSplitLimit
	}
	if o.Parallelism < 1 {
		return ErrBadParallelism
	}

	return nil
}
