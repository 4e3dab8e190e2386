package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlayout/layout"
)

// TestOptions_Defaults pins the documented defaults.
func TestOptions_Defaults(t *testing.T) {
	opts := layout.DefaultOptions()

	assert.Zero(t, opts.HorizontalSpacing)
	assert.Zero(t, opts.VerticalSpacing)
	assert.Equal(t, layout.NoSplitLimit, opts.SplitLevelLimit)
	assert.Equal(t, 1, opts.Parallelism)
	assert.NoError(t, opts.Validate())
}

// TestOptions_Validate enumerates every invalid field combination and
// its sentinel.
func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*layout.Options)
		want   error
	}{
		{"negative horizontal spacing", func(o *layout.Options) { o.HorizontalSpacing = -1 }, layout.ErrNegativeSpacing},
		{"negative vertical spacing", func(o *layout.Options) { o.VerticalSpacing = -0.5 }, layout.ErrNegativeSpacing},
		{"split limit below NoSplitLimit", func(o *layout.Options) { o.SplitLevelLimit = -2 }, layout.ErrBadSplitLimit},
		{"zero parallelism", func(o *layout.Options) { o.Parallelism = 0 }, layout.ErrBadParallelism},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := layout.DefaultOptions()
			tc.mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), tc.want)

			_, err := layout.NewGenerator(opts)
			assert.ErrorIs(t, err, tc.want, "NewGenerator must reject what Validate rejects")
		})
	}
}

// TestSizes_AdaptsBareSizes verifies the Size-as-Image adapter.
func TestSizes_AdaptsBareSizes(t *testing.T) {
	images := layout.Sizes([]layout.Size{{Width: 10, Height: 20}, {Width: 30, Height: 40}})

	require.Len(t, images, 2)
	assert.Equal(t, layout.Size{Width: 10, Height: 20}, images[0].Size())
	assert.Equal(t, layout.Size{Width: 30, Height: 40}, images[1].Size())
}

// TestRect_Area is a guard on the area helper used by the scorer.
func TestRect_Area(t *testing.T) {
	assert.Equal(t, 50.0, layout.Rect{Width: 10, Height: 5}.Area())
}
