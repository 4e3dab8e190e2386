package layout_test

import (
	"fmt"

	"github.com/katalvlaran/lvlayout/layout"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleGenerator_GenerateTopLayouts
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three square images in a 3:1 container. The plain horizontal run
//	tiles the container exactly — full coverage, uniform scale, uniform
//	area — so it ranks first with a perfect score.
//
// ExampleGenerator_GenerateTopLayouts demonstrates bounded generation.
func ExampleGenerator_GenerateTopLayouts() {
	gen, err := layout.NewGenerator(layout.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	images := layout.Sizes([]layout.Size{
		{Width: 100, Height: 100},
		{Width: 100, Height: 100},
		{Width: 100, Height: 100},
	})
	layouts, err := gen.GenerateTopLayouts(images, layout.Size{Width: 300, Height: 100}, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	best := layouts[0]
	fmt.Printf("score: %.3f\n", best.Score)
	for i, r := range best.Regions {
		fmt.Printf("slot %d: %.0f×%.0f at (%.0f,%.0f)\n", i, r.Width, r.Height, r.X, r.Y)
	}
	// Output:
	// score: 1.000
	// slot 0: 100×100 at (0,0)
	// slot 1: 100×100 at (100,0)
	// slot 2: 100×100 at (200,0)
}

// ExampleGenerator_GenerateLayouts demonstrates unbounded generation:
// two squares in a wide container yield one layout per orientation of
// the single run, ranked by score.
func ExampleGenerator_GenerateLayouts() {
	gen, err := layout.NewGenerator(layout.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	images := layout.Sizes([]layout.Size{
		{Width: 100, Height: 100},
		{Width: 100, Height: 100},
	})
	layouts, err := gen.GenerateLayouts(images, layout.Size{Width: 300, Height: 100})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("layouts: %d\n", len(layouts))
	for rank, l := range layouts {
		fmt.Printf("#%d score=%.4f\n", rank+1, l.Score)
	}
	// Output:
	// layouts: 2
	// #1 score=0.8165
	// #2 score=0.4082
}
