package partition_test

import (
	"fmt"

	"github.com/katalvlaran/lvlayout/partition"
)

// ExampleEnumerate lists every partition tree of four positions whose
// split depth stays at one: the base run plus each non-trivial ordered
// composition of 4 (the all-ones composition is never emitted).
func ExampleEnumerate() {
	trees, err := partition.Enumerate(4, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, tree := range trees {
		fmt.Println(tree)
	}
	// Output:
	// 4
	// [1 3]
	// [2 2]
	// [1 1 2]
	// [3 1]
	// [1 2 1]
	// [2 1 1]
}

// ExampleCount shows the super-exponential growth of the unbounded
// tree space — the reason callers cap the split depth for larger n.
func ExampleCount() {
	for n := 1; n <= 6; n++ {
		count, err := partition.Count(n, partition.NoLimit)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("n=%d → %d\n", n, count)
	}
	// Output:
	// n=1 → 1
	// n=2 → 1
	// n=3 → 3
	// n=4 → 11
	// n=5 → 45
	// n=6 → 197
}
