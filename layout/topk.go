// Package layout - result collection and ranking.
package layout

import "sort"

// unbounded marks a collector with no result cap.
const unbounded = -1

// collector accumulates realized layouts and hands back the ranked
// result list. Bounded collectors keep their list sorted on insert;
// for realistic caps (tens of layouts) a linear scan plus shift beats a
// heap by constant factors and keeps the tie rule trivial.
type collector struct {
	limit int // unbounded, or a cap >= 1
	items []AlignedImageLayout
}

// newCollector returns a collector for the given cap. limit must be
// unbounded or >= 1; the zero-cap case is short-circuited by the
// generator before any work happens.
func newCollector(limit int) *collector {
	return &collector{limit: limit}
}

// add admits one layout.
//
// Bounded mode keeps items sorted by score descending: the layout is
// inserted before the first strictly lower score, the tail is dropped
// past the cap, and an equal-score newcomer never displaces an
// incumbent: encounter order wins ties until the cap is reached.
func (c *collector) add(l AlignedImageLayout) {
	if c.limit == unbounded {
		c.items = append(c.items, l)

		return
	}

	for i := range c.items {
		if c.items[i].Score < l.Score {
			c.items = append(c.items, AlignedImageLayout{})
			copy(c.items[i+1:], c.items[i:])
			c.items[i] = l
			if len(c.items) > c.limit {
				c.items = c.items[:c.limit]
			}

			return
		}
	}
	if len(c.items) < c.limit {
		c.items = append(c.items, l)
	}
}

// results returns the ranked list, sorting score-descending in
// unbounded mode. The stable sort keeps equal scores in encounter
// order, matching the bounded-mode tie rule.
func (c *collector) results() []AlignedImageLayout {
	if c.items == nil {
		return []AlignedImageLayout{}
	}
	if c.limit == unbounded {
		sort.SliceStable(c.items, func(i, j int) bool {
			return c.items[i].Score > c.items[j].Score
		})
	}

	return c.items
}
