// Package gridgraph defines Region, Clusters and the sentinel errors of the
// gridgraph subpackage.
package gridgraph

import "github.com/katalvlaran/gridwalk/core"

// Region is a maximal 4-connected set of cells sharing one rune, listed in
// discovery (BFS) order starting from the region's first cell in scan order.
type Region []core.Point

// Clusters groups regions by the rune they are made of.
type Clusters map[rune][]Region

// Len returns the total number of regions across all runes.
func (c Clusters) Len() int {
	n := 0
	for _, regions := range c {
		n += len(regions)
	}
	return n
}

// set returns the region's cells as a lookup table.
func (r Region) set() map[core.Point]struct{} {
	s := make(map[core.Point]struct{}, len(r))
	for _, p := range r {
		s[p] = struct{}{}
	}
	return s
}
