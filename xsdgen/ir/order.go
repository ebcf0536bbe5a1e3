package ir

import (
	"errors"
	"sort"
)

// ErrDependencyCycle is returned by SortByDependency when types reference
// each other in a cycle.
var ErrDependencyCycle = errors.New("cycle detected")

// SortByDependency returns types reordered so every type comes after the
// types it references. References to types outside the slice are ignored.
//
// The result is deterministic: when several types are ready, the one earliest
// in the input wins. On a cycle, the input order is returned together with
// ErrDependencyCycle.
func SortByDependency(types []TypeDescriptor) ([]TypeDescriptor, error) {
	index := make(map[string]int, len(types))
	for i, t := range types {
		index[t.TypeName()] = i
	}

	order, err := topoSort(len(types), func(i int) []int {
		var deps []int
		for _, ref := range References(types[i]) {
			if j, ok := index[ref]; ok && j != i {
				deps = append(deps, j)
			}
		}
		return deps
	})
	if err != nil {
		return types, err
	}

	out := make([]TypeDescriptor, len(order))
	for k, i := range order {
		out[k] = types[i]
	}
	return out, nil
}

// topoSort returns indices in dependency order.
//
// Nodes are by index in the input slice.
// depsFn(i) yields indices that must come before i.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int
	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, ErrDependencyCycle
	}

	return order, nil
}
