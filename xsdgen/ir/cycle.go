package ir

// ValueReferences returns the names of the types td holds by value: the
// references that are not inside an ArrayDescriptor. When optionalIndirect
// is set, references inside an OptionalDescriptor are skipped as well, for
// targets that render optionals as pointers.
func ValueReferences(td TypeDescriptor, optionalIndirect bool) []string {
	var refs []string
	seen := make(map[string]bool)

	var walk func(TypeDescriptor)
	walk = func(td TypeDescriptor) {
		switch d := td.(type) {
		case *ReferenceDescriptor:
			if !seen[d.Target] {
				seen[d.Target] = true
				refs = append(refs, d.Target)
			}
		case *OptionalDescriptor:
			if !optionalIndirect {
				walk(d.Element)
			}
		case *StructDescriptor:
			for _, f := range d.Fields {
				walk(f.Type)
			}
		case *AliasDescriptor:
			walk(d.Underlying)
		}
	}
	walk(td)
	return refs
}

// RecursiveGroups finds the types that reach themselves through edges and
// groups them by strongly connected component. The result maps each such
// type name to its group number; types outside every cycle are absent.
// Edges to names not defined in types are ignored.
func RecursiveGroups(types []TypeDescriptor, edges func(TypeDescriptor) []string) map[string]int {
	index := make(map[string]int, len(types))
	for i, t := range types {
		index[t.TypeName()] = i
	}

	adj := make([][]int, len(types))
	selfLoop := make([]bool, len(types))
	for i, t := range types {
		for _, ref := range edges(t) {
			j, ok := index[ref]
			if !ok {
				continue
			}
			if j == i {
				selfLoop[i] = true
			}
			adj[i] = append(adj[i], j)
		}
	}

	comp := tarjan(adj)

	size := make(map[int]int)
	for _, c := range comp {
		size[c]++
	}

	groups := make(map[string]int)
	for i, t := range types {
		if size[comp[i]] > 1 || selfLoop[i] {
			groups[t.TypeName()] = comp[i]
		}
	}
	return groups
}

// tarjan returns the strongly connected component of every node.
func tarjan(adj [][]int) []int {
	n := len(adj)
	comp := make([]int, n)
	low := make([]int, n)
	order := make([]int, n)
	onStack := make([]bool, n)
	for i := range order {
		order[i] = -1
	}

	var stack []int
	next, ncomp := 0, 0

	var visit func(v int)
	visit = func(v int) {
		order[v], low[v] = next, next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adj[v] {
			switch {
			case order[w] < 0:
				visit(w)
				low[v] = min(low[v], low[w])
			case onStack[w]:
				low[v] = min(low[v], order[w])
			}
		}

		if low[v] == order[v] {
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp[w] = ncomp
				if w == v {
					break
				}
			}
			ncomp++
		}
	}

	for v := range n {
		if order[v] < 0 {
			visit(v)
		}
	}
	return comp
}
