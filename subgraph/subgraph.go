// Package subgraph partitions a normalised mapping graph into one
// self-contained subgraph per triples-map root.
package subgraph

import "github.com/geoknoesis/rml2ra/graph"

// Extract performs a DFS from tm over triples, following every outgoing
// edge from a visited node, with one rule: after the first
// predicateObjectMap edge is crossed along the traversal, every further
// predicateObjectMap edge is skipped. That rule is tracked with a single
// flag shared across the whole traversal of this root, not per node —
// the separation pass upstream guarantees each triples-map has at most
// one POM left, so this only matters for not-yet-separated inputs.
func Extract(triples []graph.Triple, tm string) []graph.Triple {
	var result []graph.Triple
	visited := map[string]bool{}
	stack := []string{tm}
	foundFirstPOM := false

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, t := range triples {
			if t.Subject != current {
				continue
			}

			if t.Predicate == graph.R2RMLPredicateObjectMap {
				if foundFirstPOM {
					continue
				}
				foundFirstPOM = true
			}

			result = append(result, t)

			if (graph.IsBlankNode(t.Object) || graph.IsIRI(t.Object)) && !visited[t.Object] {
				stack = append(stack, t.Object)
			}
		}
	}

	return result
}

// Separate builds one subgraph per triples-map root, discarding any
// subgraph that lacks a subjectMap, predicateMap, or objectMap edge —
// the normalised-graph invariant every later phase relies on.
func Separate(triplesMaps []string, triples []graph.Triple) [][]graph.Triple {
	var out [][]graph.Triple

	for _, tm := range triplesMaps {
		sub := Extract(triples, tm)

		var hasSubjectMap, hasPredicateMap, hasObjectMap bool
		for _, t := range sub {
			switch t.Predicate {
			case graph.R2RMLSubjectMap:
				hasSubjectMap = true
			case graph.R2RMLPredicateMap:
				hasPredicateMap = true
			case graph.R2RMLObjectMap:
				hasObjectMap = true
			}
		}

		if hasSubjectMap && hasPredicateMap && hasObjectMap {
			out = append(out, sub)
		}
	}

	return out
}
