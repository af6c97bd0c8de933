// Package ra translates a subgraph's Subject/Predicate/Object/Graph
// descriptors into a relational-algebra expression string.
package ra

import (
	"fmt"
	"strings"

	"github.com/geoknoesis/rml2ra/graph"
	"github.com/geoknoesis/rml2ra/termmap"
)

// ExtractSubstrings returns every `{...}` placeholder in s, in order of
// appearance. A `{` immediately preceded by a backslash is not treated
// as the start of a placeholder. A `{` with no closing `}` after it ends
// the scan; `}` itself has no escape form.
func ExtractSubstrings(s string) []string {
	var out []string
	start := 0
	for {
		idx := strings.IndexByte(s[start:], '{')
		if idx < 0 {
			break
		}
		openPos := start + idx
		if openPos > 0 && s[openPos-1] == '\\' {
			start = openPos + 1
			continue
		}
		closePos := strings.IndexByte(s[openPos:], '}')
		if closePos < 0 {
			break
		}
		closePos += openPos
		out = append(out, s[openPos+1:closePos])
		start = closePos + 1
	}
	return out
}

// ReplaceSubstring replaces the first occurrence of toReplace in
// original with replacement, matching the source's single-shot
// std::string::replace rather than a replace-all.
func ReplaceSubstring(original, toReplace, replacement string) string {
	idx := strings.Index(original, toReplace)
	if idx < 0 {
		return original
	}
	return original[:idx] + replacement + original[idx+len(toReplace):]
}

func uniqueAppend(seen map[string]bool, order *[]string, values ...string) {
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		*order = append(*order, v)
	}
}

// attributesOf collects the reference/placeholder attributes a
// descriptor contributes to a projection.
func attributesOf(termMapType termmap.TermMapType, termMap string, seen map[string]bool, order *[]string) {
	switch termMapType {
	case termmap.TermMapTemplate:
		uniqueAppend(seen, order, ExtractSubstrings(termMap)...)
	case termmap.TermMapRefer:
		uniqueAppend(seen, order, termMap)
	}
}

// ProjectedAttributes computes the deduplicated, deterministically
// ordered set of projected attributes for a simple (no-join) tree: the
// union of references and template placeholders across subject,
// predicate, and object.
func ProjectedAttributes(subj termmap.Subject, pred termmap.Predicate, obj termmap.Object) []string {
	seen := map[string]bool{}
	var order []string
	attributesOf(subj.TermMapType, subj.TermMap, seen, &order)
	attributesOf(pred.TermMapType, pred.TermMap, seen, &order)
	attributesOf(obj.TermMapType, obj.TermMap, seen, &order)
	return order
}

// projectedAttributesLeft and projectedAttributesRight compute one side's
// projected attributes for a complex (join) tree: the left side covers
// subject and predicate, plus the join child for an equi-join; the right
// side covers the object, plus the join parent for an equi-join.
func projectedAttributesLeft(subj termmap.Subject, pred termmap.Predicate, obj termmap.Object) []string {
	seen := map[string]bool{}
	var order []string
	attributesOf(subj.TermMapType, subj.TermMap, seen, &order)
	attributesOf(pred.TermMapType, pred.TermMap, seen, &order)
	if obj.JoinType == termmap.JoinEqui {
		uniqueAppend(seen, &order, obj.JoinChild)
	}
	return order
}

func projectedAttributesRight(obj termmap.Object) []string {
	seen := map[string]bool{}
	var order []string
	attributesOf(obj.TermMapType, obj.TermMap, seen, &order)
	if obj.JoinType == termmap.JoinEqui {
		uniqueAppend(seen, &order, obj.JoinParent)
	}
	return order
}

func createTerm(termMapType termmap.TermMapType, termMap string, termType termmap.TermType, extra ...string) string {
	parts := []string{termMap, string(termMapType), string(termType)}
	parts = append(parts, extra...)
	return fmt.Sprintf("create(%s)", strings.Join(parts, ","))
}

func noneOr(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// CreateSimpleTree emits the RA expression for a triples-map with no
// parentTriplesMap: a single projection over one source, wrapped in a
// term-constructor projection.
func CreateSimpleTree(triples []graph.Triple) (string, error) {
	rootTM, err := termmap.RootTriplesMap(triples)
	if err != nil {
		return "", err
	}
	pom, err := termmap.PredicateObjectMap(triples, rootTM)
	if err != nil {
		return "", err
	}
	source, err := singleSource(triples)
	if err != nil {
		return "", err
	}

	subj, err := termmap.GetSubject(triples, rootTM)
	if err != nil {
		return "", err
	}
	pred, err := termmap.GetPredicate(triples, pom)
	if err != nil {
		return "", err
	}
	obj, err := termmap.GetObjectWithoutJoin(triples, pom)
	if err != nil {
		return "", err
	}
	graphs := termmap.GetGraphs(triples, rootTM, pom)

	attrs := ProjectedAttributes(subj, pred, obj)
	projection := fmt.Sprintf("pi[%s](%s)", strings.Join(attrs, ","), source)

	subjCreate := createTerm(subj.TermMapType, subj.TermMap, subj.TermType) + " -> S"
	predCreate := createTerm(pred.TermMapType, pred.TermMap, pred.TermType) + " -> P"
	objCreate := createTerm(obj.TermMapType, obj.TermMap, obj.TermType, noneOr(obj.LangTag), noneOr(obj.DataType)) + " -> O"

	base := strings.Join([]string{subjCreate, predCreate, objCreate}, ",")

	var lines []string
	switch {
	case len(graphs) == 1 && graphs[0].TermMap != "":
		gCreate := createTerm(graphs[0].TermMapType, graphs[0].TermMap, graphs[0].TermType) + " -> G"
		lines = append(lines, fmt.Sprintf("pi[%s,%s](%s)", base, gCreate, projection))
	case len(graphs) == 2:
		for _, g := range graphs {
			if g.TermMap == "" {
				continue
			}
			gCreate := createTerm(g.TermMapType, g.TermMap, g.TermType) + " -> G"
			lines = append(lines, fmt.Sprintf("pi[%s,%s](%s)", base, gCreate, projection))
		}
		if len(lines) == 0 {
			lines = append(lines, fmt.Sprintf("pi[%s](%s)", base, projection))
		}
	default:
		lines = append(lines, fmt.Sprintf("pi[%s](%s)", base, projection))
	}

	return strings.Join(lines, "\n") + "\n", nil
}

// CreateComplexTree emits the RA expression for a triples-map whose
// object map joins to a parentTriplesMap: two source projections
// combined with a natural or equi-join.
func CreateComplexTree(triples []graph.Triple) (string, error) {
	rootTM, err := termmap.RootTriplesMap(triples)
	if err != nil {
		return "", err
	}
	pom, err := termmap.PredicateObjectMap(triples, rootTM)
	if err != nil {
		return "", err
	}

	subj, err := termmap.GetSubject(triples, rootTM)
	if err != nil {
		return "", err
	}
	pred, err := termmap.GetPredicate(triples, pom)
	if err != nil {
		return "", err
	}
	obj, parentSource, err := termmap.GetObjectWithJoin(triples, pom)
	if err != nil {
		return "", err
	}
	graphs := termmap.GetGraphs(triples, rootTM, pom)

	source1, err := sourceOne(triples, parentSource)
	if err != nil {
		return "", err
	}

	leftAttrs := projectedAttributesLeft(subj, pred, obj)
	rightAttrs := projectedAttributesRight(obj)

	leftProjection := fmt.Sprintf("pi[%s](%s)", strings.Join(leftAttrs, ","), source1)
	rightProjection := fmt.Sprintf("pi[%s](%s)", strings.Join(rightAttrs, ","), parentSource)

	var joinNode string
	if obj.JoinType == termmap.JoinEqui {
		joinNode = fmt.Sprintf("(%s) bowtie [%s_%s=%s_%s] (%s)",
			leftProjection, source1, obj.JoinChild, parentSource, obj.JoinParent, rightProjection)

		qualifySubject(&subj, source1)
		qualifyPredicate(&pred, source1)
		qualifyObject(&obj, parentSource)
		for i := range graphs {
			qualifyGraph(&graphs[i], source1)
		}
	} else {
		joinNode = fmt.Sprintf("(%s) bowtie (%s)", leftProjection, rightProjection)
	}

	subjCreate := createTerm(subj.TermMapType, subj.TermMap, subj.TermType) + " -> S"
	predCreate := createTerm(pred.TermMapType, pred.TermMap, pred.TermType) + " -> P"
	objCreate := createTerm(obj.TermMapType, obj.TermMap, obj.TermType, noneOr(obj.LangTag), noneOr(obj.DataType)) + " -> O"

	base := strings.Join([]string{subjCreate, predCreate, objCreate}, ",")

	var lines []string
	switch {
	case len(graphs) == 1 && graphs[0].TermMap != "":
		gCreate := createTerm(graphs[0].TermMapType, graphs[0].TermMap, graphs[0].TermType) + " -> G"
		lines = append(lines, fmt.Sprintf("pi[%s,%s](%s)", base, gCreate, joinNode))
	case len(graphs) == 2:
		for _, g := range graphs {
			if g.TermMap == "" {
				continue
			}
			gCreate := createTerm(g.TermMapType, g.TermMap, g.TermType) + " -> G"
			lines = append(lines, fmt.Sprintf("pi[%s,%s](%s)", base, gCreate, joinNode))
		}
		if len(lines) == 0 {
			lines = append(lines, fmt.Sprintf("pi[%s](%s)", base, joinNode))
		}
	default:
		lines = append(lines, fmt.Sprintf("pi[%s](%s)", base, joinNode))
	}

	return strings.Join(lines, "\n") + "\n", nil
}

// Generate dispatches a normalised, single-triples-map subgraph to the
// simple-tree or complex-tree generator based on whether it carries two
// subjectMap edges (the join shape) or one.
func Generate(triples []graph.Triple) (string, error) {
	if graph.CountPredicate(triples, graph.R2RMLSubjectMap) == 2 {
		return CreateComplexTree(triples)
	}
	return CreateSimpleTree(triples)
}

func singleSource(triples []graph.Triple) (string, error) {
	sources := graph.ObjectsOf(triples, "", graph.RMLSource)
	if len(sources) == 0 {
		return "", fmt.Errorf("ra: no rml:source found in subgraph")
	}
	return sources[0], nil
}

// sourceOne applies the source-selection rule: with two rml:source
// triples present, drop the parent source from the candidate list
// (unless both are equal, in which case either value suffices).
func sourceOne(triples []graph.Triple, parentSource string) (string, error) {
	sources := graph.ObjectsOf(triples, "", graph.RMLSource)
	if len(sources) == 0 {
		return "", fmt.Errorf("ra: no rml:source found in subgraph")
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	if sources[0] == sources[1] {
		return sources[0], nil
	}
	for _, s := range sources {
		if s != parentSource {
			return s, nil
		}
	}
	return sources[0], nil
}

// qualifySubject, qualifyPredicate, and qualifyObject rewrite a
// descriptor's attribute names to be prefixed with source: each template
// placeholder `{attr}` becomes `{<source>_attr}`, and a reference
// attribute `attr` becomes `<source>_attr`.
func qualifySubject(subj *termmap.Subject, source string) {
	switch subj.TermMapType {
	case termmap.TermMapTemplate:
		for _, sub := range ExtractSubstrings(subj.TermMap) {
			replacement := fmt.Sprintf("%s_%s", source, sub)
			subj.TermMap = ReplaceSubstring(subj.TermMap, "{"+sub+"}", "{"+replacement+"}")
		}
	case termmap.TermMapRefer:
		replacement := fmt.Sprintf("%s_%s", source, subj.TermMap)
		subj.TermMap = ReplaceSubstring(subj.TermMap, subj.TermMap, replacement)
	}
}

func qualifyPredicate(pred *termmap.Predicate, source string) {
	switch pred.TermMapType {
	case termmap.TermMapTemplate:
		for _, sub := range ExtractSubstrings(pred.TermMap) {
			replacement := fmt.Sprintf("%s_%s", source, sub)
			pred.TermMap = ReplaceSubstring(pred.TermMap, "{"+sub+"}", "{"+replacement+"}")
		}
	case termmap.TermMapRefer:
		replacement := fmt.Sprintf("%s_%s", source, pred.TermMap)
		pred.TermMap = ReplaceSubstring(pred.TermMap, pred.TermMap, replacement)
	}
}

func qualifyObject(obj *termmap.Object, source string) {
	switch obj.TermMapType {
	case termmap.TermMapTemplate:
		for _, sub := range ExtractSubstrings(obj.TermMap) {
			replacement := fmt.Sprintf("%s_%s", source, sub)
			obj.TermMap = ReplaceSubstring(obj.TermMap, "{"+sub+"}", "{"+replacement+"}")
		}
	case termmap.TermMapRefer:
		replacement := fmt.Sprintf("%s_%s", source, obj.TermMap)
		obj.TermMap = ReplaceSubstring(obj.TermMap, obj.TermMap, replacement)
	}
}

// qualifyGraph rewrites a Graph descriptor's template placeholders and
// reference attribute to be prefixed with source. Unlike qualifySubject/
// qualifyPredicate/qualifyObject, its template branch searches for the
// bare placeholder name rather than `{name}`, so it rewrites the first
// occurrence of that name anywhere in the template, which may lie outside
// the braces.
func qualifyGraph(g *termmap.Graph, source string) {
	switch g.TermMapType {
	case termmap.TermMapTemplate:
		for _, sub := range ExtractSubstrings(g.TermMap) {
			replacement := fmt.Sprintf("%s_%s", source, sub)
			g.TermMap = ReplaceSubstring(g.TermMap, sub, replacement)
		}
	case termmap.TermMapRefer:
		replacement := fmt.Sprintf("%s_%s", source, g.TermMap)
		g.TermMap = ReplaceSubstring(g.TermMap, g.TermMap, replacement)
	}
}
