// Package termmap resolves the Subject, Predicate, Object, and Graph
// descriptors of a single normalised subgraph.
package termmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/geoknoesis/rml2ra/graph"
)

// TermMapType identifies how a term's value is sourced.
type TermMapType string

const (
	TermMapNone     TermMapType = ""
	TermMapConstant TermMapType = "constant"
	TermMapTemplate TermMapType = "template"
	TermMapRefer    TermMapType = "reference"
)

// TermType identifies what kind of RDF term a descriptor produces.
type TermType string

const (
	TermTypeIRI       TermType = "iri"
	TermTypeBlankNode TermType = "blanknode"
	TermTypeLiteral   TermType = "literal"
)

// JoinType distinguishes an unconditioned join from one restricted by a
// single equality.
type JoinType string

const (
	JoinNone    JoinType = ""
	JoinNatural JoinType = "natural-join"
	JoinEqui    JoinType = "equi-join"
)

// Descriptor is the common shape of Subject, Predicate, and Graph.
type Descriptor struct {
	TermMapType TermMapType
	TermType    TermType
	TermMap     string
}

// Subject describes a resolved subject map.
type Subject Descriptor

// Predicate describes a resolved predicate map.
type Predicate Descriptor

// Graph describes a resolved graph map. TermMap is empty when the graph
// is the default graph (absent, or an explicit rr:defaultGraph constant).
type Graph Descriptor

// Object describes a resolved object map, including the extra fields a
// literal or a join-derived object can carry.
type Object struct {
	TermMapType TermMapType
	TermType    TermType
	TermMap     string
	LangTag     string
	DataType    string
	JoinType    JoinType
	JoinChild   string
	JoinParent  string
}

var (
	// ErrLiteralSubject is returned when a subject map declares
	// rr:termType rr:Literal, which the mapping language forbids.
	ErrLiteralSubject = errors.New("termmap: subject term type Literal is not supported")
	// ErrUnsupportedLanguageTag is returned for a language tag outside
	// the recognised allow-list.
	ErrUnsupportedLanguageTag = errors.New("termmap: unsupported language tag")
	// ErrNoTriplesMaps is returned when a subgraph has no subjectMap
	// edge, so no triples-map candidate exists.
	ErrNoTriplesMaps = errors.New("termmap: no triples-map found in subgraph")
	// ErrNoRootTriplesMap is returned when no candidate triples-map
	// carries exactly one predicateObjectMap edge.
	ErrNoRootTriplesMap = errors.New("termmap: no root triples-map with a predicateObjectMap found")
	// ErrNoPredicateObjectMap is returned when a root triples-map has no
	// (exactly one) predicateObjectMap edge.
	ErrNoPredicateObjectMap = errors.New("termmap: no predicateObjectMap found for triples-map")
)

// validLanguageSubtags is the RML-specific allow-list this compiler
// enforces, distinct from generic BCP-47 syntax checking.
var validLanguageSubtags = map[string]bool{
	"en": true, "es": true, "fr": true, "de": true, "zh": true,
	"it": true, "ja": true, "ko": true, "no": true, "pt": true,
	"ru": true, "ar": true, "cs": true, "da": true, "nl": true,
	"fi": true, "el": true, "hi": true, "hu": true, "ro": true,
}

// RootTriplesMap finds the triples-map among triples that owns exactly
// one predicateObjectMap edge.
func RootTriplesMap(triples []graph.Triple) (string, error) {
	var tms []string
	for _, t := range triples {
		if t.Predicate == graph.R2RMLSubjectMap {
			tms = append(tms, t.Subject)
		}
	}
	if len(tms) == 0 {
		return "", ErrNoTriplesMaps
	}
	for _, tm := range tms {
		if len(graph.ObjectsOf(triples, tm, graph.R2RMLPredicateObjectMap)) == 1 {
			return tm, nil
		}
	}
	return "", ErrNoRootTriplesMap
}

// PredicateObjectMap returns the single predicateObjectMap node owned by
// rootTM.
func PredicateObjectMap(triples []graph.Triple, rootTM string) (string, error) {
	poms := graph.ObjectsOf(triples, rootTM, graph.R2RMLPredicateObjectMap)
	if len(poms) != 1 {
		return "", ErrNoPredicateObjectMap
	}
	return poms[0], nil
}

// GetSubject resolves the Subject descriptor of rootTM's subject map.
func GetSubject(triples []graph.Triple, rootTM string) (Subject, error) {
	subjectNodes := graph.ObjectsOf(triples, rootTM, graph.R2RMLSubjectMap)
	if len(subjectNodes) == 0 {
		return Subject{}, fmt.Errorf("termmap: triples-map %s has no subjectMap", rootTM)
	}
	subjectNode := subjectNodes[0]

	result := Subject{TermType: TermTypeIRI}

	if termTypes := graph.ObjectsOf(triples, subjectNode, graph.R2RMLTermType); len(termTypes) == 1 {
		switch termTypes[0] {
		case graph.R2RMLBlankNode:
			result.TermType = TermTypeBlankNode
		case graph.R2RMLLiteral:
			return Subject{}, ErrLiteralSubject
		}
	}

	if v := graph.ObjectsOf(triples, subjectNode, graph.R2RMLConstant); len(v) == 1 {
		result.TermMapType = TermMapConstant
		result.TermMap = v[0]
		return result, nil
	}
	if v := graph.ObjectsOf(triples, subjectNode, graph.RMLReference); len(v) == 1 {
		result.TermMapType = TermMapRefer
		result.TermMap = v[0]
		return result, nil
	}
	if v := graph.ObjectsOf(triples, subjectNode, graph.R2RMLTemplate); len(v) == 1 {
		result.TermMapType = TermMapTemplate
		result.TermMap = v[0]
		return result, nil
	}

	return result, nil
}

// GetPredicate resolves the Predicate descriptor of pom's predicate map.
func GetPredicate(triples []graph.Triple, pom string) (Predicate, error) {
	predicateNodes := graph.ObjectsOf(triples, pom, graph.R2RMLPredicateMap)
	if len(predicateNodes) == 0 {
		return Predicate{}, fmt.Errorf("termmap: predicateObjectMap %s has no predicateMap", pom)
	}
	predicateNode := predicateNodes[0]

	result := Predicate{TermType: TermTypeIRI}

	if v := graph.ObjectsOf(triples, predicateNode, graph.R2RMLConstant); len(v) == 1 {
		result.TermMapType = TermMapConstant
		result.TermMap = v[0]
		return result, nil
	}
	if v := graph.ObjectsOf(triples, predicateNode, graph.RMLReference); len(v) == 1 {
		result.TermMapType = TermMapRefer
		result.TermMap = v[0]
		return result, nil
	}
	if v := graph.ObjectsOf(triples, predicateNode, graph.R2RMLTemplate); len(v) == 1 {
		result.TermMapType = TermMapTemplate
		result.TermMap = v[0]
		return result, nil
	}

	return result, nil
}

// GetObjectWithoutJoin resolves a non-join Object descriptor.
func GetObjectWithoutJoin(triples []graph.Triple, pom string) (Object, error) {
	objectNodes := graph.ObjectsOf(triples, pom, graph.R2RMLObjectMap)
	if len(objectNodes) == 0 {
		return Object{}, fmt.Errorf("termmap: predicateObjectMap %s has no objectMap", pom)
	}
	objectNode := objectNodes[0]

	result := Object{TermType: TermTypeLiteral}

	if langMapNodes := graph.ObjectsOf(triples, objectNode, graph.R2RMLLanguageMap); len(langMapNodes) == 1 {
		langValues := graph.ObjectsOf(triples, langMapNodes[0], graph.R2RMLConstant)
		if len(langValues) == 1 {
			if !validLanguageSubtags[langValues[0]] {
				return Object{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguageTag, langValues[0])
			}
			result.LangTag = langValues[0]
		}
	}

	if dtMapNodes := graph.ObjectsOf(triples, objectNode, graph.R2RMLDatatypeMap); len(dtMapNodes) == 1 {
		dtValues := graph.ObjectsOf(triples, dtMapNodes[0], graph.R2RMLConstant)
		if len(dtValues) == 1 {
			result.DataType = dtValues[0]
		}
	}

	termTypeGiven := false
	if termTypes := graph.ObjectsOf(triples, objectNode, graph.R2RMLTermType); len(termTypes) == 1 {
		termTypeGiven = true
		if termTypes[0] == graph.R2RMLIRI {
			result.TermType = TermTypeIRI
		}
	}

	if v := graph.ObjectsOf(triples, objectNode, graph.R2RMLConstant); len(v) == 1 {
		result.TermMapType = TermMapConstant
		result.TermMap = v[0]
		if strings.HasPrefix(result.TermMap, "http") && !termTypeGiven {
			result.TermType = TermTypeIRI
		}
		return result, nil
	}
	if v := graph.ObjectsOf(triples, objectNode, graph.RMLReference); len(v) == 1 {
		result.TermMapType = TermMapRefer
		result.TermMap = v[0]
		return result, nil
	}
	if v := graph.ObjectsOf(triples, objectNode, graph.R2RMLTemplate); len(v) == 1 {
		result.TermMapType = TermMapTemplate
		result.TermMap = v[0]
		if !termTypeGiven {
			result.TermType = TermTypeIRI
		}
		return result, nil
	}

	return result, nil
}

// GetObjectWithJoin resolves a join Object descriptor — one whose value
// comes from the parent triples-map's subject map — and returns the
// parent's logical source alongside it.
func GetObjectWithJoin(triples []graph.Triple, pom string) (Object, string, error) {
	objectNodes := graph.ObjectsOf(triples, pom, graph.R2RMLObjectMap)
	if len(objectNodes) == 0 {
		return Object{}, "", fmt.Errorf("termmap: predicateObjectMap %s has no objectMap", pom)
	}
	objectNode := objectNodes[0]

	result := Object{TermType: TermTypeLiteral, JoinType: JoinNatural}

	if jcNodes := graph.ObjectsOf(triples, objectNode, graph.R2RMLJoinCondition); len(jcNodes) >= 1 {
		result.JoinType = JoinEqui
		if children := graph.ObjectsOf(triples, jcNodes[0], graph.R2RMLChild); len(children) == 1 {
			result.JoinChild = children[0]
		}
		if parents := graph.ObjectsOf(triples, jcNodes[0], graph.R2RMLParent); len(parents) == 1 {
			result.JoinParent = parents[0]
		}
	}

	parentTMs := graph.ObjectsOf(triples, objectNode, graph.R2RMLParentTriplesMap)
	if len(parentTMs) == 0 {
		return Object{}, "", fmt.Errorf("termmap: objectMap %s has no parentTriplesMap", objectNode)
	}
	parentTM := parentTMs[0]

	parentSources := graph.ObjectsOf(triples, parentTM, graph.RMLLogicalSource)
	if len(parentSources) == 0 {
		return Object{}, "", fmt.Errorf("termmap: parent triples-map %s has no logicalSource", parentTM)
	}
	parentSourceNode := parentSources[0]
	sources := graph.ObjectsOf(triples, parentSourceNode, graph.RMLSource)
	if len(sources) == 0 {
		return Object{}, "", fmt.Errorf("termmap: parent logicalSource %s has no rml:source", parentSourceNode)
	}
	parentSource := sources[0]

	parentSubjectNodes := graph.ObjectsOf(triples, parentTM, graph.R2RMLSubjectMap)
	if len(parentSubjectNodes) == 0 {
		return Object{}, "", fmt.Errorf("termmap: parent triples-map %s has no subjectMap", parentTM)
	}
	parentSubjectNode := parentSubjectNodes[0]

	if v := graph.ObjectsOf(triples, parentSubjectNode, graph.R2RMLConstant); len(v) == 1 {
		result.TermMapType = TermMapConstant
		result.TermMap = v[0]
		if strings.HasPrefix(result.TermMap, "http") {
			result.TermType = TermTypeIRI
		}
		return result, parentSource, nil
	}
	if v := graph.ObjectsOf(triples, parentSubjectNode, graph.RMLReference); len(v) == 1 {
		result.TermMapType = TermMapRefer
		result.TermMap = v[0]
		result.TermType = TermTypeLiteral
		return result, parentSource, nil
	}
	if v := graph.ObjectsOf(triples, parentSubjectNode, graph.R2RMLTemplate); len(v) == 1 {
		result.TermMapType = TermMapTemplate
		result.TermMap = v[0]
		result.TermType = TermTypeIRI
		return result, parentSource, nil
	}

	return result, parentSource, nil
}

// GetGraphs resolves the up-to-two Graph descriptors attached to a
// triples-map's subject map and to its predicate-object map.
func GetGraphs(triples []graph.Triple, rootTM, pom string) []Graph {
	var graphs []Graph

	subjectNodes := graph.ObjectsOf(triples, rootTM, graph.R2RMLSubjectMap)
	if len(subjectNodes) == 1 {
		if g, ok := resolveGraphMap(triples, subjectNodes[0]); ok {
			graphs = append(graphs, g)
		}
	}
	if g, ok := resolveGraphMap(triples, pom); ok {
		graphs = append(graphs, g)
	}

	return graphs
}

func resolveGraphMap(triples []graph.Triple, owner string) (Graph, bool) {
	graphNodes := graph.ObjectsOf(triples, owner, graph.R2RMLGraphMap)
	if len(graphNodes) != 1 {
		return Graph{}, false
	}
	graphNode := graphNodes[0]

	result := Graph{TermType: TermTypeIRI}

	assign := func(kind TermMapType, value string) (Graph, bool) {
		result.TermMapType = kind
		if value != graph.R2RMLDefaultGraph {
			result.TermMap = value
		}
		return result, true
	}

	if v := graph.ObjectsOf(triples, graphNode, graph.R2RMLConstant); len(v) == 1 {
		return assign(TermMapConstant, v[0])
	}
	if v := graph.ObjectsOf(triples, graphNode, graph.RMLReference); len(v) == 1 {
		return assign(TermMapRefer, v[0])
	}
	if v := graph.ObjectsOf(triples, graphNode, graph.R2RMLTemplate); len(v) == 1 {
		return assign(TermMapTemplate, v[0])
	}

	return result, true
}
