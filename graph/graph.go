package graph

import (
	"strconv"
	"strings"

	"github.com/geoknoesis/rml2ra/rdf"
)

// Triple is a flat (subject, predicate, object) triple over opaque string
// terms, the shape every compilation phase after ingest operates on.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// FromRDFTriples flattens decoded RDF triples into the string-term model
// the normaliser and downstream phases consume. Literal objects keep only
// their lexical form; language tags and datatypes on a mapping document's
// own literals (as opposed to the data it describes) are not meaningful
// here and are dropped.
func FromRDFTriples(triples []rdf.Triple) []Triple {
	out := make([]Triple, 0, len(triples))
	for _, t := range triples {
		out = append(out, Triple{
			Subject:   termString(t.S),
			Predicate: t.P.Value,
			Object:    termString(t.O),
		})
	}
	return out
}

func termString(t rdf.Term) string {
	switch v := t.(type) {
	case rdf.IRI:
		return v.Value
	case rdf.BlankNode:
		return v.ID
	case rdf.Literal:
		return v.Lexical
	default:
		return t.String()
	}
}

// ObjectsOf returns the objects of triples matching subject and predicate.
// An empty filter string matches any value, mirroring the source's
// find_matching_objects query.
func ObjectsOf(triples []Triple, subject, predicate string) []string {
	var out []string
	for _, t := range triples {
		if subject != "" && t.Subject != subject {
			continue
		}
		if predicate != "" && t.Predicate != predicate {
			continue
		}
		out = append(out, t.Object)
	}
	return out
}

// SubjectsOf returns the subjects of triples matching predicate and object.
// An empty predicate or object matches any value.
func SubjectsOf(triples []Triple, predicate, object string) []string {
	var out []string
	for _, t := range triples {
		if predicate != "" && t.Predicate != predicate {
			continue
		}
		if object != "" && t.Object != object {
			continue
		}
		out = append(out, t.Subject)
	}
	return out
}

// CountPredicate counts triples whose predicate equals predicate.
func CountPredicate(triples []Triple, predicate string) int {
	n := 0
	for _, t := range triples {
		if t.Predicate == predicate {
			n++
		}
	}
	return n
}

// IsBlankNode reports whether term is a blank-node label of the form
// "b<digits>", consuming the entire suffix.
func IsBlankNode(term string) bool {
	if len(term) < 2 || term[0] != 'b' {
		return false
	}
	digits := term[1:]
	if digits[0] < '0' || digits[0] > '9' {
		return false
	}
	if _, err := strconv.Atoi(digits); err != nil {
		return false
	}
	return true
}

// IsIRI reports whether term is an absolute http(s) IRI.
func IsIRI(term string) bool {
	return strings.HasPrefix(term, "http://") || strings.HasPrefix(term, "https://")
}

// RemoveAll removes every triple in toRemove from triples, matching the
// first occurrence of each, and returns the remainder.
func RemoveAll(triples []Triple, toRemove []Triple) []Triple {
	remaining := make([]Triple, len(triples))
	copy(remaining, triples)
	for _, rem := range toRemove {
		for i, t := range remaining {
			if t == rem {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return remaining
}
