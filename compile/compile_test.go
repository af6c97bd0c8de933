package compile

import (
	"errors"
	"strings"
	"testing"

	"github.com/geoknoesis/rml2ra/graph"
	"github.com/geoknoesis/rml2ra/termmap"
)

func TestWireRoundTrip(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "tm1", Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "sm1"},
	}
	encoded := EncodeWire(triples)
	decoded, err := DecodeWire(strings.NewReader(encoded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != len(triples) {
		t.Fatalf("got %d triples, want %d", len(decoded), len(triples))
	}
	for i := range triples {
		if decoded[i] != triples[i] {
			t.Fatalf("triple %d mismatch: got %+v, want %+v", i, decoded[i], triples[i])
		}
	}
}

func simpleMappingTriples() []graph.Triple {
	return []graph.Triple{
		{Subject: "tm1", Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap},
		{Subject: "tm1", Predicate: graph.RMLLogicalSource, Object: "http://ex/ls1"},
		{Subject: "http://ex/ls1", Predicate: graph.RMLSource, Object: "people.csv"},
		{Subject: "tm1", Predicate: graph.R2RMLSubject, Object: "http://ex/{id}"},
		{Subject: "tm1", Predicate: graph.R2RMLPredicateObjectMap, Object: "http://ex/pom1"},
		{Subject: "http://ex/pom1", Predicate: graph.R2RMLPredicate, Object: "ex:name"},
		{Subject: "http://ex/pom1", Predicate: graph.R2RMLObject, Object: "name"},
	}
}

// End-to-end exercise of the normaliser + subgraph extractor + RA
// generator through the CompileTriples entry point, using the rr:subject
// shortcut form to also exercise constant expansion along the way.
func TestCompileTriplesSimpleMapping(t *testing.T) {
	out, err := CompileTriples(simpleMappingTriples(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "pi[") || !strings.Contains(out, "-> S") {
		t.Fatalf("expected an RA projection with a subject term constructor, got:\n%s", out)
	}
}

// A mapping with zero triples-maps produces zero output blocks, not an
// error.
func TestCompileTriplesNoTriplesMaps(t *testing.T) {
	out, err := CompileTriples(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Fatalf("got %q, want empty output", out)
	}
}

// Scenario F: a triples-map with two subjectMap edges must be rejected
// by the validator before normalisation runs.
func TestScenarioFMultipleSubjectMaps(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "tm1", Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "sm1"},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "sm2"},
	}
	_, err := CompileTriples(triples, DefaultOptions())
	var structErr *StructuralError
	if !errors.As(err, &structErr) {
		t.Fatalf("got %v, want *StructuralError", err)
	}
}

// Scenario B: a class shortcut splits one triples-map into two RA
// blocks after predicate-object-map separation.
func TestScenarioBClassShortcutSplitsIntoTwoBlocks(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "tm1", Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap},
		{Subject: "tm1", Predicate: graph.RMLLogicalSource, Object: "http://ex/ls1"},
		{Subject: "http://ex/ls1", Predicate: graph.RMLSource, Object: "people.csv"},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "http://ex/sm1"},
		{Subject: "http://ex/sm1", Predicate: graph.R2RMLTemplate, Object: "http://ex/{id}"},
		{Subject: "http://ex/sm1", Predicate: graph.R2RMLClass, Object: "ex:Person"},
		{Subject: "tm1", Predicate: graph.R2RMLPredicateObjectMap, Object: "http://ex/pom1"},
		{Subject: "http://ex/pom1", Predicate: graph.R2RMLPredicate, Object: "ex:name"},
		{Subject: "http://ex/pom1", Predicate: graph.R2RMLObject, Object: "name"},
	}
	out, err := CompileTriples(triples, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blocks := strings.Split(out, "====")
	if len(blocks) != 2 {
		t.Fatalf("got %d RA blocks, want 2 (one per predicate-object map after separation)", len(blocks))
	}
	var sawRDFType bool
	for _, b := range blocks {
		if strings.Contains(b, graph.RDFType) && strings.Contains(b, "ex:Person") {
			sawRDFType = true
		}
	}
	if !sawRDFType {
		t.Fatalf("expected one block to assert rdf:type ex:Person, got:\n%s", out)
	}
}

// Scenario E: an unsupported language tag must abort compilation.
func TestScenarioEUnsupportedLanguageTag(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "tm1", Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap},
		{Subject: "tm1", Predicate: graph.RMLLogicalSource, Object: "http://ex/ls1"},
		{Subject: "http://ex/ls1", Predicate: graph.RMLSource, Object: "people.csv"},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "http://ex/sm1"},
		{Subject: "http://ex/sm1", Predicate: graph.R2RMLTemplate, Object: "http://ex/{id}"},
		{Subject: "tm1", Predicate: graph.R2RMLPredicateObjectMap, Object: "http://ex/pom1"},
		{Subject: "http://ex/pom1", Predicate: graph.R2RMLPredicateMap, Object: "http://ex/pm1"},
		{Subject: "http://ex/pm1", Predicate: graph.R2RMLConstant, Object: "ex:name"},
		{Subject: "http://ex/pom1", Predicate: graph.R2RMLObjectMap, Object: "http://ex/om1"},
		{Subject: "http://ex/om1", Predicate: graph.RMLReference, Object: "name"},
		{Subject: "http://ex/om1", Predicate: graph.R2RMLLanguageMap, Object: "http://ex/lm1"},
		{Subject: "http://ex/lm1", Predicate: graph.R2RMLConstant, Object: "xx"},
	}
	_, err := CompileTriples(triples, DefaultOptions())
	if !errors.Is(err, termmap.ErrUnsupportedLanguageTag) {
		t.Fatalf("got %v, want termmap.ErrUnsupportedLanguageTag", err)
	}
}
