package subgraph

import (
	"testing"

	"github.com/geoknoesis/rml2ra/graph"
)

func mappingFixture() []graph.Triple {
	return []graph.Triple{
		{Subject: "tm1", Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "http://ex/sm1"},
		{Subject: "http://ex/sm1", Predicate: graph.R2RMLTemplate, Object: "http://ex/{id}"},
		{Subject: "tm1", Predicate: graph.R2RMLPredicateObjectMap, Object: "http://ex/pom1"},
		{Subject: "http://ex/pom1", Predicate: graph.R2RMLPredicateMap, Object: "http://ex/pm1"},
		{Subject: "http://ex/pm1", Predicate: graph.R2RMLConstant, Object: "ex:name"},
		{Subject: "http://ex/pom1", Predicate: graph.R2RMLObjectMap, Object: "http://ex/om1"},
		{Subject: "http://ex/om1", Predicate: graph.RMLReference, Object: "name"},
	}
}

func TestExtractFollowsGraph(t *testing.T) {
	triples := mappingFixture()
	sub := Extract(triples, "tm1")
	if len(sub) != len(triples) {
		t.Fatalf("got %d triples in subgraph, want %d", len(sub), len(triples))
	}
}

func TestExtractStopsAfterFirstPOM(t *testing.T) {
	triples := mappingFixture()
	triples = append(triples, graph.Triple{Subject: "tm1", Predicate: graph.R2RMLPredicateObjectMap, Object: "pom2"})
	triples = append(triples, graph.Triple{Subject: "pom2", Predicate: graph.R2RMLPredicateMap, Object: "pm2"})

	sub := Extract(triples, "tm1")
	for _, t := range sub {
		if t.Object == "pom2" {
			t.Fatalf("expected second predicateObjectMap edge to be skipped")
		}
	}
}

func TestSeparateDiscardsIncompleteSubgraph(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "tm1", Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "sm1"},
	}
	subs := Separate([]string{"tm1"}, triples)
	if len(subs) != 0 {
		t.Fatalf("expected incomplete subgraph (no POM) to be discarded, got %d", len(subs))
	}
}

func TestSeparateKeepsCompleteSubgraph(t *testing.T) {
	subs := Separate([]string{"tm1"}, mappingFixture())
	if len(subs) != 1 {
		t.Fatalf("got %d subgraphs, want 1", len(subs))
	}
}
