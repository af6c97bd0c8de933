package normalize

import (
	"testing"

	"github.com/geoknoesis/rml2ra/graph"
)

func TestExpandClasses(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "sm1", Predicate: graph.R2RMLClass, Object: "ex:Person"},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "sm1"},
	}
	counter := NewBlankNodeCounter(0)
	out := ExpandClasses(triples, counter)

	for _, t := range out {
		if t.Predicate == graph.R2RMLClass {
			t.Fatalf("class shortcut should have been removed")
		}
	}
	if n := graph.CountPredicate(out, graph.R2RMLPredicateObjectMap); n != 1 {
		t.Fatalf("got %d predicateObjectMap triples, want 1", n)
	}
	objects := graph.ObjectsOf(out, "", graph.R2RMLObject)
	if len(objects) != 1 || objects[0] != "ex:Person" {
		t.Fatalf("got %v, want [ex:Person]", objects)
	}
}

func TestExpandClassesDropsOrphan(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "sm1", Predicate: graph.R2RMLClass, Object: "ex:Person"},
	}
	counter := NewBlankNodeCounter(0)
	out := ExpandClasses(triples, counter)
	if len(out) != 0 {
		t.Fatalf("expected orphan class triple to be dropped, got %v", out)
	}
}

func TestExpandConstants(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "tm1", Predicate: graph.R2RMLPredicate, Object: "ex:name"},
	}
	counter := NewBlankNodeCounter(0)
	out := ExpandConstants(triples, counter)

	if n := graph.CountPredicate(out, graph.R2RMLPredicateMap); n != 1 {
		t.Fatalf("got %d predicateMap triples, want 1", n)
	}
	constants := graph.ObjectsOf(out, "", graph.R2RMLConstant)
	if len(constants) != 1 || constants[0] != "ex:name" {
		t.Fatalf("got %v, want [ex:name]", constants)
	}
}

func TestExpandPredicateObjectMapsCartesianProduct(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "tm1", Predicate: graph.R2RMLPredicateObjectMap, Object: "pom1"},
		{Subject: "pom1", Predicate: graph.R2RMLPredicateMap, Object: "pm1"},
		{Subject: "pom1", Predicate: graph.R2RMLPredicateMap, Object: "pm2"},
		{Subject: "pom1", Predicate: graph.R2RMLObjectMap, Object: "om1"},
	}
	counter := NewBlankNodeCounter(0)
	out := ExpandPredicateObjectMaps(triples, counter)

	newPOMs := graph.ObjectsOf(out, "tm1", graph.R2RMLPredicateObjectMap)
	if len(newPOMs) != 2 {
		t.Fatalf("got %d POMs, want 2 (one per predicateMap)", len(newPOMs))
	}
	for _, pom := range newPOMs {
		pms := graph.ObjectsOf(out, pom, graph.R2RMLPredicateMap)
		oms := graph.ObjectsOf(out, pom, graph.R2RMLObjectMap)
		if len(pms) != 1 || len(oms) != 1 {
			t.Fatalf("new POM %s has %d predicateMaps and %d objectMaps, want 1 each", pom, len(pms), len(oms))
		}
	}
}

func TestSeparatePredicateObjectMaps(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "tm1", Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "sm1"},
		{Subject: "tm1", Predicate: graph.RMLLogicalSource, Object: "ls1"},
		{Subject: "tm1", Predicate: graph.R2RMLPredicateObjectMap, Object: "pom1"},
		{Subject: "tm1", Predicate: graph.R2RMLPredicateObjectMap, Object: "pom2"},
	}
	out := SeparatePredicateObjectMaps(triples)

	if n := graph.CountPredicate(out, graph.R2RMLPredicateObjectMap); n != 2 {
		t.Fatalf("expected 2 POM edges preserved across split triples-maps, got %d", n)
	}
	// Original triples-map should no longer own either POM directly.
	remaining := graph.ObjectsOf(out, "tm1", graph.R2RMLPredicateObjectMap)
	if len(remaining) != 0 {
		t.Fatalf("expected original triples-map's POM edges removed, got %v", remaining)
	}
	newTMs := graph.SubjectsOf(out, graph.RDFType, graph.R2RMLTriplesMap)
	if len(newTMs) != 3 {
		t.Fatalf("got %d triples-maps, want 3 (1 original + 2 fresh)", len(newTMs))
	}
}

func TestNormalizeEndToEnd(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "tm1", Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "sm1"},
		{Subject: "sm1", Predicate: graph.R2RMLTemplate, Object: "http://ex/{id}"},
		{Subject: "tm1", Predicate: graph.R2RMLPredicateObjectMap, Object: "pom1"},
		{Subject: "pom1", Predicate: graph.R2RMLPredicate, Object: "ex:name"},
		{Subject: "pom1", Predicate: graph.R2RMLObject, Object: "literalname"},
	}
	counter := NewBlankNodeCounter(0)
	out, tms := Normalize(triples, counter)

	if len(tms) != 1 {
		t.Fatalf("got %d triples-maps, want 1", len(tms))
	}
	if graph.CountPredicate(out, graph.R2RMLPredicate) != 0 {
		t.Fatalf("shortcut rr:predicate should have been expanded away")
	}
	if graph.CountPredicate(out, graph.R2RMLPredicateMap) != 1 {
		t.Fatalf("expected exactly one predicateMap after normalisation")
	}
}
