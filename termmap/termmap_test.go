package termmap

import (
	"errors"
	"testing"

	"github.com/geoknoesis/rml2ra/graph"
)

func simpleFixture() []graph.Triple {
	return []graph.Triple{
		{Subject: "tm1", Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap},
		{Subject: "tm1", Predicate: graph.R2RMLSubjectMap, Object: "sm1"},
		{Subject: "sm1", Predicate: graph.R2RMLTemplate, Object: "http://ex/{id}"},
		{Subject: "tm1", Predicate: graph.R2RMLPredicateObjectMap, Object: "pom1"},
		{Subject: "pom1", Predicate: graph.R2RMLPredicateMap, Object: "pm1"},
		{Subject: "pm1", Predicate: graph.R2RMLConstant, Object: "ex:name"},
		{Subject: "pom1", Predicate: graph.R2RMLObjectMap, Object: "om1"},
		{Subject: "om1", Predicate: graph.RMLReference, Object: "name"},
	}
}

func TestRootTriplesMapAndPOM(t *testing.T) {
	triples := simpleFixture()
	root, err := RootTriplesMap(triples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "tm1" {
		t.Fatalf("got %q, want tm1", root)
	}
	pom, err := PredicateObjectMap(triples, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pom != "pom1" {
		t.Fatalf("got %q, want pom1", pom)
	}
}

func TestGetSubjectTemplate(t *testing.T) {
	triples := simpleFixture()
	subj, err := GetSubject(triples, "tm1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subj.TermMapType != TermMapTemplate || subj.TermMap != "http://ex/{id}" || subj.TermType != TermTypeIRI {
		t.Fatalf("got %+v", subj)
	}
}

func TestGetSubjectRejectsLiteral(t *testing.T) {
	triples := append(simpleFixture(), graph.Triple{Subject: "sm1", Predicate: graph.R2RMLTermType, Object: graph.R2RMLLiteral})
	_, err := GetSubject(triples, "tm1")
	if !errors.Is(err, ErrLiteralSubject) {
		t.Fatalf("got %v, want ErrLiteralSubject", err)
	}
}

func TestGetPredicateConstant(t *testing.T) {
	pred, err := GetPredicate(simpleFixture(), "pom1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.TermMapType != TermMapConstant || pred.TermMap != "ex:name" {
		t.Fatalf("got %+v", pred)
	}
}

func TestGetObjectWithoutJoinReference(t *testing.T) {
	obj, err := GetObjectWithoutJoin(simpleFixture(), "pom1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.TermMapType != TermMapRefer || obj.TermMap != "name" || obj.TermType != TermTypeLiteral {
		t.Fatalf("got %+v", obj)
	}
}

func TestGetObjectWithoutJoinUnsupportedLanguage(t *testing.T) {
	triples := append(simpleFixture(),
		graph.Triple{Subject: "om1", Predicate: graph.R2RMLLanguageMap, Object: "lm1"},
		graph.Triple{Subject: "lm1", Predicate: graph.R2RMLConstant, Object: "xx"},
	)
	_, err := GetObjectWithoutJoin(triples, "pom1")
	if !errors.Is(err, ErrUnsupportedLanguageTag) {
		t.Fatalf("got %v, want ErrUnsupportedLanguageTag", err)
	}
}

func TestGetObjectWithJoinNaturalJoin(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "pom1", Predicate: graph.R2RMLObjectMap, Object: "om1"},
		{Subject: "om1", Predicate: graph.R2RMLParentTriplesMap, Object: "tm2"},
		{Subject: "tm2", Predicate: graph.RMLLogicalSource, Object: "ls2"},
		{Subject: "ls2", Predicate: graph.RMLSource, Object: "b.csv"},
		{Subject: "tm2", Predicate: graph.R2RMLSubjectMap, Object: "sm2"},
		{Subject: "sm2", Predicate: graph.R2RMLTemplate, Object: "http://ex/{ID}"},
	}
	obj, parentSource, err := GetObjectWithJoin(triples, "pom1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.JoinType != JoinNatural {
		t.Fatalf("got join type %v, want natural-join", obj.JoinType)
	}
	if parentSource != "b.csv" {
		t.Fatalf("got parent source %q, want b.csv", parentSource)
	}
	if obj.TermType != TermTypeIRI {
		t.Fatalf("expected template-derived parent subject to resolve to an IRI term type")
	}
}

func TestGetObjectWithJoinEquiJoin(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "pom1", Predicate: graph.R2RMLObjectMap, Object: "om1"},
		{Subject: "om1", Predicate: graph.R2RMLJoinCondition, Object: "jc1"},
		{Subject: "jc1", Predicate: graph.R2RMLChild, Object: "Sport"},
		{Subject: "jc1", Predicate: graph.R2RMLParent, Object: "ID"},
		{Subject: "om1", Predicate: graph.R2RMLParentTriplesMap, Object: "tm2"},
		{Subject: "tm2", Predicate: graph.RMLLogicalSource, Object: "ls2"},
		{Subject: "ls2", Predicate: graph.RMLSource, Object: "b.csv"},
		{Subject: "tm2", Predicate: graph.R2RMLSubjectMap, Object: "sm2"},
		{Subject: "sm2", Predicate: graph.R2RMLConstant, Object: "http://ex/fixed"},
	}
	obj, parentSource, err := GetObjectWithJoin(triples, "pom1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.JoinType != JoinEqui || obj.JoinChild != "Sport" || obj.JoinParent != "ID" {
		t.Fatalf("got %+v", obj)
	}
	if parentSource != "b.csv" {
		t.Fatalf("got parent source %q, want b.csv", parentSource)
	}
}

func TestGetGraphsDefaultGraphSuppressed(t *testing.T) {
	triples := append(simpleFixture(),
		graph.Triple{Subject: "sm1", Predicate: graph.R2RMLGraphMap, Object: "gm1"},
		graph.Triple{Subject: "gm1", Predicate: graph.R2RMLConstant, Object: graph.R2RMLDefaultGraph},
	)
	graphs := GetGraphs(triples, "tm1", "pom1")
	if len(graphs) != 1 {
		t.Fatalf("got %d graphs, want 1", len(graphs))
	}
	if graphs[0].TermMap != "" {
		t.Fatalf("default graph constant should be suppressed to empty term_map, got %q", graphs[0].TermMap)
	}
}
