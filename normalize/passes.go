package normalize

import "github.com/geoknoesis/rml2ra/graph"

// ExpandClasses rewrites every `rr:class` shortcut into an explicit
// predicate-object map asserting `rdf:type`. A class triple whose
// subject has no owning subject-map node is dropped silently, matching
// the source's behaviour (see the design notes on this quirk).
func ExpandClasses(triples []graph.Triple, counter *BlankNodeCounter) []graph.Triple {
	var toRemove, toAdd []graph.Triple

	for _, t := range triples {
		if t.Predicate != graph.R2RMLClass {
			continue
		}
		toRemove = append(toRemove, t)

		var subjectMapNode string
		for _, candidate := range triples {
			if candidate.Object == t.Subject {
				subjectMapNode = candidate.Subject
				break
			}
		}
		if subjectMapNode == "" {
			continue
		}

		bn := counter.Next()
		toAdd = append(toAdd,
			graph.Triple{Subject: subjectMapNode, Predicate: graph.R2RMLPredicateObjectMap, Object: bn},
			graph.Triple{Subject: bn, Predicate: graph.R2RMLPredicate, Object: graph.RDFType},
			graph.Triple{Subject: bn, Predicate: graph.R2RMLObject, Object: t.Object},
		)
	}

	out := graph.RemoveAll(triples, toRemove)
	return append(out, toAdd...)
}

var constantShortcuts = map[string]string{
	graph.R2RMLSubject:   graph.R2RMLSubjectMap,
	graph.R2RMLPredicate: graph.R2RMLPredicateMap,
	graph.R2RMLObject:    graph.R2RMLObjectMap,
	graph.R2RMLGraph:     graph.R2RMLGraphMap,
	graph.R2RMLDatatype:  graph.R2RMLDatatypeMap,
	graph.R2RMLLanguage:  graph.R2RMLLanguageMap,
}

// ExpandConstants rewrites every shortcut predicate (rr:subject,
// rr:predicate, rr:object, rr:graph, rr:datatype, rr:language) into its
// explicit *Map form with a fresh constant-valued map node.
func ExpandConstants(triples []graph.Triple, counter *BlankNodeCounter) []graph.Triple {
	var toRemove, toAdd []graph.Triple

	for _, t := range triples {
		mapPredicate, ok := constantShortcuts[t.Predicate]
		if !ok {
			continue
		}
		bn := counter.Next()
		toAdd = append(toAdd,
			graph.Triple{Subject: t.Subject, Predicate: mapPredicate, Object: bn},
			graph.Triple{Subject: bn, Predicate: graph.R2RMLConstant, Object: t.Object},
		)
		toRemove = append(toRemove, t)
	}

	out := graph.RemoveAll(triples, toRemove)
	return append(out, toAdd...)
}

// ExpandPredicateObjectMaps turns a predicate-object map carrying more
// than one predicateMap or more than one objectMap into the Cartesian
// product of fresh predicate-object maps, each with exactly one of each.
func ExpandPredicateObjectMaps(triples []graph.Triple, counter *BlankNodeCounter) []graph.Triple {
	parents := map[string][]string{}
	predicateMaps := map[string][]string{}
	objectMaps := map[string][]string{}

	for _, t := range triples {
		switch t.Predicate {
		case graph.R2RMLPredicateObjectMap:
			parents[t.Object] = append(parents[t.Object], t.Subject)
		case graph.R2RMLPredicateMap:
			predicateMaps[t.Subject] = append(predicateMaps[t.Subject], t.Object)
		case graph.R2RMLObjectMap:
			objectMaps[t.Subject] = append(objectMaps[t.Subject], t.Object)
		}
	}

	out := triples
	for pomNode, parentNodes := range parents {
		pms := predicateMaps[pomNode]
		oms := objectMaps[pomNode]
		if len(pms) <= 1 && len(oms) <= 1 {
			continue
		}

		var toRemove []graph.Triple
		for _, t := range out {
			if t.Subject == pomNode {
				toRemove = append(toRemove, t)
			}
		}
		for _, t := range out {
			if t.Predicate == graph.R2RMLPredicateObjectMap && t.Object == pomNode {
				toRemove = append(toRemove, t)
			}
		}

		var toAdd []graph.Triple
		for _, pm := range pms {
			for _, om := range oms {
				bn := counter.Next()
				for _, parent := range parentNodes {
					toAdd = append(toAdd, graph.Triple{Subject: parent, Predicate: graph.R2RMLPredicateObjectMap, Object: bn})
				}
				toAdd = append(toAdd,
					graph.Triple{Subject: bn, Predicate: graph.R2RMLPredicateMap, Object: pm},
					graph.Triple{Subject: bn, Predicate: graph.R2RMLObjectMap, Object: om},
				)
			}
		}

		out = graph.RemoveAll(out, toRemove)
		out = append(out, toAdd...)
	}

	return out
}

// SeparatePredicateObjectMaps splits every triples-map with more than one
// predicate-object map into one fresh triples-map per POM, each carrying
// a freshly synthesised IRI. A join POM (one with a parentTriplesMap)
// inherits the parent's logicalSource and subjectMap; a non-join POM
// inherits the original triples-map's own logicalSource and subjectMap.
func SeparatePredicateObjectMaps(triples []graph.Triple) []graph.Triple {
	out := make([]graph.Triple, len(triples))
	copy(out, triples)

	triplesMaps := graph.SubjectsOf(out, graph.RDFType, graph.R2RMLTriplesMap)

	for _, tm := range triplesMaps {
		var pomNodes []string
		for _, t := range out {
			if t.Subject == tm && t.Predicate == graph.R2RMLPredicateObjectMap {
				pomNodes = append(pomNodes, t.Object)
			}
		}
		if len(pomNodes) <= 1 {
			continue
		}

		originalSubjectMap := firstObject(out, tm, graph.R2RMLSubjectMap)
		originalLogicalSource := firstObject(out, tm, graph.RMLLogicalSource)

		for _, pom := range pomNodes {
			parentTMs := graph.ObjectsOf(out, pom, graph.R2RMLParentTriplesMap)
			newTM := FreshTriplesMapIRI(tm)

			out = append(out, graph.Triple{Subject: newTM, Predicate: graph.RDFType, Object: graph.R2RMLTriplesMap})

			if len(parentTMs) > 0 {
				parentTM := parentTMs[0]
				out = append(out, graph.Triple{Subject: newTM, Predicate: graph.R2RMLParentTriplesMap, Object: parentTM})

				if parentLS := firstObject(out, parentTM, graph.RMLLogicalSource); parentLS != "" {
					out = append(out, graph.Triple{Subject: newTM, Predicate: graph.RMLLogicalSource, Object: parentLS})
				}
				if parentSM := firstObject(out, parentTM, graph.R2RMLSubjectMap); parentSM != "" {
					out = append(out, graph.Triple{Subject: newTM, Predicate: graph.R2RMLSubjectMap, Object: parentSM})
				}
			} else {
				if originalSubjectMap != "" {
					out = append(out, graph.Triple{Subject: newTM, Predicate: graph.R2RMLSubjectMap, Object: originalSubjectMap})
				}
				if originalLogicalSource != "" {
					out = append(out, graph.Triple{Subject: newTM, Predicate: graph.RMLLogicalSource, Object: originalLogicalSource})
				}
			}

			out = append(out, graph.Triple{Subject: newTM, Predicate: graph.R2RMLPredicateObjectMap, Object: pom})
		}

		for _, pom := range pomNodes {
			out = graph.RemoveAll(out, []graph.Triple{{Subject: tm, Predicate: graph.R2RMLPredicateObjectMap, Object: pom}})
		}
	}

	return out
}

func firstObject(triples []graph.Triple, subject, predicate string) string {
	for _, t := range triples {
		if t.Subject == subject && t.Predicate == predicate {
			return t.Object
		}
	}
	return ""
}

// Normalize runs the four rewrite passes in order and returns the
// normalised triple set together with the triples-map roots it contains.
func Normalize(triples []graph.Triple, counter *BlankNodeCounter) ([]graph.Triple, []string) {
	out := ExpandClasses(triples, counter)
	out = ExpandConstants(out, counter)
	out = ExpandPredicateObjectMaps(out, counter)
	out = SeparatePredicateObjectMaps(out)

	triplesMaps := graph.SubjectsOf(out, graph.RDFType, graph.R2RMLTriplesMap)
	return out, triplesMaps
}
