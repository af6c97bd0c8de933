// Package graph provides the flat triple model and pattern-query helpers
// that every later compilation phase builds on.
package graph

// Mapping vocabulary IRIs shared by the normaliser, subgraph extractor,
// term-map interpreter, and RA generator.
const (
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	R2RMLTriplesMap         = "http://www.w3.org/ns/r2rml#TriplesMap"
	R2RMLClass              = "http://www.w3.org/ns/r2rml#class"
	R2RMLSubject            = "http://www.w3.org/ns/r2rml#subject"
	R2RMLPredicate          = "http://www.w3.org/ns/r2rml#predicate"
	R2RMLObject             = "http://www.w3.org/ns/r2rml#object"
	R2RMLGraph              = "http://www.w3.org/ns/r2rml#graph"
	R2RMLDatatype           = "http://www.w3.org/ns/r2rml#datatype"
	R2RMLLanguage           = "http://www.w3.org/ns/r2rml#language"
	R2RMLSubjectMap         = "http://www.w3.org/ns/r2rml#subjectMap"
	R2RMLPredicateMap       = "http://www.w3.org/ns/r2rml#predicateMap"
	R2RMLObjectMap          = "http://www.w3.org/ns/r2rml#objectMap"
	R2RMLGraphMap           = "http://www.w3.org/ns/r2rml#graphMap"
	R2RMLDatatypeMap        = "http://www.w3.org/ns/r2rml#datatypeMap"
	R2RMLLanguageMap        = "http://www.w3.org/ns/r2rml#languageMap"
	R2RMLPredicateObjectMap = "http://www.w3.org/ns/r2rml#predicateObjectMap"
	R2RMLConstant           = "http://www.w3.org/ns/r2rml#constant"
	R2RMLTemplate           = "http://www.w3.org/ns/r2rml#template"
	R2RMLTermType           = "http://www.w3.org/ns/r2rml#termType"
	R2RMLIRI                = "http://www.w3.org/ns/r2rml#IRI"
	R2RMLBlankNode          = "http://www.w3.org/ns/r2rml#BlankNode"
	R2RMLLiteral            = "http://www.w3.org/ns/r2rml#Literal"
	R2RMLParentTriplesMap   = "http://www.w3.org/ns/r2rml#parentTriplesMap"
	R2RMLJoinCondition      = "http://www.w3.org/ns/r2rml#joinCondition"
	R2RMLChild              = "http://www.w3.org/ns/r2rml#child"
	R2RMLParent             = "http://www.w3.org/ns/r2rml#parent"
	R2RMLDefaultGraph       = "http://www.w3.org/ns/r2rml#defaultGraph"

	RMLReference     = "http://semweb.mmlab.be/ns/rml#reference"
	RMLLogicalSource = "http://semweb.mmlab.be/ns/rml#logicalSource"
	RMLSource        = "http://semweb.mmlab.be/ns/rml#source"
)
