// Package compile wires the ingest, normalisation, subgraph-extraction,
// and RA-generation phases behind a single entry point.
package compile

import (
	"fmt"
	"io"
	"strings"

	"github.com/geoknoesis/rml2ra/graph"
	"github.com/geoknoesis/rml2ra/normalize"
	"github.com/geoknoesis/rml2ra/ra"
	"github.com/geoknoesis/rml2ra/rdf"
	"github.com/geoknoesis/rml2ra/subgraph"
)

// blockSeparator joins the RA blocks produced for distinct triples-maps.
const blockSeparator = "===="

// StructuralError reports a mapping document that fails validation
// before normalisation even begins.
type StructuralError struct {
	TriplesMap string
	Reason     string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("compile: structural error in triples-map %s: %s", e.TriplesMap, e.Reason)
}

// Options configures a compilation run.
type Options struct {
	// Format is the ingest encoding of the mapping document. If empty,
	// Compile auto-detects it with rdf.DetectFormat.
	Format rdf.Format
	// InitialBlankNodeCounter seeds the normaliser's blank-node counter.
	InitialBlankNodeCounter int
}

// DefaultOptions returns an Options value with format auto-detection and
// a blank-node counter starting at zero.
func DefaultOptions() Options {
	return Options{}
}

// Compile reads a mapping document from r, normalises it, extracts one
// subgraph per triples-map, and returns their RA expressions
// concatenated with "====" block separators.
func Compile(r io.Reader, opts Options) (string, error) {
	format := opts.Format
	if format == "" {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("compile: reading mapping document: %w", err)
		}
		detected, ok := rdf.DetectFormat(strings.NewReader(string(data)))
		if !ok {
			return "", fmt.Errorf("compile: could not detect mapping document format: %w", rdf.ErrUnsupportedFormat)
		}
		format = detected
		r = strings.NewReader(string(data))
	}

	rdfTriples, err := rdf.ParseTriples(r, format)
	if err != nil {
		return "", fmt.Errorf("compile: parsing mapping document: %w", err)
	}

	return CompileTriples(graph.FromRDFTriples(rdfTriples), opts)
}

// CompileTriples runs the pipeline over an already-decoded triple set.
// It is the entry point the `|||`-wire-format path (see EncodeWire,
// DecodeWire) and tests use to bypass RDF ingest.
func CompileTriples(triples []graph.Triple, opts Options) (string, error) {
	if err := Validate(triples); err != nil {
		return "", err
	}

	counter := normalize.NewBlankNodeCounter(opts.InitialBlankNodeCounter)
	normalised, triplesMaps := normalize.Normalize(triples, counter)
	if len(triplesMaps) == 0 {
		// A mapping with zero triples-maps produces zero output blocks,
		// not an error.
		return "", nil
	}

	subgraphs := subgraph.Separate(triplesMaps, normalised)

	var blocks []string
	for _, sub := range subgraphs {
		block, err := ra.Generate(sub)
		if err != nil {
			return "", fmt.Errorf("compile: generating RA expression: %w", err)
		}
		blocks = append(blocks, block)
	}

	return strings.Join(blocks, blockSeparator), nil
}

// Validate rejects a mapping document in which some triples-map subject
// carries more than one subjectMap edge, before normalisation runs.
func Validate(triples []graph.Triple) error {
	for _, t := range triples {
		if t.Predicate != graph.RDFType || t.Object != graph.R2RMLTriplesMap {
			continue
		}
		tm := t.Subject
		if n := len(graph.ObjectsOf(triples, tm, graph.R2RMLSubjectMap)); n > 1 {
			return &StructuralError{TriplesMap: tm, Reason: "multiple subjectMap edges"}
		}
	}
	return nil
}
