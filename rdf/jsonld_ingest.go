package rdf

import (
	"encoding/json"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

// jsonldTripleDecoder adapts json-gold's RDF dataset expansion to the
// TripleDecoder interface. JSON-LD documents cannot be expanded
// incrementally, so the whole document is parsed and flattened to RDF on
// construction; Next then drains the resulting triples.
type jsonldTripleDecoder struct {
	triples []Triple
	pos     int
	err     error
}

func newJSONLDTripleDecoderWithOptions(r io.Reader, opts DecodeOptions) (TripleDecoder, error) {
	opts = normalizeDecodeOptions(opts)

	src := r
	if opts.MaxStatementBytes > 0 {
		src = io.LimitReader(r, int64(opts.MaxStatementBytes)+1)
	}
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, WrapParseError("jsonld", "", -1, err)
	}
	if opts.MaxStatementBytes > 0 && len(raw) > opts.MaxStatementBytes {
		return nil, WrapParseError("jsonld", "", -1, fmt.Errorf("document exceeds maximum size of %d bytes", opts.MaxStatementBytes))
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, WrapParseError("jsonld", "", -1, err)
	}

	proc := ld.NewJsonLdProcessor()
	jsonldOpts := ld.NewJsonLdOptions("")
	dataset, err := proc.ToRDF(doc, jsonldOpts)
	if err != nil {
		return nil, WrapParseError("jsonld", "", -1, err)
	}

	rdfDataset, ok := dataset.(*ld.RDFDataset)
	if !ok {
		return nil, WrapParseError("jsonld", "", -1, fmt.Errorf("unexpected RDF dataset type %T", dataset))
	}

	triples, err := quadsToTriples(rdfDataset.Graphs["@default"])
	if err != nil {
		return nil, err
	}
	return &jsonldTripleDecoder{triples: triples}, nil
}

func (d *jsonldTripleDecoder) Next() (Triple, error) {
	if d.err != nil {
		return Triple{}, d.err
	}
	if d.pos >= len(d.triples) {
		return Triple{}, io.EOF
	}
	t := d.triples[d.pos]
	d.pos++
	return t, nil
}

func (d *jsonldTripleDecoder) Err() error  { return d.err }
func (d *jsonldTripleDecoder) Close() error { return nil }

func quadsToTriples(quads []*ld.Quad) ([]Triple, error) {
	triples := make([]Triple, 0, len(quads))
	for _, q := range quads {
		s, err := jsonldNodeToTerm(q.Subject)
		if err != nil {
			return nil, WrapParseError("jsonld", "", -1, err)
		}
		p, err := jsonldNodeToTerm(q.Predicate)
		if err != nil {
			return nil, WrapParseError("jsonld", "", -1, err)
		}
		pIRI, ok := p.(IRI)
		if !ok {
			return nil, WrapParseError("jsonld", "", -1, fmt.Errorf("predicate must be an IRI, got %T", p))
		}
		o, err := jsonldNodeToTerm(q.Object)
		if err != nil {
			return nil, WrapParseError("jsonld", "", -1, err)
		}
		triples = append(triples, Triple{S: s, P: pIRI, O: o})
	}
	return triples, nil
}

func jsonldNodeToTerm(node ld.Node) (Term, error) {
	switch {
	case ld.IsIRI(node):
		return IRI{Value: node.(ld.IRI).Value}, nil
	case ld.IsBlankNode(node):
		return BlankNode{ID: node.(ld.BlankNode).Attribute}, nil
	case ld.IsLiteral(node):
		lit := node.(ld.Literal)
		switch {
		case lit.Language != "":
			return Literal{Lexical: lit.Value, Lang: lit.Language}, nil
		case lit.Datatype != "" && lit.Datatype != rdfLangStringIRI:
			return Literal{Lexical: lit.Value, Datatype: IRI{Value: lit.Datatype}}, nil
		default:
			return Literal{Lexical: lit.Value}, nil
		}
	default:
		return nil, fmt.Errorf("unsupported JSON-LD node type %T", node)
	}
}
