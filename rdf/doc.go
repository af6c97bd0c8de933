// Package rdf provides a compact RDF triple model and streaming decoders for
// the mapping documents consumed by the mapping compiler.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// It focuses on fast, low-allocation decoding with a small surface area:
//   - Decode: NewTripleDecoder returns a pull-style decoder for a chosen Format.
//   - DetectFormat sniffs the serialization of an input from its first bytes.
//
// Supported formats: Turtle, N-Triples and JSON-LD. A mapping document, a
// TriplesMap graph, is always a set of triples; RDF-star is represented via
// TripleTerm so quoted triples can appear as subjects or objects where a
// mapping uses them.
//
// Example (decoding a Turtle mapping document):
//
//	dec, err := rdf.NewTripleDecoder(strings.NewReader(input), rdf.FormatTurtle)
//	if err != nil {
//	    // handle error
//	}
//	defer dec.Close()
//
//	for {
//	    triple, err := dec.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error
//	    }
//	    // process triple.S, triple.P, triple.O
//	}
//
// For unsupported formats, NewTripleDecoder returns ErrUnsupportedFormat.
//
// Decoder options can be provided via NewTripleDecoderWithOptions to enforce
// line/statement limits on untrusted mapping input.
package rdf
