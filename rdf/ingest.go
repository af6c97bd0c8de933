package rdf

import "io"

// NewTripleDecoder returns a streaming triple decoder for the given format.
// The Turtle and N-Triples decoders read r incrementally; the JSON-LD
// decoder reads and expands the whole document when it is created.
func NewTripleDecoder(r io.Reader, format Format) (TripleDecoder, error) {
	return NewTripleDecoderWithOptions(r, format, DefaultDecodeOptions())
}

// NewTripleDecoderWithOptions is like NewTripleDecoder but allows tuning
// parser limits via opts.
func NewTripleDecoderWithOptions(r io.Reader, format Format, opts DecodeOptions) (TripleDecoder, error) {
	switch format {
	case FormatTurtle:
		return newTurtleTripleDecoderWithOptions(r, opts), nil
	case FormatNTriples:
		return newNTriplesTripleDecoderWithOptions(r, opts), nil
	case FormatJSONLD:
		return newJSONLDTripleDecoderWithOptions(r, opts)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ParseTriples decodes every triple in r under the given format, returning
// them as a slice. It is a convenience wrapper around NewTripleDecoder for
// small mapping documents.
func ParseTriples(r io.Reader, format Format) ([]Triple, error) {
	dec, err := NewTripleDecoder(r, format)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Triple
	for {
		t, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
