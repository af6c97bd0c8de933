package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Triple decoder for N-Triples
type ntTripleDecoder struct {
	reader      *bufio.Reader
	err         error
	opts        DecodeOptions
	lineNum     int   // Current line number (1-based)
	tripleCount int64 // Number of triples processed
}

func newNTriplesTripleDecoder(r io.Reader) TripleDecoder {
	return newNTriplesTripleDecoderWithOptions(r, DefaultDecodeOptions())
}

func newNTriplesTripleDecoderWithOptions(r io.Reader, opts DecodeOptions) TripleDecoder {
	return &ntTripleDecoder{
		reader:      bufio.NewReader(r),
		opts:        normalizeDecodeOptions(opts),
		lineNum:     0,
		tripleCount: 0,
	}
}

func (d *ntTripleDecoder) Next() (Triple, error) {
	for {
		if err := checkDecodeContext(d.opts.Context); err != nil {
			d.err = err
			return Triple{}, err
		}
		line, err := d.readLine()
		if err != nil {
			if err == io.EOF {
				return Triple{}, io.EOF
			}
			d.err = err
			return Triple{}, err
		}
		d.lineNum++
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		triple, err := parseNTTripleLine(line)
		if err != nil {
			err = WrapParseErrorWithPosition("ntriples", line, d.lineNum, 0, -1, err)
			d.err = err
			return Triple{}, err
		}
		d.tripleCount++
		return triple, nil
	}
}

func (d *ntTripleDecoder) Err() error { return d.err }
func (d *ntTripleDecoder) Close() error {
	return nil
}

func (d *ntTripleDecoder) readLine() (string, error) {
	return readLineWithLimit(d.reader, d.opts.MaxLineBytes)
}

func parseNTTripleLine(line string) (Triple, error) {
	cursor, subject, predicate, object, err := parseNTCore(line, "N-Triples")
	if err != nil {
		return Triple{}, err
	}
	cursor.skipWS()
	if !cursor.consume('.') {
		return Triple{}, cursor.errorf("expected '.' at end of statement")
	}
	cursor.skipWS()
	if cursor.pos < len(cursor.input) {
		if cursor.input[cursor.pos] == '#' {
			// Comment - rest of line is ignored, this is valid
			return Triple{S: subject, P: predicate, O: object}, nil
		}
		if cursor.input[cursor.pos] != '\n' && cursor.input[cursor.pos] != '\r' {
			return Triple{}, cursor.errorf("unexpected trailing content")
		}
	}
	return Triple{S: subject, P: predicate, O: object}, nil
}

func parseNTCore(line string, context string) (*ntCursor, Term, IRI, Term, error) {
	cursor := &ntCursor{input: line}
	cursor.skipWS()
	subject, err := cursor.parseSubject()
	if err != nil {
		return cursor, nil, IRI{}, nil, err
	}
	cursor.skipWS()
	if strings.HasPrefix(cursor.input[cursor.pos:], "<<") {
		return cursor, nil, IRI{}, nil, cursor.errorf("triple term cannot be used as predicate")
	}
	predicate, err := cursor.parseIRI()
	if err != nil {
		return cursor, nil, IRI{}, nil, err
	}
	object, err := cursor.parseObject()
	if err != nil {
		return cursor, nil, IRI{}, nil, err
	}
	return cursor, subject, predicate, object, nil
}

type ntCursor struct {
	input string
	pos   int
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseSubject() (Term, error) {
	c.skipWS()
	term, err := c.parseTerm(false)
	if err != nil {
		return nil, err
	}
	return term, nil
}

func (c *ntCursor) parseObject() (Term, error) {
	c.skipWS()
	return c.parseTerm(true)
}

func (c *ntCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of line")
	}
	switch {
	case strings.HasPrefix(c.input[c.pos:], "<<"):
		return c.parseTripleTerm()
	case c.input[c.pos] == '<':
		iri, err := c.parseIRI()
		return iri, err
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, c.errorf("unexpected token")
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	c.skipWS()
	if c.pos >= len(c.input) || c.input[c.pos] != '<' {
		return IRI{}, c.errorf("expected IRI")
	}
	c.pos++ // Consume '<'
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		ch := c.input[c.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			return IRI{}, c.errorf("invalid character in IRI")
		}
		if ch == '\\' {
			if c.pos+1 < len(c.input) {
				next := c.input[c.pos+1]
				if next == 'u' {
					if c.pos+5 >= len(c.input) {
						return IRI{}, c.errorf("invalid character in IRI")
					}
					for i := 2; i < 6; i++ {
						hex := c.input[c.pos+i]
						if !((hex >= '0' && hex <= '9') || (hex >= 'a' && hex <= 'f') || (hex >= 'A' && hex <= 'F')) {
							return IRI{}, c.errorf("invalid character in IRI")
						}
					}
					c.pos += 6
					continue
				} else if next == 'U' {
					if c.pos+9 >= len(c.input) {
						return IRI{}, c.errorf("invalid character in IRI")
					}
					for i := 2; i < 10; i++ {
						hex := c.input[c.pos+i]
						if !((hex >= '0' && hex <= '9') || (hex >= 'a' && hex <= 'f') || (hex >= 'A' && hex <= 'F')) {
							return IRI{}, c.errorf("invalid character in IRI")
						}
					}
					c.pos += 10
					continue
				} else {
					return IRI{}, c.errorf("invalid character in IRI")
				}
			}
		}
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, c.errorf("unterminated IRI")
	}
	value := c.input[start:c.pos]
	c.pos++ // Advance past '>'
	return IRI{Value: value}, nil
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], "_:") {
		return BlankNode{}, c.errorf("expected blank node")
	}
	c.pos += 2
	if c.pos < len(c.input) && c.input[c.pos] == ':' {
		return BlankNode{}, c.errorf("invalid blank node syntax")
	}
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		if c.input[c.pos] == ':' {
			return BlankNode{}, c.errorf("invalid blank node syntax")
		}
		c.pos++
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	c.skipWS()
	if !c.consume('"') {
		return Literal{}, c.errorf("expected literal")
	}
	var escapedBuilder strings.Builder
	escapeNext := false
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if escapeNext {
			escapedBuilder.WriteByte('\\')
			escapedBuilder.WriteByte(ch)
			c.pos++
			escapeNext = false
			if ch == 'u' {
				if c.pos+4 > len(c.input) {
					return Literal{}, c.errorf("invalid escape sequence")
				}
				for i := 0; i < 4 && c.pos < len(c.input); i++ {
					escapedBuilder.WriteByte(c.input[c.pos])
					c.pos++
				}
			} else if ch == 'U' {
				if c.pos+8 > len(c.input) {
					return Literal{}, c.errorf("invalid escape sequence")
				}
				for i := 0; i < 8 && c.pos < len(c.input); i++ {
					escapedBuilder.WriteByte(c.input[c.pos])
					c.pos++
				}
			}
			continue
		}
		if ch == '\\' {
			if c.pos+1 >= len(c.input) {
				return Literal{}, c.errorf("unterminated escape")
			}
			escapeNext = true
			c.pos++
			continue
		}
		if ch == '"' {
			c.pos++
			break
		}
		escapedBuilder.WriteByte(ch)
		c.pos++
	}
	if escapeNext {
		return Literal{}, c.errorf("unterminated escape")
	}

	lexical, err := UnescapeString(escapedBuilder.String())
	if err != nil {
		return Literal{}, c.errorf("%v", err)
	}
	c.skipWS()
	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
			c.pos++
		}
		lang := c.input[start:c.pos]
		if !isValidLangTag(lang) {
			return Literal{}, c.errorf("invalid language tag")
		}
		return Literal{Lexical: lexical, Lang: lang}, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		if dt.Value == rdfLangStringIRI || dt.Value == rdfDirLangStringIRI {
			return Literal{}, c.errorf("langString and dirLangString cannot be used as explicit datatypes")
		}
		return Literal{Lexical: lexical, Datatype: dt}, nil
	}
	return Literal{Lexical: lexical}, nil
}

func (c *ntCursor) parseTripleTerm() (Term, error) {
	if !strings.HasPrefix(c.input[c.pos:], "<<") {
		return nil, c.errorf("expected '<<'")
	}
	c.pos += 2
	c.skipWS()
	hasParens := c.consume('(')
	c.skipWS()

	subject, err := c.parseSubject()
	if err != nil {
		return nil, err
	}
	predicate, err := c.parseIRI()
	if err != nil {
		return nil, err
	}
	object, err := c.parseObject()
	if err != nil {
		return nil, err
	}

	c.skipWS()
	if hasParens && !c.consume(')') {
		return nil, c.errorf("expected ')'")
	}
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], ">>") {
		return nil, c.errorf("expected '>>'")
	}
	c.pos += 2
	return TripleTerm{S: subject, P: predicate, O: object}, nil
}

func (c *ntCursor) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("ntriples: "+format, args...)
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '.', ')', '<', '>':
		return true
	default:
		return false
	}
}
