package rdf

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

const (
	rdfLangStringIRI    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
	rdfDirLangStringIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#dirLangString"
)

// checkDecodeContext returns an error if ctx has been canceled.
func checkDecodeContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// readLineWithLimit reads a single line, including its trailing "\n" when
// present, and rejects lines longer than maxBytes (0 or negative disables
// the limit).
func readLineWithLimit(r *bufio.Reader, maxBytes int) (string, error) {
	var sb strings.Builder
	for {
		chunk, err := r.ReadString('\n')
		sb.WriteString(chunk)
		if maxBytes > 0 && sb.Len() > maxBytes {
			return "", fmt.Errorf("line exceeds maximum length of %d bytes", maxBytes)
		}
		if err != nil {
			return sb.String(), err
		}
		break
	}
	return sb.String(), nil
}

// WrapParseError annotates a parse error with the source format, the
// offending statement (when non-empty), and a line number (-1 when unknown).
func WrapParseError(format, statement string, line int, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case statement != "" && line >= 0:
		return fmt.Errorf("%s: line %d: %q: %w", format, line, statement, err)
	case statement != "":
		return fmt.Errorf("%s: %q: %w", format, statement, err)
	case line >= 0:
		return fmt.Errorf("%s: line %d: %w", format, line, err)
	default:
		return fmt.Errorf("%s: %w", format, err)
	}
}

// WrapParseErrorWithPosition annotates a parse error with source position
// information (line, column, and length; a negative length is ignored).
func WrapParseErrorWithPosition(format, statement string, line, column, length int, err error) error {
	if err == nil {
		return nil
	}
	if length >= 0 {
		return fmt.Errorf("%s: line %d, column %d (len %d): %q: %w", format, line, column, length, statement, err)
	}
	return fmt.Errorf("%s: line %d, column %d: %q: %w", format, line, column, statement, err)
}

// UnescapeString resolves backslash escapes in a literal's lexical form
// as defined by the Turtle/N-Triples string grammar.
func UnescapeString(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != '\\' {
			sb.WriteByte(ch)
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("trailing backslash in string literal")
		}
		i++
		switch s[i] {
		case 't':
			sb.WriteByte('\t')
		case 'b':
			sb.WriteByte('\b')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 'f':
			sb.WriteByte('\f')
		case '"':
			sb.WriteByte('"')
		case '\'':
			sb.WriteByte('\'')
		case '\\':
			sb.WriteByte('\\')
		case 'u':
			if i+4 >= len(s) {
				return "", fmt.Errorf("invalid \\u escape in string literal")
			}
			var r rune
			if _, err := fmt.Sscanf(s[i+1:i+5], "%04x", &r); err != nil {
				return "", fmt.Errorf("invalid \\u escape in string literal: %w", err)
			}
			sb.WriteRune(r)
			i += 4
		case 'U':
			if i+8 >= len(s) {
				return "", fmt.Errorf("invalid \\U escape in string literal")
			}
			var r rune
			if _, err := fmt.Sscanf(s[i+1:i+9], "%08x", &r); err != nil {
				return "", fmt.Errorf("invalid \\U escape in string literal: %w", err)
			}
			sb.WriteRune(r)
			i += 8
		default:
			return "", fmt.Errorf("unsupported escape sequence: \\%c", s[i])
		}
	}
	return sb.String(), nil
}

// isValidLangTag reports whether tag looks like a syntactically valid
// BCP 47 language tag: one or more alphanumeric subtags separated by hyphens,
// the first subtag being alphabetic.
func isValidLangTag(tag string) bool {
	if tag == "" {
		return false
	}
	parts := strings.Split(tag, "-")
	for idx, part := range parts {
		if part == "" {
			return false
		}
		for _, r := range part {
			isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			isDigit := r >= '0' && r <= '9'
			if idx == 0 {
				if !isAlpha {
					return false
				}
			} else if !isAlpha && !isDigit {
				return false
			}
		}
	}
	return true
}
