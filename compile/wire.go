package compile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/geoknoesis/rml2ra/graph"
)

const wireFieldSeparator = "|||"

// EncodeWire serialises triples into the flat exchange form used
// between phases: one triple per line, fields separated by "|||".
func EncodeWire(triples []graph.Triple) string {
	var b strings.Builder
	for _, t := range triples {
		fmt.Fprintf(&b, "%s%s%s%s%s\n", t.Subject, wireFieldSeparator, t.Predicate, wireFieldSeparator, t.Object)
	}
	return b.String()
}

// DecodeWire parses the "|||"-delimited wire form back into triples.
// Terms containing the literal sequence "|||" are out of contract and
// will split incorrectly, matching the source format's own limitation.
func DecodeWire(r io.Reader) ([]graph.Triple, error) {
	var out []graph.Triple
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, wireFieldSeparator, 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("compile: malformed wire line %d: expected 3 fields separated by %q", lineNum, wireFieldSeparator)
		}
		out = append(out, graph.Triple{Subject: fields[0], Predicate: fields[1], Object: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("compile: reading wire input: %w", err)
	}
	return out, nil
}
