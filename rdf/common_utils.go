package rdf

import "fmt"

// blankNodeGenerator generates sequential "b<n>" blank node IDs for one parser.
// It holds a plain counter with no locking, so it is not safe for concurrent use.
type blankNodeGenerator struct {
	counter int
}

// newBlankNodeGenerator creates a new blank node generator.
func newBlankNodeGenerator() *blankNodeGenerator {
	return &blankNodeGenerator{counter: 0}
}

// next generates the next blank node ID.
func (g *blankNodeGenerator) next() BlankNode {
	g.counter++
	return BlankNode{ID: fmt.Sprintf("b%d", g.counter)}
}

// reset resets the counter (useful for testing).
func (g *blankNodeGenerator) reset() {
	g.counter = 0
}
