// Package normalize rewrites a flat RDF mapping graph into a canonical
// shape: every shortcut predicate expanded to an explicit map node, and
// every triples-map left with exactly one predicate-object map.
package normalize

import (
	"fmt"

	"github.com/google/uuid"
)

// BlankNodeCounter generates globally unique "b<n>" labels for one
// compilation run, mirroring rdf's blankNodeGenerator but threaded
// explicitly through the normaliser instead of held as package state.
type BlankNodeCounter struct {
	n int
}

// NewBlankNodeCounter starts a counter at seed; the first generated label
// is "b<seed+1>".
func NewBlankNodeCounter(seed int) *BlankNodeCounter {
	return &BlankNodeCounter{n: seed}
}

// Next returns the next blank-node label.
func (c *BlankNodeCounter) Next() string {
	c.n++
	return fmt.Sprintf("b%d", c.n)
}

// FreshTriplesMapIRI synthesises a globally unique IRI for a triples-map
// produced by predicate-object-map separation, by appending a random
// UUID suffix to the original triples-map IRI. Unlike the source's
// rand()-seeded generateUUID with no collision check, a v4 UUID's
// collision probability is low enough that no retry loop is needed.
func FreshTriplesMapIRI(original string) string {
	return original + uuid.New().String()
}
