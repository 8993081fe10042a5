package match

import (
	"github.com/dasnellings/seqChooser/header"
	"github.com/dasnellings/seqChooser/index"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry is the set of species present in both fasta files, keyed by
// species key. Isoform numbers play no part in membership.
type Registry struct {
	species map[string]struct{}
}

// Match returns the species that have at least one header in each of a and b.
// The result does not depend on the order of the arguments.
func Match(a, b *index.Record) Registry {
	inA := make(map[string]struct{})
	for _, h := range a.Headers {
		inA[h.Identity.SpeciesKey()] = struct{}{}
	}

	ans := Registry{species: make(map[string]struct{})}
	var key string
	for _, h := range b.Headers {
		key = h.Identity.SpeciesKey()
		if _, found := inA[key]; found {
			ans.species[key] = struct{}{}
		}
	}
	return ans
}

// Contains reports whether the species of id was found in both files.
func (r Registry) Contains(id header.Identity) bool {
	return r.ContainsKey(id.SpeciesKey())
}

// ContainsKey reports whether a species key was found in both files.
func (r Registry) ContainsKey(speciesKey string) bool {
	_, found := r.species[speciesKey]
	return found
}

// Len is the number of matched species.
func (r Registry) Len() int {
	return len(r.species)
}

// Species returns the matched species keys in sorted order.
func (r Registry) Species() []string {
	ans := maps.Keys(r.species)
	slices.Sort(ans)
	return ans
}
