// Package pairing enumerates every combination of isoforms between two fasta
// files for the species they have in common, for input to pairwise analyses
// such as direct coupling analysis.
//
// Each record in the output is headed by the canonical key rather than the
// original header text: the sorted lowercase species words followed by
// "isoform N" when the header named an isoform. For example both
// ">Saccharomyces_cerevisiae isoform X1" and ">cerevisiae Saccharomyces (isoform 1)"
// are written as ">cerevisiae saccharomyces isoform 1".
package pairing

import (
	"github.com/dasnellings/seqChooser/index"
	"github.com/dasnellings/seqChooser/match"
	"io"
	"strings"
)

// Pair is one isoform from the first file and one isoform of the same
// species from the second file.
type Pair struct {
	Key1 string
	Seq1 string
	Key2 string
	Seq2 string
}

// String formats the pair as two fasta records.
func (p Pair) String() string {
	s := new(strings.Builder)
	s.WriteString(">" + p.Key1 + "\n")
	s.WriteString(p.Seq1 + "\n")
	s.WriteString(">" + p.Key2 + "\n")
	s.WriteString(p.Seq2 + "\n")
	return s.String()
}

// Pairs returns every pair of keys from a and b that belong to the same
// matched species. A species with i isoforms in a and j isoforms in b
// produces i*j pairs. Pairs are ordered by the keys of a, then the keys of b.
func Pairs(a, b *index.Record, matches match.Registry) []Pair {
	var ans []Pair
	keysA, keysB := a.Keys(), b.Keys()
	for _, k1 := range keysA {
		id1 := a.Identity(k1)
		if !matches.Contains(id1) {
			continue
		}
		for _, k2 := range keysB {
			id2 := b.Identity(k2)
			if !matches.Contains(id2) || !id1.SameSpecies(id2) {
				continue
			}
			seq1, _ := a.Sequence(k1)
			seq2, _ := b.Sequence(k2)
			ans = append(ans, Pair{Key1: k1, Seq1: seq1, Key2: k2, Seq2: seq2})
		}
	}
	return ans
}

// Write writes each pair to w in order.
func Write(w io.Writer, pairs []Pair) error {
	var err error
	for i := range pairs {
		if _, err = io.WriteString(w, pairs[i].String()); err != nil {
			return err
		}
	}
	return nil
}

// CountBySpecies returns the number of pairs for each species key.
func CountBySpecies(a *index.Record, pairs []Pair) map[string]int {
	ans := make(map[string]int)
	for _, p := range pairs {
		ans[a.Identity(p.Key1).SpeciesKey()]++
	}
	return ans
}
