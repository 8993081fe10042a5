// Package summary describes two indexed fasta files and how their species overlap.
package summary

import (
	"fmt"
	"github.com/dasnellings/seqChooser/index"
	"github.com/dasnellings/seqChooser/match"
	"github.com/dasnellings/seqChooser/missing"
	"github.com/dasnellings/seqChooser/pairing"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/numbers"
	"gonum.org/v1/gonum/stat"
	"log"
	"strings"
	"text/tabwriter"
)

// FileStats describes a single fasta file. Lengths count alignment columns,
// so gap characters are included and line breaks are not.
type FileStats struct {
	Name         string
	Headers      int
	Keys         int
	Species      int
	MinLength    int
	MaxLength    int
	MeanLength   float64
	StdDevLength float64
}

// Summary describes two fasta files and their overlap.
type Summary struct {
	File1           FileStats
	File2           FileStats
	Matched         int
	Missing1        int
	Missing2        int
	Pairs           int
	PairsPerSpecies []float64 // in the order of MatchedSpecies
	MatchedSpecies  []string
}

// Summarize computes a Summary for two indexed files and their match registry.
func Summarize(a, b *index.Record, matches match.Registry) Summary {
	var ans Summary
	ans.File1 = fileStats(a)
	ans.File2 = fileStats(b)
	ans.Matched = matches.Len()

	rep := missing.Find(a, b, matches)
	ans.Missing1 = len(rep.File1)
	ans.Missing2 = len(rep.File2)

	pairs := pairing.Pairs(a, b, matches)
	ans.Pairs = len(pairs)
	counts := pairing.CountBySpecies(a, pairs)
	ans.MatchedSpecies = matches.Species()
	ans.PairsPerSpecies = make([]float64, len(ans.MatchedSpecies))
	for i, s := range ans.MatchedSpecies {
		ans.PairsPerSpecies[i] = float64(counts[s])
	}
	return ans
}

func fileStats(r *index.Record) FileStats {
	ans := FileStats{
		Name:    r.Name,
		Headers: len(r.Headers),
		Keys:    r.Len(),
		Species: len(r.Species()),
	}
	if r.Len() == 0 {
		return ans
	}

	lengths := make([]float64, 0, r.Len())
	var seq string
	var length int
	for i, key := range r.Keys() {
		seq, _ = r.Sequence(key)
		length = alignedLength(seq)
		lengths = append(lengths, float64(length))
		if i == 0 {
			ans.MinLength, ans.MaxLength = length, length
			continue
		}
		ans.MinLength = numbers.Min(ans.MinLength, length)
		ans.MaxLength = numbers.Max(ans.MaxLength, length)
	}

	if len(lengths) > 1 {
		ans.MeanLength, ans.StdDevLength = stat.MeanStdDev(lengths, nil)
	} else {
		ans.MeanLength = lengths[0]
	}

	if ans.MinLength != ans.MaxLength {
		log.Printf("WARNING: sequences in '%s' have uneven aligned lengths (%d to %d). Input may not be a multiple sequence alignment.\n", r.Name, ans.MinLength, ans.MaxLength)
	}
	return ans
}

func alignedLength(seq string) int {
	var ans int
	for _, field := range strings.Fields(seq) {
		ans += len(field)
	}
	return ans
}

// String formats the Summary as an aligned table.
func (s Summary) String() string {
	b := new(strings.Builder)
	w := tabwriter.NewWriter(b, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "\tFile 1\tFile 2\n")
	fmt.Fprintf(w, "Name\t%s\t%s\n", s.File1.Name, s.File2.Name)
	fmt.Fprintf(w, "Headers\t%d\t%d\n", s.File1.Headers, s.File2.Headers)
	fmt.Fprintf(w, "Isoforms\t%d\t%d\n", s.File1.Keys, s.File2.Keys)
	fmt.Fprintf(w, "Species\t%d\t%d\n", s.File1.Species, s.File2.Species)
	fmt.Fprintf(w, "Missing from other file\t%d\t%d\n", s.Missing1, s.Missing2)
	fmt.Fprintf(w, "Aligned length (min-max)\t%d-%d\t%d-%d\n", s.File1.MinLength, s.File1.MaxLength, s.File2.MinLength, s.File2.MaxLength)
	fmt.Fprintf(w, "Aligned length (mean ± sd)\t%.1f ± %.1f\t%.1f ± %.1f\n", s.File1.MeanLength, s.File1.StdDevLength, s.File2.MeanLength, s.File2.StdDevLength)
	w.Flush()
	fmt.Fprintf(b, "\nSpecies in both files: %d\nIsoform pairs: %d\n", s.Matched, s.Pairs)
	return b.String()
}

// Plot draws the number of isoform pairs for each matched species, in sorted
// species order. Returns an empty string when no species matched.
func (s Summary) Plot() string {
	if len(s.PairsPerSpecies) == 0 {
		return ""
	}
	return asciigraph.Plot(s.PairsPerSpecies,
		asciigraph.Height(10),
		asciigraph.Precision(0),
		asciigraph.Caption("isoform pairs per matched species"))
}
