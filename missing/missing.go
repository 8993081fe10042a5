// Package missing lists the headers of each fasta file whose species is not
// present in the other file.
package missing

import (
	"github.com/dasnellings/seqChooser/index"
	"github.com/dasnellings/seqChooser/match"
	"io"
	"strings"
)

const (
	captionIndent = "                    "
	captionFile1  = "File 1 species missing from file 2:"
	captionFile2  = "File 2 species missing from file 1:"
)

// Report holds the display text of every header that has no species match.
// Each header is listed on its own, so a species with several unmatched
// isoforms appears once per isoform.
type Report struct {
	File1 []string
	File2 []string
}

// Find builds the Report for two indexed files and their match registry.
func Find(a, b *index.Record, matches match.Registry) Report {
	return Report{
		File1: unmatched(a, matches),
		File2: unmatched(b, matches),
	}
}

func unmatched(r *index.Record, matches match.Registry) []string {
	var ans []string
	for _, h := range r.Headers {
		if !matches.Contains(h.Identity) {
			ans = append(ans, h.Display())
		}
	}
	return ans
}

// Empty reports whether both files have every species in common.
func (rep Report) Empty() bool {
	return len(rep.File1) == 0 && len(rep.File2) == 0
}

// String formats the Report as two captioned sections.
func (rep Report) String() string {
	s := new(strings.Builder)
	s.WriteString("\n" + captionIndent + captionFile1 + "\n")
	for _, line := range rep.File1 {
		s.WriteString(line + "\n")
	}
	s.WriteString("\n\n\n" + captionIndent + captionFile2 + "\n")
	for _, line := range rep.File2 {
		s.WriteString(line + "\n")
	}
	return s.String()
}

// Write writes the formatted Report to w.
func Write(w io.Writer, rep Report) error {
	_, err := io.WriteString(w, rep.String())
	return err
}
