// Package chooser loads two aligned fasta files and writes the missing
// species report and, optionally, every isoform pairing between them.
package chooser

import (
	"bufio"
	"fmt"
	"github.com/dasnellings/seqChooser/index"
	"github.com/dasnellings/seqChooser/match"
	"github.com/dasnellings/seqChooser/missing"
	"github.com/dasnellings/seqChooser/pairing"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"path/filepath"
	"strings"
)

const (
	MissingFile = "missing_species.txt"
	PairedFile  = "paired_sequences.txt"
)

const promptText = "Would you like to 1. check for missing species in files or 2. create an output file with pairs of all possible combinations of isoforms?"

// Selection is an option of the interactive menu.
type Selection string

const (
	SelectMissing Selection = "1" // missing species report only
	SelectPairs   Selection = "2" // missing species report and isoform pairs
)

// InputFileError is returned when an input file is not given or cannot be read.
type InputFileError struct {
	Path string
	Err  error
}

func (e *InputFileError) Error() string {
	return fmt.Sprintf("could not read input file '%s': %v", e.Path, e.Err)
}

func (e *InputFileError) Unwrap() error {
	return e.Err
}

// InvalidSelectionError is returned for a menu entry other than 1 or 2.
type InvalidSelectionError struct {
	Entry string
}

func (e *InvalidSelectionError) Error() string {
	return "Invalid entry"
}

// ParseSelection validates a menu entry. Only the line ending is removed.
func ParseSelection(entry string) (Selection, error) {
	switch s := Selection(strings.TrimRight(entry, "\r\n")); s {
	case SelectMissing, SelectPairs:
		return s, nil
	default:
		return "", &InvalidSelectionError{Entry: entry}
	}
}

// Prompt writes the menu to w and reads a single line selection from r.
func Prompt(r io.Reader, w io.Writer) (Selection, error) {
	_, err := fmt.Fprint(w, promptText)
	exception.PanicOnErr(err)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return ParseSelection(line)
}

// Job holds two indexed fasta files and the species they share.
type Job struct {
	File1   *index.Record
	File2   *index.Record
	Matches match.Registry
}

// Load reads both fasta files and matches their species. Both files are
// read before anything is written, so an unreadable file leaves no output.
func Load(file1, file2 string) (*Job, error) {
	a, err := index.ReadFile(file1)
	if err != nil {
		return nil, &InputFileError{Path: file1, Err: err}
	}
	b, err := index.ReadFile(file2)
	if err != nil {
		return nil, &InputFileError{Path: file2, Err: err}
	}
	return &Job{File1: a, File2: b, Matches: match.Match(a, b)}, nil
}

// Missing returns the missing species report.
func (j *Job) Missing() missing.Report {
	return missing.Find(j.File1, j.File2, j.Matches)
}

// Pairs returns every isoform pairing of the shared species.
func (j *Job) Pairs() []pairing.Pair {
	return pairing.Pairs(j.File1, j.File2, j.Matches)
}

// Run writes the outputs for sel into outDir and returns the paths written.
// Existing output files are overwritten.
func (j *Job) Run(sel Selection, outDir string) ([]string, error) {
	var written []string
	switch sel {
	case SelectMissing, SelectPairs:
	default:
		return nil, &InvalidSelectionError{Entry: string(sel)}
	}

	path := filepath.Join(outDir, MissingFile)
	j.WriteMissing(path)
	written = append(written, path)

	if sel == SelectPairs {
		path = filepath.Join(outDir, PairedFile)
		j.WritePairs(path)
		written = append(written, path)
	}
	return written, nil
}

// WriteMissing writes the missing species report to filename.
func (j *Job) WriteMissing(filename string) {
	out := fileio.EasyCreate(filename)
	err := missing.Write(out, j.Missing())
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)
}

// WritePairs writes every isoform pairing to filename.
func (j *Job) WritePairs(filename string) {
	out := fileio.EasyCreate(filename)
	err := pairing.Write(out, j.Pairs())
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)
}
