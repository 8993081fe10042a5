package index

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/dasnellings/seqChooser/header"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"log"
	"os"
	"strings"
)

const recordMarker = ">"

var gzipMagic = []byte{0x1f, 0x8b}

// Header is a single header line of a fasta file and its canonical identity.
type Header struct {
	Line     string // raw line without the trailing newline
	Identity header.Identity
}

// Display is the header line as it is written to reports, with the record marker removed.
func (h Header) Display() string {
	return strings.ReplaceAll(h.Line, recordMarker, "")
}

// Record maps the isoform-qualified key of each header in a fasta file to
// its sequence. Keys are kept in the order they were first seen. A Record is
// not modified after it is built.
type Record struct {
	Name    string   // file the record was read from, if any
	Headers []Header // every header line in file order, including duplicates
	keys    []string
	seqs    map[string]string
	ids     map[string]header.Identity
}

// IsHeader reports whether a line starts a new fasta record.
func IsHeader(line string) bool {
	return strings.Contains(line, recordMarker)
}

// Build indexes the lines of a fasta file. Lines must not include their
// trailing newline. Each sequence line is stored verbatim followed by a
// newline, so the multiple sequence alignment layout is kept as written.
//
// A header whose key was already seen replaces the earlier sequence but keeps
// the original key position.
func Build(lines []string) *Record {
	r := &Record{
		seqs: make(map[string]string),
		ids:  make(map[string]header.Identity),
	}
	var key string
	var inRecord bool
	seq := new(strings.Builder)

	for _, line := range lines {
		if !IsHeader(line) {
			seq.WriteString(line)
			seq.WriteByte('\n')
			continue
		}

		if inRecord {
			r.seqs[key] = seq.String()
		}
		seq.Reset()

		h := Header{Line: line, Identity: header.Normalize(line)}
		r.Headers = append(r.Headers, h)
		key = h.Identity.Key()
		inRecord = true

		if h.Identity.Empty() {
			log.Printf("WARNING: header '%s' has no species name.\n", line)
		}
		if _, found := r.seqs[key]; found {
			log.Printf("WARNING: header '%s' duplicates key '%s'. Earlier sequence will be replaced.\n", line, key)
		} else {
			r.keys = append(r.keys, key)
		}
		r.seqs[key] = ""
		r.ids[key] = h.Identity
	}

	// the last header always receives the lines that follow it
	if inRecord {
		r.seqs[key] = seq.String()
	}
	return r
}

// ReadFile reads and indexes a fasta file. Gzipped files are read transparently.
// An error is returned if the file does not exist, is a directory, cannot be
// opened, or has the .gz suffix without being gzipped.
func ReadFile(filename string) (*Record, error) {
	if err := checkReadable(filename); err != nil {
		return nil, err
	}

	var lines []string
	var line string
	var done bool
	file := fileio.EasyOpen(filename)
	for line, done = fileio.EasyNextLine(file); !done; line, done = fileio.EasyNextLine(file) {
		lines = append(lines, line)
	}
	err := file.Close()
	exception.PanicOnErr(err)

	r := Build(lines)
	r.Name = filename
	return r, nil
}

func checkReadable(filename string) error {
	if filename == "" {
		return errors.New("no file name given")
	}
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	// fileio exits the process on a .gz file that is not gzipped
	if strings.HasSuffix(filename, ".gz") {
		magic := make([]byte, len(gzipMagic))
		if _, err = io.ReadFull(f, magic); err != nil || !bytes.Equal(magic, gzipMagic) {
			return fmt.Errorf("%s has the .gz suffix, but is not a gzip file", filename)
		}
	}
	return nil
}

// Keys returns the isoform-qualified keys in first-seen order.
func (r *Record) Keys() []string {
	ans := make([]string, len(r.keys))
	copy(ans, r.keys)
	return ans
}

// Len is the number of distinct keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Sequence returns the sequence stored under key.
func (r *Record) Sequence(key string) (string, bool) {
	seq, found := r.seqs[key]
	return seq, found
}

// Identity returns the canonical identity stored under key.
func (r *Record) Identity(key string) header.Identity {
	return r.ids[key]
}

// Species returns the distinct species keys in first-seen order.
func (r *Record) Species() []string {
	var ans []string
	seen := make(map[string]bool)
	for _, key := range r.keys {
		s := r.ids[key].SpeciesKey()
		if !seen[s] {
			seen[s] = true
			ans = append(ans, s)
		}
	}
	return ans
}
