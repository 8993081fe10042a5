package header

import (
	"golang.org/x/exp/slices"
	"strings"
	"unicode"
)

const (
	isoformWord = "isoform"
	isomerWord  = "isomer"
)

// formatting removes punctuation that is not part of a species name and
// separates underscore-delimited words.
var formatting = strings.NewReplacer(
	">", "",
	"\n", "",
	"\r", "",
	"(", "",
	")", "",
	".", "",
	"\u2028", "",
	"_", " ",
	isoformWord, " "+isoformWord+" ",
)

// Identity is the canonical form of a fasta header. Species holds the sorted
// lowercase species words and Isoform holds the isoform number, if any.
type Identity struct {
	Species []string
	Isoform string
}

// Normalize converts a raw fasta header line into an Identity. Capitalization,
// punctuation, underscores, repeated whitespace and word order do not affect
// the result. Headers without any species words return an empty Identity.
func Normalize(line string) Identity {
	var ans Identity
	words := strings.Fields(formatting.Replace(strings.ToLower(line)))

	var afterIsoform bool
	for _, word := range words {
		switch {
		case word == isoformWord:
			afterIsoform = true
			continue
		case word == isomerWord:
		case hasDigit(word):
			if num, ok := isoformNumber(word, afterIsoform); ok && ans.Isoform == "" {
				ans.Isoform = num
			}
		default:
			ans.Species = append(ans.Species, word)
		}
		afterIsoform = false
	}

	slices.Sort(ans.Species)
	return ans
}

// isoformNumber returns the digits of word when it names an isoform, either as
// an x-prefixed number (X1) or as a plain number following the word isoform.
// Words with an x elsewhere, such as lox2, are not isoforms.
func isoformNumber(word string, afterIsoform bool) (string, bool) {
	if word[0] == 'x' && isDigits(word[1:]) {
		return word[1:], true
	}
	if afterIsoform && isDigits(word) {
		return word, true
	}
	return "", false
}

// Key is the isoform-qualified string form of the identity.
func (id Identity) Key() string {
	if id.Isoform == "" {
		return id.SpeciesKey()
	}
	return id.SpeciesKey() + " " + isoformWord + " " + id.Isoform
}

// SpeciesKey is the string form of the identity with the isoform removed.
// Two isoforms of the same species share a SpeciesKey.
func (id Identity) SpeciesKey() string {
	return strings.Join(id.Species, " ")
}

// Empty reports whether the header held no species words.
func (id Identity) Empty() bool {
	return len(id.Species) == 0
}

// Equal reports whether two identities name the same species and isoform.
func (id Identity) Equal(other Identity) bool {
	return id.Isoform == other.Isoform && slices.Equal(id.Species, other.Species)
}

// SameSpecies reports whether two identities name the same species, ignoring isoform.
func (id Identity) SameSpecies(other Identity) bool {
	return slices.Equal(id.Species, other.Species)
}

func (id Identity) String() string {
	return id.Key()
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) != -1
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
