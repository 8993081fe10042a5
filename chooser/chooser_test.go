package chooser

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, data string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestRunPairs(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFile(t, dir, "file1.txt", ">Yeast isoform 1\nABCDE\n>Yeast isoform 2\nFGHIJ\n")
	f2 := writeFile(t, dir, "file2.txt", ">Yeast isoform 1\nKLMNO\n")

	job, err := Load(f1, f2)
	if err != nil {
		t.Fatal(err)
	}
	written, err := job.Run(SelectPairs, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 2 {
		t.Fatalf("expected 2 output files, got %v", written)
	}

	expected := ">yeast isoform 1\nABCDE\n\n>yeast isoform 1\nKLMNO\n\n" +
		">yeast isoform 2\nFGHIJ\n\n>yeast isoform 1\nKLMNO\n\n"
	if got := readFile(t, filepath.Join(dir, PairedFile)); got != expected {
		t.Errorf("paired sequences: got %q, expected %q", got, expected)
	}

	expectedMissing := "\n                    File 1 species missing from file 2:\n" +
		"\n\n\n                    File 2 species missing from file 1:\n"
	if got := readFile(t, filepath.Join(dir, MissingFile)); got != expectedMissing {
		t.Errorf("missing species: got %q, expected %q", got, expectedMissing)
	}
}

func TestRunMissing(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFile(t, dir, "file1.txt", ">Yeast\nABCDE\n>Frog\nFGHIJ\n")
	f2 := writeFile(t, dir, "file2.txt", ">yeast\nKLMNO\n")

	job, err := Load(f1, f2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = job.Run(SelectMissing, dir); err != nil {
		t.Fatal(err)
	}

	expected := "\n                    File 1 species missing from file 2:\n" +
		"Frog\n" +
		"\n\n\n                    File 2 species missing from file 1:\n"
	if got := readFile(t, filepath.Join(dir, MissingFile)); got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
	if _, err = os.Stat(filepath.Join(dir, PairedFile)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("paired sequences should only be written for selection 2")
	}
}

func TestRunOverwrites(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFile(t, dir, "file1.txt", ">Frog\nABCDE\n")
	f2 := writeFile(t, dir, "file2.txt", ">Frog\nKLMNO\n")
	writeFile(t, dir, MissingFile, "stale output")

	job, err := Load(f1, f2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = job.Run(SelectMissing, dir); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(readFile(t, filepath.Join(dir, MissingFile)), "stale") {
		t.Errorf("expected previous output to be overwritten")
	}
}

func TestRunInvalidSelection(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFile(t, dir, "file1.txt", ">Frog\nABCDE\n")
	f2 := writeFile(t, dir, "file2.txt", ">Toad\nKLMNO\n")
	job, err := Load(f1, f2)
	if err != nil {
		t.Fatal(err)
	}

	var selErr *InvalidSelectionError
	if _, err = job.Run(Selection("3"), dir); !errors.As(err, &selErr) {
		t.Fatalf("expected InvalidSelectionError, got %v", err)
	}
	if _, err = os.Stat(filepath.Join(dir, MissingFile)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("no output should be written for an invalid selection")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFile(t, dir, "file1.txt", ">Frog\nABCDE\n")
	absent := filepath.Join(dir, "absent.txt")

	var inErr *InputFileError
	_, err := Load(f1, absent)
	if !errors.As(err, &inErr) {
		t.Fatalf("expected InputFileError, got %v", err)
	}
	if inErr.Path != absent || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("unexpected error: %v", err)
	}

	if _, err = Load("", f1); !errors.As(err, &inErr) {
		t.Errorf("expected InputFileError for missing argument, got %v", err)
	}

	notGzip := writeFile(t, dir, "file2.txt.gz", ">Frog\nKLMNO\n")
	if _, err = Load(f1, notGzip); !errors.As(err, &inErr) || inErr.Path != notGzip {
		t.Errorf("expected InputFileError for a .gz file that is not gzipped, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Errorf("no output should be written when an input is unreadable")
	}
}

func TestPrompt(t *testing.T) {
	var tests = []struct {
		input    string
		expected Selection
		valid    bool
	}{
		{"1\n", SelectMissing, true},
		{"2\n", SelectPairs, true},
		{"2", SelectPairs, true},
		{"1\r\n", SelectMissing, true},
		{" 1 \r\n", "", false},
		{"2 \n", "", false},
		{"3\n", "", false},
		{"12\n", "", false},
		{"\n", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		var out bytes.Buffer
		sel, err := Prompt(strings.NewReader(test.input), &out)
		if !strings.Contains(out.String(), "1. check for missing species") {
			t.Errorf("prompt not written: %q", out.String())
		}
		if test.valid {
			if err != nil || sel != test.expected {
				t.Errorf("Prompt(%q): got %q, %v, expected %q", test.input, sel, err, test.expected)
			}
			continue
		}
		var selErr *InvalidSelectionError
		if !errors.As(err, &selErr) {
			t.Errorf("Prompt(%q): expected InvalidSelectionError, got %v", test.input, err)
		} else if selErr.Error() != "Invalid entry" {
			t.Errorf("unexpected message: %s", selErr.Error())
		}
	}
}
