package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/dasnellings/seqChooser/chooser"
	"log"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.1.0"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands.
// New subcommands can be added to seqchooser by adding a new entry to this array.
var SubCommands = []*subcommand{
	{"missing", runMissing, "list species present in only one of two files"},
	{"pair", runPair, "write every isoform pairing for species in both files"},
	{"summary", runSummary, "print isoform and alignment statistics for two files"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: seqchooser (species reconciliation for aligned protein fasta files)\n" +
			"Version: " + version + "\n" +
			"\nUsage:\tseqchooser file1.txt file2.txt\n" +
			"\tseqchooser <command> [options]\n\n" +
			"Run with two files to choose an output interactively.\n\n" +
			"Commands:\n")

	// add subcommand text via tabwriter so the columns align
	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

// commandMap builds a map of possible subcommands keyed on the name of the subcommand
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// check if first argument is a valid subcommand
	command := commandMap()[flag.Arg(0)]

	if command != nil {
		command(flag.Args()[1:])
		return
	}

	// otherwise expect the two input files
	if flag.NArg() != 2 {
		flag.Usage()
		errExit("\nERROR: must input two fasta files")
	}
	runInteractive(flag.Arg(0), flag.Arg(1))
}

func runInteractive(file1, file2 string) {
	job := load(file1, file2)

	sel, err := chooser.Prompt(os.Stdin, os.Stdout)
	fmt.Println()
	var selErr *chooser.InvalidSelectionError
	if errors.As(err, &selErr) {
		fmt.Println(selErr.Error())
		return
	}
	if err != nil {
		errExit("ERROR: " + err.Error())
	}

	written, err := job.Run(sel, ".")
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	for _, path := range written {
		log.Printf("Wrote %s\n", path)
	}
}

// load reads both input files, exiting if either cannot be read
func load(file1, file2 string) *chooser.Job {
	job, err := chooser.Load(file1, file2)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	return job
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
