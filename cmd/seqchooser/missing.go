package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/seqChooser/chooser"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"path/filepath"
)

func missingUsage(missingFlags *flag.FlagSet) {
	fmt.Print(
		"missing - list the species present in one fasta file but not the other\n\n" +
			"Usage:\n" +
			"  seqchooser missing [options] -1 file1.txt -2 file2.txt\n\n" +
			"Options:\n")
	missingFlags.PrintDefaults()
}

func runMissing(args []string) {
	var err error
	missingFlags := flag.NewFlagSet("missing", flag.ExitOnError)

	file1 := missingFlags.String("1", "", "First aligned fasta file.")
	file2 := missingFlags.String("2", "", "Second aligned fasta file.")
	outDir := missingFlags.String("o", ".", "Directory to write "+chooser.MissingFile+" into.")

	err = missingFlags.Parse(args)
	exception.PanicOnErr(err)
	missingFlags.Usage = func() { missingUsage(missingFlags) }

	if *file1 == "" || *file2 == "" {
		missingFlags.Usage()
		errExit("\nERROR: must have inputs for -1 and -2")
	}

	job := load(*file1, *file2)
	path := filepath.Join(*outDir, chooser.MissingFile)
	job.WriteMissing(path)
	log.Printf("Wrote %s\n", path)
}
