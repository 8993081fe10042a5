package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/seqChooser/chooser"
	"github.com/vertgenlab/gonomics/exception"
	"log"
)

func pairUsage(pairFlags *flag.FlagSet) {
	fmt.Print(
		"pair - write every combination of isoforms for species present in both fasta files\n\n" +
			"Usage:\n" +
			"  seqchooser pair [options] -1 file1.txt -2 file2.txt\n\n" +
			"Options:\n")
	pairFlags.PrintDefaults()
}

func runPair(args []string) {
	var err error
	pairFlags := flag.NewFlagSet("pair", flag.ExitOnError)

	file1 := pairFlags.String("1", "", "First aligned fasta file.")
	file2 := pairFlags.String("2", "", "Second aligned fasta file.")
	outDir := pairFlags.String("o", ".", "Directory to write "+chooser.MissingFile+" and "+chooser.PairedFile+" into.")

	err = pairFlags.Parse(args)
	exception.PanicOnErr(err)
	pairFlags.Usage = func() { pairUsage(pairFlags) }

	if *file1 == "" || *file2 == "" {
		pairFlags.Usage()
		errExit("\nERROR: must have inputs for -1 and -2")
	}

	job := load(*file1, *file2)
	written, err := job.Run(chooser.SelectPairs, *outDir)
	exception.PanicOnErr(err)
	for _, path := range written {
		log.Printf("Wrote %s\n", path)
	}
}
