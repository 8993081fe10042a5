package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/seqChooser/summary"
	"github.com/vertgenlab/gonomics/exception"
	"log"
)

func summaryUsage(summaryFlags *flag.FlagSet) {
	fmt.Print(
		"summary - print isoform counts, species overlap, and aligned sequence lengths for two fasta files\n\n" +
			"Usage:\n" +
			"  seqchooser summary [options] -1 file1.txt -2 file2.txt\n\n" +
			"Options:\n")
	summaryFlags.PrintDefaults()
}

func runSummary(args []string) {
	var err error
	summaryFlags := flag.NewFlagSet("summary", flag.ExitOnError)

	file1 := summaryFlags.String("1", "", "First aligned fasta file.")
	file2 := summaryFlags.String("2", "", "Second aligned fasta file.")
	plot := summaryFlags.Bool("plot", false, "Plot the number of isoform pairs for each species found in both files.")
	png := summaryFlags.String("png", "", "Save a bar chart of isoform pairs for each species found in both files to this image file.")

	err = summaryFlags.Parse(args)
	exception.PanicOnErr(err)
	summaryFlags.Usage = func() { summaryUsage(summaryFlags) }

	if *file1 == "" || *file2 == "" {
		summaryFlags.Usage()
		errExit("\nERROR: must have inputs for -1 and -2")
	}

	job := load(*file1, *file2)
	s := summary.Summarize(job.File1, job.File2, job.Matches)
	fmt.Print(s.String())
	if *plot && s.Matched > 0 {
		fmt.Println()
		fmt.Println(s.Plot())
	}
	if *png != "" {
		if err = s.SavePlot(*png); err != nil {
			errExit("ERROR: " + err.Error())
		}
		log.Printf("Wrote %s\n", *png)
	}
}
