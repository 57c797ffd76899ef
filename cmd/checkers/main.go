// checkers lists the legal moves of checkers positions, one at a time or in batches.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/output"
	"github.com/lgbarn/checkers-go/internal/processing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("checkers-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	writer := output.NewPositionWriter(cfg.OutputFile, cfg)
	ctx := &ProcessingContext{
		cfg:      cfg,
		detector: setupDuplicateDetector(cfg),
		writer:   writer,
	}

	var stats Stats
	if *inputFile != "" {
		stats = processBatch(ctx)
	} else {
		stats = processSingle(ctx, *positionText, processing.SplitMoveList(*moveList))
	}

	if err := writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	closeFiles(cfg)

	// Report statistics
	if *inputFile != "" {
		reportStatistics(cfg, stats)
	}
	if stats.Errors > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateDetector creates the duplicate detector and loads the check file if needed.
func setupDuplicateDetector(cfg *config.Config) *hashing.ThreadSafeDuplicateDetector {
	if !cfg.SuppressDuplicates {
		return nil
	}

	detector := hashing.NewThreadSafeDuplicateDetector(false, *duplicateCapacity)

	if *checkFile != "" {
		file, err := os.Open(*checkFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}
		defer file.Close()

		n, err := loadCheckFile(file, detector, *duplicateCapacity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}
		cfg.Logf(config.Summary, "Loaded %d positions from check file\n", n)
	}

	return detector
}

// processSingle analyses one position given on the command line.
func processSingle(ctx *ProcessingContext, position string, moves []string) Stats {
	a, err := analyzeInput(position, moves, ctx.cfg.Output.Select)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return Stats{Total: 1, Errors: 1}
	}
	if err := ctx.writer.WriteAnalysis(a); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return Stats{Total: 1, Errors: 1}
	}
	return Stats{Total: 1, Output: 1}
}

// processBatch reads the -f input and analyses every line.
func processBatch(ctx *ProcessingContext) Stats {
	var r io.Reader = os.Stdin
	name := "stdin"
	if *inputFile != "-" {
		file, err := os.Open(*inputFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", *inputFile, err)
			os.Exit(1)
		}
		defer file.Close()
		r, name = file, *inputFile
	}

	items, err := readItems(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", name, err)
		os.Exit(1)
	}
	ctx.cfg.Logf(config.Commentary, "Read %d positions from %s\n", len(items), name)

	return processItems(items, ctx)
}

// closeFiles closes output and log files opened from flags.
func closeFiles(cfg *config.Config) {
	if f, ok := cfg.OutputFile.(*os.File); ok && f != os.Stdout {
		f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
	if f, ok := cfg.LogFile.(*os.File); ok && f != os.Stderr {
		f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats Stats) {
	if cfg.SuppressDuplicates {
		cfg.Logf(config.Summary, "%d position(s) output, %d duplicate(s), %d error(s) out of %d.\n",
			stats.Output, stats.Duplicates, stats.Errors, stats.Total)
		return
	}
	cfg.Logf(config.Summary, "%d position(s) output, %d error(s) out of %d.\n",
		stats.Output, stats.Errors, stats.Total)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: checkers [options]\n\n")
	fmt.Fprintf(os.Stderr, "Lists the legal moves of a checkers position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPosition format (-p):\n")
	fmt.Fprintf(os.Stderr, "  W:W21,22,K30:B1-12   side to move, then each colour's pieces;\n")
	fmt.Fprintf(os.Stderr, "                       K marks a king, a-b is a range of slots\n")
	fmt.Fprintf(os.Stderr, "\nBatch input (-f):\n")
	fmt.Fprintf(os.Stderr, "  one position per line, optionally followed by moves to play;\n")
	fmt.Fprintf(os.Stderr, "  \"start\" is the starting position, # starts a comment line\n")
}
