// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/checkers-go/internal/config"
)

var (
	// Input options
	positionText = flag.String("p", "", "Position to analyse, e.g. W:W21-32:B1-12 (default: starting position)")
	moveList     = flag.String("m", "", "Moves to play from the position first, e.g. \"22-18 11-15\"")
	inputFile    = flag.String("f", "", "Batch file with one position per line, optionally followed by moves (- for stdin)")
	selectSquare = flag.String("s", "", "Only list the moves of the piece on this square (c3 or 22)")
	stopOnError  = flag.Bool("x", false, "Stop batch processing at the first line that cannot be analysed")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Draw the board before the move list")
	compact      = flag.Bool("compact", false, "Write moves on wrapped lines instead of one per line")
	lineLength   = flag.Int("w", 80, "Maximum line length for -compact")
	squareNames  = flag.Bool("names", false, "Write moves with square names (c3-d4) instead of numbers")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions in batch mode")
	checkFile          = flag.String("c", "", "File of positions already seen; matching inputs count as duplicates")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Report each position as it is processed")

	// Other options
	quiet   = flag.Bool("q", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("j", 0, "Number of worker goroutines in batch mode (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)

	cfg.Workers = *workers
	cfg.SuppressDuplicates = *suppressDuplicates || *checkFile != ""
	cfg.StopOnError = *stopOnError
	cfg.OutputFilename = *outputFile

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSON = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.Compact = *compact
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.SquareNames = *squareNames
	cfg.Output.Select = *selectSquare
}
