// processor.go - Position processing and output functions
package main

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/notation"
	"github.com/lgbarn/checkers-go/internal/output"
	"github.com/lgbarn/checkers-go/internal/processing"
	"github.com/lgbarn/checkers-go/internal/worker"
)

// startToken stands for the starting position in batch input.
const startToken = "start"

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg      *config.Config
	detector *hashing.ThreadSafeDuplicateDetector
	writer   output.PositionWriter
}

// Stats counts what a run did with its inputs.
type Stats struct {
	Total      int
	Output     int
	Duplicates int
	Errors     int
}

func (s *Stats) add(o Stats) {
	s.Total += o.Total
	s.Output += o.Output
	s.Duplicates += o.Duplicates
	s.Errors += o.Errors
}

// readItems reads batch input, skipping blank lines and # comments.
func readItems(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, worker.WorkItem{Input: text, Line: line, Index: len(items)})
	}
	return items, scanner.Err()
}

// splitInput separates a batch line into its position and move list. The
// position is the first field; "start" means the starting position.
func splitInput(input string) (position string, moves []string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}
	position = fields[0]
	if strings.EqualFold(position, startToken) {
		position = notation.InitialPosition
	}
	return position, processing.SplitMoveList(strings.Join(fields[1:], " "))
}

// analyzeInput does the CPU-bound work for one input. It is safe to call
// from several goroutines.
func analyzeInput(position string, moves []string, selectSquare string) (*processing.Analysis, error) {
	if len(moves) == 0 {
		return processing.AnalyzePosition(position, selectSquare)
	}

	a, result := processing.ReplayMoves(position, moves)
	if !result.Valid {
		return nil, result.Err
	}
	if strings.TrimSpace(selectSquare) == "" {
		return a, nil
	}
	return processing.AnalyzePosition(a.Position(), selectSquare)
}

// processItem analyses a single work item in a worker goroutine.
func processItem(item worker.WorkItem, ctx *ProcessingContext) worker.ProcessResult {
	result := worker.ProcessResult{
		Input: item.Input,
		Line:  item.Line,
		Index: item.Index,
	}

	position, moves := splitInput(item.Input)
	a, err := analyzeInput(position, moves, ctx.cfg.Output.Select)
	if err != nil {
		result.Error = err
		return result
	}
	result.Analysis = a
	return result
}

// handleResult checks for duplicates and writes one result. It runs on the
// single consumer goroutine, in input order.
func handleResult(result worker.ProcessResult, ctx *ProcessingContext) Stats {
	stats := Stats{Total: 1}

	if result.Error != nil {
		ctx.cfg.Logf(config.Commentary, "line %d: %v\n", result.Line, result.Error)
		if err := ctx.writer.WriteFailure(result.Line, result.Input, result.Error); err != nil {
			ctx.cfg.Logf(config.Silent, "Error writing output: %v\n", err)
		}
		stats.Errors++
		return stats
	}

	a := result.Analysis
	if ctx.detector != nil && ctx.detector.CheckAndAdd(a.Pieces(), a.Turn) {
		ctx.cfg.Logf(config.Commentary, "line %d: duplicate of an earlier position\n", result.Line)
		stats.Duplicates++
		return stats
	}

	ctx.cfg.Logf(config.Commentary, "line %d: %s, %d move(s)\n", result.Line, a.Position(), len(a.Moves))
	if err := ctx.writer.WriteAnalysis(a); err != nil {
		ctx.cfg.Logf(config.Silent, "Error writing output: %v\n", err)
	}
	stats.Output++
	return stats
}

// processItems analyses items and writes the results in input order.
func processItems(items []worker.WorkItem, ctx *ProcessingContext) Stats {
	numWorkers := ctx.cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers == 1 || len(items) < 2 {
		return processItemsSequential(items, ctx)
	}
	return processItemsParallel(items, ctx, numWorkers)
}

// processItemsSequential handles each item in turn on the calling goroutine.
func processItemsSequential(items []worker.WorkItem, ctx *ProcessingContext) Stats {
	var stats Stats
	for _, item := range items {
		result := handleResult(processItem(item, ctx), ctx)
		stats.add(result)
		if result.Errors > 0 && ctx.cfg.StopOnError {
			break
		}
	}
	return stats
}

// processItemsParallel analyses items on a worker pool.
//
// Concurrency model: workers only analyse. All results are consumed by the
// calling goroutine through worker.Ordered, so output order and duplicate
// detection match the sequential path.
func processItemsParallel(items []worker.WorkItem, ctx *ProcessingContext, numWorkers int) Stats {
	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return processItem(item, ctx)
	}

	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(numWorkers, bufferSize, processFunc)
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	var stats Stats
	stopped := false
	worker.Ordered(pool.Results(), func(r worker.ProcessResult) {
		if stopped || r.Skipped {
			return
		}
		result := handleResult(r, ctx)
		stats.add(result)
		if result.Errors > 0 && ctx.cfg.StopOnError {
			stopped = true
			pool.Stop()
		}
	})
	return stats
}

// loadCheckFile records every position in r as already seen.
func loadCheckFile(r io.Reader, detector *hashing.ThreadSafeDuplicateDetector, maxCapacity int) (int, error) {
	items, err := readItems(r)
	if err != nil {
		return 0, err
	}

	seen := hashing.NewDuplicateDetector(false, maxCapacity)
	loaded := 0
	for _, item := range items {
		position, moves := splitInput(item.Input)
		a, err := analyzeInput(position, moves, "")
		if err != nil {
			return loaded, fmt.Errorf("line %d: %w", item.Line, err)
		}
		seen.CheckAndAdd(a.Pieces(), a.Turn)
		loaded++
	}
	detector.LoadFromDetector(seen)
	return loaded, nil
}
