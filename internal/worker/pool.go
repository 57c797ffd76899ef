// Package worker provides a worker pool for parallel position analysis.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/checkers-go/internal/processing"
)

// WorkItem represents one input line to analyse.
type WorkItem struct {
	Input string // Position string, optionally followed by a move list
	Line  int    // 1-based input line number
	Index int    // Position in submission order, starting at 0
}

// ProcessResult represents the result of analysing one input line.
type ProcessResult struct {
	Input    string
	Line     int
	Index    int
	Analysis *processing.Analysis // nil when Error is set
	Error    error
	Skipped  bool // the pool was stopped before this item was analysed
}

// ProcessFunc analyses one work item. It must be safe to call from
// several goroutines at once.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem, bufferSize),
		resultChan:  make(chan ProcessResult, bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker analyses items until the work channel is closed. Once the pool
// is stopped, every remaining item still yields a result, marked Skipped,
// so index-ordered consumers are never left waiting for a gap.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			p.resultChan <- ProcessResult{Input: item.Input, Line: item.Line, Index: item.Index, Skipped: true}
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the items they have not started yet.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Ordered reads results and calls emit for each one in Index order,
// holding back results that arrive early. Indexes must run from 0 without
// gaps. It returns when results is closed.
func Ordered(results <-chan ProcessResult, emit func(ProcessResult)) {
	pending := make(map[int]ProcessResult)
	next := 0
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			emit(ready)
			next++
		}
	}
}
