package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joshuapare/growkit/growarray"
	"github.com/joshuapare/growkit/internal/rusage"
)

// cancelCheckInterval is how many operations run between context checks.
const cancelCheckInterval = 4096

// Phase names, in execution order.
const (
	PhaseAddEnd      = "add-end"
	PhaseAddStart    = "add-start"
	PhaseInsertAt    = "insert-at"
	PhaseRemoveEnd   = "remove-end"
	PhaseRemoveStart = "remove-start"
	PhaseSum         = "sum"
)

// PhaseResult is the timing of one phase.
type PhaseResult struct {
	Name    string        `json:"name"`
	Ops     int           `json:"ops"`
	Elapsed time.Duration `json:"elapsed_ns"`
	// Size and Capacity are the array dimensions after the phase.
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
	Grows    int `json:"grows"`
}

// Result is the outcome of a run.
type Result struct {
	Config Config `json:"config"`

	// Sum is the total of the elements left after the removal phases.
	Sum      int64 `json:"sum"`
	Size     int   `json:"size"`
	Capacity int   `json:"capacity"`
	Grows    int   `json:"grows"`

	Elapsed   time.Duration `json:"elapsed_ns"`
	ElapsedMS int64         `json:"elapsed_ms"`
	Phases    []PhaseResult `json:"phases"`

	// Usage is the process CPU time spent during the run. It is nil when the
	// platform cannot report it.
	Usage *rusage.Sample `json:"usage,omitempty"`
}

type phase struct {
	name string
	ops  int
	step func(i int)
}

// Run executes the workload described by cfg. A nil logger discards output.
// Run stops early with ctx.Err() if ctx is cancelled.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	arr := growarray.New(cfg.InitialCapacity)
	phases := []phase{
		{PhaseAddEnd, cfg.EndCount, func(i int) { arr.AddEnd(growarray.Element(i)) }},
		{PhaseAddStart, cfg.StartCount, func(i int) { arr.AddStart(growarray.Element(i)) }},
		{PhaseInsertAt, cfg.StartCount, func(i int) { arr.InsertAt(cfg.InsertLocation, growarray.Element(i)) }},
		{PhaseRemoveEnd, cfg.EndCount, func(int) { arr.RemoveEnd() }},
		{PhaseRemoveStart, cfg.StartCount, func(int) { arr.RemoveStart() }},
	}

	res := &Result{Config: cfg, Phases: make([]PhaseResult, 0, len(phases)+1)}

	usageBefore, usageErr := rusage.Now()
	if usageErr != nil {
		logger.Debug("cpu usage unavailable", "error", usageErr)
	}

	start := time.Now()
	for _, p := range phases {
		logger.Debug("phase starting", "phase", p.name, "ops", p.ops, "size", arr.Size(), "capacity", arr.Capacity())

		phaseStart := time.Now()
		for i := 1; i <= p.ops; i++ {
			if i%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return nil, fmt.Errorf("%s phase interrupted after %d ops: %w", p.name, i-1, err)
				}
			}
			p.step(i)
		}
		pr := phaseResult(p.name, p.ops, time.Since(phaseStart), arr)
		res.Phases = append(res.Phases, pr)

		logger.Debug("phase finished", "phase", p.name, "elapsed", pr.Elapsed, "size", pr.Size, "capacity", pr.Capacity, "grows", pr.Grows)

		if cfg.Verify {
			if err := arr.Check(); err != nil {
				return nil, fmt.Errorf("after %s phase: %w", p.name, err)
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("stopped after %s phase: %w", p.name, err)
		}
	}

	sumStart := time.Now()
	var sum int64
	for i := 0; i < arr.Size(); i++ {
		sum += int64(arr.At(i))
	}
	res.Phases = append(res.Phases, phaseResult(PhaseSum, arr.Size(), time.Since(sumStart), arr))

	res.Elapsed = time.Since(start)
	res.ElapsedMS = res.Elapsed.Milliseconds()
	res.Sum = sum
	res.Size = arr.Size()
	res.Capacity = arr.Capacity()
	res.Grows = arr.Grows()

	if usageErr == nil {
		if after, err := rusage.Now(); err == nil {
			d := after.Sub(usageBefore)
			res.Usage = &d
		}
	}

	logger.Info("benchmark finished", "sum", res.Sum, "elapsed", res.Elapsed, "size", res.Size, "grows", res.Grows)
	return res, nil
}

func phaseResult(name string, ops int, elapsed time.Duration, arr *growarray.Array) PhaseResult {
	return PhaseResult{
		Name:     name,
		Ops:      ops,
		Elapsed:  elapsed,
		Size:     arr.Size(),
		Capacity: arr.Capacity(),
		Grows:    arr.Grows(),
	}
}
