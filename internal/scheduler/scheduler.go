// Package scheduler fans a list of mutations out across a worker pool
// of runner invocations, using a channel-plus-WaitGroup pool shape
// partitioned per file so build-mode runs touching the same file stay
// serialized against each other.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/conneroisu/leanmutator/internal/mutation"
	"github.com/conneroisu/leanmutator/internal/runner"
)

// ProgressFunc is invoked once per completed mutation, in completion
// order (not necessarily traversal order) when running in parallel.
type ProgressFunc func(mutation.Result)

// Config controls one Run call.
type Config struct {
	NumWorkers   int
	RunnerConfig runner.Config
	OnProgress   ProgressFunc
}

// Sources maps a file path to the original bytes the runner must
// restore after every mutation against that file.
type Sources map[string][]byte

// Run executes every mutation in muts and returns the individual
// results plus the folded Stats. numWorkers <= 1 selects the
// sequential path; numWorkers > 1 partitions muts by file (so no two
// workers ever mutate the same file concurrently in build mode) and
// fans the partitions out across a worker pool.
//
// Stats.TotalTimeMs is the wall-clock duration of this call, not a sum
// of per-mutation durations, so it reflects actual parallel speedup.
func Run(ctx context.Context, muts []mutation.Mutation, sources Sources, cfg Config) ([]mutation.Result, mutation.Stats) {
	start := time.Now()

	var results []mutation.Result
	if cfg.NumWorkers <= 1 {
		results = runSequential(ctx, muts, sources, cfg)
	} else {
		results = runParallel(ctx, muts, sources, cfg)
	}

	var stats mutation.Stats
	for _, r := range results {
		stats.Add(r)
	}
	stats.TotalTimeMs = time.Since(start).Milliseconds()
	return results, stats
}

func runSequential(ctx context.Context, muts []mutation.Mutation, sources Sources, cfg Config) []mutation.Result {
	results := make([]mutation.Result, 0, len(muts))
	for _, m := range muts {
		r := runOne(ctx, m, sources, cfg)
		results = append(results, r)
		if cfg.OnProgress != nil {
			cfg.OnProgress(r)
		}
	}
	return results
}

// runParallel partitions muts by file, then fans the partitions out
// across min(numWorkers, partitionCount) goroutines. Partitioning by
// file is the enforcement mechanism for the ordering guarantee that two
// mutations sharing a file never run concurrently in build mode: each
// partition is processed sequentially by whichever worker picks it up.
func runParallel(ctx context.Context, muts []mutation.Mutation, sources Sources, cfg Config) []mutation.Result {
	partitions := partitionByFile(muts)

	jobs := make(chan []mutation.Mutation)
	resultsCh := make(chan mutation.Result)

	var wg sync.WaitGroup
	workers := cfg.NumWorkers
	if workers > len(partitions) {
		workers = len(partitions)
	}
	if workers < 1 {
		workers = 1
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for shard := range jobs {
				for _, m := range shard {
					resultsCh <- runOne(ctx, m, sources, cfg)
				}
			}
		}()
	}

	go func() {
		for _, p := range partitions {
			jobs <- p
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	results := make([]mutation.Result, 0, len(muts))
	for r := range resultsCh {
		results = append(results, r)
		if cfg.OnProgress != nil {
			cfg.OnProgress(r)
		}
	}
	return results
}

func partitionByFile(muts []mutation.Mutation) [][]mutation.Mutation {
	order := make([]string, 0)
	byFile := make(map[string][]mutation.Mutation)
	for _, m := range muts {
		if _, ok := byFile[m.File]; !ok {
			order = append(order, m.File)
		}
		byFile[m.File] = append(byFile[m.File], m)
	}
	partitions := make([][]mutation.Mutation, 0, len(order))
	for _, f := range order {
		partitions = append(partitions, byFile[f])
	}
	return partitions
}

func runOne(ctx context.Context, m mutation.Mutation, sources Sources, cfg Config) mutation.Result {
	original, ok := sources[m.File]
	if !ok {
		return mutation.Result{
			Mutation: m,
			Status:   mutation.Error,
			Message:  "no original source bytes recorded for " + m.File,
		}
	}
	return runner.Run(ctx, m, original, cfg.RunnerConfig)
}
