package depot

import (
	"context"
	"fmt"

	"github.com/TheBitDrifter/mask"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runner owns a heterogeneous dispatch list of Invokables. Run drives
// them one at a time in list order; RunParallel partitions the list into
// conflict-free batches using the systems' read/write metadata and runs
// each batch concurrently.
type Runner struct {
	systems []Invokable
	log     *zap.Logger
}

func newRunner(systems ...Invokable) *Runner {
	return &Runner{
		systems: systems,
		log:     Config.logger,
	}
}

func (r *Runner) Register(sys Invokable) {
	r.systems = append(r.systems, sys)
}

func (r *Runner) Len() int {
	return len(r.systems)
}

// Run invokes every system sequentially. The first failed invocation
// aborts the round; whether to skip or retry on later rounds is the
// caller's policy.
func (r *Runner) Run(sto Storage) error {
	for i, sys := range r.systems {
		if err := sys.Invoke(sto); err != nil {
			r.log.Error("system invocation failed",
				zap.Int("system", i),
				zap.Error(err),
			)
			return fmt.Errorf("invoke system %d: %w", i, err)
		}
	}
	return nil
}

// Conflicts reports whether systems i and j may not run concurrently:
// either writes a type the other reads or writes.
func (r *Runner) Conflicts(i, j int) bool {
	ri, wi := maskOf(r.systems[i].Reads()), maskOf(r.systems[i].Writes())
	rj, wj := maskOf(r.systems[j].Reads()), maskOf(r.systems[j].Writes())
	return wi.ContainsAny(wj) || wi.ContainsAny(rj) || ri.ContainsAny(wj)
}

// Batches partitions the dispatch list into conflict-free groups. A
// system is placed in the first batch after the last batch holding a
// system it conflicts with, so relative order between conflicting systems
// is preserved while independent systems share a batch.
func (r *Runner) Batches() [][]int {
	var batches [][]int
	var batchReads, batchWrites []mask.Mask

	for i, sys := range r.systems {
		ri, wi := maskOf(sys.Reads()), maskOf(sys.Writes())

		target := 0
		for b := range batches {
			if batchWrites[b].ContainsAny(wi) ||
				batchWrites[b].ContainsAny(ri) ||
				batchReads[b].ContainsAny(wi) {
				target = b + 1
			}
		}
		if target == len(batches) {
			batches = append(batches, nil)
			batchReads = append(batchReads, mask.Mask{})
			batchWrites = append(batchWrites, mask.Mask{})
		}

		batches[target] = append(batches[target], i)
		for _, key := range sys.Reads() {
			batchReads[target].Mark(registry.bitOf(key))
		}
		for _, key := range sys.Writes() {
			batchWrites[target].Mark(registry.bitOf(key))
		}
	}
	return batches
}

// RunParallel invokes conflict-free batches concurrently, batches in list
// order. Storage borrow accounting backstops the partition: a bad batch
// surfaces as AliasConflictError instead of silent aliasing.
func (r *Runner) RunParallel(ctx context.Context, sto Storage) error {
	for b, batch := range r.Batches() {
		if err := ctx.Err(); err != nil {
			return err
		}
		g, _ := errgroup.WithContext(ctx)
		for _, idx := range batch {
			sys := r.systems[idx]
			g.Go(func() error {
				return sys.Invoke(sto)
			})
		}
		if err := g.Wait(); err != nil {
			r.log.Error("parallel batch failed",
				zap.Int("batch", b),
				zap.Ints("systems", batch),
				zap.Error(err),
			)
			return fmt.Errorf("run batch %d: %w", b, err)
		}
	}
	return nil
}

func maskOf(keys []TypeKey) mask.Mask {
	var m mask.Mask
	for _, key := range keys {
		m.Mark(registry.bitOf(key))
	}
	return m
}
