package loader

import (
	"sync"

	"go.uber.org/zap"
)

// pool is the shared worker pool the pipeline dispatches level batches
// onto. Workers live for the whole load and drain a single job channel.
type pool struct {
	jobs    chan func()
	workers sync.WaitGroup
	log     *zap.Logger
}

func newPool(workers int, log *zap.Logger) *pool {
	p := &pool{jobs: make(chan func()), log: log}
	for i := 0; i < workers; i++ {
		p.workers.Add(1)
		go func() {
			defer p.workers.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

func (p *pool) close() {
	close(p.jobs)
	p.workers.Wait()
}

// runLevel dispatches every unit of one level, blocks until all of them
// returned (the level barrier), then scans results in registration order
// and reports the first error. Units already dispatched are never
// cancelled when a sibling fails; only the reported outcome
// short-circuits.
func (p *pool) runLevel(ctx *Context, units []Unit) error {
	results := make([]error, len(units))

	var barrier sync.WaitGroup
	barrier.Add(len(units))
	for i, u := range units {
		i, u := i, u
		p.jobs <- func() {
			defer barrier.Done()
			p.log.Debug("unit start", zap.Stringer("table", u.Table()))
			if err := u.Load(ctx); err != nil {
				results[i] = err
				p.log.Error("unit failed",
					zap.Stringer("table", u.Table()),
					zap.Error(err))
				return
			}
			p.log.Debug("unit done", zap.Stringer("table", u.Table()))
		}
	}
	barrier.Wait()

	for _, err := range results {
		if err != nil {
			return err
		}
	}
	return nil
}
