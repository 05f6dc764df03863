package mailbox

import (
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Executor runs jobs off the frame goroutine.
type Executor interface {
	Go(job func())
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(job func())

func (f ExecutorFunc) Go(job func()) { f(job) }

type poolExecutor struct {
	pool worker.DynamicWorkerPool
	seq  atomic.Int64
}

var _ Executor = &poolExecutor{}

// NewPoolExecutor creates an Executor backed by a dynamic worker pool. Idle workers exit after a second.
//
// Parameters:
//   - workers: maximum number of concurrent workers
//
// Returns:
//   - Executor: the pool-backed executor
func NewPoolExecutor(workers int) Executor {
	return &poolExecutor{
		pool: worker.NewDynamicWorkerPool(max(workers, 1), 256, 1*time.Second),
	}
}

func (e *poolExecutor) Go(job func()) {
	id := int(e.seq.Add(1))
	e.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			job()
			return nil, nil
		},
	})
}
