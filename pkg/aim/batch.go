package aim

import (
	"runtime"
	"sync"

	"gimbalaim/pkg/linalg"
	"gimbalaim/pkg/rotation"
)

// Result is the outcome of one Job
type Result struct {
	Job       Job
	Direction linalg.Vector3
	Point     linalg.Vector3
	// Found is false when no rotation order avoided a degenerate step and
	// Direction is the unrotated reference.
	Found bool
}

type task struct {
	index     int
	job       Job
	projector *Projector
}

// ProjectAll projects every job on a pool of workers and returns results in
// job order. Jobs are validated before any work starts, so an invalid job
// fails the whole batch. workers <= 0 uses one worker per CPU.
func ProjectAll(jobs []Job, solver *rotation.Solver, workers int) ([]Result, error) {
	tasks := make([]task, len(jobs))
	for i, job := range jobs {
		p, err := job.Projector(solver)
		if err != nil {
			return nil, err
		}
		tasks[i] = task{index: i, job: job, projector: p}
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	results := make([]Result, len(tasks))
	queue := make(chan task, len(tasks))
	for _, t := range tasks {
		queue <- t
	}
	close(queue)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range queue {
				results[t.index] = t.run()
			}
		}()
	}
	wg.Wait()

	return results, nil
}

func (t task) run() Result {
	sol := t.projector.Solve(t.job.Orientation, t.job.Camera)
	return Result{
		Job:       t.job,
		Direction: sol.Vector,
		Point:     t.job.Position.Add(sol.Vector.Multiply(t.job.Distance)),
		Found:     sol.Found,
	}
}
