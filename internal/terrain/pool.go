package terrain

import (
	"runtime"
	"sync"

	"terrain-erosion/internal/profiling"
)

// SampleFunc returns the elevation for the sample at normalized grid
// coordinates (u, v), both in [0,1].
type SampleFunc func(u, v float64) float32

// rowJob fills one row of a grid.
type rowJob struct {
	grid   *HeightGrid
	z      int
	sample SampleFunc
}

// WorkerPool fills grid rows on a fixed set of goroutines. Rows never share
// samples, so workers write without locking.
type WorkerPool struct {
	jobQueue chan rowJob
	workers  int
	wg       sync.WaitGroup
}

// NewWorkerPool starts workers goroutines reading from a queue of queueSize.
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := &WorkerPool{
		jobQueue: make(chan rowJob, queueSize),
		workers:  workers,
	}
	for range workers {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

// submit queues a row and blocks until there is room.
func (p *WorkerPool) submit(job rowJob) {
	p.jobQueue <- job
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		job.run()
	}
}

// Shutdown closes the queue and waits for in-flight rows to finish.
func (p *WorkerPool) Shutdown() {
	close(p.jobQueue)
	p.wg.Wait()
}

func (j rowJob) run() {
	g := j.grid
	v := normalizedCoord(j.z, g.depth)
	for x := range g.width {
		g.SetHeight(g.Index(x, j.z), j.sample(normalizedCoord(x, g.width), v))
	}
}

// normalizedCoord maps lattice index i of n to [0,1]; a single-sample axis maps to 0.
func normalizedCoord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// fillRows evaluates sample for every grid cell, spreading rows across a pool.
func fillRows(grid *HeightGrid, workers int, sample SampleFunc) {
	if grid.Len() == 0 {
		return
	}
	defer profiling.Track("terrain.Generate")()
	pool := NewWorkerPool(workers, grid.depth)
	for z := range grid.depth {
		pool.submit(rowJob{grid: grid, z: z, sample: sample})
	}
	pool.Shutdown()
}
