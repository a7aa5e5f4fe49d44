package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // For deterministic ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Pixels []core.Vec3 // Tile pixels in row-major order
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID           int
	tileRenderer *TileRenderer
	taskQueue    chan TileTask
	resultQueue  chan TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// The queues hold maxTasks entries so submitting never blocks.
func NewWorkerPool(tileRenderer *TileRenderer, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:           i,
			tileRenderer: tileRenderer,
			taskQueue:    wp.taskQueue,
			resultQueue:  wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Tasks picked up after ctx is done are reported
// with ctx's error instead of being rendered.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- TileResult{TaskID: task.TaskID, Error: err}
			continue
		}

		pixels, stats := w.tileRenderer.RenderTile(task.Tile)
		w.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Pixels: pixels,
			Stats:  stats,
		}
	}
}
