package renderer

import (
	"image"
	"runtime"
	"sync"

	"github.com/bpodwinski/go-raymarch/pkg/camera"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile  Tile
	Frame camera.Frame
	Image *image.RGBA // Shared output image; tile bounds are disjoint
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	renderer    *Renderer
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool sized for the given tile count
func NewWorkerPool(renderer *Renderer, numWorkers, maxTiles int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		renderer:    renderer,
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
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
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		stats := wp.renderer.renderBounds(task.Frame, task.Tile.Bounds, task.Image)
		wp.resultQueue <- TileResult{TileID: task.Tile.ID, Stats: stats}
	}
}
