package renderer

import (
	"context"
	"image"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ChunkTask is a band of whole rows claimed by a worker
type ChunkTask struct {
	WorkerID int
	Bounds   image.Rectangle
}

// WorkerPool renders row chunks in parallel. Workers claim the next unclaimed chunk
// as soon as they finish one, so a slow chunk does not hold up the others.
type WorkerPool struct {
	numWorkers int
	chunkRows  int
}

// NewWorkerPool creates a pool of numWorkers workers for an image of the given height.
// Chunks are a quarter of the image height.
func NewWorkerPool(numWorkers, height int) *WorkerPool {
	return &WorkerPool{
		numWorkers: max(1, numWorkers),
		chunkRows:  max(1, height/4),
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// GetChunkRows returns the number of rows per chunk
func (wp *WorkerPool) GetChunkRows() int {
	return wp.chunkRows
}

// Run renders every chunk of bounds with render and merges the per-chunk statistics.
// The first error stops workers from claiming further chunks and is returned.
func (wp *WorkerPool) Run(bounds image.Rectangle, render func(ChunkTask) (RenderStats, error)) (RenderStats, error) {
	var nextRow atomic.Int64
	nextRow.Store(int64(bounds.Min.Y))

	workerStats := make([]RenderStats, wp.numWorkers)
	g, ctx := errgroup.WithContext(context.Background())

	for id := 0; id < wp.numWorkers; id++ {
		g.Go(func() error {
			for ctx.Err() == nil {
				start := int(nextRow.Add(int64(wp.chunkRows))) - wp.chunkRows
				if start >= bounds.Max.Y {
					return nil
				}
				end := min(start+wp.chunkRows, bounds.Max.Y)

				task := ChunkTask{
					WorkerID: id,
					Bounds:   image.Rect(bounds.Min.X, start, bounds.Max.X, end),
				}
				stats, err := render(task)
				if err != nil {
					return err
				}
				workerStats[id] = workerStats[id].Merge(stats)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}

	total := RenderStats{NumWorkers: wp.numWorkers}
	total.ChunksPerWorker = make([]int, wp.numWorkers)
	for id, stats := range workerStats {
		total = total.Merge(stats)
		total.ChunksPerWorker[id] = stats.Chunks
	}
	total.finalize()
	return total, nil
}
